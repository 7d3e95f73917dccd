package orchestrators

import (
	"context"
	"log/slog"
	"time"

	"gymdesk/internal/domain/chat"
)

// ChatStore defines the thread persistence interface for chat operations.
type ChatStore interface {
	Thread(ctx context.Context, trainerID, memberID string) chat.Thread
	SaveThread(ctx context.Context, trainerID, memberID string, t chat.Thread) error
}

// ChatDeps holds dependencies for the chat orchestrators.
type ChatDeps struct {
	ChatStore  ChatStore
	GenerateID func() string
	Now        func() time.Time
}

// SaveChatMessageInput carries input for appending a message.
type SaveChatMessageInput struct {
	TrainerID string
	MemberID  string
	SenderID  string
	Text      string
}

// ExecuteSaveChatMessage appends a message to the (trainer, member) thread.
// POST: Message is last in the thread; prior messages keep their order
func ExecuteSaveChatMessage(ctx context.Context, input SaveChatMessageInput, deps ChatDeps) (chat.Message, error) {
	msg := chat.Message{
		ID:        deps.GenerateID(),
		SenderID:  input.SenderID,
		Text:      input.Text,
		Timestamp: deps.Now().UnixMilli(),
	}
	if err := msg.Validate(); err != nil {
		return chat.Message{}, err
	}

	thread := deps.ChatStore.Thread(ctx, input.TrainerID, input.MemberID).Append(msg)
	if err := deps.ChatStore.SaveThread(ctx, input.TrainerID, input.MemberID, thread); err != nil {
		return chat.Message{}, err
	}
	slog.Info("chat_event", "event", "message_sent", "trainer_id", input.TrainerID,
		"member_id", input.MemberID, "sender_id", input.SenderID)
	return msg, nil
}

// UpdateChatMessageInput carries input for editing a message in place.
type UpdateChatMessageInput struct {
	TrainerID string
	MemberID  string
	MessageID string
	Text      string
}

// ExecuteUpdateChatMessage edits a message's text, preserving thread order.
func ExecuteUpdateChatMessage(ctx context.Context, input UpdateChatMessageInput, deps ChatDeps) error {
	if input.Text == "" {
		return chat.ErrEmptyText
	}
	thread, err := deps.ChatStore.Thread(ctx, input.TrainerID, input.MemberID).Update(input.MessageID, input.Text)
	if err != nil {
		return err
	}
	return deps.ChatStore.SaveThread(ctx, input.TrainerID, input.MemberID, thread)
}

// DeleteChatMessageInput carries input for removing a message.
type DeleteChatMessageInput struct {
	TrainerID string
	MemberID  string
	MessageID string
}

// ExecuteDeleteChatMessage removes a message by id, preserving the order of
// the remaining messages.
func ExecuteDeleteChatMessage(ctx context.Context, input DeleteChatMessageInput, deps ChatDeps) error {
	thread, err := deps.ChatStore.Thread(ctx, input.TrainerID, input.MemberID).Delete(input.MessageID)
	if err != nil {
		return err
	}
	return deps.ChatStore.SaveThread(ctx, input.TrainerID, input.MemberID, thread)
}
