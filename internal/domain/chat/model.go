package chat

import "errors"

// Domain errors
var (
	ErrEmptySenderID  = errors.New("sender ID is required")
	ErrEmptyText      = errors.New("message text cannot be empty")
	ErrMessageMissing = errors.New("message not found in thread")
)

// Message is one entry in a trainer/member conversation. Timestamp is epoch
// milliseconds.
type Message struct {
	ID        string `json:"id"`
	SenderID  string `json:"senderId"`
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"`
}

// Validate checks if the Message has valid data.
// POST: Returns nil if valid, error otherwise
func (m *Message) Validate() error {
	if m.SenderID == "" {
		return ErrEmptySenderID
	}
	if m.Text == "" {
		return ErrEmptyText
	}
	return nil
}

// Thread is the ordered message sequence for one (trainer, member) pair.
type Thread []Message

// Append adds a message to the end of the thread.
func (t Thread) Append(m Message) Thread {
	return append(t, m)
}

// Update replaces the text of the message with the given id in place.
// POST: Order of all messages is unchanged
func (t Thread) Update(id, text string) (Thread, error) {
	for i := range t {
		if t[i].ID == id {
			t[i].Text = text
			return t, nil
		}
	}
	return t, ErrMessageMissing
}

// Delete removes the message with the given id.
// POST: Remaining messages keep their relative order
func (t Thread) Delete(id string) (Thread, error) {
	for i := range t {
		if t[i].ID == id {
			return append(t[:i:i], t[i+1:]...), nil
		}
	}
	return t, ErrMessageMissing
}
