package chat_test

import (
	"testing"

	"gymdesk/internal/domain/chat"
)

func sampleThread() chat.Thread {
	return chat.Thread{
		{ID: "m1", SenderID: "trainer-1", Text: "How did the session go?", Timestamp: 1},
		{ID: "m2", SenderID: "member-1", Text: "Tough but good", Timestamp: 2},
		{ID: "m3", SenderID: "trainer-1", Text: "Nice work", Timestamp: 3},
	}
}

// TestMessage_Validate tests message validation.
func TestMessage_Validate(t *testing.T) {
	tests := []struct {
		name    string
		msg     chat.Message
		wantErr error
	}{
		{name: "valid", msg: chat.Message{ID: "m1", SenderID: "t1", Text: "hello", Timestamp: 1}},
		{name: "no sender", msg: chat.Message{ID: "m1", Text: "hello"}, wantErr: chat.ErrEmptySenderID},
		{name: "no text", msg: chat.Message{ID: "m1", SenderID: "t1"}, wantErr: chat.ErrEmptyText},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.msg.Validate(); err != tt.wantErr {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// TestThread_Update tests in-place edit preserving order.
func TestThread_Update(t *testing.T) {
	th, err := sampleThread().Update("m2", "Actually, really good")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if th[1].Text != "Actually, really good" {
		t.Errorf("expected m2 updated, got %+v", th[1])
	}
	if th[0].ID != "m1" || th[2].ID != "m3" {
		t.Errorf("expected order preserved, got %+v", th)
	}
	if _, err := sampleThread().Update("nope", "x"); err != chat.ErrMessageMissing {
		t.Errorf("expected ErrMessageMissing, got %v", err)
	}
}

// TestThread_Delete tests removal preserving remaining order.
func TestThread_Delete(t *testing.T) {
	th, err := sampleThread().Delete("m2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(th) != 2 || th[0].ID != "m1" || th[1].ID != "m3" {
		t.Errorf("expected [m1 m3], got %+v", th)
	}
	if _, err := sampleThread().Delete("nope"); err != chat.ErrMessageMissing {
		t.Errorf("expected ErrMessageMissing, got %v", err)
	}
}
