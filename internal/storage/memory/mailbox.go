package memory

import (
	"context"
	"sync"

	"github.com/ka-tch/webmail/internal/models"
	"github.com/ka-tch/webmail/internal/storage"
)

// Mailbox is the single shared ordered message sequence used for both inbox
// and sent views. One mutex serializes every operation so appends, deletes
// and toggles are atomic with respect to each other.
type Mailbox struct {
	mu       sync.Mutex
	messages []models.Message
}

func NewMailbox() *Mailbox {
	return &Mailbox{}
}

// nextID assigns message IDs as length+1, matching the original behavior.
// IDs can collide with previously deleted entries; a stricter policy
// (max(id)+1) only needs to change this one function.
func (m *Mailbox) nextID() int {
	return len(m.messages) + 1
}

// Append stores the message under a freshly assigned id and returns it.
func (m *Mailbox) Append(ctx context.Context, msg models.Message) models.Message {
	m.mu.Lock()
	defer m.mu.Unlock()

	msg.ID = m.nextID()
	m.messages = append(m.messages, msg)

	return msg
}

// All returns a copy of every message, defaulting an absent label to inbox.
func (m *Mailbox) All(ctx context.Context) []models.Message {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]models.Message, 0, len(m.messages))
	for _, msg := range m.messages {
		if msg.Label == "" {
			msg.Label = models.LabelInbox
		}
		out = append(out, msg)
	}

	return out
}

// Counts aggregates the mailbox in a single pass.
func (m *Mailbox) Counts(ctx context.Context) models.MailboxCounts {
	m.mu.Lock()
	defer m.mu.Unlock()

	var counts models.MailboxCounts
	counts.Total = len(m.messages)

	for _, msg := range m.messages {
		if !msg.Read && msg.Label != models.LabelSent {
			counts.Unread++
		}
		switch msg.Label {
		case models.LabelInbox:
			counts.Inbox++
		case models.LabelSent:
			counts.Sent++
		}
		if msg.Starred {
			counts.Starred++
		}
	}

	return counts
}

// Delete removes the first message with the given id.
func (m *Mailbox) Delete(ctx context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, msg := range m.messages {
		if msg.ID == id {
			m.messages = append(m.messages[:i], m.messages[i+1:]...)
			return nil
		}
	}

	return storage.ErrMessageNotFound
}

// ToggleRead flips the read flag in place and returns the new value.
func (m *Mailbox) ToggleRead(ctx context.Context, id int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.messages {
		if m.messages[i].ID == id {
			m.messages[i].Read = !m.messages[i].Read
			return m.messages[i].Read, nil
		}
	}

	return false, storage.ErrMessageNotFound
}

// ToggleStar flips the starred flag in place and returns the new value.
func (m *Mailbox) ToggleStar(ctx context.Context, id int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.messages {
		if m.messages[i].ID == id {
			m.messages[i].Starred = !m.messages[i].Starred
			return m.messages[i].Starred, nil
		}
	}

	return false, storage.ErrMessageNotFound
}

// Len reports the current number of stored messages.
func (m *Mailbox) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.messages)
}
