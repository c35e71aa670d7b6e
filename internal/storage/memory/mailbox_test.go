package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ka-tch/webmail/internal/models"
	"github.com/ka-tch/webmail/internal/storage"
)

func TestMailbox_Seed(t *testing.T) {
	t.Parallel()

	m := NewMailbox()
	m.Seed()

	msgs := m.All(context.Background())
	require.Len(t, msgs, 10)

	for i, msg := range msgs {
		assert.Equal(t, i+1, msg.ID)
		assert.Equal(t, models.LabelInbox, msg.Label)
	}
}

func TestMailbox_AppendAssignsIDs(t *testing.T) {
	t.Parallel()

	m := NewMailbox()
	ctx := context.Background()

	first := m.Append(ctx, models.Message{From: "a@b.co", Label: models.LabelSent})
	second := m.Append(ctx, models.Message{From: "a@b.co", Label: models.LabelSent})

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
}

func TestMailbox_IDReuseAfterDelete(t *testing.T) {
	t.Parallel()

	m := NewMailbox()
	ctx := context.Background()

	m.Append(ctx, models.Message{Label: models.LabelSent})
	m.Append(ctx, models.Message{Label: models.LabelSent})

	require.NoError(t, m.Delete(ctx, 1))

	// length-based assignment reuses id 2 by design
	msg := m.Append(ctx, models.Message{Label: models.LabelSent})
	assert.Equal(t, 2, msg.ID)
}

func TestMailbox_DeleteTwice(t *testing.T) {
	t.Parallel()

	m := NewMailbox()
	ctx := context.Background()

	m.Append(ctx, models.Message{Label: models.LabelSent})

	require.NoError(t, m.Delete(ctx, 1))
	assert.ErrorIs(t, m.Delete(ctx, 1), storage.ErrMessageNotFound)
}

func TestMailbox_ToggleReadIsInvolution(t *testing.T) {
	t.Parallel()

	m := NewMailbox()
	ctx := context.Background()

	m.Append(ctx, models.Message{Label: models.LabelInbox})

	read, err := m.ToggleRead(ctx, 1)
	require.NoError(t, err)
	assert.True(t, read)

	read, err = m.ToggleRead(ctx, 1)
	require.NoError(t, err)
	assert.False(t, read)
}

func TestMailbox_ToggleUnknownID(t *testing.T) {
	t.Parallel()

	m := NewMailbox()
	ctx := context.Background()

	_, err := m.ToggleRead(ctx, 42)
	assert.ErrorIs(t, err, storage.ErrMessageNotFound)

	_, err = m.ToggleStar(ctx, 42)
	assert.ErrorIs(t, err, storage.ErrMessageNotFound)
}

func TestMailbox_LabelDefaultsToInbox(t *testing.T) {
	t.Parallel()

	m := NewMailbox()
	ctx := context.Background()

	m.Append(ctx, models.Message{From: "x@y.co"})

	msgs := m.All(ctx)
	require.Len(t, msgs, 1)
	assert.Equal(t, models.LabelInbox, msgs[0].Label)
}

func TestMailbox_Counts(t *testing.T) {
	t.Parallel()

	m := NewMailbox()
	m.Seed()
	ctx := context.Background()

	counts := m.Counts(ctx)
	assert.Equal(t, models.MailboxCounts{
		Total:   10,
		Unread:  5,
		Inbox:   10,
		Sent:    0,
		Starred: 3,
	}, counts)

	// sent messages never count as unread
	m.Append(ctx, models.Message{Label: models.LabelSent})

	counts = m.Counts(ctx)
	assert.Equal(t, 11, counts.Total)
	assert.Equal(t, 5, counts.Unread)
	assert.Equal(t, 1, counts.Sent)

	// toggling an unread message read shrinks unread
	_, err := m.ToggleRead(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 4, m.Counts(ctx).Unread)

	// deleting an unread message shrinks unread and total
	require.NoError(t, m.Delete(ctx, 2))
	counts = m.Counts(ctx)
	assert.Equal(t, 10, counts.Total)
	assert.Equal(t, 3, counts.Unread)
}
