package mail

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	sl "github.com/ka-tch/webmail/internal/lib/logger"
	"github.com/ka-tch/webmail/internal/models"
	"github.com/ka-tch/webmail/internal/storage"
)

var ErrInvalidRecipient = errors.New("invalid recipient email address")

// recipientRx accepts the standard local@domain.tld shape.
var recipientRx = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

const deliveryTimeout = 10 * time.Second

type MessageStore interface {
	Append(ctx context.Context, msg models.Message) models.Message
	All(ctx context.Context) []models.Message
	Counts(ctx context.Context) models.MailboxCounts
	Delete(ctx context.Context, id int) error
	ToggleRead(ctx context.Context, id int) (bool, error)
	ToggleStar(ctx context.Context, id int) (bool, error)
}

type AccountProvider interface {
	Get(ctx context.Context, username string) (models.Account, error)
}

// Sender delivers outbound email. Delivery is best-effort: failures are
// logged and never surfaced to the caller of Send.
type Sender interface {
	Send(ctx context.Context, email models.OutboundEmail) error
}

type Service struct {
	log      *slog.Logger
	store    MessageStore
	accounts AccountProvider
	sender   Sender
}

func New(log *slog.Logger, store MessageStore, accounts AccountProvider, sender Sender) *Service {
	return &Service{
		log:      log,
		store:    store,
		accounts: accounts,
		sender:   sender,
	}
}

// Send records a sent message in the mailbox and hands the email to the
// delivery transport in the background. The recipient is validated before
// any mailbox mutation.
func (s *Service) Send(ctx context.Context, username, to, subject, body string) error {
	const op = "mail.Send"

	log := s.log.With(slog.String("op", op))

	if !recipientRx.MatchString(to) {
		return ErrInvalidRecipient
	}

	from := username
	if acc, err := s.accounts.Get(ctx, username); err == nil && acc.Email != "" {
		from = acc.Email
	}

	msg := s.store.Append(ctx, models.Message{
		From:    from,
		Subject: subject,
		Body:    body + "\n\nSent to: " + to,
		Label:   models.LabelSent,
	})

	log.Info("message recorded", slog.Int("id", msg.ID), slog.String("to", to))

	go s.deliver(models.OutboundEmail{
		To:      to,
		From:    from,
		Subject: subject,
		Body:    body,
	})

	return nil
}

// deliver runs outside the request lifecycle so a slow or failing transport
// cannot block or roll back the mailbox append.
func (s *Service) deliver(email models.OutboundEmail) {
	ctx, cancel := context.WithTimeout(context.Background(), deliveryTimeout)
	defer cancel()

	if err := s.sender.Send(ctx, email); err != nil {
		s.log.Error("outbound delivery failed",
			slog.String("to", email.To), sl.Err(err))
	}
}

// Inbox returns every message in the mailbox, sent and received alike.
func (s *Service) Inbox(ctx context.Context) []models.Message {
	return s.store.All(ctx)
}

// Counts returns the aggregate counters over the current mailbox.
func (s *Service) Counts(ctx context.Context) models.MailboxCounts {
	return s.store.Counts(ctx)
}

// Delete removes the message with the given id.
func (s *Service) Delete(ctx context.Context, id int) error {
	const op = "mail.Delete"

	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, storage.ErrMessageNotFound) {
			return err
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("message deleted", slog.String("op", op), slog.Int("id", id))

	return nil
}

// ToggleRead flips the read flag and returns the new value.
func (s *Service) ToggleRead(ctx context.Context, id int) (bool, error) {
	return s.store.ToggleRead(ctx, id)
}

// ToggleStar flips the starred flag and returns the new value.
func (s *Service) ToggleStar(ctx context.Context, id int) (bool, error) {
	return s.store.ToggleStar(ctx, id)
}

// NopSender is the delivery transport used when outbound mail is disabled.
type NopSender struct{}

func (NopSender) Send(ctx context.Context, email models.OutboundEmail) error {
	return nil
}
