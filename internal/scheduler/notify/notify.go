// Package notify delivers interview invitations to recipients. The engine
// only sees the Notifier interface; the concrete transport (log, SMTP or an
// AMQP queue drained by a mailer) is chosen at startup.
package notify

import (
	"context"
	"errors"
	"time"
)

// ErrNoRecipient is returned when a Message has no To address.
var ErrNoRecipient = errors.New("notify: message has no recipient")

// Notifier sends a single message. Implementations must honour ctx.
type Notifier interface {
	Send(ctx context.Context, msg Message) error
}

// Message is a plain-text email, optionally carrying a calendar invite.
type Message struct {
	To      string
	Subject string
	Body    string
	Event   *Event
}

// Event describes the meeting attached to an invitation.
type Event struct {
	UID         string
	Summary     string
	Description string
	Location    string
	Organizer   string
	Attendee    string
	StartsAt    time.Time
	Duration    time.Duration
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, msg Message) error

func (f NotifierFunc) Send(ctx context.Context, msg Message) error { return f(ctx, msg) }

// WithTimeout bounds every Send on n to d.
func WithTimeout(n Notifier, d time.Duration) Notifier {
	if d <= 0 {
		return n
	}
	return NotifierFunc(func(ctx context.Context, msg Message) error {
		ctx, cancel := context.WithTimeout(ctx, d)
		defer cancel()
		return n.Send(ctx, msg)
	})
}
