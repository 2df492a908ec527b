package notify

import (
	"context"
	"log/slog"

	"github.com/aussiebroadwan/scheduler/pkg/slogx"
)

// LogNotifier writes messages to the request logger instead of sending them.
// It is the default for local development.
type LogNotifier struct{}

func (LogNotifier) Send(ctx context.Context, msg Message) error {
	if msg.To == "" {
		return ErrNoRecipient
	}

	attrs := []any{
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject),
		slog.String("body", msg.Body),
	}
	if msg.Event != nil {
		attrs = append(attrs,
			slog.String("event_uid", msg.Event.UID),
			slog.Time("starts_at", msg.Event.StartsAt),
		)
	}

	slogx.FromContext(ctx).InfoContext(ctx, "invitation", attrs...)
	return nil
}
