package resource

import (
	"context"
	"log/slog"
	"time"
)

type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionDeleted Action = "deleted"
)

// ChangeEvent is emitted after a mutation has been committed.
type ChangeEvent struct {
	Resource   string    `json:"resource"`
	Action     Action    `json:"action"`
	ID         int       `json:"id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Publisher delivers change events to a broker (NATS/Kafka).
type Publisher interface {
	Publish(ctx context.Context, event ChangeEvent) error
	Close() error
}

// Notifier publishes change events on a best-effort basis: failures are
// logged and never reach the caller. A Notifier without a publisher is a no-op.
type Notifier struct {
	publisher Publisher
	logger    *slog.Logger
}

func NewNotifier(publisher Publisher, logger *slog.Logger) *Notifier {
	return &Notifier{
		publisher: publisher,
		logger:    logger,
	}
}

func (n *Notifier) Notify(ctx context.Context, resource string, action Action, id int) {
	if n == nil || n.publisher == nil {
		return
	}

	event := ChangeEvent{
		Resource:   resource,
		Action:     action,
		ID:         id,
		OccurredAt: Now(),
	}
	if err := n.publisher.Publish(ctx, event); err != nil {
		n.logger.WarnContext(ctx, "failed to publish change event",
			"resource", resource,
			"action", action,
			"id", id,
			"error", err,
		)
	}
}
