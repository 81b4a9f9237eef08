package resource_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"monolith-service/internal/resource"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	events []resource.ChangeEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, event resource.ChangeEvent) error {
	p.events = append(p.events, event)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

func TestNotifier(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	t.Run("Publishes", func(t *testing.T) {
		pub := &recordingPublisher{}
		n := resource.NewNotifier(pub, logger)

		n.Notify(context.Background(), "project", resource.ActionCreated, 42)

		require.Len(t, pub.events, 1)
		assert.Equal(t, "project", pub.events[0].Resource)
		assert.Equal(t, resource.ActionCreated, pub.events[0].Action)
		assert.Equal(t, 42, pub.events[0].ID)
		assert.False(t, pub.events[0].OccurredAt.IsZero())
	})

	t.Run("PublishFailureIsSwallowed", func(t *testing.T) {
		pub := &recordingPublisher{err: errors.New("broker down")}
		n := resource.NewNotifier(pub, logger)

		assert.NotPanics(t, func() {
			n.Notify(context.Background(), "contact", resource.ActionDeleted, 1)
		})
		assert.Len(t, pub.events, 1)
	})

	t.Run("NilSafe", func(t *testing.T) {
		var n *resource.Notifier
		assert.NotPanics(t, func() {
			n.Notify(context.Background(), "contact", resource.ActionUpdated, 1)
		})

		empty := resource.NewNotifier(nil, logger)
		assert.NotPanics(t, func() {
			empty.Notify(context.Background(), "contact", resource.ActionUpdated, 1)
		})
	})
}
