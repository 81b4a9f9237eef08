package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"monolith-service/internal/resource"

	"github.com/nats-io/nats.go"
)

type NATSPublisher struct {
	conn   *nats.Conn
	prefix string
	logger *slog.Logger
}

func NewNATSPublisher(url string, prefix string, logger *slog.Logger) (*NATSPublisher, error) {
	nc, err := nats.Connect(url, nats.Name("monolith-service"))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	logger.Info("NATS publisher initialized", "url", url, "subject_prefix", prefix)

	return &NATSPublisher{
		conn:   nc,
		prefix: prefix,
		logger: logger,
	}, nil
}

// Subject returns <prefix>.<resource>.<action>.
func Subject(prefix string, event resource.ChangeEvent) string {
	if prefix == "" {
		return fmt.Sprintf("%s.%s", event.Resource, event.Action)
	}
	return fmt.Sprintf("%s.%s.%s", prefix, event.Resource, event.Action)
}

func (p *NATSPublisher) Publish(ctx context.Context, event resource.ChangeEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal change event: %w", err)
	}

	subject := Subject(p.prefix, event)
	if err := p.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish to NATS: %w", err)
	}

	p.logger.DebugContext(ctx, "change event sent to NATS", "subject", subject, "id", event.ID)
	return nil
}

func (p *NATSPublisher) Close() error {
	if err := p.conn.Drain(); err != nil {
		p.conn.Close()
		return err
	}
	return nil
}
