package messaging

import (
	"context"
	"time"

	"monolith-service/internal/metrics"
	"monolith-service/internal/resource"
)

// InstrumentedPublisher records publish counts, latency and failures for the
// wrapped publisher.
type InstrumentedPublisher struct {
	next    resource.Publisher
	metrics *metrics.MessagingMetrics
}

// Instrument wraps p with messaging metrics. A nil publisher stays nil so the
// notifier keeps treating it as disabled.
func Instrument(p resource.Publisher, m *metrics.MessagingMetrics) resource.Publisher {
	if p == nil {
		return nil
	}
	m.RecordConnectionChange(context.Background(), 1)
	return &InstrumentedPublisher{next: p, metrics: m}
}

func (p *InstrumentedPublisher) Publish(ctx context.Context, event resource.ChangeEvent) error {
	start := time.Now()
	err := p.next.Publish(ctx, event)
	p.metrics.RecordPublish(ctx, event.Resource, string(event.Action), time.Since(start), err)
	return err
}

func (p *InstrumentedPublisher) Close() error {
	p.metrics.RecordConnectionChange(context.Background(), -1)
	return p.next.Close()
}
