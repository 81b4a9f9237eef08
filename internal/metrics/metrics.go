package metrics

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type Metrics struct {
	recordsCreated    metric.Int64Counter
	recordsUpdated    metric.Int64Counter
	recordsDeleted    metric.Int64Counter
	recordsViewed     metric.Int64Counter
	recordsListViewed metric.Int64Counter

	Database  *DatabaseMetrics
	Messaging *MessagingMetrics
	Runtime   *RuntimeMetrics
}

func New(meter metric.Meter) (*Metrics, error) {
	m := &Metrics{}

	var err error

	m.recordsCreated, err = meter.Int64Counter(
		"monolith_service.records.created",
		metric.WithDescription("Total number of records created"),
		metric.WithUnit("{record}"),
	)
	if err != nil {
		return nil, err
	}

	m.recordsUpdated, err = meter.Int64Counter(
		"monolith_service.records.updated",
		metric.WithDescription("Total number of records updated"),
		metric.WithUnit("{record}"),
	)
	if err != nil {
		return nil, err
	}

	m.recordsDeleted, err = meter.Int64Counter(
		"monolith_service.records.deleted",
		metric.WithDescription("Total number of records deleted"),
		metric.WithUnit("{record}"),
	)
	if err != nil {
		return nil, err
	}

	m.recordsViewed, err = meter.Int64Counter(
		"monolith_service.records.viewed",
		metric.WithDescription("Total number of single records viewed"),
		metric.WithUnit("{view}"),
	)
	if err != nil {
		return nil, err
	}

	m.recordsListViewed, err = meter.Int64Counter(
		"monolith_service.records.list_viewed",
		metric.WithDescription("Total number of times a record list was viewed"),
		metric.WithUnit("{view}"),
	)
	if err != nil {
		return nil, err
	}

	m.Database, err = NewDatabaseMetrics(meter)
	if err != nil {
		return nil, err
	}

	m.Messaging, err = NewMessagingMetrics(meter)
	if err != nil {
		return nil, err
	}

	m.Runtime, err = NewRuntimeMetrics(meter)
	if err != nil {
		return nil, err
	}

	return m, nil
}

func (m *Metrics) RecordCreated(ctx context.Context, resource string) {
	if m != nil && m.recordsCreated != nil {
		m.recordsCreated.Add(ctx, 1, resourceAttr(resource))
	}
}

func (m *Metrics) RecordUpdated(ctx context.Context, resource string) {
	if m != nil && m.recordsUpdated != nil {
		m.recordsUpdated.Add(ctx, 1, resourceAttr(resource))
	}
}

func (m *Metrics) RecordDeleted(ctx context.Context, resource string) {
	if m != nil && m.recordsDeleted != nil {
		m.recordsDeleted.Add(ctx, 1, resourceAttr(resource))
	}
}

func (m *Metrics) RecordViewed(ctx context.Context, resource string) {
	if m != nil && m.recordsViewed != nil {
		m.recordsViewed.Add(ctx, 1, resourceAttr(resource))
	}
}

func (m *Metrics) RecordListViewed(ctx context.Context, resource string) {
	if m != nil && m.recordsListViewed != nil {
		m.recordsListViewed.Add(ctx, 1, resourceAttr(resource))
	}
}

// DB returns the database metrics, nil-safe for a nil Metrics.
func (m *Metrics) DB() *DatabaseMetrics {
	if m == nil {
		return nil
	}
	return m.Database
}

func resourceAttr(resource string) metric.AddOption {
	return metric.WithAttributes(attribute.String("resource", resource))
}

// Broker returns the messaging metrics, nil-safe for a nil Metrics.
func (m *Metrics) Broker() *MessagingMetrics {
	if m == nil {
		return nil
	}
	return m.Messaging
}

// NewMock creates a no-op Metrics instance for testing
// The returned Metrics will safely ignore all Record* calls
func NewMock() *Metrics {
	return &Metrics{Database: &DatabaseMetrics{}, Messaging: &MessagingMetrics{}}
}
