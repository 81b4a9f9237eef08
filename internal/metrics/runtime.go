package metrics

import (
	"context"
	"runtime"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// RuntimeMetrics observes goroutines, heap and uptime on every collection.
type RuntimeMetrics struct {
	goroutines  metric.Int64ObservableGauge
	heapAlloc   metric.Int64ObservableGauge
	heapObjects metric.Int64ObservableGauge
	gcCycles    metric.Int64ObservableCounter
	uptime      metric.Float64ObservableCounter
	startedAt   time.Time
	attrs       metric.ObserveOption
}

func NewRuntimeMetrics(meter metric.Meter) (*RuntimeMetrics, error) {
	rm := &RuntimeMetrics{
		startedAt: time.Now(),
		attrs:     metric.WithAttributes(attribute.String("go.version", runtime.Version())),
	}

	var err error

	if rm.goroutines, err = meter.Int64ObservableGauge(
		"monolith_service.runtime.goroutines",
		metric.WithDescription("Live goroutines, including in-flight requests"),
		metric.WithUnit("{goroutine}"),
	); err != nil {
		return nil, err
	}

	if rm.heapAlloc, err = meter.Int64ObservableGauge(
		"monolith_service.runtime.heap_alloc",
		metric.WithDescription("Bytes of allocated heap objects"),
		metric.WithUnit("By"),
	); err != nil {
		return nil, err
	}

	if rm.heapObjects, err = meter.Int64ObservableGauge(
		"monolith_service.runtime.heap_objects",
		metric.WithDescription("Number of allocated heap objects"),
		metric.WithUnit("{object}"),
	); err != nil {
		return nil, err
	}

	if rm.gcCycles, err = meter.Int64ObservableCounter(
		"monolith_service.runtime.gc_cycles",
		metric.WithDescription("Completed GC cycles since start"),
		metric.WithUnit("{gc}"),
	); err != nil {
		return nil, err
	}

	if rm.uptime, err = meter.Float64ObservableCounter(
		"monolith_service.uptime",
		metric.WithDescription("Seconds since the metrics were initialised"),
		metric.WithUnit("s"),
	); err != nil {
		return nil, err
	}

	if _, err = meter.RegisterCallback(rm.observe,
		rm.goroutines, rm.heapAlloc, rm.heapObjects, rm.gcCycles, rm.uptime,
	); err != nil {
		return nil, err
	}

	return rm, nil
}

func (rm *RuntimeMetrics) observe(_ context.Context, o metric.Observer) error {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	o.ObserveInt64(rm.goroutines, int64(runtime.NumGoroutine()), rm.attrs)
	o.ObserveInt64(rm.heapAlloc, int64(mem.HeapAlloc), rm.attrs)
	o.ObserveInt64(rm.heapObjects, int64(mem.HeapObjects), rm.attrs)
	o.ObserveInt64(rm.gcCycles, int64(mem.NumGC), rm.attrs)
	o.ObserveFloat64(rm.uptime, time.Since(rm.startedAt).Seconds(), rm.attrs)
	return nil
}
