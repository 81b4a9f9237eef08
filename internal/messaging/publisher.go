package messaging

import (
	"fmt"
	"log/slog"

	"monolith-service/internal/config"
	"monolith-service/internal/resource"
)

const (
	DriverNone  = "none"
	DriverNATS  = "nats"
	DriverKafka = "kafka"
)

// NewPublisher builds the change-event publisher for cfg.Driver. The "none"
// driver returns a nil publisher, which resource.Notifier treats as a no-op.
func NewPublisher(cfg config.EventsConfig, logger *slog.Logger) (resource.Publisher, error) {
	switch cfg.Driver {
	case "", DriverNone:
		logger.Info("change events disabled")
		return nil, nil
	case DriverNATS:
		p, err := NewNATSPublisher(cfg.NATS.URL, cfg.NATS.SubjectPrefix, logger)
		if err != nil {
			return nil, err
		}
		return p, nil
	case DriverKafka:
		p, err := NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, logger)
		if err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, fmt.Errorf("unsupported events driver %q", cfg.Driver)
	}
}
