package config

import (
	"log/slog"

	"github.com/campusvoice/feedback-service/internal/events"
)

// EventConfig holds configuration for event publishing
type EventConfig struct {
	Enabled           bool
	Publisher         string // gochannel or mock
	NotificationTopic string
}

func LoadEventConfig() *EventConfig {
	return &EventConfig{
		Enabled:           getEnv("EVENTS_ENABLED", "true") == "true",
		Publisher:         getEnv("EVENTS_PUBLISHER", "gochannel"),
		NotificationTopic: getEnv("NOTIFICATION_TOPIC", "notifications"),
	}
}

// CreateEventPublisher creates an event publisher based on configuration
func (c *EventConfig) CreateEventPublisher(logger *slog.Logger) events.EventPublisher {
	if !c.Enabled {
		logger.Info("Event publishing disabled, using mock publisher")
		return events.NewMockEventPublisher(logger)
	}

	switch c.Publisher {
	case "gochannel":
		logger.Info("Creating in-process event publisher", "topic", c.NotificationTopic)
		return events.NewGoChannelEventPublisher(events.PublisherConfig{
			TopicName: c.NotificationTopic,
			Logger:    logger,
		})
	case "mock":
		logger.Info("Using mock event publisher")
		return events.NewMockEventPublisher(logger)
	default:
		logger.Warn("Unknown event publisher type, falling back to mock", "publisher", c.Publisher)
		return events.NewMockEventPublisher(logger)
	}
}
