package service

import (
	"context"
	"encoding/json"

	"chatdesk-be/internal/pkg/logger"
	"chatdesk-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// SessionEventsTopic is the in-process topic session transitions land on.
const SessionEventsTopic = "session-events"

type IPublisherService interface {
	PublishSessionEvent(ctx context.Context, event events.Event) error
}

type publisherService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	logger    logger.ILogger
}

func NewPublisherService(pubSub *gochannel.GoChannel, topicName string, log logger.ILogger) IPublisherService {
	return &publisherService{
		pubSub:    pubSub,
		topicName: topicName,
		logger:    log,
	}
}

type sessionEventEnvelope struct {
	Type    string                 `json:"type"`
	Payload map[string]interface{} `json:"payload"`
}

func (s *publisherService) PublishSessionEvent(ctx context.Context, event events.Event) error {
	data, err := json.Marshal(sessionEventEnvelope{
		Type:    event.EventType(),
		Payload: event.Payload(),
	})
	if err != nil {
		return err
	}

	msg := message.NewMessage(watermill.NewUUID(), data)
	msg.SetContext(ctx)

	if err := s.pubSub.Publish(s.topicName, msg); err != nil {
		s.logger.Error("publisher", "failed to publish session event", map[string]interface{}{
			"type":  event.EventType(),
			"error": err.Error(),
		})
		return err
	}
	return nil
}
