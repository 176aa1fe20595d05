package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"chatdesk-be/internal/dto"
	"chatdesk-be/internal/pkg/logger"
	"chatdesk-be/pkg/events"
	pktNats "chatdesk-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

// IDispatcherService consumes session events from the in-process bus,
// turning escalations into tenant-wide pushes and assignments into a push
// for the assignee. Everything it does is best-effort: failures are logged
// and the message is acked so one broken push never wedges the bus.
type IDispatcherService interface {
	Consume(ctx context.Context) error
}

type dispatcherService struct {
	pubSub        *gochannel.GoChannel
	topicName     string
	pushService   IPushService
	natsPublisher *pktNats.Publisher
	logger        logger.ILogger
}

func NewDispatcherService(
	pubSub *gochannel.GoChannel,
	topicName string,
	pushService IPushService,
	natsPublisher *pktNats.Publisher,
	log logger.ILogger,
) IDispatcherService {
	return &dispatcherService{
		pubSub:        pubSub,
		topicName:     topicName,
		pushService:   pushService,
		natsPublisher: natsPublisher,
		logger:        log,
	}
}

func (s *dispatcherService) Consume(ctx context.Context) error {
	messages, err := s.pubSub.Subscribe(ctx, s.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			s.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (s *dispatcherService) processMessage(ctx context.Context, msg *message.Message) {
	defer msg.Ack()

	var envelope sessionEventEnvelope
	if err := json.Unmarshal(msg.Payload, &envelope); err != nil {
		s.logger.Error("dispatcher", "failed to unmarshal event", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	switch envelope.Type {
	case events.TypeSessionEscalation:
		s.pushEscalation(ctx, envelope.Payload)
	case events.TypeSessionAssigned:
		s.pushAssignment(ctx, envelope.Payload)
	}

	// Mirror internally-originated events for external consumers; the
	// escalation itself arrived over NATS, reflecting it would echo.
	if s.natsPublisher != nil && envelope.Type != events.TypeSessionEscalation {
		event := events.BaseEvent{
			Type:       envelope.Type,
			Data:       envelope.Payload,
			OccurredAt: time.Now(),
		}
		if err := s.natsPublisher.Publish(ctx, event); err != nil {
			s.logger.Warn("dispatcher", "NATS mirror failed", map[string]interface{}{
				"type":  envelope.Type,
				"error": err.Error(),
			})
		}
	}
}

func payloadString(payload map[string]interface{}, key string) string {
	v, _ := payload[key].(string)
	return v
}

func payloadUUID(payload map[string]interface{}, key string) *uuid.UUID {
	id, err := uuid.Parse(payloadString(payload, key))
	if err != nil {
		return nil
	}
	return &id
}

func (s *dispatcherService) pushEscalation(ctx context.Context, payload map[string]interface{}) {
	customerId := payloadUUID(payload, "customer_id")
	if customerId == nil {
		s.logger.Warn("dispatcher", "escalation without customer_id", map[string]interface{}{})
		return
	}

	body := payloadString(payload, "summary")
	if body == "" {
		body = "A guest is waiting for a human reply"
	}
	if name := payloadString(payload, "guest_name"); name != "" {
		body = fmt.Sprintf("%s: %s", name, body)
	}

	result, err := s.pushService.Send(ctx, &dto.SendPushRequest{
		Title:      "Guest needs a human",
		Body:       body,
		Tag:        payloadString(payload, "session_id"),
		CustomerId: customerId,
	})
	if err != nil {
		s.logger.Warn("dispatcher", "escalation push failed", map[string]interface{}{
			"customer_id": customerId.String(),
			"error":       err.Error(),
		})
		return
	}
	s.logger.Info("dispatcher", "escalation push sent", map[string]interface{}{
		"customer_id": customerId.String(),
		"sent":        result.Sent,
		"total":       result.Total,
	})
}

func (s *dispatcherService) pushAssignment(ctx context.Context, payload map[string]interface{}) {
	userId := payloadUUID(payload, "assigned_user_id")
	if userId == nil {
		// Team assignments have no single recipient.
		return
	}

	_, err := s.pushService.Send(ctx, &dto.SendPushRequest{
		Title:  "Chat assigned to you",
		Body:   "A support chat was assigned to you",
		Tag:    payloadString(payload, "session_id"),
		UserId: userId,
	})
	if err != nil {
		s.logger.Warn("dispatcher", "assignment push failed", map[string]interface{}{
			"user_id": userId.String(),
			"error":   err.Error(),
		})
	}
}
