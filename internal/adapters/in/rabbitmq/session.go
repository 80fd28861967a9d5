package rabbitmq

import (
	"context"
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/suchimauz/engineer-availability-resolver/internal/core/ports/out"
)

type SessionChangeMessage struct {
	EngineerID string `json:"engineer_id"`
	SessionID  string `json:"session_id"`
}

func (l *StoreChangeListener) startSessionQueue(ctx context.Context) error {
	return l.consumeQueue(ctx,
		l.cfg.RabbitMq.QueueConfig.SessionQueueName,
		l.cfg.RabbitMq.QueueConfig.SessionQueueBind,
		l.cfg.RabbitMq.QueueConfig.SessionQueueExchange,
		l.processSessionMessage,
	)
}

func (l *StoreChangeListener) processSessionMessage(ctx context.Context, msg amqp.Delivery) error {
	routingKey, err := l.parseChangeMessageRoutingKey(msg)
	if err != nil {
		return err
	}

	if routingKey.ResourceType != ChangeResourceTypeSession {
		return nil
	}

	var msgJson SessionChangeMessage
	if err := json.Unmarshal(msg.Body, &msgJson); err != nil {
		return err
	}

	l.logger.Info("session.message.received", out.LogFields{
		"engineerId": msgJson.EngineerID,
		"sessionId":  msgJson.SessionID,
		"changeType": routingKey.ChangeType,
	})

	l.useCase.InvalidateEngineerCache(ctx, msgJson.EngineerID)

	return nil
}
