package rabbitmq

import (
	"context"
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/suchimauz/engineer-availability-resolver/internal/core/ports/out"
)

type RuleChangeMessage struct {
	EngineerID string `json:"engineer_id"`
	RuleID     string `json:"rule_id"`
}

func (l *StoreChangeListener) startRuleQueue(ctx context.Context) error {
	return l.consumeQueue(ctx,
		l.cfg.RabbitMq.QueueConfig.RuleQueueName,
		l.cfg.RabbitMq.QueueConfig.RuleQueueBind,
		l.cfg.RabbitMq.QueueConfig.RuleQueueExchange,
		l.processRuleMessage,
	)
}

func (l *StoreChangeListener) processRuleMessage(ctx context.Context, msg amqp.Delivery) error {
	routingKey, err := l.parseChangeMessageRoutingKey(msg)
	if err != nil {
		return err
	}

	// Сброс всего кэша отдельным ресурсом
	if routingKey.ResourceType == ChangeResourceTypeAll {
		l.useCase.InvalidateAllCache(ctx)
		l.logger.Info("rule.message.invalidated_all", out.LogFields{})
		return nil
	}

	if routingKey.ResourceType != ChangeResourceTypeRule {
		return nil
	}

	var msgJson RuleChangeMessage
	if err := json.Unmarshal(msg.Body, &msgJson); err != nil {
		return err
	}

	l.logger.Info("rule.message.received", out.LogFields{
		"engineerId": msgJson.EngineerID,
		"ruleId":     msgJson.RuleID,
		"changeType": routingKey.ChangeType,
	})

	// Разрешенные дни пересчитываются лениво, достаточно инвалидации
	// и при store, и при invalidate
	l.useCase.InvalidateEngineerCache(ctx, msgJson.EngineerID)

	return nil
}
