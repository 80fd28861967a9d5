package rabbitmq

import (
	"context"
	"fmt"
	"strings"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/suchimauz/engineer-availability-resolver/internal/config"
	"github.com/suchimauz/engineer-availability-resolver/internal/core/ports/in"
	"github.com/suchimauz/engineer-availability-resolver/internal/core/ports/out"
)

// Слушатель сообщений об изменениях в хранилище.
// Любое изменение правила или сессии инвалидирует кэш инженера.
type StoreChangeListener struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	useCase in.AvailabilityUseCase
	cfg     *config.Config
	logger  out.LoggerPort
}

type (
	ChangeType         string
	ChangeResourceType string
)

type ChangeMessageRoutingKey struct {
	Source       string
	Receiver     string
	ResourceType ChangeResourceType
	ChangeType   ChangeType
}

const (
	ChangeResourceTypeAll     ChangeResourceType = "_all_"
	ChangeResourceTypeRule    ChangeResourceType = "availabilityrule"
	ChangeResourceTypeSession ChangeResourceType = "session"
)

const (
	ChangeTypeStore      ChangeType = "store"
	ChangeTypeInvalidate ChangeType = "invalidate"
)

func NewStoreChangeListener(useCase in.AvailabilityUseCase, cfg *config.Config, logger out.LoggerPort) (*StoreChangeListener, error) {
	if !cfg.RabbitMq.Enabled {
		logger.Info("rabbitmq.disabled", out.LogFields{
			"message": "RabbitMQ is disabled, listener will not be started",
		})
		return nil, nil
	}

	conn, err := amqp.Dial(cfg.RabbitMq.AmqpUri)
	if err != nil {
		logger.Error("rabbitmq.connect.failed", out.LogFields{
			"error": err.Error(),
			"url":   cfg.RabbitMq.AmqpUri,
		})
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		logger.Error("rabbitmq.channel.failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}

	return &StoreChangeListener{
		conn:    conn,
		channel: channel,
		useCase: useCase,
		cfg:     cfg,
		logger:  logger,
	}, nil
}

func (l *StoreChangeListener) Start(ctx context.Context) error {
	if err := l.startRuleQueue(ctx); err != nil {
		return err
	}
	l.logger.Info("rule.queue.started", out.LogFields{
		"queue": l.cfg.RabbitMq.QueueConfig.RuleQueueName,
	})

	if err := l.startSessionQueue(ctx); err != nil {
		return err
	}
	l.logger.Info("session.queue.started", out.LogFields{
		"queue": l.cfg.RabbitMq.QueueConfig.SessionQueueName,
	})

	return nil
}

func (l *StoreChangeListener) Stop() error {
	if l == nil || l.channel == nil {
		return nil
	}

	if err := l.channel.Close(); err != nil {
		return err
	}
	return l.conn.Close()
}

// Пример routingKey:
// sheets.availability-resolver.availabilityrule.v1.store
// sheets.availability-resolver.session.v1.invalidate
// booking.availability-resolver._all_.v1.invalidate
func (l *StoreChangeListener) parseChangeMessageRoutingKey(msg amqp.Delivery) (ChangeMessageRoutingKey, error) {
	routingKey := msg.RoutingKey
	parts := strings.Split(routingKey, ".")

	if len(parts) < 5 {
		return ChangeMessageRoutingKey{}, fmt.Errorf("invalid routing key: %s", routingKey)
	}

	return ChangeMessageRoutingKey{
		Source:       parts[0],
		Receiver:     parts[1],
		ResourceType: ChangeResourceType(parts[2]),
		ChangeType:   ChangeType(parts[4]),
	}, nil
}

func (l *StoreChangeListener) consumeQueue(ctx context.Context, queueName, queueBind, queueExchange string, process func(context.Context, amqp.Delivery) error) error {
	queue, err := l.channel.QueueDeclare(
		queueName,
		true,  // durable
		true,  // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}

	err = l.channel.QueueBind(
		queue.Name,
		queueBind,
		queueExchange,
		false,
		nil,
	)
	if err != nil {
		return err
	}

	msgs, err := l.channel.Consume(
		queue.Name,
		"",    // consumer
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg := <-msgs:
				if err := process(ctx, msg); err != nil {
					msg.Nack(false, true) // requeue message
					continue
				}
				msg.Ack(false)
			}
		}
	}()

	return nil
}
