package rabbitmq

import (
	"context"
	"fmt"
	"sync"

	"github.com/goccy/go-json"
	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/lifeclock/internal/models"
)

// Channel — часть *amqp.Channel, нужная для публикации.
type Channel interface {
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// Publisher публикует события об оценках в exchange.
// amqp.Channel не безопасен для конкурентной публикации, поэтому вызовы сериализуются.
type Publisher struct {
	mu         sync.Mutex
	ch         Channel
	exchange   string
	routingKey string
}

// NewPublisher создаёт Publisher поверх канала ch.
func NewPublisher(ch Channel, exchange, routingKey string) *Publisher {
	return &Publisher{
		ch:         ch,
		exchange:   exchange,
		routingKey: routingKey,
	}
}

// PublishEstimate публикует событие о рассчитанной оценке.
func (p *Publisher) PublishEstimate(ctx context.Context, event models.EstimateEvent) error {
	const op = "rabbitmq.PublishEstimate"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.ch.Publish(
		p.exchange,
		p.routingKey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			MessageId:    event.ID,
			Timestamp:    event.AsOf,
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Noop — публикатор, который ничего не отправляет. Используется, когда брокер не настроен.
type Noop struct{}

func (Noop) PublishEstimate(context.Context, models.EstimateEvent) error { return nil }
