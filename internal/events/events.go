// Package events публикует события об изменениях каталога.
package events

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/magabrotheeeer/portfolio-showcase/internal/lib/rabbitmq"
)

// Действия над записями каталога.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// Event — сообщение об изменении записи каталога.
type Event struct {
	Collection string `json:"collection"` // "project" или "app"
	Action     string `json:"action"`
	ID         string `json:"id"`
	At         int64  `json:"at"` // миллисекунды с начала эпохи
}

// New создаёт событие с текущим временем.
func New(collection, action, id string) Event {
	return Event{
		Collection: collection,
		Action:     action,
		ID:         id,
		At:         time.Now().UnixMilli(),
	}
}

// RoutingKey возвращает ключ маршрутизации вида "project.created".
func (e Event) RoutingKey() string {
	return e.Collection + "." + e.Action
}

// Publisher отправляет события.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
}

// Noop отбрасывает события. Используется, когда брокер не настроен.
type Noop struct{}

// Publish ничего не делает.
func (Noop) Publish(context.Context, Event) error { return nil }

// AMQP публикует события в exchange RabbitMQ.
type AMQP struct {
	mu       sync.Mutex // amqp.Channel не допускает конкурентную публикацию
	ch       rabbitmq.Channel
	exchange string
}

// NewAMQP создаёт публикатор поверх открытого канала.
func NewAMQP(ch rabbitmq.Channel, exchange string) *AMQP {
	return &AMQP{ch: ch, exchange: exchange}
}

// Publish отправляет событие с ключом маршрутизации e.RoutingKey().
func (p *AMQP) Publish(ctx context.Context, e Event) error {
	const op = "events.AMQP.Publish"
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := rabbitmq.PublishMessage(p.ch, p.exchange, e.RoutingKey(), e); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
