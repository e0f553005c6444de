// Package events delivers change signals inside the process. Delivery is fire and forget:
// handlers run on their own goroutines and a failing handler affects nobody else.
package events

//go:generate go run go.uber.org/mock/mockgen -source=./events.go -destination=./mocks/events_mock.go -package=mocks

import (
	"context"
	"saapadu/infras/otel"
	"saapadu/shared/constant"
	"saapadu/shared/timezone"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

type Topic string

const (
	// TopicHotelsChanged fires once after every successful hotel or menu mutation.
	TopicHotelsChanged Topic = "hotelsUpdated"
	// TopicOrdersChanged fires when the storefront reports new or changed orders.
	TopicOrdersChanged Topic = "ordersUpdated"
)

type Event struct {
	Topic Topic     `json:"topic"`
	At    time.Time `json:"at"`
}

type Handler func(ctx context.Context, event Event)

type Bus interface {
	Publish(ctx context.Context, topic Topic)
	Subscribe(topic Topic, handler Handler)
	// Wait blocks until every handler started so far has returned.
	Wait()
}

type busImpl struct {
	otel otel.Otel

	mu       sync.RWMutex
	handlers map[Topic][]Handler
	inflight sync.WaitGroup
}

func New(otl otel.Otel) Bus {
	return &busImpl{
		otel:     otl,
		handlers: make(map[Topic][]Handler),
	}
}

func (b *busImpl) Subscribe(topic Topic, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[topic] = append(b.handlers[topic], handler)
}

func (b *busImpl) Publish(ctx context.Context, topic Topic) {
	ctx, scope := b.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Publish")
	defer scope.End()

	scope.SetAttribute("event.topic", string(topic))

	b.mu.RLock()
	handlers := b.handlers[topic]
	b.mu.RUnlock()

	event := Event{Topic: topic, At: timezone.Now()}

	// Handlers outlive the request that triggered them.
	detached := context.WithoutCancel(ctx)

	for _, handler := range handlers {
		b.inflight.Add(1)

		go func(handler Handler) {
			defer b.inflight.Done()
			defer func() {
				if r := recover(); r != nil {
					log.Error().Interface("panic", r).Str("topic", string(topic)).Msg("event handler panicked")
				}
			}()

			handler(detached, event)
		}(handler)
	}

	log.Debug().Str("topic", string(topic)).Int("handlers", len(handlers)).Msg("event published")
}

func (b *busImpl) Wait() {
	b.inflight.Wait()
}
