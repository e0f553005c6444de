package events

import (
	"context"
	"saapadu/config"
	"saapadu/infras/kafka"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

// Forwarder bridges the local bus and Kafka. Hotel changes go out so storefront
// instances can refresh; order signals from the storefront come in as TopicOrdersChanged.
type Forwarder struct {
	client      kafka.Client
	hotelsTopic string
	ordersTopic string
	group       string
}

func NewForwarder(cfg *config.Config, client kafka.Client) *Forwarder {
	return &Forwarder{
		client:      client,
		hotelsTopic: cfg.Kafka.TopicHotels,
		ordersTopic: cfg.Kafka.TopicOrders,
		group:       cfg.Kafka.ConsumerGroup,
	}
}

// Register subscribes the forwarder to the hotels changed signal.
func (f *Forwarder) Register(bus Bus) {
	bus.Subscribe(TopicHotelsChanged, f.forward)
}

func (f *Forwarder) forward(ctx context.Context, event Event) {
	err := f.client.SendMessages(ctx, f.hotelsTopic, kafka.Message{
		Key:   string(event.Topic),
		Value: event,
	})
	if err != nil {
		log.Warn().Err(err).Str("topic", f.hotelsTopic).Msg("failed to forward change signal")
	}
}

// Listen republishes every order signal read from Kafka on bus. It blocks until ctx is done.
func (f *Forwarder) Listen(ctx context.Context, bus Bus) {
	f.client.Consume(ctx, f.group, f.ordersTopic, func(msg kafkaGo.Message) {
		event, err := kafka.Decode[Event](msg)
		if err != nil {
			log.Warn().Err(err).Str("topic", f.ordersTopic).Msg("dropping unreadable order signal")

			return
		}

		log.Debug().Time("at", event.At).Msg("order signal received")
		bus.Publish(ctx, TopicOrdersChanged)
	})
}

// Close releases the Kafka writers.
func (f *Forwarder) Close() error {
	return f.client.Close() //nolint:wrapcheck
}
