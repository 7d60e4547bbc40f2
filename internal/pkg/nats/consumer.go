package nats

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go/jetstream"

	"github.com/sentinela-app/sentinela/internal/pkg/logger"
)

// JetStreamMessageHandler processes a single message. Returning a non-nil
// error causes the message to be redelivered.
type JetStreamMessageHandler func(msg jetstream.Msg) error

// ConsumerConfig holds the configuration for a durable JetStream consumer
type ConsumerConfig struct {
	StreamName    string
	ConsumerName  string
	FilterSubject string
	AckWait       time.Duration
	MaxDeliver    int
}

// JetStreamConsumer wraps a durable consumer with its consume context
type JetStreamConsumer struct {
	consumeCtx jetstream.ConsumeContext
	config     ConsumerConfig
}

// NewJetStreamConsumer creates (or updates) a durable consumer on the given
// stream and starts consuming. Messages whose handler returns an error are
// nak'd for redelivery; the rest are ack'd.
func NewJetStreamConsumer(ctx context.Context, client *Client, cfg ConsumerConfig, handler JetStreamMessageHandler) (*JetStreamConsumer, error) {
	if cfg.AckWait == 0 {
		cfg.AckWait = 30 * time.Second
	}
	if cfg.MaxDeliver == 0 {
		cfg.MaxDeliver = 3
	}

	consumer, err := client.JetStream().CreateOrUpdateConsumer(ctx, cfg.StreamName, jetstream.ConsumerConfig{
		Durable:       cfg.ConsumerName,
		FilterSubject: cfg.FilterSubject,
		AckPolicy:     jetstream.AckExplicitPolicy,
		AckWait:       cfg.AckWait,
		MaxDeliver:    cfg.MaxDeliver,
		MaxAckPending: 1000,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer %s on stream %s: %w", cfg.ConsumerName, cfg.StreamName, err)
	}

	consumeCtx, err := consumer.Consume(func(msg jetstream.Msg) {
		if err := handler(msg); err != nil {
			logger.Error("message handler failed, scheduling redelivery",
				logger.String("subject", msg.Subject()),
				logger.String("consumer", cfg.ConsumerName),
				logger.Err(err))
			if nakErr := msg.Nak(); nakErr != nil {
				logger.Error("failed to nak message", logger.Err(nakErr))
			}
			return
		}
		if ackErr := msg.Ack(); ackErr != nil {
			logger.Error("failed to ack message", logger.Err(ackErr))
		}
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start consuming from %s: %w", cfg.ConsumerName, err)
	}

	return &JetStreamConsumer{consumeCtx: consumeCtx, config: cfg}, nil
}

// Stop stops message delivery for this consumer
func (c *JetStreamConsumer) Stop() {
	if c.consumeCtx != nil {
		c.consumeCtx.Stop()
	}
}
