package nats

import (
	"context"
	"encoding/json"
	"fmt"
)

// JetStreamProducer publishes messages with at-least-once delivery semantics
type JetStreamProducer struct {
	client *Client
}

// NewJetStreamProducer creates a new producer on top of an existing client
func NewJetStreamProducer(client *Client) *JetStreamProducer {
	return &JetStreamProducer{client: client}
}

// Publish marshals the message to JSON and publishes it to the stream backing
// the subject, waiting for the server ack
func (p *JetStreamProducer) Publish(ctx context.Context, subject string, message interface{}) error {
	data, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	if _, err := p.client.JetStream().Publish(ctx, subject, data); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", subject, err)
	}
	return nil
}
