package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/piresc/passeio/internal/pkg/logger"
	nrpkg "github.com/piresc/passeio/internal/pkg/newrelic"
)

// Publisher is the raw publish side of a connection
type Publisher interface {
	Publish(subject string, data []byte) error
}

// Producer publishes JSON encoded events
type Producer struct {
	pub Publisher
}

// NewProducer creates a producer on top of a connection
func NewProducer(pub Publisher) *Producer {
	return &Producer{pub: pub}
}

// Publish encodes message as JSON and sends it to subject
func (p *Producer) Publish(ctx context.Context, subject string, message interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msgBytes, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	err = nrpkg.WithMessageSegment(ctx, "NATS", subject, func() error {
		return p.pub.Publish(subject, msgBytes)
	})
	if err != nil {
		return err
	}

	logger.DebugCtx(ctx, "Published message",
		logger.String("subject", subject),
		logger.Int("bytes", len(msgBytes)))
	return nil
}
