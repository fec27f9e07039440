package nats

import (
	"context"
	"fmt"

	"github.com/piresc/passeio/internal/pkg/constants"
	"github.com/piresc/passeio/internal/pkg/logger"
	"github.com/piresc/passeio/internal/pkg/models"
	natspkg "github.com/piresc/passeio/internal/pkg/nats"
)

// NATSGateway publishes tutor events
type NATSGateway struct {
	producer *natspkg.Producer
}

// NewNATSGateway creates a NATS gateway. A nil producer turns publishing into a no-op.
func NewNATSGateway(producer *natspkg.Producer) *NATSGateway {
	return &NATSGateway{producer: producer}
}

// PublishAppointmentProposed announces a walk accepted by the marketplace
func (g *NATSGateway) PublishAppointmentProposed(ctx context.Context, event models.AppointmentProposedEvent) error {
	if g.producer == nil {
		logger.DebugCtx(ctx, "Event bus disabled, skipping publish",
			logger.String("subject", constants.SubjectAppointmentProposed))
		return nil
	}

	if err := g.producer.Publish(ctx, constants.SubjectAppointmentProposed, event); err != nil {
		return fmt.Errorf("failed to publish appointment proposed event: %w", err)
	}
	return nil
}
