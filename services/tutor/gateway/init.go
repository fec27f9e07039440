package gateway

import (
	"context"

	httpclient "github.com/piresc/passeio/internal/pkg/http"
	"github.com/piresc/passeio/internal/pkg/models"
	natspkg "github.com/piresc/passeio/internal/pkg/nats"
	"github.com/piresc/passeio/services/tutor"
	gateway_nats "github.com/piresc/passeio/services/tutor/gateway/nats"
)

// TutorGW handles tutor gateway operations
type TutorGW struct {
	*HTTPGateway
	natsGateway *gateway_nats.NATSGateway
}

// NewTutorGW creates the gateway over the marketplace client and the event
// producer. producer may be nil when no event bus is configured.
func NewTutorGW(client *httpclient.Client, producer *natspkg.Producer) tutor.TutorGW {
	return &TutorGW{
		HTTPGateway: NewHTTPGateway(client),
		natsGateway: gateway_nats.NewNATSGateway(producer),
	}
}

// PublishAppointmentProposed delegates to the NATS gateway
func (gw *TutorGW) PublishAppointmentProposed(ctx context.Context, event models.AppointmentProposedEvent) error {
	return gw.natsGateway.PublishAppointmentProposed(ctx, event)
}
