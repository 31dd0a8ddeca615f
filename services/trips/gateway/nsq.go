package gateway

import (
	"context"

	"github.com/ridepool/carpool/internal/pkg/models"
	nsqpkg "github.com/ridepool/carpool/internal/pkg/nsq"
)

// TripGW publishes trip domain events over NSQ. A nil producer disables
// publishing (NSQ is optional in local setups).
type TripGW struct {
	producer *nsqpkg.Producer
}

// NewTripGW creates the trip gateway.
func NewTripGW(producer *nsqpkg.Producer) *TripGW {
	return &TripGW{producer: producer}
}

// TripPublished publishes a trip.published event.
func (g *TripGW) TripPublished(ctx context.Context, event *models.TripEvent) error {
	if g.producer == nil {
		return nil
	}
	return g.producer.Publish(models.TopicTripPublished, event)
}

// TripDeleted publishes a trip.deleted event.
func (g *TripGW) TripDeleted(ctx context.Context, event *models.TripEvent) error {
	if g.producer == nil {
		return nil
	}
	return g.producer.Publish(models.TopicTripDeleted, event)
}
