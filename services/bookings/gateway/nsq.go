package gateway

import (
	"context"

	"github.com/ridepool/carpool/internal/pkg/models"
	nsqpkg "github.com/ridepool/carpool/internal/pkg/nsq"
)

// BookingGW publishes booking domain events over NSQ. A nil producer
// disables publishing (NSQ is optional in local setups).
type BookingGW struct {
	producer *nsqpkg.Producer
}

// NewBookingGW creates the booking gateway.
func NewBookingGW(producer *nsqpkg.Producer) *BookingGW {
	return &BookingGW{producer: producer}
}

// BookingCreated publishes a booking.created event.
func (g *BookingGW) BookingCreated(ctx context.Context, event *models.BookingEvent) error {
	if g.producer == nil {
		return nil
	}
	return g.producer.Publish(models.TopicBookingCreated, event)
}

// BookingCancelled publishes a booking.cancelled event.
func (g *BookingGW) BookingCancelled(ctx context.Context, event *models.BookingEvent) error {
	if g.producer == nil {
		return nil
	}
	return g.producer.Publish(models.TopicBookingCancelled, event)
}
