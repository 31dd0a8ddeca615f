package gateway

import (
	"context"

	nsqpkg "github.com/ridepool/carpool/internal/pkg/nsq"
	"github.com/ridepool/carpool/internal/pkg/models"
)

// AccountGW publishes account domain events over NSQ. A nil producer
// disables publishing (NSQ is optional in local setups).
type AccountGW struct {
	producer *nsqpkg.Producer
}

// NewAccountGW creates the account gateway.
func NewAccountGW(producer *nsqpkg.Producer) *AccountGW {
	return &AccountGW{producer: producer}
}

// DriverRegistered publishes a driver.registered event.
func (g *AccountGW) DriverRegistered(ctx context.Context, event *models.DriverEvent) error {
	if g.producer == nil {
		return nil
	}
	return g.producer.Publish(models.TopicDriverRegistered, event)
}
