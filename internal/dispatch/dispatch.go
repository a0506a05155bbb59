package dispatch

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type notificationDeliverer interface {
	DeliverPending(ctx context.Context) (int, error)
}

// Dispatcher periodically drains the notification outbox. Delivery runs
// out of band of the transitions that create the rows.
type Dispatcher struct {
	notifications notificationDeliverer
	interval      time.Duration
	logger        logger.Logger
}

func New(
	notifications notificationDeliverer,
	interval time.Duration,
	logger logger.Logger,
) *Dispatcher {
	return &Dispatcher{
		notifications: notifications,
		interval:      interval,
		logger:        logger,
	}
}

func (d *Dispatcher) Start(ctx context.Context) {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	d.logger.Info("notification dispatcher started",
		logger.Duration("interval", d.interval),
	)

	for {
		select {
		case <-ctx.Done():
			d.logger.Info("notification dispatcher stopped")
			return
		case <-ticker.C:
			d.tick(ctx)
		}
	}
}

func (d *Dispatcher) tick(ctx context.Context) {
	delivered, err := d.notifications.DeliverPending(ctx)
	if err != nil {
		d.logger.Error("failed to deliver pending notifications",
			logger.String("error", err.Error()),
		)
		return
	}

	if delivered > 0 {
		d.logger.Info("notifications delivered",
			logger.Int("count", delivered),
		)
	}
}
