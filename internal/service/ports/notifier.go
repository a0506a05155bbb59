package ports

import (
	"context"

	"github.com/joshishrau/FacilityFlow/internal/domain"
)

// Notifier records that a routing event happened, addressed to a single
// user or a whole role class. Recording failures are logged by the
// implementation; callers fire and forget.
type Notifier interface {
	NotifyUser(ctx context.Context, uid, message string)
	NotifyRole(ctx context.Context, role domain.RoleClass, message string)
}

type NotificationRepo interface {
	Create(ctx context.Context, n *domain.Notification) error
	ListUndelivered(ctx context.Context, limit int) ([]*domain.Notification, error)
	MarkDelivered(ctx context.Context, ids []string) error
}

// NotificationSender hands a recorded notification to the external
// delivery channel. A nil error means the outbox row may be retired;
// senders that have no channel for the user report success.
type NotificationSender interface {
	Send(ctx context.Context, user *domain.User, message string) error
}
