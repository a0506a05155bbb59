package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/joshishrau/FacilityFlow/internal/domain"
	"github.com/joshishrau/FacilityFlow/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// NotificationService is the outbox: transitions record events here, the
// dispatch loop drains them through the external sender. Recording and
// delivery never affect the transition that produced the event.
type NotificationService struct {
	repo      ports.NotificationRepo
	userRepo  ports.UserRepo
	sender    ports.NotificationSender
	batchSize int
	logger    logger.Logger
}

func NewNotificationService(
	repo ports.NotificationRepo,
	userRepo ports.UserRepo,
	sender ports.NotificationSender,
	batchSize int,
	logger logger.Logger,
) *NotificationService {
	return &NotificationService{
		repo:      repo,
		userRepo:  userRepo,
		sender:    sender,
		batchSize: batchSize,
		logger:    logger,
	}
}

func (s *NotificationService) NotifyUser(ctx context.Context, uid, message string) {
	n := &domain.Notification{
		ID:        uuid.New().String(),
		UID:       uid,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, n); err != nil {
		s.logger.Error("failed to record notification",
			logger.String("uid", uid),
			logger.String("error", err.Error()),
		)
	}
}

func (s *NotificationService) NotifyRole(ctx context.Context, role domain.RoleClass, message string) {
	uids, err := s.userRepo.ListUIDsByRole(ctx, role)
	if err != nil {
		s.logger.Error("failed to resolve role recipients",
			logger.String("role", string(role)),
			logger.String("error", err.Error()),
		)
		return
	}
	for _, uid := range uids {
		s.NotifyUser(ctx, uid, message)
	}
}

// DeliverPending pushes one batch of undelivered notifications through
// the sender and returns how many were retired. Send failures keep the
// row undelivered for the next pass; rows whose user vanished are
// retired so they do not clog the outbox.
func (s *NotificationService) DeliverPending(ctx context.Context) (int, error) {
	pending, err := s.repo.ListUndelivered(ctx, s.batchSize)
	if err != nil {
		return 0, err
	}
	if len(pending) == 0 {
		return 0, nil
	}

	delivered := make([]string, 0, len(pending))
	for _, n := range pending {
		user, err := s.userRepo.GetByUID(ctx, n.UID)
		if err != nil {
			s.logger.Error("dropping notification for unknown user",
				logger.String("notification_id", n.ID),
				logger.String("uid", n.UID),
			)
			delivered = append(delivered, n.ID)
			continue
		}

		if err := s.sender.Send(ctx, user, n.Message); err != nil {
			s.logger.Error("failed to deliver notification",
				logger.String("notification_id", n.ID),
				logger.String("uid", n.UID),
				logger.String("error", err.Error()),
			)
			continue
		}
		delivered = append(delivered, n.ID)
	}

	if len(delivered) > 0 {
		if err := s.repo.MarkDelivered(ctx, delivered); err != nil {
			return 0, err
		}
	}
	return len(delivered), nil
}
