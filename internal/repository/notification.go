package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/joshishrau/FacilityFlow/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type NotificationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewNotificationRepo(db *dbpg.DB) *NotificationRepository {
	return &NotificationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *NotificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	query := `INSERT INTO notifications (id, uid, message, delivered, created_at)
			  VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		n.ID, n.UID, n.Message, n.Delivered, n.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

func (r *NotificationRepository) ListUndelivered(ctx context.Context, limit int) ([]*domain.Notification, error) {
	query := `SELECT id, uid, message, delivered, created_at
			  FROM notifications
			  WHERE delivered = FALSE
			  ORDER BY created_at
			  LIMIT $1`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list undelivered: %w", err)
	}
	defer rows.Close()

	var res []*domain.Notification
	for rows.Next() {
		var n domain.Notification
		if err = rows.Scan(&n.ID, &n.UID, &n.Message, &n.Delivered, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		res = append(res, &n)
	}
	return res, rows.Err()
}

func (r *NotificationRepository) MarkDelivered(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	query := `UPDATE notifications SET delivered = TRUE WHERE id = ANY($1)`
	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, pq.Array(ids)); err != nil {
		return fmt.Errorf("mark delivered: %w", err)
	}
	return nil
}
