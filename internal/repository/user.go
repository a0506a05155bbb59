package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/joshishrau/FacilityFlow/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type UserRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewUserRepo(db *dbpg.DB) *UserRepository {
	return &UserRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Upsert inserts the user or updates the fields the caller provided.
// Empty strings and nil pointers keep the stored value, so a login-time
// sync never wipes a previously assigned role or signature.
func (r *UserRepository) Upsert(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users
			  (uid, name, email, role_raw, role, department, hall_responsibility,
			   signature_path, telegram_chat_id, created_at)
			  VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
			  ON CONFLICT (uid) DO UPDATE SET
			    name                = CASE WHEN EXCLUDED.name <> '' THEN EXCLUDED.name ELSE users.name END,
			    email               = CASE WHEN EXCLUDED.email <> '' THEN EXCLUDED.email ELSE users.email END,
			    role_raw            = CASE WHEN EXCLUDED.role_raw <> '' THEN EXCLUDED.role_raw ELSE users.role_raw END,
			    role                = CASE WHEN EXCLUDED.role_raw <> '' THEN EXCLUDED.role ELSE users.role END,
			    department          = CASE WHEN EXCLUDED.department <> '' THEN EXCLUDED.department ELSE users.department END,
			    hall_responsibility = CASE WHEN EXCLUDED.hall_responsibility <> '' THEN EXCLUDED.hall_responsibility ELSE users.hall_responsibility END,
			    signature_path      = COALESCE(EXCLUDED.signature_path, users.signature_path),
			    telegram_chat_id    = COALESCE(EXCLUDED.telegram_chat_id, users.telegram_chat_id)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		user.UID, user.Name, user.Email, user.RoleRaw, user.Role, user.Department,
		user.HallResponsibility, user.SignaturePath, user.TelegramChatID, user.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert user: %w", err)
	}
	return nil
}

func (r *UserRepository) GetByUID(ctx context.Context, uid string) (*domain.User, error) {
	query := `SELECT uid, name, email, role_raw, role, department,
			  		 hall_responsibility, signature_path, telegram_chat_id, created_at
			  FROM users
			  WHERE uid = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, uid)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	var u domain.User
	err = row.Scan(
		&u.UID, &u.Name, &u.Email, &u.RoleRaw, &u.Role, &u.Department,
		&u.HallResponsibility, &u.SignaturePath, &u.TelegramChatID, &u.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan user: %w", err)
	}

	return &u, nil
}

func (r *UserRepository) ListUIDsByRole(ctx context.Context, role domain.RoleClass) ([]string, error) {
	query := `SELECT uid FROM users WHERE role = $1 ORDER BY uid`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, role)
	if err != nil {
		return nil, fmt.Errorf("list uids by role: %w", err)
	}
	defer rows.Close()

	var uids []string
	for rows.Next() {
		var uid string
		if err = rows.Scan(&uid); err != nil {
			return nil, fmt.Errorf("scan uid: %w", err)
		}
		uids = append(uids, uid)
	}
	return uids, rows.Err()
}
