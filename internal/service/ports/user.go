package ports

import (
	"context"

	"github.com/joshishrau/FacilityFlow/internal/domain"
)

type UserRepo interface {
	Upsert(ctx context.Context, user *domain.User) error
	GetByUID(ctx context.Context, uid string) (*domain.User, error)
	ListUIDsByRole(ctx context.Context, role domain.RoleClass) ([]string, error)
}
