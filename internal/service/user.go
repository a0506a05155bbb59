package service

import (
	"context"
	"fmt"
	"time"

	"github.com/joshishrau/FacilityFlow/internal/domain"
	"github.com/joshishrau/FacilityFlow/internal/service/ports"
)

type UserService struct {
	repo ports.UserRepo
}

func NewUserService(repo ports.UserRepo) *UserService {
	return &UserService{repo: repo}
}

// Sync upserts the caller's profile as reported by the identity
// subsystem. The raw role string is normalized to its role class here,
// once, at the boundary; nothing downstream sees the raw value.
func (s *UserService) Sync(ctx context.Context, input domain.SyncUserInput) (*domain.User, error) {
	if input.UID == "" {
		return nil, fmt.Errorf("%w: uid is required", domain.ErrValidation)
	}

	user := &domain.User{
		UID:                input.UID,
		Name:               input.Name,
		Email:              input.Email,
		RoleRaw:            input.Role,
		Role:               domain.NormalizeRole(input.Role),
		Department:         input.Department,
		HallResponsibility: input.HallResponsibility,
		SignaturePath:      input.SignaturePath,
		TelegramChatID:     input.TelegramChatID,
		CreatedAt:          time.Now().UTC(),
	}

	if err := s.repo.Upsert(ctx, user); err != nil {
		return nil, fmt.Errorf("sync user: %w", err)
	}

	return s.repo.GetByUID(ctx, input.UID)
}

func (s *UserService) GetByUID(ctx context.Context, uid string) (*domain.User, error) {
	return s.repo.GetByUID(ctx, uid)
}
