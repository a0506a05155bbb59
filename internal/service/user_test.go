package service

import (
	"context"
	"errors"
	"testing"

	"github.com/joshishrau/FacilityFlow/internal/domain"
	"github.com/joshishrau/FacilityFlow/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_Sync_NormalizesRole(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewUserService(userRepo)

	stored := &domain.User{UID: "u1", Name: "Alice", Role: domain.RoleHOD}

	userRepo.EXPECT().Upsert(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, user *domain.User) {
			assert.Equal(t, "Head of Department", user.RoleRaw)
			assert.Equal(t, domain.RoleHOD, user.Role)
		}).
		Return(nil)
	userRepo.EXPECT().GetByUID(mock.Anything, "u1").Return(stored, nil)

	user, err := svc.Sync(context.Background(), domain.SyncUserInput{
		UID:  "u1",
		Name: "Alice",
		Role: "Head of Department",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.RoleHOD, user.Role)
}

func TestUserService_Sync_UnknownRoleFallsBackToRequester(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewUserService(userRepo)

	userRepo.EXPECT().Upsert(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, user *domain.User) {
			assert.Equal(t, domain.RoleRequester, user.Role)
		}).
		Return(nil)
	userRepo.EXPECT().GetByUID(mock.Anything, "u1").
		Return(&domain.User{UID: "u1", Role: domain.RoleRequester}, nil)

	user, err := svc.Sync(context.Background(), domain.SyncUserInput{
		UID:  "u1",
		Role: "visiting professor",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.RoleRequester, user.Role)
}

func TestUserService_Sync_MissingUID(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewUserService(userRepo)

	_, err := svc.Sync(context.Background(), domain.SyncUserInput{Name: "Alice"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_Sync_UpsertError(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewUserService(userRepo)

	userRepo.EXPECT().Upsert(mock.Anything, mock.Anything).Return(errors.New("db down"))

	_, err := svc.Sync(context.Background(), domain.SyncUserInput{UID: "u1"})

	require.Error(t, err)
}

func TestUserService_GetByUID(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewUserService(userRepo)

	userRepo.EXPECT().GetByUID(mock.Anything, "missing").Return(nil, domain.ErrUserNotFound)

	_, err := svc.GetByUID(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
