package ports

import (
	"context"

	"github.com/joshishrau/FacilityFlow/internal/domain"
)

type BookingRepo interface {
	// Create persists the booking and its full slot set atomically.
	Create(ctx context.Context, b *domain.Booking) error
	// ApproveByHOD moves pending_hod -> pending_hall and attaches the
	// approver's signature. Fails with domain.ErrBookingNotFound or
	// domain.ErrInvalidTransition without changing state.
	ApproveByHOD(ctx context.Context, id string, signaturePath *string) (*domain.Booking, error)
	// ApproveByHall moves pending_hall -> approved inside one locked
	// transaction, running the slot conflict check against all other
	// approved bookings for the same hall and date first.
	ApproveByHall(ctx context.Context, id string, signaturePath *string) (*domain.Booking, error)
	ListByUID(ctx context.Context, uid string) ([]*domain.Booking, error)
	ListPendingHOD(ctx context.Context, department string) ([]*domain.Booking, error)
	ListPendingHall(ctx context.Context, halls []string) ([]*domain.Booking, error)
	ListByStatus(ctx context.Context, status domain.BookingStatus) ([]*domain.Booking, error)
}
