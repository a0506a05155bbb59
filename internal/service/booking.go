package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/joshishrau/FacilityFlow/internal/domain"
	"github.com/joshishrau/FacilityFlow/internal/service/ports"
	"github.com/joshishrau/FacilityFlow/internal/slotgrid"
	"github.com/wb-go/wbf/logger"
)

const (
	ScopeSelf        = "self"
	ScopeHOD         = "hod"
	ScopeHallManager = "hall_manager"
	ScopeAdmin       = "admin"
)

type BookingService struct {
	bookingRepo ports.BookingRepo
	userRepo    ports.UserRepo
	notifier    ports.Notifier
	catalog     []string
	logger      logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	userRepo ports.UserRepo,
	notifier ports.Notifier,
	catalog []string,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
		notifier:    notifier,
		catalog:     catalog,
		logger:      logger,
	}
}

// Submit validates a booking request, routes it to its first approval
// stage based on the requester's role class and persists it together
// with its slots. Exactly one notification event is emitted.
func (s *BookingService) Submit(ctx context.Context, input domain.SubmitBookingInput) (*domain.Booking, error) {
	if err := s.validateSubmit(input); err != nil {
		return nil, err
	}

	requester, err := s.userRepo.GetByUID(ctx, input.UID)
	if err != nil {
		return nil, fmt.Errorf("look up requester: %w", err)
	}

	// An HOD's own request skips department review; a hall manager's is
	// auto-approved without the conflict check.
	status := domain.StatusPendingHOD
	switch requester.Role {
	case domain.RoleHOD:
		status = domain.StatusPendingHall
	case domain.RoleHallManager:
		status = domain.StatusApproved
	}

	now := time.Now().UTC()
	booking := &domain.Booking{
		ID:                uuid.New().String(),
		UID:               requester.UID,
		Name:              requester.Name,
		Department:        input.Department,
		EventName:         input.EventName,
		Purpose:           input.Purpose,
		Date:              input.Date,
		Hall:              input.Hall,
		Notes:             input.Notes,
		TotalDuration:     len(input.Slots),
		Status:            status,
		Slots:             input.Slots,
		SupportingDocPath: input.SupportingDocPath,
		CreatedAt:         now,
	}
	if status == domain.StatusApproved {
		booking.ApprovedAt = &now
	}

	if err = s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking submitted",
		logger.String("booking_id", booking.ID),
		logger.String("uid", booking.UID),
		logger.String("hall", booking.Hall),
		logger.String("status", string(booking.Status)),
	)

	bg := context.WithoutCancel(ctx)
	switch status {
	case domain.StatusPendingHOD:
		go s.notifier.NotifyRole(bg, domain.RoleHOD,
			fmt.Sprintf("New booking %s awaiting HOD approval", booking.ID))
	case domain.StatusPendingHall:
		go s.notifier.NotifyRole(bg, domain.RoleHallManager,
			fmt.Sprintf("Booking %s awaiting Hall Manager approval", booking.ID))
	case domain.StatusApproved:
		go s.notifier.NotifyUser(bg, booking.UID,
			fmt.Sprintf("Your booking %s has been auto-approved by Hall Manager", booking.ID))
	}

	return booking, nil
}

func (s *BookingService) validateSubmit(input domain.SubmitBookingInput) error {
	if input.EventName == "" {
		return fmt.Errorf("%w: event_name is required", domain.ErrValidation)
	}
	if input.Hall == "" {
		return fmt.Errorf("%w: hall is required", domain.ErrValidation)
	}
	if input.Department == "" {
		return fmt.Errorf("%w: department is required", domain.ErrValidation)
	}
	if _, err := time.Parse(domain.DateFormat, input.Date); err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", domain.ErrValidation)
	}
	if len(input.Slots) == 0 {
		return fmt.Errorf("%w: at least one slot is required", domain.ErrValidation)
	}
	if !slotgrid.Contiguous(s.catalog, input.Slots) {
		return fmt.Errorf("%w: slots must be a contiguous run of catalog slots", domain.ErrValidation)
	}
	return nil
}

// ApproveByHOD moves a pending_hod booking to pending_hall and notifies
// the hall managers. No conflict check runs here; conflicts are deferred
// to the final stage since only approved bookings reserve slots.
func (s *BookingService) ApproveByHOD(ctx context.Context, bookingID, approverUID string) (*domain.Booking, error) {
	approver, err := s.userRepo.GetByUID(ctx, approverUID)
	if err != nil {
		return nil, fmt.Errorf("look up approver: %w", err)
	}

	booking, err := s.bookingRepo.ApproveByHOD(ctx, bookingID, approver.SignaturePath)
	if err != nil {
		return nil, fmt.Errorf("approve by hod: %w", err)
	}

	s.logger.Info("booking forwarded to hall manager",
		logger.String("booking_id", booking.ID),
		logger.String("approver_uid", approverUID),
	)

	go s.notifier.NotifyRole(context.WithoutCancel(ctx), domain.RoleHallManager,
		fmt.Sprintf("Booking %s forwarded by HOD awaiting Hall Manager approval", booking.ID))

	return booking, nil
}

// ApproveByHall finalizes a pending_hall booking. The repository runs the
// slot conflict check and the status write as one locked transaction; on
// conflict the booking stays pending_hall and the caller resolves it.
func (s *BookingService) ApproveByHall(ctx context.Context, bookingID, approverUID string) (*domain.Booking, error) {
	approver, err := s.userRepo.GetByUID(ctx, approverUID)
	if err != nil {
		return nil, fmt.Errorf("look up approver: %w", err)
	}

	booking, err := s.bookingRepo.ApproveByHall(ctx, bookingID, approver.SignaturePath)
	if err != nil {
		return nil, fmt.Errorf("approve by hall: %w", err)
	}

	s.logger.Info("booking approved",
		logger.String("booking_id", booking.ID),
		logger.String("approver_uid", approverUID),
	)

	go s.notifier.NotifyUser(context.WithoutCancel(ctx), booking.UID,
		fmt.Sprintf("Your booking %s has been approved by Hall Manager", booking.ID))

	return booking, nil
}

// ListForUser returns the bookings visible to the caller under the given
// scope. An empty scope defaults to the caller's own role class.
func (s *BookingService) ListForUser(ctx context.Context, uid, scope string) (*domain.BookingFeed, error) {
	caller, err := s.userRepo.GetByUID(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("look up caller: %w", err)
	}

	if scope == "" {
		scope = defaultScope(caller.Role)
	}
	if !scopeAllowed(caller.Role, scope) {
		return nil, fmt.Errorf("%w: scope %q is not available to this role", domain.ErrValidation, scope)
	}

	feed := &domain.BookingFeed{Scope: scope}
	switch scope {
	case ScopeSelf:
		feed.Bookings, err = s.bookingRepo.ListByUID(ctx, caller.UID)
	case ScopeHOD:
		if caller.Department == "" {
			return feed, nil
		}
		feed.Bookings, err = s.bookingRepo.ListPendingHOD(ctx, caller.Department)
	case ScopeHallManager:
		feed.Bookings, err = s.bookingRepo.ListPendingHall(ctx, caller.Halls())
	case ScopeAdmin:
		feed.PendingHOD, err = s.bookingRepo.ListByStatus(ctx, domain.StatusPendingHOD)
		if err == nil {
			feed.PendingHall, err = s.bookingRepo.ListByStatus(ctx, domain.StatusPendingHall)
		}
	default:
		return nil, fmt.Errorf("%w: unknown scope %q", domain.ErrValidation, scope)
	}
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return feed, nil
}

func defaultScope(role domain.RoleClass) string {
	switch role {
	case domain.RoleHOD:
		return ScopeHOD
	case domain.RoleHallManager:
		return ScopeHallManager
	case domain.RoleAdmin:
		return ScopeAdmin
	default:
		return ScopeSelf
	}
}

func scopeAllowed(role domain.RoleClass, scope string) bool {
	switch scope {
	case ScopeSelf:
		return true
	case ScopeHOD:
		return role == domain.RoleHOD || role == domain.RoleAdmin
	case ScopeHallManager:
		return role == domain.RoleHallManager || role == domain.RoleAdmin
	case ScopeAdmin:
		return role == domain.RoleAdmin
	default:
		return false
	}
}

// PublicApproved is the read-only calendar projection: every approved
// booking with its earliest start and latest end derived from the slots.
func (s *BookingService) PublicApproved(ctx context.Context) ([]*domain.ApprovedPublic, error) {
	bookings, err := s.bookingRepo.ListByStatus(ctx, domain.StatusApproved)
	if err != nil {
		return nil, fmt.Errorf("list approved: %w", err)
	}

	res := make([]*domain.ApprovedPublic, 0, len(bookings))
	for _, b := range bookings {
		start, end := slotgrid.Span(b.Slots)
		res = append(res, &domain.ApprovedPublic{
			ID:         b.ID,
			Date:       b.Date,
			Hall:       b.Hall,
			Department: b.Department,
			EventName:  b.EventName,
			Purpose:    b.Purpose,
			StartTime:  start,
			EndTime:    end,
		})
	}
	return res, nil
}
