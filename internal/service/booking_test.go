package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/joshishrau/FacilityFlow/internal/domain"
	"github.com/joshishrau/FacilityFlow/internal/service/ports/mocks"
	"github.com/joshishrau/FacilityFlow/internal/slotgrid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newBookingService(t *testing.T) (*mocks.MockBookingRepo, *mocks.MockUserRepo, *mocks.MockNotifier, *BookingService) {
	t.Helper()
	bookingRepo := mocks.NewMockBookingRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockNotifier(t)
	svc := NewBookingService(bookingRepo, userRepo, notifier, slotgrid.DefaultCatalog(), newTestLogger(t))
	return bookingRepo, userRepo, notifier, svc
}

func validSubmitInput() domain.SubmitBookingInput {
	return domain.SubmitBookingInput{
		UID:        "u1",
		Department: "Physics",
		EventName:  "Orientation",
		Purpose:    "freshers",
		Date:       "2026-09-15",
		Hall:       "Main Hall",
		Slots:      []string{"09:00-10:00", "10:00-11:00"},
	}
}

func TestBookingService_Submit_RequesterGoesToHOD(t *testing.T) {
	bookingRepo, userRepo, notifier, svc := newBookingService(t)

	requester := &domain.User{UID: "u1", Name: "Alice", Role: domain.RoleRequester}

	userRepo.EXPECT().GetByUID(mock.Anything, "u1").Return(requester, nil)
	bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyRole(mock.Anything, domain.RoleHOD, mock.Anything).Return()

	booking, err := svc.Submit(context.Background(), validSubmitInput())

	require.NoError(t, err)
	assert.Equal(t, domain.StatusPendingHOD, booking.Status)
	assert.Equal(t, "u1", booking.UID)
	assert.Equal(t, "Alice", booking.Name)
	assert.Equal(t, 2, booking.TotalDuration)
	assert.Nil(t, booking.ApprovedAt)
	assert.NotEmpty(t, booking.ID)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_Submit_HODSkipsDepartmentStage(t *testing.T) {
	bookingRepo, userRepo, notifier, svc := newBookingService(t)

	requester := &domain.User{UID: "u1", Name: "Bob", Role: domain.RoleHOD}

	userRepo.EXPECT().GetByUID(mock.Anything, "u1").Return(requester, nil)
	bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyRole(mock.Anything, domain.RoleHallManager, mock.Anything).Return()

	booking, err := svc.Submit(context.Background(), validSubmitInput())

	require.NoError(t, err)
	assert.Equal(t, domain.StatusPendingHall, booking.Status)
	assert.Nil(t, booking.ApprovedAt)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Submit_HallManagerAutoApproved(t *testing.T) {
	bookingRepo, userRepo, notifier, svc := newBookingService(t)

	requester := &domain.User{UID: "u1", Name: "Carol", Role: domain.RoleHallManager}

	userRepo.EXPECT().GetByUID(mock.Anything, "u1").Return(requester, nil)
	bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyUser(mock.Anything, "u1", mock.Anything).Return()

	booking, err := svc.Submit(context.Background(), validSubmitInput())

	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, booking.Status)
	require.NotNil(t, booking.ApprovedAt)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Submit_ValidationFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.SubmitBookingInput)
	}{
		{"missing event name", func(in *domain.SubmitBookingInput) { in.EventName = "" }},
		{"missing hall", func(in *domain.SubmitBookingInput) { in.Hall = "" }},
		{"missing department", func(in *domain.SubmitBookingInput) { in.Department = "" }},
		{"bad date", func(in *domain.SubmitBookingInput) { in.Date = "15-09-2026" }},
		{"no slots", func(in *domain.SubmitBookingInput) { in.Slots = nil }},
		{"gap in slots", func(in *domain.SubmitBookingInput) {
			in.Slots = []string{"09:00-10:00", "11:00-12:00"}
		}},
		{"unknown slot", func(in *domain.SubmitBookingInput) {
			in.Slots = []string{"22:00-23:00"}
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, _, svc := newBookingService(t)

			input := validSubmitInput()
			tc.mutate(&input)

			_, err := svc.Submit(context.Background(), input)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestBookingService_Submit_RequesterNotFound(t *testing.T) {
	_, userRepo, _, svc := newBookingService(t)

	userRepo.EXPECT().GetByUID(mock.Anything, "u1").Return(nil, domain.ErrUserNotFound)

	_, err := svc.Submit(context.Background(), validSubmitInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestBookingService_ApproveByHOD_ForwardsAndNotifies(t *testing.T) {
	bookingRepo, userRepo, notifier, svc := newBookingService(t)

	sig := "/uploads/sig.png"
	approver := &domain.User{UID: "hod1", Role: domain.RoleHOD, SignaturePath: &sig}
	forwarded := &domain.Booking{ID: "b1", UID: "u1", Status: domain.StatusPendingHall}

	userRepo.EXPECT().GetByUID(mock.Anything, "hod1").Return(approver, nil)
	bookingRepo.EXPECT().ApproveByHOD(mock.Anything, "b1", &sig).Return(forwarded, nil)
	notifier.EXPECT().NotifyRole(mock.Anything, domain.RoleHallManager, mock.Anything).Return()

	booking, err := svc.ApproveByHOD(context.Background(), "b1", "hod1")

	require.NoError(t, err)
	assert.Equal(t, domain.StatusPendingHall, booking.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_ApproveByHOD_WrongState(t *testing.T) {
	bookingRepo, userRepo, _, svc := newBookingService(t)

	approver := &domain.User{UID: "hod1", Role: domain.RoleHOD}

	userRepo.EXPECT().GetByUID(mock.Anything, "hod1").Return(approver, nil)
	bookingRepo.EXPECT().ApproveByHOD(mock.Anything, "b1", (*string)(nil)).
		Return(nil, domain.ErrInvalidTransition)

	_, err := svc.ApproveByHOD(context.Background(), "b1", "hod1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestBookingService_ApproveByHall_ApprovesAndNotifiesOwner(t *testing.T) {
	bookingRepo, userRepo, notifier, svc := newBookingService(t)

	approver := &domain.User{UID: "hm1", Role: domain.RoleHallManager}
	approvedAt := time.Now().UTC()
	approved := &domain.Booking{
		ID:         "b1",
		UID:        "u1",
		Status:     domain.StatusApproved,
		ApprovedAt: &approvedAt,
	}

	userRepo.EXPECT().GetByUID(mock.Anything, "hm1").Return(approver, nil)
	bookingRepo.EXPECT().ApproveByHall(mock.Anything, "b1", (*string)(nil)).Return(approved, nil)
	notifier.EXPECT().NotifyUser(mock.Anything, "u1", mock.Anything).Return()

	booking, err := svc.ApproveByHall(context.Background(), "b1", "hm1")

	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, booking.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_ApproveByHall_Conflict(t *testing.T) {
	bookingRepo, userRepo, _, svc := newBookingService(t)

	approver := &domain.User{UID: "hm1", Role: domain.RoleHallManager}

	userRepo.EXPECT().GetByUID(mock.Anything, "hm1").Return(approver, nil)
	bookingRepo.EXPECT().ApproveByHall(mock.Anything, "b1", (*string)(nil)).
		Return(nil, domain.ErrSlotConflict)

	_, err := svc.ApproveByHall(context.Background(), "b1", "hm1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSlotConflict)
}

func TestBookingService_ListForUser_DefaultScopeByRole(t *testing.T) {
	bookingRepo, userRepo, _, svc := newBookingService(t)

	caller := &domain.User{UID: "u1", Role: domain.RoleRequester}
	own := []*domain.Booking{{ID: "b1", UID: "u1"}}

	userRepo.EXPECT().GetByUID(mock.Anything, "u1").Return(caller, nil)
	bookingRepo.EXPECT().ListByUID(mock.Anything, "u1").Return(own, nil)

	feed, err := svc.ListForUser(context.Background(), "u1", "")

	require.NoError(t, err)
	assert.Equal(t, ScopeSelf, feed.Scope)
	assert.Len(t, feed.Bookings, 1)
}

func TestBookingService_ListForUser_HODScope(t *testing.T) {
	bookingRepo, userRepo, _, svc := newBookingService(t)

	caller := &domain.User{UID: "hod1", Role: domain.RoleHOD, Department: "Physics"}
	pending := []*domain.Booking{{ID: "b1", Department: "Physics", Status: domain.StatusPendingHOD}}

	userRepo.EXPECT().GetByUID(mock.Anything, "hod1").Return(caller, nil)
	bookingRepo.EXPECT().ListPendingHOD(mock.Anything, "Physics").Return(pending, nil)

	feed, err := svc.ListForUser(context.Background(), "hod1", "")

	require.NoError(t, err)
	assert.Equal(t, ScopeHOD, feed.Scope)
	assert.Len(t, feed.Bookings, 1)
}

func TestBookingService_ListForUser_HODWithoutDepartmentSeesNothing(t *testing.T) {
	_, userRepo, _, svc := newBookingService(t)

	caller := &domain.User{UID: "hod1", Role: domain.RoleHOD}

	userRepo.EXPECT().GetByUID(mock.Anything, "hod1").Return(caller, nil)

	feed, err := svc.ListForUser(context.Background(), "hod1", "")

	require.NoError(t, err)
	assert.Empty(t, feed.Bookings)
}

func TestBookingService_ListForUser_HallManagerScope(t *testing.T) {
	bookingRepo, userRepo, _, svc := newBookingService(t)

	caller := &domain.User{
		UID:                "hm1",
		Role:               domain.RoleHallManager,
		HallResponsibility: "Main Hall, Mini Hall",
	}
	pending := []*domain.Booking{{ID: "b1", Hall: "Main Hall", Status: domain.StatusPendingHall}}

	userRepo.EXPECT().GetByUID(mock.Anything, "hm1").Return(caller, nil)
	bookingRepo.EXPECT().ListPendingHall(mock.Anything, []string{"Main Hall", "Mini Hall"}).Return(pending, nil)

	feed, err := svc.ListForUser(context.Background(), "hm1", "")

	require.NoError(t, err)
	assert.Equal(t, ScopeHallManager, feed.Scope)
	assert.Len(t, feed.Bookings, 1)
}

func TestBookingService_ListForUser_AdminScopeFillsBothQueues(t *testing.T) {
	bookingRepo, userRepo, _, svc := newBookingService(t)

	caller := &domain.User{UID: "a1", Role: domain.RoleAdmin}

	userRepo.EXPECT().GetByUID(mock.Anything, "a1").Return(caller, nil)
	bookingRepo.EXPECT().ListByStatus(mock.Anything, domain.StatusPendingHOD).
		Return([]*domain.Booking{{ID: "b1"}}, nil)
	bookingRepo.EXPECT().ListByStatus(mock.Anything, domain.StatusPendingHall).
		Return([]*domain.Booking{{ID: "b2"}, {ID: "b3"}}, nil)

	feed, err := svc.ListForUser(context.Background(), "a1", "")

	require.NoError(t, err)
	assert.Equal(t, ScopeAdmin, feed.Scope)
	assert.Len(t, feed.PendingHOD, 1)
	assert.Len(t, feed.PendingHall, 2)
}

func TestBookingService_ListForUser_ScopeNotAllowed(t *testing.T) {
	_, userRepo, _, svc := newBookingService(t)

	caller := &domain.User{UID: "u1", Role: domain.RoleRequester}

	userRepo.EXPECT().GetByUID(mock.Anything, "u1").Return(caller, nil)

	_, err := svc.ListForUser(context.Background(), "u1", ScopeAdmin)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_ListForUser_AdminMaySwitchScope(t *testing.T) {
	bookingRepo, userRepo, _, svc := newBookingService(t)

	caller := &domain.User{UID: "a1", Role: domain.RoleAdmin, Department: "Physics"}

	userRepo.EXPECT().GetByUID(mock.Anything, "a1").Return(caller, nil)
	bookingRepo.EXPECT().ListPendingHOD(mock.Anything, "Physics").Return(nil, nil)

	feed, err := svc.ListForUser(context.Background(), "a1", ScopeHOD)

	require.NoError(t, err)
	assert.Equal(t, ScopeHOD, feed.Scope)
}

func TestBookingService_PublicApproved_DerivesSpan(t *testing.T) {
	bookingRepo, _, _, svc := newBookingService(t)

	approved := []*domain.Booking{
		{
			ID:        "b1",
			Date:      "2026-09-15",
			Hall:      "Main Hall",
			EventName: "Orientation",
			Slots:     []string{"10:00-11:00", "11:00-12:00", "12:00-13:00"},
		},
	}

	bookingRepo.EXPECT().ListByStatus(mock.Anything, domain.StatusApproved).Return(approved, nil)

	res, err := svc.PublicApproved(context.Background())

	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "10:00", res[0].StartTime)
	assert.Equal(t, "13:00", res[0].EndTime)
}

func TestBookingService_PublicApproved_RepoError(t *testing.T) {
	bookingRepo, _, _, svc := newBookingService(t)

	bookingRepo.EXPECT().ListByStatus(mock.Anything, domain.StatusApproved).
		Return(nil, errors.New("db down"))

	_, err := svc.PublicApproved(context.Background())

	require.Error(t, err)
}
