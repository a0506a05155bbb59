package repository

import (
	"context"
	"database/sql"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/joshishrau/FacilityFlow/internal/domain"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"
)

// Integration tests against a live Postgres; set TEST_POSTGRES_DSN to run
// them, e.g.
//
//	TEST_POSTGRES_DSN="host=localhost port=5432 user=postgres password=postgres dbname=facilityflow_test sslmode=disable" go test ./internal/repository/
func newTestDB(t *testing.T) *dbpg.DB {
	t.Helper()

	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN not set, skipping integration test")
	}

	raw, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	require.NoError(t, goose.Up(raw, "../../migrations"))
	require.NoError(t, raw.Close())

	db, err := dbpg.New(dsn, nil, &dbpg.Options{MaxOpenConns: 5, MaxIdleConns: 2})
	require.NoError(t, err)

	_, err = db.Master.Exec(`TRUNCATE booking_slots, notifications, bookings, users CASCADE`)
	require.NoError(t, err)

	t.Cleanup(func() { db.Master.Close() })
	return db
}

func seedUser(t *testing.T, db *dbpg.DB, uid string) {
	t.Helper()
	_, err := db.Master.Exec(
		`INSERT INTO users (uid, name, role, created_at) VALUES ($1, $2, 'requester', now())`,
		uid, "user "+uid,
	)
	require.NoError(t, err)
}

func testBooking(uid, hall, date string, status domain.BookingStatus, slots []string) *domain.Booking {
	return &domain.Booking{
		ID:            uuid.New().String(),
		UID:           uid,
		Department:    "Physics",
		EventName:     "Orientation",
		Date:          date,
		Hall:          hall,
		TotalDuration: len(slots),
		Status:        status,
		Slots:         slots,
		CreatedAt:     time.Now().UTC(),
	}
}

func TestBookingRepository_Create_NoPartialWrites(t *testing.T) {
	db := newTestDB(t)
	repo := NewBookingRepo(db)
	seedUser(t, db, "u1")

	// The duplicate slot violates the (booking_id, slot_time) unique
	// constraint on the second insert, after the booking row is already
	// written inside the tx.
	b := testBooking("u1", "Main Hall", "2026-09-15", domain.StatusPendingHOD,
		[]string{"09:00-10:00", "09:00-10:00"})

	err := repo.Create(context.Background(), b)
	require.Error(t, err)

	var count int
	require.NoError(t, db.Master.QueryRow(
		`SELECT count(*) FROM bookings WHERE id = $1`, b.ID).Scan(&count))
	assert.Zero(t, count, "failed create must not leave a booking row")

	require.NoError(t, db.Master.QueryRow(
		`SELECT count(*) FROM booking_slots WHERE booking_id = $1`, b.ID).Scan(&count))
	assert.Zero(t, count, "failed create must not leave slot rows")
}

func TestBookingRepository_ApproveByHall_ConflictAgainstApproved(t *testing.T) {
	db := newTestDB(t)
	repo := NewBookingRepo(db)
	seedUser(t, db, "u1")
	seedUser(t, db, "u2")

	winner := testBooking("u1", "Main Hall", "2026-09-15", domain.StatusApproved,
		[]string{"10:00-11:00", "11:00-12:00"})
	require.NoError(t, repo.Create(context.Background(), winner))

	overlapping := testBooking("u2", "Main Hall", "2026-09-15", domain.StatusPendingHall,
		[]string{"11:00-12:00", "12:00-13:00"})
	require.NoError(t, repo.Create(context.Background(), overlapping))

	_, err := repo.ApproveByHall(context.Background(), overlapping.ID, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSlotConflict)

	var status string
	require.NoError(t, db.Master.QueryRow(
		`SELECT status FROM bookings WHERE id = $1`, overlapping.ID).Scan(&status))
	assert.Equal(t, string(domain.StatusPendingHall), status, "conflicted booking must stay pending_hall")
}

func TestBookingRepository_ApproveByHall_DisjointSlotsApproved(t *testing.T) {
	db := newTestDB(t)
	repo := NewBookingRepo(db)
	seedUser(t, db, "u1")
	seedUser(t, db, "u2")

	existing := testBooking("u1", "Main Hall", "2026-09-15", domain.StatusApproved,
		[]string{"09:00-10:00"})
	require.NoError(t, repo.Create(context.Background(), existing))

	candidate := testBooking("u2", "Main Hall", "2026-09-15", domain.StatusPendingHall,
		[]string{"10:00-11:00"})
	require.NoError(t, repo.Create(context.Background(), candidate))

	approved, err := repo.ApproveByHall(context.Background(), candidate.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, approved.Status)
	require.NotNil(t, approved.ApprovedAt)
}

func TestBookingRepository_ApproveByHall_ConcurrentOverlapOneWinner(t *testing.T) {
	db := newTestDB(t)
	repo := NewBookingRepo(db)
	seedUser(t, db, "u1")
	seedUser(t, db, "u2")

	a := testBooking("u1", "Main Hall", "2026-09-15", domain.StatusPendingHall,
		[]string{"10:00-11:00", "11:00-12:00"})
	b := testBooking("u2", "Main Hall", "2026-09-15", domain.StatusPendingHall,
		[]string{"11:00-12:00", "12:00-13:00"})
	require.NoError(t, repo.Create(context.Background(), a))
	require.NoError(t, repo.Create(context.Background(), b))

	errs := make([]error, 2)
	var wg sync.WaitGroup
	wg.Add(2)
	for i, id := range []string{a.ID, b.ID} {
		go func(i int, id string) {
			defer wg.Done()
			_, errs[i] = repo.ApproveByHall(context.Background(), id, nil)
		}(i, id)
	}
	wg.Wait()

	var approvedCount, conflictCount int
	for _, err := range errs {
		switch {
		case err == nil:
			approvedCount++
		case assert.ErrorIs(t, err, domain.ErrSlotConflict):
			conflictCount++
		}
	}
	assert.Equal(t, 1, approvedCount, "exactly one approval must win")
	assert.Equal(t, 1, conflictCount, "the other must surface the slot conflict")

	var dbApproved int
	require.NoError(t, db.Master.QueryRow(
		`SELECT count(*) FROM bookings WHERE hall = 'Main Hall' AND status = $1`,
		domain.StatusApproved).Scan(&dbApproved))
	assert.Equal(t, 1, dbApproved)
}

func TestBookingRepository_ApproveByHOD_Diagnosis(t *testing.T) {
	db := newTestDB(t)
	repo := NewBookingRepo(db)
	seedUser(t, db, "u1")

	_, err := repo.ApproveByHOD(context.Background(), uuid.New().String(), nil)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)

	approved := testBooking("u1", "Main Hall", "2026-09-15", domain.StatusApproved,
		[]string{"09:00-10:00"})
	require.NoError(t, repo.Create(context.Background(), approved))

	_, err = repo.ApproveByHOD(context.Background(), approved.ID, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}
