package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/joshishrau/FacilityFlow/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var bookingColumns = []string{
	"id", "uid", "name", "department", "event_name", "purpose", "date", "hall",
	"notes", "total_duration", "status", "supporting_doc_path",
	"hod_signature_path", "hall_signature_path", "created_at", "approved_at",
}

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create inserts the booking row and every slot in one transaction; a
// partially written booking is never visible to readers.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO bookings
			  (id, uid, name, department, event_name, purpose, date, hall, notes,
			   total_duration, status, supporting_doc_path, created_at, approved_at)
			  VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)`
	_, err = tx.ExecContext(
		ctx, query,
		b.ID, b.UID, b.Name, b.Department, b.EventName, b.Purpose, b.Date, b.Hall,
		b.Notes, b.TotalDuration, b.Status, b.SupportingDocPath, b.CreatedAt, b.ApprovedAt,
	)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}

	slotQuery := `INSERT INTO booking_slots (booking_id, slot_time) VALUES ($1, $2)`
	for _, slot := range b.Slots {
		if _, err = tx.ExecContext(ctx, slotQuery, b.ID, slot); err != nil {
			return fmt.Errorf("insert slot %s: %w", slot, err)
		}
	}

	return tx.Commit()
}

// ApproveByHOD advances a pending_hod booking to pending_hall. The update
// is conditional on the current status; zero affected rows are diagnosed
// into not-found vs. wrong-state.
func (r *BookingRepository) ApproveByHOD(ctx context.Context, id string, signaturePath *string) (*domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE bookings
			  SET status = $3, hod_signature_path = COALESCE($2, hod_signature_path)
			  WHERE id = $1 AND status = $4`
	res, err := tx.ExecContext(ctx, query, id, signaturePath,
		domain.StatusPendingHall, domain.StatusPendingHOD)
	if err != nil {
		return nil, fmt.Errorf("advance booking: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		var status string
		err = tx.QueryRowContext(ctx, `SELECT status FROM bookings WHERE id = $1`, id).Scan(&status)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		if err != nil {
			return nil, fmt.Errorf("check status: %w", err)
		}
		return nil, domain.ErrInvalidTransition
	}

	b, err := r.getTx(ctx, tx, id)
	if err != nil {
		return nil, err
	}

	return b, tx.Commit()
}

// ApproveByHall finalizes a pending_hall booking. The conflict check and
// the status write share one transaction: all booking rows for the target
// hall and date are locked with FOR UPDATE first, so two concurrent
// approvals over overlapping slots serialize and the second one sees the
// winner's approved row.
func (r *BookingRepository) ApproveByHall(ctx context.Context, id string, signaturePath *string) (*domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var hall, date string
	err = tx.QueryRowContext(ctx,
		`SELECT hall, to_char(date, 'YYYY-MM-DD') FROM bookings WHERE id = $1`, id,
	).Scan(&hall, &date)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get booking target: %w", err)
	}

	// Lock every booking row for this hall/date, the candidate included.
	// Rows are locked in id order so two concurrent approvals acquire
	// them in the same sequence and cannot deadlock.
	lockQuery := `SELECT id, status FROM bookings WHERE hall = $1 AND date = $2 ORDER BY id FOR UPDATE`
	lockRows, err := tx.QueryContext(ctx, lockQuery, hall, date)
	if err != nil {
		return nil, fmt.Errorf("lock hall/date rows: %w", err)
	}
	candidateStatus := ""
	for lockRows.Next() {
		var lockedID, status string
		if err = lockRows.Scan(&lockedID, &status); err != nil {
			lockRows.Close()
			return nil, fmt.Errorf("scan locked row: %w", err)
		}
		if lockedID == id {
			candidateStatus = status
		}
	}
	if err = lockRows.Err(); err != nil {
		lockRows.Close()
		return nil, fmt.Errorf("iterate locked rows: %w", err)
	}
	lockRows.Close()

	if candidateStatus != string(domain.StatusPendingHall) {
		return nil, domain.ErrInvalidTransition
	}

	slots, err := r.slotsTx(ctx, tx, id)
	if err != nil {
		return nil, err
	}

	// Exact-string slot match against other approved bookings; overlapping
	// but non-identical ranges do not collide under this policy.
	conflictQuery := `SELECT b.id
					  FROM bookings b
					  JOIN booking_slots bs ON bs.booking_id = b.id
					  WHERE b.status = $1 AND b.hall = $2 AND b.date = $3
					    AND b.id <> $4 AND bs.slot_time = ANY($5)
					  LIMIT 1`
	var conflictID string
	err = tx.QueryRowContext(ctx, conflictQuery,
		domain.StatusApproved, hall, date, id, pq.Array(slots),
	).Scan(&conflictID)
	if err == nil {
		return nil, domain.ErrSlotConflict
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("check conflicts: %w", err)
	}

	updateQuery := `UPDATE bookings
					SET status = $2, approved_at = now(),
					    hall_signature_path = COALESCE($3, hall_signature_path)
					WHERE id = $1`
	if _, err = tx.ExecContext(ctx, updateQuery, id, domain.StatusApproved, signaturePath); err != nil {
		return nil, fmt.Errorf("approve booking: %w", err)
	}

	b, err := r.getTx(ctx, tx, id)
	if err != nil {
		return nil, err
	}

	return b, tx.Commit()
}

func (r *BookingRepository) ListByUID(ctx context.Context, uid string) ([]*domain.Booking, error) {
	qb := psql.Select(bookingColumns...).From("bookings").
		Where(squirrel.Eq{"uid": uid}).
		OrderBy("date DESC, created_at DESC")
	return r.list(ctx, qb)
}

func (r *BookingRepository) ListPendingHOD(ctx context.Context, department string) ([]*domain.Booking, error) {
	qb := psql.Select(bookingColumns...).From("bookings").
		Where(squirrel.Eq{"status": domain.StatusPendingHOD}).
		Where(squirrel.Expr("LOWER(TRIM(department)) = LOWER(TRIM(?))", department)).
		OrderBy("date DESC, created_at DESC")
	return r.list(ctx, qb)
}

func (r *BookingRepository) ListPendingHall(ctx context.Context, halls []string) ([]*domain.Booking, error) {
	if len(halls) == 0 {
		return nil, nil
	}
	lowered := make([]string, len(halls))
	for i, h := range halls {
		lowered[i] = strings.ToLower(strings.TrimSpace(h))
	}
	qb := psql.Select(bookingColumns...).From("bookings").
		Where(squirrel.Eq{"status": domain.StatusPendingHall}).
		Where(squirrel.Expr("LOWER(TRIM(hall)) = ANY(?)", pq.Array(lowered))).
		OrderBy("date DESC, created_at DESC")
	return r.list(ctx, qb)
}

func (r *BookingRepository) ListByStatus(ctx context.Context, status domain.BookingStatus) ([]*domain.Booking, error) {
	qb := psql.Select(bookingColumns...).From("bookings").
		Where(squirrel.Eq{"status": status}).
		OrderBy("date DESC, created_at DESC")
	return r.list(ctx, qb)
}

func (r *BookingRepository) list(ctx context.Context, qb squirrel.SelectBuilder) ([]*domain.Booking, error) {
	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, b)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if err = r.attachSlots(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (r *BookingRepository) attachSlots(ctx context.Context, bookings []*domain.Booking) error {
	if len(bookings) == 0 {
		return nil
	}
	byID := make(map[string]*domain.Booking, len(bookings))
	ids := make([]string, 0, len(bookings))
	for _, b := range bookings {
		byID[b.ID] = b
		ids = append(ids, b.ID)
	}

	query := `SELECT booking_id, slot_time FROM booking_slots
			  WHERE booking_id = ANY($1)
			  ORDER BY slot_time`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("list slots: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var bookingID, slot string
		if err = rows.Scan(&bookingID, &slot); err != nil {
			return fmt.Errorf("scan slot: %w", err)
		}
		if b, ok := byID[bookingID]; ok {
			b.Slots = append(b.Slots, slot)
		}
	}
	return rows.Err()
}

func (r *BookingRepository) getTx(ctx context.Context, tx *sql.Tx, id string) (*domain.Booking, error) {
	query := `SELECT id, uid, name, department, event_name, purpose,
			  		 to_char(date, 'YYYY-MM-DD'), hall, notes, total_duration, status,
			  		 supporting_doc_path, hod_signature_path, hall_signature_path,
			  		 created_at, approved_at
			  FROM bookings
			  WHERE id = $1`
	row := tx.QueryRowContext(ctx, query, id)

	var b domain.Booking
	err := row.Scan(
		&b.ID, &b.UID, &b.Name, &b.Department, &b.EventName, &b.Purpose,
		&b.Date, &b.Hall, &b.Notes, &b.TotalDuration, &b.Status,
		&b.SupportingDocPath, &b.HODSignaturePath, &b.HallSignaturePath,
		&b.CreatedAt, &b.ApprovedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	b.Slots, err = r.slotsTx(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepository) slotsTx(ctx context.Context, tx *sql.Tx, bookingID string) ([]string, error) {
	rows, err := tx.QueryContext(ctx,
		`SELECT slot_time FROM booking_slots WHERE booking_id = $1 ORDER BY slot_time`, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get slots: %w", err)
	}
	defer rows.Close()

	var slots []string
	for rows.Next() {
		var slot string
		if err = rows.Scan(&slot); err != nil {
			return nil, fmt.Errorf("scan slot: %w", err)
		}
		slots = append(slots, slot)
	}
	return slots, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	var date time.Time
	err := row.Scan(
		&b.ID, &b.UID, &b.Name, &b.Department, &b.EventName, &b.Purpose,
		&date, &b.Hall, &b.Notes, &b.TotalDuration, &b.Status,
		&b.SupportingDocPath, &b.HODSignaturePath, &b.HallSignaturePath,
		&b.CreatedAt, &b.ApprovedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("scan booking: %w", err)
	}
	b.Date = date.Format(domain.DateFormat)
	return &b, nil
}
