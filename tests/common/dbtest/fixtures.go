//go:build e2e

package dbtest

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ResetDB truncates every mutable table between subtests.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, `
		TRUNCATE TABLE
			reservations,
			slots,
			person_eligibilities,
			credit_rate_intervals,
			time_entries,
			event_windows,
			audit_logs
		RESTART IDENTITY CASCADE
	`)
	return err
}

type SlotFixture struct {
	ID         uuid.UUID
	CategoryID uuid.UUID
	StartsAt   time.Time
	EndsAt     time.Time
	Max        int32
	SignedUp   int32
	Active     bool
}

func InsertSlot(pool *pgxpool.Pool, f SlotFixture) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, `
		INSERT INTO slots (id, category_id, starts_at, ends_at, max_signups, signed_up, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, f.ID, f.CategoryID, f.StartsAt, f.EndsAt, f.Max, f.SignedUp, f.Active)
	return err
}

func GrantEligibility(pool *pgxpool.Pool, personID, categoryID uuid.UUID) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, `
		INSERT INTO person_eligibilities (person_id, category_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`, personID, categoryID)
	return err
}

func InsertRateInterval(pool *pgxpool.Pool, categoryID uuid.UUID, start, end time.Time, rate string, year int) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, `
		INSERT INTO credit_rate_intervals (id, category_id, starts_at, ends_at, rate, year, description)
		VALUES ($1, $2, $3, $4, $5, $6, '')
	`, uuid.New(), categoryID, start, end, rate, year)
	return err
}

func CountReservations(pool *pgxpool.Pool, slotID uuid.UUID) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var n int
	err := pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM reservations WHERE slot_id = $1`, slotID).Scan(&n)
	return n, err
}

func CountAuditLogs(pool *pgxpool.Pool, action string) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var n int
	err := pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM audit_logs WHERE action = $1`, action).Scan(&n)
	return n, err
}

func SignedUpCount(pool *pgxpool.Pool, slotID uuid.UUID) (int32, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var n int32
	err := pool.QueryRow(ctx,
		`SELECT signed_up FROM slots WHERE id = $1`, slotID).Scan(&n)
	return n, err
}
