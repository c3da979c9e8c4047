/*
Package sqlite provides a SQLite-backed implementation of the reservation
record store.

PURPOSE:
  Implements booking.RecordStore using SQLite. In production, the same
  patterns apply to PostgreSQL - only minor SQL dialect differences.

KEY TABLE:
  reservations: One row per reservation; status distinguishes active from
  cancelled records. Cancelled rows are kept forever for auditability.

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging) for better concurrency:
  - Multiple readers don't block
  - Single writer at a time
  - Better crash recovery

USAGE:
  store, err := sqlite.New("./data/campsite.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

  engine := booking.NewEngine(store, booking.NewRules(booking.DefaultConfig()))

MIGRATION:
  Schema is auto-migrated on New(). For production, use a proper migration
  tool (golang-migrate, goose) with versioned migrations.

SEE ALSO:
  - booking/store.go:        interface definition
  - booking/store/memory.go: in-memory implementation for testing
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/ridgeline/campsite-engine/booking"
)

// Store implements booking.RecordStore using SQLite.
type Store struct {
	db *sql.DB
}

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS reservations (
		id TEXT PRIMARY KEY,
		full_name TEXT NOT NULL,
		email TEXT NOT NULL,
		arrival TEXT NOT NULL,
		departure TEXT NOT NULL,
		status TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);

	-- Rehydration scans active rows ordered by arrival
	CREATE INDEX IF NOT EXISTS idx_reservations_status_arrival
		ON reservations(status, arrival);
	`

	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// RECORD STORE
// =============================================================================

// Save persists the reservation, assigning a fresh id on first save.
func (s *Store) Save(ctx context.Context, r booking.Reservation) (booking.Reservation, error) {
	now := time.Now().UTC()
	if r.ID == "" {
		r.ID = booking.ReservationID(uuid.NewString())
		r.CreatedAt = now
	}
	r.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO reservations (id, full_name, email, arrival, departure, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			full_name = excluded.full_name,
			email = excluded.email,
			arrival = excluded.arrival,
			departure = excluded.departure,
			status = excluded.status,
			updated_at = excluded.updated_at`,
		string(r.ID), r.FullName, r.Email,
		r.Arrival.String(), r.Departure.String(), string(r.Status),
		r.CreatedAt.Format(time.RFC3339), r.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return booking.Reservation{}, fmt.Errorf("failed to save reservation: %w", err)
	}
	return r, nil
}

// FindByID returns the reservation, or (nil, nil) when absent.
func (s *Store) FindByID(ctx context.Context, id booking.ReservationID) (*booking.Reservation, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, full_name, email, arrival, departure, status, created_at, updated_at
		FROM reservations WHERE id = ?`, string(id))

	r, err := scanReservation(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load reservation: %w", err)
	}
	return r, nil
}

// ListActive returns every active reservation ordered by arrival.
func (s *Store) ListActive(ctx context.Context) ([]booking.Reservation, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, full_name, email, arrival, departure, status, created_at, updated_at
		FROM reservations WHERE status = ? ORDER BY arrival`,
		string(booking.StatusActive))
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	defer rows.Close()

	var active []booking.Reservation
	for rows.Next() {
		r, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reservation: %w", err)
		}
		active = append(active, *r)
	}
	return active, rows.Err()
}

// =============================================================================
// SCANNING
// =============================================================================

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReservation(row rowScanner) (*booking.Reservation, error) {
	var (
		id, fullName, email  string
		arrival, departure   string
		status               string
		createdAt, updatedAt string
	)
	if err := row.Scan(&id, &fullName, &email, &arrival, &departure, &status, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	arrivalDay, err := booking.ParseDay(arrival)
	if err != nil {
		return nil, fmt.Errorf("bad arrival date %q: %w", arrival, err)
	}
	departureDay, err := booking.ParseDay(departure)
	if err != nil {
		return nil, fmt.Errorf("bad departure date %q: %w", departure, err)
	}
	created, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("bad created_at %q: %w", createdAt, err)
	}
	updated, err := time.Parse(time.RFC3339, updatedAt)
	if err != nil {
		return nil, fmt.Errorf("bad updated_at %q: %w", updatedAt, err)
	}

	return &booking.Reservation{
		ID:        booking.ReservationID(id),
		FullName:  fullName,
		Email:     email,
		Arrival:   arrivalDay,
		Departure: departureDay,
		Status:    booking.Status(status),
		CreatedAt: created,
		UpdatedAt: updated,
	}, nil
}
