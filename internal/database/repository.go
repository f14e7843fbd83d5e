package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

var (
	ErrNotFound          = errors.New("not found")
	ErrDuplicateEmail    = errors.New("email already registered")
	ErrDuplicateUsername = errors.New("username already taken")
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id            UUID PRIMARY KEY,
	username      TEXT NOT NULL,
	email         TEXT NOT NULL,
	password_hash TEXT NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	CONSTRAINT users_username_key UNIQUE (username),
	CONSTRAINT users_email_key UNIQUE (email)
);

CREATE TABLE IF NOT EXISTS trips (
	id                   UUID PRIMARY KEY,
	user_id              UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	trip_name            TEXT NOT NULL,
	destination_city     TEXT NOT NULL,
	destination_country  TEXT NOT NULL,
	start_date           DATE NOT NULL,
	end_date             DATE NOT NULL,
	notes                TEXT NOT NULL DEFAULT '',
	saved_flights        JSONB NOT NULL DEFAULT '[]'::jsonb,
	saved_accommodations JSONB NOT NULL DEFAULT '[]'::jsonb,
	saved_activities     JSONB NOT NULL DEFAULT '[]'::jsonb,
	created_at           TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_trips_user_id ON trips(user_id, created_at DESC);
`

const tripColumns = `
	id, user_id, trip_name, destination_city, destination_country, start_date, end_date,
	notes, saved_flights, saved_accommodations, saved_activities, created_at
`

// Repository handles all database operations
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new repository
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// EnsureSchema creates the tables and indexes if they do not exist
func (r *Repository) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}

// --- User Operations ---

// CreateUser inserts a user, assigning an id when missing
func (r *Repository) CreateUser(ctx context.Context, user *User) error {
	query := `
		INSERT INTO users (id, username, email, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}

	err := r.pool.QueryRow(ctx, query,
		user.ID, user.Username, user.Email, user.PasswordHash,
	).Scan(&user.CreatedAt)
	if err != nil {
		if dup := duplicateUserError(err); dup != nil {
			return dup
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// GetUserByEmail returns a user by email
func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	return r.getUser(ctx, "email", email)
}

// GetUserByUsername returns a user by username
func (r *Repository) GetUserByUsername(ctx context.Context, username string) (*User, error) {
	return r.getUser(ctx, "username", username)
}

// GetUserByID returns a user by ID
func (r *Repository) GetUserByID(ctx context.Context, id uuid.UUID) (*User, error) {
	return r.getUser(ctx, "id", id)
}

func (r *Repository) getUser(ctx context.Context, column string, value any) (*User, error) {
	query := `
		SELECT id, username, email, password_hash, created_at
		FROM users
		WHERE ` + column + ` = $1
	`

	var u User
	err := r.pool.QueryRow(ctx, query, value).Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &u, nil
}

// --- Trip Operations ---

// CreateTrip inserts a trip, assigning an id when missing
func (r *Repository) CreateTrip(ctx context.Context, trip *Trip) error {
	query := `
		INSERT INTO trips (id, user_id, trip_name, destination_city, destination_country,
		                   start_date, end_date, notes, saved_flights, saved_accommodations, saved_activities)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at
	`

	if trip.ID == uuid.Nil {
		trip.ID = uuid.New()
	}
	normalizeSavedItems(trip)

	err := r.pool.QueryRow(ctx, query,
		trip.ID, trip.UserID, trip.TripName, trip.DestinationCity, trip.DestinationCountry,
		trip.StartDate, trip.EndDate, trip.Notes,
		trip.SavedFlights, trip.SavedAccommodations, trip.SavedActivities,
	).Scan(&trip.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create trip: %w", err)
	}

	return nil
}

// ListTripsByUser returns a user's trips, newest first
func (r *Repository) ListTripsByUser(ctx context.Context, userID uuid.UUID) ([]Trip, error) {
	query := `SELECT ` + tripColumns + `
		FROM trips
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query trips: %w", err)
	}
	defer rows.Close()

	trips := []Trip{}
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trip: %w", err)
		}
		trips = append(trips, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate trips: %w", err)
	}

	return trips, nil
}

// GetTripByID returns a trip by ID
func (r *Repository) GetTripByID(ctx context.Context, id uuid.UUID) (*Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips WHERE id = $1`

	t, err := scanTrip(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}

	return t, nil
}

// UpdateTrip writes the editable trip fields
func (r *Repository) UpdateTrip(ctx context.Context, trip *Trip) error {
	result, err := r.pool.Exec(ctx, `
		UPDATE trips
		SET trip_name = $1, destination_city = $2, destination_country = $3,
		    start_date = $4, end_date = $5, notes = $6
		WHERE id = $7
	`, trip.TripName, trip.DestinationCity, trip.DestinationCountry,
		trip.StartDate, trip.EndDate, trip.Notes, trip.ID)
	if err != nil {
		return fmt.Errorf("failed to update trip: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateSavedItems writes the three saved-item lists of a trip
func (r *Repository) UpdateSavedItems(ctx context.Context, trip *Trip) error {
	normalizeSavedItems(trip)

	result, err := r.pool.Exec(ctx, `
		UPDATE trips
		SET saved_flights = $1, saved_accommodations = $2, saved_activities = $3
		WHERE id = $4
	`, trip.SavedFlights, trip.SavedAccommodations, trip.SavedActivities, trip.ID)
	if err != nil {
		return fmt.Errorf("failed to update saved items: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteTrip removes a trip
func (r *Repository) DeleteTrip(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM trips WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete trip: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanTrip(row pgx.Row) (*Trip, error) {
	var t Trip
	err := row.Scan(
		&t.ID, &t.UserID, &t.TripName, &t.DestinationCity, &t.DestinationCountry,
		&t.StartDate, &t.EndDate, &t.Notes,
		&t.SavedFlights, &t.SavedAccommodations, &t.SavedActivities, &t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	normalizeSavedItems(&t)
	return &t, nil
}

// normalizeSavedItems keeps empty lists as [] in both JSONB and API output.
func normalizeSavedItems(t *Trip) {
	if t.SavedFlights == nil {
		t.SavedFlights = []SavedFlight{}
	}
	if t.SavedAccommodations == nil {
		t.SavedAccommodations = []SavedAccommodation{}
	}
	if t.SavedActivities == nil {
		t.SavedActivities = []SavedActivity{}
	}
}

func duplicateUserError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolation {
		return nil
	}
	switch pgErr.ConstraintName {
	case "users_email_key":
		return ErrDuplicateEmail
	case "users_username_key":
		return ErrDuplicateUsername
	}
	return nil
}
