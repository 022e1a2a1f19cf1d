package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"lifehub/internal/db"
)

type TripRepository struct {
	DB *sql.DB
}

func NewTripRepository(database *sql.DB) *TripRepository {
	return &TripRepository{DB: database}
}

const tripColumns = `id, owner_id, destination, start_date, end_date, notes, status, created_at, updated_at`

func scanTrip(row interface{ Scan(...interface{}) error }) (*db.Trip, error) {
	var t db.Trip
	err := row.Scan(&t.ID, &t.OwnerID, &t.Destination, &t.StartDate, &t.EndDate, &t.Notes, &t.Status, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TripRepository) ListTrips(ctx context.Context, ownerID, status string) ([]db.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips WHERE owner_id = $1`
	args := []interface{}{ownerID}
	if status != "" {
		query += ` AND status = $2`
		args = append(args, status)
	}
	query += ` ORDER BY start_date ASC`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying trips: %w", err)
	}
	defer rows.Close()

	var trips []db.Trip
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning trip: %w", err)
		}
		trips = append(trips, *t)
	}
	return trips, rows.Err()
}

func (r *TripRepository) GetTrip(ctx context.Context, ownerID, id string) (*db.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips WHERE id = $1 AND owner_id = $2`
	t, err := scanTrip(r.DB.QueryRowContext(ctx, query, id, ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("trip '%s' not found: %w", id, err)
		}
		return nil, fmt.Errorf("error querying trip: %w", err)
	}
	return t, nil
}

func (r *TripRepository) CreateTrip(ctx context.Context, t *db.Trip) error {
	query := `
		INSERT INTO trips (id, owner_id, destination, start_date, end_date, notes, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at`
	return r.DB.QueryRowContext(ctx, query,
		t.ID, t.OwnerID, t.Destination, t.StartDate, t.EndDate, t.Notes, t.Status, t.CreatedAt, t.UpdatedAt,
	).Scan(&t.CreatedAt, &t.UpdatedAt)
}

func (r *TripRepository) UpdateTrip(ctx context.Context, t *db.Trip) error {
	query := `
		UPDATE trips
		SET destination = $3, start_date = $4, end_date = $5, notes = $6, status = $7, updated_at = NOW()
		WHERE id = $1 AND owner_id = $2`
	result, err := r.DB.ExecContext(ctx, query, t.ID, t.OwnerID, t.Destination, t.StartDate, t.EndDate, t.Notes, t.Status)
	if err != nil {
		return fmt.Errorf("error updating trip: %w", err)
	}
	return requireRow(result, "trip", t.ID)
}

func (r *TripRepository) DeleteTrip(ctx context.Context, ownerID, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM trips WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return fmt.Errorf("error deleting trip: %w", err)
	}
	return requireRow(result, "trip", id)
}
