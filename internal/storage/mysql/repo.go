package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"london_trips/internal/domain"
)

// Repo implements domain.TripRepository on MySQL.
type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func (r *Repo) SaveTrip(ctx context.Context, t domain.Trip) error {
	params, err := json.Marshal(t.Params)
	if err != nil {
		return fmt.Errorf("encode params: %w", err)
	}
	it, err := json.Marshal(t.Itinerary)
	if err != nil {
		return fmt.Errorf("encode itinerary: %w", err)
	}
	_, err = r.db.ExecContext(ctx, insertTripSQL,
		t.ID,
		t.Params.Destination,
		t.Params.Days,
		t.Itinerary.UsedFallbackData,
		string(params),
		string(it),
		t.CreatedAt.UTC(),
	)
	return err
}

func (r *Repo) GetTrip(ctx context.Context, id string) (domain.Trip, error) {
	var (
		t              domain.Trip
		params, itJSON []byte
	)
	err := r.db.QueryRowContext(ctx, getTripSQL, id).Scan(&t.ID, &params, &itJSON, &t.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Trip{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Trip{}, err
	}
	if err := json.Unmarshal(params, &t.Params); err != nil {
		return domain.Trip{}, fmt.Errorf("decode params of %s: %w", id, err)
	}
	if err := json.Unmarshal(itJSON, &t.Itinerary); err != nil {
		return domain.Trip{}, fmt.Errorf("decode itinerary of %s: %w", id, err)
	}
	if t.Itinerary.Itinerary == nil {
		t.Itinerary.Itinerary = []domain.DayPlan{}
	}
	return t, nil
}

func (r *Repo) ListTrips(ctx context.Context, limit int) ([]domain.TripSummary, error) {
	rows, err := r.db.QueryContext(ctx, listTripsSQL, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.TripSummary, 0, limit)
	for rows.Next() {
		var s domain.TripSummary
		if err := rows.Scan(&s.ID, &s.Destination, &s.Days, &s.Fallback, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
