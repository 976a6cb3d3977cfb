package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/wanderwise/backend/internal/domain"
)

// ItineraryRepo defines the persistence operations for itineraries and their
// ordered destinations.
type ItineraryRepo interface {
	// Upsert writes the itinerary and replaces its destination list in a
	// single transaction, so re-running an import does not duplicate stops.
	Upsert(ctx context.Context, it domain.Itinerary) error

	// GetByID returns the itinerary with its destinations ordered by
	// order_index. Returns domain.ErrNotFound if it does not exist.
	GetByID(ctx context.Context, id string) (domain.Itinerary, error)
}

type pgItineraryRepo struct {
	db db
}

// NewItineraryRepo constructs an ItineraryRepo backed by the provided db connection.
func NewItineraryRepo(db db) ItineraryRepo {
	return &pgItineraryRepo{db: db}
}

func (r *pgItineraryRepo) Upsert(ctx context.Context, it domain.Itinerary) error {
	const upsert = `
		INSERT INTO itineraries (id, user_id, title, description, start_date, end_date,
		                         status, is_public, created_at, updated_at)
		VALUES (@id, @user_id, @title, @description, @start_date, @end_date,
		        @status, @is_public, COALESCE(@created_at, now()), COALESCE(@updated_at, now()))
		ON CONFLICT (id) DO UPDATE SET
		    user_id     = EXCLUDED.user_id,
		    title       = EXCLUDED.title,
		    description = EXCLUDED.description,
		    start_date  = EXCLUDED.start_date,
		    end_date    = EXCLUDED.end_date,
		    status      = EXCLUDED.status,
		    is_public   = EXCLUDED.is_public,
		    created_at  = EXCLUDED.created_at,
		    updated_at  = EXCLUDED.updated_at`

	const clear = `DELETE FROM itinerary_destinations WHERE itinerary_id = @id`

	const insertStop = `
		INSERT INTO itinerary_destinations (id, itinerary_id, destination_id,
		                                    day_number, order_index, notes)
		VALUES (@id, @itinerary_id, @destination_id, @day_number, @order_index, @notes)`

	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		args := pgx.NamedArgs{
			"id":          it.ID,
			"user_id":     it.UserID,
			"title":       it.Title,
			"description": it.Description,
			"start_date":  dateArg(it.StartDate),
			"end_date":    dateArg(it.EndDate),
			"status":      it.Status,
			"is_public":   it.IsPublic,
			"created_at":  timeArg(it.CreatedAt),
			"updated_at":  timeArg(it.UpdatedAt),
		}
		if _, err := tx.Exec(ctx, upsert, args); err != nil {
			return fmt.Errorf("upsert: %w", err)
		}
		if _, err := tx.Exec(ctx, clear, pgx.NamedArgs{"id": it.ID}); err != nil {
			return fmt.Errorf("clear destinations: %w", err)
		}
		for _, d := range it.Destinations {
			stop := pgx.NamedArgs{
				"id":             uuid.New(),
				"itinerary_id":   it.ID,
				"destination_id": d.DestinationID,
				"day_number":     d.DayNumber,
				"order_index":    d.OrderIndex,
				"notes":          d.Notes,
			}
			if _, err := tx.Exec(ctx, insertStop, stop); err != nil {
				return fmt.Errorf("insert destination %q: %w", d.DestinationID, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("repo.ItineraryRepo.Upsert: %w", err)
	}
	return nil
}

func (r *pgItineraryRepo) GetByID(ctx context.Context, id string) (domain.Itinerary, error) {
	const q = `
		SELECT id, user_id, title, description, start_date, end_date, status,
		       is_public, created_at, updated_at
		FROM itineraries
		WHERE id = @id`

	const stops = `
		SELECT itinerary_id, destination_id, day_number, order_index, notes
		FROM itinerary_destinations
		WHERE itinerary_id = @id
		ORDER BY order_index`

	var (
		it         domain.Itinerary
		start, end pgtype.Date
	)
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}).Scan(
		&it.ID, &it.UserID, &it.Title, &it.Description, &start, &end, &it.Status,
		&it.IsPublic, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Itinerary{}, fmt.Errorf("repo.ItineraryRepo.GetByID: %w", domain.ErrNotFound)
		}
		return domain.Itinerary{}, fmt.Errorf("repo.ItineraryRepo.GetByID: %w", err)
	}
	if start.Valid {
		it.StartDate = &start.Time
	}
	if end.Valid {
		it.EndDate = &end.Time
	}

	rows, err := r.db.Query(ctx, stops, pgx.NamedArgs{"id": id})
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("repo.ItineraryRepo.GetByID: destinations: %w", err)
	}
	it.Destinations, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ItineraryDestination, error) {
		var d domain.ItineraryDestination
		err := row.Scan(&d.ItineraryID, &d.DestinationID, &d.DayNumber, &d.OrderIndex, &d.Notes)
		return d, err
	})
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("repo.ItineraryRepo.GetByID: scan destinations: %w", err)
	}
	return it, nil
}

// dateArg maps an optional date to a pgtype.Date, NULL when nil.
func dateArg(t *time.Time) pgtype.Date {
	if t == nil {
		return pgtype.Date{}
	}
	return pgtype.Date{Time: *t, Valid: true}
}
