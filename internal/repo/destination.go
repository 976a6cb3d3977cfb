package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/wanderwise/backend/internal/domain"
)

// DestinationRepo defines the persistence operations for catalogue destinations.
type DestinationRepo interface {
	// Upsert inserts a destination or overwrites the existing row with the same ID.
	Upsert(ctx context.Context, d domain.Destination) error

	// GetByID returns domain.ErrNotFound if no destination has that ID.
	GetByID(ctx context.Context, id string) (domain.Destination, error)
}

type pgDestinationRepo struct {
	db db
}

// NewDestinationRepo constructs a DestinationRepo backed by the provided db connection.
func NewDestinationRepo(db db) DestinationRepo {
	return &pgDestinationRepo{db: db}
}

func (r *pgDestinationRepo) Upsert(ctx context.Context, d domain.Destination) error {
	const q = `
		INSERT INTO destinations (id, name, description, image_url, location,
		                          price_range, rating, tags, is_featured, is_active,
		                          created_at, updated_at)
		VALUES (@id, @name, @description, @image_url, @location,
		        @price_range, @rating, @tags, @is_featured, @is_active,
		        COALESCE(@created_at, now()), COALESCE(@updated_at, now()))
		ON CONFLICT (id) DO UPDATE SET
		    name        = EXCLUDED.name,
		    description = EXCLUDED.description,
		    image_url   = EXCLUDED.image_url,
		    location    = EXCLUDED.location,
		    price_range = EXCLUDED.price_range,
		    rating      = EXCLUDED.rating,
		    tags        = EXCLUDED.tags,
		    is_featured = EXCLUDED.is_featured,
		    is_active   = EXCLUDED.is_active,
		    created_at  = EXCLUDED.created_at,
		    updated_at  = EXCLUDED.updated_at`

	tags := d.Tags
	if tags == nil {
		tags = []string{}
	}
	args := pgx.NamedArgs{
		"id":          d.ID,
		"name":        d.Name,
		"description": d.Description,
		"image_url":   d.ImageURL,
		"location":    d.Location,
		"price_range": d.PriceRange,
		"rating":      d.Rating, // nil becomes NULL
		"tags":        tags,
		"is_featured": d.IsFeatured,
		"is_active":   d.IsActive,
		"created_at":  timeArg(d.CreatedAt),
		"updated_at":  timeArg(d.UpdatedAt),
	}

	if _, err := r.db.Exec(ctx, q, args); err != nil {
		return fmt.Errorf("repo.DestinationRepo.Upsert: %w", err)
	}
	return nil
}

func (r *pgDestinationRepo) GetByID(ctx context.Context, id string) (domain.Destination, error) {
	const q = `
		SELECT id, name, description, image_url, location, price_range, rating,
		       tags, is_featured, is_active, created_at, updated_at
		FROM destinations
		WHERE id = @id`

	var d domain.Destination
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}).Scan(
		&d.ID, &d.Name, &d.Description, &d.ImageURL, &d.Location, &d.PriceRange, &d.Rating,
		&d.Tags, &d.IsFeatured, &d.IsActive, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Destination{}, fmt.Errorf("repo.DestinationRepo.GetByID: %w", domain.ErrNotFound)
		}
		return domain.Destination{}, fmt.Errorf("repo.DestinationRepo.GetByID: %w", err)
	}
	return d, nil
}
