package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/wanderwise/backend/internal/domain"
	"github.com/wanderwise/backend/internal/repo"
)

// LegacyExport is the JSON dump of the previous document-store backend:
// auth users joined with their profile documents, plus the destination and
// itinerary collections.
type LegacyExport struct {
	Users        []LegacyUser        `json:"users"`
	Destinations []LegacyDestination `json:"destinations"`
	Itineraries  []LegacyItinerary   `json:"itineraries"`
}

// LegacyUser is one auth record and its (possibly absent) profile document.
type LegacyUser struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	PhotoURL    string `json:"photoURL"`
	Metadata    struct {
		CreationTime   string `json:"creationTime"`
		LastSignInTime string `json:"lastSignInTime"`
	} `json:"metadata"`
	Doc *LegacyUserDoc `json:"doc"`
}

// LegacyUserDoc is the users/{uid} profile document.
type LegacyUserDoc struct {
	Name              string         `json:"name"`
	PhotoURL          string         `json:"photoUrl"`
	Roles             []string       `json:"roles"`
	IsActive          *bool          `json:"isActive"`
	Profile           map[string]any `json:"profile"`
	AssignedTravelers []string       `json:"assignedTravelers"`
	TravelAgentID     *string        `json:"travelAgentId"`
}

// LegacyDestination is one destinations/{id} document.
type LegacyDestination struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	ImageURL    string   `json:"imageUrl"`
	Location    string   `json:"location"`
	PriceRange  string   `json:"priceRange"`
	Rating      *float64 `json:"rating"`
	Tags        []string `json:"tags"`
	IsFeatured  bool     `json:"isFeatured"`
	IsActive    *bool    `json:"isActive"`
	CreatedAt   string   `json:"createdAt"`
	UpdatedAt   string   `json:"updatedAt"`
}

// LegacyItinerary is one itineraries/{id} document with its embedded stops.
type LegacyItinerary struct {
	ID           string  `json:"id"`
	UserID       *string `json:"userId"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	StartDate    string  `json:"startDate"`
	EndDate      string  `json:"endDate"`
	Status       string  `json:"status"`
	IsPublic     bool    `json:"isPublic"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
	Destinations []struct {
		ID        string `json:"id"`
		DayNumber int    `json:"dayNumber"`
		Notes     string `json:"notes"`
	} `json:"destinations"`
}

// ImportService copies a LegacyExport into Postgres. Every record is an
// upsert by ID, so re-running an import converges instead of duplicating.
type ImportService struct {
	users        repo.UserRepo
	destinations repo.DestinationRepo
	itineraries  repo.ItineraryRepo
	log          *slog.Logger
}

// NewImportService constructs an ImportService.
func NewImportService(users repo.UserRepo, destinations repo.DestinationRepo, itineraries repo.ItineraryRepo, log *slog.Logger) *ImportService {
	return &ImportService{users: users, destinations: destinations, itineraries: itineraries, log: log}
}

// Import upserts users, then destinations, then itineraries. A record that
// fails is logged and counted and the run moves on to the next one; only
// context cancellation stops it early.
func (s *ImportService) Import(ctx context.Context, export LegacyExport) (domain.ImportReport, error) {
	var report domain.ImportReport

	for _, lu := range export.Users {
		if err := ctx.Err(); err != nil {
			return report, fmt.Errorf("service.ImportService.Import: %w", err)
		}
		s.record(ctx, &report.Users, "user", lu.UID, s.users.Upsert(ctx, legacyUserToDomain(lu)))
	}

	for _, ld := range export.Destinations {
		if err := ctx.Err(); err != nil {
			return report, fmt.Errorf("service.ImportService.Import: %w", err)
		}
		s.record(ctx, &report.Destinations, "destination", ld.ID, s.destinations.Upsert(ctx, legacyDestinationToDomain(ld)))
	}

	for _, li := range export.Itineraries {
		if err := ctx.Err(); err != nil {
			return report, fmt.Errorf("service.ImportService.Import: %w", err)
		}
		s.record(ctx, &report.Itineraries, "itinerary", li.ID, s.itineraries.Upsert(ctx, legacyItineraryToDomain(li)))
	}

	s.log.InfoContext(ctx, "legacy import finished",
		"users_migrated", report.Users.Migrated, "users_failed", report.Users.Failed,
		"destinations_migrated", report.Destinations.Migrated, "destinations_failed", report.Destinations.Failed,
		"itineraries_migrated", report.Itineraries.Migrated, "itineraries_failed", report.Itineraries.Failed,
	)
	return report, nil
}

func (s *ImportService) record(ctx context.Context, c *domain.ImportCount, kind, id string, err error) {
	if err != nil {
		c.Failed++
		s.log.ErrorContext(ctx, "failed to import record", "kind", kind, "id", id, "error", err)
		return
	}
	c.Migrated++
	s.log.DebugContext(ctx, "imported record", "kind", kind, "id", id)
}

func legacyUserToDomain(lu LegacyUser) domain.User {
	doc := LegacyUserDoc{}
	if lu.Doc != nil {
		doc = *lu.Doc
	}

	u := domain.User{
		ID:                lu.UID,
		Email:             lu.Email,
		Name:              firstNonEmpty(doc.Name, lu.DisplayName, "Unknown"),
		Roles:             doc.Roles,
		IsActive:          doc.IsActive == nil || *doc.IsActive,
		Profile:           domain.Profile(doc.Profile),
		AssignedTravelers: doc.AssignedTravelers,
		TravelAgentID:     doc.TravelAgentID,
	}
	if len(u.Roles) == 0 {
		u.Roles = []string{domain.RoleTraveler}
	}
	if u.Profile == nil {
		u.Profile = domain.Profile{}
	}
	if u.AssignedTravelers == nil {
		u.AssignedTravelers = []string{}
	}
	if photo := firstNonEmpty(doc.PhotoURL, lu.PhotoURL); photo != "" {
		u.PhotoURL = &photo
	}
	if t, ok := parseLegacyTime(lu.Metadata.CreationTime); ok {
		u.CreatedAt = t
	}
	if t, ok := parseLegacyTime(firstNonEmpty(lu.Metadata.LastSignInTime, lu.Metadata.CreationTime)); ok {
		u.LastLoginAt = &t
	}
	return u
}

func legacyDestinationToDomain(ld LegacyDestination) domain.Destination {
	d := domain.Destination{
		ID:          ld.ID,
		Name:        ld.Name,
		Description: ld.Description,
		ImageURL:    ld.ImageURL,
		Location:    ld.Location,
		PriceRange:  ld.PriceRange,
		Rating:      ld.Rating,
		Tags:        ld.Tags,
		IsFeatured:  ld.IsFeatured,
		IsActive:    ld.IsActive == nil || *ld.IsActive,
	}
	if d.Tags == nil {
		d.Tags = []string{}
	}
	d.CreatedAt, _ = parseLegacyTime(ld.CreatedAt)
	d.UpdatedAt, _ = parseLegacyTime(ld.UpdatedAt)
	return d
}

func legacyItineraryToDomain(li LegacyItinerary) domain.Itinerary {
	it := domain.Itinerary{
		ID:          li.ID,
		UserID:      li.UserID,
		Title:       li.Title,
		Description: li.Description,
		Status:      firstNonEmpty(li.Status, "draft"),
		IsPublic:    li.IsPublic,
	}
	if t, ok := parseLegacyTime(li.StartDate); ok {
		it.StartDate = &t
	}
	if t, ok := parseLegacyTime(li.EndDate); ok {
		it.EndDate = &t
	}
	it.CreatedAt, _ = parseLegacyTime(li.CreatedAt)
	it.UpdatedAt, _ = parseLegacyTime(li.UpdatedAt)

	for i, d := range li.Destinations {
		day := d.DayNumber
		if day == 0 {
			day = i + 1
		}
		it.Destinations = append(it.Destinations, domain.ItineraryDestination{
			ItineraryID:   li.ID,
			DestinationID: d.ID,
			DayNumber:     day,
			OrderIndex:    i,
			Notes:         d.Notes,
		})
	}
	return it
}

// legacyTimeLayouts covers document-store timestamps (RFC 3339), auth
// metadata (RFC 1123 "GMT"), and bare dates.
var legacyTimeLayouts = []string{time.RFC3339Nano, time.RFC1123, time.DateOnly}

// parseLegacyTime parses s with the first matching layout. Empty or
// unparseable input yields ok == false and the zero time.
func parseLegacyTime(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range legacyTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
