package catalog

import (
	"context"
	"time"

	"github.com/rawhoneyguide/honeyexplorer/internal/domain"
)

// HoneyRepository provides read access to honey records.
type HoneyRepository interface {
	// Page returns one page of matching honeys plus the total match count.
	Page(ctx context.Context, f *Filter, pr PageRequest) ([]domain.Honey, int64, error)

	// Featured returns every featured honey in a stable order.
	Featured(ctx context.Context) ([]domain.Honey, error)

	// BySlug returns the honey with the given slug or ErrNotFound.
	BySlug(ctx context.Context, slug string) (*domain.Honey, error)

	// Similar returns up to limit honeys sharing the floral source or the
	// primary flavor, excluding the anchor record, in a stable order.
	Similar(ctx context.Context, anchorID int64, floral domain.FloralSource, primaryFlavor string, limit int) ([]domain.Honey, error)

	// All returns every honey record (sitemap generation).
	All(ctx context.Context) ([]domain.Honey, error)

	Count(ctx context.Context) (int64, error)
}

// LocalSourceRepository provides read access to local source records.
type LocalSourceRepository interface {
	Page(ctx context.Context, f *Filter, pr PageRequest) ([]domain.LocalSource, int64, error)

	// All returns every matching record without pagination; proximity
	// search and map display filter and order in memory.
	All(ctx context.Context, f *Filter) ([]domain.LocalSource, error)

	ByID(ctx context.Context, id int64) (*domain.LocalSource, error)
	BySlug(ctx context.Context, slug string) (*domain.LocalSource, error)
	Count(ctx context.Context) (int64, error)
}

// EventRepository provides read access to event records.
type EventRepository interface {
	Page(ctx context.Context, f *Filter, pr PageRequest) ([]domain.Event, int64, error)

	// Upcoming returns active events starting at or after from, ordered by
	// start date ascending, capped at limit.
	Upcoming(ctx context.Context, from time.Time, limit int) ([]domain.Event, error)

	// ByMonth returns active events whose start or end date falls in the
	// given calendar month, ordered by start date.
	ByMonth(ctx context.Context, year int, month time.Month) ([]domain.Event, error)

	// ByState returns active events in a state ordered by start date.
	ByState(ctx context.Context, state string) ([]domain.Event, error)

	ByID(ctx context.Context, id int64) (*domain.Event, error)
	BySlug(ctx context.Context, slug string) (*domain.Event, error)
	All(ctx context.Context) ([]domain.Event, error)
	Count(ctx context.Context) (int64, error)
}

// CityContentRepository provides read access to city landing page content.
type CityContentRepository interface {
	// Validated returns validated city pages ordered by city name.
	Validated(ctx context.Context) ([]domain.CityContent, error)

	BySlug(ctx context.Context, slug string) (*domain.CityContent, error)
	CountValidated(ctx context.Context) (int64, error)
}

// NewsletterRepository persists newsletter subscriptions.
type NewsletterRepository interface {
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, sub *domain.NewsletterSubscription) error
}
