package store

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/rawhoneyguide/honeyexplorer/internal/catalog"
	"github.com/rawhoneyguide/honeyexplorer/internal/domain"
	"gorm.io/gorm"
)

// GormEventRepository is the GORM implementation of catalog.EventRepository.
type GormEventRepository struct {
	db *gorm.DB
}

func NewGormEventRepository(db *gorm.DB) *GormEventRepository {
	return &GormEventRepository{db: db}
}

func (r *GormEventRepository) Page(ctx context.Context, f *catalog.Filter, pr catalog.PageRequest) ([]domain.Event, int64, error) {
	tx := applyFilter(r.db.WithContext(ctx).Model(&domain.Event{}), f)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []domain.Event
	err := tx.Order(pageOrder(pr)).Offset(pr.Offset()).Limit(pr.Size).Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *GormEventRepository) Upcoming(ctx context.Context, from time.Time, limit int) ([]domain.Event, error) {
	var rows []domain.Event
	err := r.db.WithContext(ctx).
		Where("start_date >= ? AND is_active = ?", from, true).
		Order("start_date ASC, id ASC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

func (r *GormEventRepository) ByMonth(ctx context.Context, year int, month time.Month) ([]domain.Event, error) {
	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0)

	// An event belongs to the month when its start date falls inside it,
	// or when it ends inside it (multi-day events spilling over).
	var rows []domain.Event
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where(
			r.db.Where("start_date >= ? AND start_date < ?", monthStart, monthEnd).
				Or("end_date IS NOT NULL AND end_date >= ? AND end_date < ?", monthStart, monthEnd),
		).
		Order("start_date ASC, id ASC").
		Find(&rows).Error
	return rows, err
}

func (r *GormEventRepository) ByState(ctx context.Context, state string) ([]domain.Event, error) {
	var rows []domain.Event
	err := r.db.WithContext(ctx).
		Where("state = ? AND is_active = ?", state, true).
		Order("start_date ASC, id ASC").
		Find(&rows).Error
	return rows, err
}

func (r *GormEventRepository) ByID(ctx context.Context, id int64) (*domain.Event, error) {
	var e domain.Event
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, catalog.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *GormEventRepository) BySlug(ctx context.Context, slug string) (*domain.Event, error) {
	var e domain.Event
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, catalog.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *GormEventRepository) All(ctx context.Context) ([]domain.Event, error) {
	var rows []domain.Event
	err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error
	return rows, err
}

func (r *GormEventRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&domain.Event{}).Count(&total).Error
	return total, err
}
