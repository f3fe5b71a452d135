package store

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rawhoneyguide/honeyexplorer/internal/catalog"
	"github.com/rawhoneyguide/honeyexplorer/internal/domain"
	"gorm.io/gorm"
)

// GormHoneyRepository is the GORM implementation of catalog.HoneyRepository.
type GormHoneyRepository struct {
	db *gorm.DB
}

func NewGormHoneyRepository(db *gorm.DB) *GormHoneyRepository {
	return &GormHoneyRepository{db: db}
}

func (r *GormHoneyRepository) Page(ctx context.Context, f *catalog.Filter, pr catalog.PageRequest) ([]domain.Honey, int64, error) {
	tx := applyFilter(r.db.WithContext(ctx).Model(&domain.Honey{}), f)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []domain.Honey
	err := tx.Order(pageOrder(pr)).Offset(pr.Offset()).Limit(pr.Size).Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *GormHoneyRepository) Featured(ctx context.Context) ([]domain.Honey, error) {
	var rows []domain.Honey
	err := r.db.WithContext(ctx).
		Where("featured = ?", true).
		Order("name ASC, id ASC").
		Find(&rows).Error
	return rows, err
}

func (r *GormHoneyRepository) BySlug(ctx context.Context, slug string) (*domain.Honey, error) {
	var h domain.Honey
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&h).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, catalog.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *GormHoneyRepository) Similar(ctx context.Context, anchorID int64, floral domain.FloralSource, primaryFlavor string, limit int) ([]domain.Honey, error) {
	tx := r.db.WithContext(ctx).Where("id <> ?", anchorID)
	if primaryFlavor != "" {
		tx = tx.Where("floral_source = ? OR flavor_profiles LIKE ?", floral, "%"+primaryFlavor+"%")
	} else {
		tx = tx.Where("floral_source = ?", floral)
	}

	var rows []domain.Honey
	err := tx.Order("name ASC, id ASC").Limit(limit).Find(&rows).Error
	return rows, err
}

func (r *GormHoneyRepository) All(ctx context.Context) ([]domain.Honey, error) {
	var rows []domain.Honey
	err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error
	return rows, err
}

func (r *GormHoneyRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&domain.Honey{}).Count(&total).Error
	return total, err
}
