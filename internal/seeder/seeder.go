// Package seeder loads embedded catalog data into empty tables.
// Each table is seeded at most once; a non-empty table is left alone.
package seeder

import (
	_ "embed"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/rawhoneyguide/honeyexplorer/internal/domain"
	"github.com/rawhoneyguide/honeyexplorer/pkg/common"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:embed data/honeys.json
var honeysData []byte

//go:embed data/local_sources.json
var localSourcesData []byte

//go:embed data/events.json
var eventsData []byte

const verificationSource = "initial_seed"

type Seeder struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// Run seeds every catalog table that is still empty.
func (s *Seeder) Run() error {
	if err := s.seedHoneys(); err != nil {
		return err
	}
	if err := s.seedLocalSources(); err != nil {
		return err
	}
	return s.seedEvents()
}

func (s *Seeder) seedHoneys() error {
	var count int64
	if err := s.db.Model(&domain.Honey{}).Count(&count).Error; err != nil {
		return errors.Wrap(err, "count honeys")
	}
	if count > 0 {
		zap.L().Info("honeys already present, skipping seed", zap.Int64("count", count))
		return nil
	}

	var rows []domain.Honey
	if err := jsoniter.Unmarshal(honeysData, &rows); err != nil {
		return errors.Wrap(err, "decode honey seed data")
	}
	now := time.Now()
	for i := range rows {
		rows[i].ID = common.UUIDint64()
		rows[i].CreatedAt = now
		rows[i].UpdatedAt = now
		verifiedAt := now
		rows[i].LastVerifiedAt = &verifiedAt
		rows[i].VerificationSource = verificationSource
		rows[i].IsVerified = true
	}
	if err := s.db.Create(&rows).Error; err != nil {
		return errors.Wrap(err, "insert honey seed data")
	}
	zap.L().Info("seeded honeys", zap.Int("count", len(rows)))
	return nil
}

func (s *Seeder) seedLocalSources() error {
	var count int64
	if err := s.db.Model(&domain.LocalSource{}).Count(&count).Error; err != nil {
		return errors.Wrap(err, "count local sources")
	}
	if count > 0 {
		zap.L().Info("local sources already present, skipping seed", zap.Int64("count", count))
		return nil
	}

	var rows []domain.LocalSource
	if err := jsoniter.Unmarshal(localSourcesData, &rows); err != nil {
		return errors.Wrap(err, "decode local source seed data")
	}
	now := time.Now()
	for i := range rows {
		rows[i].ID = common.UUIDint64()
		rows[i].IsActive = true
		rows[i].CreatedAt = now
		rows[i].UpdatedAt = now
		verifiedAt := now
		rows[i].LastVerifiedAt = &verifiedAt
		rows[i].VerificationSource = verificationSource
		rows[i].IsVerified = true
	}
	if err := s.db.Create(&rows).Error; err != nil {
		return errors.Wrap(err, "insert local source seed data")
	}
	zap.L().Info("seeded local sources", zap.Int("count", len(rows)))
	return nil
}

func (s *Seeder) seedEvents() error {
	var count int64
	if err := s.db.Model(&domain.Event{}).Count(&count).Error; err != nil {
		return errors.Wrap(err, "count events")
	}
	if count > 0 {
		zap.L().Info("events already present, skipping seed", zap.Int64("count", count))
		return nil
	}

	var rows []domain.Event
	if err := jsoniter.Unmarshal(eventsData, &rows); err != nil {
		return errors.Wrap(err, "decode event seed data")
	}
	now := time.Now()
	for i := range rows {
		rows[i].ID = common.UUIDint64()
		rows[i].IsActive = true
		rows[i].CreatedAt = now
		rows[i].UpdatedAt = now
		verifiedAt := now
		rows[i].LastVerifiedAt = &verifiedAt
		rows[i].VerificationSource = verificationSource
		rows[i].IsVerified = true
	}
	if err := s.db.Create(&rows).Error; err != nil {
		return errors.Wrap(err, "insert event seed data")
	}
	zap.L().Info("seeded events", zap.Int("count", len(rows)))
	return nil
}
