package store

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"uniadmin-backend/internal/model"
)

// Store defines the interface for all database operations.
type Store interface {
	DB() *gorm.DB

	ListUnits(ctx context.Context) ([]model.Unit, error)
	GetUnit(ctx context.Context, id int64) (*model.Unit, error)
	CreateUnit(ctx context.Context, unit *model.Unit) error
	UpdateUnit(ctx context.Context, unit *model.Unit) error
	DeleteUnit(ctx context.Context, id int64) (int64, error)
	ExternalIDTaken(ctx context.Context, externalID string, excludeID int64) (bool, error)
	UnitExists(ctx context.Context, id int64) (bool, error)

	ListFailures(ctx context.Context, filter FailureFilter) ([]model.Failure, error)
	GetFailure(ctx context.Context, id int64) (*model.Failure, error)
	CreateFailure(ctx context.Context, failure *model.Failure) error
	UpdateFailure(ctx context.Context, failure *model.Failure) error
	DeleteFailure(ctx context.Context, id int64) error
	CountFailures(ctx context.Context, filter FailureFilter) (FailureCounts, error)
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) DB() *gorm.DB {
	return s.db
}

// translate maps gorm errors onto the store's sentinels.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey), errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %v", ErrConflict, err)
	default:
		return err
	}
}

// --- Units ---

// ListUnits returns all units ordered by name.
func (s *gormStore) ListUnits(ctx context.Context) ([]model.Unit, error) {
	var units []model.Unit
	if err := s.db.WithContext(ctx).Order("name").Order("id").Find(&units).Error; err != nil {
		return nil, fmt.Errorf("failed to list units: %w", err)
	}
	return units, nil
}

func (s *gormStore) GetUnit(ctx context.Context, id int64) (*model.Unit, error) {
	var unit model.Unit
	if err := s.db.WithContext(ctx).First(&unit, id).Error; err != nil {
		return nil, translate(err)
	}
	return &unit, nil
}

func (s *gormStore) CreateUnit(ctx context.Context, unit *model.Unit) error {
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(unit).Error; err != nil {
		return translate(err)
	}
	return nil
}

// UpdateUnit writes every column of unit, refreshing UpdatedAt.
func (s *gormStore) UpdateUnit(ctx context.Context, unit *model.Unit) error {
	res := s.db.WithContext(ctx).Model(unit).Omit(clause.Associations, "created_at").
		Select("*").Updates(unit)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteUnit removes the unit together with its failures and returns how many
// failures went with it.
func (s *gormStore) DeleteUnit(ctx context.Context, id int64) (int64, error) {
	var removed int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var unit model.Unit
		if err := tx.Select("id").First(&unit, id).Error; err != nil {
			return translate(err)
		}

		res := tx.Where("unit_id = ?", id).Delete(&model.Failure{})
		if res.Error != nil {
			return fmt.Errorf("failed to delete failures of unit %d: %w", id, res.Error)
		}
		removed = res.RowsAffected

		if err := tx.Delete(&model.Unit{}, id).Error; err != nil {
			return fmt.Errorf("failed to delete unit %d: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	if removed > 0 {
		log.WithFields(log.Fields{"unit_id": id, "failures": removed}).Info("cascaded failure deletion")
	}
	return removed, nil
}

// ExternalIDTaken reports whether another unit already uses externalID.
// excludeID skips the unit being updated; pass 0 on create.
func (s *gormStore) ExternalIDTaken(ctx context.Context, externalID string, excludeID int64) (bool, error) {
	var count int64
	q := s.db.WithContext(ctx).Model(&model.Unit{}).Where("external_id = ?", externalID)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check external id %q: %w", externalID, err)
	}
	return count > 0, nil
}

func (s *gormStore) UnitExists(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&model.Unit{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to look up unit %d: %w", id, err)
	}
	return count > 0, nil
}

// --- Failures ---

func applyFailureFilter(q *gorm.DB, filter FailureFilter) *gorm.DB {
	if filter.UnitID != 0 {
		q = q.Where("unit_id = ?", filter.UnitID)
	}
	if filter.Active != nil {
		q = q.Where("active = ?", *filter.Active)
	}
	if !filter.From.IsZero() {
		q = q.Where("failure_date >= ?", filter.From)
	}
	if !filter.To.IsZero() {
		q = q.Where("failure_date < ?", filter.To)
	}
	return q
}

// ListFailures returns failures with their unit preloaded, newest first.
func (s *gormStore) ListFailures(ctx context.Context, filter FailureFilter) ([]model.Failure, error) {
	var failures []model.Failure
	q := applyFailureFilter(s.db.WithContext(ctx).Preload("Unit"), filter)
	if err := q.Order("failure_date DESC").Order("created_at DESC").Order("id DESC").
		Find(&failures).Error; err != nil {
		return nil, fmt.Errorf("failed to list failures: %w", err)
	}
	return failures, nil
}

func (s *gormStore) GetFailure(ctx context.Context, id int64) (*model.Failure, error) {
	var failure model.Failure
	if err := s.db.WithContext(ctx).Preload("Unit").First(&failure, id).Error; err != nil {
		return nil, translate(err)
	}
	return &failure, nil
}

func (s *gormStore) CreateFailure(ctx context.Context, failure *model.Failure) error {
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(failure).Error; err != nil {
		return translate(err)
	}
	return nil
}

// UpdateFailure writes every column of failure, refreshing UpdatedAt.
func (s *gormStore) UpdateFailure(ctx context.Context, failure *model.Failure) error {
	res := s.db.WithContext(ctx).Model(failure).Omit(clause.Associations, "created_at").
		Select("*").Updates(failure)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *gormStore) DeleteFailure(ctx context.Context, id int64) error {
	res := s.db.WithContext(ctx).Delete(&model.Failure{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete failure %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// CountFailures aggregates active and closed failures matching filter.
func (s *gormStore) CountFailures(ctx context.Context, filter FailureFilter) (FailureCounts, error) {
	type aggRow struct {
		Active bool
		Total  int64
	}
	var rows []aggRow
	q := applyFailureFilter(s.db.WithContext(ctx).Model(&model.Failure{}), filter)
	if err := q.Select("active, COUNT(*) AS total").Group("active").Scan(&rows).Error; err != nil {
		return FailureCounts{}, fmt.Errorf("failed to aggregate failures: %w", err)
	}

	var counts FailureCounts
	for _, r := range rows {
		if r.Active {
			counts.Active += r.Total
		} else {
			counts.Closed += r.Total
		}
	}
	counts.Total = counts.Active + counts.Closed
	return counts, nil
}
