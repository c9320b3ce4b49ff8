package store

import (
	"context"
	"errors"
	"fmt"

	"userhub/be/biz/model/convert"
	"userhub/be/biz/model/domain"
	"userhub/be/biz/model/errs"
	"userhub/be/biz/model/storage"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore keeps one row per record. Save replaces the collection: rows
// missing from the new collection are soft deleted, the rest are upserted.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Load(ctx context.Context) ([]domain.UserRecord, error) {
	records, err := load(s.db.WithContext(ctx), false)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}
	return records, nil
}

func (s *GormStore) Save(ctx context.Context, records []domain.UserRecord) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return save(tx, records)
	})
}

// Update locks the live rows for the duration of the transaction.
func (s *GormStore) Update(ctx context.Context, fn UpdateFunc) error {
	var fnErr error
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		records, err := load(tx, true)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrRead, err)
		}
		next, err := fn(records)
		if err != nil {
			fnErr = err
			return err
		}
		return save(tx, next)
	})
	if err == nil || fnErr != nil || errors.Is(err, ErrRead) || errors.Is(err, ErrWrite) || errors.Is(err, ErrConflict) {
		return err
	}
	// commit failed
	return fmt.Errorf("%w: %w", ErrWrite, err)
}

func load(db *gorm.DB, lock bool) ([]domain.UserRecord, error) {
	if lock {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var rows []storage.UserRecord
	if err := db.Order("id asc").Find(&rows).Error; err != nil {
		return nil, err
	}

	records := make([]domain.UserRecord, 0, len(rows))
	for i := range rows {
		records = append(records, *convert.UserRecordToDomain(&rows[i]))
	}
	return records, nil
}

func save(tx *gorm.DB, records []domain.UserRecord) error {
	ids := make([]string, 0, len(records))
	rows := make([]*storage.UserRecord, 0, len(records))
	for i := range records {
		ids = append(ids, records[i].ID)
		rows = append(rows, convert.UserDomainToRecord(&records[i]))
	}

	stale := tx.Model(&storage.UserRecord{})
	if len(ids) > 0 {
		stale = stale.Where("user_id NOT IN ?", ids)
	} else {
		stale = stale.Where("1 = 1")
	}
	if err := stale.Delete(&storage.UserRecord{}).Error; err != nil {
		return fmt.Errorf("%w: delete stale rows: %w", ErrWrite, err)
	}

	if len(rows) == 0 {
		return nil
	}

	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "email", "password", "created_at", "updated_at", "deleted_at"}),
	}).Create(&rows).Error
	if err != nil {
		if errs.IsDuplicatedErr(err) {
			return fmt.Errorf("%w: %w", ErrConflict, err)
		}
		return fmt.Errorf("%w: upsert: %w", ErrWrite, err)
	}
	return nil
}
