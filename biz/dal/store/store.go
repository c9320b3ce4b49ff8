// Package store persists the whole user collection as one unit.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"userhub/be/biz/model/domain"
)

var (
	ErrRead    = errors.New("store read failure")
	ErrWrite   = errors.New("store write failure")
	ErrCorrupt = errors.New("store is corrupt")

	// ErrConflict means the backend rejected a write that would duplicate an email.
	ErrConflict = errors.New("store conflict")
	// ErrVersionConflict means every optimistic write attempt lost a race.
	ErrVersionConflict = errors.New("store version conflict")
)

const defaultMaxRetries = 5

type Store interface {
	Load(ctx context.Context) ([]domain.UserRecord, error)
	Save(ctx context.Context, records []domain.UserRecord) error
}

// UpdateFunc maps the current collection to the one to persist. It may run
// more than once when an Updater retries.
type UpdateFunc func(records []domain.UserRecord) ([]domain.UserRecord, error)

// Updater is implemented by stores that run a load-modify-save atomically.
type Updater interface {
	Update(ctx context.Context, fn UpdateFunc) error
}

func encode(records []domain.UserRecord) ([]byte, error) {
	if records == nil {
		records = []domain.UserRecord{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: encode: %w", ErrWrite, err)
	}
	return data, nil
}

func decode(data []byte) ([]domain.UserRecord, error) {
	var records []domain.UserRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	if records == nil {
		records = []domain.UserRecord{}
	}
	return records, nil
}

func retries(n int) int {
	if n <= 0 {
		return defaultMaxRetries
	}
	return n
}
