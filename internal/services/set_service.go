// Package services – SetService
//
// This file implements SetService, which governs the lifecycle of set rows.
// It validates reps/weight, canonicalizes weights to two decimals at write
// time, and coordinates the set-delete cascade: removing a set also removes
// every workout row referencing it, atomically.
package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tbourn/go-workout-backend/internal/domain"
	"github.com/tbourn/go-workout-backend/internal/repo"
)

// SetService implements the use-cases around set rows. It holds a long-lived
// *gorm.DB handle; the handle may be a plain *gorm.DB or a transaction-bound
// one.
type SetService struct {
	DB *gorm.DB
}

// Create validates and inserts a new set, returning the persisted row with
// its server-assigned id. The stored weight equals round(weight, 2).
func (s *SetService) Create(ctx context.Context, reps int, weight float64) (*domain.Set, error) {
	if reps <= 0 {
		return nil, ErrInvalidReps
	}
	if weight < 0 {
		return nil, ErrInvalidWeight
	}
	return repo.CreateSet(ctx, s.DB, reps, domain.RoundWeight(weight))
}

// Get fetches a single set by id, or ErrSetNotFound.
func (s *SetService) Get(ctx context.Context, id uint) (*domain.Set, error) {
	if id == 0 {
		return nil, ErrInvalidID
	}
	st, err := repo.GetSet(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrSetNotFound
		}
		return nil, err
	}
	return st, nil
}

// GetMany batch-fetches the sets whose ids appear in ids. Ids that do not
// resolve to a row are silently absent from the result; an empty id list
// yields an empty slice.
func (s *SetService) GetMany(ctx context.Context, ids []uint) ([]domain.Set, error) {
	for _, id := range ids {
		if id == 0 {
			return nil, ErrInvalidID
		}
	}
	return repo.ListSetsByIDs(ctx, s.DB, ids)
}

// Update overwrites reps and weight of an existing set, applying the same
// validation and rounding as Create. Returns ErrSetNotFound when the row
// does not exist.
func (s *SetService) Update(ctx context.Context, id uint, reps int, weight float64) error {
	if id == 0 {
		return ErrInvalidID
	}
	if reps <= 0 {
		return ErrInvalidReps
	}
	if weight < 0 {
		return ErrInvalidWeight
	}
	if err := repo.UpdateSet(ctx, s.DB, id, reps, domain.RoundWeight(weight)); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrSetNotFound
		}
		return err
	}
	return nil
}

// Delete removes a set and cascades to every workout row referencing it.
//
// Concurrency & atomicity: the delete and the cascade run inside one
// transaction so a concurrent aggregation never observes a workout row
// whose set is gone.
func (s *SetService) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return ErrInvalidID
	}
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := repo.DeleteSet(ctx, tx, id); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return ErrSetNotFound
			}
			return err
		}
		_, err := repo.DeleteWorkoutsBySetID(ctx, tx, id)
		return err
	})
}
