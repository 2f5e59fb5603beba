// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Set model.
//
// Functions:
//
//   - CreateSet(ctx, db, reps, weight) -> *domain.Set, error
//     Inserts a new Set row and returns it with the assigned id.
//
//   - GetSet(ctx, db, id) -> *domain.Set, error
//     Fetches a single set by id, or ErrNotFound if missing.
//
//   - ListSetsByIDs(ctx, db, ids) -> []domain.Set, error
//     Batch-fetches every set whose id is in ids in one query (the
//     aggregation's "select in" call). Missing ids are silently absent
//     from the result.
//
//   - UpdateSet(ctx, db, id, reps, weight) -> error
//     Overwrites reps/weight; ErrNotFound when the row does not exist.
//
//   - DeleteSet(ctx, db, id) -> error
//     Removes a set row. Cascading to workout rows is coordinated by the
//     service layer inside a transaction (see services.SetService.Delete).
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/tbourn/go-workout-backend/internal/domain"
)

// CreateSet inserts a new set row. The caller is responsible for rounding
// weight beforehand (domain.RoundWeight).
func CreateSet(ctx context.Context, db *gorm.DB, reps int, weight float64) (*domain.Set, error) {
	s := &domain.Set{Reps: reps, Weight: weight}
	if err := db.WithContext(ctx).Create(s).Error; err != nil {
		return nil, err
	}
	return s, nil
}

// GetSet fetches a single set by id, or ErrNotFound if missing.
func GetSet(ctx context.Context, db *gorm.DB, id uint) (*domain.Set, error) {
	var s domain.Set
	if err := db.WithContext(ctx).Where("id = ?", id).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// ListSetsByIDs batch-fetches all sets whose id appears in ids, ordered by
// id ascending. An empty id list yields an empty slice without touching
// the database.
func ListSetsByIDs(ctx context.Context, db *gorm.DB, ids []uint) ([]domain.Set, error) {
	if len(ids) == 0 {
		return []domain.Set{}, nil
	}
	var out []domain.Set
	err := db.WithContext(ctx).
		Where("id IN ?", ids).
		Order("id asc").
		Find(&out).Error
	return out, err
}

// UpdateSet overwrites reps and weight of an existing set.
// If no rows are affected (set missing), it returns ErrNotFound.
func UpdateSet(ctx context.Context, db *gorm.DB, id uint, reps int, weight float64) error {
	res := db.WithContext(ctx).
		Model(&domain.Set{}).
		Where("id = ?", id).
		Updates(map[string]any{"reps": reps, "weight": weight})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteSet removes a set row by id. Returns ErrNotFound when no row
// matched.
func DeleteSet(ctx context.Context, db *gorm.DB, id uint) error {
	res := db.WithContext(ctx).Delete(&domain.Set{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
