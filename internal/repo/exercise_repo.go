// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Exercise
// model, which is read-mostly reference data consumed by the workout day
// aggregation.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/tbourn/go-workout-backend/internal/domain"
)

// CreateExercise inserts a new exercise row. Exercise ids are fixed
// reference-data ids, so the caller supplies the full record.
func CreateExercise(ctx context.Context, db *gorm.DB, e *domain.Exercise) error {
	return db.WithContext(ctx).Create(e).Error
}

// GetExercise fetches a single exercise by id, or ErrNotFound if missing.
func GetExercise(ctx context.Context, db *gorm.DB, id uint) (*domain.Exercise, error) {
	var e domain.Exercise
	if err := db.WithContext(ctx).Where("id = ?", id).First(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

// ListExercises returns every exercise, ordered by id ascending.
func ListExercises(ctx context.Context, db *gorm.DB) ([]domain.Exercise, error) {
	var out []domain.Exercise
	err := db.WithContext(ctx).Order("id asc").Find(&out).Error
	return out, err
}

// CountExercises returns the number of exercise rows. Used at startup to
// decide whether reference data needs seeding.
func CountExercises(ctx context.Context, db *gorm.DB) (int64, error) {
	var total int64
	err := db.WithContext(ctx).Model(&domain.Exercise{}).Count(&total).Error
	return total, err
}
