// Package services – ExerciseService
//
// Exercises are read-mostly reference data; this service only exposes the
// read path used by clients to render pickers and icons. Writes happen via
// seeding (see SeedService).
package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tbourn/go-workout-backend/internal/domain"
	"github.com/tbourn/go-workout-backend/internal/repo"
)

// ExerciseService implements read access to exercise reference data.
type ExerciseService struct {
	DB *gorm.DB
}

// Get fetches a single exercise by id, or ErrExerciseNotFound.
func (s *ExerciseService) Get(ctx context.Context, id uint) (*domain.Exercise, error) {
	if id == 0 {
		return nil, ErrInvalidID
	}
	e, err := repo.GetExercise(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	return e, nil
}

// List returns every exercise, ordered by id.
func (s *ExerciseService) List(ctx context.Context) ([]domain.Exercise, error) {
	return repo.ListExercises(ctx, s.DB)
}
