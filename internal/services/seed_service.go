// Package services – SeedService
//
// This file implements SeedService, a development/test helper that fills the
// database with plausible workout data: it ensures a baseline set of
// exercises exists, then generates random set+workout pairs for today's
// date. The endpoint wiring is gated behind configuration so production
// deployments never expose it.
package services

import (
	"context"
	"math/rand"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/go-workout-backend/internal/domain"
	"github.com/tbourn/go-workout-backend/internal/repo"
)

// defaultExercises is the reference data installed when the exercises table
// is empty.
var defaultExercises = []domain.Exercise{
	{ID: 1, Name: "Bench Press", MuscleGroup: "chest", Icon: "bench-press"},
	{ID: 2, Name: "Squat", MuscleGroup: "legs", Icon: "squat"},
	{ID: 3, Name: "Deadlift", MuscleGroup: "back", Icon: "deadlift"},
	{ID: 4, Name: "Overhead Press", MuscleGroup: "shoulders", Icon: "ohp"},
}

// GeneratedWorkout echoes one generated set+workout pair.
type GeneratedWorkout struct {
	UserID     uint    `json:"uid"`
	Date       string  `json:"date"`
	ExerciseID uint    `json:"eid"`
	SetID      uint    `json:"sid"`
	Reps       int     `json:"reps"`
	Weight     float64 `json:"weight"`
}

// SeedService generates random test data.
type SeedService struct {
	DB *gorm.DB

	// Rand is the randomness source; tests may pin it for determinism.
	// When nil, a time-seeded source is used.
	Rand *rand.Rand

	// Now returns the current time; tests may pin it. Nil means time.Now.
	Now func() time.Time
}

// EnsureExercises installs the default exercise reference data when the
// table is empty. Called at startup and before generation.
func (s *SeedService) EnsureExercises(ctx context.Context) error {
	n, err := repo.CountExercises(ctx, s.DB)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	for i := range defaultExercises {
		e := defaultExercises[i]
		if err := repo.CreateExercise(ctx, s.DB, &e); err != nil {
			return err
		}
	}
	return nil
}

// Generate creates count random set+workout pairs for today's date, spread
// across user ids 1-2 and the seeded exercises, and returns the generated
// records. Reps fall in [8,12] and weights in [20,80), rounded to two
// decimals like any other write.
func (s *SeedService) Generate(ctx context.Context, count int) ([]GeneratedWorkout, error) {
	if count <= 0 {
		count = 100
	}
	if err := s.EnsureExercises(ctx); err != nil {
		return nil, err
	}
	exercises, err := repo.ListExercises(ctx, s.DB)
	if err != nil {
		return nil, err
	}

	rng := s.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	date := now().Format(domain.DateLayout)

	out := make([]GeneratedWorkout, 0, count)
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := 0; i < count; i++ {
			uid := uint(1 + rng.Intn(2))
			eid := exercises[rng.Intn(len(exercises))].ID
			reps := 8 + rng.Intn(5)
			weight := domain.RoundWeight(20 + rng.Float64()*60)

			st, err := repo.CreateSet(ctx, tx, reps, weight)
			if err != nil {
				return err
			}
			w, err := repo.CreateWorkout(ctx, tx, uid, date, eid, st.ID)
			if err != nil {
				return err
			}
			out = append(out, GeneratedWorkout{
				UserID:     w.UserID,
				Date:       w.Date,
				ExerciseID: w.ExerciseID,
				SetID:      st.ID,
				Reps:       reps,
				Weight:     weight,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
