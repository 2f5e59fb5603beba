// Package services – WorkoutService
//
// This file implements WorkoutService, the application-level component that
// owns workout join rows and the day aggregation read path. The aggregation
// reconstructs a nested, client-ready view of a user's workouts for a given
// date from normalized rows: workout rows are grouped by exercise, enriched
// with exercise metadata, and joined with their set rows in application code.
//
// Observability: public methods are OpenTelemetry-instrumented; spans include
// user id and date attributes.
package services

import (
	"context"
	"errors"
	"sync"

	"gorm.io/gorm"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/tbourn/go-workout-backend/internal/domain"
	"github.com/tbourn/go-workout-backend/internal/repo"
)

// WorkoutService coordinates workout row persistence and the per-day
// aggregation. It holds a long-lived *gorm.DB handle that is safe for
// concurrent use by multiple in-flight requests.
type WorkoutService struct {
	DB *gorm.DB

	// MaxFanOut caps the number of concurrent per-exercise sub-fetches
	// issued by Day. Zero or negative means no cap.
	MaxFanOut int
}

// NewWorkoutService constructs a WorkoutService with a sane fan-out bound.
func NewWorkoutService(db *gorm.DB) *WorkoutService {
	return &WorkoutService{DB: db, MaxFanOut: 4}
}

// Create validates and inserts a workout join row.
//
// Semantics and validation:
//   - uid, eid, and sid must be positive; otherwise ErrInvalidID.
//   - date must match YYYY/MM/DD exactly; otherwise ErrInvalidDate.
//   - The referenced set must already exist; otherwise ErrSetNotFound
//     (sets are inserted first, then linked).
//   - The referenced exercise must exist; otherwise ErrExerciseNotFound.
//
// On success the persisted row (with its assigned id) is returned. Store
// failures propagate as the raw database error.
func (s *WorkoutService) Create(ctx context.Context, uid uint, date string, eid, sid uint) (*domain.Workout, error) {
	tr := otel.Tracer("services/WorkoutService")
	ctx, span := tr.Start(ctx, "Create",
		trace.WithAttributes(
			attribute.Int64("user.id", int64(uid)),
			attribute.String("workout.date", date),
		),
	)
	defer span.End()

	if uid == 0 || eid == 0 || sid == 0 {
		return nil, ErrInvalidID
	}
	if !domain.ValidDate(date) {
		return nil, ErrInvalidDate
	}

	if _, err := repo.GetSet(ctx, s.DB, sid); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrSetNotFound
		}
		return nil, err
	}
	if _, err := repo.GetExercise(ctx, s.DB, eid); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}

	return repo.CreateWorkout(ctx, s.DB, uid, date, eid, sid)
}

// Day answers "what did user uid do on date?" as a mapping from exercise id
// to exercise metadata plus that exercise's sets.
//
// Algorithm:
//  1. Fetch all workout rows for (uid, date), most recent insert first.
//     Zero rows yields an empty (non-nil) WorkoutDay, not an error.
//  2. Derive the distinct exercise ids referenced by those rows.
//  3. For each distinct exercise id, concurrently: fetch the exercise
//     record, fetch the set ids linked by workout rows for
//     (uid, date, eid), and batch-fetch those set rows in one query.
//  4. Merge each group into the result keyed by exercise id, sets keyed by
//     their own id.
//
// The sub-fetches for independent exercise ids have no ordering dependency,
// so they run under an errgroup bound to ctx: a caller-supplied deadline or
// the first failure cancels the remaining fetches. Aggregation is
// all-or-nothing - a missing exercise surfaces as ErrExerciseNotFound and no
// partial result is returned.
func (s *WorkoutService) Day(ctx context.Context, uid uint, date string) (domain.WorkoutDay, error) {
	tr := otel.Tracer("services/WorkoutService")
	ctx, span := tr.Start(ctx, "Day",
		trace.WithAttributes(
			attribute.Int64("user.id", int64(uid)),
			attribute.String("workout.date", date),
		),
	)
	defer span.End()

	if uid == 0 {
		return nil, ErrInvalidID
	}
	if !domain.ValidDate(date) {
		return nil, ErrInvalidDate
	}

	rows, err := repo.ListWorkoutsForUserDate(ctx, s.DB, uid, date)
	if err != nil {
		return nil, err
	}

	day := make(domain.WorkoutDay, len(rows))
	if len(rows) == 0 {
		return day, nil
	}

	// Distinct exercise ids; iteration order is irrelevant since the output
	// is keyed by id.
	distinct := make(map[uint]struct{}, len(rows))
	for _, w := range rows {
		distinct[w.ExerciseID] = struct{}{}
	}

	g, gctx := errgroup.WithContext(ctx)
	if s.MaxFanOut > 0 {
		g.SetLimit(s.MaxFanOut)
	}

	var mu sync.Mutex
	for eid := range distinct {
		g.Go(func() error {
			group, err := s.exerciseGroup(gctx, uid, date, eid)
			if err != nil {
				return err
			}
			mu.Lock()
			day[eid] = *group
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("workout.exercises", len(day)))
	return day, nil
}

// exerciseGroup assembles one top-level entry of the day view: the exercise
// metadata and every set the user performed for it on that date.
func (s *WorkoutService) exerciseGroup(ctx context.Context, uid uint, date string, eid uint) (*domain.ExerciseGroup, error) {
	ex, err := repo.GetExercise(ctx, s.DB, eid)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}

	sids, err := repo.ListSetIDs(ctx, s.DB, uid, date, eid)
	if err != nil {
		return nil, err
	}
	sets, err := repo.ListSetsByIDs(ctx, s.DB, sids)
	if err != nil {
		return nil, err
	}

	group := &domain.ExerciseGroup{
		Name:        ex.Name,
		MuscleGroup: ex.MuscleGroup,
		Icon:        ex.Icon,
		Sets:        make(map[uint]domain.SetEntry, len(sets)),
	}
	for _, st := range sets {
		group.Sets[st.ID] = domain.SetEntry{Reps: st.Reps, Weight: st.Weight}
	}
	return group, nil
}

// Delete removes a single workout row by id. Returns ErrWorkoutNotFound
// when the row does not exist.
func (s *WorkoutService) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return ErrInvalidID
	}
	if err := repo.DeleteWorkout(ctx, s.DB, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrWorkoutNotFound
		}
		return err
	}
	return nil
}
