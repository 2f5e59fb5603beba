package repo

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite" // pure-Go SQLite
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tbourn/go-workout-backend/internal/domain"
)

func newWorkoutRepoDB(t *testing.T, migrate ...any) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), fmt.Sprintf("workout_repo_test_%d.db", time.Now().UnixNano()))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	if len(migrate) > 0 {
		if err := db.AutoMigrate(migrate...); err != nil {
			t.Fatalf("automigrate: %v", err)
		}
	}
	return db
}

func TestCreateWorkout_Error_NoTable(t *testing.T) {
	db := newWorkoutRepoDB(t /* no migrations */)
	w, err := CreateWorkout(context.Background(), db, 1, "2024/01/01", 1, 1)
	if err == nil || w != nil {
		t.Fatalf("expected error creating without table, got workout=%v err=%v", w, err)
	}
}

func TestCreateWorkout_Success_PersistsAllColumns(t *testing.T) {
	db := newWorkoutRepoDB(t, &domain.Workout{})

	w, err := CreateWorkout(context.Background(), db, 1, "2024/01/01", 7, 101)
	if err != nil {
		t.Fatalf("CreateWorkout: %v", err)
	}
	if w.ID == 0 || w.UserID != 1 || w.Date != "2024/01/01" || w.ExerciseID != 7 || w.SetID != 101 {
		t.Fatalf("unexpected Workout fields: %+v", w)
	}

	var got domain.Workout
	if err := db.First(&got, "id = ?", w.ID).Error; err != nil {
		t.Fatalf("load created workout: %v", err)
	}
	if got.UserID != 1 || got.Date != "2024/01/01" || got.ExerciseID != 7 || got.SetID != 101 {
		t.Fatalf("round-trip mismatch: %+v", got)
	}
}

func TestGetWorkout_FoundAndNotFound(t *testing.T) {
	db := newWorkoutRepoDB(t, &domain.Workout{})

	if _, err := GetWorkout(context.Background(), db, 999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing workout, got %v", err)
	}

	w, err := CreateWorkout(context.Background(), db, 1, "2024/01/01", 1, 1)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	got, err := GetWorkout(context.Background(), db, w.ID)
	if err != nil {
		t.Fatalf("GetWorkout: %v", err)
	}
	if got.ID != w.ID {
		t.Fatalf("unexpected workout: %+v", got)
	}
}

func TestListWorkoutsForUserDate_FiltersAndOrders(t *testing.T) {
	db := newWorkoutRepoDB(t, &domain.Workout{})

	ctx := context.Background()
	w1, _ := CreateWorkout(ctx, db, 1, "2024/01/01", 1, 10)
	w2, _ := CreateWorkout(ctx, db, 1, "2024/01/01", 2, 11)
	// Different user, same day; different day, same user: both excluded.
	if _, err := CreateWorkout(ctx, db, 2, "2024/01/01", 1, 12); err != nil {
		t.Fatalf("seed other user: %v", err)
	}
	if _, err := CreateWorkout(ctx, db, 1, "2024/01/02", 1, 13); err != nil {
		t.Fatalf("seed other day: %v", err)
	}

	out, err := ListWorkoutsForUserDate(ctx, db, 1, "2024/01/01")
	if err != nil {
		t.Fatalf("ListWorkoutsForUserDate: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(out))
	}
	// id descending: newest insert first
	if out[0].ID != w2.ID || out[1].ID != w1.ID {
		t.Fatalf("unexpected order: %+v", out)
	}
}

func TestListWorkoutsForUserDate_EmptyDay(t *testing.T) {
	db := newWorkoutRepoDB(t, &domain.Workout{})

	out, err := ListWorkoutsForUserDate(context.Background(), db, 1, "2024/01/01")
	if err != nil {
		t.Fatalf("expected no error on empty day, got %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected empty slice, got %+v", out)
	}
}

func TestListSetIDs_FiltersByUserDateExercise(t *testing.T) {
	db := newWorkoutRepoDB(t, &domain.Workout{})

	ctx := context.Background()
	// user 1, same exercise, two sets
	if _, err := CreateWorkout(ctx, db, 1, "2024/01/01", 7, 101); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := CreateWorkout(ctx, db, 1, "2024/01/01", 7, 102); err != nil {
		t.Fatalf("seed: %v", err)
	}
	// user 2 trained the same exercise the same day: must not leak in
	if _, err := CreateWorkout(ctx, db, 2, "2024/01/01", 7, 201); err != nil {
		t.Fatalf("seed: %v", err)
	}
	// user 1, different exercise
	if _, err := CreateWorkout(ctx, db, 1, "2024/01/01", 8, 103); err != nil {
		t.Fatalf("seed: %v", err)
	}

	ids, err := ListSetIDs(ctx, db, 1, "2024/01/01", 7)
	if err != nil {
		t.Fatalf("ListSetIDs: %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("expected 2 set ids, got %v", ids)
	}
	seen := map[uint]bool{}
	for _, id := range ids {
		seen[id] = true
	}
	if !seen[101] || !seen[102] || seen[201] || seen[103] {
		t.Fatalf("unexpected set ids: %v", ids)
	}
}

func TestDeleteWorkoutsBySetID_RemovesAllReferences(t *testing.T) {
	db := newWorkoutRepoDB(t, &domain.Workout{})

	ctx := context.Background()
	// Two rows reference set 50 (same set logged on two days), one does not.
	if _, err := CreateWorkout(ctx, db, 1, "2024/01/01", 7, 50); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := CreateWorkout(ctx, db, 1, "2024/01/02", 7, 50); err != nil {
		t.Fatalf("seed: %v", err)
	}
	keep, err := CreateWorkout(ctx, db, 1, "2024/01/01", 7, 51)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	n, err := DeleteWorkoutsBySetID(ctx, db, 50)
	if err != nil {
		t.Fatalf("DeleteWorkoutsBySetID: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 rows deleted, got %d", n)
	}

	var remaining []domain.Workout
	if err := db.Find(&remaining).Error; err != nil {
		t.Fatalf("list remaining: %v", err)
	}
	if len(remaining) != 1 || remaining[0].ID != keep.ID {
		t.Fatalf("unexpected remaining rows: %+v", remaining)
	}

	// Deleting by a set id nothing references is a no-op, not an error.
	n, err = DeleteWorkoutsBySetID(ctx, db, 50)
	if err != nil || n != 0 {
		t.Fatalf("expected 0 rows on second pass, got n=%d err=%v", n, err)
	}
}

func TestDeleteWorkout_SuccessAndNotFound(t *testing.T) {
	db := newWorkoutRepoDB(t, &domain.Workout{})

	w, err := CreateWorkout(context.Background(), db, 1, "2024/01/01", 1, 1)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := DeleteWorkout(context.Background(), db, w.ID); err != nil {
		t.Fatalf("DeleteWorkout: %v", err)
	}
	if err := DeleteWorkout(context.Background(), db, w.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on double delete, got %v", err)
	}
}
