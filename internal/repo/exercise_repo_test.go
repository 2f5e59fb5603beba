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

func newExerciseRepoDB(t *testing.T, migrate ...any) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), fmt.Sprintf("exercise_repo_test_%d.db", time.Now().UnixNano()))
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

func TestCreateExercise_KeepsExplicitID(t *testing.T) {
	db := newExerciseRepoDB(t, &domain.Exercise{})

	e := &domain.Exercise{ID: 7, Name: "Bench Press", MuscleGroup: "chest", Icon: "bench-press"}
	if err := CreateExercise(context.Background(), db, e); err != nil {
		t.Fatalf("CreateExercise: %v", err)
	}

	got, err := GetExercise(context.Background(), db, 7)
	if err != nil {
		t.Fatalf("GetExercise: %v", err)
	}
	if got.Name != "Bench Press" || got.MuscleGroup != "chest" || got.Icon != "bench-press" {
		t.Fatalf("unexpected exercise: %+v", got)
	}
}

func TestGetExercise_NotFound(t *testing.T) {
	db := newExerciseRepoDB(t, &domain.Exercise{})

	if _, err := GetExercise(context.Background(), db, 42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListExercises_OrderedByID(t *testing.T) {
	db := newExerciseRepoDB(t, &domain.Exercise{})

	ctx := context.Background()
	for _, e := range []domain.Exercise{
		{ID: 3, Name: "Deadlift", MuscleGroup: "back", Icon: "deadlift"},
		{ID: 1, Name: "Bench Press", MuscleGroup: "chest", Icon: "bench-press"},
		{ID: 2, Name: "Squat", MuscleGroup: "legs", Icon: "squat"},
	} {
		e := e
		if err := CreateExercise(ctx, db, &e); err != nil {
			t.Fatalf("seed %d: %v", e.ID, err)
		}
	}

	out, err := ListExercises(ctx, db)
	if err != nil {
		t.Fatalf("ListExercises: %v", err)
	}
	if len(out) != 3 || out[0].ID != 1 || out[1].ID != 2 || out[2].ID != 3 {
		t.Fatalf("unexpected order: %+v", out)
	}
}

func TestCountExercises_EmptyAndSeeded(t *testing.T) {
	db := newExerciseRepoDB(t, &domain.Exercise{})

	n, err := CountExercises(context.Background(), db)
	if err != nil || n != 0 {
		t.Fatalf("expected 0 on empty table, got n=%d err=%v", n, err)
	}

	e := &domain.Exercise{ID: 1, Name: "Squat", MuscleGroup: "legs", Icon: "squat"}
	if err := CreateExercise(context.Background(), db, e); err != nil {
		t.Fatalf("seed: %v", err)
	}
	n, err = CountExercises(context.Background(), db)
	if err != nil || n != 1 {
		t.Fatalf("expected 1, got n=%d err=%v", n, err)
	}
}
