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

func newSetRepoDB(t *testing.T, migrate ...any) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), fmt.Sprintf("set_repo_test_%d.db", time.Now().UnixNano()))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	// Ensure the file handle is released before TempDir cleanup (Windows needs this).
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

func TestCreateSet_Error_NoTable(t *testing.T) {
	db := newSetRepoDB(t /* no migrations */)
	s, err := CreateSet(context.Background(), db, 10, 60.25)
	if err == nil || s != nil {
		t.Fatalf("expected error creating without table, got set=%v err=%v", s, err)
	}
}

func TestCreateSet_Success_AssignsID(t *testing.T) {
	db := newSetRepoDB(t, &domain.Set{})

	s, err := CreateSet(context.Background(), db, 10, 60.25)
	if err != nil {
		t.Fatalf("CreateSet: %v", err)
	}
	if s.ID == 0 || s.Reps != 10 || s.Weight != 60.25 {
		t.Fatalf("unexpected Set fields: %+v", s)
	}

	// round-trip
	var got domain.Set
	if err := db.First(&got, "id = ?", s.ID).Error; err != nil {
		t.Fatalf("load created set: %v", err)
	}
	if got.Reps != 10 || got.Weight != 60.25 {
		t.Fatalf("round-trip mismatch: %+v", got)
	}
}

func TestGetSet_FoundAndNotFound(t *testing.T) {
	db := newSetRepoDB(t, &domain.Set{})

	if _, err := GetSet(context.Background(), db, 999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing set, got %v", err)
	}

	s, err := CreateSet(context.Background(), db, 8, 100)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	got, err := GetSet(context.Background(), db, s.ID)
	if err != nil {
		t.Fatalf("GetSet: %v", err)
	}
	if got.ID != s.ID || got.Reps != 8 || got.Weight != 100 {
		t.Fatalf("unexpected set: %+v", got)
	}
}

func TestListSetsByIDs_EmptyInput_NoQuery(t *testing.T) {
	// No table exists: an empty id list must still succeed because the
	// database is never touched.
	db := newSetRepoDB(t /* no migrations */)

	out, err := ListSetsByIDs(context.Background(), db, nil)
	if err != nil {
		t.Fatalf("ListSetsByIDs(nil): %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected empty slice, got %+v", out)
	}
}

func TestListSetsByIDs_BatchAndOrder(t *testing.T) {
	db := newSetRepoDB(t, &domain.Set{})

	var ids []uint
	for i, w := range []float64{50, 60, 70} {
		s, err := CreateSet(context.Background(), db, 8+i, w)
		if err != nil {
			t.Fatalf("seed %d: %v", i, err)
		}
		ids = append(ids, s.ID)
	}

	// Request in reverse plus one missing id: missing ids are silently
	// absent, and results come back ordered by id ascending.
	req := []uint{ids[2], ids[0], 9999}
	out, err := ListSetsByIDs(context.Background(), db, req)
	if err != nil {
		t.Fatalf("ListSetsByIDs: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 sets, got %d", len(out))
	}
	if out[0].ID != ids[0] || out[1].ID != ids[2] {
		t.Fatalf("unexpected order: %+v", out)
	}
}

func TestUpdateSet_SuccessAndNotFound(t *testing.T) {
	db := newSetRepoDB(t, &domain.Set{})

	s, err := CreateSet(context.Background(), db, 10, 60)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	if err := UpdateSet(context.Background(), db, s.ID, 12, 62.5); err != nil {
		t.Fatalf("UpdateSet: %v", err)
	}
	var got domain.Set
	if err := db.First(&got, "id = ?", s.ID).Error; err != nil {
		t.Fatalf("load updated: %v", err)
	}
	if got.Reps != 12 || got.Weight != 62.5 {
		t.Fatalf("update not applied: %+v", got)
	}

	if err := UpdateSet(context.Background(), db, 9999, 1, 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing set, got %v", err)
	}
}

func TestDeleteSet_SuccessAndNotFound(t *testing.T) {
	db := newSetRepoDB(t, &domain.Set{})

	s, err := CreateSet(context.Background(), db, 10, 60)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := DeleteSet(context.Background(), db, s.ID); err != nil {
		t.Fatalf("DeleteSet: %v", err)
	}
	if _, err := GetSet(context.Background(), db, s.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected set gone, got %v", err)
	}
	if err := DeleteSet(context.Background(), db, s.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on double delete, got %v", err)
	}
}
