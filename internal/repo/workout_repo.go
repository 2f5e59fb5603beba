// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Workout
// join rows consumed by the day aggregation.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/tbourn/go-workout-backend/internal/domain"
)

// CreateWorkout inserts a new workout join row and returns it with the
// assigned id. Referential checks (set/exercise existence) belong to the
// service layer.
func CreateWorkout(ctx context.Context, db *gorm.DB, uid uint, date string, eid, sid uint) (*domain.Workout, error) {
	w := &domain.Workout{
		UserID:     uid,
		Date:       date,
		ExerciseID: eid,
		SetID:      sid,
	}
	if err := db.WithContext(ctx).Create(w).Error; err != nil {
		return nil, err
	}
	return w, nil
}

// GetWorkout fetches a single workout row by id, or ErrNotFound if missing.
func GetWorkout(ctx context.Context, db *gorm.DB, id uint) (*domain.Workout, error) {
	var w domain.Workout
	if err := db.WithContext(ctx).Where("id = ?", id).First(&w).Error; err != nil {
		return nil, err
	}
	return &w, nil
}

// ListWorkoutsForUserDate returns every workout row for (uid, date), ordered
// by id descending (most recent insert first - the ordering is observable
// but carries no meaning beyond insertion recency). An empty result is not
// an error.
func ListWorkoutsForUserDate(ctx context.Context, db *gorm.DB, uid uint, date string) ([]domain.Workout, error) {
	var out []domain.Workout
	err := db.WithContext(ctx).
		Where("uid = ? AND date = ?", uid, date).
		Order("id desc").
		Find(&out).Error
	return out, err
}

// ListSetIDs returns the set ids referenced by workout rows matching
// (uid, date, eid). The uid filter keeps another user's sets out of the
// aggregated view when two users trained the same exercise on the same day.
func ListSetIDs(ctx context.Context, db *gorm.DB, uid uint, date string, eid uint) ([]uint, error) {
	var ids []uint
	err := db.WithContext(ctx).
		Model(&domain.Workout{}).
		Where("uid = ? AND date = ? AND eid = ?", uid, date, eid).
		Pluck("sid", &ids).Error
	return ids, err
}

// DeleteWorkoutsBySetID removes every workout row referencing sid and
// returns the number of rows removed. Used by the set-delete cascade.
func DeleteWorkoutsBySetID(ctx context.Context, db *gorm.DB, sid uint) (int64, error) {
	res := db.WithContext(ctx).Where("sid = ?", sid).Delete(&domain.Workout{})
	return res.RowsAffected, res.Error
}

// DeleteWorkout removes a single workout row by id. Returns ErrNotFound
// when no row matched.
func DeleteWorkout(ctx context.Context, db *gorm.DB, id uint) error {
	res := db.WithContext(ctx).Delete(&domain.Workout{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
