// Package domain defines the persistence models for users, exercises, sets,
// and workouts. These types are mapped with GORM and form the core data layer
// of the workout tracking application, along with the typed aggregate view
// returned by the workout day read path.
package domain

// DateLayout is the canonical calendar-date format used throughout the API
// and the workouts table ("YYYY/MM/DD").
const DateLayout = "2006/01/02"

// User represents an account that owns workout rows.
//
// Fields:
//   - ID: auto-incremented primary key, server-assigned and immutable.
//   - FirstName / LastName: required display names.
//   - DOB: optional date of birth in DateLayout format.
type User struct {
	ID        uint    `json:"id"        gorm:"primaryKey;autoIncrement"`
	FirstName string  `json:"firstname" gorm:"column:firstname;type:varchar(64);not null"`
	LastName  string  `json:"lastname"  gorm:"column:lastname;type:varchar(64);not null"`
	DOB       *string `json:"dob,omitempty" gorm:"column:dob;type:varchar(10)"`
}

// TableName returns the database table name for User.
func (User) TableName() string { return "users" }

// Exercise is reference data describing a movement (e.g. "Bench Press").
// Exercises are read-only from the aggregator's perspective; they are seeded
// at startup or through the seeding endpoint.
type Exercise struct {
	ID          uint   `json:"id"           gorm:"primaryKey"`
	Name        string `json:"name"         gorm:"type:varchar(128);not null"`
	MuscleGroup string `json:"muscle_group" gorm:"column:muscle_group;type:varchar(64);not null"`
	Icon        string `json:"icon"         gorm:"type:varchar(128);not null"`
}

// TableName returns the database table name for Exercise.
func (Exercise) TableName() string { return "exercises" }

// Set records a single performed set: a rep count and the weight used.
// Weight is stored rounded to two decimals (see RoundWeight); the canonical
// column and JSON name is "weight". A set has no intrinsic owner - it becomes
// meaningful once a workout row references it.
type Set struct {
	ID     uint    `json:"id"     gorm:"primaryKey;autoIncrement"`
	Reps   int     `json:"reps"   gorm:"not null"`
	Weight float64 `json:"weight" gorm:"not null"`
}

// TableName returns the database table name for Set.
func (Set) TableName() string { return "sets" }

// Workout is a join row linking a user, a calendar date, an exercise, and
// exactly one set. The referenced set must exist before the row is created;
// deleting a set cascades to the workout rows referencing it (enforced by
// the service layer, not the database).
type Workout struct {
	ID         uint   `json:"id"   gorm:"primaryKey;autoIncrement"`
	UserID     uint   `json:"uid"  gorm:"column:uid;not null;index:idx_user_date,priority:1"`
	Date       string `json:"date" gorm:"type:varchar(10);not null;index:idx_user_date,priority:2"`
	ExerciseID uint   `json:"eid"  gorm:"column:eid;not null;index"`
	SetID      uint   `json:"sid"  gorm:"column:sid;not null;index"`
}

// TableName returns the database table name for Workout.
func (Workout) TableName() string { return "workouts" }

// SetEntry is the per-set slice of the aggregated day view.
type SetEntry struct {
	Reps   int     `json:"reps"`
	Weight float64 `json:"weight"`
}

// ExerciseGroup is one top-level entry of the aggregated day view: exercise
// metadata plus every set the user performed for it on that date, keyed by
// set id.
type ExerciseGroup struct {
	Name        string            `json:"name"`
	MuscleGroup string            `json:"muscle_group"`
	Icon        string            `json:"icon"`
	Sets        map[uint]SetEntry `json:"sets"`
}

// WorkoutDay answers "what did user U do on date D?" - a mapping from
// exercise id to that exercise's metadata and sets. It is transient, owned
// by the request that produced it.
type WorkoutDay map[uint]ExerciseGroup
