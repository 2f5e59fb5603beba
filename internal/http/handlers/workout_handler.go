// Workout HTTP handlers.
//
// This file exposes REST endpoints for workout rows and the aggregated day
// view:
//   - POST /workouts              (link a user, date, exercise, and set)
//   - GET  /workouts?uid=&date=   (nested per-exercise view of a user's day)
//
// Handlers are transport-thin: they validate input, call application
// services, and translate service errors into HTTP responses.
package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-workout-backend/internal/domain"
	"github.com/tbourn/go-workout-backend/internal/services"
	"github.com/tbourn/go-workout-backend/internal/utils"
)

//
// Service contracts (context-aware)
//

// WorkoutService defines workout operations consumed by HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type WorkoutService interface {
	// Create inserts a workout row after verifying the referenced set and
	// exercise exist.
	Create(ctx context.Context, uid uint, date string, eid, sid uint) (*domain.Workout, error)
	// Day returns the aggregated per-exercise view of a user's date.
	Day(ctx context.Context, uid uint, date string) (domain.WorkoutDay, error)
	// Delete removes a single workout row.
	Delete(ctx context.Context, id uint) error
}

// SetService defines set lifecycle operations consumed by HTTP handlers.
type SetService interface {
	Create(ctx context.Context, reps int, weight float64) (*domain.Set, error)
	Get(ctx context.Context, id uint) (*domain.Set, error)
	GetMany(ctx context.Context, ids []uint) ([]domain.Set, error)
	Update(ctx context.Context, id uint, reps int, weight float64) error
	Delete(ctx context.Context, id uint) error
}

// UserService defines user CRUD operations consumed by HTTP handlers.
type UserService interface {
	Create(ctx context.Context, firstName, lastName string, dob *string) (*domain.User, error)
	Get(ctx context.Context, id uint) (*domain.User, error)
	Update(ctx context.Context, id uint, firstName, lastName string, dob *string) error
	Delete(ctx context.Context, id uint) error
}

// ExerciseService defines read access to exercise reference data.
type ExerciseService interface {
	Get(ctx context.Context, id uint) (*domain.Exercise, error)
	List(ctx context.Context) ([]domain.Exercise, error)
}

// SeedService generates random test data.
type SeedService interface {
	Generate(ctx context.Context, count int) ([]services.GeneratedWorkout, error)
}

//
// Handler wiring
//

// Handlers groups HTTP endpoints for workouts, sets, users, and exercises.
// It depends on abstract service interfaces to keep transport concerns
// separate from business logic.
type Handlers struct {
	workoutSvc  WorkoutService
	setSvc      SetService
	userSvc     UserService
	exerciseSvc ExerciseService
	seedSvc     SeedService
}

// New constructs and returns a Handlers instance bound to the given services.
func New(workoutSvc WorkoutService, setSvc SetService, userSvc UserService, exerciseSvc ExerciseService, seedSvc SeedService) *Handlers {
	return &Handlers{
		workoutSvc:  workoutSvc,
		setSvc:      setSvc,
		userSvc:     userSvc,
		exerciseSvc: exerciseSvc,
		seedSvc:     seedSvc,
	}
}

//
// DTOs
//

// CreateWorkoutRequest is the JSON payload for creating a workout row.
type CreateWorkoutRequest struct {
	// UserID owns the workout.
	UserID uint `json:"uid" binding:"required,min=1" example:"1"`
	// Date of the workout in YYYY/MM/DD form.
	Date string `json:"date" binding:"required" example:"2024/01/01"`
	// ExerciseID references the exercise performed.
	ExerciseID uint `json:"eid" binding:"required,min=1" example:"7"`
	// SetID references an already-inserted set.
	SetID uint `json:"sid" binding:"required,min=1" example:"101"`
}

//
// Handlers
//

// CreateWorkout godoc
// @ID          createWorkout
// @Summary     Record a workout
// @Description Links a user, date, exercise, and one previously inserted set.
// @Tags        Workouts
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.CreateWorkoutRequest  true  "Workout payload"
//
// @Success     201  {object}  domain.Workout
// @Failure     400  {object}  handlers.ErrorResponse  "Malformed payload or date"
// @Failure     404  {object}  handlers.ErrorResponse  "Referenced set or exercise missing"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /workouts [post]
func (h *Handlers) CreateWorkout(c *gin.Context) {
	var req CreateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	w, err := h.workoutSvc.Create(c.Request.Context(), req.UserID, req.Date, req.ExerciseID, req.SetID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidID), errors.Is(err, services.ErrInvalidDate):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		case errors.Is(err, services.ErrSetNotFound), errors.Is(err, services.ErrExerciseNotFound):
			fail(c, http.StatusNotFound, ErrCodeNotFound, err.Error())
		default:
			fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
		}
		return
	}
	ok(c, http.StatusCreated, w)
}

// GetWorkoutDay godoc
// @ID          getWorkoutDay
// @Summary     Aggregated day view
// @Description Returns the user's workouts for a date grouped by exercise, each entry carrying exercise metadata and its sets keyed by set id. An empty object means no workouts that day.
// @Tags        Workouts
// @Produce     json
//
// @Param       uid   query  int     true  "User ID"                example(1)
// @Param       date  query  string  true  "Date (YYYY/MM/DD)"      example(2024/01/01)
//
// @Success     200  {object}  domain.WorkoutDay
// @Failure     400  {object}  handlers.ErrorResponse  "Malformed uid or date"
// @Failure     404  {object}  handlers.ErrorResponse  "Referenced exercise missing"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /workouts [get]
func (h *Handlers) GetWorkoutDay(c *gin.Context) {
	uid, okUID := utils.ParseUint(c.Query("uid"))
	if !okUID {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "uid must be a positive integer")
		return
	}
	date := c.Query("date")

	day, err := h.workoutSvc.Day(c.Request.Context(), uid, date)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidID), errors.Is(err, services.ErrInvalidDate):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		case errors.Is(err, services.ErrExerciseNotFound):
			fail(c, http.StatusNotFound, ErrCodeNotFound, err.Error())
		default:
			fail(c, http.StatusInternalServerError, ErrCodeAggregateFailed, err.Error())
		}
		return
	}
	ok(c, http.StatusOK, day)
}

// DeleteWorkout godoc
// @ID          deleteWorkout
// @Summary     Delete a workout row
// @Tags        Workouts
// @Produce     json
//
// @Param       id  path  int  true  "Workout ID"  example(42)
//
// @Success     204  {string}  string  "No Content"
// @Failure     400  {object}  handlers.ErrorResponse  "Malformed id"
// @Failure     404  {object}  handlers.ErrorResponse  "Workout not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /workouts/{id} [delete]
func (h *Handlers) DeleteWorkout(c *gin.Context) {
	id, okID := utils.ParseUint(c.Param("id"))
	if !okID {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "id must be a positive integer")
		return
	}
	if err := h.workoutSvc.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, services.ErrWorkoutNotFound):
			fail(c, http.StatusNotFound, ErrCodeNotFound, "workout not found")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeDeleteFailed, err.Error())
		}
		return
	}
	noContent(c)
}
