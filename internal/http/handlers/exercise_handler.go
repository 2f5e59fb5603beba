// Exercise HTTP handlers (read-only reference data).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-workout-backend/internal/services"
	"github.com/tbourn/go-workout-backend/internal/utils"
)

// ListExercises godoc
// @ID          listExercises
// @Summary     List exercises
// @Tags        Exercises
// @Produce     json
//
// @Success     200  {array}   domain.Exercise
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /exercises [get]
func (h *Handlers) ListExercises(c *gin.Context) {
	out, err := h.exerciseSvc.List(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, out)
}

// GetExercise godoc
// @ID          getExercise
// @Summary     Fetch an exercise
// @Tags        Exercises
// @Produce     json
//
// @Param       id  path  int  true  "Exercise ID"  example(7)
//
// @Success     200  {object}  domain.Exercise
// @Failure     400  {object}  handlers.ErrorResponse  "Malformed id"
// @Failure     404  {object}  handlers.ErrorResponse  "Exercise not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /exercises/{id} [get]
func (h *Handlers) GetExercise(c *gin.Context) {
	id, okID := utils.ParseUint(c.Param("id"))
	if !okID {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "id must be a positive integer")
		return
	}
	e, err := h.exerciseSvc.Get(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrExerciseNotFound):
			fail(c, http.StatusNotFound, ErrCodeNotFound, "exercise not found")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}
	ok(c, http.StatusOK, e)
}
