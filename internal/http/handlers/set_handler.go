// Set HTTP handlers.
//
// This file exposes REST endpoints for set rows:
//   - POST   /sets          (create)
//   - GET    /sets/{id}     (point lookup)
//   - GET    /sets?ids=     (batch lookup)
//   - PUT    /sets/{id}     (update reps/weight)
//   - DELETE /sets/{id}     (delete + cascade to referencing workouts)
//
// Weights are canonicalized to two decimals by the service at write time;
// handlers never see un-rounded stored values.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-workout-backend/internal/services"
	"github.com/tbourn/go-workout-backend/internal/utils"
)

// CreateSetRequest is the JSON payload for creating a set.
type CreateSetRequest struct {
	// Reps performed.
	Reps int `json:"reps" binding:"required,min=1" example:"10"`
	// Weight used; rounded to 2 decimals when stored.
	Weight *float64 `json:"weight" binding:"required" example:"60.255"`
}

// UpdateSetRequest is the JSON payload for updating a set.
type UpdateSetRequest struct {
	Reps   int      `json:"reps" binding:"required,min=1" example:"12"`
	Weight *float64 `json:"weight" binding:"required" example:"62.5"`
}

// CreateSet godoc
// @ID          createSet
// @Summary     Create a set
// @Description Inserts a set row and returns it, including the server-assigned id and the stored (rounded) weight.
// @Tags        Sets
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.CreateSetRequest  true  "Set payload"
//
// @Success     201  {object}  domain.Set
// @Failure     400  {object}  handlers.ErrorResponse  "Malformed payload"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /sets [post]
func (h *Handlers) CreateSet(c *gin.Context) {
	var req CreateSetRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Weight == nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "reps and weight are required")
		return
	}

	st, err := h.setSvc.Create(c.Request.Context(), req.Reps, *req.Weight)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidReps), errors.Is(err, services.ErrInvalidWeight):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		default:
			fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
		}
		return
	}
	ok(c, http.StatusCreated, st)
}

// GetSet godoc
// @ID          getSet
// @Summary     Fetch a set
// @Tags        Sets
// @Produce     json
//
// @Param       id  path  int  true  "Set ID"  example(101)
//
// @Success     200  {object}  domain.Set
// @Failure     400  {object}  handlers.ErrorResponse  "Malformed id"
// @Failure     404  {object}  handlers.ErrorResponse  "Set not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /sets/{id} [get]
func (h *Handlers) GetSet(c *gin.Context) {
	id, okID := utils.ParseUint(c.Param("id"))
	if !okID {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "id must be a positive integer")
		return
	}

	st, err := h.setSvc.Get(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSetNotFound):
			fail(c, http.StatusNotFound, ErrCodeNotFound, "set not found")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}
	ok(c, http.StatusOK, st)
}

// ListSets godoc
// @ID          listSets
// @Summary     Batch-fetch sets
// @Description Returns the sets whose ids appear in the comma-separated ids parameter. Ids that do not resolve to a row are absent from the result.
// @Tags        Sets
// @Produce     json
//
// @Param       ids  query  string  true  "Comma-separated set ids"  example(101,102)
//
// @Success     200  {array}   domain.Set
// @Failure     400  {object}  handlers.ErrorResponse  "Malformed id list"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /sets [get]
func (h *Handlers) ListSets(c *gin.Context) {
	ids, okIDs := utils.ParseUintList(c.Query("ids"))
	if !okIDs {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "ids must be a comma-separated list of positive integers")
		return
	}

	sets, err := h.setSvc.GetMany(c.Request.Context(), ids)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, sets)
}

// UpdateSet godoc
// @ID          updateSet
// @Summary     Update a set
// @Description Overwrites reps and weight of an existing set (weight is rounded to 2 decimals).
// @Tags        Sets
// @Accept      json
// @Produce     json
//
// @Param       id    path  int                        true  "Set ID"  example(101)
// @Param       body  body  handlers.UpdateSetRequest  true  "New values"
//
// @Success     204  {string}  string  "No Content"
// @Failure     400  {object}  handlers.ErrorResponse  "Malformed payload or id"
// @Failure     404  {object}  handlers.ErrorResponse  "Set not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /sets/{id} [put]
func (h *Handlers) UpdateSet(c *gin.Context) {
	id, okID := utils.ParseUint(c.Param("id"))
	if !okID {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "id must be a positive integer")
		return
	}
	var req UpdateSetRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Weight == nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "reps and weight are required")
		return
	}

	if err := h.setSvc.Update(c.Request.Context(), id, req.Reps, *req.Weight); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidReps), errors.Is(err, services.ErrInvalidWeight):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		case errors.Is(err, services.ErrSetNotFound):
			fail(c, http.StatusNotFound, ErrCodeNotFound, "set not found")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeUpdateFailed, err.Error())
		}
		return
	}
	noContent(c)
}

// DeleteSet godoc
// @ID          deleteSet
// @Summary     Delete a set
// @Description Removes a set and, atomically, every workout row referencing it.
// @Tags        Sets
// @Produce     json
//
// @Param       id  path  int  true  "Set ID"  example(101)
//
// @Success     204  {string}  string  "No Content"
// @Failure     400  {object}  handlers.ErrorResponse  "Malformed id"
// @Failure     404  {object}  handlers.ErrorResponse  "Set not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /sets/{id} [delete]
func (h *Handlers) DeleteSet(c *gin.Context) {
	id, okID := utils.ParseUint(c.Param("id"))
	if !okID {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "id must be a positive integer")
		return
	}
	if err := h.setSvc.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, services.ErrSetNotFound):
			fail(c, http.StatusNotFound, ErrCodeNotFound, "set not found")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeDeleteFailed, err.Error())
		}
		return
	}
	noContent(c)
}
