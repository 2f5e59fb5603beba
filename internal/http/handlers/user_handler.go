// User HTTP handlers.
//
// This file exposes REST endpoints for user records:
//   - POST   /users        (create)
//   - GET    /users/{id}   (point lookup)
//   - PUT    /users/{id}   (update in place)
//   - DELETE /users/{id}   (remove; workout rows are not cascaded)
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-workout-backend/internal/services"
	"github.com/tbourn/go-workout-backend/internal/utils"
)

// CreateUserRequest is the JSON payload for creating a user.
type CreateUserRequest struct {
	FirstName string `json:"firstname" binding:"required,min=1,max=64" example:"Ada"`
	LastName  string `json:"lastname" binding:"required,min=1,max=64" example:"Lovelace"`
	// DOB is optional, YYYY/MM/DD.
	DOB *string `json:"dob,omitempty" example:"1990/06/15"`
}

// UpdateUserRequest is the JSON payload for updating a user in place.
type UpdateUserRequest struct {
	FirstName string  `json:"firstname" binding:"required,min=1,max=64" example:"Ada"`
	LastName  string  `json:"lastname" binding:"required,min=1,max=64" example:"Byron"`
	DOB       *string `json:"dob,omitempty" example:"1990/06/15"`
}

// CreateUser godoc
// @ID          createUser
// @Summary     Create a user
// @Tags        Users
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.CreateUserRequest  true  "User payload"
//
// @Success     201  {object}  domain.User
// @Failure     400  {object}  handlers.ErrorResponse  "Malformed payload"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /users [post]
func (h *Handlers) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "firstname and lastname are required")
		return
	}

	u, err := h.userSvc.Create(c.Request.Context(), req.FirstName, req.LastName, req.DOB)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidName), errors.Is(err, services.ErrInvalidDate):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		default:
			fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
		}
		return
	}
	ok(c, http.StatusCreated, u)
}

// GetUser godoc
// @ID          getUser
// @Summary     Fetch a user
// @Tags        Users
// @Produce     json
//
// @Param       id  path  int  true  "User ID"  example(1)
//
// @Success     200  {object}  domain.User
// @Failure     400  {object}  handlers.ErrorResponse  "Malformed id"
// @Failure     404  {object}  handlers.ErrorResponse  "User not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /users/{id} [get]
func (h *Handlers) GetUser(c *gin.Context) {
	id, okID := utils.ParseUint(c.Param("id"))
	if !okID {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "id must be a positive integer")
		return
	}

	u, err := h.userSvc.Get(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			fail(c, http.StatusNotFound, ErrCodeNotFound, "user not found")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}
	ok(c, http.StatusOK, u)
}

// UpdateUser godoc
// @ID          updateUser
// @Summary     Update a user
// @Tags        Users
// @Accept      json
// @Produce     json
//
// @Param       id    path  int                         true  "User ID"  example(1)
// @Param       body  body  handlers.UpdateUserRequest  true  "New values"
//
// @Success     204  {string}  string  "No Content"
// @Failure     400  {object}  handlers.ErrorResponse  "Malformed payload or id"
// @Failure     404  {object}  handlers.ErrorResponse  "User not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /users/{id} [put]
func (h *Handlers) UpdateUser(c *gin.Context) {
	id, okID := utils.ParseUint(c.Param("id"))
	if !okID {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "id must be a positive integer")
		return
	}
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "firstname and lastname are required")
		return
	}

	if err := h.userSvc.Update(c.Request.Context(), id, req.FirstName, req.LastName, req.DOB); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidName), errors.Is(err, services.ErrInvalidDate):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		case errors.Is(err, services.ErrUserNotFound):
			fail(c, http.StatusNotFound, ErrCodeNotFound, "user not found")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeUpdateFailed, err.Error())
		}
		return
	}
	noContent(c)
}

// DeleteUser godoc
// @ID          deleteUser
// @Summary     Delete a user
// @Description Removes the user record. Workout rows referencing the user are intentionally left in place.
// @Tags        Users
// @Produce     json
//
// @Param       id  path  int  true  "User ID"  example(1)
//
// @Success     204  {string}  string  "No Content"
// @Failure     400  {object}  handlers.ErrorResponse  "Malformed id"
// @Failure     404  {object}  handlers.ErrorResponse  "User not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /users/{id} [delete]
func (h *Handlers) DeleteUser(c *gin.Context) {
	id, okID := utils.ParseUint(c.Param("id"))
	if !okID {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "id must be a positive integer")
		return
	}
	if err := h.userSvc.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			fail(c, http.StatusNotFound, ErrCodeNotFound, "user not found")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeDeleteFailed, err.Error())
		}
		return
	}
	noContent(c)
}
