// Package services – UserService
//
// This file implements UserService, which manages user rows: name
// normalization, optional date-of-birth validation, and ownership of the
// user CRUD path. Service-level errors (e.g. ErrUserNotFound) are returned
// for predictable cases so handlers can map them to HTTP results
// consistently.
package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/tbourn/go-workout-backend/internal/domain"
	"github.com/tbourn/go-workout-backend/internal/repo"
)

// UserService implements the use-cases around user records.
type UserService struct {
	DB *gorm.DB
}

// Create validates and inserts a new user. First and last name are required;
// dob is optional but must match YYYY/MM/DD when present.
func (s *UserService) Create(ctx context.Context, firstName, lastName string, dob *string) (*domain.User, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	if firstName == "" || lastName == "" {
		return nil, ErrInvalidName
	}
	if dob != nil && !domain.ValidDate(*dob) {
		return nil, ErrInvalidDate
	}
	return repo.CreateUser(ctx, s.DB, firstName, lastName, dob)
}

// Get fetches a single user by id, or ErrUserNotFound.
func (s *UserService) Get(ctx context.Context, id uint) (*domain.User, error) {
	if id == 0 {
		return nil, ErrInvalidID
	}
	u, err := repo.GetUser(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

// Update overwrites the mutable fields of a user in place, applying the
// same validation as Create. Returns ErrUserNotFound when the row does not
// exist.
func (s *UserService) Update(ctx context.Context, id uint, firstName, lastName string, dob *string) error {
	if id == 0 {
		return ErrInvalidID
	}
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	if firstName == "" || lastName == "" {
		return ErrInvalidName
	}
	if dob != nil && !domain.ValidDate(*dob) {
		return ErrInvalidDate
	}
	if err := repo.UpdateUser(ctx, s.DB, id, firstName, lastName, dob); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

// Delete removes a user by id. Workout rows are not cascaded.
func (s *UserService) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return ErrInvalidID
	}
	if err := repo.DeleteUser(ctx, s.DB, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}
