package usecase

import "user_service/internal/shared/apperror"

// Errors shared between the usecases and the repository adapters.
// Adapters translate database failures into these values so the
// business logic never inspects driver error codes.
var (
	// ErrProfileNotFound indicates that no user profile exists with the
	// given id.
	ErrProfileNotFound = apperror.NotFound("User not found")

	// ErrAddressNotFound indicates that no user address exists with the
	// given id.
	ErrAddressNotFound = apperror.NotFound("User Address not found")

	// ErrEmailTaken is the unique-index violation on the profile email.
	// It covers the window between the ExistsByEmail pre-check and the
	// insert, where a concurrent create can win the race.
	ErrEmailTaken = apperror.Conflict("user profile email already in use")

	// ErrProfileGone is the foreign-key violation raised when an
	// address insert races a concurrent profile delete.
	ErrProfileGone = apperror.Conflict("referenced user profile no longer exists")
)
