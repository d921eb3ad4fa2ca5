// Package usecase implements the business logic of the user directory.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"user_service/internal/feature/users/domain/entity"
	"user_service/internal/shared/apperror"
)

// ProfileRepository abstracts the persistence layer for user profiles.
// Following Go convention: interfaces are defined by the consumer
// (usecase), not the provider (adapters).
type ProfileRepository interface {
	// Insert persists a new profile and fills in its assigned ID.
	// Returns ErrEmailTaken when the email unique index is violated.
	Insert(ctx context.Context, profile *entity.UserProfile) error

	// Update persists changes to an existing profile. Returns
	// ErrProfileNotFound when the row is absent and ErrEmailTaken when
	// the new email collides with another profile.
	Update(ctx context.Context, profile *entity.UserProfile) error

	// DeleteByID removes a profile; the schema cascades the delete to
	// its addresses. Returns ErrProfileNotFound when the row is absent.
	DeleteByID(ctx context.Context, id uint) error

	// FindByID returns the profile with its addresses materialized.
	// Returns ErrProfileNotFound when the row is absent.
	FindByID(ctx context.Context, id uint) (*entity.UserProfile, error)

	// FindAll returns every profile with addresses materialized. No
	// ordering is guaranteed.
	FindAll(ctx context.Context) ([]entity.UserProfile, error)

	ExistsByID(ctx context.Context, id uint) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// ProfileUsecase provides the user-profile operations. Every public
// operation runs inside one transaction; on error nothing is persisted.
type ProfileUsecase struct {
	profiles ProfileRepository
	tx       TxManager
}

// NewProfileUsecase creates a ProfileUsecase with the given dependencies.
func NewProfileUsecase(profiles ProfileRepository, tx TxManager) *ProfileUsecase {
	return &ProfileUsecase{profiles: profiles, tx: tx}
}

// CreateUserProfile validates and stores a new profile, returning a
// confirmation message carrying the assigned id.
func (u *ProfileUsecase) CreateUserProfile(ctx context.Context, profile *entity.UserProfile) (string, error) {
	if profile == nil {
		return "", apperror.InvalidArgument("UserProfile cannot be null")
	}
	if profile.ID != 0 {
		return "", apperror.InvalidArgument("New user profile cannot have an ID")
	}
	if strings.TrimSpace(profile.Email) == "" {
		return "", apperror.InvalidArgument("Email is required")
	}

	var msg string
	err := u.tx.Do(ctx, func(ctx context.Context) error {
		taken, err := u.profiles.ExistsByEmail(ctx, profile.Email)
		if err != nil {
			return err
		}
		if taken {
			return apperror.InvalidArgument("User with email already exists: %s", profile.Email)
		}

		profile.CreatedAt = time.Now()
		profile.UpdatedAt = nil
		if err := u.profiles.Insert(ctx, profile); err != nil {
			// The pre-check alone is racy; a concurrent create surfaces
			// here as the unique-index violation.
			if errors.Is(err, ErrEmailTaken) {
				return apperror.InvalidArgument("User with email already exists: %s", profile.Email)
			}
			return err
		}
		msg = fmt.Sprintf("User profile created successfully with ID: %d", profile.ID)
		return nil
	})
	if err != nil {
		return "", err
	}
	return msg, nil
}

// GetUserProfile returns one profile with its addresses.
func (u *ProfileUsecase) GetUserProfile(ctx context.Context, id uint) (*entity.UserProfile, error) {
	var profile *entity.UserProfile
	err := u.tx.Do(ctx, func(ctx context.Context) error {
		p, err := u.profiles.FindByID(ctx, id)
		if err != nil {
			return err
		}
		profile = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return profile, nil
}

// GetAllUserProfiles returns every profile; the list may be empty.
func (u *ProfileUsecase) GetAllUserProfiles(ctx context.Context) ([]entity.UserProfile, error) {
	var profiles []entity.UserProfile
	err := u.tx.Do(ctx, func(ctx context.Context) error {
		ps, err := u.profiles.FindAll(ctx)
		if err != nil {
			return err
		}
		profiles = ps
		return nil
	})
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

// EditUserProfile replaces the profile stored under id with the given
// data. The path id is authoritative: any id in the body is overwritten
// so a client cannot silently reassign a record. CreatedAt is preserved
// from the stored row and UpdatedAt is refreshed.
func (u *ProfileUsecase) EditUserProfile(ctx context.Context, id uint, profile *entity.UserProfile) (string, error) {
	if profile == nil {
		return "", apperror.InvalidArgument("UserProfile cannot be null")
	}

	var msg string
	err := u.tx.Do(ctx, func(ctx context.Context) error {
		existing, err := u.profiles.FindByID(ctx, id)
		if err != nil {
			return err
		}

		profile.ID = id
		profile.CreatedAt = existing.CreatedAt
		now := time.Now()
		profile.UpdatedAt = &now

		if err := u.profiles.Update(ctx, profile); err != nil {
			if errors.Is(err, ErrEmailTaken) {
				return apperror.InvalidArgument("User with email already exists: %s", profile.Email)
			}
			return err
		}
		msg = fmt.Sprintf("User Profile got updated for user Id: %d", id)
		return nil
	})
	if err != nil {
		return "", err
	}
	return msg, nil
}

// RemoveUserProfile deletes the profile and, through the schema's
// cascade, all of its addresses in the same transaction.
func (u *ProfileUsecase) RemoveUserProfile(ctx context.Context, id uint) (string, error) {
	var msg string
	err := u.tx.Do(ctx, func(ctx context.Context) error {
		if _, err := u.profiles.FindByID(ctx, id); err != nil {
			return err
		}
		if err := u.profiles.DeleteByID(ctx, id); err != nil {
			return err
		}
		msg = fmt.Sprintf("User Profile got deleted for user Id: %d", id)
		return nil
	})
	if err != nil {
		return "", err
	}
	return msg, nil
}
