package usecase

import (
	"context"
	"errors"
	"fmt"

	"user_service/internal/feature/users/domain/entity"
	"user_service/internal/shared/apperror"
)

// AddressRepository abstracts the persistence layer for user addresses.
// Following Go convention: interfaces are defined by the consumer
// (usecase), not the provider (adapters).
type AddressRepository interface {
	// Insert persists a new address and fills in its assigned ID.
	// Returns ErrProfileGone when the referenced profile was deleted
	// between the existence pre-check and the insert.
	Insert(ctx context.Context, address *entity.UserAddress) error

	// Update persists changes to an existing address. Returns
	// ErrAddressNotFound when the row is absent.
	Update(ctx context.Context, address *entity.UserAddress) error

	// DeleteByID removes a single address row. Returns
	// ErrAddressNotFound when the row is absent.
	DeleteByID(ctx context.Context, id uint) error

	// FindByID returns the address. Returns ErrAddressNotFound when the
	// row is absent.
	FindByID(ctx context.Context, id uint) (*entity.UserAddress, error)

	// FindAll returns every address. No ordering is guaranteed.
	FindAll(ctx context.Context) ([]entity.UserAddress, error)
}

// AddressView is the read model for address responses: the address
// together with its owning profile, loaded in the same transaction.
type AddressView struct {
	Address entity.UserAddress
	Profile entity.UserProfile
}

// AddressUsecase provides the user-address operations. Every public
// operation runs inside one transaction; on error nothing is persisted.
type AddressUsecase struct {
	addresses AddressRepository
	profiles  ProfileRepository
	tx        TxManager
}

// NewAddressUsecase creates an AddressUsecase with the given dependencies.
func NewAddressUsecase(addresses AddressRepository, profiles ProfileRepository, tx TxManager) *AddressUsecase {
	return &AddressUsecase{addresses: addresses, profiles: profiles, tx: tx}
}

// CreateUserAddress validates and stores a new address, returning a
// confirmation message carrying the assigned id.
func (u *AddressUsecase) CreateUserAddress(ctx context.Context, address *entity.UserAddress) (string, error) {
	if address == nil {
		return "", apperror.InvalidArgument("UserAddress cannot be null")
	}
	if address.ID != 0 {
		return "", apperror.InvalidArgument("New user address cannot have an ID")
	}
	if address.UserProfileID == 0 {
		return "", apperror.InvalidArgument("UserProfile reference is required")
	}

	var msg string
	err := u.tx.Do(ctx, func(ctx context.Context) error {
		exists, err := u.profiles.ExistsByID(ctx, address.UserProfileID)
		if err != nil {
			return err
		}
		if !exists {
			return apperror.InvalidArgument("UserProfile with ID %d does not exist", address.UserProfileID)
		}

		if err := u.addresses.Insert(ctx, address); err != nil {
			// The pre-check alone is racy; a concurrent profile delete
			// surfaces here as the foreign-key violation.
			if errors.Is(err, ErrProfileGone) {
				return apperror.InvalidArgument("UserProfile with ID %d does not exist", address.UserProfileID)
			}
			return err
		}
		msg = fmt.Sprintf("User address created successfully with ID: %d", address.ID)
		return nil
	})
	if err != nil {
		return "", err
	}
	return msg, nil
}

// GetUserAddress returns one address with its owning profile.
func (u *AddressUsecase) GetUserAddress(ctx context.Context, id uint) (*AddressView, error) {
	var view *AddressView
	err := u.tx.Do(ctx, func(ctx context.Context) error {
		address, err := u.addresses.FindByID(ctx, id)
		if err != nil {
			return err
		}
		profile, err := u.profiles.FindByID(ctx, address.UserProfileID)
		if err != nil {
			return err
		}
		view = &AddressView{Address: *address, Profile: *profile}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// GetAllUserAddresses returns every address with its owning profile;
// the list may be empty.
func (u *AddressUsecase) GetAllUserAddresses(ctx context.Context) ([]AddressView, error) {
	var views []AddressView
	err := u.tx.Do(ctx, func(ctx context.Context) error {
		addresses, err := u.addresses.FindAll(ctx)
		if err != nil {
			return err
		}
		profiles, err := u.profiles.FindAll(ctx)
		if err != nil {
			return err
		}
		byID := make(map[uint]entity.UserProfile, len(profiles))
		for _, p := range profiles {
			byID[p.ID] = p
		}
		views = make([]AddressView, 0, len(addresses))
		for _, a := range addresses {
			views = append(views, AddressView{Address: a, Profile: byID[a.UserProfileID]})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}

// EditUserAddress replaces the address stored under id. The path id is
// authoritative and the owning profile cannot be changed: an incoming
// reference to a different profile is rejected, a missing reference
// keeps the current one.
func (u *AddressUsecase) EditUserAddress(ctx context.Context, id uint, address *entity.UserAddress) (string, error) {
	if address == nil {
		return "", apperror.InvalidArgument("UserAddress cannot be null")
	}

	var msg string
	err := u.tx.Do(ctx, func(ctx context.Context) error {
		existing, err := u.addresses.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if address.UserProfileID != 0 && address.UserProfileID != existing.UserProfileID {
			return apperror.InvalidArgument("UserAddress cannot be moved to a different UserProfile")
		}

		address.ID = id
		address.UserProfileID = existing.UserProfileID
		if err := u.addresses.Update(ctx, address); err != nil {
			return err
		}
		msg = fmt.Sprintf("User Address got updated for user Id: %d", id)
		return nil
	})
	if err != nil {
		return "", err
	}
	return msg, nil
}

// RemoveUserAddress deletes a single address.
func (u *AddressUsecase) RemoveUserAddress(ctx context.Context, id uint) (string, error) {
	var msg string
	err := u.tx.Do(ctx, func(ctx context.Context) error {
		if _, err := u.addresses.FindByID(ctx, id); err != nil {
			return err
		}
		if err := u.addresses.DeleteByID(ctx, id); err != nil {
			return err
		}
		msg = fmt.Sprintf("User Address got deleted for user Id: %d", id)
		return nil
	})
	if err != nil {
		return "", err
	}
	return msg, nil
}
