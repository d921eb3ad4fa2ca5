package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"user_service/internal/feature/users/domain/entity"
	"user_service/internal/feature/users/usecase"
)

// addressPostgres is the Postgres implementation of the
// AddressRepository interface.
type addressPostgres struct {
	db *gorm.DB
}

// Compile-time check that addressPostgres implements AddressRepository.
var _ usecase.AddressRepository = (*addressPostgres)(nil)

// NewAddressRepository creates an addressPostgres with the given
// connection. Constructor for dependency injection.
func NewAddressRepository(db *gorm.DB) *addressPostgres {
	return &addressPostgres{db: db}
}

// Insert adds an address and fills in the assigned id. A foreign-key
// violation (owning profile deleted concurrently) is returned as
// usecase.ErrProfileGone.
func (r *addressPostgres) Insert(ctx context.Context, address *entity.UserAddress) error {
	if err := conn(ctx, r.db).Create(address).Error; err != nil {
		return translateDBError(err)
	}
	return nil
}

// Update persists the full address row.
func (r *addressPostgres) Update(ctx context.Context, address *entity.UserAddress) error {
	res := conn(ctx, r.db).Save(address)
	if res.Error != nil {
		return translateDBError(res.Error)
	}
	if res.RowsAffected == 0 {
		return usecase.ErrAddressNotFound
	}
	return nil
}

// DeleteByID removes a single address row.
func (r *addressPostgres) DeleteByID(ctx context.Context, id uint) error {
	res := conn(ctx, r.db).Delete(&entity.UserAddress{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrAddressNotFound
	}
	return nil
}

// FindByID returns one address row.
func (r *addressPostgres) FindByID(ctx context.Context, id uint) (*entity.UserAddress, error) {
	var address entity.UserAddress
	if err := conn(ctx, r.db).First(&address, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrAddressNotFound
		}
		return nil, err
	}
	return &address, nil
}

// FindAll returns every address row. Ordering is whatever the database
// yields.
func (r *addressPostgres) FindAll(ctx context.Context) ([]entity.UserAddress, error) {
	var addresses []entity.UserAddress
	if err := conn(ctx, r.db).Find(&addresses).Error; err != nil {
		return nil, err
	}
	return addresses, nil
}
