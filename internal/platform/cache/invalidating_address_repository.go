package cache

import (
	"context"

	"github.com/redis/go-redis/v9"

	"user_service/internal/feature/users/domain/entity"
	"user_service/internal/feature/users/usecase"
)

// InvalidatingAddressRepository decorates an AddressRepository so that
// address writes invalidate the cached profile aggregates: a profile's
// JSON embeds its addresses, so any address change makes the cached
// parent stale. Address reads pass through uncached.
type InvalidatingAddressRepository struct {
	inner            usecase.AddressRepository
	rdb              *redis.Client
	profileNamespace string
}

var _ usecase.AddressRepository = (*InvalidatingAddressRepository)(nil)

// NewInvalidatingAddressRepository decorates an AddressRepository. The
// profileNamespace must match the one used by the profile cache; if
// empty it defaults to "profiles".
func NewInvalidatingAddressRepository(rdb *redis.Client, inner usecase.AddressRepository, profileNamespace string) *InvalidatingAddressRepository {
	if profileNamespace == "" {
		profileNamespace = "profiles"
	}
	return &InvalidatingAddressRepository{
		inner:            inner,
		rdb:              rdb,
		profileNamespace: profileNamespace,
	}
}

// Insert writes through and invalidates the profile namespace.
func (c *InvalidatingAddressRepository) Insert(ctx context.Context, address *entity.UserAddress) error {
	if err := c.inner.Insert(ctx, address); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// Update writes through and invalidates the profile namespace.
func (c *InvalidatingAddressRepository) Update(ctx context.Context, address *entity.UserAddress) error {
	if err := c.inner.Update(ctx, address); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// DeleteByID writes through and invalidates the profile namespace.
func (c *InvalidatingAddressRepository) DeleteByID(ctx context.Context, id uint) error {
	if err := c.inner.DeleteByID(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// FindByID passes through to the underlying repository.
func (c *InvalidatingAddressRepository) FindByID(ctx context.Context, id uint) (*entity.UserAddress, error) {
	return c.inner.FindByID(ctx, id)
}

// FindAll passes through to the underlying repository.
func (c *InvalidatingAddressRepository) FindAll(ctx context.Context) ([]entity.UserAddress, error) {
	return c.inner.FindAll(ctx)
}

func (c *InvalidatingAddressRepository) invalidate(ctx context.Context) {
	if c.rdb == nil {
		return
	}
	_ = deleteByPattern(ctx, c.rdb, c.profileNamespace+":*")
}
