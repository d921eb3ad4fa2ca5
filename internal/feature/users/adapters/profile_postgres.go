package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"user_service/internal/feature/users/domain/entity"
	"user_service/internal/feature/users/usecase"
)

// profilePostgres is the Postgres implementation of the
// ProfileRepository interface. It performs no business validation
// beyond what the schema enforces.
type profilePostgres struct {
	db *gorm.DB
}

// Compile-time check that profilePostgres implements ProfileRepository.
var _ usecase.ProfileRepository = (*profilePostgres)(nil)

// NewProfileRepository creates a profilePostgres with the given
// connection. Constructor for dependency injection.
func NewProfileRepository(db *gorm.DB) *profilePostgres {
	return &profilePostgres{db: db}
}

// Insert adds a profile and fills in the assigned id. A violation of
// the email unique index is returned as usecase.ErrEmailTaken.
func (r *profilePostgres) Insert(ctx context.Context, profile *entity.UserProfile) error {
	if err := conn(ctx, r.db).Create(profile).Error; err != nil {
		return translateDBError(err)
	}
	return nil
}

// Update persists the full profile row. Associations are never written
// here; addresses change only through their own endpoints.
func (r *profilePostgres) Update(ctx context.Context, profile *entity.UserProfile) error {
	res := conn(ctx, r.db).Omit(clause.Associations).Save(profile)
	if res.Error != nil {
		return translateDBError(res.Error)
	}
	if res.RowsAffected == 0 {
		return usecase.ErrProfileNotFound
	}
	return nil
}

// DeleteByID removes the profile row; the ON DELETE CASCADE constraint
// removes its addresses in the same statement's transaction.
func (r *profilePostgres) DeleteByID(ctx context.Context, id uint) error {
	res := conn(ctx, r.db).Delete(&entity.UserProfile{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrProfileNotFound
	}
	return nil
}

// FindByID returns the profile with its addresses materialized in the
// same query scope, so callers never lazy-load.
func (r *profilePostgres) FindByID(ctx context.Context, id uint) (*entity.UserProfile, error) {
	var profile entity.UserProfile
	if err := conn(ctx, r.db).Preload("Addresses").First(&profile, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// FindAll returns every profile with addresses materialized. Ordering
// is whatever the database yields.
func (r *profilePostgres) FindAll(ctx context.Context) ([]entity.UserProfile, error) {
	var profiles []entity.UserProfile
	if err := conn(ctx, r.db).Preload("Addresses").Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

// ExistsByID reports whether a profile row with the given id exists.
func (r *profilePostgres) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := conn(ctx, r.db).Model(&entity.UserProfile{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ExistsByEmail reports whether any profile stores the given email,
// matched exactly as stored.
func (r *profilePostgres) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := conn(ctx, r.db).Model(&entity.UserProfile{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
