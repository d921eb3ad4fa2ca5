// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"user_service/internal/feature/users/domain/entity"
	"user_service/internal/feature/users/usecase"
)

// CachingProfileRepository decorates a ProfileRepository with Redis
// caching. It implements the decorator pattern, transparently adding
// caching without modifying the underlying repository. Reads by id and
// list-all are cached; every write invalidates the whole namespace
// best-effort, so a rolled-back transaction can at worst force a
// re-fetch, never serve stale data as fresh.
type CachingProfileRepository struct {
	inner     usecase.ProfileRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.ProfileRepository = (*CachingProfileRepository)(nil)

// NewCachingProfileRepository decorates a ProfileRepository with Redis
// caching. If ttl is 0, it defaults to 5 minutes. If namespace is
// empty, it uses "profiles".
func NewCachingProfileRepository(rdb *redis.Client, ttl time.Duration, inner usecase.ProfileRepository, namespace string) *CachingProfileRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "profiles"
	}
	return &CachingProfileRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Insert writes through to the underlying repository and invalidates
// the namespace.
func (c *CachingProfileRepository) Insert(ctx context.Context, profile *entity.UserProfile) error {
	if err := c.inner.Insert(ctx, profile); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// Update writes through to the underlying repository and invalidates
// the namespace.
func (c *CachingProfileRepository) Update(ctx context.Context, profile *entity.UserProfile) error {
	if err := c.inner.Update(ctx, profile); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// DeleteByID writes through to the underlying repository and
// invalidates the namespace.
func (c *CachingProfileRepository) DeleteByID(ctx context.Context, id uint) error {
	if err := c.inner.DeleteByID(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// FindByID retrieves a profile, checking cache first then falling back
// to the database.
func (c *CachingProfileRepository) FindByID(ctx context.Context, id uint) (*entity.UserProfile, error) {
	if c.rdb == nil {
		return c.inner.FindByID(ctx, id)
	}

	key := fmt.Sprintf("%s:id:%d", c.namespace, id)

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out entity.UserProfile
		if err := json.Unmarshal(b, &out); err == nil {
			return &out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.inner.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err() // Best effort
	}
	return out, nil
}

// FindAll retrieves every profile, checking cache first then falling
// back to the database.
func (c *CachingProfileRepository) FindAll(ctx context.Context) ([]entity.UserProfile, error) {
	if c.rdb == nil {
		return c.inner.FindAll(ctx)
	}

	key := c.namespace + ":all"

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.UserProfile
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.inner.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err() // Best effort
	}
	return out, nil
}

// ExistsByID always hits the database: existence checks gate writes
// and must see the transaction's own snapshot.
func (c *CachingProfileRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	return c.inner.ExistsByID(ctx, id)
}

// ExistsByEmail always hits the database for the same reason.
func (c *CachingProfileRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return c.inner.ExistsByEmail(ctx, email)
}

// invalidate drops every key in the namespace, best effort.
func (c *CachingProfileRepository) invalidate(ctx context.Context) {
	if c.rdb == nil {
		return
	}
	_ = deleteByPattern(ctx, c.rdb, c.namespace+":*")
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func deleteByPattern(ctx context.Context, rdb *redis.Client, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return nil
}
