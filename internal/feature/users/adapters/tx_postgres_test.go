package adapters

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"user_service/internal/feature/users/usecase"
)

func TestTxManager_Do(t *testing.T) {
	t.Run("commit on nil return", func(t *testing.T) {
		db := setupTestDB(t)
		tx := NewTxManager(db)
		profiles := NewProfileRepository(db)

		p := newProfile("commit@x.io")
		err := tx.Do(context.Background(), func(ctx context.Context) error {
			return profiles.Insert(ctx, p)
		})

		require.NoError(t, err)
		found, err := profiles.FindByID(context.Background(), p.ID)
		require.NoError(t, err)
		assert.Equal(t, "commit@x.io", found.Email)
	})

	t.Run("rollback on error leaves no state", func(t *testing.T) {
		db := setupTestDB(t)
		tx := NewTxManager(db)
		profiles := NewProfileRepository(db)

		boom := errors.New("business rule failed")
		p := newProfile("rollback@x.io")
		err := tx.Do(context.Background(), func(ctx context.Context) error {
			if err := profiles.Insert(ctx, p); err != nil {
				return err
			}
			return boom
		})

		require.ErrorIs(t, err, boom)
		exists, err := profiles.ExistsByEmail(context.Background(), "rollback@x.io")
		require.NoError(t, err)
		assert.False(t, exists, "rolled-back insert must not be visible")
	})

	t.Run("operations in one scope share the transaction", func(t *testing.T) {
		db := setupTestDB(t)
		tx := NewTxManager(db)
		profiles := NewProfileRepository(db)

		err := tx.Do(context.Background(), func(ctx context.Context) error {
			p := newProfile("snapshot@x.io")
			if err := profiles.Insert(ctx, p); err != nil {
				return err
			}
			// The uncommitted row must be visible inside the same scope.
			exists, err := profiles.ExistsByEmail(ctx, "snapshot@x.io")
			if err != nil {
				return err
			}
			if !exists {
				return errors.New("own write not visible in transaction")
			}
			return nil
		})

		require.NoError(t, err)
	})

	t.Run("repositories work without a transaction scope", func(t *testing.T) {
		db := setupTestDB(t)
		profiles := NewProfileRepository(db)

		err := profiles.Insert(context.Background(), newProfile("bare@x.io"))

		assert.NoError(t, err)
	})

	t.Run("implements the usecase contract", func(t *testing.T) {
		var _ usecase.TxManager = NewTxManager(setupTestDB(t))
	})
}
