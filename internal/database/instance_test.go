package database

import (
	"context"
	"errors"
	"testing"

	"github.com/diegoclair/movie-club-bot/internal/domain/contract"
	"github.com/diegoclair/movie-club-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstance_WithTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("should commit on success", func(t *testing.T) {
		dm := NewInstance(SetupTestDB(t))

		err := dm.WithTransaction(ctx, func(tx contract.DataManager) error {
			return tx.Member().Create(&entity.Member{Handle: "U1", DisplayName: "Alice"})
		})
		require.NoError(t, err)

		got, err := dm.Member().GetByHandle("U1")
		require.NoError(t, err)
		assert.NotNil(t, got)
	})

	t.Run("should roll back on error", func(t *testing.T) {
		dm := NewInstance(SetupTestDB(t))
		boom := errors.New("boom")

		err := dm.WithTransaction(ctx, func(tx contract.DataManager) error {
			if err := tx.Member().Create(&entity.Member{Handle: "U1", DisplayName: "Alice"}); err != nil {
				return err
			}
			return boom
		})
		assert.ErrorIs(t, err, boom)

		got, err := dm.Member().GetByHandle("U1")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("should reuse the outer transaction when nested", func(t *testing.T) {
		dm := NewInstance(SetupTestDB(t))

		err := dm.WithTransaction(ctx, func(tx contract.DataManager) error {
			return tx.WithTransaction(ctx, func(inner contract.DataManager) error {
				return inner.Anchor().Save(&entity.Anchor{StartDate: day(2025, 5, 1)})
			})
		})
		require.NoError(t, err)

		anchor, err := dm.Anchor().Get()
		require.NoError(t, err)
		assert.NotNil(t, anchor)
	})
}
