package inventory_test

import (
	"testing"

	"marketplace/internal/core/domain/model/inventory"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestInventory(t *testing.T, stock int) *inventory.Inventory {
	t.Helper()
	price, err := kernel.NewMoney(1500)
	require.NoError(t, err)
	inv, err := inventory.NewInventory(kernel.NewUUID(), kernel.NewUUID(), stock, price)
	require.NoError(t, err)
	return inv
}

func TestNewInventory(t *testing.T) {
	t.Run("valid inventory", func(t *testing.T) {
		inv := newTestInventory(t, 5)

		assert.Equal(t, 5, inv.Stock())
		assert.Equal(t, 0, inv.Sold())
		require.NoError(t, inv.Validate())
	})

	t.Run("negative stock rejected", func(t *testing.T) {
		price, _ := kernel.NewMoney(100)
		_, err := inventory.NewInventory(kernel.NewUUID(), kernel.NewUUID(), -1, price)
		assert.Error(t, err)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var inv inventory.Inventory
		assert.ErrorIs(t, inv.Validate(), inventory.ErrInventoryIsNotConstructed)
	})
}

func TestInventory_Reserve(t *testing.T) {
	t.Run("reserve within stock", func(t *testing.T) {
		inv := newTestInventory(t, 5)

		require.NoError(t, inv.Reserve(3))
		assert.Equal(t, 2, inv.Stock())
		assert.Equal(t, 3, inv.Sold())
	})

	t.Run("reserve beyond stock leaves ledger unchanged", func(t *testing.T) {
		inv := newTestInventory(t, 5)

		err := inv.Reserve(6)
		require.ErrorIs(t, err, inventory.ErrInsufficientStock)
		assert.Equal(t, 5, inv.Stock())
		assert.Equal(t, 0, inv.Sold())
	})

	t.Run("reserve exactly remaining stock", func(t *testing.T) {
		inv := newTestInventory(t, 5)

		require.NoError(t, inv.Reserve(5))
		assert.Equal(t, 0, inv.Stock())

		assert.ErrorIs(t, inv.Reserve(1), inventory.ErrInsufficientStock)
	})

	t.Run("non-positive quantity rejected", func(t *testing.T) {
		inv := newTestInventory(t, 5)

		assert.Error(t, inv.Reserve(0))
		assert.Error(t, inv.Reserve(-2))
	})
}

func TestInventory_Release(t *testing.T) {
	t.Run("release restores stock and sold", func(t *testing.T) {
		inv := newTestInventory(t, 5)
		require.NoError(t, inv.Reserve(3))

		require.NoError(t, inv.Release(3))
		assert.Equal(t, 5, inv.Stock())
		assert.Equal(t, 0, inv.Sold())
	})

	t.Run("sold never goes negative", func(t *testing.T) {
		inv := newTestInventory(t, 5)

		require.NoError(t, inv.Release(2))
		assert.Equal(t, 7, inv.Stock())
		assert.Equal(t, 0, inv.Sold())
	})
}

func TestRestoreInventory(t *testing.T) {
	t.Run("restores sold counter", func(t *testing.T) {
		price, _ := kernel.NewMoney(100)
		inv, err := inventory.RestoreInventory(kernel.NewUUID(), kernel.NewUUID(), 2, price, 8)

		require.NoError(t, err)
		assert.Equal(t, 2, inv.Stock())
		assert.Equal(t, 8, inv.Sold())
	})

	t.Run("negative sold rejected", func(t *testing.T) {
		price, _ := kernel.NewMoney(100)
		_, err := inventory.RestoreInventory(kernel.NewUUID(), kernel.NewUUID(), 2, price, -1)
		assert.Error(t, err)
	})
}
