package cart_test

import (
	"testing"
	"time"

	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCart_AddItem(t *testing.T) {
	now := time.Now()

	t.Run("adds a new line", func(t *testing.T) {
		c, _ := cart.NewCart(kernel.NewUUID(), kernel.NewUUID(), now)
		productID := kernel.NewUUID()

		require.NoError(t, c.AddItem(productID, 2, now))
		require.Len(t, c.Lines(), 1)
		assert.Equal(t, 2, c.Lines()[0].Quantity)
	})

	t.Run("overwrites quantity for existing product", func(t *testing.T) {
		c, _ := cart.NewCart(kernel.NewUUID(), kernel.NewUUID(), now)
		productID := kernel.NewUUID()

		require.NoError(t, c.AddItem(productID, 2, now))
		require.NoError(t, c.AddItem(productID, 5, now))
		require.Len(t, c.Lines(), 1)
		assert.Equal(t, 5, c.Lines()[0].Quantity)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		c, _ := cart.NewCart(kernel.NewUUID(), kernel.NewUUID(), now)
		assert.Error(t, c.AddItem(kernel.NewUUID(), 0, now))
	})

	t.Run("updates touchedAt", func(t *testing.T) {
		c, _ := cart.NewCart(kernel.NewUUID(), kernel.NewUUID(), now)
		later := now.Add(time.Minute)

		require.NoError(t, c.AddItem(kernel.NewUUID(), 1, later))
		assert.Equal(t, later, c.TouchedAt())
	})
}

func TestCart_RemoveItem(t *testing.T) {
	now := time.Now()

	t.Run("removes an existing line", func(t *testing.T) {
		c, _ := cart.NewCart(kernel.NewUUID(), kernel.NewUUID(), now)
		productID := kernel.NewUUID()
		require.NoError(t, c.AddItem(productID, 2, now))

		require.NoError(t, c.RemoveItem(productID, now))
		assert.True(t, c.IsEmpty())
	})

	t.Run("removing an absent product is a no-op", func(t *testing.T) {
		c, _ := cart.NewCart(kernel.NewUUID(), kernel.NewUUID(), now)
		require.NoError(t, c.AddItem(kernel.NewUUID(), 2, now))

		require.NoError(t, c.RemoveItem(kernel.NewUUID(), now))
		assert.Len(t, c.Lines(), 1)
	})
}

func TestCart_Clear(t *testing.T) {
	now := time.Now()
	c, _ := cart.NewCart(kernel.NewUUID(), kernel.NewUUID(), now)
	require.NoError(t, c.AddItem(kernel.NewUUID(), 2, now))
	require.NoError(t, c.AddItem(kernel.NewUUID(), 3, now))

	c.Clear(now)
	assert.True(t, c.IsEmpty())
}
