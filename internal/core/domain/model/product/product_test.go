package product_test

import (
	"testing"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	t.Run("valid product", func(t *testing.T) {
		p, err := product.NewProduct(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "Chess set", "Wooden pieces")

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.False(t, p.IsDeleted())
	})

	t.Run("name is required", func(t *testing.T) {
		_, err := product.NewProduct(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "", "desc")
		assert.ErrorIs(t, err, product.ErrNameIsRequired)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var p product.Product
		assert.ErrorIs(t, p.Validate(), product.ErrProductIsNotConstructed)
	})
}

func TestProduct_MarkDeleted(t *testing.T) {
	p, _ := product.NewProduct(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "Chess set", "")

	first := time.Now()
	p.MarkDeleted(first)
	require.True(t, p.IsDeleted())
	assert.Equal(t, first, *p.DeletedAt())

	// second delete keeps the original timestamp
	p.MarkDeleted(first.Add(time.Hour))
	assert.Equal(t, first, *p.DeletedAt())
}

func TestProduct_Update(t *testing.T) {
	t.Run("updates listing", func(t *testing.T) {
		p, _ := product.NewProduct(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "Chess set", "")

		require.NoError(t, p.Update("Deluxe chess set", "Walnut board"))
		assert.Equal(t, "Deluxe chess set", p.Name())
		assert.Equal(t, "Walnut board", p.Description())
	})

	t.Run("deleted product is immutable", func(t *testing.T) {
		p, _ := product.NewProduct(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "Chess set", "")
		p.MarkDeleted(time.Now())

		assert.ErrorIs(t, p.Update("x", "y"), product.ErrProductIsDeleted)
	})
}
