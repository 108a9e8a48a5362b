package kernel_test

import (
	"testing"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("should create money with positive amount", func(t *testing.T) {
		m, err := kernel.NewMoney(1999)

		require.NoError(t, err)
		assert.Equal(t, int64(1999), m.Amount())
	})

	t.Run("should allow zero amount", func(t *testing.T) {
		m, err := kernel.NewMoney(0)

		require.NoError(t, err)
		assert.Equal(t, int64(0), m.Amount())
	})

	t.Run("should reject negative amount", func(t *testing.T) {
		_, err := kernel.NewMoney(-1)

		assert.Error(t, err)
	})
}

func TestMoney_Mul(t *testing.T) {
	t.Run("should multiply by quantity", func(t *testing.T) {
		m, _ := kernel.NewMoney(250)

		total, err := m.Mul(3)
		require.NoError(t, err)
		assert.Equal(t, int64(750), total.Amount())
	})

	t.Run("should reject negative quantity", func(t *testing.T) {
		m, _ := kernel.NewMoney(250)

		_, err := m.Mul(-1)
		assert.Error(t, err)
	})
}

func TestMoney_IsEqual(t *testing.T) {
	a, _ := kernel.NewMoney(100)
	b, _ := kernel.NewMoney(100)
	c, _ := kernel.NewMoney(101)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
