package order_test

import (
	"testing"

	"marketplace/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	assert.NoError(t, order.Paid.Validate())
	assert.NoError(t, order.Cancelled.Validate())
	assert.Error(t, order.Unknown.Validate())
	assert.Error(t, order.Status(42).Validate())
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Paid", order.Paid.String())
	assert.Equal(t, "Cancelled", order.Cancelled.String())
	assert.Equal(t, "Unknown", order.Unknown.String())
	assert.Equal(t, "Unknown", order.Status(42).String())
}

func TestStatus_Cancel(t *testing.T) {
	t.Run("paid can be cancelled", func(t *testing.T) {
		s, err := order.Paid.Cancel()
		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, s)
	})

	t.Run("cancelled is terminal", func(t *testing.T) {
		_, err := order.Cancelled.Cancel()
		assert.Error(t, err)
	})

	t.Run("unknown cannot be cancelled", func(t *testing.T) {
		_, err := order.Unknown.Cancel()
		assert.Error(t, err)
	})
}
