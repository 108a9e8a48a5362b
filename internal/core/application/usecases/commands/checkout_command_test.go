package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCheckoutCommand(t *testing.T) {
	customerID := kernel.NewUUID()

	t.Run("valid command", func(t *testing.T) {
		cmd, err := commands.NewCheckoutCommand(customerID, "Jane Doe", "12 Elm Street")
		require.NoError(t, err)
		assert.NoError(t, cmd.Validate())
		assert.Equal(t, customerID, cmd.CustomerID())
		assert.Equal(t, "Jane Doe", cmd.Receiver())
		assert.Equal(t, "12 Elm Street", cmd.DeliveryAddress())
	})

	t.Run("empty receiver", func(t *testing.T) {
		_, err := commands.NewCheckoutCommand(customerID, "", "12 Elm Street")
		require.ErrorIs(t, err, commands.ErrReceiverIsRequired)
	})

	t.Run("empty delivery address", func(t *testing.T) {
		_, err := commands.NewCheckoutCommand(customerID, "Jane Doe", "")
		require.ErrorIs(t, err, commands.ErrDeliveryAddressIsRequired)
	})

	t.Run("invalid customer id", func(t *testing.T) {
		_, err := commands.NewCheckoutCommand(kernel.UUID{}, "Jane Doe", "12 Elm Street")
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		cmd := commands.CheckoutCommand{}
		require.ErrorIs(t, cmd.Validate(), commands.ErrCheckoutCommandIsNotConstructed)
	})
}
