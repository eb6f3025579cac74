package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAttachDeliveryProofCommand(t *testing.T) {
	t.Run("should create command with valid parameters", func(t *testing.T) {
		orderID := kernel.NewUUID()

		cmd, err := commands.NewAttachDeliveryProofCommand(orderID, "pod/ab34.jpg")

		require.NoError(t, err)
		assert.True(t, orderID.IsEqual(cmd.OrderID()))
		assert.Equal(t, "pod/ab34.jpg", cmd.ProofRef())
	})

	t.Run("should return error for empty proof reference", func(t *testing.T) {
		_, err := commands.NewAttachDeliveryProofCommand(kernel.NewUUID(), "")

		require.ErrorIs(t, err, commands.ErrProofRefIsRequired)
	})

	t.Run("should return error for invalid order ID", func(t *testing.T) {
		_, err := commands.NewAttachDeliveryProofCommand(kernel.UUID{}, "pod/ab34.jpg")

		require.Error(t, err)
	})

	t.Run("should fail validation when not constructed", func(t *testing.T) {
		cmd := commands.AttachDeliveryProofCommand{}

		err := cmd.Validate()

		require.ErrorIs(t, err, commands.ErrAttachDeliveryProofCommandIsNotConstructed)
	})
}
