package order_test

import (
	"fmt"
	"testing"

	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.StatusUnknown))
		assert.Equal(t, 1, int(order.Accepted))
		assert.Equal(t, 2, int(order.Shopping))
		assert.Equal(t, 3, int(order.Picked))
		assert.Equal(t, 4, int(order.OnTheWay))
		assert.Equal(t, 5, int(order.AtCustomer))
		assert.Equal(t, 6, int(order.Delivered))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []order.Status{
			order.Accepted,
			order.Shopping,
			order.Picked,
			order.OnTheWay,
			order.AtCustomer,
			order.Delivered,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		for _, status := range []order.Status{order.StatusUnknown, order.Status(-1), order.Status(7)} {
			require.Error(t, status.Validate())
		}
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return wire representation", func(t *testing.T) {
		testCases := []struct {
			status   order.Status
			expected string
		}{
			{order.Accepted, "accepted"},
			{order.Shopping, "shopping"},
			{order.Picked, "picked"},
			{order.OnTheWay, "on_the_way"},
			{order.AtCustomer, "at_customer"},
			{order.Delivered, "delivered"},
		}

		for _, tc := range testCases {
			assert.Equal(t, tc.expected, tc.status.String())
		}
	})

	t.Run("should return unknown for invalid statuses", func(t *testing.T) {
		assert.Equal(t, "unknown", order.StatusUnknown.String())
		assert.Equal(t, "unknown", order.Status(42).String())
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should round-trip every valid status", func(t *testing.T) {
		for _, status := range []order.Status{
			order.Accepted, order.Shopping, order.Picked,
			order.OnTheWay, order.AtCustomer, order.Delivered,
		} {
			parsed, err := order.StatusFromString(status.String())
			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("should reject unknown strings", func(t *testing.T) {
		_, err := order.StatusFromString("cancelled")
		require.Error(t, err)
	})
}

func TestStatus_StartShopping(t *testing.T) {
	t.Run("should allow transition from Accepted when shopping required", func(t *testing.T) {
		newStatus, err := order.Accepted.StartShopping(true)

		require.NoError(t, err)
		assert.Equal(t, order.Shopping, newStatus)
	})

	t.Run("should reject when shopping is skipped", func(t *testing.T) {
		_, err := order.Accepted.StartShopping(false)

		require.Error(t, err)
		require.ErrorIs(t, err, order.ErrInvalidTransition)
	})

	t.Run("should reject from later statuses", func(t *testing.T) {
		for _, status := range []order.Status{order.Shopping, order.OnTheWay, order.AtCustomer} {
			_, err := status.StartShopping(true)
			require.ErrorIs(t, err, order.ErrInvalidTransition)
		}
	})
}

func TestStatus_MarkPicked(t *testing.T) {
	t.Run("should allow transition from Accepted when shopping skipped", func(t *testing.T) {
		newStatus, err := order.Accepted.MarkPicked(false)

		require.NoError(t, err)
		assert.Equal(t, order.Picked, newStatus)
	})

	t.Run("should reject for shopping orders", func(t *testing.T) {
		_, err := order.Accepted.MarkPicked(true)

		require.ErrorIs(t, err, order.ErrInvalidTransition)
	})
}

func TestStatus_Depart(t *testing.T) {
	t.Run("should allow transition from Shopping", func(t *testing.T) {
		newStatus, err := order.Shopping.Depart(true)

		require.NoError(t, err)
		assert.Equal(t, order.OnTheWay, newStatus)
	})

	t.Run("should allow transition from Picked", func(t *testing.T) {
		newStatus, err := order.Picked.Depart(false)

		require.NoError(t, err)
		assert.Equal(t, order.OnTheWay, newStatus)
	})

	t.Run("should allow transition from Accepted when shopping skipped", func(t *testing.T) {
		newStatus, err := order.Accepted.Depart(false)

		require.NoError(t, err)
		assert.Equal(t, order.OnTheWay, newStatus)
	})

	t.Run("should reject transition from Accepted when shopping required", func(t *testing.T) {
		_, err := order.Accepted.Depart(true)

		require.ErrorIs(t, err, order.ErrInvalidTransition)
	})
}

func TestStatus_Arrive(t *testing.T) {
	t.Run("should allow transition from OnTheWay", func(t *testing.T) {
		newStatus, err := order.OnTheWay.Arrive()

		require.NoError(t, err)
		assert.Equal(t, order.AtCustomer, newStatus)
	})

	t.Run("should reject transition from earlier statuses", func(t *testing.T) {
		for _, status := range []order.Status{order.Accepted, order.Shopping, order.Picked} {
			_, err := status.Arrive()
			require.ErrorIs(t, err, order.ErrInvalidTransition)
		}
	})
}

func TestStatus_Deliver(t *testing.T) {
	t.Run("should allow transition from OnTheWay", func(t *testing.T) {
		newStatus, err := order.OnTheWay.Deliver()

		require.NoError(t, err)
		assert.Equal(t, order.Delivered, newStatus)
	})

	t.Run("should allow transition from AtCustomer", func(t *testing.T) {
		newStatus, err := order.AtCustomer.Deliver()

		require.NoError(t, err)
		assert.Equal(t, order.Delivered, newStatus)
	})

	t.Run("should reject transition from Accepted", func(t *testing.T) {
		// Delivery must pass through the en-route phase first.
		_, err := order.Accepted.Deliver()

		require.Error(t, err)
		require.ErrorIs(t, err, order.ErrInvalidTransition)

		var transitionErr *order.TransitionError
		require.ErrorAs(t, err, &transitionErr)
		assert.Equal(t, order.Accepted, transitionErr.From)
		assert.Equal(t, order.Delivered, transitionErr.To)
	})
}

func TestStatus_Terminal(t *testing.T) {
	t.Run("should reject every transition out of Delivered", func(t *testing.T) {
		_, err := order.Delivered.StartShopping(true)
		require.ErrorIs(t, err, order.ErrTerminalState)

		_, err = order.Delivered.MarkPicked(false)
		require.ErrorIs(t, err, order.ErrTerminalState)

		_, err = order.Delivered.Depart(true)
		require.ErrorIs(t, err, order.ErrTerminalState)

		_, err = order.Delivered.Arrive()
		require.ErrorIs(t, err, order.ErrTerminalState)

		_, err = order.Delivered.Deliver()
		require.ErrorIs(t, err, order.ErrTerminalState)
	})
}

func TestStatus_IsPicking(t *testing.T) {
	t.Run("should report Accepted and Shopping as picking", func(t *testing.T) {
		assert.True(t, order.Accepted.IsPicking())
		assert.True(t, order.Shopping.IsPicking())
	})

	t.Run("should report later statuses as not picking", func(t *testing.T) {
		for _, status := range []order.Status{
			order.Picked, order.OnTheWay, order.AtCustomer, order.Delivered,
		} {
			assert.False(t, status.IsPicking(), "status %s", status)
		}
	})
}
