package order_test

import (
	"testing"

	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Pendiente", order.Pending.String())
	assert.Equal(t, "Cargada", order.Loaded.String())
	assert.Equal(t, "Operada", order.Operated.String())
	assert.Equal(t, "Desconocido", order.Unknown.String())
	assert.Equal(t, "Desconocido", order.Status(99).String())
}

func TestStatusFromLabel(t *testing.T) {
	t.Run("valid_labels", func(t *testing.T) {
		cases := map[string]order.Status{
			"Pendiente": order.Pending,
			"Cargada":   order.Loaded,
			"Operada":   order.Operated,
		}
		for label, want := range cases {
			got, err := order.StatusFromLabel(label)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	})

	t.Run("invalid_label", func(t *testing.T) {
		_, err := order.StatusFromLabel("Enviada")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("empty_label", func(t *testing.T) {
		_, err := order.StatusFromLabel("")

		require.Error(t, err)
	})

	t.Run("unknown_label_is_not_parseable", func(t *testing.T) {
		_, err := order.StatusFromLabel("Desconocido")

		require.Error(t, err)
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("valid_statuses", func(t *testing.T) {
		require.NoError(t, order.Pending.Validate())
		require.NoError(t, order.Loaded.Validate())
		require.NoError(t, order.Operated.Validate())
	})

	t.Run("invalid_statuses", func(t *testing.T) {
		require.Error(t, order.Unknown.Validate())
		require.Error(t, order.Status(42).Validate())
	})
}

func TestTransitionPolicy_Permissive(t *testing.T) {
	// The permissive policy reproduces the current reference behavior:
	// every pair of valid statuses is an allowed transition, forwards or
	// backwards. This pins the behavior until the product question about
	// a forward-only guard is settled.
	statuses := []order.Status{order.Pending, order.Loaded, order.Operated}

	for _, from := range statuses {
		for _, to := range statuses {
			assert.NoError(t, order.Permissive.Check(from, to),
				"%s -> %s must be allowed by the permissive policy", from, to)
		}
	}

	t.Run("backward_move_operada_to_pendiente_is_allowed", func(t *testing.T) {
		require.NoError(t, order.Permissive.Check(order.Operated, order.Pending))
	})

	t.Run("invalid_endpoints_are_rejected", func(t *testing.T) {
		require.Error(t, order.Permissive.Check(order.Unknown, order.Pending))
		require.Error(t, order.Permissive.Check(order.Pending, order.Unknown))
	})
}

func TestTransitionPolicy_ForwardOnly(t *testing.T) {
	t.Run("forward_moves_are_allowed", func(t *testing.T) {
		require.NoError(t, order.ForwardOnly.Check(order.Pending, order.Loaded))
		require.NoError(t, order.ForwardOnly.Check(order.Pending, order.Operated))
		require.NoError(t, order.ForwardOnly.Check(order.Loaded, order.Operated))
	})

	t.Run("backward_and_repeated_moves_are_rejected", func(t *testing.T) {
		require.Error(t, order.ForwardOnly.Check(order.Loaded, order.Pending))
		require.Error(t, order.ForwardOnly.Check(order.Operated, order.Pending))
		require.Error(t, order.ForwardOnly.Check(order.Operated, order.Loaded))
		require.Error(t, order.ForwardOnly.Check(order.Pending, order.Pending))
	})
}
