package order_test

import (
	"math"
	"testing"

	"kabalen/internal/core/domain/model/kernel"
	"kabalen/internal/core/domain/model/order"
	"kabalen/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustAddress(t *testing.T, s string) kernel.Address {
	t.Helper()
	addr, err := kernel.NewAddress(s)
	require.NoError(t, err)
	return addr
}

func mustID(t *testing.T, v int64) kernel.ID {
	t.Helper()
	id, err := kernel.NewID(v)
	require.NoError(t, err)
	return id
}

func mustClientOrigin(t *testing.T, clientID int64) order.Origin {
	t.Helper()
	origin, err := order.NewClientOrigin(mustID(t, clientID))
	require.NoError(t, err)
	return origin
}

func newPendingOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(mustClientOrigin(t, 1), mustAddress(t, "A"), mustAddress(t, "B"), 0, 0, "", "")
	require.NoError(t, err)
	return o
}

func mustProofRef(t *testing.T, name string) order.ProofRef {
	t.Helper()
	ref, err := order.NewProofRef(name)
	require.NoError(t, err)
	return ref
}

func TestNewOrder(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		o := newPendingOrder(t)

		assert.Equal(t, order.Pending, o.Status())
		assert.Nil(t, o.Rider())
		assert.Nil(t, o.PickupProof())
		assert.Nil(t, o.DropoffProof())
		assert.Equal(t, order.DefaultCategory, o.Category())
		assert.Empty(t, o.Notes())
		assert.Zero(t, o.Distance())
		assert.Zero(t, o.Fee())
		require.Error(t, o.ID().Validate(), "identity is assigned on insert")
		require.NoError(t, o.Validate())
	})

	t.Run("explicit_fields", func(t *testing.T) {
		o, err := order.NewOrder(
			mustClientOrigin(t, 1),
			mustAddress(t, "A"), mustAddress(t, "B"),
			12.5, 150, "food", " handle with care ",
		)

		require.NoError(t, err)
		assert.Equal(t, 12.5, o.Distance())
		assert.Equal(t, float64(150), o.Fee())
		assert.Equal(t, "food", o.Category())
		assert.Equal(t, "handle with care", o.Notes())
	})

	t.Run("missing_addresses", func(t *testing.T) {
		_, err := order.NewOrder(mustClientOrigin(t, 1), kernel.Address{}, mustAddress(t, "B"), 0, 0, "", "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = order.NewOrder(mustClientOrigin(t, 1), mustAddress(t, "A"), kernel.Address{}, 0, 0, "", "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("invalid_origin", func(t *testing.T) {
		_, err := order.NewOrder(order.Origin{}, mustAddress(t, "A"), mustAddress(t, "B"), 0, 0, "", "")
		require.Error(t, err)
	})

	t.Run("negative_and_non_finite_amounts", func(t *testing.T) {
		origin := mustClientOrigin(t, 1)
		for _, v := range []float64{-1, math.NaN(), math.Inf(1)} {
			_, err := order.NewOrder(origin, mustAddress(t, "A"), mustAddress(t, "B"), v, 0, "", "")
			require.Error(t, err, "distance %v", v)

			_, err = order.NewOrder(origin, mustAddress(t, "A"), mustAddress(t, "B"), 0, v, "", "")
			require.Error(t, err, "fee %v", v)
		}
	})

	t.Run("zero_value_fails_validate", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_AssignID(t *testing.T) {
	o := newPendingOrder(t)

	require.NoError(t, o.AssignID(mustID(t, 10)))
	assert.Equal(t, int64(10), o.ID().Int64())

	require.ErrorIs(t, o.AssignID(mustID(t, 11)), order.ErrIDAlreadyAssigned)
	assert.Equal(t, int64(10), o.ID().Int64())
}

func TestOrder_Claim(t *testing.T) {
	riderA := int64(1)
	riderB := int64(2)

	t.Run("claim_pending_order", func(t *testing.T) {
		o := newPendingOrder(t)

		require.NoError(t, o.Claim(mustID(t, riderA)))
		assert.Equal(t, order.Accepted, o.Status())
		require.NotNil(t, o.Rider())
		assert.Equal(t, riderA, o.Rider().Int64())
	})

	t.Run("reclaim_by_same_rider_is_idempotent", func(t *testing.T) {
		o := newPendingOrder(t)

		require.NoError(t, o.Claim(mustID(t, riderA)))
		require.NoError(t, o.Claim(mustID(t, riderA)))
		assert.Equal(t, order.Accepted, o.Status())
		assert.Equal(t, riderA, o.Rider().Int64())
	})

	t.Run("claim_by_other_rider_conflicts_without_mutation", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Claim(mustID(t, riderA)))

		err := o.Claim(mustID(t, riderB))

		require.ErrorIs(t, err, errs.ErrConflict)
		assert.Equal(t, order.Accepted, o.Status())
		assert.Equal(t, riderA, o.Rider().Int64(), "loser must not steal the order")
	})

	t.Run("claim_completed_order_fails", func(t *testing.T) {
		o := completedOrder(t, riderA)

		require.Error(t, o.Claim(mustID(t, riderA)))
		assert.Equal(t, order.Completed, o.Status())
	})

	t.Run("claim_requires_valid_rider_id", func(t *testing.T) {
		o := newPendingOrder(t)
		require.Error(t, o.Claim(kernel.ID{}))
	})
}

func TestOrder_AssignTo(t *testing.T) {
	t.Run("assign_pending_order", func(t *testing.T) {
		o := newPendingOrder(t)

		require.NoError(t, o.AssignTo(mustID(t, 3)))
		assert.Equal(t, order.Accepted, o.Status())
		assert.Equal(t, int64(3), o.Rider().Int64())
	})

	t.Run("admin_override_steals_assignment", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Claim(mustID(t, 1)))

		require.NoError(t, o.AssignTo(mustID(t, 2)))
		assert.Equal(t, int64(2), o.Rider().Int64())
	})

	t.Run("completed_is_terminal", func(t *testing.T) {
		o := completedOrder(t, 1)
		require.ErrorIs(t, o.AssignTo(mustID(t, 2)), errs.ErrConflict)
	})
}

func TestOrder_Unassign(t *testing.T) {
	t.Run("unassign_accepted_order", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Claim(mustID(t, 1)))

		require.NoError(t, o.Unassign())
		assert.Equal(t, order.Pending, o.Status())
		assert.Nil(t, o.Rider())
	})

	t.Run("unassign_pending_order_is_noop", func(t *testing.T) {
		o := newPendingOrder(t)

		require.NoError(t, o.Unassign())
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("completed_is_terminal", func(t *testing.T) {
		o := completedOrder(t, 1)

		require.ErrorIs(t, o.Unassign(), errs.ErrConflict)
		assert.Equal(t, order.Completed, o.Status())
		assert.NotNil(t, o.Rider())
	})
}

func TestOrder_AttachProof(t *testing.T) {
	t.Run("attach_both_kinds", func(t *testing.T) {
		o := newPendingOrder(t)

		require.NoError(t, o.AttachProof(order.ProofPickup, mustProofRef(t, "pickup_1.jpg")))
		require.NoError(t, o.AttachProof(order.ProofDropoff, mustProofRef(t, "dropoff_1.jpg")))

		require.NotNil(t, o.PickupProof())
		assert.Equal(t, "pickup_1.jpg", o.PickupProof().String())
		require.NotNil(t, o.DropoffProof())
		assert.Equal(t, "dropoff_1.jpg", o.DropoffProof().String())
	})

	t.Run("replaces_previous_reference", func(t *testing.T) {
		o := newPendingOrder(t)

		require.NoError(t, o.AttachProof(order.ProofDropoff, mustProofRef(t, "first.jpg")))
		require.NoError(t, o.AttachProof(order.ProofDropoff, mustProofRef(t, "second.jpg")))
		assert.Equal(t, "second.jpg", o.DropoffProof().String())
	})

	t.Run("invalid_kind_or_ref", func(t *testing.T) {
		o := newPendingOrder(t)

		require.Error(t, o.AttachProof(order.ProofUnknown, mustProofRef(t, "x.jpg")))
		require.Error(t, o.AttachProof(order.ProofPickup, order.ProofRef{}))
	})
}

func TestOrder_Complete(t *testing.T) {
	riderA := mustID(t, 1)
	riderB := mustID(t, 2)

	t.Run("owner_with_dropoff_proof_completes", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Claim(riderA))
		require.NoError(t, o.AttachProof(order.ProofDropoff, mustProofRef(t, "proof.jpg")))

		require.NoError(t, o.Complete(riderA))
		assert.Equal(t, order.Completed, o.Status())
		assert.Equal(t, riderA.Int64(), o.Rider().Int64())
	})

	t.Run("missing_dropoff_proof_is_rejected", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Claim(riderA))
		require.NoError(t, o.AttachProof(order.ProofPickup, mustProofRef(t, "pickup.jpg")))

		err := o.Complete(riderA)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, order.Accepted, o.Status(), "failed completion must not mutate")
	})

	t.Run("non_owner_is_rejected", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Claim(riderA))
		require.NoError(t, o.AttachProof(order.ProofDropoff, mustProofRef(t, "proof.jpg")))

		require.ErrorIs(t, o.Complete(riderB), errs.ErrConflict)
		assert.Equal(t, order.Accepted, o.Status())
	})

	t.Run("unassigned_order_belongs_to_nobody", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.AttachProof(order.ProofDropoff, mustProofRef(t, "proof.jpg")))

		require.ErrorIs(t, o.Complete(riderA), errs.ErrConflict)
	})

	t.Run("completed_is_terminal", func(t *testing.T) {
		o := completedOrder(t, 1)
		require.ErrorIs(t, o.Complete(mustID(t, 1)), errs.ErrConflict)
	})
}

func TestRestoreOrder(t *testing.T) {
	origin := mustClientOrigin(t, 1)
	pickup := mustAddress(t, "A")
	dropoff := mustAddress(t, "B")

	t.Run("restores_accepted_order", func(t *testing.T) {
		riderID := mustID(t, 2)
		proof := mustProofRef(t, "pickup.jpg")

		o, err := order.RestoreOrder(
			mustID(t, 10), origin, pickup, dropoff, 3, 40, "food", "notes",
			order.Accepted, &riderID, &proof, nil,
		)

		require.NoError(t, err)
		assert.Equal(t, int64(10), o.ID().Int64())
		assert.Equal(t, order.Accepted, o.Status())
		assert.Equal(t, int64(2), o.Rider().Int64())
		assert.Equal(t, "pickup.jpg", o.PickupProof().String())
		assert.Nil(t, o.DropoffProof())
		require.NoError(t, o.Validate())
	})

	t.Run("rejects_rider_status_inconsistency", func(t *testing.T) {
		riderID := mustID(t, 2)

		_, err := order.RestoreOrder(
			mustID(t, 10), origin, pickup, dropoff, 0, 0, "", "",
			order.Pending, &riderID, nil, nil,
		)
		require.Error(t, err, "pending order must not have a rider")

		_, err = order.RestoreOrder(
			mustID(t, 10), origin, pickup, dropoff, 0, 0, "", "",
			order.Accepted, nil, nil, nil,
		)
		require.Error(t, err, "accepted order must have a rider")
	})

	t.Run("rejects_invalid_status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			mustID(t, 10), origin, pickup, dropoff, 0, 0, "", "",
			order.Unknown, nil, nil, nil,
		)
		require.Error(t, err)
	})
}

// completedOrder builds an order that went through the full lifecycle.
func completedOrder(t *testing.T, riderID int64) *order.Order {
	t.Helper()
	o := newPendingOrder(t)
	rid := mustID(t, riderID)
	require.NoError(t, o.Claim(rid))
	require.NoError(t, o.AttachProof(order.ProofDropoff, mustProofRef(t, "proof.jpg")))
	require.NoError(t, o.Complete(rid))
	return o
}
