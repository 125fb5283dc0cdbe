package services_test

import (
	"testing"

	"kabalen/internal/core/domain/model/kernel"
	"kabalen/internal/core/domain/model/order"
	"kabalen/internal/core/domain/model/rider"
	"kabalen/internal/core/domain/services"
	"kabalen/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	clientID, _ := kernel.NewID(1)
	origin, err := order.NewClientOrigin(clientID)
	require.NoError(t, err)
	pickup, _ := kernel.NewAddress("A")
	dropoff, _ := kernel.NewAddress("B")
	o, err := order.NewOrder(origin, pickup, dropoff, 0, 0, "", "")
	require.NoError(t, err)
	return o
}

func newTestRider(t *testing.T, id int64) *rider.Rider {
	t.Helper()
	r, err := rider.NewRider("Rider", "0917", "rider", "$2a$10$hash")
	require.NoError(t, err)
	rid, err := kernel.NewID(id)
	require.NoError(t, err)
	require.NoError(t, r.AssignID(rid))
	return r
}

func TestAssignmentArbiter_Claim(t *testing.T) {
	arbiter := services.NewAssignmentArbiter()

	t.Run("first_claim_wins", func(t *testing.T) {
		o := newTestOrder(t)
		r := newTestRider(t, 1)

		require.NoError(t, arbiter.Claim(o, r))
		assert.Equal(t, order.Accepted, o.Status())
		assert.Equal(t, int64(1), o.Rider().Int64())
	})

	t.Run("second_rider_loses_the_race", func(t *testing.T) {
		o := newTestOrder(t)
		winner := newTestRider(t, 1)
		loser := newTestRider(t, 2)

		require.NoError(t, arbiter.Claim(o, winner))
		err := arbiter.Claim(o, loser)

		require.ErrorIs(t, err, errs.ErrConflict)
		assert.Equal(t, int64(1), o.Rider().Int64())
	})

	t.Run("reclaim_is_idempotent", func(t *testing.T) {
		o := newTestOrder(t)
		r := newTestRider(t, 1)

		require.NoError(t, arbiter.Claim(o, r))
		require.NoError(t, arbiter.Claim(o, r))
		assert.Equal(t, int64(1), o.Rider().Int64())
	})

	t.Run("invalid_aggregates_are_rejected", func(t *testing.T) {
		require.Error(t, arbiter.Claim(&order.Order{}, newTestRider(t, 1)))
		require.Error(t, arbiter.Claim(newTestOrder(t), &rider.Rider{}))
	})
}

func TestAssignmentArbiter_Assign(t *testing.T) {
	arbiter := services.NewAssignmentArbiter()

	t.Run("overrides_existing_assignment", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, arbiter.Claim(o, newTestRider(t, 1)))

		require.NoError(t, arbiter.Assign(o, newTestRider(t, 2)))
		assert.Equal(t, int64(2), o.Rider().Int64())
	})
}

func TestAssignmentArbiter_Complete(t *testing.T) {
	arbiter := services.NewAssignmentArbiter()

	t.Run("owner_with_proof_completes", func(t *testing.T) {
		o := newTestOrder(t)
		r := newTestRider(t, 1)
		require.NoError(t, arbiter.Claim(o, r))
		ref, _ := order.NewProofRef("dropoff.jpg")
		require.NoError(t, o.AttachProof(order.ProofDropoff, ref))

		require.NoError(t, arbiter.Complete(o, r))
		assert.Equal(t, order.Completed, o.Status())
	})

	t.Run("non_owner_is_rejected", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, arbiter.Claim(o, newTestRider(t, 1)))
		ref, _ := order.NewProofRef("dropoff.jpg")
		require.NoError(t, o.AttachProof(order.ProofDropoff, ref))

		require.ErrorIs(t, arbiter.Complete(o, newTestRider(t, 2)), errs.ErrConflict)
	})

	t.Run("missing_proof_is_rejected", func(t *testing.T) {
		o := newTestOrder(t)
		r := newTestRider(t, 1)
		require.NoError(t, arbiter.Claim(o, r))

		require.ErrorIs(t, arbiter.Complete(o, r), errs.ErrValueIsRequired)
	})
}
