package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"kabalen/internal/core/application/usecases/commands"
	"kabalen/internal/core/domain/model/client"
	"kabalen/internal/core/domain/model/kernel"
	"kabalen/internal/core/domain/model/order"
	"kabalen/internal/core/domain/model/rider"
	"kabalen/internal/core/ports"
)

// Shared testify mocks for the repository and unit of work ports.
// Handler tests wire them together with mock.InOrder to pin down the exact
// transaction choreography of each command.

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockRiderRepository struct{ mock.Mock }

func (m *MockRiderRepository) Add(ctx context.Context, r *rider.Rider) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRiderRepository) Update(ctx context.Context, r *rider.Rider) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRiderRepository) Get(ctx context.Context, id kernel.ID) (*rider.Rider, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rider.Rider), args.Error(1)
}

func (m *MockRiderRepository) GetForUpdate(ctx context.Context, id kernel.ID) (*rider.Rider, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rider.Rider), args.Error(1)
}

func (m *MockRiderRepository) GetByUsername(ctx context.Context, username string) (*rider.Rider, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rider.Rider), args.Error(1)
}

type MockClientRepository struct{ mock.Mock }

func (m *MockClientRepository) Add(ctx context.Context, c *client.Client) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockClientRepository) Get(ctx context.Context, id kernel.ID) (*client.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*client.Client), args.Error(1)
}

func (m *MockClientRepository) GetByUsername(ctx context.Context, username string) (*client.Client, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*client.Client), args.Error(1)
}

func (m *MockClientRepository) ExistsWithUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

// MockUoW implements every UoW flavor the handlers accept.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) RiderRepository() ports.RiderRepository {
	args := m.Called()
	return args.Get(0).(ports.RiderRepository)
}

func (m *MockUoW) ClientRepository() ports.ClientRepository {
	args := m.Called()
	return args.Get(0).(ports.ClientRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockRiderUoWFactory struct{ mock.Mock }

func (m *MockRiderUoWFactory) Create() commands.RiderUoW {
	args := m.Called()
	return args.Get(0).(commands.RiderUoW)
}

type MockClientUoWFactory struct{ mock.Mock }

func (m *MockClientUoWFactory) Create() commands.ClientUoW {
	args := m.Called()
	return args.Get(0).(commands.ClientUoW)
}

// Aggregate builders shared across handler tests.

func mustID(t *testing.T, value int64) kernel.ID {
	t.Helper()
	id, err := kernel.NewID(value)
	require.NoError(t, err)
	return id
}

func mustAddress(t *testing.T, value string) kernel.Address {
	t.Helper()
	addr, err := kernel.NewAddress(value)
	require.NoError(t, err)
	return addr
}

func storedRider(t *testing.T, id int64) *rider.Rider {
	t.Helper()
	r, err := rider.RestoreRider(mustID(t, id), "Jun Cruz", "+639170000001", "jun", "$2a$10$hash", 0)
	require.NoError(t, err)
	return r
}

func storedClient(t *testing.T, id int64) *client.Client {
	t.Helper()
	c, err := client.RestoreClient(
		mustID(t, id),
		"Maria Santos", "12 Mabini St", "+639170000002",
		"maria", "$2a$10$hash", "validId_ref.jpg", "selfie_ref.jpg",
	)
	require.NoError(t, err)
	return c
}

func pendingOrder(t *testing.T, id int64) *order.Order {
	t.Helper()
	origin, err := order.NewManualOrigin("walk-in", "")
	require.NoError(t, err)
	o, err := order.RestoreOrder(
		mustID(t, id), origin,
		mustAddress(t, "Mercado Central"), mustAddress(t, "88 Rizal Ave"),
		2.5, 59, "food", "",
		order.Pending, nil, nil, nil,
	)
	require.NoError(t, err)
	return o
}

func acceptedOrder(t *testing.T, id, riderID int64) *order.Order {
	t.Helper()
	origin, err := order.NewManualOrigin("walk-in", "")
	require.NoError(t, err)
	rid := mustID(t, riderID)
	o, err := order.RestoreOrder(
		mustID(t, id), origin,
		mustAddress(t, "Mercado Central"), mustAddress(t, "88 Rizal Ave"),
		2.5, 59, "food", "",
		order.Accepted, &rid, nil, nil,
	)
	require.NoError(t, err)
	return o
}
