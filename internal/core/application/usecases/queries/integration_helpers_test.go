package queries_test

import (
	"context"
	"time"

	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"kabalen/internal/adapters/out/postgres"
	"kabalen/internal/adapters/out/postgres/clientrepo"
	"kabalen/internal/adapters/out/postgres/orderrepo"
	"kabalen/internal/adapters/out/postgres/riderrepo"
	"kabalen/internal/core/domain/model/client"
	"kabalen/internal/core/domain/model/kernel"
	"kabalen/internal/core/domain/model/order"
	"kabalen/internal/core/domain/model/rider"
)

// noopTracker satisfies the repositories' tracker dependency during seeding.
type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.ID, interface{}) {}

// startPostgres boots a disposable PostgreSQL container with the full schema.
func startPostgres(ctx context.Context) (*pgcontainer.PostgresContainer, *gorm.DB, error) {
	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, nil, err
	}

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, nil, err
	}

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	if err != nil {
		return nil, nil, err
	}

	if err = postgres.Migrate(db); err != nil {
		return nil, nil, err
	}

	return container, db, nil
}

func truncateAll(db *gorm.DB) error {
	return db.Exec("TRUNCATE TABLE orders, riders, clients RESTART IDENTITY").Error
}

func seedRider(ctx context.Context, db *gorm.DB, name, username, passwordHash string) (*rider.Rider, error) {
	r, err := rider.NewRider(name, "+639175550002", username, passwordHash)
	if err != nil {
		return nil, err
	}

	if err = riderrepo.NewGormRiderRepository(db, noopTracker{}).Add(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func seedClient(ctx context.Context, db *gorm.DB, fullname, username string) (*client.Client, error) {
	c, err := client.NewClient(
		fullname, "12 Mabini St, Angeles City", "+639175550003",
		username, "$2a$10$fakehashfakehashfakehash",
		"valid_id_ab12.jpg", "selfie_cd34.jpg",
	)
	if err != nil {
		return nil, err
	}

	if err = clientrepo.NewGormClientRepository(db, noopTracker{}).Add(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func seedManualOrder(ctx context.Context, db *gorm.DB, customerName, customerPhone string) (*order.Order, error) {
	origin, err := order.NewManualOrigin(customerName, customerPhone)
	if err != nil {
		return nil, err
	}
	return seedOrder(ctx, db, origin)
}

func seedClientOrder(ctx context.Context, db *gorm.DB, clientID kernel.ID) (*order.Order, error) {
	origin, err := order.NewClientOrigin(clientID)
	if err != nil {
		return nil, err
	}
	return seedOrder(ctx, db, origin)
}

func seedOrder(ctx context.Context, db *gorm.DB, origin order.Origin) (*order.Order, error) {
	pickup, err := kernel.NewAddress("Mercado Central")
	if err != nil {
		return nil, err
	}
	dropoff, err := kernel.NewAddress("88 Rizal Ave")
	if err != nil {
		return nil, err
	}

	o, err := order.NewOrder(origin, pickup, dropoff, 2.5, 59, "food", "")
	if err != nil {
		return nil, err
	}

	if err = orderrepo.NewGormOrderRepository(db, noopTracker{}).Add(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func claimOrder(ctx context.Context, db *gorm.DB, o *order.Order, riderID kernel.ID) error {
	if err := o.Claim(riderID); err != nil {
		return err
	}
	return orderrepo.NewGormOrderRepository(db, noopTracker{}).Update(ctx, o)
}

func completeOrder(ctx context.Context, db *gorm.DB, o *order.Order, riderID kernel.ID) error {
	proof, err := order.NewProofRef("dropoff_a1b2.jpg")
	if err != nil {
		return err
	}
	if err = o.AttachProof(order.ProofDropoff, proof); err != nil {
		return err
	}
	if err = o.Complete(riderID); err != nil {
		return err
	}
	return orderrepo.NewGormOrderRepository(db, noopTracker{}).Update(ctx, o)
}

// backdateOrder pushes an order's creation timestamp into the past.
func backdateOrder(db *gorm.DB, id kernel.ID, age time.Duration) error {
	return db.Exec(
		"UPDATE orders SET created_at = ? WHERE id = ?",
		time.Now().Add(-age), id.Int64(),
	).Error
}
