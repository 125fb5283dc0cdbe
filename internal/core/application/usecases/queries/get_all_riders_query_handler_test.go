package queries_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"

	"kabalen/internal/adapters/out/postgres/riderrepo"
	"kabalen/internal/core/application/usecases/queries"
)

// GetAllRidersQueryHandlerTestSuite verifies the rider directory read model
// against a real PostgreSQL container.
type GetAllRidersQueryHandlerTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
	handler   queries.GetAllRidersQueryHandler
}

func (suite *GetAllRidersQueryHandlerTestSuite) SetupSuite() {
	container, db, err := startPostgres(context.Background())
	suite.Require().NoError(err)

	suite.container = container
	suite.db = db
}

func (suite *GetAllRidersQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(truncateAll(suite.db))
	suite.handler = queries.NewGetAllRidersQueryHandler(suite.db)
}

func (suite *GetAllRidersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetAllRidersQueryHandlerTestSuite) TestHandle_NoRiders_ReturnsEmptySlice() {
	riders, err := suite.handler.Handle(context.Background(), queries.NewGetAllRidersQuery())

	suite.Require().NoError(err)
	suite.Empty(riders)
}

func (suite *GetAllRidersQueryHandlerTestSuite) TestHandle_CountsOnlyAcceptedOrders() {
	ctx := context.Background()

	busy, err := seedRider(ctx, suite.db, "Jun Dela Cruz", "jun", "$2a$10$fakehashfakehashfakehash")
	suite.Require().NoError(err)
	idle, err := seedRider(ctx, suite.db, "Ben Reyes", "ben", "$2a$10$fakehashfakehashfakehash")
	suite.Require().NoError(err)

	first, err := seedManualOrder(ctx, suite.db, "walk-in Pedro", "+639175550001")
	suite.Require().NoError(err)
	suite.Require().NoError(claimOrder(ctx, suite.db, first, busy.ID()))

	second, err := seedManualOrder(ctx, suite.db, "walk-in Rosa", "+639175550004")
	suite.Require().NoError(err)
	suite.Require().NoError(claimOrder(ctx, suite.db, second, busy.ID()))

	// a delivered order no longer counts as workload
	third, err := seedManualOrder(ctx, suite.db, "walk-in Tonyo", "+639175550005")
	suite.Require().NoError(err)
	suite.Require().NoError(claimOrder(ctx, suite.db, third, busy.ID()))
	suite.Require().NoError(completeOrder(ctx, suite.db, third, busy.ID()))

	riders, err := suite.handler.Handle(ctx, queries.NewGetAllRidersQuery())

	suite.Require().NoError(err)
	suite.Require().Len(riders, 2)

	// sorted by name: Ben before Jun
	suite.True(riders[0].ID.IsEqual(idle.ID()))
	suite.Equal("Ben Reyes", riders[0].Name)
	suite.Zero(riders[0].ActiveOrders)

	suite.True(riders[1].ID.IsEqual(busy.ID()))
	suite.Equal("Jun Dela Cruz", riders[1].Name)
	suite.Equal(int64(2), riders[1].ActiveOrders)
}

func (suite *GetAllRidersQueryHandlerTestSuite) TestHandle_ReportsCreditBalance() {
	ctx := context.Background()

	seeded, err := seedRider(ctx, suite.db, "Jun Dela Cruz", "jun", "$2a$10$fakehashfakehashfakehash")
	suite.Require().NoError(err)

	_, err = seeded.AddCredit(275.50)
	suite.Require().NoError(err)
	suite.Require().NoError(riderrepo.NewGormRiderRepository(suite.db, noopTracker{}).Update(ctx, seeded))

	riders, err := suite.handler.Handle(ctx, queries.NewGetAllRidersQuery())

	suite.Require().NoError(err)
	suite.Require().Len(riders, 1)
	suite.InDelta(275.50, riders[0].Credit, 0.0001)
}

func (suite *GetAllRidersQueryHandlerTestSuite) TestHandle_NotConstructedQuery_ReturnsError() {
	var query queries.GetAllRidersQuery

	_, err := suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, queries.ErrGetAllRidersQueryIsNotConstructed)
}

func TestGetAllRidersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetAllRidersQueryHandlerTestSuite))
}
