package queries_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/adapters/out/postgres/centerrepo"
	"dispatch/internal/adapters/out/postgres/orderrepo"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/center"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type QueryHandlersTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	centers    queries.GetAllCentersQueryHandler
	orders     queries.GetAllOrdersQueryHandler
	centerRepo *centerrepo.GormCenterRepository
	orderRepo  *orderrepo.GormOrderRepository
}

func (suite *QueryHandlersTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &centerrepo.CenterDTO{})
	suite.Require().NoError(err)

	suite.centers = queries.NewGetAllCentersQueryHandler(db)
	suite.orders = queries.NewGetAllOrdersQueryHandler(db)
	suite.centerRepo = centerrepo.NewGormCenterRepository(db, &mockAggregateTracker{})
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *QueryHandlersTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *QueryHandlersTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, centers RESTART IDENTITY").Error
	suite.Require().NoError(err)
}

func (suite *QueryHandlersTestSuite) TestGetAllCenters_EmptyTable_ReturnsEmptySlice() {
	result, err := suite.centers.Handle(context.Background(), queries.NewGetAllCentersQuery())

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *QueryHandlersTestSuite) TestGetAllCenters_ReturnsRowsByID() {
	ctx := context.Background()
	suite.addCenter("Center North", "BMS", 47.6062, -122.3321)
	suite.addCenter("Center South", "S", 33.7490, -84.3880)

	result, err := suite.centers.Handle(ctx, queries.NewGetAllCentersQuery())
	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	first := result[0]
	suite.Equal(int64(1), first.ID)
	suite.Equal("Center North", first.Name)
	suite.Equal("BMS", first.Capacity)
	suite.Equal("AVAILABLE", first.Status)
	suite.Equal(1, first.CurrentLoad)
	suite.Equal(5, first.MaxCapacity)
	suite.InDelta(47.6062, first.Coordinates.Latitude(), 1e-9)
	suite.InDelta(-122.3321, first.Coordinates.Longitude(), 1e-9)

	suite.Equal(int64(2), result[1].ID)
	suite.Equal("S", result[1].Capacity)
}

func (suite *QueryHandlersTestSuite) TestGetAllOrders_EmptyTable_ReturnsEmptySlice() {
	result, err := suite.orders.Handle(context.Background(), queries.NewGetAllOrdersQuery())

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *QueryHandlersTestSuite) TestGetAllOrders_ReturnsPendingAndAssigned() {
	ctx := context.Background()
	pending := suite.addOrder(10, kernel.Small)
	assigned := suite.addOrder(20, kernel.Big)
	suite.Require().NoError(assigned.AssignTo("Center North"))
	suite.Require().NoError(suite.orderRepo.Update(ctx, assigned))

	result, err := suite.orders.Handle(ctx, queries.NewGetAllOrdersQuery())
	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	suite.Equal(pending.ID().Int64(), result[0].ID)
	suite.Equal(int64(10), result[0].CustomerID)
	suite.Equal("S", result[0].Size)
	suite.Equal("PENDING", result[0].Status)
	suite.Nil(result[0].AssignedCenter)

	suite.Equal(assigned.ID().Int64(), result[1].ID)
	suite.Equal("B", result[1].Size)
	suite.Equal("ASSIGNED", result[1].Status)
	suite.Require().NotNil(result[1].AssignedCenter)
	suite.Equal("Center North", *result[1].AssignedCenter)
}

func (suite *QueryHandlersTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	_, err := suite.centers.Handle(context.Background(), queries.GetAllCentersQuery{})
	suite.Require().ErrorIs(err, queries.ErrGetAllCentersQueryIsNotConstructed)

	_, err = suite.orders.Handle(context.Background(), queries.GetAllOrdersQuery{})
	suite.Require().ErrorIs(err, queries.ErrGetAllOrdersQueryIsNotConstructed)
}

func (suite *QueryHandlersTestSuite) addCenter(name, descriptor string, lat, lon float64) *center.Center {
	capacity, err := kernel.ParseCapacity(descriptor)
	suite.Require().NoError(err)
	coordinates, err := kernel.NewCoordinates(lat, lon)
	suite.Require().NoError(err)
	c, err := center.NewCenter(name, capacity, center.Available, 1, 5, coordinates)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.centerRepo.Add(context.Background(), c))
	return c
}

func (suite *QueryHandlersTestSuite) addOrder(customerID int64, size kernel.Size) *order.Order {
	coordinates, err := kernel.NewCoordinates(40.7128, -74.0060)
	suite.Require().NoError(err)
	o, err := order.NewOrder(customerID, size, coordinates)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), o))
	return o
}

func TestQueryHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(QueryHandlersTestSuite))
}

type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.ID, _ any) {
	// No-op for query tests
}
