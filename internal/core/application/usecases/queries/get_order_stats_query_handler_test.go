package queries_test

import (
	"context"
	"testing"
	"time"

	"ordertrack/internal/adapters/out/postgres/orderrepo"
	"ordertrack/internal/core/application/usecases/queries"
	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetOrderStatsQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOrderStatsQueryHandler
}

func (suite *GetOrderStatsQueryHandlerTestSuite) SetupSuite() {
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

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))

	suite.handler = queries.NewGetOrderStatsQueryHandler(db)
}

func (suite *GetOrderStatsQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)
}

func (suite *GetOrderStatsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetOrderStatsQueryHandlerTestSuite) TestHandle_CountsPerStatus() {
	suite.insertOrders(order.Pending, 3)
	suite.insertOrders(order.Loaded, 2)
	suite.insertOrders(order.Operated, 1)

	stats, err := suite.handler.Handle(context.Background(), queries.NewGetOrderStatsQuery())
	suite.Require().NoError(err)

	suite.Equal(int64(3), stats.Pending)
	suite.Equal(int64(2), stats.Loaded)
	suite.Equal(int64(1), stats.Operated)
	suite.Equal(int64(6), stats.Total)
}

func (suite *GetOrderStatsQueryHandlerTestSuite) TestHandle_EmptyTable_AllZero() {
	stats, err := suite.handler.Handle(context.Background(), queries.NewGetOrderStatsQuery())
	suite.Require().NoError(err)

	suite.Zero(stats.Pending)
	suite.Zero(stats.Loaded)
	suite.Zero(stats.Operated)
	suite.Zero(stats.Total)
}

func (suite *GetOrderStatsQueryHandlerTestSuite) insertOrders(status order.Status, n int) {
	for range n {
		dto := orderrepo.OrderDTO{
			ID:          kernel.NewUUID().Bytes(),
			ProducerID:  kernel.NewUUID().Bytes(),
			Description: "stats order",
			Details:     []byte(`{"quantity": 1}`),
			Status:      status.String(),
			CreatedAt:   time.Now().UTC(),
		}
		suite.Require().NoError(suite.db.Create(&dto).Error)
	}
}

func TestGetOrderStatsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderStatsQueryHandlerTestSuite))
}
