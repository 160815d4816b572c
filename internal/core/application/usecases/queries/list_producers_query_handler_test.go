package queries_test

import (
	"context"
	"testing"
	"time"

	"ordertrack/internal/adapters/out/postgres/profilerepo"
	"ordertrack/internal/core/application/access"
	"ordertrack/internal/core/application/usecases/queries"
	"ordertrack/internal/core/domain/model/account"
	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type ListProducersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.ListProducersQueryHandler
}

func (suite *ListProducersQueryHandlerTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&profilerepo.ProfileDTO{}))

	policy, err := access.NewPolicy()
	suite.Require().NoError(err)

	suite.handler = queries.NewListProducersQueryHandler(db, policy)
}

func (suite *ListProducersQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE profiles").Error)
}

func (suite *ListProducersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ListProducersQueryHandlerTestSuite) TestHandle_ReturnsProducersNewestFirst() {
	base := time.Now().UTC().Add(-time.Hour)
	suite.insertProfile(account.RoleProducer, "Old Producer", "old@example.com", base)
	suite.insertProfile(account.RoleProducer, "New Producer", "new@example.com", base.Add(time.Minute))
	suite.insertProfile(account.RoleAdmin, "The Admin", "admin@example.com", base.Add(2*time.Minute))

	query, err := queries.NewListProducersQuery(adminActor())
	suite.Require().NoError(err)

	rows, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	// the admin's own profile never shows up in the producer list
	suite.Require().Len(rows, 2)
	suite.Equal("New Producer", rows[0].FullName)
	suite.Equal("Old Producer", rows[1].FullName)
	suite.Equal("new@example.com", rows[0].Email)
}

func (suite *ListProducersQueryHandlerTestSuite) TestHandle_ProducerDenied() {
	query, err := queries.NewListProducersQuery(access.Actor{
		ID:    kernel.NewUUID(),
		Email: "producer@example.com",
		Role:  account.RoleProducer,
	})
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)
	suite.Require().ErrorIs(err, errs.ErrAuthorizationDenied)
}

func (suite *ListProducersQueryHandlerTestSuite) TestHandle_EmptyTable_ReturnsEmptySlice() {
	query, err := queries.NewListProducersQuery(adminActor())
	suite.Require().NoError(err)

	rows, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Empty(rows)
	suite.NotNil(rows)
}

func adminActor() access.Actor {
	return access.Actor{ID: kernel.NewUUID(), Email: "admin@example.com", Role: account.RoleAdmin}
}

func (suite *ListProducersQueryHandlerTestSuite) insertProfile(
	role account.Role, fullName, email string, createdAt time.Time,
) {
	dto := profilerepo.ProfileDTO{
		ID:        kernel.NewUUID().Bytes(),
		Role:      role.String(),
		FullName:  fullName,
		Email:     email,
		CreatedAt: createdAt,
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)
}

func TestListProducersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ListProducersQueryHandlerTestSuite))
}
