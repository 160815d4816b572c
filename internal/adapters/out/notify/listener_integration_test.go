package notify_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"ordertrack/internal/adapters/out/notify"
	"ordertrack/internal/adapters/out/postgres"
	"ordertrack/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ChangeNotifierIntegrationTestSuite verifies that committed writes to
// the orders table reach subscribers through LISTEN/NOTIFY.
type ChangeNotifierIntegrationTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
	notifier  *notify.PqChangeNotifier
	cancel    context.CancelFunc
}

func (suite *ChangeNotifierIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

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
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres.Migrate(db))

	suite.notifier = notify.NewPqChangeNotifier(connStr, slog.New(slog.DiscardHandler))

	runCtx, cancel := context.WithCancel(ctx)
	suite.cancel = cancel
	go func() { _ = suite.notifier.Run(runCtx) }()
}

func (suite *ChangeNotifierIntegrationTestSuite) TearDownSuite() {
	if suite.cancel != nil {
		suite.cancel()
	}
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ChangeNotifierIntegrationTestSuite) TestSubscribe_ReceivesCommittedInsert() {
	ctx := context.Background()

	events := make(chan ports.ChangeEvent, 1)
	sub, err := suite.notifier.Subscribe(ctx, "orders", func(e ports.ChangeEvent) {
		select {
		case events <- e:
		default:
		}
	})
	suite.Require().NoError(err)
	defer sub.Unsubscribe()

	suite.insertOrder()

	select {
	case event := <-events:
		suite.Equal("orders", event.Table)
		suite.Equal("INSERT", event.Op)
	case <-time.After(10 * time.Second):
		suite.Fail("no notification received")
	}
}

func (suite *ChangeNotifierIntegrationTestSuite) TestUnsubscribe_StopsDelivery() {
	ctx := context.Background()

	events := make(chan ports.ChangeEvent, 4)
	sub, err := suite.notifier.Subscribe(ctx, "orders", func(e ports.ChangeEvent) {
		events <- e
	})
	suite.Require().NoError(err)

	sub.Unsubscribe()
	sub.Unsubscribe() // second call must be a no-op

	suite.insertOrder()

	select {
	case <-events:
		suite.Fail("event delivered after unsubscribe")
	case <-time.After(2 * time.Second):
	}
}

func (suite *ChangeNotifierIntegrationTestSuite) insertOrder() {
	suite.Require().NoError(suite.db.Exec(`
		INSERT INTO orders (id, producer_id, description, details, status, created_at)
		VALUES (gen_random_uuid(), gen_random_uuid(), 'test', '{"quantity":1}', 'Pendiente', now())
	`).Error)
}

func TestChangeNotifierIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ChangeNotifierIntegrationTestSuite))
}
