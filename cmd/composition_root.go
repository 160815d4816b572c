package cmd

import (
	"fmt"
	"log/slog"

	"ordertrack/internal/adapters/out/identity"
	"ordertrack/internal/adapters/out/notify"
	"ordertrack/internal/adapters/out/postgres"
	"ordertrack/internal/core/application/access"
	"ordertrack/internal/core/application/usecases/commands"
	"ordertrack/internal/core/application/usecases/queries"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/core/ports"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into application handlers. Handlers are
// cheap to build, so each Create method returns a fresh one; shared
// state (db, policy, identity client, notifier) is built once here.
type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	identity   *identity.Provider
	policy     *access.Policy
	notifier   *notify.PqChangeNotifier
	logger     *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	policy, err := access.NewPolicy()
	if err != nil {
		return nil, fmt.Errorf("build access policy: %w", err)
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	return &CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		identity: identity.NewProvider(
			configs.IdentityBaseURL, configs.IdentityServiceKey, configs.JWTSecret, logger),
		policy:   policy,
		notifier: notify.NewPqChangeNotifier(dsn, logger),
		logger:   logger,
	}, nil
}

func (c *CompositionRoot) Notifier() *notify.PqChangeNotifier {
	return c.notifier
}

func (c *CompositionRoot) Policy() *access.Policy {
	return c.policy
}

func (c *CompositionRoot) CreateResolver() *access.Resolver {
	return access.NewResolver(c.identity, c.profileReader(), c.logger)
}

func (c *CompositionRoot) CreateRegisterProducerCommandHandler() commands.RegisterProducerCommandHandler {
	return commands.NewRegisterProducerCommandHandler(c.identity, c.profileUoWFactory())
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory(), c.policy, c.transitionPolicy())
}

func (c *CompositionRoot) CreateCreateProducerCommandHandler() commands.CreateProducerCommandHandler {
	return commands.NewCreateProducerCommandHandler(c.identity, c.profileUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateDeleteProducerCommandHandler() commands.DeleteProducerCommandHandler {
	return commands.NewDeleteProducerCommandHandler(c.identity, c.profileUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateBootstrapAdminCommandHandler() commands.BootstrapAdminCommandHandler {
	return commands.NewBootstrapAdminCommandHandler(c.identity, c.profileUoWFactory(), c.configs.AdminSecretKey)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListProducersQueryHandler() queries.ListProducersQueryHandler {
	return queries.NewListProducersQueryHandler(c.gormDB, c.policy)
}

func (c *CompositionRoot) CreateGetOrderStatsQueryHandler() queries.GetOrderStatsQueryHandler {
	return queries.NewGetOrderStatsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) transitionPolicy() order.TransitionPolicy {
	if c.configs.StrictTransitions {
		return order.ForwardOnly
	}
	return order.Permissive
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) profileUoWFactory() commands.ProfileUoWFactory {
	return FuncProfileUoWFactory(func() commands.ProfileUoW {
		return c.uowFactory.Create()
	})
}

// profileReader gives the resolver non-transactional profile reads.
func (c *CompositionRoot) profileReader() ports.ProfileRepository {
	uow := c.uowFactory.Create()
	return uow.ProfileRepository()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncProfileUoWFactory func() commands.ProfileUoW

func (f FuncProfileUoWFactory) Create() commands.ProfileUoW {
	return f()
}
