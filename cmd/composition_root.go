package cmd

import (
	"context"
	"log/slog"

	httpin "purchasing/internal/adapters/in/http"
	"purchasing/internal/adapters/out/notify"
	"purchasing/internal/adapters/out/postgres"
	"purchasing/internal/adapters/out/postgres/catalogrepo"
	"purchasing/internal/adapters/out/postgres/userrepo"
	"purchasing/internal/adapters/out/rabbitmq"
	"purchasing/internal/core/application/usecases/commands"
	"purchasing/internal/core/application/usecases/queries"
	"purchasing/internal/core/ports"
	"purchasing/internal/jobs"
	"purchasing/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
	metrics    *metrics.Metrics
	notifier   ports.Notifier
	broker     *rabbitmq.Notifier
}

// NewCompositionRoot wires the shared dependencies. When RABBITMQ_URL is set
// notifications are also published to the broker; a broker that cannot be
// reached is logged and skipped.
func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) *CompositionRoot {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	root := &CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
		metrics:    metrics.New(reg),
	}

	sinks := notify.Fanout{notify.ContextNotifier{}, notify.NewLogNotifier(logger)}
	if cfg.RabbitMQURL != "" {
		broker, err := rabbitmq.Dial(cfg.RabbitMQURL, cfg.RabbitMQExchange, logger)
		if err != nil {
			logger.Warn("rabbitmq unavailable, notifications stay local", "error", err)
		} else {
			root.broker = broker
			sinks = append(sinks, broker)
		}
	}
	root.notifier = sinks
	return root
}

func (c *CompositionRoot) workflowDeps() commands.WorkflowDeps {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.WorkflowDeps{
		UoWFactory: f,
		Notifier:   c.notifier,
		Observer:   c.metrics,
		Logger:     c.logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.workflowDeps())
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.workflowDeps())
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.workflowDeps())
}

func (c *CompositionRoot) CreateCatalogEntryCommandHandler() commands.CatalogEntryCommandHandler {
	var f commands.CatalogUoWFactory = FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCatalogEntryCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDashboardQueryHandler() queries.GetDashboardQueryHandler {
	return queries.NewGetDashboardQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCatalogEntriesQueryHandler() queries.CatalogEntriesQueryHandler {
	return queries.NewCatalogEntriesQueryHandler(catalogrepo.NewGormCatalogRepository(c.gormDB))
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	job := jobs.NewOverdueOrdersJob(queries.NewGetOverdueOrdersQueryHandler(c.gormDB), c.metrics, c.logger)
	return jobs.NewJobManager(job, c.cfg.OverdueCron, c.logger)
}

// CreateRouter builds the HTTP API with every handler wired in.
func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	auth, err := httpin.NewAuthenticator(userrepo.NewGormUserRepository(c.gormDB), c.cfg.JWTSecret, c.cfg.TokenTTL)
	if err != nil {
		return nil, err
	}

	server := httpin.NewServer(httpin.Handlers{
		CreateOrder:  c.CreateCreateOrderCommandHandler(),
		UpdateOrder:  c.CreateUpdateOrderCommandHandler(),
		DeleteOrder:  c.CreateDeleteOrderCommandHandler(),
		CatalogWrite: c.CreateCatalogEntryCommandHandler(),
		GetOrder:     c.CreateGetOrderQueryHandler(),
		ListOrders:   c.CreateListOrdersQueryHandler(),
		GetDashboard: c.CreateGetDashboardQueryHandler(),
		CatalogRead:  c.CreateCatalogEntriesQueryHandler(),
	}, auth, c.logger)

	return httpin.NewRouter(httpin.RouterConfig{
		Server:  server,
		Auth:    auth,
		Metrics: c.metrics,
		Logger:  c.logger,
		Health:  c.ping,
	})
}

func (c *CompositionRoot) ping(ctx context.Context) error {
	sqlDB, err := c.gormDB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the broker connection, if any.
func (c *CompositionRoot) Close() error {
	if c.broker == nil {
		return nil
	}
	return c.broker.Close()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}
