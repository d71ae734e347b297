package cmd

import (
	"context"
	"fmt"

	httpadapter "orders/internal/adapters/in/http"
	"orders/internal/adapters/in/http/openapi"
	"orders/internal/adapters/out/memory"
	"orders/internal/adapters/out/metrics"
	"orders/internal/adapters/out/postgres"
	"orders/internal/adapters/out/postgres/orderrepo"
	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/services"
	"orders/internal/core/ports"
	"orders/internal/jobs"
	"orders/internal/version"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

// CompositionRoot owns the process-wide singletons and builds handlers from them.
type CompositionRoot struct {
	config  Config
	logger  ports.Logger
	metrics *metrics.Metrics

	store        *postgres.Store
	repository   ports.OrderRepository
	pinger       ports.StoragePinger
	orderFactory services.OrderFactory
	storageProbe *jobs.StorageProbeJob
}

// NewCompositionRoot opens the configured order store. registerer may be nil
// to use the default prometheus registry.
func NewCompositionRoot(
	ctx context.Context,
	config Config,
	logger ports.Logger,
	registerer prometheus.Registerer,
) (*CompositionRoot, error) {
	root := &CompositionRoot{
		config:  config,
		logger:  logger,
		metrics: metrics.New(registerer),
	}

	orderFactory, err := services.NewOrderFactory(kernel.NewMonotonicIDGenerator())
	if err != nil {
		return nil, fmt.Errorf("create order factory: %w", err)
	}
	root.orderFactory = orderFactory

	switch config.StorageDriver {
	case StorageMemory:
		repo := memory.NewOrderRepository(logger)
		root.repository, root.pinger = repo, repo
	case StoragePostgres:
		store, err := postgres.Open(ctx, config.DSN(), postgres.PoolOptions{})
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		root.store = store
		root.repository = orderrepo.NewGormOrderRepository(store.DB(), logger)
		root.pinger = store
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStorageDriver, config.StorageDriver)
	}
	logger.Info("order store ready", "driver", config.StorageDriver)

	root.repository = metrics.InstrumentOrderRepository(root.repository, root.metrics)
	root.storageProbe = jobs.NewStorageProbeJob(root.pinger, root.metrics, config.StorageProbeSchedule, logger)

	return root, nil
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderFactory, c.repository, c.logger)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.repository, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.storageProbe)
}

// CreateRouter wires the HTTP server, its middleware and the API document.
func (c *CompositionRoot) CreateRouter(ctx context.Context) (*echo.Echo, error) {
	appVersion := c.Version()

	validator, err := openapi.NewValidator(ctx, appVersion)
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	openapi.Register(appVersion)

	server := httpadapter.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateListOrdersQueryHandler(),
		c.storageProbe,
		httpadapter.BuildInfo{Version: appVersion, Environment: c.config.Environment},
		c.logger,
	)

	return httpadapter.NewRouter(server, c.logger, httpadapter.RouterOptions{
		AllowOrigins:    httpadapter.ParseOrigins(c.config.CORSAllowOrigins),
		Metrics:         c.metrics,
		Validator:       validator.Middleware(),
		OpenAPIDocument: openapi.Document(appVersion),
		Swagger:         true,
	}), nil
}

// Version prefers APP_VERSION over the link-time version.
func (c *CompositionRoot) Version() string {
	if c.config.Version != "" {
		return c.config.Version
	}
	return version.Version
}

// Close releases the database pool, if any.
func (c *CompositionRoot) Close() error {
	if c.store == nil {
		return nil
	}
	return c.store.Close()
}
