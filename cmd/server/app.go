package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/storefront-api/internal/config"
	"github.com/phrazzld/storefront-api/internal/events"
	"github.com/phrazzld/storefront-api/internal/fixtures"
	"github.com/phrazzld/storefront-api/internal/platform/memory"
	"github.com/phrazzld/storefront-api/internal/platform/metrics"
	"github.com/phrazzld/storefront-api/internal/service"
	"github.com/phrazzld/storefront-api/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config  *config.Config
	logger  *slog.Logger
	metrics *metrics.Metrics

	// Stores (using interfaces for proper abstraction)
	carStore     store.CarStore
	orderStore   store.OrderStore
	productStore store.ProductStore
	userStore    store.UserStore

	// Service interfaces
	carService     service.CarService
	orderService   service.OrderService
	productService service.ProductService
	userService    service.UserService

	// Event system
	eventEmitter *events.InMemoryEventEmitter
}

// newApplication creates a new application instance with all dependencies
// initialized: seeded stores, the change-event emitter and its handlers, and
// the resource services.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	if logger == nil {
		logger = slog.Default()
	}
	app := &application{
		config:  cfg,
		logger:  logger,
		metrics: metrics.New(),
	}

	seed, err := fixtures.Load(cfg.Store.SeedFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load seed records: %w", err)
	}

	if err := app.setupStores(seed); err != nil {
		return nil, err
	}

	app.eventEmitter = events.NewInMemoryEventEmitter(logger)
	app.eventEmitter.RegisterHandler(events.NewAuditHandler(logger))
	app.eventEmitter.RegisterHandler(app.metrics.RecordCountHandler())

	app.carService, err = service.NewCarService(app.carStore, app.eventEmitter, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create car service: %w", err)
	}
	app.orderService, err = service.NewOrderService(app.orderStore, app.eventEmitter, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create order service: %w", err)
	}
	app.productService, err = service.NewProductService(app.productStore, app.eventEmitter, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create product service: %w", err)
	}
	app.userService, err = service.NewUserService(app.userStore, app.eventEmitter, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %w", err)
	}

	logger.Info("Application initialized",
		"cars", app.carStore.Len(),
		"orders", app.orderStore.Len(),
		"products", app.productStore.Len(),
		"users", app.userStore.Len())
	return app, nil
}

// setupStores builds one seeded collection per resource, each with its own
// id generator.
func (app *application) setupStores(seed fixtures.Set) error {
	var err error
	if app.carStore, err = newStore(app, service.ResourceCars, seed.Cars); err != nil {
		return err
	}
	if app.orderStore, err = newStore(app, service.ResourceOrders, seed.Orders); err != nil {
		return err
	}
	if app.productStore, err = newStore(app, service.ResourceProducts, seed.Products); err != nil {
		return err
	}
	if app.userStore, err = newStore(app, service.ResourceUsers, seed.Users); err != nil {
		return err
	}
	return nil
}

func newStore[T any, P store.Record[T]](app *application, resource string, seed []T) (*memory.Collection[T, P], error) {
	ids, err := memory.NewIDGenerator(app.config.Store.IDStrategy)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s id generator: %w", resource, err)
	}
	c, err := memory.NewCollection[T, P](resource, ids, seed, app.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to seed %s store: %w", resource, err)
	}
	app.metrics.SetRecordCount(c.Name(), c.Len())
	return c, nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	app.logger.Info("Application shutdown completed",
		"cars", app.carStore.Len(),
		"orders", app.orderStore.Len(),
		"products", app.productStore.Len(),
		"users", app.userStore.Len())
}
