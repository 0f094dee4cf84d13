package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	httpin "commerce/internal/adapters/in/http"
	"commerce/internal/adapters/out/imagestore"
	"commerce/internal/adapters/out/postgres"
	"commerce/internal/core/application/usecases/commands"
	"commerce/internal/core/application/usecases/queries"
	"commerce/internal/core/ports"
	"commerce/internal/jobs"
	"commerce/internal/pkg/metrics"

	"cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	"github.com/go-redis/redis/v8"
	"google.golang.org/api/option"
	"gorm.io/gorm"
)

// CompositionRoot builds every handler once from the shared infrastructure.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory ports.UnitOfWorkFactory
	images     ports.ImageStore
	display    *time.Location
	metrics    *metrics.Metrics
	logger     *slog.Logger
	schedule   string

	allowOrigins []string
}

// NewCompositionRoot wires the adapters. redisClient may be nil, in which
// case image URLs are not cached.
func NewCompositionRoot(
	ctx context.Context,
	config Config,
	gormDB *gorm.DB,
	redisClient *redis.Client,
	m *metrics.Metrics,
	logger *slog.Logger,
) (*CompositionRoot, error) {
	display, err := config.DisplayLocation()
	if err != nil {
		return nil, err
	}

	images, err := newImageStore(ctx, config, redisClient, logger)
	if err != nil {
		return nil, err
	}

	return &CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		images:     images,
		display:    display,
		metrics:    m,
		logger:     logger,
		schedule:   config.DriverReconciliationSchedule,

		allowOrigins: config.CORSAllowOrigins,
	}, nil
}

func newImageStore(
	ctx context.Context,
	config Config,
	redisClient *redis.Client,
	logger *slog.Logger,
) (ports.ImageStore, error) {
	if config.FirebaseStorageBucket == "" {
		logger.Warn("FIREBASE_STORAGE_BUCKET is not set, product images are disabled")
		return imagestore.NoopStore{}, nil
	}

	bucket, err := firebaseBucket(ctx, config)
	if err != nil {
		return nil, err
	}

	origin, err := imagestore.NewFirebaseStore(bucket, config.FirebaseStorageBaseURL, config.ImageStoreTimeout)
	if err != nil {
		return nil, err
	}

	if redisClient == nil {
		return origin, nil
	}
	return imagestore.NewCachedStore(origin, redisClient, config.ImageCacheTTL, logger), nil
}

// firebaseBucket opens the configured bucket with the Firebase Admin SDK.
// Without FIREBASE_CREDENTIALS_FILE the application default credentials are
// used.
func firebaseBucket(ctx context.Context, config Config) (*storage.BucketHandle, error) {
	var opts []option.ClientOption
	if config.FirebaseCredentials != "" {
		opts = append(opts, option.WithCredentialsFile(config.FirebaseCredentials))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{StorageBucket: config.FirebaseStorageBucket}, opts...)
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}
	client, err := app.Storage(ctx)
	if err != nil {
		return nil, fmt.Errorf("init firebase storage: %w", err)
	}

	return client.DefaultBucket()
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() *commands.CreateOrderCommandHandler {
	h := commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() *commands.UpdateOrderCommandHandler {
	h := commands.NewUpdateOrderCommandHandler(c.orderUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() *commands.DeleteOrderCommandHandler {
	h := commands.NewDeleteOrderCommandHandler(c.orderUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() *commands.CreateProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	h := commands.NewCreateProductCommandHandler(f)
	return &h
}

func (c *CompositionRoot) CreateUpdateProductCommandHandler() *commands.UpdateProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	h := commands.NewUpdateProductCommandHandler(f)
	return &h
}

func (c *CompositionRoot) CreateCreateUserCommandHandler() *commands.CreateUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	h := commands.NewCreateUserCommandHandler(f)
	return &h
}

func (c *CompositionRoot) CreateReleaseIdleDriversCommandHandler() commands.ReleaseIdleDriversCommandHandler {
	var f commands.DriverUoWFactory = FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReleaseIdleDriversCommandHandler(f)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB, c.images, c.display)
}

// HTTPHandlers collects the use cases served by the HTTP adapter.
func (c *CompositionRoot) HTTPHandlers() httpin.Handlers {
	return httpin.Handlers{
		CreateOrder:   c.CreateCreateOrderCommandHandler(),
		UpdateOrder:   c.CreateUpdateOrderCommandHandler(),
		DeleteOrder:   c.CreateDeleteOrderCommandHandler(),
		CreateProduct: c.CreateCreateProductCommandHandler(),
		UpdateProduct: c.CreateUpdateProductCommandHandler(),
		CreateUser:    c.CreateCreateUserCommandHandler(),

		ListOrders:    c.CreateListOrdersQueryHandler(),
		GetOrder:      c.CreateGetOrderQueryHandler(),
		ListProducts:  queries.NewListProductsQueryHandler(c.gormDB),
		GetProduct:    queries.NewGetProductQueryHandler(c.gormDB, c.images),
		ListCustomers: queries.NewListCustomersQueryHandler(c.gormDB),
		GetCustomer:   queries.NewGetCustomerQueryHandler(c.gormDB),
		ListUsers:     queries.NewListUsersQueryHandler(c.gormDB),
		GetUser:       queries.NewGetUserQueryHandler(c.gormDB),
		ListDrivers:   queries.NewListDriversQueryHandler(c.gormDB),
		GetDriver:     queries.NewGetDriverQueryHandler(c.gormDB),
	}
}

// NewServer builds the HTTP adapter.
func (c *CompositionRoot) NewServer() *httpin.Server {
	return httpin.NewServer(c.HTTPHandlers(), c.metrics, c.logger, httpin.WithAllowOrigins(c.allowOrigins...))
}

// NewJobManager builds the background jobs.
func (c *CompositionRoot) NewJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateReleaseIdleDriversCommandHandler(), c.schedule, c.metrics, c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}
