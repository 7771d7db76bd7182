package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/odyssey-erp/billdesk/internal/analytics"
	analytichttp "github.com/odyssey-erp/billdesk/internal/analytics/http"
	"github.com/odyssey-erp/billdesk/internal/customers"
	"github.com/odyssey-erp/billdesk/internal/expenses"
	"github.com/odyssey-erp/billdesk/internal/invoices"
	"github.com/odyssey-erp/billdesk/internal/items"
	jobmetrics "github.com/odyssey-erp/billdesk/internal/jobs"
	"github.com/odyssey-erp/billdesk/internal/observability"
	"github.com/odyssey-erp/billdesk/internal/payments"
	"github.com/odyssey-erp/billdesk/internal/platform/cache"
	"github.com/odyssey-erp/billdesk/internal/platform/crud"
	"github.com/odyssey-erp/billdesk/internal/platform/store"
	"github.com/odyssey-erp/billdesk/internal/purchaseorders"
	"github.com/odyssey-erp/billdesk/internal/seed"
	"github.com/odyssey-erp/billdesk/internal/shared"
	"github.com/odyssey-erp/billdesk/jobs"
)

// csvExportsPerMinute caps report CSV downloads per client.
const csvExportsPerMinute = 10

// Services holds one service per entity kind plus the analytics service.
type Services struct {
	Customers      *customers.Service
	Items          *items.Service
	Invoices       *invoices.Service
	PurchaseOrders *purchaseorders.Service
	Expenses       *expenses.Service
	Payments       *payments.Service
	Analytics      *analytics.Service
}

// Container is the composition root for the serve process.
type Container struct {
	Config   *Config
	Logger   *slog.Logger
	Metrics  *observability.Metrics
	Services Services
	Cache    *analytics.Cache
	Router   http.Handler

	redis     *redis.Client
	queue     *jobs.Client
	inspector *asynq.Inspector
}

// NewContainer loads the fixtures, builds every collection and service and
// assembles the router. Redis is only dialled when the cache or jobs are on.
func NewContainer(ctx context.Context, cfg *Config, logger *slog.Logger) (*Container, error) {
	if cfg == nil {
		return nil, errors.New("app: config required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	c := &Container{Config: cfg, Logger: logger, Metrics: observability.NewMetrics()}

	fixtures := seed.Empty()
	if cfg.SeedFixtures {
		loaded, err := seed.Load()
		if err != nil {
			return nil, fmt.Errorf("load seed fixtures: %w", err)
		}
		fixtures = loaded
	}

	if cfg.UsesRedis() {
		client, err := cache.Connect(ctx, cfg.RedisAddr)
		if err != nil {
			return nil, err
		}
		c.redis = client
	}
	if cfg.CacheEnabled {
		c.Cache = analytics.NewCache(c.redis, cfg.CacheTTL)
	}

	base := crud.Options{Observer: c.Metrics}
	if cfg.LatencyEnabled {
		base.Latency = store.DefaultLatency().Scale(cfg.LatencyScale)
	}
	// Collections feeding the aggregates invalidate the cache on writes.
	derived := base
	if c.Cache != nil {
		derived.Hooks = []crud.MutationHook{c.Cache.InvalidateOnMutation(logger)}
	}

	svc := Services{
		Customers:      customers.NewService(customers.NewStore(fixtures.Customers), derived),
		Items:          items.NewService(items.NewStore(fixtures.Items), derived),
		Invoices:       invoices.NewService(invoices.NewStore(fixtures.Invoices), derived),
		PurchaseOrders: purchaseorders.NewService(purchaseorders.NewStore(fixtures.PurchaseOrders), base),
		Expenses:       expenses.NewService(expenses.NewStore(fixtures.Expenses), derived),
		Payments:       payments.NewService(payments.NewStore(fixtures.Payments), base),
	}
	svc.Analytics = analytics.NewService(analytics.Sources{
		Invoices:  svc.Invoices,
		Customers: svc.Customers,
		Items:     svc.Items,
		Expenses:  svc.Expenses,
	}, c.Cache)
	c.Services = svc

	if cfg.JobsEnabled {
		opts := c.redisClientOpt()
		c.queue = jobs.NewClient(opts)
		c.inspector = asynq.NewInspector(opts)
	}

	validator := shared.NewValidator()
	c.Router = NewRouter(RouterParams{
		Logger:                logger,
		Config:                cfg,
		Metrics:               c.Metrics,
		CustomersHandler:      customers.NewHandler(logger, svc.Customers, validator),
		ItemsHandler:          items.NewHandler(logger, svc.Items, validator),
		InvoicesHandler:       invoices.NewHandler(logger, svc.Invoices, svc.Customers, validator),
		PurchaseOrdersHandler: purchaseorders.NewHandler(logger, svc.PurchaseOrders, validator),
		ExpensesHandler:       expenses.NewHandler(logger, svc.Expenses, validator),
		PaymentsHandler:       payments.NewHandler(logger, svc.Payments, svc.Invoices, validator),
		AnalyticsHandler:      analytichttp.NewHandler(logger, svc.Analytics, csvExportsPerMinute),
		JobHandler:            jobs.NewHandler(c.inspector, logger),
	})

	logger.Info("container ready",
		slog.Bool("seeded", cfg.SeedFixtures),
		slog.Bool("cache", cfg.CacheEnabled),
		slog.Bool("jobs", cfg.JobsEnabled),
		slog.Bool("latency", cfg.LatencyEnabled),
	)
	return c, nil
}

// WatchCache logs cache versions bumped by any process until ctx is done.
func (c *Container) WatchCache(ctx context.Context) error {
	return c.Cache.ListenForInvalidation(ctx, func(version int64) {
		c.Logger.Debug("analytics cache invalidated", slog.Int64("version", version))
	})
}

// NewWorker builds the embedded job worker with its handlers and cron entries.
func (c *Container) NewWorker() (*jobs.Worker, error) {
	if !c.Config.JobsEnabled || c.queue == nil {
		return nil, errors.New("app: jobs are disabled")
	}
	metrics := jobmetrics.NewMetrics(c.Metrics.Registerer())
	warmup := jobs.NewDashboardWarmupJob(c.Services.Analytics, c.Logger, metrics)
	overdue := &jobs.OverdueScanJob{
		Invoices:  c.Services.Analytics,
		Customers: c.Services.Customers,
		Queue:     c.queue,
		From:      c.Config.MailFrom,
		Logger:    c.Logger,
		Metrics:   metrics,
	}
	mail := &jobs.MailJob{Logger: c.Logger, From: c.Config.MailFrom}

	warmupTask, err := jobs.NewDashboardWarmupTask()
	if err != nil {
		return nil, err
	}
	overdueTask, err := jobs.NewOverdueScanTask()
	if err != nil {
		return nil, err
	}
	return jobs.NewWorker(jobs.WorkerConfig{
		RedisOpts:   c.redisClientOpt(),
		Logger:      c.Logger,
		Concurrency: c.Config.JobsConcurrency,
		Handlers: []jobs.TaskHandler{
			{Type: jobs.TaskTypeSendEmail, Handler: mail.Handle},
			{Type: jobs.TaskDashboardWarmup, Handler: warmup.Handle},
			{Type: jobs.TaskOverdueScan, Handler: overdue.Handle},
		},
		Cron: []jobs.CronRegistration{
			{Spec: c.Config.DashboardWarmupCron, Task: warmupTask, Options: []asynq.Option{asynq.MaxRetry(1)}},
			{Spec: c.Config.OverdueScanCron, Task: overdueTask, Options: []asynq.Option{asynq.MaxRetry(3)}},
		},
	})
}

// Close releases the Redis backed resources.
func (c *Container) Close() error {
	var errs []error
	if c.inspector != nil {
		errs = append(errs, c.inspector.Close())
	}
	if c.queue != nil {
		errs = append(errs, c.queue.Close())
	}
	if c.redis != nil {
		errs = append(errs, c.redis.Close())
	}
	return errors.Join(errs...)
}

func (c *Container) redisClientOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{Addr: c.Config.RedisAddr}
}
