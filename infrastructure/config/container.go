package config

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"talent-stake/application/services"
	"talent-stake/application/usecases"
	"talent-stake/domain/interfaces"
	"talent-stake/infrastructure/blockchain"
	"talent-stake/infrastructure/logger"
	"talent-stake/infrastructure/metrics"
	"talent-stake/infrastructure/mirror"
	"talent-stake/infrastructure/notifier"
	"talent-stake/infrastructure/repository"
	"talent-stake/infrastructure/scheduler"
)

// Container represents the dependency injection container
type Container struct {
	Config *Config

	// Infrastructure
	Logger      interfaces.Logger
	DB          *gorm.DB
	Metrics     *metrics.Metrics
	RedisClient *redis.Client
	ChainReader interfaces.ChainTokenReader

	// Repositories
	TransactionManager interfaces.TransactionManager
	EventRepository    interfaces.EventRepository
	JobRepository      interfaces.JobRepository
	ReferralRepository interfaces.ReferralRepository
	ReadStore          interfaces.ReadStore

	// Services
	JobLocks            *services.JobLocks
	ClaimTokenGenerator interfaces.ClaimTokenGenerator
	EscrowEngine        interfaces.EscrowEngine
	LedgerQueries       interfaces.LedgerQueries
	DisputeService      interfaces.DisputeService
	FundingService      interfaces.FundingService
	Notifier            interfaces.Notifier
	MirrorProjector     interfaces.MirrorProjector
	ProjectionPublisher interfaces.ProjectionPublisher

	// Use Cases
	SyncMirrorUseCase      interfaces.SyncMirrorUseCase
	ReconcileMirrorUseCase interfaces.ReconcileMirrorUseCase

	// Scheduler
	MirrorScheduler *scheduler.MirrorScheduler
}

// NewContainer creates a new dependency injection container
func NewContainer(ctx context.Context, config *Config) (*Container, error) {
	container := &Container{
		Config: config,
	}

	// Initialize logger
	container.Logger = logger.NewLogger(logger.Options{
		Level:  config.LogLevel,
		Format: config.LogFormat,
	})
	container.Metrics = metrics.NewMetrics(nil)

	// Initialize database
	if err := container.initDatabase(ctx); err != nil {
		_ = container.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Optional collaborators
	container.initRedis(ctx)
	container.initChainReader(ctx)

	// Initialize mirror and use cases before the engine so commits can trigger a sync
	if err := container.initMirror(ctx); err != nil {
		_ = container.Close()
		return nil, fmt.Errorf("failed to initialize mirror: %w", err)
	}

	// Initialize services
	if err := container.initServices(); err != nil {
		_ = container.Close()
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return container, nil
}

// initDatabase opens and migrates the ledger database
func (c *Container) initDatabase(ctx context.Context) error {
	db, err := OpenDatabase(c.Config.Database)
	if err != nil {
		return err
	}
	c.DB = db

	if err := MigrateDatabase(ctx, db); err != nil {
		return err
	}

	c.TransactionManager = repository.NewTransactionManager(db)
	c.EventRepository = repository.NewEventRepository(db)
	c.JobRepository = repository.NewJobRepository(db)
	c.ReferralRepository = repository.NewReferralRepository(db)

	return nil
}

// initRedis connects the projection publisher when a Redis URL is configured
func (c *Container) initRedis(ctx context.Context) {
	if c.Config.Redis.URL == "" {
		return
	}

	rdb, err := notifier.NewRedisClient(ctx, c.Config.Redis.URL)
	if err != nil {
		// Notifications are optional, so we continue
		c.Logger.Warn("Failed to connect to Redis, projection notifications disabled", "error", err)
		return
	}
	c.RedisClient = rdb
	c.ProjectionPublisher = notifier.NewRedisPublisher(rdb, c.Config.Redis.Channel)
}

// initChainReader dials the chain when a token is configured
func (c *Container) initChainReader(ctx context.Context) {
	if !c.Config.ChainEnabled() {
		return
	}

	dialCtx := ctx
	if c.Config.Chain.Timeout > 0 {
		var cancel context.CancelFunc
		dialCtx, cancel = context.WithTimeout(ctx, c.Config.Chain.Timeout)
		defer cancel()
	}

	reader, err := blockchain.NewERC20Reader(dialCtx, c.Config.Chain.RPCAddr, common.HexToAddress(c.Config.Chain.TokenAddress))
	if err != nil {
		c.Logger.Warn("Failed to initialize chain reader", "error", err)
		return
	}
	c.ChainReader = reader
}

// initMirror initializes the projection pipeline
func (c *Container) initMirror(ctx context.Context) error {
	switch c.Config.Mirror.Store {
	case MirrorStoreMemory:
		c.ReadStore = mirror.NewMemoryStore()
	default:
		c.ReadStore = repository.NewProjectionStore(c.DB)
	}

	c.MirrorProjector = services.NewMirrorProjector(c.ReadStore)

	c.SyncMirrorUseCase = usecases.NewSyncMirrorUseCase(
		c.EventRepository,
		c.MirrorProjector,
		c.ProjectionPublisher,
		c.Metrics,
		c.Logger,
	)
	c.ReconcileMirrorUseCase = usecases.NewReconcileMirrorUseCase(
		c.JobRepository,
		c.ReferralRepository,
		c.ReadStore,
		c.Logger,
	)

	c.MirrorScheduler = scheduler.NewMirrorScheduler(
		c.SyncMirrorUseCase,
		c.ReconcileMirrorUseCase,
		scheduler.Options{
			SyncSchedule:      c.Config.Mirror.SyncSchedule,
			ReconcileSchedule: c.Config.Mirror.ReconcileSchedule,
			BatchSize:         c.Config.Mirror.BatchSize,
		},
		c.Logger,
	)

	if c.Config.Mirror.Store == MirrorStoreMemory {
		result, err := c.ReconcileMirrorUseCase.Execute(ctx, interfaces.ReconcileMirrorParams{})
		if err != nil {
			return fmt.Errorf("seed memory read store: %w", err)
		}
		c.Logger.Info("Memory read store seeded from ledger",
			"jobs", result.JobsChecked,
			"referrals", result.ReferralsChecked)
	}
	return nil
}

// initServices initializes domain services
func (c *Container) initServices() error {
	holder, err := c.Config.Escrow.Holder()
	if err != nil {
		return err
	}
	stake, err := c.Config.Escrow.Stake()
	if err != nil {
		return err
	}

	c.JobLocks = services.NewJobLocks()
	c.ClaimTokenGenerator = services.NewClaimTokenGenerator()

	c.EscrowEngine = services.NewEscrowEngine(
		c.TransactionManager,
		c.ClaimTokenGenerator,
		c.JobLocks,
		services.EngineConfig{
			EscrowHolder:           holder,
			StakeAmount:            stake,
			ReferrerSharePercent:   c.Config.Escrow.ReferrerSharePercent,
			OneReferralPerReferrer: c.Config.Escrow.OneReferralPerReferrer,
		},
		c.Logger,
		c.Metrics,
		c.MirrorScheduler,
	)
	c.LedgerQueries = services.NewLedgerQueries(c.TransactionManager, c.JobLocks, holder, c.Metrics)
	c.FundingService = services.NewFundingService(c.TransactionManager, holder, c.Logger)

	c.Notifier = notifier.NewSlackNotifier(
		c.Config.Slack.WebhookURL,
		c.Config.Slack.Channel,
		c.Config.Slack.MentionUsers,
		c.Logger,
		c.Metrics,
	)
	c.DisputeService = services.NewDisputeService(c.TransactionManager, c.Notifier, c.Logger)

	return nil
}

// Close closes all resources
func (c *Container) Close() error {
	// Stop scheduler
	if c.MirrorScheduler != nil {
		c.MirrorScheduler.Stop()
	}

	// Close chain reader
	if c.ChainReader != nil {
		if err := c.ChainReader.Close(); err != nil {
			c.Logger.Error("Failed to close chain reader", "error", err)
		}
	}

	// Close Redis
	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			c.Logger.Error("Failed to close redis client", "error", err)
		}
	}

	// Close database
	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err == nil {
			if err := sqlDB.Close(); err != nil {
				c.Logger.Error("Failed to close database", "error", err)
			}
		}
	}

	return nil
}
