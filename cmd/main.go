package main

import (
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	catalogapp "github.com/yuhsuan-lin/daigou-bot/application/catalog"
	identityapp "github.com/yuhsuan-lin/daigou-bot/application/identity"
	ledgerapp "github.com/yuhsuan-lin/daigou-bot/application/ledger"
	settingsapp "github.com/yuhsuan-lin/daigou-bot/application/settings"
	webhookapp "github.com/yuhsuan-lin/daigou-bot/application/webhook"
	"github.com/yuhsuan-lin/daigou-bot/cmd/config"
	redisclient "github.com/yuhsuan-lin/daigou-bot/cmd/redis"
	_ "github.com/yuhsuan-lin/daigou-bot/docs"
	auditlogRepo "github.com/yuhsuan-lin/daigou-bot/repository/auditlog"
	lockRepo "github.com/yuhsuan-lin/daigou-bot/repository/lock"
	orderRepo "github.com/yuhsuan-lin/daigou-bot/repository/order"
	productRepo "github.com/yuhsuan-lin/daigou-bot/repository/product"
	redisRepo "github.com/yuhsuan-lin/daigou-bot/repository/redis"
	setupRepo "github.com/yuhsuan-lin/daigou-bot/repository/setup"
	sysconfigRepo "github.com/yuhsuan-lin/daigou-bot/repository/sysconfig"
	"github.com/yuhsuan-lin/daigou-bot/thirdparty/cloudinary"
	"github.com/yuhsuan-lin/daigou-bot/thirdparty/line"
	"github.com/yuhsuan-lin/daigou-bot/thirdparty/rabbitmq"
	"github.com/yuhsuan-lin/daigou-bot/transport"
	"github.com/yuhsuan-lin/daigou-bot/utils/logger"
	"go.uber.org/zap"
)

// @title Group-Buy Bot API
// @version 1.0
// @description Group-buy storefront API and chat webhook
// @host localhost:8080
// @BasePath /
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	// Redis backs the settings cache, the admin session, and the store lock.
	// The process still runs without it (in-process lock, uncached settings).
	if err := redisclient.New(cfg); err != nil {
		logger.Warn("redis unavailable, running degraded", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Initialize repositories
	ProductRepo := productRepo.NewProductRepository(db)
	OrderRepo := orderRepo.NewOrderRepository(db)
	SysconfigRepo := sysconfigRepo.NewConfigRepository(db)
	AuditlogRepo := auditlogRepo.NewLogRepository(db)
	SetupRepo := setupRepo.NewSetupRepository(db)
	RedisRepo := redisRepo.NewRepository()
	Locker := lockRepo.NewLocker(cfg.Store.LockWait)

	// Third-party clients
	Settings := settingsapp.NewProvider(cfg, SysconfigRepo, RedisRepo)
	LineClient := line.NewClient(Settings)
	Uploader := cloudinary.NewClient(Settings)

	var publisher *rabbitmq.Publisher
	if cfg.RabbitMQ.Enabled {
		publisher, err = rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
		if err != nil {
			logger.Fatal("err connect rabbitmq", zap.Error(err))
		}
		defer publisher.Close()
	}

	// Initialize application layers
	CatalogApp := catalogapp.NewCatalogApp(ProductRepo, Locker)
	LedgerApp := ledgerapp.NewLedgerApp(OrderRepo, ProductRepo, Locker, publisher, LineClient, Settings)
	IdentityApp := identityapp.NewIdentityApp(Settings, LineClient)
	WebhookApp := webhookapp.NewWebhookApp(cfg, CatalogApp, LedgerApp, RedisRepo, LineClient, Uploader, Settings)

	httpTransport := transport.NewTransport(cfg, &transport.RestHandler{
		CatalogApp:  CatalogApp,
		LedgerApp:   LedgerApp,
		WebhookApp:  WebhookApp,
		IdentityApp: IdentityApp,
		LogRepo:     AuditlogRepo,
		SetupRepo:   SetupRepo,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
