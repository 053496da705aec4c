package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	settingsapp "github.com/yuhsuan-lin/daigou-bot/application/settings"
	"github.com/yuhsuan-lin/daigou-bot/cmd/config"
	redisclient "github.com/yuhsuan-lin/daigou-bot/cmd/redis"
	"github.com/yuhsuan-lin/daigou-bot/constant"
	redisRepo "github.com/yuhsuan-lin/daigou-bot/repository/redis"
	sysconfigRepo "github.com/yuhsuan-lin/daigou-bot/repository/sysconfig"
	"github.com/yuhsuan-lin/daigou-bot/thirdparty/line"
	"github.com/yuhsuan-lin/daigou-bot/thirdparty/rabbitmq"
	"github.com/yuhsuan-lin/daigou-bot/utils/logger"
	"go.uber.org/zap"
)

// Notification worker: consumes order events from the queue and pushes the
// admin alert through the chat platform.
func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	if !cfg.RabbitMQ.Enabled {
		logger.Fatal("rabbitmq disabled, notifier has nothing to consume")
	}

	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}
	defer db.Close()

	if err := redisclient.New(cfg); err != nil {
		logger.Warn("redis unavailable, running degraded", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	settings := settingsapp.NewProvider(cfg, sysconfigRepo.NewConfigRepository(db), redisRepo.NewRepository())
	lineClient := line.NewClient(settings)

	consumer, err := rabbitmq.NewConsumer(
		cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password,
		lineClient, settings, constant.ConfigKeyAdminID,
	)
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer consumer.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := consumer.Start(ctx); err != nil {
		logger.Fatal("err start consumer", zap.Error(err))
	}
	logger.Info("notifier running")

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	logger.Info("notifier shutting down")
}
