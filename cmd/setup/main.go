package main

import (
	"context"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/yuhsuan-lin/daigou-bot/cmd/config"
	setupRepo "github.com/yuhsuan-lin/daigou-bot/repository/setup"
	"github.com/yuhsuan-lin/daigou-bot/utils/logger"
	"go.uber.org/zap"
)

// One-time provisioning: creates the store tables and seeds placeholder
// configuration rows. Safe to re-run; existing rows are left untouched.
func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := setupRepo.NewSetupRepository(db).EnsureSchema(ctx); err != nil {
		logger.Fatal("provisioning failed", zap.Error(err))
	}

	logger.Info("provisioning complete")
}
