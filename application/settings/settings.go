package settings

import (
	"context"

	"github.com/yuhsuan-lin/daigou-bot/cmd/config"
	redisrepo "github.com/yuhsuan-lin/daigou-bot/repository/redis"
	sysconfigrepo "github.com/yuhsuan-lin/daigou-bot/repository/sysconfig"
	"github.com/yuhsuan-lin/daigou-bot/utils/logger"
	"go.uber.org/zap"
)

// Provider resolves runtime settings from the system_config table through a
// short-TTL cache. Absent is a first-class state: a missing key disables the
// feature that needs it, it never raises.
type Provider interface {
	Get(ctx context.Context, key string) (string, bool)
}

type providerImpl struct {
	config     *config.Config
	configRepo sysconfigrepo.ConfigRepository
	redisRepo  redisrepo.Repository
}

func NewProvider(config *config.Config, configRepo sysconfigrepo.ConfigRepository, redisRepo redisrepo.Repository) Provider {
	return &providerImpl{
		config:     config,
		configRepo: configRepo,
		redisRepo:  redisRepo,
	}
}

func (s *providerImpl) Get(ctx context.Context, key string) (string, bool) {
	cached, hit, err := s.redisRepo.GetSetting(ctx, key)
	if err != nil {
		// Cache trouble degrades to a table read.
		logger.Warn("[Settings] cache read failed", zap.String("key", key), zap.String("error", err.Error()))
	}
	if hit {
		return cached, true
	}

	value, found, err := s.configRepo.GetValue(ctx, key)
	if err != nil {
		logger.Error("[Settings] config table read failed", zap.String("key", key), zap.String("error", err.Error()))
		return "", false
	}
	if !found {
		return "", false
	}

	if err := s.redisRepo.CacheSetting(ctx, key, value, s.config.Store.SettingsTTL); err != nil {
		logger.Warn("[Settings] cache write failed", zap.String("key", key), zap.String("error", err.Error()))
	}
	return value, true
}
