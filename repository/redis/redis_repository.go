package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"
	redisclient "github.com/yuhsuan-lin/daigou-bot/cmd/redis"
	"github.com/yuhsuan-lin/daigou-bot/model"
)

const (
	// cfg:{key} -> cached system_config value
	keySettingPrefix = "cfg:"
	// admin_state:{user_id} -> JSON listing-session state
	keyAdminStatePrefix = "admin_state:"
)

// Repository defines the short-TTL caches backing the settings provider and
// the admin listing session.
type Repository interface {
	GetSetting(ctx context.Context, key string) (string, bool, error)
	CacheSetting(ctx context.Context, key, value string, ttl time.Duration) error
	GetAdminState(ctx context.Context, userID string) (*model.AdminState, error)
	SetAdminState(ctx context.Context, userID string, state *model.AdminState, ttl time.Duration) error
	ClearAdminState(ctx context.Context, userID string) error
}

type redis struct {
}

// NewRepository returns a Redis Repository implementation
func NewRepository() Repository {
	return &redis{}
}

func (r *redis) GetSetting(ctx context.Context, key string) (string, bool, error) {
	client := redisclient.Get()
	if client == nil {
		return "", false, nil
	}
	val, err := client.Get(ctx, keySettingPrefix+key).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", false, nil
		}
		return "", false, err
	}
	return val, true, nil
}

func (r *redis) CacheSetting(ctx context.Context, key, value string, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Set(ctx, keySettingPrefix+key, value, ttl).Err()
}

func (r *redis) GetAdminState(ctx context.Context, userID string) (*model.AdminState, error) {
	client := redisclient.Get()
	if client == nil {
		return nil, nil
	}
	val, err := client.Get(ctx, keyAdminStatePrefix+userID).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var state model.AdminState
	if err := json.Unmarshal([]byte(val), &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (r *redis) SetAdminState(ctx context.Context, userID string, state *model.AdminState, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	raw, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return client.Set(ctx, keyAdminStatePrefix+userID, raw, ttl).Err()
}

func (r *redis) ClearAdminState(ctx context.Context, userID string) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Del(ctx, keyAdminStatePrefix+userID).Err()
}
