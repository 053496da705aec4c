package setup

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/yuhsuan-lin/daigou-bot/constant"
)

// SetupRepository provisions the four store tables and seeds the settings
// table with placeholder prompts, mirroring the one-time setup routine.
type SetupRepository interface {
	EnsureSchema(ctx context.Context) error
}

type SQL struct {
	conn *sqlx.DB
}

func NewSetupRepository(conn *sqlx.DB) SetupRepository {
	return &SQL{conn: conn}
}

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS products (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		pid VARCHAR(32) NOT NULL,
		name VARCHAR(255) NOT NULL,
		price BIGINT NOT NULL DEFAULT 0,
		image_url TEXT,
		status VARCHAR(16) NOT NULL DEFAULT 'ON_SALE',
		created_at DATETIME NOT NULL,
		UNIQUE KEY uq_products_pid (pid)
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		order_id VARCHAR(40) NOT NULL,
		order_time DATETIME NOT NULL,
		user_name VARCHAR(255) NOT NULL DEFAULT '',
		user_id VARCHAR(64) NOT NULL,
		pid VARCHAR(32) NOT NULL,
		item_name VARCHAR(255) NOT NULL,
		spec VARCHAR(255) NOT NULL DEFAULT '',
		qty INT NOT NULL,
		total_amount BIGINT NOT NULL,
		order_status VARCHAR(32) NOT NULL DEFAULT 'unpaid',
		KEY idx_orders_order_id (order_id),
		KEY idx_orders_user_id (user_id)
	)`,
	`CREATE TABLE IF NOT EXISTS system_config (
		config_key VARCHAR(64) NOT NULL PRIMARY KEY,
		config_value TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS logs (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		request_id VARCHAR(36) NOT NULL,
		method VARCHAR(8) NOT NULL,
		body MEDIUMTEXT,
		created_at DATETIME NOT NULL
	)`,
}

// Placeholder prompts for the admin to replace; INSERT IGNORE keeps
// provisioning idempotent without clobbering filled-in values.
var configSeed = [][2]string{
	{constant.ConfigKeyLineToken, "請填入 Channel Access Token"},
	{constant.ConfigKeyAdminID, "請填入你的 User ID"},
	{constant.ConfigKeyCloudName, "請填入 Cloud Name"},
	{constant.ConfigKeyCloudPreset, "請填入 Upload Preset (Unsigned)"},
	{constant.ConfigKeyLiffID, "請填入 LIFF ID"},
	{constant.ConfigKeyLineChannelID, "請填入 Channel ID"},
}

const seedConfigQuery = `INSERT IGNORE INTO system_config (config_key, config_value) VALUES (?, ?)`

func (s *SQL) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := s.conn.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	for _, kv := range configSeed {
		if _, err := s.conn.ExecContext(ctx, seedConfigQuery, kv[0], kv[1]); err != nil {
			return err
		}
	}
	return nil
}
