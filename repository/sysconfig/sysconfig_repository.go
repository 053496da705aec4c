package sysconfig

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/yuhsuan-lin/daigou-bot/model"
)

type SQL struct {
	conn *sqlx.DB
}

// ConfigRepository reads the admin-provisioned key/value settings table.
// There is no write path at runtime.
type ConfigRepository interface {
	GetValue(ctx context.Context, key string) (string, bool, error)
	List(ctx context.Context) ([]model.ConfigEntry, error)
}

func NewConfigRepository(conn *sqlx.DB) ConfigRepository {
	return &SQL{conn: conn}
}

const (
	getValueQuery = `SELECT config_value FROM system_config WHERE config_key = ?`
	listQuery     = `SELECT config_key, config_value FROM system_config ORDER BY config_key`
)

func (s *SQL) GetValue(ctx context.Context, key string) (string, bool, error) {
	var value string
	if err := s.conn.QueryRowxContext(ctx, getValueQuery, key).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, err
	}
	return value, true, nil
}

func (s *SQL) List(ctx context.Context) ([]model.ConfigEntry, error) {
	rows, err := s.conn.QueryxContext(ctx, listQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]model.ConfigEntry, 0)
	for rows.Next() {
		var e model.ConfigEntry
		if err := rows.StructScan(&e); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
