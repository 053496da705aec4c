package model

import "time"

// ConfigEntry represents one key/value row of the system_config table
type ConfigEntry struct {
	Key   string `db:"config_key" json:"key"`
	Value string `db:"config_value" json:"value"`
}

// AuditLog represents one row of the logs table. Every inbound write request
// body is recorded before processing.
type AuditLog struct {
	ID        int64     `db:"id" json:"id"`
	RequestID string    `db:"request_id" json:"request_id"`
	Method    string    `db:"method" json:"method"`
	Body      string    `db:"body" json:"body"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
