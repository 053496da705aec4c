package auditlog

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/yuhsuan-lin/daigou-bot/model"
)

type SQL struct {
	conn *sqlx.DB
}

// LogRepository appends raw request bodies to the logs table for forensic replay.
type LogRepository interface {
	Insert(ctx context.Context, entry *model.AuditLog) error
}

func NewLogRepository(conn *sqlx.DB) LogRepository {
	return &SQL{conn: conn}
}

const insertLogQuery = `INSERT INTO logs (request_id, method, body, created_at) VALUES (?, ?, ?, NOW())`

func (s *SQL) Insert(ctx context.Context, entry *model.AuditLog) error {
	_, err := s.conn.ExecContext(ctx, insertLogQuery, entry.RequestID, entry.Method, entry.Body)
	return err
}
