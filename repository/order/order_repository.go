package order

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

type OrderRepository interface {
	InsertBatch(ctx context.Context, rows []model.OrderEntity) error
	ListByUser(ctx context.Context, userID string) ([]model.OrderEntity, error)
	GetByOrderID(ctx context.Context, orderID string) (*model.OrderEntity, error)
	ListAll(ctx context.Context) ([]model.OrderEntity, error)
	UpdateStatus(ctx context.Context, orderID, status string) (int64, error)
}

func NewOrderRepository(conn *sqlx.DB) OrderRepository {
	return &SQL{conn: conn}
}

const (
	insertOrderQuery = `INSERT INTO orders
(order_id, order_time, user_name, user_id, pid, item_name, spec, qty, total_amount, order_status)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	selectOrderBase = `SELECT id, order_id, order_time, user_name, user_id, pid, item_name, spec, qty, total_amount, order_status FROM orders`

	listByUserQuery = selectOrderBase + ` WHERE user_id = ? ORDER BY id DESC`

	// Batch ids resolve through the exact id or, for multi-line batches, the
	// first "-N" sub-line sharing the batch prefix.
	getByOrderIDQuery = selectOrderBase + ` WHERE order_id = ? OR order_id LIKE CONCAT(?, '-%') ORDER BY id LIMIT 1`

	listAllQuery = selectOrderBase + ` ORDER BY id DESC`

	// Matches the exact id and, for multi-line batches, every "-N" sub-line
	// sharing the batch prefix.
	updateStatusQuery = `UPDATE orders SET order_status = ? WHERE order_id = ? OR order_id LIKE CONCAT(?, '-%')`
)

func (s *SQL) InsertBatch(ctx context.Context, rows []model.OrderEntity) error {
	for _, row := range rows {
		_, err := s.conn.ExecContext(ctx, insertOrderQuery,
			row.OrderID, row.OrderTime, row.UserName, row.UserID, row.PID,
			row.ItemName, row.Spec, row.Qty, row.TotalAmount, row.OrderStatus)
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *SQL) ListByUser(ctx context.Context, userID string) ([]model.OrderEntity, error) {
	return s.list(ctx, listByUserQuery, userID)
}

func (s *SQL) GetByOrderID(ctx context.Context, orderID string) (*model.OrderEntity, error) {
	var o model.OrderEntity
	if err := s.conn.QueryRowxContext(ctx, getByOrderIDQuery, orderID, orderID).StructScan(&o); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

func (s *SQL) ListAll(ctx context.Context) ([]model.OrderEntity, error) {
	return s.list(ctx, listAllQuery)
}

func (s *SQL) UpdateStatus(ctx context.Context, orderID, status string) (int64, error) {
	res, err := s.conn.ExecContext(ctx, updateStatusQuery, status, orderID, orderID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *SQL) list(ctx context.Context, query string, args ...any) ([]model.OrderEntity, error) {
	rows, err := s.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.OrderEntity, 0)
	for rows.Next() {
		var o model.OrderEntity
		if err := rows.StructScan(&o); err != nil {
			return nil, err
		}
		items = append(items, o)
	}
	return items, rows.Err()
}
