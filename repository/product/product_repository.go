package product

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/yuhsuan-lin/daigou-bot/constant"
	"github.com/yuhsuan-lin/daigou-bot/model"
)

type SQL struct {
	conn *sqlx.DB
}

type ProductRepository interface {
	GetByPID(ctx context.Context, pid string) (*model.ProductEntity, error)
	ListVisible(ctx context.Context) ([]model.ProductEntity, error)
	Insert(ctx context.Context, p *model.ProductEntity) error
	Update(ctx context.Context, p *model.ProductEntity) (bool, error)
	Delete(ctx context.Context, pid string) (bool, error)
	UpdateStatus(ctx context.Context, pid string, status constant.ProductStatus) (bool, error)
}

func NewProductRepository(conn *sqlx.DB) ProductRepository {
	return &SQL{conn: conn}
}

const (
	getProductQuery = `SELECT pid, name, price, image_url, status, created_at FROM products WHERE pid = ?`

	// OFF_SHELF rows stay in the table but are hidden from the storefront.
	listVisibleQuery = `SELECT pid, name, price, image_url, status, created_at FROM products
WHERE status IN (?, ?) ORDER BY id DESC`

	insertProductQuery = `INSERT INTO products (pid, name, price, image_url, status, created_at) VALUES (?, ?, ?, ?, ?, ?)`

	updateProductQuery = `UPDATE products SET name = ?, price = ?, image_url = ?, status = ? WHERE pid = ?`

	deleteProductQuery = `DELETE FROM products WHERE pid = ?`

	updateStatusQuery = `UPDATE products SET status = ? WHERE pid = ?`
)

func (s *SQL) GetByPID(ctx context.Context, pid string) (*model.ProductEntity, error) {
	var p model.ProductEntity
	if err := s.conn.QueryRowxContext(ctx, getProductQuery, pid).StructScan(&p); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (s *SQL) ListVisible(ctx context.Context) ([]model.ProductEntity, error) {
	rows, err := s.conn.QueryxContext(ctx, listVisibleQuery,
		constant.ProductStatusOnSale, constant.ProductStatusSoldOut)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.ProductEntity, 0)
	for rows.Next() {
		var p model.ProductEntity
		if err := rows.StructScan(&p); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

func (s *SQL) Insert(ctx context.Context, p *model.ProductEntity) error {
	_, err := s.conn.ExecContext(ctx, insertProductQuery,
		p.PID, p.Name, p.Price, p.ImageURL, p.Status, p.CreatedAt)
	return err
}

func (s *SQL) Update(ctx context.Context, p *model.ProductEntity) (bool, error) {
	res, err := s.conn.ExecContext(ctx, updateProductQuery,
		p.Name, p.Price, p.ImageURL, p.Status, p.PID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *SQL) Delete(ctx context.Context, pid string) (bool, error) {
	res, err := s.conn.ExecContext(ctx, deleteProductQuery, pid)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *SQL) UpdateStatus(ctx context.Context, pid string, status constant.ProductStatus) (bool, error) {
	res, err := s.conn.ExecContext(ctx, updateStatusQuery, status, pid)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
