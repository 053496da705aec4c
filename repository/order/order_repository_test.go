package order_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"

	"github.com/yuhsuan-lin/daigou-bot/repository/order"
)

func newOrderRepoTest(t *testing.T) (order.OrderRepository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to create mock database: %v", err)
	}
	conn := sqlx.NewDb(db, "sqlmock")
	return order.NewOrderRepository(conn), mock, func() { conn.Close() }
}

var orderColumns = []string{"id", "order_id", "order_time", "user_name", "user_id", "pid", "item_name", "spec", "qty", "total_amount", "order_status"}

const getByOrderIDPattern = `SELECT id, order_id, order_time, user_name, user_id, pid, item_name, spec, qty, total_amount, order_status FROM orders WHERE order_id = ? OR order_id LIKE CONCAT(?, '-%') ORDER BY id LIMIT 1`

func TestOrderRepository_GetByOrderID_ExactMatch(t *testing.T) {
	repo, mock, closeDB := newOrderRepoTest(t)
	defer closeDB()

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(getByOrderIDPattern)).
		WithArgs("ORD_1700000000000", "ORD_1700000000000").
		WillReturnRows(sqlmock.NewRows(orderColumns).
			AddRow(1, "ORD_1700000000000", now, "Amy", "U123", "P_1", "保溫瓶", "黑色", 2, 500, "unpaid"))

	got, err := repo.GetByOrderID(context.Background(), "ORD_1700000000000")
	if err != nil {
		t.Fatalf("GetByOrderID() error = %v", err)
	}
	if got == nil || got.OrderID != "ORD_1700000000000" {
		t.Fatalf("GetByOrderID() = %+v, want ORD_1700000000000", got)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("Database expectations were not met: %v", err)
	}
}

// A multi-line checkout stores only suffixed rows (ORD_<ts>-1, ORD_<ts>-2),
// yet buyers and receipt lookups carry the bare batch id. The batch id must
// still resolve, to the first sub-line.
func TestOrderRepository_GetByOrderID_BatchPrefixMatch(t *testing.T) {
	repo, mock, closeDB := newOrderRepoTest(t)
	defer closeDB()

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(getByOrderIDPattern)).
		WithArgs("ORD_1700000000000", "ORD_1700000000000").
		WillReturnRows(sqlmock.NewRows(orderColumns).
			AddRow(1, "ORD_1700000000000-1", now, "Amy", "U123", "P_1", "保溫瓶", "黑色", 2, 500, "unpaid"))

	got, err := repo.GetByOrderID(context.Background(), "ORD_1700000000000")
	if err != nil {
		t.Fatalf("GetByOrderID() error = %v", err)
	}
	if got == nil || got.OrderID != "ORD_1700000000000-1" {
		t.Fatalf("GetByOrderID() = %+v, want first batch sub-line", got)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("Database expectations were not met: %v", err)
	}
}

func TestOrderRepository_GetByOrderID_NotFound(t *testing.T) {
	repo, mock, closeDB := newOrderRepoTest(t)
	defer closeDB()

	mock.ExpectQuery(regexp.QuoteMeta(getByOrderIDPattern)).
		WithArgs("ORD_missing", "ORD_missing").
		WillReturnRows(sqlmock.NewRows(orderColumns))

	got, err := repo.GetByOrderID(context.Background(), "ORD_missing")
	if err != nil {
		t.Fatalf("GetByOrderID() error = %v", err)
	}
	if got != nil {
		t.Fatalf("GetByOrderID() = %+v, want nil", got)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("Database expectations were not met: %v", err)
	}
}

func TestOrderRepository_UpdateStatus_MatchesBatchSuffixes(t *testing.T) {
	repo, mock, closeDB := newOrderRepoTest(t)
	defer closeDB()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE orders SET order_status = ? WHERE order_id = ? OR order_id LIKE CONCAT(?, '-%')`)).
		WithArgs("paid", "ORD_1700000000000", "ORD_1700000000000").
		WillReturnResult(sqlmock.NewResult(0, 3))

	matched, err := repo.UpdateStatus(context.Background(), "ORD_1700000000000", "paid")
	if err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}
	if matched != 3 {
		t.Fatalf("UpdateStatus() matched = %d, want 3", matched)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("Database expectations were not met: %v", err)
	}
}
