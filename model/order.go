package model

import "time"

// OrderEntity represents one row of the orders table. A multi-line checkout
// produces several rows sharing one batch id with a "-N" suffix per line.
type OrderEntity struct {
	ID          int64     `db:"id" json:"-"`
	OrderID     string    `db:"order_id" json:"order_id"`
	OrderTime   time.Time `db:"order_time" json:"order_time"`
	UserName    string    `db:"user_name" json:"user_name"`
	UserID      string    `db:"user_id" json:"user_id"`
	PID         string    `db:"pid" json:"pid"`
	ItemName    string    `db:"item_name" json:"item_name"`
	Spec        string    `db:"spec" json:"spec"`
	Qty         int       `db:"qty" json:"qty"`
	TotalAmount int64     `db:"total_amount" json:"total_amount"`
	OrderStatus string    `db:"order_status" json:"order_status"`
}

// SubmitOrderItem is one cart line as sent by the storefront. Any price the
// client supplies is ignored; totals are recomputed from the catalog.
type SubmitOrderItem struct {
	PID  string `json:"pid" validate:"required"`
	Spec string `json:"spec"`
	Qty  int    `json:"qty" validate:"required,gt=0"`
}

type SubmitOrderRequest struct {
	UserID   string            `json:"userId" validate:"required"`
	UserName string            `json:"userName"`
	Items    []SubmitOrderItem `json:"items" validate:"required,dive"`
}

type SubmitOrderResponse struct {
	OrderID     string `json:"orderId"`
	TotalAmount int64  `json:"total"`
	LineCount   int    `json:"lineCount"`
}

// OrderView is the presentation shape for order history and receipts.
// Price is the unit price, back-derived from total/qty.
type OrderView struct {
	OrderID  string `json:"order_id"`
	Time     string `json:"time"`
	UserName string `json:"user_name,omitempty"`
	ItemName string `json:"item_name"`
	Spec     string `json:"spec"`
	Qty      int    `json:"qty"`
	Price    int64  `json:"price"`
	Total    int64  `json:"total"`
	Status   string `json:"order_status,omitempty"`
}

type UpdateOrderStatusRequest struct {
	OrderID string `json:"orderId" validate:"required"`
	Status  string `json:"status" validate:"required"`
}
