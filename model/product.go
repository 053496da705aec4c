package model

import (
	"time"

	"github.com/yuhsuan-lin/daigou-bot/constant"
)

// ProductEntity represents one row of the products table
type ProductEntity struct {
	PID       string                 `db:"pid" json:"pid"`
	Name      string                 `db:"name" json:"name"`
	Price     int64                  `db:"price" json:"price"`
	ImageURL  string                 `db:"image_url" json:"image_url"`
	Status    constant.ProductStatus `db:"status" json:"status"`
	CreatedAt time.Time              `db:"created_at" json:"created_at"`
}

// AddProductRequest for adminAddProduct and the chat listing flow
type AddProductRequest struct {
	Name     string `json:"name" validate:"required"`
	Price    int64  `json:"price" validate:"gte=0"`
	ImageURL string `json:"image_url" validate:"required"`
}

// UpdateProductRequest for adminUpdateProduct; the row is overwritten in full
type UpdateProductRequest struct {
	PID      string                 `json:"pid" validate:"required"`
	Name     string                 `json:"name" validate:"required"`
	Price    int64                  `json:"price" validate:"gte=0"`
	ImageURL string                 `json:"image_url"`
	Status   constant.ProductStatus `json:"status" validate:"required"`
}
