package constant

type ProductStatus string

const (
	ProductStatusOnSale   ProductStatus = "ON_SALE"
	ProductStatusSoldOut  ProductStatus = "SOLD_OUT"
	ProductStatusOffShelf ProductStatus = "OFF_SHELF"
)

// ValidProductStatus reports whether s is one of the known listing states.
func ValidProductStatus(s ProductStatus) bool {
	switch s {
	case ProductStatusOnSale, ProductStatusSoldOut, ProductStatusOffShelf:
		return true
	}
	return false
}
