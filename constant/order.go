package constant

// Order status is free text by design: the admin types whatever bookkeeping
// label fits ("paid", "shipped", ...). Only the initial value is fixed.
const OrderStatusUnpaid = "unpaid"

const (
	// OrderIDPrefix prefixes every generated batch id.
	OrderIDPrefix = "ORD_"
	// ProductIDPrefix prefixes every generated product id.
	ProductIDPrefix = "P_"
)

// OrderConfirmPrefix is the fixed text a buyer sends through chat to request
// a payment-confirmation receipt, followed by the order id.
const OrderConfirmPrefix = "我已下單 #ORD_"
