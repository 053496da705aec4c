package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrProductNotFound
	ErrOrderNotFound
	ErrCartEmpty
	ErrSystemBusy
	ErrUnknownAction
	ErrUploadFailed
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:         "success",
	ErrInternal:        "error internal",
	ErrNotFound:        "data not found",
	ErrInvalidRequest:  "invalid request",
	ErrUnauthorize:     "Unauthorized",
	ErrProductNotFound: "Product Not Found",
	ErrOrderNotFound:   "Order Not Found",
	ErrCartEmpty:       "cart empty or all items invalid",
	ErrSystemBusy:      "system busy, please retry",
	ErrUnknownAction:   "Unknown Action",
	ErrUploadFailed:    "image upload failed",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:         http.StatusOK,
	ErrInternal:        http.StatusInternalServerError,
	ErrNotFound:        http.StatusBadRequest,
	ErrInvalidRequest:  http.StatusBadRequest,
	ErrUnauthorize:     http.StatusUnauthorized,
	ErrProductNotFound: http.StatusBadRequest,
	ErrOrderNotFound:   http.StatusBadRequest,
	ErrCartEmpty:       http.StatusBadRequest,
	ErrSystemBusy:      http.StatusConflict,
	ErrUnknownAction:   http.StatusBadRequest,
	ErrUploadFailed:    http.StatusBadGateway,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:         "0000",
	ErrInternal:        "0001",
	ErrNotFound:        "0002",
	ErrInvalidRequest:  "0003",
	ErrUnauthorize:     "0004",
	ErrProductNotFound: "0005",
	ErrOrderNotFound:   "0006",
	ErrCartEmpty:       "0007",
	ErrSystemBusy:      "0008",
	ErrUnknownAction:   "0009",
	ErrUploadFailed:    "0010",
}
