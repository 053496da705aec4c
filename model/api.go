package model

import "encoding/json"

// APIRequest is the storefront's POST body: an action keyed dispatch with the
// fields the individual actions pick out. Admin actions carry idToken.
type APIRequest struct {
	Action  string          `json:"action"`
	IDToken string          `json:"idToken,omitempty"`
	UserID  string          `json:"userId,omitempty"`
	PID     string          `json:"pid,omitempty"`
	OrderID string          `json:"orderId,omitempty"`
	Status  string          `json:"status,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}
