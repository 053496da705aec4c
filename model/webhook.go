package model

// WebhookEnvelope is the chat platform's inbound event wrapper. Its presence
// (a non-empty events array) is what distinguishes a webhook delivery from a
// storefront API call on the shared POST endpoint.
type WebhookEnvelope struct {
	Destination string         `json:"destination,omitempty"`
	Events      []WebhookEvent `json:"events"`
}

type WebhookEvent struct {
	Type       string           `json:"type"`
	ReplyToken string           `json:"replyToken"`
	Source     WebhookSource    `json:"source"`
	Message    *WebhookMessage  `json:"message,omitempty"`
	Postback   *WebhookPostback `json:"postback,omitempty"`
}

type WebhookSource struct {
	Type   string `json:"type"`
	UserID string `json:"userId"`
}

type WebhookMessage struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

type WebhookPostback struct {
	Data string `json:"data"`
}

// AdminStepWaitInfo is the only non-idle step of the listing conversation:
// an image has been staged and the bot is waiting for "name\nprice" text.
const AdminStepWaitInfo = "WAIT_INFO"

// AdminState is the ephemeral two-step listing session, cached per admin
// user id with a short TTL.
type AdminState struct {
	Step     string `json:"step"`
	ImageURL string `json:"img"`
}
