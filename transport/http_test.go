package transport_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/yuhsuan-lin/daigou-bot/constant"
	catalogmocks "github.com/yuhsuan-lin/daigou-bot/mocks/application/catalog"
	identitymocks "github.com/yuhsuan-lin/daigou-bot/mocks/application/identity"
	ledgermocks "github.com/yuhsuan-lin/daigou-bot/mocks/application/ledger"
	webhookmocks "github.com/yuhsuan-lin/daigou-bot/mocks/application/webhook"
	auditlogmocks "github.com/yuhsuan-lin/daigou-bot/mocks/repository/auditlog"
	setupmocks "github.com/yuhsuan-lin/daigou-bot/mocks/repository/setup"
	"github.com/yuhsuan-lin/daigou-bot/model"
	"github.com/yuhsuan-lin/daigou-bot/transport"
)

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Code    string          `json:"code"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	if rec.Code != 200 {
		t.Fatalf("http status = %d, want 200", rec.Code)
	}
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return env
}

func TestRestHandler_HandleRead(t *testing.T) {
	type fields struct {
		catalog *catalogmocks.CatalogApp
		ledger  *ledgermocks.LedgerApp
	}
	tests := []struct {
		name        string
		fields      fields
		target      string
		mockCall    func(f fields)
		wantStatus  string
		wantCode    string
		wantMessage string
	}{
		{
			name: "getProduct: ok",
			fields: fields{
				catalog: catalogmocks.NewCatalogApp(t),
				ledger:  ledgermocks.NewLedgerApp(t),
			},
			target: "/?action=getProduct&pid=P_1",
			mockCall: func(f fields) {
				f.catalog.
					On("GetProduct", mock.Anything, "P_1").
					Return(&model.ProductEntity{PID: "P_1", Name: "保溫瓶", Price: 250}, nil).
					Once()
			},
			wantStatus: "success",
		},
		{
			name: "getProduct: missing pid",
			fields: fields{
				catalog: catalogmocks.NewCatalogApp(t),
				ledger:  ledgermocks.NewLedgerApp(t),
			},
			target:     "/?action=getProduct",
			wantStatus: "error",
			wantCode:   constant.ErrorTypeCode[constant.ErrInvalidRequest],
		},
		{
			name: "getProducts: ok",
			fields: fields{
				catalog: catalogmocks.NewCatalogApp(t),
				ledger:  ledgermocks.NewLedgerApp(t),
			},
			target: "/?action=getProducts",
			mockCall: func(f fields) {
				f.catalog.
					On("ListProducts", mock.Anything).
					Return([]model.ProductEntity{}, nil).
					Once()
			},
			wantStatus: "success",
		},
		{
			name: "getOrders: ok",
			fields: fields{
				catalog: catalogmocks.NewCatalogApp(t),
				ledger:  ledgermocks.NewLedgerApp(t),
			},
			target: "/?action=getOrders&userId=U123",
			mockCall: func(f fields) {
				f.ledger.
					On("GetByUser", mock.Anything, "U123").
					Return([]model.OrderView{}, nil).
					Once()
			},
			wantStatus: "success",
		},
		{
			name: "test: health probe",
			fields: fields{
				catalog: catalogmocks.NewCatalogApp(t),
				ledger:  ledgermocks.NewLedgerApp(t),
			},
			target:      "/?action=test",
			wantStatus:  "success",
			wantMessage: "API is working!",
		},
		{
			name: "unknown action",
			fields: fields{
				catalog: catalogmocks.NewCatalogApp(t),
				ledger:  ledgermocks.NewLedgerApp(t),
			},
			target:     "/?action=destroyEverything",
			wantStatus: "error",
			wantCode:   constant.ErrorTypeCode[constant.ErrUnknownAction],
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				ttFields := tt.fields
				tt.mockCall(ttFields)
			}
			rh := &transport.RestHandler{
				CatalogApp: tt.fields.catalog,
				LedgerApp:  tt.fields.ledger,
			}

			rec := httptest.NewRecorder()
			rh.HandleRead(rec, httptest.NewRequest("GET", tt.target, nil))

			env := decodeEnvelope(t, rec)
			if env.Status != tt.wantStatus {
				t.Fatalf("status = %s, want %s", env.Status, tt.wantStatus)
			}
			if tt.wantCode != "" && env.Code != tt.wantCode {
				t.Fatalf("code = %s, want %s", env.Code, tt.wantCode)
			}
			if tt.wantMessage != "" && env.Message != tt.wantMessage {
				t.Fatalf("message = %s, want %s", env.Message, tt.wantMessage)
			}
		})
	}
}

func TestRestHandler_HandleWrite(t *testing.T) {
	type fields struct {
		catalog  *catalogmocks.CatalogApp
		ledger   *ledgermocks.LedgerApp
		webhook  *webhookmocks.WebhookApp
		identity *identitymocks.IdentityApp
		logRepo  *auditlogmocks.LogRepository
	}
	newFields := func(t *testing.T) fields {
		return fields{
			catalog:  catalogmocks.NewCatalogApp(t),
			ledger:   ledgermocks.NewLedgerApp(t),
			webhook:  webhookmocks.NewWebhookApp(t),
			identity: identitymocks.NewIdentityApp(t),
			logRepo:  auditlogmocks.NewLogRepository(t),
		}
	}
	expectAudit := func(f fields) {
		f.logRepo.
			On("Insert", mock.Anything, mock.Anything).
			Return(nil).
			Once()
	}

	tests := []struct {
		name        string
		body        string
		mockCall    func(f fields)
		wantStatus  string
		wantCode    string
		wantMessage string
	}{
		{
			name: "webhook envelope is acknowledged regardless of content",
			body: `{"destination":"xyz","events":[{"type":"message","replyToken":"rt","source":{"type":"user","userId":"U1"},"message":{"id":"m1","type":"text","text":"hi"}}]}`,
			mockCall: func(f fields) {
				expectAudit(f)
				f.webhook.
					On("HandleEvents", mock.Anything, mock.MatchedBy(func(env *model.WebhookEnvelope) bool {
						return len(env.Events) == 1 && env.Events[0].Source.UserID == "U1"
					})).
					Once()
			},
			wantStatus:  "success",
			wantMessage: "ok",
		},
		{
			name: "submitOrder dispatches to the ledger",
			body: `{"action":"submitOrder","data":{"userId":"U123","userName":"Amy","items":[{"pid":"P_1","qty":2}]}}`,
			mockCall: func(f fields) {
				expectAudit(f)
				f.ledger.
					On("Submit", mock.Anything, mock.MatchedBy(func(req *model.SubmitOrderRequest) bool {
						return req.UserID == "U123" && len(req.Items) == 1 && req.Items[0].Qty == 2
					})).
					Return(&model.SubmitOrderResponse{OrderID: "ORD_1", TotalAmount: 500, LineCount: 1}, nil).
					Once()
			},
			wantStatus: "success",
		},
		{
			name: "submitOrder with no items is rejected by validation",
			body: `{"action":"submitOrder","data":{"userId":"U123"}}`,
			mockCall: func(f fields) {
				expectAudit(f)
			},
			wantStatus: "error",
			wantCode:   constant.ErrorTypeCode[constant.ErrInvalidRequest],
		},
		{
			name: "admin action with a bad token is unauthorized",
			body: `{"action":"adminDeleteProduct","idToken":"bad","pid":"P_1"}`,
			mockCall: func(f fields) {
				expectAudit(f)
				f.identity.
					On("Verify", mock.Anything, "bad").
					Return("", false).
					Once()
			},
			wantStatus: "error",
			wantCode:   constant.ErrorTypeCode[constant.ErrUnauthorize],
		},
		{
			name: "checkAdmin succeeds for the admin token",
			body: `{"action":"checkAdmin","idToken":"good"}`,
			mockCall: func(f fields) {
				expectAudit(f)
				f.identity.
					On("Verify", mock.Anything, "good").
					Return("Uadmin", true).
					Once()
				f.identity.
					On("IsAdmin", mock.Anything, "Uadmin").
					Return(true).
					Once()
			},
			wantStatus: "success",
		},
		{
			name: "admin action verifies the token exactly once",
			body: `{"action":"checkAdmin","idToken":"good"}`,
			mockCall: func(f fields) {
				expectAudit(f)
				f.identity.
					On("Verify", mock.Anything, "good").
					Return("Ustranger", true).
					Once()
				f.identity.
					On("IsAdmin", mock.Anything, "Ustranger").
					Return(false).
					Once()
			},
			wantStatus: "error",
			wantCode:   constant.ErrorTypeCode[constant.ErrUnauthorize],
		},
		{
			name: "adminUpdateOrder sets the batch status",
			body: `{"action":"adminUpdateOrder","idToken":"good","orderId":"ORD_1","status":"paid"}`,
			mockCall: func(f fields) {
				expectAudit(f)
				f.identity.
					On("Verify", mock.Anything, "good").
					Return("Uadmin", true).
					Once()
				f.identity.
					On("IsAdmin", mock.Anything, "Uadmin").
					Return(true).
					Once()
				f.ledger.
					On("SetStatus", mock.Anything, "ORD_1", "paid").
					Return(nil).
					Once()
			},
			wantStatus:  "success",
			wantMessage: "order updated",
		},
		{
			name: "malformed body",
			body: `{"action":`,
			mockCall: func(f fields) {
				expectAudit(f)
			},
			wantStatus: "error",
			wantCode:   constant.ErrorTypeCode[constant.ErrInvalidRequest],
		},
		{
			name: "unknown action",
			body: `{"action":"fly"}`,
			mockCall: func(f fields) {
				expectAudit(f)
			},
			wantStatus: "error",
			wantCode:   constant.ErrorTypeCode[constant.ErrUnknownAction],
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			rh := &transport.RestHandler{
				CatalogApp:  f.catalog,
				LedgerApp:   f.ledger,
				WebhookApp:  f.webhook,
				IdentityApp: f.identity,
				LogRepo:     f.logRepo,
			}

			rec := httptest.NewRecorder()
			rh.HandleWrite(rec, httptest.NewRequest("POST", "/", bytes.NewBufferString(tt.body)))

			env := decodeEnvelope(t, rec)
			if env.Status != tt.wantStatus {
				t.Fatalf("status = %s, want %s (body %s)", env.Status, tt.wantStatus, rec.Body.String())
			}
			if tt.wantCode != "" && env.Code != tt.wantCode {
				t.Fatalf("code = %s, want %s", env.Code, tt.wantCode)
			}
			if tt.wantMessage != "" && env.Message != tt.wantMessage {
				t.Fatalf("message = %s, want %s", env.Message, tt.wantMessage)
			}
		})
	}
}

func TestRestHandler_Setup(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		setupRepo := setupmocks.NewSetupRepository(t)
		setupRepo.
			On("EnsureSchema", mock.Anything).
			Return(nil).
			Once()
		rh := &transport.RestHandler{SetupRepo: setupRepo}

		rec := httptest.NewRecorder()
		rh.Setup(rec, httptest.NewRequest("POST", "/internal/setup", nil))

		env := decodeEnvelope(t, rec)
		if env.Status != "success" || env.Message != "setup complete" {
			t.Fatalf("unexpected response: %s", rec.Body.String())
		}
	})
}
