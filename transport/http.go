package transport

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	catalogapp "github.com/yuhsuan-lin/daigou-bot/application/catalog"
	identityapp "github.com/yuhsuan-lin/daigou-bot/application/identity"
	ledgerapp "github.com/yuhsuan-lin/daigou-bot/application/ledger"
	webhookapp "github.com/yuhsuan-lin/daigou-bot/application/webhook"
	"github.com/yuhsuan-lin/daigou-bot/cmd/config"
	"github.com/yuhsuan-lin/daigou-bot/constant"
	"github.com/yuhsuan-lin/daigou-bot/model"
	auditlogrepo "github.com/yuhsuan-lin/daigou-bot/repository/auditlog"
	setuprepo "github.com/yuhsuan-lin/daigou-bot/repository/setup"
	utilsContext "github.com/yuhsuan-lin/daigou-bot/utils/context"
	"github.com/yuhsuan-lin/daigou-bot/utils/errors"
	"github.com/yuhsuan-lin/daigou-bot/utils/logger"
	validatorx "github.com/yuhsuan-lin/daigou-bot/utils/validator"
	"go.uber.org/zap"

	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	CatalogApp  catalogapp.CatalogApp
	LedgerApp   ledgerapp.LedgerApp
	WebhookApp  webhookapp.WebhookApp
	IdentityApp identityapp.IdentityApp
	LogRepo     auditlogrepo.LogRepository
	SetupRepo   setuprepo.SetupRepository
}

func NewTransport(cfg *config.Config, rh *RestHandler) http.Handler {
	mux := mux.NewRouter()

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Provisioning, guarded by the static internal key
	internal := mux.PathPrefix("/internal").Subrouter()
	internal.Use(InternalMiddleware(cfg.InternalAPIKey))
	internal.HandleFunc("/setup", rh.Setup).Methods(http.MethodPost)

	// The single public surface: action-keyed reads, action-keyed writes,
	// and the chat webhook share one endpoint.
	mux.HandleFunc("/", rh.HandleRead).Methods(http.MethodGet)
	mux.HandleFunc("/", rh.HandleWrite).Methods(http.MethodPost)

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(RecoverMiddleware())

	return mux
}

// HandleRead dispatches storefront reads
// @Summary Storefront read API
// @Description Action-keyed read dispatch: getProduct, getProducts, getOrders, test
// @Tags Storefront
// @Produce json
// @Param action query string true "Action name"
// @Param pid query string false "Product id (getProduct)"
// @Param userId query string false "User id (getOrders)"
// @Success 200 {object} successResponse
// @Router / [get]
func (s *RestHandler) HandleRead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	switch query.Get("action") {
	case "getProduct":
		pid := query.Get("pid")
		if pid == "" {
			writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
			return
		}
		product, err := s.CatalogApp.GetProduct(ctx, pid)
		if err != nil {
			writeError(w, err)
			return
		}
		writeSuccess(w, product)

	case "getProducts":
		products, err := s.CatalogApp.ListProducts(ctx)
		if err != nil {
			writeError(w, err)
			return
		}
		writeSuccess(w, products)

	case "getOrders":
		userID := query.Get("userId")
		if userID == "" {
			writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
			return
		}
		orders, err := s.LedgerApp.GetByUser(ctx, userID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeSuccess(w, orders)

	case "test":
		writeMessage(w, "API is working!")

	default:
		writeError(w, errors.SetCustomError(constant.ErrUnknownAction))
	}
}

// HandleWrite dispatches the chat webhook and storefront write API
// @Summary Storefront write API / chat webhook
// @Description Webhook envelopes are dispatched to the chat handler; anything else is an action-keyed storefront call
// @Tags Storefront
// @Accept json
// @Produce json
// @Success 200 {object} successResponse
// @Router / [post]
func (s *RestHandler) HandleWrite(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 1<<20))
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	// Raw body goes to the audit table before any processing.
	requestID, _ := utilsContext.GetRequestID(ctx)
	if s.LogRepo != nil {
		logErr := s.LogRepo.Insert(ctx, &model.AuditLog{
			RequestID: requestID,
			Method:    r.Method,
			Body:      string(body),
		})
		if logErr != nil {
			logger.Error("audit log insert failed", zap.String("error", logErr.Error()))
		}
	}

	// A platform event envelope means a chat webhook. The platform retries
	// non-success acknowledgements, so the outcome of the inner dispatch is
	// never allowed to fail the request.
	var envelope model.WebhookEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil && len(envelope.Events) > 0 {
		s.WebhookApp.HandleEvents(ctx, &envelope)
		writeMessage(w, "ok")
		return
	}

	var req model.APIRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	s.dispatchAction(ctx, w, &req)
}

func isAdminAction(action string) bool {
	return action == "checkAdmin" || strings.HasPrefix(action, "admin")
}

func (s *RestHandler) dispatchAction(ctx context.Context, w http.ResponseWriter, req *model.APIRequest) {
	if isAdminAction(req.Action) {
		subject, ok := s.IdentityApp.Verify(ctx, req.IDToken)
		if !ok || !s.IdentityApp.IsAdmin(ctx, subject) {
			writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
			return
		}
		ctx = utilsContext.WithSubjectID(ctx, subject)
	}

	switch req.Action {
	case "submitOrder":
		s.SubmitOrder(ctx, w, req)

	case "getProducts":
		products, err := s.CatalogApp.ListProducts(ctx)
		if err != nil {
			writeError(w, err)
			return
		}
		writeSuccess(w, products)

	case "getOrders":
		if req.UserID == "" {
			writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
			return
		}
		orders, err := s.LedgerApp.GetByUser(ctx, req.UserID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeSuccess(w, orders)

	case "checkAdmin":
		writeSuccess(w, map[string]bool{"isAdmin": true})

	case "adminAddProduct":
		var addReq model.AddProductRequest
		if err := json.Unmarshal(req.Data, &addReq); err != nil {
			writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
			return
		}
		if err := validatorx.ValidateStruct(&addReq); err != nil {
			writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
			return
		}
		product, err := s.CatalogApp.AddProduct(ctx, &addReq)
		if err != nil {
			writeError(w, err)
			return
		}
		writeSuccess(w, product)

	case "adminUpdateProduct":
		var updateReq model.UpdateProductRequest
		if err := json.Unmarshal(req.Data, &updateReq); err != nil {
			writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
			return
		}
		if err := validatorx.ValidateStruct(&updateReq); err != nil {
			writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
			return
		}
		if err := s.CatalogApp.UpdateProduct(ctx, &updateReq); err != nil {
			writeError(w, err)
			return
		}
		writeMessage(w, "product updated")

	case "adminDeleteProduct":
		if req.PID == "" {
			writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
			return
		}
		if err := s.CatalogApp.DeleteProduct(ctx, req.PID); err != nil {
			writeError(w, err)
			return
		}
		writeMessage(w, "product deleted")

	case "adminGetAllOrders":
		orders, err := s.LedgerApp.ListAll(ctx)
		if err != nil {
			writeError(w, err)
			return
		}
		writeSuccess(w, orders)

	case "adminUpdateOrder":
		statusReq := model.UpdateOrderStatusRequest{OrderID: req.OrderID, Status: req.Status}
		if err := validatorx.ValidateStruct(&statusReq); err != nil {
			writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
			return
		}
		if err := s.LedgerApp.SetStatus(ctx, statusReq.OrderID, statusReq.Status); err != nil {
			writeError(w, err)
			return
		}
		writeMessage(w, "order updated")

	default:
		writeError(w, errors.SetCustomError(constant.ErrUnknownAction))
	}
}

// SubmitOrder records a checkout batch
// @Summary Submit a cart
// @Description Re-prices every line server-side and appends one order row per valid line
// @Tags Storefront
// @Accept json
// @Produce json
// @Param request body model.SubmitOrderRequest true "Cart"
// @Success 200 {object} successResponse
// @Failure 200 {object} errorResponse
// @Router / [post]
func (s *RestHandler) SubmitOrder(ctx context.Context, w http.ResponseWriter, req *model.APIRequest) {
	var submitReq model.SubmitOrderRequest
	if err := json.Unmarshal(req.Data, &submitReq); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&submitReq); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.LedgerApp.Submit(ctx, &submitReq)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// Setup provisions the store tables and seeds the settings table
func (s *RestHandler) Setup(w http.ResponseWriter, r *http.Request) {
	if s.SetupRepo == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}
	if err := s.SetupRepo.EnsureSchema(r.Context()); err != nil {
		logger.Error("setup failed", zap.String("error", err.Error()))
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}
	writeMessage(w, "setup complete")
}
