package ledger

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/yuhsuan-lin/daigou-bot/constant"
	"github.com/yuhsuan-lin/daigou-bot/model"
	lockrepo "github.com/yuhsuan-lin/daigou-bot/repository/lock"
	orderrepo "github.com/yuhsuan-lin/daigou-bot/repository/order"
	productrepo "github.com/yuhsuan-lin/daigou-bot/repository/product"
	"github.com/yuhsuan-lin/daigou-bot/thirdparty/rabbitmq"
	cerr "github.com/yuhsuan-lin/daigou-bot/utils/errors"
	"github.com/yuhsuan-lin/daigou-bot/utils/logger"
	"go.uber.org/zap"
)

// Messenger delivers the direct admin push when no queue is configured.
type Messenger interface {
	PushText(ctx context.Context, to, text string) error
}

// SettingsProvider resolves the admin recipient id.
type SettingsProvider interface {
	Get(ctx context.Context, key string) (string, bool)
}

type LedgerApp interface {
	Submit(ctx context.Context, req *model.SubmitOrderRequest) (*model.SubmitOrderResponse, error)
	GetByUser(ctx context.Context, userID string) ([]model.OrderView, error)
	GetByOrderID(ctx context.Context, orderID string) (*model.OrderView, error)
	ListAll(ctx context.Context) ([]model.OrderView, error)
	SetStatus(ctx context.Context, orderID, status string) error
}

type ledgerAppImpl struct {
	orderRepo   orderrepo.OrderRepository
	productRepo productrepo.ProductRepository
	locker      lockrepo.Locker
	publisher   *rabbitmq.Publisher
	messenger   Messenger
	settings    SettingsProvider
}

func NewLedgerApp(orderRepo orderrepo.OrderRepository, productRepo productrepo.ProductRepository, locker lockrepo.Locker, publisher *rabbitmq.Publisher, messenger Messenger, settings SettingsProvider) LedgerApp {
	return &ledgerAppImpl{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		locker:      locker,
		publisher:   publisher,
		messenger:   messenger,
		settings:    settings,
	}
}

// Submit records a checkout batch. Totals come from the catalog's current
// prices, never from the client; lines whose product is missing or sold out
// are dropped silently. The whole re-price-and-append sequence runs under
// the store lock.
func (s *ledgerAppImpl) Submit(ctx context.Context, req *model.SubmitOrderRequest) (*model.SubmitOrderResponse, error) {
	if len(req.Items) == 0 {
		return nil, cerr.SetCustomError(constant.ErrCartEmpty)
	}

	release, err := s.locker.Acquire(ctx)
	if err != nil {
		if errors.Is(err, lockrepo.ErrNotAcquired) {
			return nil, cerr.SetCustomError(constant.ErrSystemBusy)
		}
		logger.Error("[Submit] error locker.Acquire", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	defer release()

	orderTime := time.Now()
	batchID := constant.OrderIDPrefix + strconv.FormatInt(orderTime.UnixMilli(), 10)

	rows := make([]model.OrderEntity, 0, len(req.Items))
	summary := make([]string, 0, len(req.Items))
	var total int64

	for _, item := range req.Items {
		product, err := s.productRepo.GetByPID(ctx, item.PID)
		if err != nil {
			logger.Error("[Submit] error productRepo.GetByPID", zap.String("pid", item.PID), zap.String("error", err.Error()))
			return nil, cerr.SetCustomError(constant.ErrInternal)
		}
		if product == nil || product.Status == constant.ProductStatusSoldOut {
			logger.Info("[Submit] skipping invalid cart line", zap.String("pid", item.PID))
			continue
		}

		lineTotal := product.Price * int64(item.Qty)
		rows = append(rows, model.OrderEntity{
			OrderID:     batchID,
			OrderTime:   orderTime,
			UserName:    req.UserName,
			UserID:      req.UserID,
			PID:         product.PID,
			ItemName:    product.Name,
			Spec:        item.Spec,
			Qty:         item.Qty,
			TotalAmount: lineTotal,
			OrderStatus: constant.OrderStatusUnpaid,
		})
		summary = append(summary, fmt.Sprintf("%s x %d", product.Name, item.Qty))
		total += lineTotal
	}

	if len(rows) == 0 {
		return nil, cerr.SetCustomError(constant.ErrCartEmpty)
	}

	// Multi-line batches get "-N" sub-ids in input order.
	if len(rows) > 1 {
		for i := range rows {
			rows[i].OrderID = fmt.Sprintf("%s-%d", batchID, i+1)
		}
	}

	if err := s.orderRepo.InsertBatch(ctx, rows); err != nil {
		logger.Error("[Submit] error orderRepo.InsertBatch", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}

	s.notifyAdmin(ctx, &rabbitmq.OrderNotificationMessage{
		OrderID:     batchID,
		UserID:      req.UserID,
		UserName:    req.UserName,
		ItemSummary: strings.Join(summary, "、"),
		TotalAmount: total,
		LineCount:   len(rows),
		OrderTime:   orderTime,
	})

	return &model.SubmitOrderResponse{
		OrderID:     batchID,
		TotalAmount: total,
		LineCount:   len(rows),
	}, nil
}

// notifyAdmin is fire-and-forget: a recorded order is never rolled back
// because its notification failed.
func (s *ledgerAppImpl) notifyAdmin(ctx context.Context, msg *rabbitmq.OrderNotificationMessage) {
	if s.publisher != nil {
		if err := s.publisher.PublishOrderNotification(*msg); err != nil {
			logger.Error("[Submit] publish order notification", zap.String("error", err.Error()))
		}
		return
	}

	if s.messenger == nil || s.settings == nil {
		return
	}
	adminID, ok := s.settings.Get(ctx, constant.ConfigKeyAdminID)
	if !ok {
		return
	}
	text := fmt.Sprintf("💰 新訂單入帳！\n單號: %s\n買家: %s\n品項: %s\n總額: $%d",
		msg.OrderID, msg.UserName, msg.ItemSummary, msg.TotalAmount)
	if err := s.messenger.PushText(ctx, adminID, text); err != nil {
		logger.Error("[Submit] push admin notification", zap.String("error", err.Error()))
	}
}

func (s *ledgerAppImpl) GetByUser(ctx context.Context, userID string) ([]model.OrderView, error) {
	rows, err := s.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		logger.Error("[GetByUser] error orderRepo.ListByUser", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}

	views := make([]model.OrderView, 0, len(rows))
	for i := range rows {
		views = append(views, toOrderView(&rows[i]))
	}
	return views, nil
}

func (s *ledgerAppImpl) GetByOrderID(ctx context.Context, orderID string) (*model.OrderView, error) {
	row, err := s.orderRepo.GetByOrderID(ctx, orderID)
	if err != nil {
		logger.Error("[GetByOrderID] error orderRepo.GetByOrderID", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	if row == nil {
		return nil, cerr.SetCustomError(constant.ErrOrderNotFound)
	}
	view := toOrderView(row)
	return &view, nil
}

func (s *ledgerAppImpl) ListAll(ctx context.Context) ([]model.OrderView, error) {
	rows, err := s.orderRepo.ListAll(ctx)
	if err != nil {
		logger.Error("[ListAll] error orderRepo.ListAll", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}

	views := make([]model.OrderView, 0, len(rows))
	for i := range rows {
		views = append(views, toOrderView(&rows[i]))
	}
	return views, nil
}

// SetStatus updates every row of an order. Passing a batch id (no "-N"
// suffix) updates all of its sub-lines.
func (s *ledgerAppImpl) SetStatus(ctx context.Context, orderID, status string) error {
	release, err := s.locker.Acquire(ctx)
	if err != nil {
		if errors.Is(err, lockrepo.ErrNotAcquired) {
			return cerr.SetCustomError(constant.ErrSystemBusy)
		}
		logger.Error("[SetStatus] error locker.Acquire", zap.String("error", err.Error()))
		return cerr.SetCustomError(constant.ErrInternal)
	}
	defer release()

	matched, err := s.orderRepo.UpdateStatus(ctx, orderID, status)
	if err != nil {
		logger.Error("[SetStatus] error orderRepo.UpdateStatus", zap.String("error", err.Error()))
		return cerr.SetCustomError(constant.ErrInternal)
	}
	if matched == 0 {
		return cerr.SetCustomError(constant.ErrOrderNotFound)
	}
	return nil
}

var displayLocation = func() *time.Location {
	loc, err := time.LoadLocation("Asia/Taipei")
	if err != nil {
		return time.FixedZone("GMT+8", 8*60*60)
	}
	return loc
}()

func toOrderView(row *model.OrderEntity) model.OrderView {
	var unit int64
	if row.Qty > 0 {
		unit = row.TotalAmount / int64(row.Qty)
	}
	return model.OrderView{
		OrderID:  row.OrderID,
		Time:     row.OrderTime.In(displayLocation).Format("2006/01/02 15:04"),
		UserName: row.UserName,
		ItemName: row.ItemName,
		Spec:     row.Spec,
		Qty:      row.Qty,
		Price:    unit,
		Total:    row.TotalAmount,
		Status:   row.OrderStatus,
	}
}
