package webhook

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	catalogapp "github.com/yuhsuan-lin/daigou-bot/application/catalog"
	ledgerapp "github.com/yuhsuan-lin/daigou-bot/application/ledger"
	"github.com/yuhsuan-lin/daigou-bot/cmd/config"
	"github.com/yuhsuan-lin/daigou-bot/constant"
	"github.com/yuhsuan-lin/daigou-bot/model"
	redisrepo "github.com/yuhsuan-lin/daigou-bot/repository/redis"
	"github.com/yuhsuan-lin/daigou-bot/thirdparty/line"
	"github.com/yuhsuan-lin/daigou-bot/utils/logger"
	"go.uber.org/zap"
)

// Messenger is the outbound chat surface. All calls are fire-and-forget from
// the dispatcher's point of view; failures are logged, never propagated.
type Messenger interface {
	ReplyText(ctx context.Context, replyToken, text string) error
	ReplyFlex(ctx context.Context, replyToken string, flex any) error
	PushText(ctx context.Context, to, text string) error
	GetContent(ctx context.Context, messageID string) ([]byte, error)
}

// Uploader relays an image blob to the CDN and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, blob []byte) (string, error)
}

type SettingsProvider interface {
	Get(ctx context.Context, key string) (string, bool)
}

// WebhookApp dispatches inbound chat events: the admin's two-step listing
// conversation, the sold-out quick action, and buyer order confirmations.
type WebhookApp interface {
	HandleEvents(ctx context.Context, envelope *model.WebhookEnvelope)
}

type webhookAppImpl struct {
	config    *config.Config
	catalog   catalogapp.CatalogApp
	ledger    ledgerapp.LedgerApp
	redisRepo redisrepo.Repository
	messenger Messenger
	uploader  Uploader
	settings  SettingsProvider
}

func NewWebhookApp(config *config.Config, catalog catalogapp.CatalogApp, ledger ledgerapp.LedgerApp, redisRepo redisrepo.Repository, messenger Messenger, uploader Uploader, settings SettingsProvider) WebhookApp {
	return &webhookAppImpl{
		config:    config,
		catalog:   catalog,
		ledger:    ledger,
		redisRepo: redisRepo,
		messenger: messenger,
		uploader:  uploader,
		settings:  settings,
	}
}

func (s *webhookAppImpl) HandleEvents(ctx context.Context, envelope *model.WebhookEnvelope) {
	adminID, _ := s.settings.Get(ctx, constant.ConfigKeyAdminID)

	for i := range envelope.Events {
		event := &envelope.Events[i]
		if adminID != "" && event.Source.UserID == adminID {
			s.handleAdminEvent(ctx, event)
		} else {
			s.handleUserEvent(ctx, event)
		}
	}
}

func (s *webhookAppImpl) handleAdminEvent(ctx context.Context, event *model.WebhookEvent) {
	// The sold-out quick action works regardless of listing-session state.
	if event.Type == "postback" && event.Postback != nil {
		s.handlePostback(ctx, event)
		return
	}

	if event.Type != "message" || event.Message == nil {
		return
	}

	switch event.Message.Type {
	case "image":
		s.handleAdminImage(ctx, event)
	case "text":
		s.handleAdminText(ctx, event)
	}
}

func (s *webhookAppImpl) handlePostback(ctx context.Context, event *model.WebhookEvent) {
	params, err := url.ParseQuery(event.Postback.Data)
	if err != nil {
		logger.Warn("[Webhook] malformed postback data", zap.String("data", event.Postback.Data))
		return
	}
	if params.Get("action") != "sold_out" {
		return
	}

	pid := params.Get("pid")
	name, err := s.catalog.MarkStatus(ctx, pid, constant.ProductStatusSoldOut)
	if err != nil {
		s.replyText(ctx, event.ReplyToken, fmt.Sprintf("❌ 下架失敗，找不到商品 (PID: %s)", pid))
		return
	}
	s.replyText(ctx, event.ReplyToken, fmt.Sprintf("✅ 商品已下架\n品名: %s\n(PID: %s)", name, pid))
}

// handleAdminImage is step one of the listing flow: stage the uploaded image
// and wait for "name\nprice" text.
func (s *webhookAppImpl) handleAdminImage(ctx context.Context, event *model.WebhookEvent) {
	blob, err := s.messenger.GetContent(ctx, event.Message.ID)
	if err != nil {
		logger.Error("[Webhook] fetch image content", zap.String("error", err.Error()))
		s.replyText(ctx, event.ReplyToken, "❌ 圖片上傳失敗，請檢查 Cloudinary 設定。")
		return
	}

	imageURL, err := s.uploader.Upload(ctx, blob)
	if err != nil {
		logger.Error("[Webhook] image upload", zap.String("error", err.Error()))
		s.replyText(ctx, event.ReplyToken, "❌ 圖片上傳失敗，請檢查 Cloudinary 設定。")
		return
	}

	state := &model.AdminState{Step: model.AdminStepWaitInfo, ImageURL: imageURL}
	if err := s.redisRepo.SetAdminState(ctx, event.Source.UserID, state, s.config.Store.SessionTTL); err != nil {
		logger.Error("[Webhook] stash admin state", zap.String("error", err.Error()))
		s.replyText(ctx, event.ReplyToken, "❌ 系統錯誤，請重新傳送圖片。")
		return
	}

	s.replyText(ctx, event.ReplyToken, "✅ 圖片已接收！\n請換行輸入：\n品名\n價格")
}

// handleAdminText is step two: "name\nprice" completes the listing and
// clears the session.
func (s *webhookAppImpl) handleAdminText(ctx context.Context, event *model.WebhookEvent) {
	state, err := s.redisRepo.GetAdminState(ctx, event.Source.UserID)
	if err != nil {
		logger.Error("[Webhook] read admin state", zap.String("error", err.Error()))
	}
	if state == nil || state.Step != model.AdminStepWaitInfo {
		s.replyText(ctx, event.ReplyToken, "請先傳送一張圖片來開始上架流程。")
		return
	}

	lines := strings.Split(event.Message.Text, "\n")
	if len(lines) < 2 {
		s.replyText(ctx, event.ReplyToken, "⚠️ 格式錯誤！請務必換行輸入：\n品名\n價格")
		return
	}

	name := strings.TrimSpace(lines[0])
	price, err := strconv.ParseInt(strings.TrimSpace(lines[1]), 10, 64)
	if err != nil || name == "" {
		s.replyText(ctx, event.ReplyToken, "⚠️ 格式錯誤！請務必換行輸入：\n品名\n價格 (數字)")
		return
	}

	product, err := s.catalog.AddProduct(ctx, &model.AddProductRequest{
		Name:     name,
		Price:    price,
		ImageURL: state.ImageURL,
	})
	if err != nil {
		logger.Error("[Webhook] add product", zap.String("error", err.Error()))
		s.replyText(ctx, event.ReplyToken, "❌ 上架失敗，請稍後再試。")
		return
	}

	liffID, _ := s.settings.Get(ctx, constant.ConfigKeyLiffID)
	card := line.ProductCard(liffID, product.PID, product.Name, product.Price, product.ImageURL)
	if err := s.messenger.ReplyFlex(ctx, event.ReplyToken, card); err != nil {
		logger.Error("[Webhook] reply product card", zap.String("error", err.Error()))
	}

	if err := s.redisRepo.ClearAdminState(ctx, event.Source.UserID); err != nil {
		logger.Warn("[Webhook] clear admin state", zap.String("error", err.Error()))
	}
}

// handleUserEvent serves buyers: an order-confirmation message gets a receipt
// card and pings the admin.
func (s *webhookAppImpl) handleUserEvent(ctx context.Context, event *model.WebhookEvent) {
	if event.Type != "message" || event.Message == nil || event.Message.Type != "text" {
		return
	}

	text := event.Message.Text
	if !strings.HasPrefix(text, constant.OrderConfirmPrefix) {
		return
	}

	parts := strings.SplitN(text, "#", 2)
	if len(parts) < 2 {
		return
	}
	orderID := strings.TrimSpace(parts[1])

	order, err := s.ledger.GetByOrderID(ctx, orderID)
	if err != nil {
		s.replyText(ctx, event.ReplyToken, "找不到訂單資料，請聯繫客服。")
		return
	}

	liffID, _ := s.settings.Get(ctx, constant.ConfigKeyLiffID)
	if err := s.messenger.ReplyFlex(ctx, event.ReplyToken, line.ReceiptCard(liffID, order)); err != nil {
		logger.Error("[Webhook] reply receipt card", zap.String("error", err.Error()))
	}

	if adminID, ok := s.settings.Get(ctx, constant.ConfigKeyAdminID); ok {
		notice := fmt.Sprintf("💰 新訂單入帳！\n單號: %s\n買家: %s\n金額: $%d", order.OrderID, order.UserName, order.Total)
		if err := s.messenger.PushText(ctx, adminID, notice); err != nil {
			logger.Error("[Webhook] push admin notification", zap.String("error", err.Error()))
		}
	}
}

func (s *webhookAppImpl) replyText(ctx context.Context, replyToken, text string) {
	if err := s.messenger.ReplyText(ctx, replyToken, text); err != nil {
		logger.Error("[Webhook] reply text", zap.String("error", err.Error()))
	}
}
