package ledger_test

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	appledger "github.com/yuhsuan-lin/daigou-bot/application/ledger"
	"github.com/yuhsuan-lin/daigou-bot/constant"
	ledgermocks "github.com/yuhsuan-lin/daigou-bot/mocks/application/ledger"
	settingsmocks "github.com/yuhsuan-lin/daigou-bot/mocks/application/settings"
	lockmocks "github.com/yuhsuan-lin/daigou-bot/mocks/repository/lock"
	ordermocks "github.com/yuhsuan-lin/daigou-bot/mocks/repository/order"
	productmocks "github.com/yuhsuan-lin/daigou-bot/mocks/repository/product"
	"github.com/yuhsuan-lin/daigou-bot/model"
	lockrepo "github.com/yuhsuan-lin/daigou-bot/repository/lock"
	cerr "github.com/yuhsuan-lin/daigou-bot/utils/errors"
)

func TestLedgerApp_Submit(t *testing.T) {
	type fields struct {
		orderRepo   *ordermocks.OrderRepository
		productRepo *productmocks.ProductRepository
		locker      *lockmocks.Locker
		messenger   *ledgermocks.Messenger
		settings    *settingsmocks.Provider
	}
	type args struct {
		ctx context.Context
		req *model.SubmitOrderRequest
	}
	tests := []struct {
		name          string
		fields        fields
		args          args
		mockCall      func(f fields)
		wantTotal     int64
		wantLineCount int
		wantErr       bool
		wantErrCode   string
	}{
		{
			name: "success: single line repriced from catalog",
			fields: fields{
				orderRepo:   ordermocks.NewOrderRepository(t),
				productRepo: productmocks.NewProductRepository(t),
				locker:      lockmocks.NewLocker(t),
				messenger:   ledgermocks.NewMessenger(t),
				settings:    settingsmocks.NewProvider(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.SubmitOrderRequest{
					UserID:   "U123",
					UserName: "Amy",
					Items: []model.SubmitOrderItem{
						{PID: "P_1", Spec: "黑色", Qty: 2},
					},
				},
			},
			mockCall: func(f fields) {
				f.locker.
					On("Acquire", mock.Anything).
					Return(func() {}, nil).
					Once()
				f.productRepo.
					On("GetByPID", mock.Anything, "P_1").
					Return(&model.ProductEntity{
						PID:    "P_1",
						Name:   "保溫瓶",
						Price:  250,
						Status: constant.ProductStatusOnSale,
					}, nil).
					Once()
				f.orderRepo.
					On("InsertBatch", mock.Anything, mock.MatchedBy(func(rows []model.OrderEntity) bool {
						if len(rows) != 1 {
							return false
						}
						row := rows[0]
						return strings.HasPrefix(row.OrderID, constant.OrderIDPrefix) &&
							!strings.Contains(row.OrderID, "-") &&
							row.ItemName == "保溫瓶" &&
							row.Spec == "黑色" &&
							row.Qty == 2 &&
							row.TotalAmount == 500 &&
							row.OrderStatus == constant.OrderStatusUnpaid
					})).
					Return(nil).
					Once()
				f.settings.
					On("Get", mock.Anything, constant.ConfigKeyAdminID).
					Return("Uadmin", true).
					Once()
				f.messenger.
					On("PushText", mock.Anything, "Uadmin", mock.MatchedBy(func(text string) bool {
						return strings.Contains(text, "$500")
					})).
					Return(nil).
					Once()
			},
			wantTotal:     500,
			wantLineCount: 1,
		},
		{
			name: "success: multi-line batch numbered, sold out line skipped",
			fields: fields{
				orderRepo:   ordermocks.NewOrderRepository(t),
				productRepo: productmocks.NewProductRepository(t),
				locker:      lockmocks.NewLocker(t),
				messenger:   ledgermocks.NewMessenger(t),
				settings:    settingsmocks.NewProvider(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.SubmitOrderRequest{
					UserID:   "U123",
					UserName: "Amy",
					Items: []model.SubmitOrderItem{
						{PID: "P_1", Qty: 1},
						{PID: "P_2", Qty: 3},
						{PID: "P_3", Qty: 1},
					},
				},
			},
			mockCall: func(f fields) {
				f.locker.
					On("Acquire", mock.Anything).
					Return(func() {}, nil).
					Once()
				f.productRepo.
					On("GetByPID", mock.Anything, "P_1").
					Return(&model.ProductEntity{PID: "P_1", Name: "A", Price: 100, Status: constant.ProductStatusOnSale}, nil).
					Once()
				f.productRepo.
					On("GetByPID", mock.Anything, "P_2").
					Return(&model.ProductEntity{PID: "P_2", Name: "B", Price: 50, Status: constant.ProductStatusSoldOut}, nil).
					Once()
				f.productRepo.
					On("GetByPID", mock.Anything, "P_3").
					Return(&model.ProductEntity{PID: "P_3", Name: "C", Price: 200, Status: constant.ProductStatusOnSale}, nil).
					Once()
				f.orderRepo.
					On("InsertBatch", mock.Anything, mock.MatchedBy(func(rows []model.OrderEntity) bool {
						return len(rows) == 2 &&
							strings.HasSuffix(rows[0].OrderID, "-1") &&
							strings.HasSuffix(rows[1].OrderID, "-2") &&
							rows[0].TotalAmount == 100 &&
							rows[1].TotalAmount == 200
					})).
					Return(nil).
					Once()
				f.settings.
					On("Get", mock.Anything, constant.ConfigKeyAdminID).
					Return("Uadmin", true).
					Once()
				f.messenger.
					On("PushText", mock.Anything, "Uadmin", mock.Anything).
					Return(nil).
					Once()
			},
			wantTotal:     300,
			wantLineCount: 2,
		},
		{
			name: "error: empty cart",
			fields: fields{
				orderRepo:   ordermocks.NewOrderRepository(t),
				productRepo: productmocks.NewProductRepository(t),
				locker:      lockmocks.NewLocker(t),
				messenger:   ledgermocks.NewMessenger(t),
				settings:    settingsmocks.NewProvider(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.SubmitOrderRequest{UserID: "U123", Items: nil},
			},
			wantErr:     true,
			wantErrCode: constant.ErrorTypeCode[constant.ErrCartEmpty],
		},
		{
			name: "error: every line invalid",
			fields: fields{
				orderRepo:   ordermocks.NewOrderRepository(t),
				productRepo: productmocks.NewProductRepository(t),
				locker:      lockmocks.NewLocker(t),
				messenger:   ledgermocks.NewMessenger(t),
				settings:    settingsmocks.NewProvider(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.SubmitOrderRequest{
					UserID: "U123",
					Items: []model.SubmitOrderItem{
						{PID: "P_404", Qty: 1},
					},
				},
			},
			mockCall: func(f fields) {
				f.locker.
					On("Acquire", mock.Anything).
					Return(func() {}, nil).
					Once()
				f.productRepo.
					On("GetByPID", mock.Anything, "P_404").
					Return(nil, nil).
					Once()
			},
			wantErr:     true,
			wantErrCode: constant.ErrorTypeCode[constant.ErrCartEmpty],
		},
		{
			name: "error: store lock busy",
			fields: fields{
				orderRepo:   ordermocks.NewOrderRepository(t),
				productRepo: productmocks.NewProductRepository(t),
				locker:      lockmocks.NewLocker(t),
				messenger:   ledgermocks.NewMessenger(t),
				settings:    settingsmocks.NewProvider(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.SubmitOrderRequest{
					UserID: "U123",
					Items:  []model.SubmitOrderItem{{PID: "P_1", Qty: 1}},
				},
			},
			mockCall: func(f fields) {
				f.locker.
					On("Acquire", mock.Anything).
					Return(nil, lockrepo.ErrNotAcquired).
					Once()
			},
			wantErr:     true,
			wantErrCode: constant.ErrorTypeCode[constant.ErrSystemBusy],
		},
		{
			name: "error: insert fails",
			fields: fields{
				orderRepo:   ordermocks.NewOrderRepository(t),
				productRepo: productmocks.NewProductRepository(t),
				locker:      lockmocks.NewLocker(t),
				messenger:   ledgermocks.NewMessenger(t),
				settings:    settingsmocks.NewProvider(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.SubmitOrderRequest{
					UserID: "U123",
					Items:  []model.SubmitOrderItem{{PID: "P_1", Qty: 1}},
				},
			},
			mockCall: func(f fields) {
				f.locker.
					On("Acquire", mock.Anything).
					Return(func() {}, nil).
					Once()
				f.productRepo.
					On("GetByPID", mock.Anything, "P_1").
					Return(&model.ProductEntity{PID: "P_1", Name: "A", Price: 100, Status: constant.ProductStatusOnSale}, nil).
					Once()
				f.orderRepo.
					On("InsertBatch", mock.Anything, mock.Anything).
					Return(errors.New("db error")).
					Once()
			},
			wantErr:     true,
			wantErrCode: constant.ErrorTypeCode[constant.ErrInternal],
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				ttFields := tt.fields
				tt.mockCall(ttFields)
			}
			app := appledger.NewLedgerApp(tt.fields.orderRepo, tt.fields.productRepo, tt.fields.locker, nil, tt.fields.messenger, tt.fields.settings)

			got, err := app.Submit(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Submit() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != tt.wantErrCode {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), tt.wantErrCode)
				}
				return
			}

			if !strings.HasPrefix(got.OrderID, constant.OrderIDPrefix) {
				t.Fatalf("Submit() order id = %s, want %s prefix", got.OrderID, constant.OrderIDPrefix)
			}
			if got.TotalAmount != tt.wantTotal {
				t.Fatalf("Submit() total = %d, want %d", got.TotalAmount, tt.wantTotal)
			}
			if got.LineCount != tt.wantLineCount {
				t.Fatalf("Submit() line count = %d, want %d", got.LineCount, tt.wantLineCount)
			}
		})
	}
}

func TestLedgerApp_SetStatus(t *testing.T) {
	type fields struct {
		orderRepo *ordermocks.OrderRepository
		locker    *lockmocks.Locker
	}
	type args struct {
		ctx     context.Context
		orderID string
		status  string
	}
	tests := []struct {
		name        string
		fields      fields
		args        args
		mockCall    func(f fields)
		wantErr     bool
		wantErrCode string
	}{
		{
			name: "success: batch id updates every sub-line",
			fields: fields{
				orderRepo: ordermocks.NewOrderRepository(t),
				locker:    lockmocks.NewLocker(t),
			},
			args: args{
				ctx:     context.Background(),
				orderID: "ORD_1700000000000",
				status:  "paid",
			},
			mockCall: func(f fields) {
				f.locker.
					On("Acquire", mock.Anything).
					Return(func() {}, nil).
					Once()
				f.orderRepo.
					On("UpdateStatus", mock.Anything, "ORD_1700000000000", "paid").
					Return(int64(3), nil).
					Once()
			},
		},
		{
			name: "error: no row matches",
			fields: fields{
				orderRepo: ordermocks.NewOrderRepository(t),
				locker:    lockmocks.NewLocker(t),
			},
			args: args{
				ctx:     context.Background(),
				orderID: "ORD_404",
				status:  "paid",
			},
			mockCall: func(f fields) {
				f.locker.
					On("Acquire", mock.Anything).
					Return(func() {}, nil).
					Once()
				f.orderRepo.
					On("UpdateStatus", mock.Anything, "ORD_404", "paid").
					Return(int64(0), nil).
					Once()
			},
			wantErr:     true,
			wantErrCode: constant.ErrorTypeCode[constant.ErrOrderNotFound],
		},
		{
			name: "error: store lock busy",
			fields: fields{
				orderRepo: ordermocks.NewOrderRepository(t),
				locker:    lockmocks.NewLocker(t),
			},
			args: args{
				ctx:     context.Background(),
				orderID: "ORD_1",
				status:  "paid",
			},
			mockCall: func(f fields) {
				f.locker.
					On("Acquire", mock.Anything).
					Return(nil, lockrepo.ErrNotAcquired).
					Once()
			},
			wantErr:     true,
			wantErrCode: constant.ErrorTypeCode[constant.ErrSystemBusy],
		},
		{
			name: "error: repository UpdateStatus returns error",
			fields: fields{
				orderRepo: ordermocks.NewOrderRepository(t),
				locker:    lockmocks.NewLocker(t),
			},
			args: args{
				ctx:     context.Background(),
				orderID: "ORD_1",
				status:  "paid",
			},
			mockCall: func(f fields) {
				f.locker.
					On("Acquire", mock.Anything).
					Return(func() {}, nil).
					Once()
				f.orderRepo.
					On("UpdateStatus", mock.Anything, "ORD_1", "paid").
					Return(int64(0), errors.New("db error")).
					Once()
			},
			wantErr:     true,
			wantErrCode: constant.ErrorTypeCode[constant.ErrInternal],
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				ttFields := tt.fields
				tt.mockCall(ttFields)
			}
			app := appledger.NewLedgerApp(tt.fields.orderRepo, nil, tt.fields.locker, nil, nil, nil)

			err := app.SetStatus(tt.args.ctx, tt.args.orderID, tt.args.status)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SetStatus() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != tt.wantErrCode {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), tt.wantErrCode)
				}
			}
		})
	}
}

func TestLedgerApp_GetByUser(t *testing.T) {
	orderTime := time.Date(2025, 1, 2, 12, 0, 0, 0, time.UTC)

	type fields struct {
		orderRepo *ordermocks.OrderRepository
	}
	type args struct {
		ctx    context.Context
		userID string
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		want     []model.OrderView
		wantErr  bool
	}{
		{
			name: "success: rows mapped to views with unit price and local time",
			fields: fields{
				orderRepo: ordermocks.NewOrderRepository(t),
			},
			args: args{
				ctx:    context.Background(),
				userID: "U123",
			},
			mockCall: func(f fields) {
				f.orderRepo.
					On("ListByUser", mock.Anything, "U123").
					Return([]model.OrderEntity{
						{
							OrderID:     "ORD_1-1",
							OrderTime:   orderTime,
							UserName:    "Amy",
							ItemName:    "保溫瓶",
							Spec:        "黑色",
							Qty:         2,
							TotalAmount: 500,
							OrderStatus: "unpaid",
						},
					}, nil).
					Once()
			},
			want: []model.OrderView{
				{
					OrderID:  "ORD_1-1",
					Time:     "2025/01/02 20:00",
					UserName: "Amy",
					ItemName: "保溫瓶",
					Spec:     "黑色",
					Qty:      2,
					Price:    250,
					Total:    500,
					Status:   "unpaid",
				},
			},
		},
		{
			name: "success: no orders yields empty list",
			fields: fields{
				orderRepo: ordermocks.NewOrderRepository(t),
			},
			args: args{
				ctx:    context.Background(),
				userID: "U999",
			},
			mockCall: func(f fields) {
				f.orderRepo.
					On("ListByUser", mock.Anything, "U999").
					Return([]model.OrderEntity{}, nil).
					Once()
			},
			want: []model.OrderView{},
		},
		{
			name: "error: repository ListByUser returns error",
			fields: fields{
				orderRepo: ordermocks.NewOrderRepository(t),
			},
			args: args{
				ctx:    context.Background(),
				userID: "U123",
			},
			mockCall: func(f fields) {
				f.orderRepo.
					On("ListByUser", mock.Anything, "U123").
					Return(nil, errors.New("db error")).
					Once()
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				ttFields := tt.fields
				tt.mockCall(ttFields)
			}
			app := appledger.NewLedgerApp(tt.fields.orderRepo, nil, nil, nil, nil, nil)

			got, err := app.GetByUser(tt.args.ctx, tt.args.userID)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetByUser() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("GetByUser() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLedgerApp_GetByOrderID(t *testing.T) {
	type fields struct {
		orderRepo *ordermocks.OrderRepository
	}
	tests := []struct {
		name        string
		fields      fields
		orderID     string
		mockCall    func(f fields)
		wantErr     bool
		wantErrCode string
	}{
		{
			name: "success: first row of the batch",
			fields: fields{
				orderRepo: ordermocks.NewOrderRepository(t),
			},
			orderID: "ORD_1",
			mockCall: func(f fields) {
				f.orderRepo.
					On("GetByOrderID", mock.Anything, "ORD_1").
					Return(&model.OrderEntity{
						OrderID:     "ORD_1",
						OrderTime:   time.Date(2025, 1, 2, 12, 0, 0, 0, time.UTC),
						Qty:         1,
						TotalAmount: 100,
					}, nil).
					Once()
			},
		},
		{
			name: "error: unknown order id",
			fields: fields{
				orderRepo: ordermocks.NewOrderRepository(t),
			},
			orderID: "ORD_404",
			mockCall: func(f fields) {
				f.orderRepo.
					On("GetByOrderID", mock.Anything, "ORD_404").
					Return(nil, nil).
					Once()
			},
			wantErr:     true,
			wantErrCode: constant.ErrorTypeCode[constant.ErrOrderNotFound],
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				ttFields := tt.fields
				tt.mockCall(ttFields)
			}
			app := appledger.NewLedgerApp(tt.fields.orderRepo, nil, nil, nil, nil, nil)

			got, err := app.GetByOrderID(context.Background(), tt.orderID)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetByOrderID() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != tt.wantErrCode {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), tt.wantErrCode)
				}
				return
			}

			if got.OrderID != tt.orderID {
				t.Fatalf("GetByOrderID() order id = %s, want %s", got.OrderID, tt.orderID)
			}
		})
	}
}
