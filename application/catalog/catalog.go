package catalog

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/yuhsuan-lin/daigou-bot/constant"
	"github.com/yuhsuan-lin/daigou-bot/model"
	lockrepo "github.com/yuhsuan-lin/daigou-bot/repository/lock"
	productrepo "github.com/yuhsuan-lin/daigou-bot/repository/product"
	cerr "github.com/yuhsuan-lin/daigou-bot/utils/errors"
	"github.com/yuhsuan-lin/daigou-bot/utils/logger"
	"go.uber.org/zap"
)

type CatalogApp interface {
	GetProduct(ctx context.Context, pid string) (*model.ProductEntity, error)
	ListProducts(ctx context.Context) ([]model.ProductEntity, error)
	AddProduct(ctx context.Context, req *model.AddProductRequest) (*model.ProductEntity, error)
	UpdateProduct(ctx context.Context, req *model.UpdateProductRequest) error
	DeleteProduct(ctx context.Context, pid string) error
	MarkStatus(ctx context.Context, pid string, status constant.ProductStatus) (string, error)
}

type catalogAppImpl struct {
	productRepo productrepo.ProductRepository
	locker      lockrepo.Locker
}

func NewCatalogApp(productRepo productrepo.ProductRepository, locker lockrepo.Locker) CatalogApp {
	return &catalogAppImpl{productRepo: productRepo, locker: locker}
}

func (s *catalogAppImpl) GetProduct(ctx context.Context, pid string) (*model.ProductEntity, error) {
	product, err := s.productRepo.GetByPID(ctx, pid)
	if err != nil {
		logger.Error("[GetProduct] error productRepo.GetByPID", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	if product == nil {
		return nil, cerr.SetCustomError(constant.ErrProductNotFound)
	}
	return product, nil
}

func (s *catalogAppImpl) ListProducts(ctx context.Context) ([]model.ProductEntity, error) {
	items, err := s.productRepo.ListVisible(ctx)
	if err != nil {
		logger.Error("[ListProducts] error productRepo.ListVisible", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	return items, nil
}

func (s *catalogAppImpl) AddProduct(ctx context.Context, req *model.AddProductRequest) (*model.ProductEntity, error) {
	release, err := s.acquireLock(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	product := &model.ProductEntity{
		PID:       constant.ProductIDPrefix + strconv.FormatInt(time.Now().UnixMilli(), 10),
		Name:      req.Name,
		Price:     req.Price,
		ImageURL:  req.ImageURL,
		Status:    constant.ProductStatusOnSale,
		CreatedAt: time.Now(),
	}

	if err := s.productRepo.Insert(ctx, product); err != nil {
		logger.Error("[AddProduct] error productRepo.Insert", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	return product, nil
}

func (s *catalogAppImpl) UpdateProduct(ctx context.Context, req *model.UpdateProductRequest) error {
	if !constant.ValidProductStatus(req.Status) {
		return cerr.SetCustomError(constant.ErrInvalidRequest)
	}

	release, err := s.acquireLock(ctx)
	if err != nil {
		return err
	}
	defer release()

	matched, err := s.productRepo.Update(ctx, &model.ProductEntity{
		PID:      req.PID,
		Name:     req.Name,
		Price:    req.Price,
		ImageURL: req.ImageURL,
		Status:   req.Status,
	})
	if err != nil {
		logger.Error("[UpdateProduct] error productRepo.Update", zap.String("error", err.Error()))
		return cerr.SetCustomError(constant.ErrInternal)
	}
	if !matched {
		return cerr.SetCustomError(constant.ErrProductNotFound)
	}
	return nil
}

func (s *catalogAppImpl) DeleteProduct(ctx context.Context, pid string) error {
	release, err := s.acquireLock(ctx)
	if err != nil {
		return err
	}
	defer release()

	matched, err := s.productRepo.Delete(ctx, pid)
	if err != nil {
		logger.Error("[DeleteProduct] error productRepo.Delete", zap.String("error", err.Error()))
		return cerr.SetCustomError(constant.ErrInternal)
	}
	if !matched {
		return cerr.SetCustomError(constant.ErrProductNotFound)
	}
	return nil
}

// MarkStatus flips the listing state of one product and returns its name for
// confirmation messaging. Held under the store lock like every other mutation.
func (s *catalogAppImpl) MarkStatus(ctx context.Context, pid string, status constant.ProductStatus) (string, error) {
	if !constant.ValidProductStatus(status) {
		return "", cerr.SetCustomError(constant.ErrInvalidRequest)
	}

	release, err := s.acquireLock(ctx)
	if err != nil {
		return "", err
	}
	defer release()

	product, err := s.productRepo.GetByPID(ctx, pid)
	if err != nil {
		logger.Error("[MarkStatus] error productRepo.GetByPID", zap.String("error", err.Error()))
		return "", cerr.SetCustomError(constant.ErrInternal)
	}
	if product == nil {
		return "", cerr.SetCustomError(constant.ErrProductNotFound)
	}

	if _, err := s.productRepo.UpdateStatus(ctx, pid, status); err != nil {
		logger.Error("[MarkStatus] error productRepo.UpdateStatus", zap.String("error", err.Error()))
		return "", cerr.SetCustomError(constant.ErrInternal)
	}
	return product.Name, nil
}

func (s *catalogAppImpl) acquireLock(ctx context.Context) (func(), error) {
	release, err := s.locker.Acquire(ctx)
	if err != nil {
		if errors.Is(err, lockrepo.ErrNotAcquired) {
			return nil, cerr.SetCustomError(constant.ErrSystemBusy)
		}
		logger.Error("[Catalog] error locker.Acquire", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	return release, nil
}
