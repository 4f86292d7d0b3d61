package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/jaythan-dev/projeto-concessionaria/models"
	"github.com/jaythan-dev/projeto-concessionaria/repository"
	"github.com/jaythan-dev/projeto-concessionaria/types"
	"github.com/jaythan-dev/projeto-concessionaria/utils"
	"github.com/jaythan-dev/projeto-concessionaria/validation"
)

const brandEntity = "Brand"

// BrandService 品牌服务
type BrandService struct {
	repo     repository.BrandRepository
	notifier ChangeNotifier
	logger   *zap.Logger
}

// NewBrandService 创建品牌服务实例
func NewBrandService(repo repository.BrandRepository, notifier ChangeNotifier, logger *zap.Logger) *BrandService {
	return &BrandService{
		repo:     repo,
		notifier: notifierOrNop(notifier),
		logger:   logger,
	}
}

// GetAllBrands 获取所有品牌
func (s *BrandService) GetAllBrands(ctx context.Context) ([]models.Brand, error) {
	brands, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, storeError(s.logger, brandEntity, "list", err)
	}
	return brands, nil
}

// GetBrandByID 根据ID获取品牌
func (s *BrandService) GetBrandByID(ctx context.Context, id int) (*models.Brand, error) {
	brand, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(s.logger, brandEntity, "get", err)
	}
	return brand, nil
}

// CreateBrand 创建品牌
func (s *BrandService) CreateBrand(ctx context.Context, payload map[string]interface{}) (*models.Brand, error) {
	input, violations := validation.ParseBrand(payload, validation.Create)
	if len(violations) > 0 {
		return nil, utils.NewValidationError(violations)
	}

	brand, err := s.repo.Create(ctx, input)
	if err != nil {
		return nil, storeError(s.logger, brandEntity, "create", err)
	}

	s.notifier.Publish(types.NewChangeEvent(types.EntityBrands, types.ActionCreated, brand.ID))
	return brand, nil
}

// UpdateBrand 更新品牌，未提供的字段保持不变
func (s *BrandService) UpdateBrand(ctx context.Context, id int, payload map[string]interface{}) (*models.Brand, error) {
	input, violations := validation.ParseBrand(payload, validation.Update)
	if len(violations) > 0 {
		return nil, utils.NewValidationError(violations)
	}

	brand, err := s.repo.Update(ctx, id, input)
	if err != nil {
		return nil, storeError(s.logger, brandEntity, "update", err)
	}

	s.notifier.Publish(types.NewChangeEvent(types.EntityBrands, types.ActionUpdated, brand.ID))
	return brand, nil
}

// DeleteBrand 删除品牌，仍有汽车引用时返回冲突
func (s *BrandService) DeleteBrand(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return storeError(s.logger, brandEntity, "delete", err)
	}

	s.notifier.Publish(types.NewChangeEvent(types.EntityBrands, types.ActionDeleted, id))
	return nil
}
