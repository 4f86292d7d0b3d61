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

const carEntity = "Car"

// CarService 汽车服务
type CarService struct {
	repo     repository.CarRepository
	notifier ChangeNotifier
	logger   *zap.Logger
}

// NewCarService 创建汽车服务实例
func NewCarService(repo repository.CarRepository, notifier ChangeNotifier, logger *zap.Logger) *CarService {
	return &CarService{
		repo:     repo,
		notifier: notifierOrNop(notifier),
		logger:   logger,
	}
}

// GetAllCars 获取所有汽车，包含品牌和车主
func (s *CarService) GetAllCars(ctx context.Context) ([]models.Car, error) {
	cars, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, storeError(s.logger, carEntity, "list", err)
	}
	return cars, nil
}

// GetCarByID 根据ID获取汽车
func (s *CarService) GetCarByID(ctx context.Context, id int) (*models.Car, error) {
	car, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(s.logger, carEntity, "get", err)
	}
	return car, nil
}

// CreateCar 创建汽车，品牌或车主不存在时返回约束错误
func (s *CarService) CreateCar(ctx context.Context, payload map[string]interface{}) (*models.Car, error) {
	input, violations := validation.ParseCar(payload, validation.Create)
	if len(violations) > 0 {
		return nil, utils.NewValidationError(violations)
	}

	car, err := s.repo.Create(ctx, input)
	if err != nil {
		return nil, storeError(s.logger, carEntity, "create", err)
	}

	s.notifier.Publish(types.NewChangeEvent(types.EntityCars, types.ActionCreated, car.ID))
	return car, nil
}

// UpdateCar 更新汽车，未提供的字段保持不变
func (s *CarService) UpdateCar(ctx context.Context, id int, payload map[string]interface{}) (*models.Car, error) {
	input, violations := validation.ParseCar(payload, validation.Update)
	if len(violations) > 0 {
		return nil, utils.NewValidationError(violations)
	}

	car, err := s.repo.Update(ctx, id, input)
	if err != nil {
		return nil, storeError(s.logger, carEntity, "update", err)
	}

	s.notifier.Publish(types.NewChangeEvent(types.EntityCars, types.ActionUpdated, car.ID))
	return car, nil
}

// DeleteCar 删除汽车
func (s *CarService) DeleteCar(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return storeError(s.logger, carEntity, "delete", err)
	}

	s.notifier.Publish(types.NewChangeEvent(types.EntityCars, types.ActionDeleted, id))
	return nil
}
