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

const ownerEntity = "Owner"

// OwnerService 车主服务
type OwnerService struct {
	repo     repository.OwnerRepository
	notifier ChangeNotifier
	logger   *zap.Logger
}

// NewOwnerService 创建车主服务实例
func NewOwnerService(repo repository.OwnerRepository, notifier ChangeNotifier, logger *zap.Logger) *OwnerService {
	return &OwnerService{
		repo:     repo,
		notifier: notifierOrNop(notifier),
		logger:   logger,
	}
}

// GetAllOwners 获取所有车主
func (s *OwnerService) GetAllOwners(ctx context.Context) ([]models.Owner, error) {
	owners, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, storeError(s.logger, ownerEntity, "list", err)
	}
	return owners, nil
}

// GetOwnerByID 根据ID获取车主
func (s *OwnerService) GetOwnerByID(ctx context.Context, id int) (*models.Owner, error) {
	owner, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(s.logger, ownerEntity, "get", err)
	}
	return owner, nil
}

// CreateOwner 创建车主
func (s *OwnerService) CreateOwner(ctx context.Context, payload map[string]interface{}) (*models.Owner, error) {
	input, violations := validation.ParseOwner(payload, validation.Create)
	if len(violations) > 0 {
		return nil, utils.NewValidationError(violations)
	}

	owner, err := s.repo.Create(ctx, input)
	if err != nil {
		return nil, storeError(s.logger, ownerEntity, "create", err)
	}

	s.notifier.Publish(types.NewChangeEvent(types.EntityOwners, types.ActionCreated, owner.ID))
	return owner, nil
}

// UpdateOwner 更新车主，未提供的字段保持不变
func (s *OwnerService) UpdateOwner(ctx context.Context, id int, payload map[string]interface{}) (*models.Owner, error) {
	input, violations := validation.ParseOwner(payload, validation.Update)
	if len(violations) > 0 {
		return nil, utils.NewValidationError(violations)
	}

	owner, err := s.repo.Update(ctx, id, input)
	if err != nil {
		return nil, storeError(s.logger, ownerEntity, "update", err)
	}

	s.notifier.Publish(types.NewChangeEvent(types.EntityOwners, types.ActionUpdated, owner.ID))
	return owner, nil
}

// DeleteOwner 删除车主，仍有汽车引用时返回冲突
func (s *OwnerService) DeleteOwner(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return storeError(s.logger, ownerEntity, "delete", err)
	}

	s.notifier.Publish(types.NewChangeEvent(types.EntityOwners, types.ActionDeleted, id))
	return nil
}
