package services

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/jaythan-dev/projeto-concessionaria/repository"
	"github.com/jaythan-dev/projeto-concessionaria/utils"
	"github.com/jaythan-dev/projeto-concessionaria/validation"
)

// codeInvalidReference 引用不存在时的违规代码
const codeInvalidReference = "invalid_reference"

// storeError 将存储层错误映射为业务错误
func storeError(logger *zap.Logger, entity, op string, err error) error {
	var refErr *repository.ReferenceError
	switch {
	case errors.As(err, &refErr):
		return utils.NewConstraintError(validation.Violations{{
			Path:    refErr.Field,
			Code:    codeInvalidReference,
			Message: fmt.Sprintf("%s %d does not exist", refErr.Entity, refErr.ID),
		}}, err)
	case errors.Is(err, repository.ErrInvalidReference):
		return utils.NewConstraintError(nil, err)
	case errors.Is(err, repository.ErrNotFound):
		return utils.NewNotFoundError(entity + " not found")
	case errors.Is(err, repository.ErrStillReferenced):
		return utils.NewConflictError(entity+" is still referenced by existing cars", err)
	default:
		logger.Error("store operation failed",
			zap.String("entity", entity),
			zap.String("op", op),
			zap.Error(err),
		)
		return utils.NewInternalError(err)
	}
}
