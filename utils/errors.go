package utils

import (
	"errors"

	"github.com/jaythan-dev/projeto-concessionaria/validation"
)

var (
	// ErrValidationFailed 请求参数校验失败
	ErrValidationFailed = errors.New("validation failed")
	// ErrNotFound 记录不存在
	ErrNotFound = errors.New("not found")
	// ErrConstraintViolation 引用的记录不存在
	ErrConstraintViolation = errors.New("constraint violation")
	// ErrConflict 记录仍被引用，无法删除
	ErrConflict = errors.New("conflict")
	// ErrInternal 内部错误
	ErrInternal = errors.New("internal error")
)

// AppError 业务错误，Kind 为上面的哨兵错误之一
type AppError struct {
	Kind       error
	Message    string // 可以返回给调用方的信息
	Violations validation.Violations
	Err        error // 原始错误，只记录日志
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

// NewValidationError 校验失败
func NewValidationError(violations validation.Violations) *AppError {
	return &AppError{Kind: ErrValidationFailed, Message: "Validation failed", Violations: violations}
}

// NewNotFoundError 记录不存在
func NewNotFoundError(message string) *AppError {
	return &AppError{Kind: ErrNotFound, Message: message}
}

// NewConstraintError 外键引用无效
func NewConstraintError(violations validation.Violations, err error) *AppError {
	return &AppError{Kind: ErrConstraintViolation, Message: "Constraint violation", Violations: violations, Err: err}
}

// NewConflictError 删除仍被引用的记录
func NewConflictError(message string, err error) *AppError {
	return &AppError{Kind: ErrConflict, Message: message, Err: err}
}

// NewInternalError 内部错误，不向调用方暴露细节
func NewInternalError(err error) *AppError {
	return &AppError{Kind: ErrInternal, Message: "Internal server error", Err: err}
}
