package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jaythan-dev/projeto-concessionaria/validation"
)

// ErrorResponse 错误响应结构
type ErrorResponse struct {
	Error  string                `json:"error"`
	Issues validation.Violations `json:"issues,omitempty"`
}

// MessageResponse 确认响应结构
type MessageResponse struct {
	Message string `json:"message"`
}

// Success 成功响应，直接返回实体
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created 创建成功响应
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// Message 操作确认响应
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, MessageResponse{Message: message})
}

// Error 错误响应
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorResponse{Error: message})
}

// BadRequest 400错误响应
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// NotFound 404错误响应
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// Conflict 409错误响应
func Conflict(c *gin.Context, message string) {
	Error(c, http.StatusConflict, message)
}

// InternalServerError 500错误响应
func InternalServerError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "Internal server error")
}

// StatusCode 业务错误对应的 HTTP 状态码
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrValidationFailed), errors.Is(err, ErrConstraintViolation):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// HandleError 将业务错误写入响应，未知错误一律返回 500
func HandleError(c *gin.Context, err error) {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		_ = c.Error(err)
		InternalServerError(c)
		return
	}

	status := StatusCode(appErr)
	if status == http.StatusInternalServerError {
		_ = c.Error(appErr)
		InternalServerError(c)
		return
	}

	c.JSON(status, ErrorResponse{Error: appErr.Message, Issues: appErr.Violations})
}
