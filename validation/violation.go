package validation

import (
	"fmt"
	"strings"
)

// 违规代码
const (
	CodeRequired      = "required"
	CodeInvalidType   = "invalid_type"
	CodeTooSmall      = "too_small"
	CodeTooBig        = "too_big"
	CodeInvalidString = "invalid_string"
	CodeInvalid       = "invalid"
)

// Violation 单个字段的校验失败
type Violation struct {
	Path    string `json:"path"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Violations 字段校验失败列表
type Violations []Violation

// Error 实现 error 接口
func (v Violations) Error() string {
	if len(v) == 0 {
		return "validation failed"
	}
	parts := make([]string, len(v))
	for i, violation := range v {
		parts[i] = fmt.Sprintf("%s: %s", violation.Path, violation.Message)
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// Has 判断字段是否存在校验失败
func (v Violations) Has(path string) bool {
	for _, violation := range v {
		if violation.Path == path {
			return true
		}
	}
	return false
}

// Codes 返回字段对应的违规代码
func (v Violations) Codes(path string) []string {
	var codes []string
	for _, violation := range v {
		if violation.Path == path {
			codes = append(codes, violation.Code)
		}
	}
	return codes
}
