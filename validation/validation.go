// Package validation checks untyped entity payloads before they reach the
// store. Every function here is pure: no I/O, no panics, and the result is
// either a typed input or a list of field violations.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
)

// Mode 校验模式
type Mode int

const (
	// Create 所有字段必填
	Create Mode = iota
	// Update 部分更新，缺省字段表示不修改
	Update
)

// maxSafeInteger JSON 可精确表示的最大整数
const maxSafeInteger = 1<<53 - 1

type fieldKind int

const (
	kindString fieldKind = iota
	kindInt
)

// rule 字段规则，tag 使用 validator 语法
type rule struct {
	field string
	kind  fieldKind
	tag   string
}

var validate = validator.New()

// checkFields 按规则检查字段，返回规范化后的值（string 或 int）
func checkFields(raw map[string]interface{}, rules []rule, mode Mode) (map[string]interface{}, Violations) {
	values := make(map[string]interface{}, len(rules))
	var violations Violations

	for _, r := range rules {
		value, present := raw[r.field]
		if !present {
			if mode == Create {
				violations = append(violations, Violation{Path: r.field, Code: CodeRequired, Message: "Required"})
			}
			continue
		}

		var (
			normalized interface{}
			v          *Violation
		)
		switch r.kind {
		case kindString:
			normalized, v = asString(r.field, value)
		case kindInt:
			normalized, v = asInt(r.field, value)
		default:
			v = &Violation{Path: r.field, Code: CodeInvalid, Message: "Unsupported field"}
		}
		if v != nil {
			violations = append(violations, *v)
			continue
		}

		if r.tag != "" {
			if v := applyTag(r.field, normalized, r.tag); v != nil {
				violations = append(violations, *v)
				continue
			}
		}
		values[r.field] = normalized
	}

	return values, violations
}

func asString(field string, value interface{}) (string, *Violation) {
	s, ok := value.(string)
	if !ok {
		return "", invalidType(field, "string", value)
	}
	return s, nil
}

func asInt(field string, value interface{}) (int, *Violation) {
	switch n := value.(type) {
	case int:
		return checkRange(field, float64(n))
	case int64:
		return checkRange(field, float64(n))
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, invalidType(field, "number", value)
		}
		if n != math.Trunc(n) {
			return 0, &Violation{Path: field, Code: CodeInvalidType, Message: "Expected integer, received float"}
		}
		return checkRange(field, n)
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return checkRange(field, float64(i))
		}
		f, err := n.Float64()
		if err != nil {
			return 0, invalidType(field, "number", value)
		}
		return asInt(field, f)
	default:
		return 0, invalidType(field, "number", value)
	}
}

func checkRange(field string, n float64) (int, *Violation) {
	if n > maxSafeInteger {
		return 0, &Violation{Path: field, Code: CodeTooBig, Message: fmt.Sprintf("Number must be less than or equal to %d", int64(maxSafeInteger))}
	}
	if n < -maxSafeInteger {
		return 0, &Violation{Path: field, Code: CodeTooSmall, Message: fmt.Sprintf("Number must be greater than or equal to %d", -int64(maxSafeInteger))}
	}
	return int(n), nil
}

func applyTag(field string, value interface{}, tag string) *Violation {
	err := validate.Var(value, tag)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &Violation{Path: field, Code: CodeInvalid, Message: "Invalid value"}
	}

	fe := fieldErrs[0]
	switch fe.Tag() {
	case "min":
		if _, isString := value.(string); isString {
			return &Violation{Path: field, Code: CodeTooSmall, Message: fmt.Sprintf("String must contain at least %s character(s)", fe.Param())}
		}
		return &Violation{Path: field, Code: CodeTooSmall, Message: fmt.Sprintf("Number must be greater than or equal to %s", fe.Param())}
	case "max":
		if _, isString := value.(string); isString {
			return &Violation{Path: field, Code: CodeTooBig, Message: fmt.Sprintf("String must contain at most %s character(s)", fe.Param())}
		}
		return &Violation{Path: field, Code: CodeTooBig, Message: fmt.Sprintf("Number must be less than or equal to %s", fe.Param())}
	case "email":
		return &Violation{Path: field, Code: CodeInvalidString, Message: "Invalid email"}
	default:
		return &Violation{Path: field, Code: CodeInvalid, Message: fmt.Sprintf("Failed on the '%s' rule", fe.Tag())}
	}
}

func invalidType(field, expected string, value interface{}) *Violation {
	return &Violation{
		Path:    field,
		Code:    CodeInvalidType,
		Message: fmt.Sprintf("Expected %s, received %s", expected, typeName(value)),
	}
}

func typeName(value interface{}) string {
	switch value.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64, float32, int, int64, json.Number:
		return "number"
	case []interface{}:
		return "array"
	case map[string]interface{}:
		return "object"
	default:
		return fmt.Sprintf("%T", value)
	}
}
