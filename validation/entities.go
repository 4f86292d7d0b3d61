package validation

import (
	"strconv"

	"github.com/jaythan-dev/projeto-concessionaria/models"
)

var brandRules = []rule{
	{field: "name", kind: kindString, tag: "min=2"},
}

var ownerRules = []rule{
	{field: "name", kind: kindString, tag: "min=2"},
	{field: "email", kind: kindString, tag: "email"},
}

var carRules = []rule{
	{field: "model", kind: kindString, tag: "min=1"},
	{field: "year", kind: kindInt, tag: "min=" + strconv.Itoa(models.MinCarYear)},
	{field: "brandId", kind: kindInt},
	{field: "ownerId", kind: kindInt},
}

// ParseBrand 校验品牌参数
func ParseBrand(raw map[string]interface{}, mode Mode) (models.BrandInput, Violations) {
	values, violations := checkFields(raw, brandRules, mode)
	if len(violations) > 0 {
		return models.BrandInput{}, violations
	}
	return models.BrandInput{
		Name: stringField(values, "name"),
	}, nil
}

// ParseOwner 校验车主参数
func ParseOwner(raw map[string]interface{}, mode Mode) (models.OwnerInput, Violations) {
	values, violations := checkFields(raw, ownerRules, mode)
	if len(violations) > 0 {
		return models.OwnerInput{}, violations
	}
	return models.OwnerInput{
		Name:  stringField(values, "name"),
		Email: stringField(values, "email"),
	}, nil
}

// ParseCar 校验汽车参数，不检查品牌和车主是否存在
func ParseCar(raw map[string]interface{}, mode Mode) (models.CarInput, Violations) {
	values, violations := checkFields(raw, carRules, mode)
	if len(violations) > 0 {
		return models.CarInput{}, violations
	}
	return models.CarInput{
		Model:   stringField(values, "model"),
		Year:    intField(values, "year"),
		BrandID: intField(values, "brandId"),
		OwnerID: intField(values, "ownerId"),
	}, nil
}

func stringField(values map[string]interface{}, field string) *string {
	if v, ok := values[field].(string); ok {
		return &v
	}
	return nil
}

func intField(values map[string]interface{}, field string) *int {
	if v, ok := values[field].(int); ok {
		return &v
	}
	return nil
}
