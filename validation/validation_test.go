package validation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBrand(t *testing.T) {
	tests := []struct {
		name     string
		raw      map[string]interface{}
		mode     Mode
		wantCode string
	}{
		{name: "valid", raw: map[string]interface{}{"name": "Toyota"}, mode: Create},
		{name: "two characters", raw: map[string]interface{}{"name": "VW"}, mode: Create},
		{name: "one character", raw: map[string]interface{}{"name": "V"}, mode: Create, wantCode: CodeTooSmall},
		{name: "missing", raw: map[string]interface{}{}, mode: Create, wantCode: CodeRequired},
		{name: "nil payload", raw: nil, mode: Create, wantCode: CodeRequired},
		{name: "number", raw: map[string]interface{}{"name": float64(12)}, mode: Create, wantCode: CodeInvalidType},
		{name: "null", raw: map[string]interface{}{"name": nil}, mode: Create, wantCode: CodeInvalidType},
		{name: "null on update", raw: map[string]interface{}{"name": nil}, mode: Update, wantCode: CodeInvalidType},
		{name: "missing on update", raw: map[string]interface{}{}, mode: Update},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, violations := ParseBrand(tt.raw, tt.mode)
			if tt.wantCode == "" {
				assert.Empty(t, violations)
				return
			}
			require.Len(t, violations, 1)
			assert.Equal(t, "name", violations[0].Path)
			assert.Equal(t, tt.wantCode, violations[0].Code)
		})
	}
}

func TestParseBrandIgnoresUnknownFields(t *testing.T) {
	input, violations := ParseBrand(map[string]interface{}{"name": "Fiat", "id": float64(99), "extra": true}, Create)
	require.Empty(t, violations)
	require.NotNil(t, input.Name)
	assert.Equal(t, "Fiat", *input.Name)
}

func TestParseOwnerEmail(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{email: "a@b.co", valid: true},
		{email: "jo@x.com", valid: true},
		{email: "not-an-email", valid: false},
		{email: "", valid: false},
		{email: "missing@", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			_, violations := ParseOwner(map[string]interface{}{"name": "Jo", "email": tt.email}, Create)
			if tt.valid {
				assert.Empty(t, violations)
				return
			}
			assert.Equal(t, []string{CodeInvalidString}, violations.Codes("email"))
		})
	}
}

func TestParseOwnerName(t *testing.T) {
	_, violations := ParseOwner(map[string]interface{}{"name": "J", "email": "jo@x.com"}, Create)
	assert.True(t, violations.Has("name"))

	input, violations := ParseOwner(map[string]interface{}{"name": "Jo", "email": "jo@x.com"}, Create)
	require.Empty(t, violations)
	assert.Equal(t, "Jo", *input.Name)
	assert.Equal(t, "jo@x.com", *input.Email)
}

func TestParseOwnerReportsEveryField(t *testing.T) {
	_, violations := ParseOwner(map[string]interface{}{"name": true}, Create)
	require.Len(t, violations, 2)
	assert.Equal(t, "name", violations[0].Path)
	assert.Equal(t, CodeInvalidType, violations[0].Code)
	assert.Equal(t, "Expected string, received boolean", violations[0].Message)
	assert.Equal(t, "email", violations[1].Path)
	assert.Equal(t, CodeRequired, violations[1].Code)
}

func TestParseCarYear(t *testing.T) {
	tests := []struct {
		name     string
		year     interface{}
		wantCode string
	}{
		{name: "1885", year: float64(1885), wantCode: CodeTooSmall},
		{name: "1886", year: float64(1886)},
		{name: "2024", year: float64(2024)},
		{name: "json number", year: json.Number("2020")},
		{name: "go int", year: 2020},
		{name: "fraction", year: 2020.5, wantCode: CodeInvalidType},
		{name: "string", year: "2020", wantCode: CodeInvalidType},
		{name: "too big", year: float64(1e300), wantCode: CodeTooBig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := map[string]interface{}{
				"model":   "Corolla",
				"year":    tt.year,
				"brandId": float64(1),
				"ownerId": float64(1),
			}
			input, violations := ParseCar(raw, Create)
			if tt.wantCode == "" {
				require.Empty(t, violations)
				require.NotNil(t, input.Year)
				return
			}
			assert.Equal(t, []string{tt.wantCode}, violations.Codes("year"))
		})
	}
}

func TestParseCarFields(t *testing.T) {
	input, violations := ParseCar(map[string]interface{}{
		"model":   "Corolla",
		"year":    float64(2020),
		"brandId": float64(3),
		"ownerId": float64(7),
	}, Create)
	require.Empty(t, violations)
	assert.Equal(t, "Corolla", *input.Model)
	assert.Equal(t, 2020, *input.Year)
	assert.Equal(t, 3, *input.BrandID)
	assert.Equal(t, 7, *input.OwnerID)
}

func TestParseCarRejects(t *testing.T) {
	_, violations := ParseCar(map[string]interface{}{
		"model":   "",
		"brandId": 1.5,
		"ownerId": "1",
	}, Create)

	assert.Equal(t, []string{CodeTooSmall}, violations.Codes("model"))
	assert.Equal(t, []string{CodeRequired}, violations.Codes("year"))
	assert.Equal(t, []string{CodeInvalidType}, violations.Codes("brandId"))
	assert.Equal(t, []string{CodeInvalidType}, violations.Codes("ownerId"))
}

func TestParseCarPartialUpdate(t *testing.T) {
	input, violations := ParseCar(map[string]interface{}{"year": float64(1999)}, Update)
	require.Empty(t, violations)
	assert.Nil(t, input.Model)
	assert.Nil(t, input.BrandID)
	assert.Nil(t, input.OwnerID)
	assert.Equal(t, 1999, *input.Year)

	_, violations = ParseCar(map[string]interface{}{"year": float64(1800)}, Update)
	assert.True(t, violations.Has("year"))
}

func TestViolationsError(t *testing.T) {
	assert.Equal(t, "validation failed", Violations{}.Error())
	v := Violations{{Path: "name", Code: CodeRequired, Message: "Required"}}
	assert.Equal(t, "validation failed: name: Required", v.Error())
}
