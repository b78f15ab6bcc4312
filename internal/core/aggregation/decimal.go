package aggregation

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// ExtractDecimal pulls a numeric value from a decoded record by field name.
// ok is false if the field is missing, null, or not a recognized numeric type.
// JSON numbers decode to float64 (or json.Number with UseNumber); both convert
// to an exact decimal representation.
func ExtractDecimal(data map[string]interface{}, field string) (decimal.Decimal, bool) {
	if field == "" {
		return decimal.Zero, false
	}
	v, ok := data[field]
	if !ok || v == nil {
		return decimal.Zero, false
	}
	switch val := v.(type) {
	case float64:
		return decimal.NewFromFloat(val), true
	case float32:
		return decimal.NewFromFloat32(val), true
	case int:
		return decimal.NewFromInt(int64(val)), true
	case int64:
		return decimal.NewFromInt(val), true
	case int32:
		return decimal.NewFromInt(int64(val)), true
	case json.Number:
		d, err := decimal.NewFromString(val.String())
		if err == nil {
			return d, true
		}
	case string:
		d, err := decimal.NewFromString(val)
		if err == nil {
			return d, true
		}
	}
	return decimal.Zero, false
}
