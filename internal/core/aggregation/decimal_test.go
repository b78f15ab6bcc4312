package aggregation

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestExtractDecimal(t *testing.T) {
	tests := []struct {
		name   string
		data   map[string]interface{}
		field  string
		want   decimal.Decimal
		wantOK bool
	}{
		{name: "empty field name", data: map[string]interface{}{"power": 1}, field: ""},
		{name: "missing field", data: map[string]interface{}{"power": 1}, field: "wind_speed"},
		{name: "null value", data: map[string]interface{}{"power": nil}, field: "power"},
		{name: "float64", data: map[string]interface{}{"power": 12.5}, field: "power", want: decimal.RequireFromString("12.5"), wantOK: true},
		{name: "float32", data: map[string]interface{}{"power": float32(7.25)}, field: "power", want: decimal.RequireFromString("7.25"), wantOK: true},
		{name: "int", data: map[string]interface{}{"power": 7}, field: "power", want: decimal.NewFromInt(7), wantOK: true},
		{name: "int32", data: map[string]interface{}{"power": int32(8)}, field: "power", want: decimal.NewFromInt(8), wantOK: true},
		{name: "int64", data: map[string]interface{}{"power": int64(9)}, field: "power", want: decimal.NewFromInt(9), wantOK: true},
		{name: "json number", data: map[string]interface{}{"power": json.Number("3.75")}, field: "power", want: decimal.RequireFromString("3.75"), wantOK: true},
		{name: "valid decimal string", data: map[string]interface{}{"power": "42.125"}, field: "power", want: decimal.RequireFromString("42.125"), wantOK: true},
		{name: "invalid string", data: map[string]interface{}{"power": "not-a-number"}, field: "power"},
		{name: "unsupported type", data: map[string]interface{}{"power": true}, field: "power"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ExtractDecimal(tc.data, tc.field)
			require.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				require.True(t, tc.want.Equal(got), "want=%s got=%s", tc.want.String(), got.String())
			}
		})
	}
}
