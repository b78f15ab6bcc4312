package v1

import (
	"fmt"
	"time"
)

// Column names of the source data table that clients may project.
const (
	FieldTS                 = "ts"
	FieldWindSpeed          = "wind_speed"
	FieldPower              = "power"
	FieldAmbientTemperature = "ambient_temperature"
)

// Fields is the projectable schema, in response order.
var Fields = []string{FieldTS, FieldWindSpeed, FieldPower, FieldAmbientTemperature}

// MeasurementFields are the numeric columns, excluding the timestamp.
var MeasurementFields = []string{FieldWindSpeed, FieldPower, FieldAmbientTemperature}

// DataPoint is one row of the source table as exposed over HTTP.
// Absent (NULL or not projected) measurements are omitted from the payload.
type DataPoint struct {
	TS                 time.Time `json:"ts"`
	WindSpeed          *float64  `json:"wind_speed,omitempty"`
	Power              *float64  `json:"power,omitempty"`
	AmbientTemperature *float64  `json:"ambient_temperature,omitempty"`
}

// Set assigns a measurement by column name.
func (d *DataPoint) Set(field string, v *float64) error {
	switch field {
	case FieldWindSpeed:
		d.WindSpeed = v
	case FieldPower:
		d.Power = v
	case FieldAmbientTemperature:
		d.AmbientTemperature = v
	default:
		return fmt.Errorf("unknown measurement field %q", field)
	}
	return nil
}

// Paging describes where a Page sits in the full result set.
type Paging struct {
	Page         int   `json:"page"`
	TotalPages   int   `json:"total_pages"`
	ItemsPerPage int   `json:"items_per_page"`
	TotalItems   int64 `json:"total_items"`
	HasNext      bool  `json:"has_next"`
}

// Page is the response body of the data listing endpoint.
type Page struct {
	Data   []DataPoint `json:"data"`
	Paging Paging      `json:"paging"`
}

// VerifyResponse is returned by the key verification endpoint.
type VerifyResponse struct {
	Valid    bool   `json:"valid"`
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Message  string `json:"message"`
}
