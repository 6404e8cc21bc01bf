package types

import (
	"encoding/json"
	"math"
	"strconv"
)

// Well-known record field names. The storage schema promotes these to
// fixed columns; everything else a source file carries lives in the
// extra-data channel.
const (
	FieldID           = "id"
	FieldCreatedAt    = "created_at"
	FieldExtraData    = "extra_data"
	FieldBusinessName = "business_name"
	FieldLocation     = "location"
	FieldPhone        = "phone"
	FieldAnyDesk      = "anydesk"
	FieldSourceFile   = "source_file"
)

// PriorityColumns is the fixed set of columns shown first in any tabular
// view, in this order, whenever present.
var PriorityColumns = []string{
	FieldBusinessName,
	FieldLocation,
	FieldPhone,
	FieldAnyDesk,
	FieldSourceFile,
}

// SystemColumns are system-managed fields excluded from user-facing
// column and field enumeration. The extra-data field is a JSON channel,
// never itself a column.
var SystemColumns = map[string]bool{
	FieldID:        true,
	FieldCreatedAt: true,
	FieldExtraData: true,
}

// Record is one client/business entity with an open-ended, backend-driven
// field set. Values are scalars (string, number, bool, nil); the
// extra-data field holds a JSON-encoded object as a string. The shape is
// deliberately a map, not a struct: column names are arbitrary and often
// Hebrew, and the schema grows with every uploaded file.
type Record map[string]any

// ID returns the record's numeric identifier, or 0 when absent.
func (r Record) ID() int64 {
	switch v := r[FieldID].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	case string:
		n, _ := strconv.ParseInt(v, 10, 64)
		return n
	}
	return 0
}

// StringField returns the display text of a field, or "" when the field
// is absent, nil, or not a scalar.
func (r Record) StringField(key string) string {
	return Scalar(r[key])
}

// ExtraFields parses the record's extra-data JSON object. Malformed or
// missing extra data yields an empty map; the field is a display
// enhancement and parse failures are not surfaced.
func (r Record) ExtraFields() map[string]string {
	raw, ok := r[FieldExtraData].(string)
	if !ok || raw == "" {
		return map[string]string{}
	}
	var parsed map[string]any
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return map[string]string{}
	}
	out := make(map[string]string, len(parsed))
	for k, v := range parsed {
		out[k] = Scalar(v)
	}
	return out
}

// Scalar renders a scalar value as display text. Nil, absent, and
// composite values render as "".
func Scalar(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		// JSON numbers decode as float64; keep integral values clean.
		if t == math.Trunc(t) && !math.IsInf(t, 0) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	}
	return ""
}

// IsScalar reports whether v is a flat, editable field value. Objects and
// arrays belong to the extra-data channel, not to flat fields.
func IsScalar(v any) bool {
	switch v.(type) {
	case nil, string, int, int64, float64, bool:
		return true
	}
	return false
}

// DetailField is one aggregated field/value pair in the client-details
// response. The capitalized JSON keys match the wire format the
// dashboard consumes.
type DetailField struct {
	Field string `json:"Field"`
	Value string `json:"Value"`
}
