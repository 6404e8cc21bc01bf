package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordID(t *testing.T) {
	tests := []struct {
		name string
		rec  Record
		want int64
	}{
		{name: "int64 id", rec: Record{FieldID: int64(7)}, want: 7},
		{name: "float64 id from JSON decode", rec: Record{FieldID: float64(42)}, want: 42},
		{name: "string id", rec: Record{FieldID: "19"}, want: 19},
		{name: "missing id", rec: Record{}, want: 0},
		{name: "garbage id", rec: Record{FieldID: "abc"}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rec.ID())
		})
	}
}

func TestScalar(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{name: "string", in: "אבו סנאן", want: "אבו סנאן"},
		{name: "integral float", in: float64(350), want: "350"},
		{name: "fractional float", in: 12.5, want: "12.5"},
		{name: "int64", in: int64(3), want: "3"},
		{name: "bool", in: true, want: "true"},
		{name: "nil", in: nil, want: ""},
		{name: "map is not scalar", in: map[string]any{"a": 1}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Scalar(tt.in))
		})
	}
}

func TestExtraFields(t *testing.T) {
	t.Run("valid extra data", func(t *testing.T) {
		r := Record{FieldExtraData: `{"בעלים":"דני","ציוד":"מסוף"}`}
		got := r.ExtraFields()
		assert.Equal(t, "דני", got["בעלים"])
		assert.Equal(t, "מסוף", got["ציוד"])
	})

	t.Run("malformed extra data falls back to empty", func(t *testing.T) {
		r := Record{FieldExtraData: `{not json`}
		assert.Empty(t, r.ExtraFields())
	})

	t.Run("missing extra data", func(t *testing.T) {
		assert.Empty(t, Record{}.ExtraFields())
	})
}

func TestPageResultTotalPages(t *testing.T) {
	tests := []struct {
		name string
		res  PageResult
		want int
	}{
		{name: "exact multiple", res: PageResult{Total: 200, PerPage: 100}, want: 2},
		{name: "partial last page", res: PageResult{Total: 250, PerPage: 100}, want: 3},
		{name: "empty collection floors at one", res: PageResult{Total: 0, PerPage: 100}, want: 1},
		{name: "zero per-page guards division", res: PageResult{Total: 10}, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.res.TotalPages())
		})
	}
}

func TestClampPage(t *testing.T) {
	assert.Equal(t, 1, ClampPage(0))
	assert.Equal(t, 1, ClampPage(-3))
	assert.Equal(t, 5, ClampPage(5))
}

func TestConfigValidate(t *testing.T) {
	assert.ErrorIs(t, Config{}.Validate(), ErrDataDirEmpty)
	assert.ErrorIs(t, Config{DataDir: "d", PageSize: -1}.Validate(), ErrPageSizeInvalid)
	assert.NoError(t, Config{DataDir: "d", PageSize: 100}.Validate())
}
