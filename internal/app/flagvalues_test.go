package app

import (
	"errors"
	"testing"
	"time"

	"github.com/blackwell-systems/cellarctl/internal/catalog"
	"github.com/blackwell-systems/cellarctl/internal/filter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntRangeValue(t *testing.T) {
	var r *filter.IntRange
	v := intRangeValue{&r}
	assert.Empty(t, v.String())

	require.NoError(t, v.Set("2015..2020"))
	assert.Equal(t, filter.IntRange{Min: 2015, Max: 2020}, *r)

	require.NoError(t, v.Set("2015.."))
	assert.Equal(t, 2015, r.Min)
	assert.Greater(t, r.Max, 9999)

	require.NoError(t, v.Set("..2000"))
	assert.Equal(t, filter.IntRange{Min: 0, Max: 2000}, *r)

	assert.Error(t, v.Set("2015"))
	assert.Error(t, v.Set("2020..2015"))
	assert.Error(t, v.Set("abc..2015"))
}

func TestFloatRangeValue(t *testing.T) {
	var r *filter.FloatRange
	v := floatRangeValue{&r}

	require.NoError(t, v.Set("12.5..40"))
	assert.Equal(t, filter.FloatRange{Min: 12.5, Max: 40}, *r)
	assert.Equal(t, "12.5..40", v.String())

	assert.Error(t, v.Set("40..12"))
}

func TestDateRangeValue(t *testing.T) {
	var r *filter.DateRange
	v := dateRangeValue{&r}

	require.NoError(t, v.Set("2024-01-01..2024-03-31"))
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), r.From)
	assert.Equal(t, "2024-01-01..2024-03-31", v.String())

	require.NoError(t, v.Set("2024-02-01.."))
	assert.Equal(t, 9999, r.To.Year())

	assert.Error(t, v.Set("01/02/2024..2024-03-01"))
	assert.Error(t, v.Set("2024-03-01..2024-01-01"))
}

func TestTriBoolValue(t *testing.T) {
	var b *bool
	v := triBoolValue{&b}
	assert.Empty(t, v.String(), "unset is distinct from false")

	require.NoError(t, v.Set("no"))
	require.NotNil(t, b)
	assert.False(t, *b)

	require.NoError(t, v.Set("YES"))
	assert.True(t, *b)

	assert.Error(t, v.Set("maybe"))
}

func TestQuantityValue(t *testing.T) {
	tests := []struct {
		raw  string
		want filter.QuantityFilter
	}{
		{">=3", filter.QuantityFilter{Comparator: filter.AtLeast, Value: 3}},
		{"<= 2", filter.QuantityFilter{Comparator: filter.AtMost, Value: 2}},
		{"=0", filter.QuantityFilter{Comparator: filter.Equal, Value: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			var q *filter.QuantityFilter
			require.NoError(t, quantityValue{&q}.Set(tt.raw))
			assert.Equal(t, tt.want, *q)
		})
	}

	var q *filter.QuantityFilter
	for _, bad := range []string{"3", ">=x", ">=-1", "<3"} {
		assert.Error(t, quantityValue{&q}.Set(bad), bad)
	}
}

func TestEnumValues(t *testing.T) {
	var styles []catalog.Style
	sv := enumSliceValue[catalog.Style]{target: &styles, parse: catalog.ParseStyle, kind: "style"}
	require.NoError(t, sv.Set("red,white"))
	require.NoError(t, sv.Set("rose"))
	assert.Equal(t, []catalog.Style{catalog.StyleRed, catalog.StyleWhite, catalog.StyleRose}, styles)
	assert.Equal(t, "red,white,rose", sv.String())
	assert.Error(t, sv.Set("blue"))

	var preset filter.Preset
	pv := enumValue[filter.Preset]{target: &preset, parse: enumParser("preset", filter.AllPresets), kind: "preset"}
	require.NoError(t, pv.Set("ExpiringSoon"))
	assert.Equal(t, filter.PresetExpiringSoon, preset)

	err := pv.Set("tonight")
	require.Error(t, err)
	assert.True(t, errors.Is(err, filter.ErrUnknownOption))
}

func TestQuickValue_Dedupes(t *testing.T) {
	var opts []filter.QuickOption
	v := quickValue{&opts}
	require.NoError(t, v.Set("style:red"))
	require.NoError(t, v.Set("style:red"))
	require.NoError(t, v.Set("location:Rack A"))
	assert.Len(t, opts, 2)

	err := v.Set("colour:red")
	assert.True(t, errors.Is(err, filter.ErrUnknownOption))
}
