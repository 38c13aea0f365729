package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_Convert(t *testing.T) {
	c := NewConverter()

	tests := []struct {
		name  string
		value float64
		from  Unit
		to    Unit
		want  string
	}{
		{"days to hours", 1, UnitDays, UnitHours, "24.00"},
		{"hours to days", 36, UnitHours, UnitDays, "1.50"},
		{"weeks to days", 2, UnitWeeks, UnitDays, "14.00"},
		{"days to weeks", 10, UnitDays, UnitWeeks, "1.43"},
		{"months to years", 6, UnitMonths, UnitYears, "0.50"},
		{"years to days", 1, UnitYears, UnitDays, "365.00"},
		{"months to weeks", 3, UnitMonths, UnitWeeks, "12.00"},
		{"same unit", 7, UnitWeeks, UnitWeeks, "7.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Convert(tt.value, tt.from, tt.to)
			require.NoError(t, err)
			assert.Equal(t, tt.want, FormatAmount(got))
		})
	}
}

func TestConverter_Unsupported(t *testing.T) {
	c := NewConverter()

	for _, pair := range [][2]Unit{
		{UnitHours, UnitMonths},
		{UnitDays, UnitYears},
		{UnitWeeks, UnitMonths},
		{Unit("minutes"), UnitHours},
	} {
		_, err := c.Convert(1, pair[0], pair[1])
		assert.True(t, errors.Is(err, ErrUnsupportedConversion), "%s -> %s", pair[0], pair[1])
	}
}

func TestParseUnit(t *testing.T) {
	tests := map[string]Unit{
		"Day":    UnitDays,
		" weeks": UnitWeeks,
		"h":      UnitHours,
		"سنة":    UnitYears,
		"شهور":   UnitMonths,
		"Months": UnitMonths,
	}
	for in, want := range tests {
		got, ok := ParseUnit(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}

	_, ok := ParseUnit("fortnight")
	assert.False(t, ok)
}
