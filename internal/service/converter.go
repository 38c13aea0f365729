package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrUnsupportedConversion = errors.New("unsupported conversion")

// Unit is a time unit the converter understands.
type Unit string

const (
	UnitHours  Unit = "hours"
	UnitDays   Unit = "days"
	UnitWeeks  Unit = "weeks"
	UnitMonths Unit = "months"
	UnitYears  Unit = "years"
)

// Units lists the supported units from smallest to largest.
var Units = []Unit{UnitHours, UnitDays, UnitWeeks, UnitMonths, UnitYears}

// conversionRates[from][to] multiplies a value in from to get one in to.
// Pairs missing here are not supported, e.g. hours to months.
var conversionRates = map[Unit]map[Unit]float64{
	UnitHours:  {UnitDays: 1.0 / 24, UnitWeeks: 1.0 / 168},
	UnitDays:   {UnitHours: 24, UnitWeeks: 1.0 / 7},
	UnitWeeks:  {UnitDays: 7, UnitHours: 168},
	UnitMonths: {UnitWeeks: 4, UnitDays: 30, UnitYears: 1.0 / 12},
	UnitYears:  {UnitMonths: 12, UnitWeeks: 52, UnitDays: 365},
}

var unitAliases = map[string]Unit{
	"hour": UnitHours, "hours": UnitHours, "h": UnitHours, "ساعة": UnitHours, "ساعات": UnitHours,
	"day": UnitDays, "days": UnitDays, "d": UnitDays, "يوم": UnitDays, "أيام": UnitDays,
	"week": UnitWeeks, "weeks": UnitWeeks, "w": UnitWeeks, "أسبوع": UnitWeeks, "أسابيع": UnitWeeks,
	"month": UnitMonths, "months": UnitMonths, "شهر": UnitMonths, "أشهر": UnitMonths, "شهور": UnitMonths,
	"year": UnitYears, "years": UnitYears, "y": UnitYears, "سنة": UnitYears, "سنوات": UnitYears,
}

// ParseUnit accepts singular, plural and Arabic unit names.
func ParseUnit(s string) (Unit, bool) {
	u, ok := unitAliases[strings.ToLower(strings.TrimSpace(s))]
	return u, ok
}

// Converter converts amounts between time units using fixed calendar rates
// (a month is 4 weeks or 30 days).
type Converter struct{}

// NewConverter creates a new converter.
func NewConverter() *Converter {
	return &Converter{}
}

// Convert returns value expressed in to.
func (c *Converter) Convert(value float64, from, to Unit) (float64, error) {
	if from == to {
		return value, nil
	}

	rate, ok := conversionRates[from][to]
	if !ok {
		return 0, fmt.Errorf("%s to %s: %w", from, to, ErrUnsupportedConversion)
	}

	return value * rate, nil
}

// FormatAmount renders a converted amount with two decimals.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
