package render

import (
	"math"
	"strconv"
	"strings"

	"github.com/panelworks/lcdgen/internal/classify"
	"github.com/panelworks/lcdgen/internal/segment"
)

// NumberOptions controls numeric formatting.
type NumberOptions struct {
	// LeadingZeros pads unused integer slots with '0' instead of blanks.
	LeadingZeros bool
	// DecimalPlaces fixes the fractional digit count; negative keeps the
	// value's natural precision.
	DecimalPlaces int
}

// maxNumberValue guards the integer scaling in fixed-precision formatting.
// Anything this large overflows every realistic slot count anyway.
const maxNumberValue = 1e15

// Number maps a numeric value onto the digit slots of a Number widget,
// most significant slot first. The decimal point lights on the slot declared
// point-capable at classification time; a value whose point cannot land
// there is a value error, not a silent truncation.
func Number(name string, digits []classify.Digit, pointIndex int, value float64, opts NumberOptions) ([]Slot, error) {
	if len(digits) == 0 {
		return nil, valueErr(name, -1, 0, "widget has no digit slots")
	}
	if value < 0 {
		return nil, valueErr(name, -1, '-', "negative values are not displayable: no sign slot")
	}
	if value >= maxNumberValue || math.IsNaN(value) || math.IsInf(value, 0) {
		return nil, valueErr(name, -1, 0, "value %v out of displayable range", value)
	}

	intPart, fracPart := formatParts(value, opts.DecimalPlaces)

	intSlots := len(digits)
	fracSlots := 0
	if pointIndex >= 0 {
		intSlots = pointIndex + 1
		fracSlots = len(digits) - pointIndex - 1
	}

	if fracPart != "" && pointIndex < 0 {
		return nil, valueErr(name, -1, '.', "value %v has a fractional part but no slot carries a decimal point", value)
	}
	if len(fracPart) > fracSlots {
		return nil, valueErr(name, pointIndex, '.', "%d fractional digit(s) do not fit in %d slot(s) after the point", len(fracPart), fracSlots)
	}
	if len(intPart) > intSlots {
		return nil, valueErr(name, -1, 0, "integer part %q overflows %d slot(s)", intPart, intSlots)
	}

	pad := " "
	if opts.LeadingZeros {
		pad = "0"
	}
	display := strings.Repeat(pad, intSlots-len(intPart)) + intPart
	if pointIndex >= 0 {
		display += fracPart + strings.Repeat(" ", fracSlots-len(fracPart))
	}

	slots := make([]Slot, len(digits))
	for i, ch := range display {
		slots[i] = Slot{Char: ch}
		if !segment.Supported(digits[i].Alphabet, ch) {
			return nil, valueErr(name, i, ch, "character %q is not in the %s alphabet", ch, digits[i].Alphabet)
		}
	}
	if pointIndex >= 0 && fracPart != "" {
		slots[pointIndex].Point = true
	}
	return slots, nil
}

// formatParts renders value as integer and fractional digit strings. Fixed
// precision rounds half away from zero; negative places keep the natural
// decimal expansion.
func formatParts(value float64, places int) (string, string) {
	if places < 0 {
		s := strconv.FormatFloat(value, 'f', -1, 64)
		intPart, fracPart, _ := strings.Cut(s, ".")
		return intPart, fracPart
	}
	pow := math.Pow10(places)
	scaled := int64(math.Round(value * pow)) // half away from zero
	if places == 0 {
		return strconv.FormatInt(scaled, 10), ""
	}
	div := int64(pow)
	intPart := strconv.FormatInt(scaled/div, 10)
	frac := strconv.FormatInt(scaled%div, 10)
	frac = strings.Repeat("0", places-len(frac)) + frac
	return intPart, frac
}
