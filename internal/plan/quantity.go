package plan

import (
	"regexp"
	"strconv"
	"strings"

	"purna/internal/wire"
)

var (
	numericRun    = regexp.MustCompile(`^[0-9./]+`)
	leadingNumber = regexp.MustCompile(`^[0-9]*\.?[0-9]*`)
)

// Quantity is a parsed grocery amount.
type Quantity struct {
	Value float64
	Unit  string
}

// ParseQuantity turns a loosely typed quantity into a magnitude and a unit.
// It never fails: absent input is zero with no unit, numbers carry no unit,
// and strings are split into a leading numeric run and the unit text after it.
// Fractions such as "1/2" are not evaluated; only the number before the slash
// counts.
func ParseQuantity(q wire.Quantity) Quantity {
	switch q.Kind {
	case wire.QuantityNumber:
		return Quantity{Value: q.Number}
	case wire.QuantityString:
		return parseQuantityText(q.Text)
	}
	return Quantity{}
}

func parseQuantityText(s string) Quantity {
	trimmed := strings.TrimSpace(s)
	run := numericRun.FindString(trimmed)
	if run == "" {
		return Quantity{Unit: trimmed}
	}

	v, ok := parseLeadingFloat(run)
	if !ok {
		return Quantity{Unit: trimmed}
	}
	return Quantity{Value: v, Unit: strings.TrimSpace(trimmed[len(run):])}
}

// parseLeadingFloat parses the longest decimal prefix of s, so "1.5.2" is 1.5
// and "3/4" is 3.
func parseLeadingFloat(s string) (float64, bool) {
	prefix := leadingNumber.FindString(s)
	if strings.Trim(prefix, ".") == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(prefix, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
