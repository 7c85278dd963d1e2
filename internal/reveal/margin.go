package reveal

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// maxMarginRows bounds a resolved margin so window arithmetic cannot
// overflow. It is far larger than any page.
const maxMarginRows = 1 << 30

// Length is a margin length in rows, or a percentage of the viewport height.
type Length struct {
	Value   float64
	Percent bool
}

// Rows resolves the length against a viewport height.
func (l Length) Rows(viewportHeight int) int {
	v := l.Value
	if l.Percent {
		v = v * float64(viewportHeight) / 100
	}
	return int(max(-maxMarginRows, min(maxMarginRows, math.Round(v))))
}

// Margin grows (positive) or shrinks (negative) the viewport before
// intersections are computed. Only the vertical edges matter for a page
// that scrolls by rows.
type Margin struct {
	Top    Length
	Bottom Length
}

// ParseMargin parses a CSS-style margin such as "0px", "-2px 0px" or
// "10% 0px 5%". One to four values are accepted; "px" and bare numbers are
// rows, "%" is relative to the viewport height.
func ParseMargin(s string) (Margin, error) {
	fields := strings.Fields(strings.TrimSpace(s))
	if len(fields) == 0 {
		return Margin{}, nil
	}
	if len(fields) > 4 {
		return Margin{}, fmt.Errorf("parse margin %q: want 1 to 4 values, got %d", s, len(fields))
	}
	lengths := make([]Length, len(fields))
	for i, f := range fields {
		l, err := parseLength(f)
		if err != nil {
			return Margin{}, fmt.Errorf("parse margin %q: %w", s, err)
		}
		lengths[i] = l
	}
	switch len(lengths) {
	case 1, 2:
		return Margin{Top: lengths[0], Bottom: lengths[0]}, nil
	default:
		return Margin{Top: lengths[0], Bottom: lengths[2]}, nil
	}
}

func parseLength(s string) (Length, error) {
	var l Length
	switch {
	case strings.HasSuffix(s, "%"):
		l.Percent = true
		s = strings.TrimSuffix(s, "%")
	case strings.HasSuffix(s, "px"):
		s = strings.TrimSuffix(s, "px")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return Length{}, fmt.Errorf("invalid length %q", s)
	}
	l.Value = v
	return l, nil
}
