package render

import (
	"math"
	"strconv"
	"strings"
)

// axis maps the text values of one dimension to plot coordinates.
// A numeric axis parses each value as a float. A categorical axis gives
// each distinct value the next integer position in order of first
// appearance.
type axis struct {
	numeric bool
	labels  []string
	index   map[string]int
}

// newAxis builds an axis covering every value in columns.
// The axis is numeric only if every value is a finite number.
func newAxis(columns ...[]string) *axis {
	a := &axis{numeric: true}
	for _, col := range columns {
		for _, v := range col {
			if _, ok := parseNumber(v); !ok {
				a.numeric = false
				break
			}
		}
		if !a.numeric {
			break
		}
	}
	if a.numeric {
		return a
	}

	a.index = make(map[string]int)
	for _, col := range columns {
		for _, v := range col {
			if _, ok := a.index[v]; !ok {
				a.index[v] = len(a.labels)
				a.labels = append(a.labels, v)
			}
		}
	}
	return a
}

// value returns the plot coordinate of s.
func (a *axis) value(s string) float64 {
	if a.numeric {
		f, _ := parseNumber(s)
		return f
	}
	return float64(a.index[s])
}

func parseNumber(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
