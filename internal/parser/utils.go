package parser

import (
	"os"
	"strconv"
	"strings"
)

// osOpen is swappable in tests.
var osOpen = func(path string) (*os.File, error) {
	return os.Open(path)
}

// ParseNumber parses a numeric cell tolerantly: thousands separators,
// currency markers, and percent signs are stripped. Unparseable or empty
// cells become zero; a missing value defaults to zero at aggregation time.
func ParseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSuffix(s, "%")
	s = strings.TrimPrefix(s, "₹")
	s = strings.TrimSpace(s)

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
