package utils

import (
	"fmt"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// accepted input layouts, tried in order; output is always YYYY-MM-DD
var dateInputLayouts = []string{
	DateLayout,
	"01/02/2006",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02 15:04:05",
}

// NormalizeDate converts a caller-supplied date string to YYYY-MM-DD.
// Blank input stays blank.
func NormalizeDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	for _, layout := range dateInputLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(DateLayout), nil
		}
	}
	return "", fmt.Errorf("unrecognized date %q", s)
}

func Today() string {
	return time.Now().Format(DateLayout)
}
