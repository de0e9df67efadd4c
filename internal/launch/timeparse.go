package launch

import (
	"strings"
	"time"
)

// Timestamp layouts, selected by the number of colons in the value. Every
// field after the year may drop its leading zero.
const (
	layoutDate       = "2006-1-2"
	layoutDateHour   = "2006-1-2 15"
	layoutDateMinute = "2006-1-2 15:4"
	layoutDateSecond = "2006-1-2 15:4:5"
	layoutDateFrac   = "2006-1-2 15:4:5.999999999"
)

// localOffset is subtracted when the value carries a "+" (UTC+8) marker.
const localOffset = 8 * time.Hour

// ParseTime parses a launch time value into UTC. A parenthetical suffix is
// ignored; a "+" anywhere in s marks the value as UTC+8.
func ParseTime(s string) (time.Time, error) {
	v := s
	if i := strings.IndexAny(v, "(（+"); i >= 0 {
		v = v[:i]
	}
	v = strings.TrimSpace(v)
	v = strings.TrimSpace(strings.TrimSuffix(v, "UTC"))
	v = strings.Join(strings.Fields(v), " ")

	var layout string
	switch strings.Count(v, ":") {
	case 0:
		layout = layoutDate
		if strings.Contains(v, " ") {
			layout = layoutDateHour
		}
	case 1:
		layout = layoutDateMinute
	case 2:
		layout = layoutDateSecond
		if strings.Contains(v, ".") {
			layout = layoutDateFrac
		}
	default:
		return time.Time{}, &TimestampError{Value: s}
	}

	t, err := time.Parse(layout, v)
	if err != nil {
		return time.Time{}, &TimestampError{Value: s}
	}
	if strings.Contains(s, "+") {
		t = t.Add(-localOffset)
	}
	return t.UTC(), nil
}
