package snapshot

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
)

var (
	dottedDatePattern  = regexp.MustCompile(`(\d{4})[.\-/]\s*(\d{1,2})[.\-/]\s*(\d{1,2})`)
	compactDatePattern = regexp.MustCompile(`^(\d{4})(\d{2})(\d{2})$`)
	clockPattern       = regexp.MustCompile(`(\d{1,2}):(\d{2})`)
)

// ParseDate parses the portal's date formats ("2025.04.08", "2025-04-08",
// "20250408", or a date embedded in longer text) into midnight of that day in
// loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	s = strings.TrimSpace(s)

	if m := compactDatePattern.FindStringSubmatch(s); m != nil {
		return buildDate(m[1], m[2], m[3], loc)
	}
	if m := dottedDatePattern.FindStringSubmatch(s); m != nil {
		return buildDate(m[1], m[2], m[3], loc)
	}

	return time.Time{}, fmt.Errorf("unable to parse date: %q", s)
}

func buildDate(y, m, d string, loc *time.Location) (time.Time, error) {
	year, _ := strconv.Atoi(y)
	month, _ := strconv.Atoi(m)
	day, _ := strconv.Atoi(d)
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("date out of range: %s.%s.%s", y, m, d)
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
	if t.Day() != day {
		return time.Time{}, fmt.Errorf("date out of range: %s.%s.%s", y, m, d)
	}
	return t, nil
}

// ParseDateTime combines a portal date and an optional "HH:MM" clock. A
// missing clock defaults to defaultHour:00.
func ParseDateTime(date, clock string, defaultHour int, loc *time.Location) (time.Time, error) {
	day, err := ParseDate(date, loc)
	if err != nil {
		return time.Time{}, err
	}
	hour, minute := defaultHour, 0
	if m := clockPattern.FindStringSubmatch(clock); m != nil {
		h, _ := strconv.Atoi(m[1])
		mm, _ := strconv.Atoi(m[2])
		if h < 24 && mm < 60 {
			hour, minute = h, mm
		}
	}
	return day.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute), nil
}

// FormatDate renders a civil date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// CanonicalText collapses runs of whitespace (including non-breaking spaces
// the portal emits) into one ASCII space and trims the ends.
func CanonicalText(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	space := false
	for _, r := range s {
		if unicode.IsSpace(r) || r == '\u200b' {
			space = true
			continue
		}
		if space && b.Len() > 0 {
			b.WriteByte(' ')
		}
		space = false
		b.WriteRune(r)
	}
	return b.String()
}
