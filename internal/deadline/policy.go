package deadline

import (
	"context"
	"regexp"
	"time"

	"github.com/JustJay7/court-case-sync/internal/snapshot"
)

// Public holidays observed by the courts (관공서의 공휴일에 관한 규정).
var defaultHolidays = []string{
	"2025-01-01", "2025-01-28", "2025-01-29", "2025-01-30", "2025-03-01",
	"2025-03-03", "2025-05-05", "2025-05-06", "2025-06-06", "2025-08-15",
	"2025-10-03", "2025-10-05", "2025-10-06", "2025-10-07", "2025-10-08",
	"2025-10-09", "2025-12-25",
	"2026-01-01", "2026-02-16", "2026-02-17", "2026-02-18", "2026-03-01",
	"2026-03-02", "2026-05-05", "2026-05-24", "2026-05-25", "2026-06-06",
	"2026-08-15", "2026-09-24", "2026-09-25", "2026-09-26", "2026-10-03",
	"2026-10-09", "2026-12-25",
}

// DefaultHolidays returns the built-in holiday list as YYYY-MM-DD strings.
func DefaultHolidays() []string {
	out := make([]string, len(defaultHolidays))
	copy(out, defaultHolidays)
	return out
}

// Policy controls how a deadline date is derived from its trigger date.
// The zero value is plain calendar arithmetic: trigger + days.
type Policy struct {
	// ZeroHourIncludesFirstDay counts the trigger day itself for deemed
	// (zero-hour) service, giving trigger + days - 1 (민법 제157조 단서).
	ZeroHourIncludesFirstDay bool
	// ShiftNonBusinessDays moves a deadline falling on a Saturday, Sunday or
	// public holiday to the next business day (민법 제161조).
	ShiftNonBusinessDays bool
	// Holidays overrides the built-in holiday list when non-nil.
	Holidays []string
}

// DueDate computes the deadline date for a trigger date and day count.
func (p Policy) DueDate(trigger time.Time, days int, electronic bool) time.Time {
	y, m, d := trigger.Date()
	due := time.Date(y, m, d, 0, 0, 0, 0, trigger.Location()).AddDate(0, 0, days)
	if electronic && p.ZeroHourIncludesFirstDay {
		due = due.AddDate(0, 0, -1)
	}
	if p.ShiftNonBusinessDays {
		holidays := p.holidaySet()
		for p.isNonBusinessDay(due, holidays) {
			due = due.AddDate(0, 0, 1)
		}
	}
	return due
}

func (p Policy) holidaySet() map[string]bool {
	list := p.Holidays
	if list == nil {
		list = defaultHolidays
	}
	set := make(map[string]bool, len(list))
	for _, h := range list {
		set[h] = true
	}
	return set
}

func (p Policy) isNonBusinessDay(t time.Time, holidays map[string]bool) bool {
	switch t.Weekday() {
	case time.Saturday, time.Sunday:
		return true
	}
	return holidays[t.Format("2006-01-02")]
}

type policyKey struct{}

// ContextWithPolicy attaches a policy for persistence hooks to read.
func ContextWithPolicy(ctx context.Context, p Policy) context.Context {
	return context.WithValue(ctx, policyKey{}, p)
}

// PolicyFromContext returns the attached policy, or the zero policy.
func PolicyFromContext(ctx context.Context) Policy {
	if ctx == nil {
		return Policy{}
	}
	if p, ok := ctx.Value(policyKey{}).(Policy); ok {
		return p
	}
	return Policy{}
}

// zeroHourPattern matches a service receipt deemed effective at the start of
// its date, e.g. "2025.04.08 0시 도달". The hour must be exactly 0 or 00.
var zeroHourPattern = regexp.MustCompile(`^\s*(\d{4}[.\-]\d{1,2}[.\-]\d{1,2})\s*0{1,2}시\s*도달\s*$`)

// IsZeroHourService reports whether text is a deemed (zero-hour) service
// marker. Anything else, including other hours, is not deemed service.
func IsZeroHourService(text string) bool {
	return zeroHourPattern.MatchString(text)
}

// ZeroHourServiceDate returns the service date carried by a zero-hour marker.
func ZeroHourServiceDate(text string, loc *time.Location) (time.Time, bool) {
	m := zeroHourPattern.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, false
	}
	t, err := snapshot.ParseDate(m[1], loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ElectronicServiceOn reports whether the progress log records deemed
// service on the given date.
func ElectronicServiceOn(progress []snapshot.ProgressItem, date time.Time, loc *time.Location) bool {
	for _, p := range progress {
		served, ok := ZeroHourServiceDate(p.Result, loc)
		if ok && sameDay(served, date) {
			return true
		}
	}
	return false
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
