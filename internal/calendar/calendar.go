// Package calendar turns a case's hearing list into calendar write intents
// by diffing it against the events emitted on earlier syncs.
package calendar

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
	"time"

	"github.com/JustJay7/court-case-sync/internal/detector"
	"github.com/JustJay7/court-case-sync/internal/snapshot"
)

// DefaultHour is the start hour used when the portal lists no time.
const DefaultHour = 9

// Action is what a calendar consumer should do with an intent.
type Action string

const (
	Create Action = "create"
	Update Action = "update"
	Delete Action = "delete"
)

// HearingKind groups portal hearing names into calendar categories.
type HearingKind string

const (
	KindMain          HearingKind = "HEARING_MAIN"
	KindMediation     HearingKind = "HEARING_MEDIATION"
	KindInvestigation HearingKind = "HEARING_INVESTIGATION"
	KindJudgment      HearingKind = "HEARING_JUDGMENT"
	KindInterim       HearingKind = "HEARING_INTERIM"
	KindParenting     HearingKind = "HEARING_PARENTING"
)

// Status of a hearing on the calendar.
type Status string

const (
	StatusScheduled Status = "SCHEDULED"
	StatusCompleted Status = "COMPLETED"
)

// Outcome is the normalized hearing result.
type Outcome string

const (
	OutcomeNone      Outcome = ""
	OutcomeContinued Outcome = "CONTINUED"
	OutcomeConcluded Outcome = "CONCLUDED"
	OutcomePostponed Outcome = "POSTPONED"
	OutcomeDismissed Outcome = "DISMISSED"
)

// Event is the calendar representation of one hearing.
type Event struct {
	HearingKey string      `json:"hearingKey"`
	Start      time.Time   `json:"start"`
	Location   string      `json:"location,omitempty"`
	Title      string      `json:"title"`
	Kind       HearingKind `json:"kind"`
	Status     Status      `json:"status"`
	Outcome    Outcome     `json:"outcome,omitempty"`
	Hash       string      `json:"hash"`
}

// Emitted is what was sent for a hearing on a previous sync.
type Emitted struct {
	HearingKey string
	Hash       string
	Start      time.Time
	Location   string
	Title      string
}

// Intent is one calendar write for an external consumer. Event is the zero
// value for deletes; Previous is set for updates and deletes.
type Intent struct {
	Action   Action   `json:"action"`
	CaseID   string   `json:"caseId"`
	Event    Event    `json:"event"`
	Previous *Emitted `json:"previous,omitempty"`
}

// Differ builds intents. The clock decides whether a hearing without a
// result is still scheduled.
type Differ struct {
	loc *time.Location
	now func() time.Time
}

// New creates a differ evaluating portal dates in loc.
func New(loc *time.Location) *Differ {
	if loc == nil {
		loc = time.UTC
	}
	return &Differ{loc: loc, now: time.Now}
}

// WithClock overrides the time source.
func (d *Differ) WithClock(now func() time.Time) *Differ {
	d.now = now
	return d
}

// Diff compares the current hearings with the previously emitted events.
// Unseen hearing keys produce creates, hearings whose start, location,
// title, status or outcome moved produce updates, and emitted keys no longer
// listed produce deletes. Hearings with unparseable dates are left alone.
func (d *Differ) Diff(caseID, caseNumber string, hearings []snapshot.Hearing, previous []Emitted) []Intent {
	prior := make(map[string]Emitted, len(previous))
	for _, e := range previous {
		prior[e.HearingKey] = e
	}

	var intents []Intent
	seen := make(map[string]bool, len(hearings))
	for _, h := range hearings {
		key := detector.HearingKey(h)
		if seen[key] {
			continue
		}
		seen[key] = true

		ev, ok := d.event(caseNumber, h)
		if !ok {
			continue
		}

		old, existed := prior[key]
		switch {
		case !existed:
			intents = append(intents, Intent{Action: Create, CaseID: caseID, Event: ev})
		case old.Hash != ev.Hash:
			prev := old
			intents = append(intents, Intent{Action: Update, CaseID: caseID, Event: ev, Previous: &prev})
		}
	}

	var gone []string
	for key := range prior {
		if !seen[key] {
			gone = append(gone, key)
		}
	}
	sort.Strings(gone)
	for _, key := range gone {
		prev := prior[key]
		intents = append(intents, Intent{
			Action:   Delete,
			CaseID:   caseID,
			Event:    Event{HearingKey: key},
			Previous: &prev,
		})
	}
	return intents
}

func (d *Differ) event(caseNumber string, h snapshot.Hearing) (Event, bool) {
	start, err := snapshot.ParseDateTime(h.Date, h.Time, DefaultHour, d.loc)
	if err != nil {
		return Event{}, false
	}
	hearingType := snapshot.CanonicalText(h.Type)
	ev := Event{
		HearingKey: detector.HearingKey(h),
		Start:      start,
		Location:   snapshot.CanonicalText(h.Location),
		Title:      strings.TrimSpace(snapshot.CanonicalText(caseNumber) + " " + hearingType),
		Kind:       KindOf(hearingType),
		Status:     d.status(h, start),
		Outcome:    OutcomeOf(h.Result),
	}
	ev.Hash = hashEvent(ev)
	return ev, true
}

func (d *Differ) status(h snapshot.Hearing, start time.Time) Status {
	if snapshot.CanonicalText(h.Result) != "" {
		return StatusCompleted
	}
	n := d.now().In(d.loc)
	today := time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, d.loc)
	if start.Before(today) {
		return StatusCompleted
	}
	return StatusScheduled
}

func hashEvent(ev Event) string {
	content := strings.Join([]string{
		ev.Start.UTC().Format(time.RFC3339),
		ev.Location,
		ev.Title,
		string(ev.Status),
		string(ev.Outcome),
	}, "|")
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}

var kindRules = []struct {
	markers []string
	kind    HearingKind
}{
	{[]string{"변론", "공판", "신문"}, KindMain},
	{[]string{"조정", "화해"}, KindMediation},
	{[]string{"조사", "면접", "사실조회"}, KindInvestigation},
	{[]string{"선고", "판결"}, KindJudgment},
	{[]string{"심문", "보전", "가처분", "가압류"}, KindInterim},
	{[]string{"상담", "교육", "양육"}, KindParenting},
}

// KindOf classifies a portal hearing name. Names matching nothing are
// treated as main hearings.
func KindOf(hearingType string) HearingKind {
	t := snapshot.CanonicalText(hearingType)
	// 면접교섭 would otherwise fall under the 면접 investigation marker.
	if t == "면접교섭" {
		return KindParenting
	}
	for _, r := range kindRules {
		for _, m := range r.markers {
			if strings.Contains(t, m) {
				return r.kind
			}
		}
	}
	return KindMain
}

// OutcomeOf normalizes a hearing result.
func OutcomeOf(result string) Outcome {
	r := snapshot.CanonicalText(result)
	switch {
	case r == "":
		return OutcomeNone
	case strings.Contains(r, "속행"):
		return OutcomeContinued
	case strings.Contains(r, "종결"), strings.Contains(r, "성립"):
		return OutcomeConcluded
	case strings.Contains(r, "연기"):
		return OutcomePostponed
	case strings.Contains(r, "취하"), strings.Contains(r, "각하"), strings.Contains(r, "기각"):
		return OutcomeDismissed
	}
	return OutcomeNone
}

// Emitted returns the record to keep for diffing on the next sync.
func (e Event) Emitted() Emitted {
	return Emitted{
		HearingKey: e.HearingKey,
		Hash:       e.Hash,
		Start:      e.Start,
		Location:   e.Location,
		Title:      e.Title,
	}
}
