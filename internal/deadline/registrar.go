package deadline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/JustJay7/court-case-sync/internal/casetype"
	"github.com/JustJay7/court-case-sync/internal/detector"
	"github.com/JustJay7/court-case-sync/internal/snapshot"
	"github.com/JustJay7/court-case-sync/pkg/logger"
)

// Status of a deadline record.
type Status string

const (
	StatusPending    Status = "pending"
	StatusCompleted  Status = "completed"
	StatusSuperseded Status = "superseded"
)

// Deadline is the registrar's view of a persisted deadline. DeadlineDate is
// derived by the store on save and is never set here.
type Deadline struct {
	ID                string
	CaseID            string
	Type              Type
	PartyID           string
	TriggerDate       time.Time
	DeadlineDate      time.Time
	ElectronicService bool
	Status            Status
	Notes             string
	CompletedAt       *time.Time
}

// Store persists deadlines keyed by (case, type, party). An empty partyID
// denotes a case-level deadline. Find returns nil, nil when absent.
type Store interface {
	FindDeadline(ctx context.Context, caseID string, t Type, partyID string) (*Deadline, error)
	SaveDeadline(ctx context.Context, d *Deadline) error
}

// ServiceChange is a per-party judgment-arrival transition reported by the
// party reconciler.
type ServiceChange struct {
	PartyID    string
	PartyLabel string
	Appealable bool
	OldDate    string
	NewDate    string
	Electronic bool
}

// Result summarizes one registration pass.
type Result struct {
	Created    int      `json:"created"`
	Updated    int      `json:"updated"`
	Unchanged  int      `json:"unchanged"`
	Skipped    int      `json:"skipped"`
	Superseded int      `json:"superseded"`
	Warnings   []string `json:"warnings,omitempty"`
	Errors     []string `json:"errors,omitempty"`
}

// Merge adds other's counts and messages into r.
func (r *Result) Merge(other Result) {
	r.Created += other.Created
	r.Updated += other.Updated
	r.Unchanged += other.Unchanged
	r.Skipped += other.Skipped
	r.Superseded += other.Superseded
	r.Warnings = append(r.Warnings, other.Warnings...)
	r.Errors = append(r.Errors, other.Errors...)
}

// Registrar turns case events into deadline records.
type Registrar struct {
	store Store
	loc   *time.Location
	log   *logger.Logger
}

// NewRegistrar creates a registrar writing to store.
func NewRegistrar(store Store, loc *time.Location, log *logger.Logger) *Registrar {
	if loc == nil {
		loc = time.UTC
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Registrar{store: store, loc: loc, log: log}
}

type trigger struct {
	def        Definition
	date       time.Time
	electronic bool
	note       string
}

// Register derives deadlines from detected updates. res may be nil when the
// case number could not be classified; only mediation objections are then
// registered.
func (r *Registrar) Register(ctx context.Context, caseID string, res *casetype.Resolution, updates []detector.CaseUpdate) Result {
	var result Result

	for _, u := range updates {
		t, ok, warn := r.triggerFor(res, u)
		if warn != "" {
			result.Warnings = append(result.Warnings, warn)
		}
		if !ok {
			continue
		}
		r.upsert(ctx, &result, caseID, "", t)
	}

	return result
}

// RegisterPartyService creates or moves the per-party appeal deadline when a
// party's judgment arrival date appears or changes. Once a per-party deadline
// is in place, the case-level deadline counted from pronouncement is retired.
func (r *Registrar) RegisterPartyService(ctx context.Context, caseID string, res *casetype.Resolution, change ServiceChange) Result {
	var result Result

	if change.NewDate == "" {
		result.Skipped++
		return result
	}
	if !change.Appealable {
		result.Skipped++
		r.log.Debug("Skipping party deadline for non-appealing party",
			"case_id", caseID, "party_id", change.PartyID, "label", change.PartyLabel)
		return result
	}
	if res == nil || res.Rule == nil {
		result.Skipped++
		return result
	}
	// Criminal appeal periods run from pronouncement, not service.
	if res.Category == casetype.Criminal {
		result.Skipped++
		return result
	}

	def, ok := Lookup(Type(res.Rule.DeadlineType))
	if !ok {
		result.Skipped++
		return result
	}
	date, err := snapshot.ParseDate(change.NewDate, r.loc)
	if err != nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("party %s: unparseable judgment arrival date %q", change.PartyID, change.NewDate))
		return result
	}

	r.upsert(ctx, &result, caseID, change.PartyID, trigger{
		def:        def,
		date:       date,
		electronic: change.Electronic,
		note:       fmt.Sprintf("%s %s 판결 도달일 기준", change.PartyLabel, snapshot.FormatDate(date)),
	})
	if len(result.Errors) == 0 {
		r.supersedeCaseLevel(ctx, &result, caseID, def.Type)
	}
	return result
}

// supersedeCaseLevel marks the pending case-level deadline of type t as
// replaced by per-party deadlines. It is never reopened afterwards.
func (r *Registrar) supersedeCaseLevel(ctx context.Context, result *Result, caseID string, t Type) {
	existing, err := r.store.FindDeadline(ctx, caseID, t, "")
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("find %s: %v", t, err))
		return
	}
	if existing == nil || existing.Status != StatusPending {
		return
	}

	existing.Status = StatusSuperseded
	existing.Notes = strings.TrimSpace(existing.Notes + " / 당사자별 송달일 기준 기한으로 대체")
	if err := r.store.SaveDeadline(ctx, existing); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("supersede %s: %v", t, err))
		r.log.Error("Failed to supersede deadline", "case_id", caseID, "type", t, "error", err)
		return
	}
	result.Superseded++
	r.log.Info("Case-level deadline superseded by party service",
		"case_id", caseID, "type", t, "trigger_date", snapshot.FormatDate(existing.TriggerDate))
}

func (r *Registrar) upsert(ctx context.Context, result *Result, caseID, partyID string, t trigger) {
	if t.date.IsZero() {
		result.Skipped++
		return
	}

	existing, err := r.store.FindDeadline(ctx, caseID, t.def.Type, partyID)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("find %s: %v", t.def.Type, err))
		r.log.Error("Failed to load deadline", "case_id", caseID, "type", t.def.Type, "error", err)
		return
	}

	if existing == nil {
		d := &Deadline{
			CaseID:            caseID,
			Type:              t.def.Type,
			PartyID:           partyID,
			TriggerDate:       t.date,
			ElectronicService: t.electronic,
			Status:            StatusPending,
			Notes:             t.note,
		}
		if err := r.store.SaveDeadline(ctx, d); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("create %s: %v", t.def.Type, err))
			r.log.Error("Failed to create deadline", "case_id", caseID, "type", t.def.Type, "error", err)
			return
		}
		result.Created++
		r.log.Info("Deadline registered",
			"case_id", caseID, "type", t.def.Type, "party_id", partyID,
			"trigger_date", snapshot.FormatDate(t.date), "days", t.def.Days)
		return
	}

	if existing.Status != StatusPending {
		result.Unchanged++
		return
	}
	if sameDay(existing.TriggerDate, t.date) && existing.ElectronicService == t.electronic {
		result.Unchanged++
		return
	}

	previous := existing.TriggerDate
	existing.TriggerDate = t.date
	existing.ElectronicService = t.electronic
	if t.note != "" {
		existing.Notes = t.note
	}
	if err := r.store.SaveDeadline(ctx, existing); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("update %s: %v", t.def.Type, err))
		r.log.Error("Failed to update deadline", "case_id", caseID, "type", t.def.Type, "error", err)
		return
	}
	result.Updated++
	r.log.Info("Deadline trigger moved",
		"case_id", caseID, "type", t.def.Type, "party_id", partyID,
		"from", snapshot.FormatDate(previous), "to", snapshot.FormatDate(t.date))
}

// triggerFor maps one update to a deadline trigger. The warning is set when
// an update should have produced a deadline but lacked usable data.
func (r *Registrar) triggerFor(res *casetype.Resolution, u detector.CaseUpdate) (trigger, bool, string) {
	switch {
	case isMediationUpdate(u):
		def, _ := Lookup(MediationObjection)
		date, electronic, ok := r.eventDate(u)
		if !ok {
			return trigger{}, false, fmt.Sprintf("%s: no date for mediation objection", u.Type)
		}
		return trigger{def: def, date: date, electronic: electronic, note: def.TriggerEvent + " 기준"}, true, ""

	case isJudgmentUpdate(u):
		if res == nil || res.Rule == nil {
			return trigger{}, false, ""
		}
		def, ok := Lookup(Type(res.Rule.DeadlineType))
		if !ok {
			return trigger{}, false, ""
		}
		date, electronic, ok := r.eventDate(u)
		if !ok {
			return trigger{}, false, fmt.Sprintf("%s: no pronouncement date for %s", u.Type, def.Type)
		}
		note := "선고일 기준"
		if def.Type == Appeal {
			note = "선고일 기준 (송달일 확인 시 당사자별 갱신)"
		}
		return trigger{def: def, date: date, electronic: electronic, note: note}, true, ""
	}
	return trigger{}, false, ""
}

// eventDate finds the trigger date of an update. A service receipt in the
// result takes precedence over the row date.
func (r *Registrar) eventDate(u detector.CaseUpdate) (time.Time, bool, bool) {
	if u.Ref.Kind == detector.RefProgress && strings.Contains(u.Ref.Result, "도달") {
		if d, ok := ZeroHourServiceDate(u.Ref.Result, r.loc); ok {
			return d, true, true
		}
		if d, err := snapshot.ParseDate(u.Ref.Result, r.loc); err == nil {
			return d, false, true
		}
	}
	for _, s := range []string{u.Ref.Date, u.Ref.NewValue} {
		if s == "" {
			continue
		}
		if d, err := snapshot.ParseDate(s, r.loc); err == nil {
			return d, false, true
		}
	}
	return time.Time{}, false, false
}

func isJudgmentHearing(hearingType string) bool {
	return strings.Contains(hearingType, "선고") || strings.Contains(hearingType, "판결")
}

func isPostponed(result string) bool {
	return strings.Contains(result, "연기") || strings.Contains(result, "추정") ||
		strings.Contains(result, "취소") || strings.Contains(result, "변경")
}

func isJudgmentUpdate(u detector.CaseUpdate) bool {
	switch u.Type {
	case detector.HearingNew, detector.HearingChanged, detector.HearingResult:
		return u.Ref.Kind == detector.RefHearing && isJudgmentHearing(u.Ref.Type) && !isPostponed(u.Ref.Result)
	case detector.ResultAnnounced:
		return true
	}
	return false
}

func isMediationUpdate(u detector.CaseUpdate) bool {
	switch u.Type {
	case detector.MediationConcluded:
		return true
	case detector.HearingResult:
		if detector.IsMediationText(u.Ref.Result) {
			return true
		}
		mediationHearing := strings.Contains(u.Ref.Type, "조정") || strings.Contains(u.Ref.Type, "화해")
		return mediationHearing && strings.Contains(u.Ref.Result, "성립") && !strings.Contains(u.Ref.Result, "불성립")
	}
	return false
}
