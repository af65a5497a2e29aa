// Package detector diffs two case snapshots and classifies what changed.
package detector

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/JustJay7/court-case-sync/internal/snapshot"
)

// progressKeyRunes is how much of a progress entry's content participates in
// its identity key.
const progressKeyRunes = 50

// Detector compares snapshots. The clock only affects whether a vanished
// hearing counts as a cancellation (future) or as history noise (past).
type Detector struct {
	loc *time.Location
	now func() time.Time
}

// New creates a detector evaluating dates in loc.
func New(loc *time.Location) *Detector {
	if loc == nil {
		loc = time.UTC
	}
	return &Detector{loc: loc, now: time.Now}
}

// WithClock overrides the time source.
func (d *Detector) WithClock(now func() time.Time) *Detector {
	d.now = now
	return d
}

func (d *Detector) today() time.Time {
	n := d.now().In(d.loc)
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, d.loc)
}

// Detect returns the classified changes from prev to cur. A nil prev is a
// first sync: every populated entry of cur is reported as an addition.
func (d *Detector) Detect(prev *snapshot.CaseSnapshot, cur snapshot.CaseSnapshot) []CaseUpdate {
	if prev == nil {
		return d.initial(cur)
	}

	var updates []CaseUpdate
	updates = append(updates, d.hearingChanges(prev.Hearings, cur.Hearings)...)
	updates = append(updates, progressChanges(prev.Progress, cur.Progress)...)
	updates = append(updates, documentChanges(prev.Documents, cur.Documents)...)
	updates = append(updates, lowerCourtChanges(prev.LowerCourtInfo, cur.LowerCourtInfo)...)
	updates = append(updates, basicInfoChanges(prev.BasicInfo, cur.BasicInfo)...)
	return updates
}

func (d *Detector) initial(cur snapshot.CaseSnapshot) []CaseUpdate {
	var updates []CaseUpdate
	for i, h := range cur.Hearings {
		updates = append(updates, hearingAdded(i, h))
	}
	for i, p := range cur.Progress {
		updates = append(updates, classifyProgress(i, p))
	}
	for i, doc := range cur.Documents {
		updates = append(updates, documentAdded(i, doc))
	}
	for i, lc := range cur.LowerCourtInfo {
		updates = append(updates, lowerCourtAdded(i, lc))
	}
	for i, f := range cur.BasicInfo {
		value := snapshot.CanonicalText(f.Value)
		if value == "" {
			continue
		}
		updates = append(updates, basicFieldChanged(i, f.Key, "", value))
	}
	return updates
}

// HearingKey is the identity of a hearing across captures.
func HearingKey(h snapshot.Hearing) string {
	return snapshot.CanonicalText(h.Date) + "|" + snapshot.CanonicalText(h.Type)
}

// ProgressKey is the identity of a progress entry: its date plus the first
// runes of its content.
func ProgressKey(p snapshot.ProgressItem) string {
	content := []rune(snapshot.CanonicalText(p.Content))
	if len(content) > progressKeyRunes {
		content = content[:progressKeyRunes]
	}
	return snapshot.CanonicalText(p.Date) + "|" + string(content)
}

func documentKey(doc snapshot.Document) string {
	return snapshot.CanonicalText(doc.Date) + "|" + snapshot.CanonicalText(doc.Content)
}

func lowerCourtKey(lc snapshot.LowerCourt) string {
	return snapshot.CanonicalText(lc.Court) + "|" + snapshot.CanonicalText(lc.CaseNo)
}

func (d *Detector) hearingChanges(prev, cur []snapshot.Hearing) []CaseUpdate {
	var updates []CaseUpdate

	old := make(map[string]snapshot.Hearing, len(prev))
	for _, h := range prev {
		old[HearingKey(h)] = h
	}
	seen := make(map[string]bool, len(cur))

	for i, h := range cur {
		key := HearingKey(h)
		seen[key] = true
		before, ok := old[key]
		if !ok {
			updates = append(updates, hearingAdded(i, h))
			continue
		}

		oldResult := snapshot.CanonicalText(before.Result)
		newResult := snapshot.CanonicalText(h.Result)
		if oldResult == "" && newResult != "" {
			updates = append(updates, CaseUpdate{
				Type:       HearingResult,
				Importance: High,
				Summary:    fmt.Sprintf("%s %s: %s", h.Date, h.Type, newResult),
				Ref:        hearingRef(i, h),
			})
			continue
		}

		if snapshot.CanonicalText(before.Time) != snapshot.CanonicalText(h.Time) ||
			snapshot.CanonicalText(before.Location) != snapshot.CanonicalText(h.Location) ||
			oldResult != newResult {
			ref := hearingRef(i, h)
			ref.OldValue = strings.TrimSpace(before.Time + " " + before.Location + " " + before.Result)
			ref.NewValue = strings.TrimSpace(h.Time + " " + h.Location + " " + h.Result)
			updates = append(updates, CaseUpdate{
				Type:       HearingChanged,
				Importance: High,
				Summary:    fmt.Sprintf("%s %s %s 변경", h.Date, h.Time, h.Type),
				Ref:        ref,
			})
		}
	}

	today := d.today()
	for _, h := range prev {
		key := HearingKey(h)
		if seen[key] {
			continue
		}
		seen[key] = true

		importance := Low
		if date, err := snapshot.ParseDate(h.Date, d.loc); err == nil && !date.Before(today) {
			importance = High
		}
		ref := hearingRef(-1, h)
		updates = append(updates, CaseUpdate{
			Type:       HearingCanceled,
			Importance: importance,
			Summary:    fmt.Sprintf("%s %s 취소", h.Date, h.Type),
			Ref:        ref,
		})
	}

	return updates
}

func hearingAdded(i int, h snapshot.Hearing) CaseUpdate {
	return CaseUpdate{
		Type:       HearingNew,
		Importance: High,
		Summary:    strings.TrimSpace(fmt.Sprintf("%s %s %s 지정", h.Date, h.Time, h.Type)),
		Ref:        hearingRef(i, h),
	}
}

func hearingRef(i int, h snapshot.Hearing) Ref {
	return Ref{
		Kind:     RefHearing,
		Index:    i,
		Key:      HearingKey(h),
		Date:     h.Date,
		Time:     h.Time,
		Type:     h.Type,
		Location: h.Location,
		Result:   h.Result,
	}
}

func progressChanges(prev, cur []snapshot.ProgressItem) []CaseUpdate {
	var updates []CaseUpdate

	old := make(map[string]snapshot.ProgressItem, len(prev))
	for _, p := range prev {
		old[ProgressKey(p)] = p
	}
	seen := make(map[string]bool, len(cur))

	for i, p := range cur {
		key := ProgressKey(p)
		seen[key] = true
		before, ok := old[key]
		if !ok {
			updates = append(updates, classifyProgress(i, p))
			continue
		}
		// A result appearing on an existing row (typically a service
		// receipt) is reported through the same classification.
		if snapshot.CanonicalText(before.Result) != snapshot.CanonicalText(p.Result) &&
			snapshot.CanonicalText(p.Result) != "" {
			u := classifyProgress(i, p)
			u.Ref.OldValue = before.Result
			u.Ref.NewValue = p.Result
			updates = append(updates, u)
		}
	}

	for _, p := range prev {
		key := ProgressKey(p)
		if seen[key] {
			continue
		}
		seen[key] = true
		ref := progressRef(-1, p)
		updates = append(updates, CaseUpdate{
			Type:       ProgressRemoved,
			Importance: Low,
			Summary:    snapshot.CanonicalText(p.Content),
			Ref:        ref,
		})
	}

	return updates
}

var mediationMarkers = []string{
	"조정성립", "조정 성립", "화해성립", "화해 성립", "화해권고결정",
	"조정을 갈음하는 결정", "조정에 갈음하는 결정", "강제조정",
}

// IsMediationText reports whether text describes a concluded mediation or
// settlement, or a decision in lieu of one.
func IsMediationText(text string) bool {
	text = snapshot.CanonicalText(text)
	for _, m := range mediationMarkers {
		if strings.Contains(text, m) {
			return true
		}
	}
	return false
}

func classifyProgress(i int, p snapshot.ProgressItem) CaseUpdate {
	content := snapshot.CanonicalText(p.Content)
	result := snapshot.CanonicalText(p.Result)
	u := CaseUpdate{Summary: content, Ref: progressRef(i, p)}

	switch {
	case strings.Contains(result, "도달"):
		u.Type, u.Importance = Served, Medium
		u.Summary = fmt.Sprintf("%s (%s)", content, result)
	case strings.Contains(content, "송달"):
		u.Type, u.Importance = DocumentServed, Medium
	case strings.Contains(content, "제출") || strings.Contains(content, "접수"):
		u.Type, u.Importance = DocumentFiled, Medium
	case IsMediationText(content):
		u.Type, u.Importance = MediationConcluded, High
	case containsAny(content, "판결", "결정", "선고"):
		u.Type, u.Importance = ResultAnnounced, High
	case containsAny(content, "항소", "상고", "항고"):
		u.Type, u.Importance = AppealFiled, High
	case strings.Contains(content, "기일"):
		u.Type, u.Importance = HearingChanged, High
	default:
		u.Type, u.Importance = ProgressAdded, Low
	}
	return u
}

func progressRef(i int, p snapshot.ProgressItem) Ref {
	return Ref{
		Kind:    RefProgress,
		Index:   i,
		Key:     ProgressKey(p),
		Date:    p.Date,
		Content: p.Content,
		Result:  p.Result,
	}
}

func documentChanges(prev, cur []snapshot.Document) []CaseUpdate {
	old := make(map[string]bool, len(prev))
	for _, doc := range prev {
		old[documentKey(doc)] = true
	}
	var updates []CaseUpdate
	for i, doc := range cur {
		if !old[documentKey(doc)] {
			updates = append(updates, documentAdded(i, doc))
		}
	}
	return updates
}

func documentAdded(i int, doc snapshot.Document) CaseUpdate {
	return CaseUpdate{
		Type:       DocumentAdded,
		Importance: Low,
		Summary:    strings.TrimSpace(doc.Date + " " + snapshot.CanonicalText(doc.Content)),
		Ref: Ref{
			Kind:    RefDocument,
			Index:   i,
			Key:     documentKey(doc),
			Date:    doc.Date,
			Content: doc.Content,
		},
	}
}

func lowerCourtChanges(prev, cur []snapshot.LowerCourt) []CaseUpdate {
	old := make(map[string]bool, len(prev))
	for _, lc := range prev {
		old[lowerCourtKey(lc)] = true
	}
	var updates []CaseUpdate
	for i, lc := range cur {
		if !old[lowerCourtKey(lc)] {
			updates = append(updates, lowerCourtAdded(i, lc))
		}
	}
	return updates
}

func lowerCourtAdded(i int, lc snapshot.LowerCourt) CaseUpdate {
	return CaseUpdate{
		Type:       LowerCourtAdded,
		Importance: Low,
		Summary:    strings.TrimSpace(lc.Court + " " + lc.CaseNo),
		Ref: Ref{
			Kind:     RefLowerCourt,
			Index:    i,
			Key:      lowerCourtKey(lc),
			Content:  lc.Court,
			NewValue: lc.CaseNo,
		},
	}
}

func basicInfoChanges(prev, cur []snapshot.BasicField) []CaseUpdate {
	old := make(map[string]string, len(prev))
	for _, f := range prev {
		old[f.Key] = snapshot.CanonicalText(f.Value)
	}

	var updates []CaseUpdate
	present := make(map[string]bool, len(cur))
	for i, f := range cur {
		present[f.Key] = true
		value := snapshot.CanonicalText(f.Value)
		if before, ok := old[f.Key]; ok && before == value {
			continue
		}
		if _, ok := old[f.Key]; !ok && value == "" {
			continue
		}
		updates = append(updates, basicFieldChanged(i, f.Key, old[f.Key], value))
	}

	// An entirely missing section is a scrape problem, not a retraction.
	if len(cur) == 0 {
		return updates
	}
	var removed []string
	for key, before := range old {
		if !present[key] && before != "" {
			removed = append(removed, key)
		}
	}
	sort.Strings(removed)
	for _, key := range removed {
		updates = append(updates, basicFieldChanged(-1, key, old[key], ""))
	}
	return updates
}

func basicFieldChanged(i int, key, before, after string) CaseUpdate {
	u := CaseUpdate{
		Type:       BasicInfoChanged,
		Importance: Low,
		Summary:    fmt.Sprintf("%s: %s", key, after),
		Ref: Ref{
			Kind:     RefBasicInfo,
			Index:    i,
			Key:      key,
			OldValue: before,
			NewValue: after,
		},
	}
	switch key {
	case "종국결과":
		if after != "" {
			u.Type, u.Importance = ResultAnnounced, High
			u.Summary = "종국결과: " + after
		}
	case "재판부":
		if after != "" {
			u.Type, u.Importance = StatusChanged, Medium
			u.Summary = "재판부 변경: " + after
		}
	}
	return u
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// Hash returns a SHA-256 hex digest over a canonical encoding of the whole
// snapshot. Text is whitespace-canonicalized first so cosmetic differences in
// the portal markup hash identically.
func Hash(s snapshot.CaseSnapshot) string {
	data, _ := json.Marshal(canonicalize(s))
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func canonicalize(s snapshot.CaseSnapshot) snapshot.CaseSnapshot {
	c := snapshot.CaseSnapshot{
		BasicInfo:       make([]snapshot.BasicField, len(s.BasicInfo)),
		Hearings:        make([]snapshot.Hearing, len(s.Hearings)),
		Progress:        make([]snapshot.ProgressItem, len(s.Progress)),
		Documents:       make([]snapshot.Document, len(s.Documents)),
		LowerCourtInfo:  make([]snapshot.LowerCourt, len(s.LowerCourtInfo)),
		Parties:         make([]snapshot.Party, len(s.Parties)),
		Representatives: make([]snapshot.Representative, len(s.Representatives)),
	}
	ct := snapshot.CanonicalText
	for i, f := range s.BasicInfo {
		c.BasicInfo[i] = snapshot.BasicField{Key: ct(f.Key), Value: ct(f.Value)}
	}
	for i, h := range s.Hearings {
		c.Hearings[i] = snapshot.Hearing{Date: ct(h.Date), Time: ct(h.Time), Type: ct(h.Type), Location: ct(h.Location), Result: ct(h.Result)}
	}
	for i, p := range s.Progress {
		c.Progress[i] = snapshot.ProgressItem{Date: ct(p.Date), Content: ct(p.Content), Result: ct(p.Result)}
	}
	for i, doc := range s.Documents {
		c.Documents[i] = snapshot.Document{Date: ct(doc.Date), Content: ct(doc.Content)}
	}
	for i, lc := range s.LowerCourtInfo {
		c.LowerCourtInfo[i] = snapshot.LowerCourt{Court: ct(lc.Court), CaseNo: ct(lc.CaseNo)}
	}
	for i, p := range s.Parties {
		c.Parties[i] = snapshot.Party{Label: ct(p.Label), Name: ct(p.Name), JudgmentArrivalDate: ct(p.JudgmentArrivalDate), FinalizationDate: ct(p.FinalizationDate)}
	}
	for i, r := range s.Representatives {
		c.Representatives[i] = snapshot.Representative{Label: ct(r.Label), Name: ct(r.Name), Firm: ct(r.Firm)}
	}
	return c
}

// NextHearing returns the earliest hearing dated on or after today that has
// no recorded result yet.
func (d *Detector) NextHearing(hearings []snapshot.Hearing) *snapshot.Hearing {
	today := d.today()

	var (
		best     *snapshot.Hearing
		bestTime time.Time
	)
	for i := range hearings {
		h := hearings[i]
		if snapshot.CanonicalText(h.Result) != "" {
			continue
		}
		at, err := snapshot.ParseDateTime(h.Date, h.Time, 0, d.loc)
		if err != nil || at.Before(today) {
			continue
		}
		if best == nil || at.Before(bestTime) {
			best, bestTime = &h, at
		}
	}
	return best
}
