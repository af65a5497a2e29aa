// Package party reconciles the party and representative lists scraped from
// the portal with the rows already stored for a case.
package party

import (
	"fmt"
	"strings"
	"time"

	"github.com/JustJay7/court-case-sync/internal/snapshot"
)

// Party is a stored party row. A nil SourceIndex marks a legacy row entered
// before automated sync.
type Party struct {
	ID                  string
	Name                string
	Type                Type
	Label               string
	Order               int
	SourceIndex         *int
	ManualOverride      bool
	IsOurClient         bool
	ClientID            string
	FeeAllocation       int64
	IsPrimary           bool
	JudgmentArrivalDate string
	FinalizationDate    string
	SyncedFromSource    bool
	RawName             string
	RawLabel            string
	Notes               string
}

// Side returns the side of the party's type.
func (p Party) Side() Side {
	return SideOf(p.Type)
}

// Representative is a stored attorney or agent row, identified per case by
// (Label, Name).
type Representative struct {
	ID               string
	Name             string
	Label            string
	Firm             string
	IsOurFirm        bool
	ManualOverride   bool
	SyncedFromSource bool
}

// ArrivalChange is a judgment arrival date that appeared or moved for a
// party. Slot indexes Plan.Parties; the party id is only known for
// existing rows until the plan is applied.
type ArrivalChange struct {
	Slot    int
	PartyID string
	Label   string
	Type    Type
	OldDate string
	NewDate string
}

// Plan is the outcome of reconciling one case. It describes writes without
// performing them.
type Plan struct {
	Parties []Party
	// LegacyMerges maps a slot in Parties to the legacy row id folded into
	// it. The legacy row is deleted only after the slot is written.
	LegacyMerges        map[int]string
	Representatives     []Representative
	KeptRepresentatives []Representative
	ArrivalChanges      []ArrivalChange
	Warnings            []string
}

type bucketKey struct {
	side Side
	char string
}

// Reconcile merges incoming portal lists into the existing rows of a case.
func Reconcile(existing []Party, existingReps []Representative, incoming []snapshot.Party, incomingReps []snapshot.Representative) Plan {
	plan := Plan{LegacyMerges: make(map[int]string)}

	byIndex := make(map[int]Party)
	var legacy []Party
	for _, p := range existing {
		if p.SourceIndex == nil {
			legacy = append(legacy, p)
			continue
		}
		byIndex[*p.SourceIndex] = p
	}

	legacyFor := matchLegacy(legacy, incoming, &plan)

	for i, in := range incoming {
		label := strings.TrimSpace(in.Label)
		sourceName := strings.TrimSpace(in.Name)
		typ := TypeForLabel(label)

		prior, hasPrior := byIndex[i]
		var merged *Party
		if lp, ok := legacyFor[i]; ok {
			merged = &lp
		}

		row := Party{
			Type:             typ,
			Label:            label,
			Order:            i + 1,
			SourceIndex:      intPtr(i),
			SyncedFromSource: true,
			RawName:          sourceName,
			RawLabel:         label,
		}
		if hasPrior {
			row.ID = prior.ID
		}
		carryForward(&row, prior, hasPrior, merged)

		candidate := ""
		switch {
		case merged != nil && merged.Name != "":
			candidate = merged.Name
		case hasPrior:
			candidate = prior.Name
		}
		name, preserved := ResolveName(sourceName, candidate, row.ManualOverride)
		row.Name = name
		if preserved {
			_, base := SplitPrefix(candidate)
			if base != sourceName {
				row.ManualOverride = true
			}
		}

		storedArrival := ""
		storedFinal := ""
		if hasPrior {
			storedArrival, storedFinal = prior.JudgmentArrivalDate, prior.FinalizationDate
		} else if merged != nil {
			storedArrival, storedFinal = merged.JudgmentArrivalDate, merged.FinalizationDate
		}
		newArrival := normalizeDate(in.JudgmentArrivalDate)
		row.JudgmentArrivalDate = storedArrival
		if newArrival != "" {
			row.JudgmentArrivalDate = newArrival
			if newArrival != normalizeDate(storedArrival) {
				plan.ArrivalChanges = append(plan.ArrivalChanges, ArrivalChange{
					Slot:    i,
					PartyID: row.ID,
					Label:   label,
					Type:    typ,
					OldDate: storedArrival,
					NewDate: newArrival,
				})
			}
		}
		row.FinalizationDate = storedFinal
		if f := normalizeDate(in.FinalizationDate); f != "" {
			row.FinalizationDate = f
		}

		plan.Parties = append(plan.Parties, row)
		if merged != nil {
			plan.LegacyMerges[i] = merged.ID
		}
	}

	enforcePrimary(&plan, existing, len(incoming))

	plan.Representatives, plan.KeptRepresentatives = reconcileRepresentatives(existingReps, incomingReps)
	return plan
}

// matchLegacy pairs legacy rows with incoming slots when exactly one legacy
// row and exactly one incoming party share a (side, first rune) bucket.
func matchLegacy(legacy []Party, incoming []snapshot.Party, plan *Plan) map[int]Party {
	out := make(map[int]Party)
	if len(legacy) == 0 {
		return out
	}

	slots := make(map[bucketKey][]int)
	for i, in := range incoming {
		side := SideOf(TypeForLabel(in.Label))
		char := MatchKey(in.Name)
		if side == SideNone || char == "" {
			continue
		}
		k := bucketKey{side: side, char: char}
		slots[k] = append(slots[k], i)
	}

	rows := make(map[bucketKey][]Party)
	var order []bucketKey
	for _, lp := range legacy {
		if strings.TrimSpace(lp.Name) == "" {
			continue
		}
		if IsNonClientLabel(lp.Label) || IsNonClientLabel(lp.RawLabel) {
			continue
		}
		side := lp.Side()
		char := MatchKey(lp.Name)
		if side == SideNone || char == "" {
			continue
		}
		k := bucketKey{side: side, char: char}
		if _, seen := rows[k]; !seen {
			order = append(order, k)
		}
		rows[k] = append(rows[k], lp)
	}

	for _, k := range order {
		candidates := slots[k]
		legacyRows := rows[k]
		switch {
		case len(candidates) == 0:
			continue
		case len(candidates) > 1 || len(legacyRows) > 1:
			plan.Warnings = append(plan.Warnings, fmt.Sprintf(
				"ambiguous legacy party match for %s side starting with %q: %d legacy rows, %d incoming parties; left unmerged",
				k.side, k.char, len(legacyRows), len(candidates)))
			continue
		}
		out[candidates[0]] = legacyRows[0]
	}
	return out
}

func carryForward(row *Party, prior Party, hasPrior bool, merged *Party) {
	if hasPrior {
		row.ManualOverride = prior.ManualOverride
		row.IsOurClient = prior.IsOurClient
		row.ClientID = prior.ClientID
		row.FeeAllocation = prior.FeeAllocation
		row.IsPrimary = prior.IsPrimary
		row.Notes = prior.Notes
	}
	if merged == nil {
		return
	}
	row.ManualOverride = row.ManualOverride || merged.ManualOverride
	row.IsOurClient = row.IsOurClient || merged.IsOurClient
	row.IsPrimary = row.IsPrimary || merged.IsPrimary
	if row.ClientID == "" {
		row.ClientID = merged.ClientID
	}
	if row.FeeAllocation == 0 {
		row.FeeAllocation = merged.FeeAllocation
	}
	if row.Notes == "" {
		row.Notes = merged.Notes
	}
}

// enforcePrimary leaves exactly one primary party per non-empty side. Rows
// outside the incoming list (stale indexed rows, unmerged legacy rows) take
// part and are added to the plan when their flag changes.
func enforcePrimary(plan *Plan, existing []Party, incomingCount int) {
	mergedIDs := make(map[string]bool, len(plan.LegacyMerges))
	for _, id := range plan.LegacyMerges {
		mergedIDs[id] = true
	}

	var others []Party
	for _, p := range existing {
		if p.SourceIndex != nil && *p.SourceIndex < incomingCount {
			continue
		}
		if p.SourceIndex == nil && mergedIDs[p.ID] {
			continue
		}
		others = append(others, p)
	}

	// Incoming slots first, so the first processed row wins ties.
	type ref struct {
		slot  int
		other int
	}
	var refs []ref
	for i := range plan.Parties {
		refs = append(refs, ref{slot: i, other: -1})
	}
	for i := range others {
		refs = append(refs, ref{slot: -1, other: i})
	}
	get := func(r ref) *Party {
		if r.slot >= 0 {
			return &plan.Parties[r.slot]
		}
		return &others[r.other]
	}

	changed := make(map[int]bool)
	for _, side := range []Side{SidePlaintiff, SideDefendant} {
		var members []ref
		primary := -1
		for _, r := range refs {
			p := get(r)
			if p.Side() != side {
				continue
			}
			members = append(members, r)
			if p.IsPrimary {
				if primary == -1 {
					primary = len(members) - 1
				} else {
					p.IsPrimary = false
					if r.other >= 0 {
						changed[r.other] = true
					}
				}
			}
		}
		if len(members) > 0 && primary == -1 {
			r := members[0]
			get(r).IsPrimary = true
			if r.other >= 0 {
				changed[r.other] = true
			}
		}
	}

	for i, p := range others {
		if changed[i] {
			plan.Parties = append(plan.Parties, p)
		}
	}
}

func reconcileRepresentatives(existing []Representative, incoming []snapshot.Representative) (upserts, kept []Representative) {
	byKey := make(map[string]Representative, len(existing))
	for _, r := range existing {
		byKey[repKey(r.Label, r.Name)] = r
	}

	seen := make(map[string]bool, len(incoming))
	for _, in := range incoming {
		label := strings.TrimSpace(in.Label)
		name := strings.TrimSpace(in.Name)
		if name == "" {
			continue
		}
		key := repKey(label, name)
		if seen[key] {
			continue
		}
		seen[key] = true

		prior, ok := byKey[key]
		if !ok {
			upserts = append(upserts, Representative{
				Name:             name,
				Label:            label,
				Firm:             strings.TrimSpace(in.Firm),
				SyncedFromSource: true,
			})
			continue
		}
		if prior.ManualOverride {
			kept = append(kept, prior)
			continue
		}
		prior.Firm = strings.TrimSpace(in.Firm)
		prior.SyncedFromSource = true
		upserts = append(upserts, prior)
	}
	return upserts, kept
}

func repKey(label, name string) string {
	return snapshot.CanonicalText(label) + ":" + snapshot.CanonicalText(name)
}

func normalizeDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if t, err := snapshot.ParseDate(s, time.UTC); err == nil {
		return snapshot.FormatDate(t)
	}
	return snapshot.CanonicalText(s)
}

func intPtr(i int) *int {
	return &i
}
