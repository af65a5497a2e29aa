package party

import (
	"context"
	"fmt"

	"github.com/JustJay7/court-case-sync/pkg/logger"
)

// Store persists party and representative rows for one case. Save inserts
// when the row has no ID and must set it.
type Store interface {
	SaveParty(ctx context.Context, caseID string, p *Party) error
	DeleteParty(ctx context.Context, caseID, id string) error
	SaveRepresentative(ctx context.Context, caseID string, r *Representative) error
}

// ApplyResult reports what Apply wrote. Partial is set when any row failed.
type ApplyResult struct {
	PartiesUpserted         int             `json:"partiesUpserted"`
	PartiesDeleted          int             `json:"partiesDeleted"`
	RepresentativesUpserted int             `json:"representativesUpserted"`
	RepresentativesKept     int             `json:"representativesKept"`
	ArrivalChanges          []ArrivalChange `json:"arrivalChanges,omitempty"`
	Errors                  []string        `json:"errors,omitempty"`
	Partial                 bool            `json:"partial"`
}

// Apply writes a plan row by row. A failing row is logged and skipped; the
// remaining rows are still written. Arrival changes are returned only for
// parties that were written, with their ids filled in.
func Apply(ctx context.Context, store Store, caseID string, plan Plan, log *logger.Logger) ApplyResult {
	if log == nil {
		log = logger.NewNop()
	}
	var result ApplyResult

	saved := make(map[int]bool, len(plan.Parties))
	for i := range plan.Parties {
		p := &plan.Parties[i]
		if err := store.SaveParty(ctx, caseID, p); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("party %q: %v", p.Name, err))
			log.Error("Failed to save party", "case_id", caseID, "party", p.Name, "error", err)
			continue
		}
		saved[i] = true
		result.PartiesUpserted++
	}

	for slot, legacyID := range plan.LegacyMerges {
		if !saved[slot] {
			continue
		}
		if err := store.DeleteParty(ctx, caseID, legacyID); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("delete legacy party %s: %v", legacyID, err))
			log.Error("Failed to delete merged legacy party", "case_id", caseID, "party_id", legacyID, "error", err)
			continue
		}
		result.PartiesDeleted++
	}

	for i := range plan.Representatives {
		r := &plan.Representatives[i]
		if err := store.SaveRepresentative(ctx, caseID, r); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("representative %q: %v", r.Name, err))
			log.Error("Failed to save representative", "case_id", caseID, "representative", r.Name, "error", err)
			continue
		}
		result.RepresentativesUpserted++
	}
	result.RepresentativesKept = len(plan.KeptRepresentatives)

	for _, c := range plan.ArrivalChanges {
		if !saved[c.Slot] {
			continue
		}
		c.PartyID = plan.Parties[c.Slot].ID
		result.ArrivalChanges = append(result.ArrivalChanges, c)
	}

	for _, w := range plan.Warnings {
		log.Warn("Party reconciliation warning", "case_id", caseID, "warning", w)
	}

	result.Partial = len(result.Errors) > 0
	return result
}
