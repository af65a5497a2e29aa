// Package notify decides which detected updates are worth telling someone
// about and hands them to an external delivery worker.
package notify

import (
	"github.com/JustJay7/court-case-sync/internal/detector"
)

// Category routes a notification to a delivery template.
type Category string

const (
	CategoryHearing  Category = "hearing_reminder"
	CategoryDeadline Category = "deadline_reminder"
	CategoryManual   Category = "manual"
)

// Policy selects the updates that qualify for notification.
type Policy struct {
	MinImportance detector.Importance
}

// DefaultPolicy notifies on everything except low-importance updates.
func DefaultPolicy() Policy {
	return Policy{MinImportance: detector.Medium}
}

// Select returns the qualifying updates in their original order.
func (p Policy) Select(updates []detector.CaseUpdate) []detector.CaseUpdate {
	floor := p.MinImportance
	if floor == "" {
		floor = detector.Medium
	}
	var out []detector.CaseUpdate
	for _, u := range updates {
		if u.Importance.Rank() >= floor.Rank() {
			out = append(out, u)
		}
	}
	return out
}

// Item is one update prepared for delivery.
type Item struct {
	Update   detector.CaseUpdate `json:"update"`
	Label    string              `json:"label"`
	Category Category            `json:"category"`
	Urgent   bool                `json:"urgent"`
}

// Classify attaches delivery routing to an update.
func Classify(u detector.CaseUpdate) Item {
	item := Item{Update: u, Label: u.Type.Label(), Category: CategoryManual}
	switch u.Type {
	case detector.HearingNew, detector.HearingChanged, detector.HearingCanceled:
		item.Category, item.Urgent = CategoryHearing, true
	case detector.HearingResult:
		item.Category = CategoryHearing
	case detector.ResultAnnounced, detector.MediationConcluded:
		item.Category, item.Urgent = CategoryHearing, true
	case detector.AppealFiled:
		item.Category, item.Urgent = CategoryDeadline, true
	}
	return item
}
