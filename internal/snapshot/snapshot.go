// Package snapshot defines the normalized shape of one case's state as shown
// by the court portal at a point in time.
package snapshot

import (
	"time"
)

// BasicField is one label/value pair from the portal's general-information
// table. Order matches the portal's display order.
type BasicField struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Hearing is one scheduled or past hearing (기일).
type Hearing struct {
	Date     string `json:"date"`
	Time     string `json:"time"`
	Type     string `json:"type"`
	Location string `json:"location"`
	Result   string `json:"result,omitempty"`
}

// ProgressItem is one row of the progress log (진행내용).
type ProgressItem struct {
	Date    string `json:"date"`
	Content string `json:"content"`
	Result  string `json:"result,omitempty"`
}

// Document is one submitted or served document entry.
type Document struct {
	Date    string `json:"date"`
	Content string `json:"content"`
}

// LowerCourt identifies a related case in a lower instance.
type LowerCourt struct {
	Court  string `json:"court"`
	CaseNo string `json:"caseNo"`
}

// Party is one party row as delivered by the portal. Name may be masked
// (e.g. "김OO").
type Party struct {
	Label               string `json:"label"`
	Name                string `json:"name"`
	JudgmentArrivalDate string `json:"judgmentArrivalDate,omitempty"`
	FinalizationDate    string `json:"finalizationDate,omitempty"`
}

// Representative is one attorney/agent row as delivered by the portal.
type Representative struct {
	Label string `json:"label"`
	Name  string `json:"name"`
	Firm  string `json:"firm,omitempty"`
}

// CaseSnapshot is one capture of a case. It is treated as immutable once
// captured.
type CaseSnapshot struct {
	BasicInfo       []BasicField     `json:"basicInfo"`
	Hearings        []Hearing        `json:"hearings"`
	Progress        []ProgressItem   `json:"progress"`
	Documents       []Document       `json:"documents"`
	LowerCourtInfo  []LowerCourt     `json:"lowerCourtInfo"`
	Parties         []Party          `json:"parties,omitempty"`
	Representatives []Representative `json:"representatives,omitempty"`
}

// Get returns the value for a basic-info key.
func (s *CaseSnapshot) Get(key string) (string, bool) {
	for _, f := range s.BasicInfo {
		if f.Key == key {
			return f.Value, true
		}
	}
	return "", false
}

// IsEmpty reports whether the snapshot carries no content at all.
func (s *CaseSnapshot) IsEmpty() bool {
	return len(s.BasicInfo) == 0 && len(s.Hearings) == 0 && len(s.Progress) == 0 &&
		len(s.Documents) == 0 && len(s.LowerCourtInfo) == 0 &&
		len(s.Parties) == 0 && len(s.Representatives) == 0
}

// Capture pairs a snapshot with the moment it was taken.
type Capture struct {
	CaseID     string
	CapturedAt time.Time
	Snapshot   CaseSnapshot
}

// CaseRef is what a snapshot source needs to look a case up on the portal.
type CaseRef struct {
	ID         string
	CaseNumber string
	CourtName  string
	PartyName  string
}
