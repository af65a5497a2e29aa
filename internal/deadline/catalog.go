// Package deadline holds the statutory deadline catalog, the date arithmetic
// for it, and the registrar that turns detected case events into deadline
// records.
package deadline

import "github.com/JustJay7/court-case-sync/internal/casetype"

// CatalogVersion identifies the revision of the built-in catalog.
const CatalogVersion = "2025.1"

// Type identifies a deadline kind in the catalog.
type Type string

const (
	Appeal                Type = casetype.DeadlineAppeal
	CriminalAppeal        Type = casetype.DeadlineCriminalAppeal
	FamilyNonLitigious    Type = casetype.DeadlineFamilyNonLit
	ImmediateAppeal       Type = "DL_IMM_APPEAL"
	AppealBrief           Type = "DL_APPEAL_BRIEF"
	CriminalAppealBrief   Type = "DL_CRIMINAL_APPEAL_BRIEF"
	FinalAppealBrief      Type = "DL_FINAL_APPEAL_BRIEF"
	CriminalFinalBrief    Type = "DL_CRIMINAL_FINAL_BRIEF"
	MediationObjection    Type = casetype.DeadlineMediationObj
	Retrial               Type = "DL_RETRIAL"
	PaymentOrderObjection Type = "DL_PAYMENT_ORDER"
)

// Definition is one catalog entry.
type Definition struct {
	Type         Type   `json:"type"`
	Label        string `json:"label"`
	Days         int    `json:"days"`
	TriggerEvent string `json:"triggerEvent"`
}

var catalog = []Definition{
	{Type: Appeal, Label: "항소기간", Days: 14, TriggerEvent: "판결 송달일"},
	{Type: CriminalAppeal, Label: "형사항소기간", Days: 7, TriggerEvent: "판결 선고일"},
	{Type: FamilyNonLitigious, Label: "항고기간", Days: 14, TriggerEvent: "심판 고지일"},
	{Type: ImmediateAppeal, Label: "즉시항고기간", Days: 7, TriggerEvent: "결정 고지일"},
	{Type: AppealBrief, Label: "항소이유서제출기한", Days: 40, TriggerEvent: "기록접수통지 송달일"},
	{Type: CriminalAppealBrief, Label: "형사항소이유서제출기한", Days: 20, TriggerEvent: "소송기록접수통지 송달일"},
	{Type: FinalAppealBrief, Label: "상고이유서제출기한", Days: 20, TriggerEvent: "기록접수통지 송달일"},
	{Type: CriminalFinalBrief, Label: "형사상고이유서제출기한", Days: 20, TriggerEvent: "소송기록접수통지 송달일"},
	{Type: MediationObjection, Label: "조정이의기간", Days: 14, TriggerEvent: "조정·화해 성립일"},
	{Type: Retrial, Label: "재심기한", Days: 30, TriggerEvent: "재심사유 안 날"},
	{Type: PaymentOrderObjection, Label: "지급명령이의기간", Days: 14, TriggerEvent: "지급명령 송달일"},
}

var byType = func() map[Type]Definition {
	m := make(map[Type]Definition, len(catalog))
	for _, d := range catalog {
		m[d.Type] = d
	}
	return m
}()

// Lookup returns the catalog entry for t.
func Lookup(t Type) (Definition, bool) {
	d, ok := byType[t]
	return d, ok
}

// Catalog returns a copy of every catalog entry.
func Catalog() []Definition {
	out := make([]Definition, len(catalog))
	copy(out, catalog)
	return out
}
