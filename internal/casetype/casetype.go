// Package casetype classifies Korean court case numbers and names the appeal
// or objection deadline that applies to each category.
package casetype

import (
	"regexp"
	"strings"
)

// Category groups case-type codes by procedure.
type Category string

const (
	Civil              Category = "civil"
	Family             Category = "family"
	FamilyNonLitigious Category = "family_nonlitigious"
	Criminal           Category = "criminal"
	Administrative     Category = "administrative"
	Execution          Category = "execution"
	Bankruptcy         Category = "bankruptcy"
	Other              Category = "other"
)

// Level is the instance a code belongs to.
type Level string

const (
	LevelFirst         Level = "1심"
	LevelAppeal        Level = "항소심"
	LevelFinalAppeal   Level = "상고심"
	LevelReAppeal      Level = "재항고"
	LevelSpecialAppeal Level = "특별항고"
	LevelRetrial       Level = "재심"
	LevelQuasiRetrial  Level = "준재심"
	LevelApplication   Level = "신청"
	LevelOther         Level = "기타"
)

// Info describes one case-type code.
type Info struct {
	Code           string   `json:"code"`
	Name           string   `json:"name"`
	Category       Category `json:"category"`
	Level          Level    `json:"level"`
	PlaintiffLabel string   `json:"plaintiffLabel"`
	DefendantLabel string   `json:"defendantLabel"`
}

// Deadline type identifiers shared with the deadline catalog.
const (
	DeadlineAppeal         = "DL_APPEAL"
	DeadlineCriminalAppeal = "DL_CRIMINAL_APPEAL"
	DeadlineFamilyNonLit   = "DL_FAMILY_NONLIT"
	DeadlineMediationObj   = "DL_MEDIATION_OBJ"
)

// Rule is the default appeal or objection deadline for a category.
type Rule struct {
	DeadlineType string `json:"deadlineType"`
	Days         int    `json:"days"`
}

// Resolution is the derived classification of one case number.
type Resolution struct {
	CaseNumber string   `json:"caseNumber"`
	Code       string   `json:"code"`
	Category   Category `json:"category"`
	Info       Info     `json:"info"`
	Rule       *Rule    `json:"rule,omitempty"`
}

var (
	caseNumberPattern = regexp.MustCompile(`\d{4}([가-힣]+)\d+`)

	byCode = func() map[string]Info {
		m := make(map[string]Info, len(codeTable))
		for _, info := range codeTable {
			m[info.Code] = info
		}
		return m
	}()

	// Family non-litigious (가사비송) codes, including their retrial and
	// correction variants. Matched only against family-category codes so
	// execution codes such as 카조 are not swept in.
	familyNonLitigious = map[string]bool{
		"르": true, "브": true, "스": true, "조": true,
		"즈기": true, "즈단": true, "즈합": true,
		"호": true, "호기": true, "호명": true, "호파": true, "호협": true,
		"재르": true, "재브": true, "재스": true,
		"준재르": true, "준재스": true,
		"정브": true, "정스": true,
	}

	categoryRules = map[Category]Rule{
		Civil:              {DeadlineType: DeadlineAppeal, Days: 14},
		Family:             {DeadlineType: DeadlineAppeal, Days: 14},
		Administrative:     {DeadlineType: DeadlineAppeal, Days: 14},
		Criminal:           {DeadlineType: DeadlineCriminalAppeal, Days: 7},
		FamilyNonLitigious: {DeadlineType: DeadlineFamilyNonLit, Days: 14},
	}
)

// ExtractCode returns the Hangul case-type code embedded in a case number,
// e.g. "가단" for "2024가단12345".
func ExtractCode(caseNumber string) (string, bool) {
	compact := strings.Join(strings.Fields(caseNumber), "")
	m := caseNumberPattern.FindStringSubmatch(compact)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// Lookup returns the table entry for a code.
func Lookup(code string) (Info, bool) {
	info, ok := byCode[code]
	return info, ok
}

// Codes returns a copy of the full code table.
func Codes() []Info {
	out := make([]Info, len(codeTable))
	copy(out, codeTable)
	return out
}

// Classify returns the effective category of a known code.
func Classify(info Info) Category {
	if info.Category == Family && familyNonLitigious[info.Code] {
		return FamilyNonLitigious
	}
	return info.Category
}

// RuleFor returns the default appeal rule for a category. Execution,
// bankruptcy and other categories have none.
func RuleFor(c Category) (Rule, bool) {
	r, ok := categoryRules[c]
	return r, ok
}

// MediationRule is the objection period against a mediation or settlement
// record. It is chosen from update context, never from the case number.
func MediationRule() Rule {
	return Rule{DeadlineType: DeadlineMediationObj, Days: 14}
}

// Resolve classifies a case number. It reports false when the number does not
// have the expected shape or carries a code outside the table; a known code in
// a category without an appeal rule resolves with a nil Rule.
func Resolve(caseNumber string) (Resolution, bool) {
	code, ok := ExtractCode(caseNumber)
	if !ok {
		return Resolution{}, false
	}
	info, ok := Lookup(code)
	if !ok {
		return Resolution{}, false
	}

	res := Resolution{
		CaseNumber: caseNumber,
		Code:       code,
		Category:   Classify(info),
		Info:       info,
	}
	if rule, ok := RuleFor(res.Category); ok {
		res.Rule = &rule
	}
	return res, true
}
