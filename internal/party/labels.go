package party

import (
	"regexp"
	"strings"
)

// Type is the normalized role of a party.
type Type string

const (
	Plaintiff    Type = "plaintiff"
	Defendant    Type = "defendant"
	Creditor     Type = "creditor"
	Debtor       Type = "debtor"
	Applicant    Type = "applicant"
	Respondent   Type = "respondent"
	ThirdDebtor  Type = "third_debtor"
	Actor        Type = "actor"
	Victim       Type = "victim"
	Assistant    Type = "assistant"
	Juvenile     Type = "juvenile"
	Investigator Type = "investigator"
	Accused      Type = "accused"
	Related      Type = "related"
)

// Side groups party types into the two sides of a case.
type Side string

const (
	SideNone      Side = ""
	SidePlaintiff Side = "plaintiff"
	SideDefendant Side = "defendant"
)

var labelTypes = map[string]Type{
	"원고":     Plaintiff,
	"피고":     Defendant,
	"채권자":    Creditor,
	"채무자":    Debtor,
	"신청인":    Applicant,
	"피신청인":   Respondent,
	"항소인":    Plaintiff,
	"피항소인":   Defendant,
	"상고인":    Plaintiff,
	"피상고인":   Defendant,
	"재항고인":   Plaintiff,
	"항고인":    Plaintiff,
	"피항고인":   Defendant,
	"상대방":    Defendant,
	"청구인":    Applicant,
	"피청구인":   Respondent,
	"제3채무자":  ThirdDebtor,
	"압류채권자":  Creditor,
	"행위자":    Actor,
	"피해아동":   Victim,
	"피해자":    Victim,
	"보조인":    Assistant,
	"보호소년":   Juvenile,
	"조사관":    Investigator,
	"피고인":    Accused,
	"피고인명":   Accused,
	"검사":     Plaintiff,
	"검사/항소인": Plaintiff,
	"관련자":    Related,
	"소송관계인":  Related,
	"사건본인":   Related,
}

// Ordered so that longer, more specific labels win over their substrings.
var labelFallbacks = []struct {
	pattern *regexp.Regexp
	typ     Type
}{
	{regexp.MustCompile(`피고인명|피고인`), Accused},
	{regexp.MustCompile(`피신청인|피청구인`), Respondent},
	{regexp.MustCompile(`피항소인|피상고인|피항고인`), Defendant},
	{regexp.MustCompile(`피고`), Defendant},
	{regexp.MustCompile(`상대방`), Defendant},
	{regexp.MustCompile(`항소인|상고인|재항고인|항고인`), Plaintiff},
	{regexp.MustCompile(`원고`), Plaintiff},
	{regexp.MustCompile(`신청인|청구인`), Applicant},
	{regexp.MustCompile(`제3채무자`), ThirdDebtor},
	{regexp.MustCompile(`압류채권자|채권자`), Creditor},
	{regexp.MustCompile(`채무자`), Debtor},
	{regexp.MustCompile(`행위자`), Actor},
	{regexp.MustCompile(`피해아동|피해자`), Victim},
	{regexp.MustCompile(`보조인`), Assistant},
	{regexp.MustCompile(`보호소년`), Juvenile},
	{regexp.MustCompile(`조사관`), Investigator},
	{regexp.MustCompile(`검사`), Plaintiff},
	{regexp.MustCompile(`관련자|소송관계인|사건본인`), Related},
}

var (
	labelSuffixPattern = regexp.MustCompile(`[(\[].*$`)
	trailingDigits     = regexp.MustCompile(`\d+$`)
)

// NormalizeLabel strips parenthesized qualifiers and trailing ordinals from a
// portal label: "원고2 (선정당사자)" becomes "원고".
func NormalizeLabel(label string) string {
	s := strings.TrimSpace(label)
	s = strings.TrimSpace(labelSuffixPattern.ReplaceAllString(s, ""))
	s = strings.TrimSpace(trailingDigits.ReplaceAllString(s, ""))
	return s
}

// TypeForLabel maps a portal label to a party type. Labels that match
// nothing are Related, which has no side.
func TypeForLabel(label string) Type {
	normalized := NormalizeLabel(label)
	if t, ok := labelTypes[normalized]; ok {
		return t
	}
	candidate := normalized
	if candidate == "" {
		candidate = strings.TrimSpace(label)
	}
	for _, fb := range labelFallbacks {
		if fb.pattern.MatchString(candidate) {
			return fb.typ
		}
	}
	return Related
}

// SideOf returns the side a party type belongs to.
func SideOf(t Type) Side {
	switch t {
	case Plaintiff, Creditor, Applicant, Actor:
		return SidePlaintiff
	case Defendant, Debtor, Respondent, ThirdDebtor, Juvenile, Accused, Victim:
		return SideDefendant
	}
	return SideNone
}

var nonClientLabels = []string{"사건본인", "제3자", "제3채무자", "참가인", "보조참가인", "증인", "감정인"}

// IsNonClientLabel reports whether a label names someone who is never a
// client of the firm (a witness, a third-party debtor, ...).
func IsNonClientLabel(label string) bool {
	if label == "" {
		return false
	}
	for _, l := range nonClientLabels {
		if strings.Contains(label, l) {
			return true
		}
	}
	return false
}

// IsAppealable reports whether a party with this label and type can lodge an
// appeal, and so gets a per-party appeal deadline.
func IsAppealable(label string, t Type) bool {
	return SideOf(t) != SideNone && !IsNonClientLabel(label)
}
