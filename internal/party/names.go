package party

import (
	"regexp"
	"strings"
)

var (
	// Leading tags staff add by hand: "[의뢰인] 김철수", "(망)김철수", "亡 김철수".
	namePrefixPattern = regexp.MustCompile(`^\s*(?:(?:\[[^\]]*\]|\([^)]*\)|【[^】]*】|亡|망(?:\s))\s*)+`)

	maskedNamePatterns = []*regexp.Regexp{
		regexp.MustCompile(`^[갑을병정무기경신임계]$`),
		regexp.MustCompile(`^당사자\d+$`),
		regexp.MustCompile(`^원고\d*$`),
		regexp.MustCompile(`^피고\d*$`),
		regexp.MustCompile(`[가-힣]\s*[O○◯*＊]+`),
		regexp.MustCompile(`^[O○◯*＊\s]+$`),
	}
)

// SplitPrefix separates a manually added prefix from the base name.
func SplitPrefix(name string) (prefix, base string) {
	loc := namePrefixPattern.FindStringIndex(name)
	if loc == nil {
		return "", strings.TrimSpace(name)
	}
	return name[:loc[1]], strings.TrimSpace(name[loc[1]:])
}

// IsMasked reports whether a name is a placeholder or partially hidden form
// ("김OO", "갑", "당사자1") rather than a real name.
func IsMasked(name string) bool {
	_, base := SplitPrefix(name)
	base = strings.TrimSpace(base)
	if base == "" {
		return true
	}
	for _, p := range maskedNamePatterns {
		if p.MatchString(base) {
			return true
		}
	}
	return false
}

// MatchKey is the first rune of the name without prefixes or whitespace,
// used to bucket legacy rows against incoming parties.
func MatchKey(name string) string {
	_, base := SplitPrefix(name)
	base = strings.Join(strings.Fields(base), "")
	base = strings.TrimPrefix(base, "주식회사")
	for _, r := range base {
		return string(r)
	}
	return ""
}

// ResolveName decides the stored name when an existing name meets an
// incoming one. It keeps the existing name when it was manually overridden
// or is the fuller form of a masked incoming name, and otherwise takes the
// incoming name with any manual prefix of the existing name reapplied.
// preserved reports whether the existing base name was kept.
func ResolveName(incoming, existing string, manualOverride bool) (name string, preserved bool) {
	incoming = strings.TrimSpace(incoming)
	if strings.TrimSpace(existing) == "" {
		return incoming, false
	}

	prefix, existingBase := SplitPrefix(existing)
	incomingPrefix, incomingBase := SplitPrefix(incoming)

	if manualOverride || (!IsMasked(existingBase) && IsMasked(incomingBase)) {
		return strings.TrimSpace(existing), true
	}
	if prefix != "" && incomingPrefix == "" {
		return strings.TrimSpace(prefix) + " " + incomingBase, false
	}
	return incoming, false
}
