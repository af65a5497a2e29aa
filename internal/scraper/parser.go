package scraper

import (
	"regexp"
	"strings"

	"github.com/JustJay7/court-case-sync/internal/snapshot"
)

// Table is one table read off the case page: the nearest heading, the header
// cells of its first header row, and the text of every body row.
type Table struct {
	Title   string     `json:"title"`
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

type section int

const (
	sectionUnknown section = iota
	sectionBasic
	sectionHearings
	sectionProgress
	sectionDocuments
	sectionLowerCourts
	sectionParties
	sectionRepresentatives
)

// Checked in order, more specific markers first.
var sectionTitles = []struct {
	markers []string
	section section
}{
	{[]string{"기본내용", "일반내용", "기본정보"}, sectionBasic},
	{[]string{"대리인"}, sectionRepresentatives},
	{[]string{"당사자"}, sectionParties},
	{[]string{"심급", "하급심", "원심"}, sectionLowerCourts},
	{[]string{"제출서류", "송달서류", "서류"}, sectionDocuments},
	{[]string{"진행내용", "진행"}, sectionProgress},
	{[]string{"기일"}, sectionHearings},
}

var (
	clockInCell = regexp.MustCompile(`\d{1,2}:\d{2}`)
	emptyMarker = regexp.MustCompile(`(없습니다|없음|데이터가 없)`)
)

func classifyTable(t Table) section {
	title := strings.ReplaceAll(snapshot.CanonicalText(t.Title), " ", "")
	for _, rule := range sectionTitles {
		for _, m := range rule.markers {
			if strings.Contains(title, m) {
				return rule.section
			}
		}
	}
	if len(t.Headers) == 0 && isKeyValueTable(t.Rows) {
		return sectionBasic
	}
	return sectionUnknown
}

func isKeyValueTable(rows [][]string) bool {
	for _, r := range rows {
		if len(r) >= 2 && len(r)%2 == 0 {
			return true
		}
	}
	return false
}

// MapTables maps the tables read off a case page onto a snapshot. The
// returned warnings name the expected sections that were not found; those
// sections are left empty.
func MapTables(tables []Table) (snapshot.CaseSnapshot, []string) {
	var snap snapshot.CaseSnapshot
	found := make(map[section]bool)

	for _, t := range tables {
		sec := classifyTable(t)
		if sec == sectionUnknown {
			continue
		}
		found[sec] = true
		cols := newColumns(t.Headers)
		for _, row := range t.Rows {
			if isPlaceholderRow(row) {
				continue
			}
			switch sec {
			case sectionBasic:
				snap.BasicInfo = append(snap.BasicInfo, basicFields(row)...)
			case sectionHearings:
				if h, ok := hearingRow(cols, row); ok {
					snap.Hearings = append(snap.Hearings, h)
				}
			case sectionProgress:
				if p, ok := progressRow(cols, row); ok {
					snap.Progress = append(snap.Progress, p)
				}
			case sectionDocuments:
				if d, ok := documentRow(cols, row); ok {
					snap.Documents = append(snap.Documents, d)
				}
			case sectionLowerCourts:
				if lc, ok := lowerCourtRow(cols, row); ok {
					snap.LowerCourtInfo = append(snap.LowerCourtInfo, lc)
				}
			case sectionParties:
				if p, ok := partyRow(cols, row); ok {
					snap.Parties = append(snap.Parties, p)
				}
			case sectionRepresentatives:
				if r, ok := representativeRow(cols, row); ok {
					snap.Representatives = append(snap.Representatives, r)
				}
			}
		}
	}

	var warnings []string
	for _, req := range []struct {
		sec  section
		name string
	}{
		{sectionBasic, "basic info"},
		{sectionHearings, "hearings"},
		{sectionProgress, "progress"},
	} {
		if !found[req.sec] {
			warnings = append(warnings, "section not found: "+req.name)
		}
	}
	return snap, warnings
}

// isPlaceholderRow drops the single-cell "no data" rows the portal renders
// for empty tables.
func isPlaceholderRow(row []string) bool {
	var cells []string
	for _, c := range row {
		if t := snapshot.CanonicalText(c); t != "" {
			cells = append(cells, t)
		}
	}
	switch len(cells) {
	case 0:
		return true
	case 1:
		return emptyMarker.MatchString(cells[0])
	}
	return false
}

// basicFields reads alternating label/value cells.
func basicFields(row []string) []snapshot.BasicField {
	var out []snapshot.BasicField
	for i := 0; i+1 < len(row); i += 2 {
		key := snapshot.CanonicalText(row[i])
		if key == "" {
			continue
		}
		out = append(out, snapshot.BasicField{Key: key, Value: snapshot.CanonicalText(row[i+1])})
	}
	return out
}

// columns resolves header names to cell positions. Lookups take several
// candidate names because the portal is not consistent between tabs: an
// exact header match wins, then the first header containing a candidate.
type columns []string

func newColumns(headers []string) columns {
	c := make(columns, len(headers))
	for i, h := range headers {
		c[i] = strings.ReplaceAll(snapshot.CanonicalText(h), " ", "")
	}
	return c
}

func (c columns) cell(row []string, names ...string) string {
	for _, n := range names {
		for i, h := range c {
			if h == n && i < len(row) {
				return snapshot.CanonicalText(row[i])
			}
		}
	}
	for _, n := range names {
		for i, h := range c {
			if strings.Contains(h, n) && i < len(row) {
				return snapshot.CanonicalText(row[i])
			}
		}
	}
	return ""
}

func (c columns) positional(row []string, i int) string {
	if len(c) > 0 || i >= len(row) {
		return ""
	}
	return snapshot.CanonicalText(row[i])
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

func hearingRow(c columns, row []string) (snapshot.Hearing, bool) {
	h := snapshot.Hearing{
		Date:     firstNonEmpty(c.cell(row, "일자", "일시", "날짜"), c.positional(row, 0)),
		Time:     firstNonEmpty(c.cell(row, "시각", "시간"), c.positional(row, 1)),
		Type:     firstNonEmpty(c.cell(row, "기일구분", "구분", "종류"), c.positional(row, 2)),
		Location: firstNonEmpty(c.cell(row, "기일장소", "장소"), c.positional(row, 3)),
		Result:   firstNonEmpty(c.cell(row, "결과"), c.positional(row, 4)),
	}
	// "2025.04.08 14:00" in a single date cell.
	if h.Time == "" {
		if clock := clockInCell.FindString(h.Date); clock != "" {
			h.Time = clock
			h.Date = strings.TrimSpace(strings.Replace(h.Date, clock, "", 1))
		}
	}
	if h.Date == "" || h.Type == "" {
		return snapshot.Hearing{}, false
	}
	return h, true
}

func progressRow(c columns, row []string) (snapshot.ProgressItem, bool) {
	p := snapshot.ProgressItem{
		Date:    firstNonEmpty(c.cell(row, "일자", "날짜"), c.positional(row, 0)),
		Content: firstNonEmpty(c.cell(row, "내용", "진행내용"), c.positional(row, 1)),
		Result:  firstNonEmpty(c.cell(row, "결과"), c.positional(row, 2)),
	}
	if p.Content == "" {
		return snapshot.ProgressItem{}, false
	}
	return p, true
}

func documentRow(c columns, row []string) (snapshot.Document, bool) {
	d := snapshot.Document{
		Date:    firstNonEmpty(c.cell(row, "일자", "접수일", "날짜"), c.positional(row, 0)),
		Content: firstNonEmpty(c.cell(row, "내용", "서류명"), c.positional(row, 1)),
	}
	if d.Content == "" {
		return snapshot.Document{}, false
	}
	return d, true
}

func lowerCourtRow(c columns, row []string) (snapshot.LowerCourt, bool) {
	lc := snapshot.LowerCourt{
		Court:  firstNonEmpty(c.cell(row, "법원", "심급"), c.positional(row, 0)),
		CaseNo: firstNonEmpty(c.cell(row, "사건번호"), c.positional(row, 1)),
	}
	if lc.CaseNo == "" {
		return snapshot.LowerCourt{}, false
	}
	return lc, true
}

func partyRow(c columns, row []string) (snapshot.Party, bool) {
	p := snapshot.Party{
		Label:               firstNonEmpty(c.cell(row, "구분", "당사자구분"), c.positional(row, 0)),
		Name:                firstNonEmpty(c.cell(row, "이름", "성명", "당사자명"), c.positional(row, 1)),
		JudgmentArrivalDate: firstNonEmpty(c.cell(row, "판결도달일", "송달일"), c.positional(row, 2)),
		FinalizationDate:    firstNonEmpty(c.cell(row, "확정일"), c.positional(row, 3)),
	}
	if p.Label == "" || p.Name == "" {
		return snapshot.Party{}, false
	}
	return p, true
}

func representativeRow(c columns, row []string) (snapshot.Representative, bool) {
	r := snapshot.Representative{
		Label: firstNonEmpty(c.cell(row, "구분", "대리인구분"), c.positional(row, 0)),
		Name:  firstNonEmpty(c.cell(row, "이름", "성명", "대리인명"), c.positional(row, 1)),
		Firm:  firstNonEmpty(c.cell(row, "법무법인", "소속"), c.positional(row, 2)),
	}
	if r.Label == "" || r.Name == "" {
		return snapshot.Representative{}, false
	}
	return r, true
}
