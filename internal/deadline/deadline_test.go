package deadline

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JustJay7/court-case-sync/internal/casetype"
	"github.com/JustJay7/court-case-sync/internal/detector"
	"github.com/JustJay7/court-case-sync/internal/snapshot"
)

var kst = time.FixedZone("KST", 9*3600)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, kst)
}

type memStore struct {
	policy  Policy
	rows    map[string]*Deadline
	failFor Type
	saves   int
}

func newMemStore() *memStore {
	return &memStore{rows: make(map[string]*Deadline)}
}

func (m *memStore) key(caseID string, t Type, partyID string) string {
	return caseID + "|" + string(t) + "|" + partyID
}

func (m *memStore) FindDeadline(_ context.Context, caseID string, t Type, partyID string) (*Deadline, error) {
	d, ok := m.rows[m.key(caseID, t, partyID)]
	if !ok {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}

func (m *memStore) SaveDeadline(_ context.Context, d *Deadline) error {
	if d.Type == m.failFor {
		return errors.New("disk full")
	}
	def, _ := Lookup(d.Type)
	d.DeadlineDate = m.policy.DueDate(d.TriggerDate, def.Days, d.ElectronicService)
	cp := *d
	m.rows[m.key(d.CaseID, d.Type, d.PartyID)] = &cp
	m.saves++
	return nil
}

func resolve(t *testing.T, number string) *casetype.Resolution {
	t.Helper()
	res, ok := casetype.Resolve(number)
	require.True(t, ok)
	return &res
}

func judgmentHearing(date string) detector.CaseUpdate {
	return detector.CaseUpdate{
		Type:       detector.HearingNew,
		Importance: detector.High,
		Ref:        detector.Ref{Kind: detector.RefHearing, Date: date, Time: "14:00", Type: "판결선고기일"},
	}
}

func TestIsZeroHourService(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"2025.04.08 0시 도달", true},
		{"2025-04-08 00시 도달", true},
		{" 2025.4.8 0시 도달 ", true},
		{"2025.04.08 도달", false},
		{"2025.04.08 14:30 도달", false},
		{"2025.04.08 10시 도달", false},
		{"2025.04.08 12시 도달", false},
		{"12시 도달", false},
		{"0시 도달", false},
		{"2025.04.08 0시 도달 (공시송달)", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, IsZeroHourService(tt.text))
		})
	}
}

func TestDueDate(t *testing.T) {
	trigger := day(2025, 4, 8)

	t.Run("plain calendar arithmetic", func(t *testing.T) {
		assert.Equal(t, day(2025, 4, 22), Policy{}.DueDate(trigger, 14, false))
		assert.Equal(t, day(2025, 4, 22), Policy{}.DueDate(trigger, 14, true))
	})

	t.Run("zero hour counts the first day", func(t *testing.T) {
		p := Policy{ZeroHourIncludesFirstDay: true}
		assert.Equal(t, day(2025, 4, 21), p.DueDate(trigger, 14, true))
		assert.Equal(t, day(2025, 4, 22), p.DueDate(trigger, 14, false))
	})

	t.Run("non business day rolls forward", func(t *testing.T) {
		p := Policy{ShiftNonBusinessDays: true}
		// 2025-10-05 is a Sunday inside the 추석 holidays running to 10-09.
		assert.Equal(t, day(2025, 10, 10), p.DueDate(day(2025, 9, 21), 14, false))
		// 2025-04-12 is a Saturday.
		assert.Equal(t, day(2025, 4, 14), p.DueDate(day(2025, 4, 5), 7, false))
	})

	t.Run("custom holidays", func(t *testing.T) {
		p := Policy{ShiftNonBusinessDays: true, Holidays: []string{"2025-04-22"}}
		assert.Equal(t, day(2025, 4, 23), p.DueDate(trigger, 14, false))
	})
}

func TestPolicyContext(t *testing.T) {
	p := Policy{ShiftNonBusinessDays: true}
	ctx := ContextWithPolicy(context.Background(), p)
	assert.Equal(t, p, PolicyFromContext(ctx))
	assert.Equal(t, Policy{}, PolicyFromContext(context.Background()))
}

func TestCatalog(t *testing.T) {
	assert.Len(t, Catalog(), 11)

	def, ok := Lookup(CriminalAppeal)
	require.True(t, ok)
	assert.Equal(t, 7, def.Days)
	assert.Equal(t, "형사항소기간", def.Label)

	def, ok = Lookup(AppealBrief)
	require.True(t, ok)
	assert.Equal(t, 40, def.Days)

	_, ok = Lookup("DL_UNKNOWN")
	assert.False(t, ok)
}

func TestRegisterJudgmentHearing(t *testing.T) {
	ctx := context.Background()

	t.Run("civil case registers 14 days from pronouncement", func(t *testing.T) {
		store := newMemStore()
		reg := NewRegistrar(store, kst, nil)

		result := reg.Register(ctx, "case-1", resolve(t, "2024가단12345"), []detector.CaseUpdate{
			{Type: detector.HearingNew, Ref: detector.Ref{Kind: detector.RefHearing, Date: "2025.03.10", Type: "변론기일"}},
			judgmentHearing("2025.04.08"),
		})

		assert.Equal(t, 1, result.Created)
		assert.Empty(t, result.Errors)
		d, err := store.FindDeadline(ctx, "case-1", Appeal, "")
		require.NoError(t, err)
		require.NotNil(t, d)
		assert.Equal(t, day(2025, 4, 8), d.TriggerDate)
		assert.Equal(t, day(2025, 4, 22), d.DeadlineDate)
		assert.Equal(t, StatusPending, d.Status)
	})

	t.Run("criminal case registers 7 days", func(t *testing.T) {
		store := newMemStore()
		reg := NewRegistrar(store, kst, nil)

		result := reg.Register(ctx, "case-2", resolve(t, "2024고단12345"), []detector.CaseUpdate{judgmentHearing("2025.04.08")})

		assert.Equal(t, 1, result.Created)
		d, _ := store.FindDeadline(ctx, "case-2", CriminalAppeal, "")
		require.NotNil(t, d)
		assert.Equal(t, day(2025, 4, 15), d.DeadlineDate)
	})

	t.Run("postponed pronouncement registers nothing", func(t *testing.T) {
		store := newMemStore()
		reg := NewRegistrar(store, kst, nil)
		u := judgmentHearing("2025.04.08")
		u.Type = detector.HearingResult
		u.Ref.Result = "선고연기"

		result := reg.Register(ctx, "case-3", resolve(t, "2024가단12345"), []detector.CaseUpdate{u})
		assert.Zero(t, result.Created)
	})

	t.Run("unclassified case fails closed", func(t *testing.T) {
		store := newMemStore()
		reg := NewRegistrar(store, kst, nil)

		result := reg.Register(ctx, "case-4", nil, []detector.CaseUpdate{judgmentHearing("2025.04.08")})
		assert.Zero(t, result.Created)
		assert.Zero(t, store.saves)
	})
}

func TestRegisterIsIdempotentAndMovesTrigger(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	reg := NewRegistrar(store, kst, nil)
	res := resolve(t, "2024가단12345")

	first := reg.Register(ctx, "case-1", res, []detector.CaseUpdate{judgmentHearing("2025.04.08")})
	second := reg.Register(ctx, "case-1", res, []detector.CaseUpdate{judgmentHearing("2025.04.08")})
	assert.Equal(t, 1, first.Created)
	assert.Equal(t, 0, second.Created)
	assert.Equal(t, 1, second.Unchanged)
	assert.Len(t, store.rows, 1)

	moved := reg.Register(ctx, "case-1", res, []detector.CaseUpdate{judgmentHearing("2025.04.15")})
	assert.Equal(t, 1, moved.Updated)
	assert.Len(t, store.rows, 1)

	d, _ := store.FindDeadline(ctx, "case-1", Appeal, "")
	assert.Equal(t, day(2025, 4, 15), d.TriggerDate)
	assert.Equal(t, day(2025, 4, 29), d.DeadlineDate)
}

func TestRegisterLeavesCompletedDeadline(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	reg := NewRegistrar(store, kst, nil)
	res := resolve(t, "2024가단12345")

	reg.Register(ctx, "case-1", res, []detector.CaseUpdate{judgmentHearing("2025.04.08")})
	store.rows[store.key("case-1", Appeal, "")].Status = StatusCompleted

	result := reg.Register(ctx, "case-1", res, []detector.CaseUpdate{judgmentHearing("2025.04.15")})
	assert.Equal(t, 1, result.Unchanged)
	d, _ := store.FindDeadline(ctx, "case-1", Appeal, "")
	assert.Equal(t, day(2025, 4, 8), d.TriggerDate)
}

func TestRegisterMediation(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	reg := NewRegistrar(store, kst, nil)

	updates := []detector.CaseUpdate{
		{Type: detector.MediationConcluded, Ref: detector.Ref{Kind: detector.RefProgress, Date: "2025.05.02", Content: "화해권고결정"}},
	}
	result := reg.Register(ctx, "case-5", nil, updates)
	assert.Equal(t, 1, result.Created)

	d, _ := store.FindDeadline(ctx, "case-5", MediationObjection, "")
	require.NotNil(t, d)
	assert.Equal(t, day(2025, 5, 16), d.DeadlineDate)

	t.Run("failed mediation hearing", func(t *testing.T) {
		u := detector.CaseUpdate{Type: detector.HearingResult, Ref: detector.Ref{Kind: detector.RefHearing, Date: "2025.06.01", Type: "조정기일", Result: "조정불성립"}}
		assert.False(t, isMediationUpdate(u))
	})
}

func TestRegisterResultAnnouncedWithoutDate(t *testing.T) {
	store := newMemStore()
	reg := NewRegistrar(store, kst, nil)

	result := reg.Register(context.Background(), "case-6", resolve(t, "2024드단12345"), []detector.CaseUpdate{
		{Type: detector.ResultAnnounced, Ref: detector.Ref{Kind: detector.RefBasicInfo, Key: "종국결과", NewValue: "원고승"}},
	})
	assert.Zero(t, result.Created)
	assert.Len(t, result.Warnings, 1)
}

func TestRegisterReportsWriteFailures(t *testing.T) {
	store := newMemStore()
	store.failFor = Appeal
	reg := NewRegistrar(store, kst, nil)

	result := reg.Register(context.Background(), "case-7", resolve(t, "2024가단12345"), []detector.CaseUpdate{
		judgmentHearing("2025.04.08"),
		{Type: detector.MediationConcluded, Ref: detector.Ref{Kind: detector.RefProgress, Date: "2025.05.02", Content: "조정성립"}},
	})
	assert.Len(t, result.Errors, 1)
	assert.Equal(t, 1, result.Created)
}

func TestRegisterPartyService(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	store.policy = Policy{ZeroHourIncludesFirstDay: true}
	reg := NewRegistrar(store, kst, nil)
	res := resolve(t, "2024가단12345")

	result := reg.RegisterPartyService(ctx, "case-1", res, ServiceChange{
		PartyID: "party-1", PartyLabel: "피고", Appealable: true, NewDate: "2025.04.08", Electronic: true,
	})
	assert.Equal(t, 1, result.Created)
	d, _ := store.FindDeadline(ctx, "case-1", Appeal, "party-1")
	require.NotNil(t, d)
	assert.True(t, d.ElectronicService)
	assert.Equal(t, day(2025, 4, 21), d.DeadlineDate)

	result = reg.RegisterPartyService(ctx, "case-1", res, ServiceChange{
		PartyID: "party-1", PartyLabel: "피고", Appealable: true, OldDate: "2025.04.08", NewDate: "2025.04.10",
	})
	assert.Equal(t, 1, result.Updated)
	d, _ = store.FindDeadline(ctx, "case-1", Appeal, "party-1")
	assert.Equal(t, day(2025, 4, 24), d.DeadlineDate)

	t.Run("non appealing party", func(t *testing.T) {
		r := reg.RegisterPartyService(ctx, "case-1", res, ServiceChange{PartyID: "party-9", NewDate: "2025.04.08"})
		assert.Equal(t, 1, r.Skipped)
	})

	t.Run("criminal runs from pronouncement", func(t *testing.T) {
		r := reg.RegisterPartyService(ctx, "case-2", resolve(t, "2024고단1"), ServiceChange{PartyID: "p", Appealable: true, NewDate: "2025.04.08"})
		assert.Equal(t, 1, r.Skipped)
	})
}

func TestPartyServiceSupersedesPronouncementDeadline(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	reg := NewRegistrar(store, kst, nil)
	res := resolve(t, "2024가단12345")

	result := reg.Register(ctx, "case-1", res, []detector.CaseUpdate{judgmentHearing("2025.04.08")})
	require.Equal(t, 1, result.Created)

	result = reg.RegisterPartyService(ctx, "case-1", res, ServiceChange{
		PartyID: "party-1", PartyLabel: "피고", Appealable: true, NewDate: "2025.04.15",
	})
	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 1, result.Superseded)

	caseLevel, _ := store.FindDeadline(ctx, "case-1", Appeal, "")
	require.NotNil(t, caseLevel)
	assert.Equal(t, StatusSuperseded, caseLevel.Status)
	assert.Contains(t, caseLevel.Notes, "대체")

	perParty, _ := store.FindDeadline(ctx, "case-1", Appeal, "party-1")
	require.NotNil(t, perParty)
	assert.Equal(t, StatusPending, perParty.Status)
	assert.Equal(t, day(2025, 4, 29), perParty.DeadlineDate)

	// A later judgment update does not bring the case-level row back.
	result = reg.Register(ctx, "case-1", res, []detector.CaseUpdate{judgmentHearing("2025.04.09")})
	assert.Equal(t, 1, result.Unchanged)
	caseLevel, _ = store.FindDeadline(ctx, "case-1", Appeal, "")
	assert.Equal(t, StatusSuperseded, caseLevel.Status)

	result = reg.RegisterPartyService(ctx, "case-1", res, ServiceChange{
		PartyID: "party-2", PartyLabel: "원고", Appealable: true, NewDate: "2025.04.16",
	})
	assert.Equal(t, 1, result.Created)
	assert.Zero(t, result.Superseded)
}

func TestElectronicServiceOn(t *testing.T) {
	progress := []snapshot.ProgressItem{
		{Date: "2025.04.01", Content: "피고 판결정본 송달", Result: "2025.04.08 0시 도달"},
		{Date: "2025.04.01", Content: "원고 판결정본 송달", Result: "2025.04.03 도달"},
	}
	assert.True(t, ElectronicServiceOn(progress, day(2025, 4, 8), kst))
	assert.False(t, ElectronicServiceOn(progress, day(2025, 4, 3), kst))
}
