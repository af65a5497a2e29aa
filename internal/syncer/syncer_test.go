package syncer

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/JustJay7/court-case-sync/internal/cache"
	"github.com/JustJay7/court-case-sync/internal/calendar"
	"github.com/JustJay7/court-case-sync/internal/database"
	"github.com/JustJay7/court-case-sync/internal/deadline"
	"github.com/JustJay7/court-case-sync/internal/detector"
	"github.com/JustJay7/court-case-sync/internal/notify"
	"github.com/JustJay7/court-case-sync/internal/snapshot"
)

var kst = time.FixedZone("KST", 9*3600)

// fakeSource serves scripted responses per case id; the last one repeats.
type fakeSource struct {
	mu        sync.Mutex
	responses map[string][]func() (*snapshot.CaseSnapshot, error)
	calls     map[string]int
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		responses: make(map[string][]func() (*snapshot.CaseSnapshot, error)),
		calls:     make(map[string]int),
	}
}

func (f *fakeSource) serve(caseID string, snap snapshot.CaseSnapshot) {
	f.script(caseID, func() (*snapshot.CaseSnapshot, error) {
		s := snap
		return &s, nil
	})
}

func (f *fakeSource) script(caseID string, fns ...func() (*snapshot.CaseSnapshot, error)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[caseID] = fns
	f.calls[caseID] = 0
}

func (f *fakeSource) FetchSnapshot(_ context.Context, ref snapshot.CaseRef) (*snapshot.CaseSnapshot, error) {
	f.mu.Lock()
	fns := f.responses[ref.ID]
	n := f.calls[ref.ID]
	f.calls[ref.ID]++
	f.mu.Unlock()

	if len(fns) == 0 {
		return nil, backoff.Permanent(errors.New("no response scripted"))
	}
	if n >= len(fns) {
		n = len(fns) - 1
	}
	return fns[n]()
}

type recordingPublisher struct {
	mu           sync.Mutex
	items        []notify.Item
	intents      []calendar.Intent
	failCalendar bool
}

func (p *recordingPublisher) PublishUpdates(_ context.Context, _, _ string, items []notify.Item) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.items = append(p.items, items...)
	return nil
}

func (p *recordingPublisher) PublishCalendar(_ context.Context, _, _ string, intents []calendar.Intent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.failCalendar {
		return errors.New("queue down")
	}
	p.intents = append(p.intents, intents...)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

type harness struct {
	syncer *Syncer
	db     *gorm.DB
	store  *database.Store
	source *fakeSource
	pub    *recordingPublisher
	caseID string
}

func newHarness(t *testing.T, caseNumber string) *harness {
	t.Helper()
	db, err := database.Initialize(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	store := database.NewStore(db, deadline.Policy{}, kst)
	rec := &database.CaseRecord{CaseNumber: caseNumber, CourtName: "서울중앙지방법원"}
	require.NoError(t, store.CreateCase(context.Background(), rec))

	var mu sync.Mutex
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, kst)
	clock := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		now = now.Add(time.Minute)
		return now
	}

	source := newFakeSource()
	pub := &recordingPublisher{}
	opts := Options{MaxAttempts: 3, BaseBackoff: time.Millisecond, MaxBackoff: 2 * time.Millisecond, Sessions: 2}
	s := New(store, source, cache.NewCache(100, time.Hour), pub, notify.DefaultPolicy(), kst, opts, nil).WithClock(clock)

	return &harness{syncer: s, db: db, store: store, source: source, pub: pub, caseID: rec.ID}
}

func firstCapture() snapshot.CaseSnapshot {
	return snapshot.CaseSnapshot{
		BasicInfo: []snapshot.BasicField{{Key: "사건번호", Value: "2024가단12345"}},
		Hearings: []snapshot.Hearing{
			{Date: "2025.03.11", Time: "14:00", Type: "변론기일", Location: "제401호 법정"},
			{Date: "2025.04.08", Time: "10:00", Type: "판결선고기일", Location: "제401호 법정"},
		},
		Parties: []snapshot.Party{
			{Label: "원고", Name: "이영희"},
			{Label: "피고", Name: "박민수"},
		},
		Representatives: []snapshot.Representative{
			{Label: "원고 소송대리인", Name: "법무법인 바른"},
		},
	}
}

func countType(updates []detector.CaseUpdate, t detector.UpdateType) int {
	n := 0
	for _, u := range updates {
		if u.Type == t {
			n++
		}
	}
	return n
}

func TestFirstSyncOfNewCase(t *testing.T) {
	h := newHarness(t, "2024가단12345")
	ctx := context.Background()
	h.source.serve(h.caseID, firstCapture())

	res, err := h.syncer.SyncCase(ctx, h.caseID)
	require.NoError(t, err)

	assert.Equal(t, StatusSynced, res.Status)
	assert.Equal(t, 1, res.Attempts)
	assert.Equal(t, 2, countType(res.Updates, detector.HearingNew))
	for _, u := range res.Updates {
		if u.Type == detector.HearingNew {
			assert.Equal(t, detector.High, u.Importance)
		}
	}

	assert.Equal(t, 1, res.Deadlines.Created)
	deadlines, err := h.store.ListDeadlines(ctx, h.caseID)
	require.NoError(t, err)
	require.Len(t, deadlines, 1)
	assert.Equal(t, string(deadline.Appeal), deadlines[0].Type)
	assert.Equal(t, "2025-04-08", deadlines[0].TriggerDate)
	assert.Equal(t, "2025-04-22", deadlines[0].DeadlineDate)

	assert.Equal(t, 2, res.PartiesUpserted)
	assert.Equal(t, 1, res.RepresentativesUpserted)
	for _, w := range res.Warnings {
		assert.NotContains(t, w, "ambiguous")
	}
	assert.Empty(t, res.Errors)
	assert.False(t, res.Partial)

	assert.Equal(t, 2, res.CalendarIntents)
	require.Len(t, h.pub.intents, 2)
	assert.Equal(t, calendar.Create, h.pub.intents[0].Action)

	// The first capture is the baseline; nothing is pushed as news.
	assert.Equal(t, 0, res.Notifications)
	assert.Empty(t, h.pub.items)

	latest, hash, err := h.store.LatestSnapshot(ctx, h.caseID)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, res.SnapshotHash, hash)

	rec, err := h.store.GetCase(ctx, h.caseID)
	require.NoError(t, err)
	require.NotNil(t, rec.NextHearingAt)
	assert.True(t, time.Date(2025, 3, 11, 14, 0, 0, 0, kst).Equal(*rec.NextHearingAt))

	runs, err := h.store.ListSyncRuns(ctx, h.caseID, 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, StatusSynced, runs[0].Status)
	assert.Equal(t, 1, runs[0].DeadlinesCreated)
}

func TestUnchangedSnapshotShortCircuits(t *testing.T) {
	h := newHarness(t, "2024가단12345")
	ctx := context.Background()
	h.source.serve(h.caseID, firstCapture())

	_, err := h.syncer.SyncCase(ctx, h.caseID)
	require.NoError(t, err)

	res, err := h.syncer.SyncCase(ctx, h.caseID)
	require.NoError(t, err)
	assert.Equal(t, StatusUnchanged, res.Status)
	assert.Empty(t, res.Updates)
	assert.Equal(t, 0, res.CalendarIntents)
	assert.Len(t, h.pub.intents, 2)

	updates, err := h.store.ListUpdates(ctx, h.caseID, 100)
	require.NoError(t, err)
	firstPass := len(updates)

	_, err = h.syncer.SyncCase(ctx, h.caseID)
	require.NoError(t, err)
	updates, err = h.store.ListUpdates(ctx, h.caseID, 100)
	require.NoError(t, err)
	assert.Len(t, updates, firstPass)

	runs, err := h.store.ListSyncRuns(ctx, h.caseID, 10)
	require.NoError(t, err)
	assert.Len(t, runs, 3)
}

func TestChangedSnapshotNotifiesAndRegistersPartyService(t *testing.T) {
	h := newHarness(t, "2024가단12345")
	ctx := context.Background()
	h.source.serve(h.caseID, firstCapture())

	_, err := h.syncer.SyncCase(ctx, h.caseID)
	require.NoError(t, err)

	next := firstCapture()
	next.Hearings[0].Result = "속행"
	next.Parties[1].JudgmentArrivalDate = "2025.04.15"
	next.Progress = []snapshot.ProgressItem{
		{Date: "2025.04.15", Content: "피고 박민수에게 판결정본 송달", Result: "2025.04.15 0시 도달"},
	}
	h.source.serve(h.caseID, next)

	res, err := h.syncer.SyncCase(ctx, h.caseID)
	require.NoError(t, err)
	assert.Equal(t, StatusSynced, res.Status)
	assert.Equal(t, 1, countType(res.Updates, detector.HearingResult))

	assert.Greater(t, res.Notifications, 0)
	var sawResult bool
	for _, item := range h.pub.items {
		assert.NotEqual(t, detector.Low, item.Update.Importance)
		if item.Update.Type == detector.HearingResult {
			sawResult = true
		}
	}
	assert.True(t, sawResult)

	assert.Equal(t, 1, res.Deadlines.Created)
	assert.Equal(t, 1, res.Deadlines.Superseded)
	deadlines, err := h.store.ListDeadlines(ctx, h.caseID)
	require.NoError(t, err)
	require.Len(t, deadlines, 2)
	var perParty, caseLevel *database.DeadlineRecord
	for i := range deadlines {
		if deadlines[i].PartyID != "" {
			perParty = &deadlines[i]
		} else {
			caseLevel = &deadlines[i]
		}
	}
	require.NotNil(t, perParty)
	require.NotNil(t, caseLevel)
	assert.Equal(t, string(deadline.StatusPending), perParty.Status)
	assert.Equal(t, string(deadline.StatusSuperseded), caseLevel.Status)
	assert.Equal(t, "2025-04-15", perParty.TriggerDate)
	assert.Equal(t, "2025-04-29", perParty.DeadlineDate)
	assert.True(t, perParty.ElectronicService)

	assert.Equal(t, 1, res.CalendarIntents)
	last := h.pub.intents[len(h.pub.intents)-1]
	assert.Equal(t, calendar.Update, last.Action)
	assert.Equal(t, calendar.StatusCompleted, last.Event.Status)
}

// failDeadlineWrites makes deadline inserts fail while the returned flag is
// set. match narrows the failure to some rows.
func failDeadlineWrites(t *testing.T, db *gorm.DB, match func(*database.DeadlineRecord) bool) *atomic.Bool {
	t.Helper()
	var on atomic.Bool
	on.Store(true)
	err := db.Callback().Create().Before("gorm:create").Register("test:fail_deadlines", func(tx *gorm.DB) {
		if !on.Load() || tx.Statement.Table != "case_deadlines" {
			return
		}
		if rec, ok := tx.Statement.Dest.(*database.DeadlineRecord); ok && match != nil && !match(rec) {
			return
		}
		tx.AddError(errors.New("deadline write failed"))
	})
	require.NoError(t, err)
	return &on
}

func TestPartialPassReplayedOnUnchangedSnapshot(t *testing.T) {
	h := newHarness(t, "2024가단12345")
	ctx := context.Background()
	h.source.serve(h.caseID, firstCapture())
	failing := failDeadlineWrites(t, h.db, nil)

	res, err := h.syncer.SyncCase(ctx, h.caseID)
	require.NoError(t, err)
	assert.Equal(t, StatusSynced, res.Status)
	assert.True(t, res.Partial)
	assert.Zero(t, res.Deadlines.Created)

	deadlines, err := h.store.ListDeadlines(ctx, h.caseID)
	require.NoError(t, err)
	assert.Empty(t, deadlines)
	updates, err := h.store.ListUpdates(ctx, h.caseID, 100)
	require.NoError(t, err)
	stored := len(updates)

	failing.Store(false)
	res, err = h.syncer.SyncCase(ctx, h.caseID)
	require.NoError(t, err)
	assert.Equal(t, StatusSynced, res.Status)
	assert.True(t, res.Replayed)
	assert.False(t, res.Partial)
	assert.Equal(t, 1, res.Deadlines.Created)
	assert.Empty(t, res.Updates)

	deadlines, err = h.store.ListDeadlines(ctx, h.caseID)
	require.NoError(t, err)
	require.Len(t, deadlines, 1)
	assert.Equal(t, string(deadline.Appeal), deadlines[0].Type)
	assert.Equal(t, "2025-04-08", deadlines[0].TriggerDate)

	updates, err = h.store.ListUpdates(ctx, h.caseID, 100)
	require.NoError(t, err)
	assert.Len(t, updates, stored)

	runs, err := h.store.ListSyncRuns(ctx, h.caseID, 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.True(t, runs[0].Replayed)
	assert.False(t, runs[0].Partial)
	assert.True(t, runs[1].Partial)

	res, err = h.syncer.SyncCase(ctx, h.caseID)
	require.NoError(t, err)
	assert.Equal(t, StatusUnchanged, res.Status)
	assert.False(t, res.Replayed)
}

func TestPartialPartyServiceReplayed(t *testing.T) {
	h := newHarness(t, "2024가단12345")
	ctx := context.Background()
	h.source.serve(h.caseID, firstCapture())

	_, err := h.syncer.SyncCase(ctx, h.caseID)
	require.NoError(t, err)

	next := firstCapture()
	next.Parties[1].JudgmentArrivalDate = "2025.04.15"
	h.source.serve(h.caseID, next)
	failing := failDeadlineWrites(t, h.db, func(rec *database.DeadlineRecord) bool { return rec.PartyID != "" })

	res, err := h.syncer.SyncCase(ctx, h.caseID)
	require.NoError(t, err)
	assert.True(t, res.Partial)
	notified := len(h.pub.items)

	failing.Store(false)
	res, err = h.syncer.SyncCase(ctx, h.caseID)
	require.NoError(t, err)
	assert.True(t, res.Replayed)
	assert.False(t, res.Partial)
	assert.Equal(t, 1, res.Deadlines.Created)
	assert.Equal(t, 1, res.Deadlines.Superseded)
	assert.Len(t, h.pub.items, notified)

	deadlines, err := h.store.ListDeadlines(ctx, h.caseID)
	require.NoError(t, err)
	require.Len(t, deadlines, 2)
	pending := 0
	for _, d := range deadlines {
		if d.Status == string(deadline.StatusPending) {
			pending++
			assert.NotEmpty(t, d.PartyID)
			assert.Equal(t, "2025-04-15", d.TriggerDate)
		}
	}
	assert.Equal(t, 1, pending)
}

func TestTransientFetchErrorsAreRetried(t *testing.T) {
	h := newHarness(t, "2024가단12345")
	snap := firstCapture()
	h.source.script(h.caseID,
		func() (*snapshot.CaseSnapshot, error) { return nil, errors.New("navigation timeout") },
		func() (*snapshot.CaseSnapshot, error) { return &snapshot.CaseSnapshot{}, nil },
		func() (*snapshot.CaseSnapshot, error) { return &snap, nil },
	)

	res, err := h.syncer.SyncCase(context.Background(), h.caseID)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Attempts)
	assert.Equal(t, StatusSynced, res.Status)
}

func TestTerminalFetchFailureLeavesStateUntouched(t *testing.T) {
	h := newHarness(t, "2024가단12345")
	ctx := context.Background()
	h.source.serve(h.caseID, firstCapture())
	first, err := h.syncer.SyncCase(ctx, h.caseID)
	require.NoError(t, err)

	notFound := errors.New("case not found on portal")
	h.source.script(h.caseID, func() (*snapshot.CaseSnapshot, error) {
		return nil, backoff.Permanent(notFound)
	})

	res, err := h.syncer.SyncCase(ctx, h.caseID)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSourceUnavailable)
	assert.ErrorIs(t, err, notFound)
	require.NotNil(t, res)
	assert.Equal(t, StatusFailed, res.Status)
	assert.Equal(t, 1, res.Attempts)

	_, hash, err := h.store.LatestSnapshot(ctx, h.caseID)
	require.NoError(t, err)
	assert.Equal(t, first.SnapshotHash, hash)

	rec, err := h.store.GetCase(ctx, h.caseID)
	require.NoError(t, err)
	assert.Equal(t, first.SnapshotHash, rec.LastHash)

	runs, err := h.store.ListSyncRuns(ctx, h.caseID, 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	var failed int
	for _, r := range runs {
		if r.Status == StatusFailed {
			failed++
			assert.Contains(t, r.ErrorMessage, "case not found")
		}
	}
	assert.Equal(t, 1, failed)
}

func TestRetriesAreBounded(t *testing.T) {
	h := newHarness(t, "2024가단12345")
	h.source.script(h.caseID, func() (*snapshot.CaseSnapshot, error) {
		return nil, errors.New("browser crashed")
	})

	res, err := h.syncer.SyncCase(context.Background(), h.caseID)
	assert.ErrorIs(t, err, ErrSourceUnavailable)
	assert.Equal(t, 3, res.Attempts)

	latest, _, err := h.store.LatestSnapshot(context.Background(), h.caseID)
	require.NoError(t, err)
	assert.Nil(t, latest)
}

func TestCalendarPublishFailureIsRetriedNextPass(t *testing.T) {
	h := newHarness(t, "2024가단12345")
	ctx := context.Background()
	h.source.serve(h.caseID, firstCapture())
	h.pub.failCalendar = true

	res, err := h.syncer.SyncCase(ctx, h.caseID)
	require.NoError(t, err)
	assert.True(t, res.Partial)
	assert.Equal(t, 0, res.CalendarIntents)

	emitted, err := h.store.ListCalendarEvents(ctx, h.caseID)
	require.NoError(t, err)
	assert.Empty(t, emitted)

	h.pub.failCalendar = false
	res, err = h.syncer.SyncCase(ctx, h.caseID)
	require.NoError(t, err)
	assert.True(t, res.Replayed)
	assert.Equal(t, 2, res.CalendarIntents)
	assert.Zero(t, res.Deadlines.Created)

	res, err = h.syncer.SyncCase(ctx, h.caseID)
	require.NoError(t, err)
	assert.Equal(t, StatusUnchanged, res.Status)
	assert.Zero(t, res.CalendarIntents)
}

func TestUnknownCase(t *testing.T) {
	h := newHarness(t, "2024가단12345")
	res, err := h.syncer.SyncCase(context.Background(), "missing")
	assert.ErrorIs(t, err, database.ErrCaseNotFound)
	assert.Nil(t, res)
}

func TestSyncAll(t *testing.T) {
	h := newHarness(t, "2024가단12345")
	ctx := context.Background()

	other := &database.CaseRecord{CaseNumber: "2024고단1234", CourtName: "서울중앙지방법원"}
	require.NoError(t, h.store.CreateCase(ctx, other))
	broken := &database.CaseRecord{CaseNumber: "2024드단555", CourtName: "서울가정법원"}
	require.NoError(t, h.store.CreateCase(ctx, broken))

	h.source.serve(h.caseID, firstCapture())
	h.source.serve(other.ID, snapshot.CaseSnapshot{
		Hearings: []snapshot.Hearing{{Date: "2025.03.20", Time: "10:00", Type: "공판기일"}},
	})

	summary, err := h.syncer.SyncAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 2, summary.Synced)
	assert.Equal(t, 1, summary.Failed)
	for _, r := range summary.Results {
		require.NotNil(t, r)
		if r.CaseID == broken.ID {
			assert.Equal(t, StatusFailed, r.Status)
		}
	}
}
