// Package syncer runs the per-case sync pass: fetch a fresh snapshot, detect
// what changed, and fan the changes out to storage, parties, deadlines, the
// calendar and notifications.
package syncer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/JustJay7/court-case-sync/internal/cache"
	"github.com/JustJay7/court-case-sync/internal/calendar"
	"github.com/JustJay7/court-case-sync/internal/casetype"
	"github.com/JustJay7/court-case-sync/internal/config"
	"github.com/JustJay7/court-case-sync/internal/database"
	"github.com/JustJay7/court-case-sync/internal/deadline"
	"github.com/JustJay7/court-case-sync/internal/detector"
	"github.com/JustJay7/court-case-sync/internal/notify"
	"github.com/JustJay7/court-case-sync/internal/party"
	"github.com/JustJay7/court-case-sync/internal/snapshot"
	"github.com/JustJay7/court-case-sync/pkg/logger"
)

// ErrSourceUnavailable wraps the last fetch error once retries are spent or
// the source reported a terminal failure.
var ErrSourceUnavailable = errors.New("snapshot source unavailable")

var errEmptySnapshot = errors.New("source returned an empty snapshot")

// Pass statuses recorded on Result and SyncRun.
const (
	StatusSynced    = "synced"
	StatusUnchanged = "unchanged"
	StatusFailed    = "failed"
)

// SnapshotSource produces the current snapshot of a case. Errors wrapped
// with backoff.Permanent are not retried.
type SnapshotSource interface {
	FetchSnapshot(ctx context.Context, ref snapshot.CaseRef) (*snapshot.CaseSnapshot, error)
}

// Options bound the fetch retries and the number of cases synced at once.
type Options struct {
	MaxAttempts int
	BaseBackoff time.Duration
	MaxBackoff  time.Duration
	Sessions    int
}

// OptionsFromConfig reads the sync settings.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		MaxAttempts: cfg.FetchMaxAttempts,
		BaseBackoff: cfg.FetchBaseBackoff,
		MaxBackoff:  cfg.FetchMaxBackoff,
		Sessions:    cfg.ScraperSessions,
	}
}

// Result is the structured outcome of one case pass.
type Result struct {
	CaseID                  string                `json:"caseId"`
	CaseNumber              string                `json:"caseNumber"`
	Status                  string                `json:"status"`
	SnapshotHash            string                `json:"snapshotHash,omitempty"`
	Attempts                int                   `json:"attempts"`
	Updates                 []detector.CaseUpdate `json:"updates"`
	PartiesUpserted         int                   `json:"partiesUpserted"`
	PartiesDeleted          int                   `json:"partiesDeleted"`
	RepresentativesUpserted int                   `json:"representativesUpserted"`
	Deadlines               deadline.Result       `json:"deadlines"`
	CalendarIntents         int                   `json:"calendarIntents"`
	Notifications           int                   `json:"notifications"`
	Warnings                []string              `json:"warnings,omitempty"`
	Errors                  []string              `json:"errors,omitempty"`
	Partial                 bool                  `json:"partial"`
	Replayed                bool                  `json:"replayed,omitempty"`
	StartedAt               time.Time             `json:"startedAt"`
	FinishedAt              time.Time             `json:"finishedAt"`
}

func (r *Result) fail(format string, args ...interface{}) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
	writeErrorsTotal.Inc()
}

// Syncer owns one deployment's sync passes.
type Syncer struct {
	store     *database.Store
	source    SnapshotSource
	cache     cache.Cache
	publisher notify.Publisher
	policy    notify.Policy
	detector  *detector.Detector
	calendar  *calendar.Differ
	registrar *deadline.Registrar
	loc       *time.Location
	opts      Options
	now       func() time.Time
	logger    *logger.Logger
}

// New wires a syncer. loc is the portal's timezone.
func New(store *database.Store, source SnapshotSource, c cache.Cache, pub notify.Publisher, policy notify.Policy, loc *time.Location, opts Options, log *logger.Logger) *Syncer {
	if loc == nil {
		loc = time.UTC
	}
	if log == nil {
		log = logger.NewNop()
	}
	if opts.MaxAttempts < 1 {
		opts.MaxAttempts = 1
	}
	if opts.Sessions < 1 {
		opts.Sessions = 1
	}
	return &Syncer{
		store:     store,
		source:    source,
		cache:     c,
		publisher: pub,
		policy:    policy,
		detector:  detector.New(loc),
		calendar:  calendar.New(loc),
		registrar: deadline.NewRegistrar(store, loc, log),
		loc:       loc,
		opts:      opts,
		now:       time.Now,
		logger:    log.With("component", "syncer"),
	}
}

// WithClock overrides the time source of the syncer and its detectors.
func (s *Syncer) WithClock(now func() time.Time) *Syncer {
	s.now = now
	s.detector.WithClock(now)
	s.calendar.WithClock(now)
	return s
}

// SyncCase runs one pass for a case. The returned Result is non-nil whenever
// the case exists, including failed passes. A fetch failure leaves every
// stored record of the case as it was.
func (s *Syncer) SyncCase(ctx context.Context, caseID string) (*Result, error) {
	rec, err := s.store.GetCase(ctx, caseID)
	if err != nil {
		return nil, err
	}

	result := &Result{
		CaseID:     rec.ID,
		CaseNumber: rec.CaseNumber,
		StartedAt:  s.now(),
	}
	log := s.logger.With("case_id", rec.ID, "case_number", rec.CaseNumber)

	err = s.run(ctx, rec, result, log)
	if err != nil {
		result.Status = StatusFailed
		log.Error("Sync pass failed", "error", err)
	}
	result.FinishedAt = s.now()
	result.Partial = len(result.Errors) > 0

	syncRunsTotal.WithLabelValues(result.Status).Inc()
	syncDuration.WithLabelValues(result.Status).Observe(result.FinishedAt.Sub(result.StartedAt).Seconds())

	if saveErr := s.store.SaveSyncRun(ctx, syncRun(result, err)); saveErr != nil {
		log.Warn("Failed to record sync run", "error", saveErr)
	}
	return result, err
}

func (s *Syncer) run(ctx context.Context, rec *database.CaseRecord, result *Result, log *logger.Logger) error {
	baseline, baselineHash, err := s.baseline(ctx, rec.ID)
	if err != nil {
		return fmt.Errorf("failed to load previous snapshot: %w", err)
	}

	ref := snapshot.CaseRef{
		ID:         rec.ID,
		CaseNumber: rec.CaseNumber,
		CourtName:  rec.CourtName,
		PartyName:  rec.PartyName,
	}
	current, err := s.fetch(ctx, ref, result, log)
	if err != nil {
		return err
	}

	hash := detector.Hash(*current)
	result.SnapshotHash = hash
	capturedAt := s.now()

	if baseline != nil && hash == baselineHash {
		if s.needsReplay(ctx, rec.ID, hash, log) {
			return s.replay(ctx, rec, current, hash, capturedAt, result, log)
		}

		result.Status = StatusUnchanged
		// Hearings still move from scheduled to completed as days pass.
		s.emitCalendar(ctx, rec, current.Hearings, result)
		if err := s.store.MarkSynced(ctx, rec.ID, hash, capturedAt, s.nextHearing(current.Hearings)); err != nil {
			result.fail("mark synced: %v", err)
		}
		log.Debug("Snapshot unchanged")
		return nil
	}

	var previous *snapshot.CaseSnapshot
	if baseline != nil {
		previous = &baseline.Snapshot
	}
	updates := s.detector.Detect(previous, *current)
	result.Updates = updates
	for _, u := range updates {
		updatesDetectedTotal.WithLabelValues(string(u.Importance)).Inc()
	}

	capture := snapshot.Capture{CaseID: rec.ID, CapturedAt: capturedAt, Snapshot: *current}
	snapshotID, err := s.store.SaveSnapshot(ctx, capture, hash)
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	if s.cache != nil {
		s.cache.Set(rec.ID, &cache.Entry{Capture: capture, Hash: hash})
	}
	if err := s.store.SaveUpdates(ctx, rec.ID, snapshotID, capturedAt, updates); err != nil {
		result.fail("save updates: %v", err)
	}

	resolution := s.resolve(rec, result)
	arrivals := s.reconcileParties(ctx, rec.ID, current, result, log)
	dres := s.registerDeadlines(ctx, rec.ID, resolution, updates, arrivals, current, result)

	s.emitCalendar(ctx, rec, current.Hearings, result)

	// The first capture of a case reports everything as new; that is the
	// baseline, not news.
	if previous != nil {
		s.notify(ctx, rec, updates, result)
	}

	if err := s.store.MarkSynced(ctx, rec.ID, hash, capturedAt, s.nextHearing(current.Hearings)); err != nil {
		result.fail("mark synced: %v", err)
	}

	result.Status = StatusSynced
	log.Info("Sync pass finished",
		"updates", len(updates),
		"parties", result.PartiesUpserted,
		"deadlines_created", dres.Created,
		"deadlines_updated", dres.Updated,
		"errors", len(result.Errors),
	)
	return nil
}

// needsReplay reports whether the last pass stored this snapshot but failed
// some of its writes.
func (s *Syncer) needsReplay(ctx context.Context, caseID, hash string, log *logger.Logger) bool {
	last, err := s.store.LastSyncRun(ctx, caseID)
	if err != nil {
		log.Warn("Failed to load last sync run", "error", err)
		return false
	}
	return last != nil && last.Partial && last.Status == StatusSynced && last.SnapshotHash == hash
}

// replay redoes the party and deadline writes of a partial pass against the
// snapshot it already stored. Updates are neither stored nor notified again.
func (s *Syncer) replay(ctx context.Context, rec *database.CaseRecord, current *snapshot.CaseSnapshot, hash string, capturedAt time.Time, result *Result, log *logger.Logger) error {
	before, err := s.store.PreviousSnapshot(ctx, rec.ID)
	if err != nil {
		return fmt.Errorf("failed to load snapshot before %s: %w", hash, err)
	}
	var previous *snapshot.CaseSnapshot
	if before != nil {
		previous = &before.Snapshot
	}
	updates := s.detector.Detect(previous, *current)
	result.Replayed = true

	resolution := s.resolve(rec, result)
	arrivals := s.reconcileParties(ctx, rec.ID, current, result, log)
	arrivals = s.storedArrivals(ctx, rec.ID, arrivals, result)
	dres := s.registerDeadlines(ctx, rec.ID, resolution, updates, arrivals, current, result)

	s.emitCalendar(ctx, rec, current.Hearings, result)
	if err := s.store.MarkSynced(ctx, rec.ID, hash, capturedAt, s.nextHearing(current.Hearings)); err != nil {
		result.fail("mark synced: %v", err)
	}

	result.Status = StatusSynced
	log.Info("Partial pass replayed",
		"deadlines_created", dres.Created,
		"deadlines_updated", dres.Updated,
		"errors", len(result.Errors),
	)
	return nil
}

// storedArrivals adds every stored judgment arrival date not already in
// arrivals. Registration is idempotent, so unchanged ones come back as
// unchanged.
func (s *Syncer) storedArrivals(ctx context.Context, caseID string, arrivals []party.ArrivalChange, result *Result) []party.ArrivalChange {
	parties, err := s.store.ListParties(ctx, caseID)
	if err != nil {
		result.fail("load parties: %v", err)
		return arrivals
	}
	seen := make(map[string]bool, len(arrivals))
	for _, a := range arrivals {
		seen[a.PartyID] = true
	}
	for _, p := range parties {
		if p.JudgmentArrivalDate == "" || seen[p.ID] {
			continue
		}
		arrivals = append(arrivals, party.ArrivalChange{
			PartyID: p.ID,
			Label:   p.Label,
			Type:    p.Type,
			OldDate: p.JudgmentArrivalDate,
			NewDate: p.JudgmentArrivalDate,
		})
	}
	return arrivals
}

func (s *Syncer) resolve(rec *database.CaseRecord, result *Result) *casetype.Resolution {
	res, ok := casetype.Resolve(rec.CaseNumber)
	if !ok {
		result.Warnings = append(result.Warnings, fmt.Sprintf("case number %q has no known case type", rec.CaseNumber))
		return nil
	}
	return &res
}

func (s *Syncer) registerDeadlines(ctx context.Context, caseID string, resolution *casetype.Resolution, updates []detector.CaseUpdate, arrivals []party.ArrivalChange, current *snapshot.CaseSnapshot, result *Result) deadline.Result {
	dres := s.registrar.Register(ctx, caseID, resolution, updates)
	for _, c := range arrivals {
		dres.Merge(s.registrar.RegisterPartyService(ctx, caseID, resolution, s.serviceChange(c, current.Progress)))
	}
	result.Deadlines = dres
	result.Warnings = append(result.Warnings, dres.Warnings...)
	for _, e := range dres.Errors {
		result.fail("deadline: %s", e)
	}
	deadlinesRegisteredTotal.WithLabelValues("created").Add(float64(dres.Created))
	deadlinesRegisteredTotal.WithLabelValues("updated").Add(float64(dres.Updated))
	deadlinesRegisteredTotal.WithLabelValues("superseded").Add(float64(dres.Superseded))
	return dres
}

// baseline returns the last good capture, preferring the cache.
func (s *Syncer) baseline(ctx context.Context, caseID string) (*snapshot.Capture, string, error) {
	if s.cache != nil {
		if e, ok := s.cache.Get(caseID); ok {
			return &e.Capture, e.Hash, nil
		}
	}
	capture, hash, err := s.store.LatestSnapshot(ctx, caseID)
	if err != nil {
		return nil, "", err
	}
	if capture != nil && s.cache != nil {
		s.cache.Set(caseID, &cache.Entry{Capture: *capture, Hash: hash})
	}
	return capture, hash, nil
}

func (s *Syncer) fetch(ctx context.Context, ref snapshot.CaseRef, result *Result, log *logger.Logger) (*snapshot.CaseSnapshot, error) {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = s.opts.BaseBackoff
	exp.Multiplier = 2
	exp.MaxInterval = s.opts.MaxBackoff
	exp.MaxElapsedTime = 0
	exp.Reset()

	b := backoff.WithContext(backoff.WithMaxRetries(exp, uint64(s.opts.MaxAttempts-1)), ctx)

	var snap *snapshot.CaseSnapshot
	op := func() error {
		result.Attempts++
		got, err := s.source.FetchSnapshot(ctx, ref)
		if err == nil && (got == nil || got.IsEmpty()) {
			err = errEmptySnapshot
		}
		if err != nil {
			fetchAttemptsTotal.WithLabelValues("error").Inc()
			return err
		}
		fetchAttemptsTotal.WithLabelValues("ok").Inc()
		snap = got
		return nil
	}
	onRetry := func(err error, wait time.Duration) {
		log.Warn("Snapshot fetch failed, retrying", "attempt", result.Attempts, "wait", wait.String(), "error", err)
	}

	if err := backoff.RetryNotify(op, b, onRetry); err != nil {
		return nil, fmt.Errorf("%w after %d attempt(s): %w", ErrSourceUnavailable, result.Attempts, err)
	}
	return snap, nil
}

func (s *Syncer) reconcileParties(ctx context.Context, caseID string, current *snapshot.CaseSnapshot, result *Result, log *logger.Logger) []party.ArrivalChange {
	if len(current.Parties) == 0 && len(current.Representatives) == 0 {
		return nil
	}
	existing, err := s.store.ListParties(ctx, caseID)
	if err != nil {
		result.fail("load parties: %v", err)
		return nil
	}
	existingReps, err := s.store.ListRepresentatives(ctx, caseID)
	if err != nil {
		result.fail("load representatives: %v", err)
		return nil
	}

	plan := party.Reconcile(existing, existingReps, current.Parties, current.Representatives)
	result.Warnings = append(result.Warnings, plan.Warnings...)

	applied := party.Apply(ctx, s.store, caseID, plan, log)
	result.PartiesUpserted = applied.PartiesUpserted
	result.PartiesDeleted = applied.PartiesDeleted
	result.RepresentativesUpserted = applied.RepresentativesUpserted
	for _, e := range applied.Errors {
		result.fail("%s", e)
	}
	return applied.ArrivalChanges
}

func (s *Syncer) serviceChange(c party.ArrivalChange, progress []snapshot.ProgressItem) deadline.ServiceChange {
	electronic := false
	if date, err := snapshot.ParseDate(c.NewDate, s.loc); err == nil {
		electronic = deadline.ElectronicServiceOn(progress, date, s.loc)
	}
	return deadline.ServiceChange{
		PartyID:    c.PartyID,
		PartyLabel: c.Label,
		Appealable: party.IsAppealable(c.Label, c.Type),
		OldDate:    c.OldDate,
		NewDate:    c.NewDate,
		Electronic: electronic,
	}
}

// emitCalendar publishes calendar intents and records them only once the
// publish succeeded, so a failed publish is retried on the next pass.
func (s *Syncer) emitCalendar(ctx context.Context, rec *database.CaseRecord, hearings []snapshot.Hearing, result *Result) {
	previous, err := s.store.ListCalendarEvents(ctx, rec.ID)
	if err != nil {
		result.fail("load calendar events: %v", err)
		return
	}
	intents := s.calendar.Diff(rec.ID, rec.CaseNumber, hearings, previous)
	if len(intents) == 0 {
		return
	}
	if s.publisher != nil {
		if err := s.publisher.PublishCalendar(ctx, rec.ID, rec.CaseNumber, intents); err != nil {
			result.fail("publish calendar: %v", err)
			return
		}
	}
	if err := s.store.RecordCalendarIntents(ctx, rec.ID, intents); err != nil {
		result.fail("record calendar events: %v", err)
		return
	}
	result.CalendarIntents = len(intents)
}

func (s *Syncer) notify(ctx context.Context, rec *database.CaseRecord, updates []detector.CaseUpdate, result *Result) {
	selected := s.policy.Select(updates)
	if len(selected) == 0 || s.publisher == nil {
		return
	}
	items := make([]notify.Item, len(selected))
	for i, u := range selected {
		items[i] = notify.Classify(u)
	}
	if err := s.publisher.PublishUpdates(ctx, rec.ID, rec.CaseNumber, items); err != nil {
		result.fail("publish notifications: %v", err)
		return
	}
	result.Notifications = len(items)
}

func (s *Syncer) nextHearing(hearings []snapshot.Hearing) *time.Time {
	h := s.detector.NextHearing(hearings)
	if h == nil {
		return nil
	}
	start, err := snapshot.ParseDateTime(h.Date, h.Time, calendar.DefaultHour, s.loc)
	if err != nil {
		return nil
	}
	return &start
}

// Summary aggregates a SyncAll run.
type Summary struct {
	Total     int       `json:"total"`
	Synced    int       `json:"synced"`
	Unchanged int       `json:"unchanged"`
	Failed    int       `json:"failed"`
	Results   []*Result `json:"results"`
}

// SyncAll syncs every active case, at most opts.Sessions at a time. Cases
// share nothing but the store and the cache.
func (s *Syncer) SyncAll(ctx context.Context) (*Summary, error) {
	cases, err := s.store.ListCases(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list cases: %w", err)
	}

	results := make([]*Result, len(cases))
	var wg sync.WaitGroup
	semaphore := make(chan struct{}, s.opts.Sessions)

	for i, c := range cases {
		wg.Add(1)
		go func(index int, caseID, caseNumber string) {
			defer wg.Done()

			select {
			case semaphore <- struct{}{}:
			case <-ctx.Done():
				results[index] = &Result{CaseID: caseID, CaseNumber: caseNumber, Status: StatusFailed, Errors: []string{ctx.Err().Error()}}
				return
			}
			defer func() { <-semaphore }()

			res, err := s.SyncCase(ctx, caseID)
			if res == nil {
				res = &Result{CaseID: caseID, CaseNumber: caseNumber, Status: StatusFailed, Errors: []string{err.Error()}}
			}
			results[index] = res
		}(i, c.ID, c.CaseNumber)
	}
	wg.Wait()

	summary := &Summary{Total: len(results), Results: results}
	for _, r := range results {
		switch r.Status {
		case StatusSynced:
			summary.Synced++
		case StatusUnchanged:
			summary.Unchanged++
		default:
			summary.Failed++
		}
	}
	return summary, nil
}

func syncRun(r *Result, err error) *database.SyncRun {
	run := &database.SyncRun{
		CaseID:           r.CaseID,
		CaseNumber:       r.CaseNumber,
		StartedAt:        r.StartedAt,
		FinishedAt:       r.FinishedAt,
		Status:           r.Status,
		SnapshotHash:     r.SnapshotHash,
		Attempts:         r.Attempts,
		Updates:          len(r.Updates),
		PartiesUpserted:  r.PartiesUpserted,
		RepsUpserted:     r.RepresentativesUpserted,
		DeadlinesCreated: r.Deadlines.Created,
		DeadlinesUpdated: r.Deadlines.Updated,
		CalendarIntents:  r.CalendarIntents,
		Notifications:    r.Notifications,
		Partial:          r.Partial,
		Replayed:         r.Replayed,
		Warnings:         strings.Join(r.Warnings, "\n"),
	}
	if err != nil {
		run.ErrorMessage = err.Error()
	} else if len(r.Errors) > 0 {
		run.ErrorMessage = strings.Join(r.Errors, "\n")
	}
	return run
}
