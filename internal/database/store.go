package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/JustJay7/court-case-sync/internal/calendar"
	"github.com/JustJay7/court-case-sync/internal/deadline"
	"github.com/JustJay7/court-case-sync/internal/detector"
	"github.com/JustJay7/court-case-sync/internal/party"
	"github.com/JustJay7/court-case-sync/internal/snapshot"
)

var (
	ErrCaseNotFound     = errors.New("case not found")
	ErrDeadlineNotFound = errors.New("deadline not found")
)

// Store is the gorm-backed datastore for every sync component. All writes
// are idempotent upserts on natural keys.
type Store struct {
	db     *gorm.DB
	policy deadline.Policy
	loc    *time.Location
}

// NewStore wraps db. policy is applied whenever a deadline row is saved;
// loc is the zone civil dates are read back in.
func NewStore(db *gorm.DB, policy deadline.Policy, loc *time.Location) *Store {
	if loc == nil {
		loc = time.UTC
	}
	return &Store{db: db, policy: policy, loc: loc}
}

func (s *Store) conn(ctx context.Context) *gorm.DB {
	return s.db.WithContext(deadline.ContextWithPolicy(ctx, s.policy))
}

// Policy returns the deadline policy applied on save.
func (s *Store) Policy() deadline.Policy {
	return s.policy
}

// Ping checks the database connection.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// ----- cases -----

func (s *Store) CreateCase(ctx context.Context, c *CaseRecord) error {
	if c.CaseNumber == "" {
		return fmt.Errorf("case number is required")
	}
	c.Active = true
	if err := s.conn(ctx).Create(c).Error; err != nil {
		return fmt.Errorf("create case %s: %w", c.CaseNumber, err)
	}
	return nil
}

func (s *Store) GetCase(ctx context.Context, id string) (*CaseRecord, error) {
	var c CaseRecord
	err := s.conn(ctx).Where("id = ?", id).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCaseNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load case %s: %w", id, err)
	}
	return &c, nil
}

// ListCases returns cases ordered by case number.
func (s *Store) ListCases(ctx context.Context, activeOnly bool) ([]CaseRecord, error) {
	q := s.conn(ctx).Order("case_number")
	if activeOnly {
		q = q.Where("active = ?", true)
	}
	var out []CaseRecord
	if err := q.Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list cases: %w", err)
	}
	return out, nil
}

// MarkSynced records the outcome of a successful fetch on the case row.
func (s *Store) MarkSynced(ctx context.Context, caseID, hash string, syncedAt time.Time, nextHearing *time.Time) error {
	syncedAt = syncedAt.UTC()
	var next interface{}
	if nextHearing != nil {
		next = nextHearing.UTC()
	}
	err := s.conn(ctx).Model(&CaseRecord{}).Where("id = ?", caseID).Updates(map[string]interface{}{
		"last_hash":       hash,
		"last_synced_at":  syncedAt,
		"next_hearing_at": next,
	}).Error
	if err != nil {
		return fmt.Errorf("mark case %s synced: %w", caseID, err)
	}
	return nil
}

// ----- snapshots and updates -----

// LatestSnapshot returns the most recent capture of a case, or nil when the
// case was never synced.
func (s *Store) LatestSnapshot(ctx context.Context, caseID string) (*snapshot.Capture, string, error) {
	var rec SnapshotRecord
	err := s.conn(ctx).Where("case_id = ?", caseID).Order("captured_at desc").First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("load snapshot for %s: %w", caseID, err)
	}

	var snap snapshot.CaseSnapshot
	if err := json.Unmarshal([]byte(rec.Data), &snap); err != nil {
		return nil, "", fmt.Errorf("decode snapshot %s: %w", rec.ID, err)
	}
	return &snapshot.Capture{
		CaseID:     caseID,
		CapturedAt: rec.CapturedAt.In(s.loc),
		Snapshot:   snap,
	}, rec.Hash, nil
}

// PreviousSnapshot returns the capture taken before the latest one, or nil
// when the case has fewer than two.
func (s *Store) PreviousSnapshot(ctx context.Context, caseID string) (*snapshot.Capture, error) {
	var rec SnapshotRecord
	err := s.conn(ctx).Where("case_id = ?", caseID).Order("captured_at desc").Offset(1).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load previous snapshot for %s: %w", caseID, err)
	}

	var snap snapshot.CaseSnapshot
	if err := json.Unmarshal([]byte(rec.Data), &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot %s: %w", rec.ID, err)
	}
	return &snapshot.Capture{
		CaseID:     caseID,
		CapturedAt: rec.CapturedAt.In(s.loc),
		Snapshot:   snap,
	}, nil
}

// SaveSnapshot appends a capture and returns its id.
func (s *Store) SaveSnapshot(ctx context.Context, c snapshot.Capture, hash string) (string, error) {
	data, err := json.Marshal(c.Snapshot)
	if err != nil {
		return "", fmt.Errorf("encode snapshot: %w", err)
	}
	rec := SnapshotRecord{
		CaseID:     c.CaseID,
		CapturedAt: c.CapturedAt.UTC(),
		Hash:       hash,
		Data:       string(data),
	}
	if err := s.conn(ctx).Create(&rec).Error; err != nil {
		return "", fmt.Errorf("save snapshot for %s: %w", c.CaseID, err)
	}
	return rec.ID, nil
}

// SaveUpdates stores the updates of one capture in a single transaction.
func (s *Store) SaveUpdates(ctx context.Context, caseID, snapshotID string, detectedAt time.Time, updates []detector.CaseUpdate) error {
	if len(updates) == 0 {
		return nil
	}
	records := make([]UpdateRecord, 0, len(updates))
	for _, u := range updates {
		ref, err := json.Marshal(u.Ref)
		if err != nil {
			return fmt.Errorf("encode update ref: %w", err)
		}
		records = append(records, UpdateRecord{
			CaseID:     caseID,
			SnapshotID: snapshotID,
			Type:       string(u.Type),
			Importance: string(u.Importance),
			Summary:    u.Summary,
			RefKind:    string(u.Ref.Kind),
			RefKey:     u.Ref.Key,
			RefDate:    u.Ref.Date,
			RefData:    string(ref),
			DetectedAt: detectedAt.UTC(),
		})
	}
	if err := s.conn(ctx).Create(&records).Error; err != nil {
		return fmt.Errorf("save updates for %s: %w", caseID, err)
	}
	return nil
}

// ListUpdates returns the newest updates of a case first.
func (s *Store) ListUpdates(ctx context.Context, caseID string, limit int) ([]UpdateRecord, error) {
	q := s.conn(ctx).Where("case_id = ?", caseID).Order("detected_at desc").Order("rowid")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var out []UpdateRecord
	if err := q.Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list updates for %s: %w", caseID, err)
	}
	return out, nil
}

// CaseUpdate decodes the stored row back into a detector update.
func (r UpdateRecord) CaseUpdate() detector.CaseUpdate {
	u := detector.CaseUpdate{
		Type:       detector.UpdateType(r.Type),
		Importance: detector.Importance(r.Importance),
		Summary:    r.Summary,
	}
	if r.RefData != "" {
		_ = json.Unmarshal([]byte(r.RefData), &u.Ref)
	}
	return u
}

// ----- parties -----

func (s *Store) ListParties(ctx context.Context, caseID string) ([]party.Party, error) {
	records, err := s.ListPartyRecords(ctx, caseID)
	if err != nil {
		return nil, err
	}
	out := make([]party.Party, 0, len(records))
	for _, r := range records {
		out = append(out, r.toParty())
	}
	return out, nil
}

func (s *Store) ListPartyRecords(ctx context.Context, caseID string) ([]PartyRecord, error) {
	var out []PartyRecord
	err := s.conn(ctx).Where("case_id = ?", caseID).Order("display_order").Order("created_at").Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("list parties for %s: %w", caseID, err)
	}
	return out, nil
}

func (s *Store) SaveParty(ctx context.Context, caseID string, p *party.Party) error {
	db := s.conn(ctx)
	var rec PartyRecord
	if p.ID != "" {
		err := db.Where("id = ? AND case_id = ?", p.ID, caseID).First(&rec).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("load party %s: %w", p.ID, err)
		}
	}
	rec.fromParty(caseID, *p)
	if err := db.Save(&rec).Error; err != nil {
		return fmt.Errorf("save party %q: %w", p.Name, err)
	}
	p.ID = rec.ID
	return nil
}

func (s *Store) DeleteParty(ctx context.Context, caseID, id string) error {
	err := s.conn(ctx).Where("id = ? AND case_id = ?", id, caseID).Delete(&PartyRecord{}).Error
	if err != nil {
		return fmt.Errorf("delete party %s: %w", id, err)
	}
	return nil
}

func (s *Store) ListRepresentatives(ctx context.Context, caseID string) ([]party.Representative, error) {
	var records []RepresentativeRecord
	if err := s.conn(ctx).Where("case_id = ?", caseID).Order("created_at").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("list representatives for %s: %w", caseID, err)
	}
	out := make([]party.Representative, 0, len(records))
	for _, r := range records {
		out = append(out, party.Representative{
			ID:               r.ID,
			Name:             r.Name,
			Label:            r.Label,
			Firm:             r.Firm,
			IsOurFirm:        r.IsOurFirm,
			ManualOverride:   r.ManualOverride,
			SyncedFromSource: r.SyncedFromSource,
		})
	}
	return out, nil
}

func (s *Store) SaveRepresentative(ctx context.Context, caseID string, r *party.Representative) error {
	db := s.conn(ctx)
	var rec RepresentativeRecord
	err := db.Where("case_id = ? AND label = ? AND name = ?", caseID, r.Label, r.Name).First(&rec).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("load representative %q: %w", r.Name, err)
	}
	rec.CaseID = caseID
	rec.Label = r.Label
	rec.Name = r.Name
	rec.Firm = r.Firm
	rec.IsOurFirm = r.IsOurFirm
	rec.ManualOverride = r.ManualOverride
	rec.SyncedFromSource = r.SyncedFromSource
	if err := db.Save(&rec).Error; err != nil {
		return fmt.Errorf("save representative %q: %w", r.Name, err)
	}
	r.ID = rec.ID
	return nil
}

func (r *PartyRecord) fromParty(caseID string, p party.Party) {
	r.ID = p.ID
	r.CaseID = caseID
	r.Name = p.Name
	r.Type = string(p.Type)
	r.Label = p.Label
	r.DisplayOrder = p.Order
	r.SourceIndex = p.SourceIndex
	r.ManualOverride = p.ManualOverride
	r.IsOurClient = p.IsOurClient
	r.ClientID = p.ClientID
	r.FeeAllocation = p.FeeAllocation
	r.IsPrimary = p.IsPrimary
	r.JudgmentArrivalDate = p.JudgmentArrivalDate
	r.FinalizationDate = p.FinalizationDate
	r.SyncedFromSource = p.SyncedFromSource
	r.RawName = p.RawName
	r.RawLabel = p.RawLabel
	r.Notes = p.Notes
}

func (r PartyRecord) toParty() party.Party {
	return party.Party{
		ID:                  r.ID,
		Name:                r.Name,
		Type:                party.Type(r.Type),
		Label:               r.Label,
		Order:               r.DisplayOrder,
		SourceIndex:         r.SourceIndex,
		ManualOverride:      r.ManualOverride,
		IsOurClient:         r.IsOurClient,
		ClientID:            r.ClientID,
		FeeAllocation:       r.FeeAllocation,
		IsPrimary:           r.IsPrimary,
		JudgmentArrivalDate: r.JudgmentArrivalDate,
		FinalizationDate:    r.FinalizationDate,
		SyncedFromSource:    r.SyncedFromSource,
		RawName:             r.RawName,
		RawLabel:            r.RawLabel,
		Notes:               r.Notes,
	}
}

// ----- deadlines -----

func (s *Store) FindDeadline(ctx context.Context, caseID string, t deadline.Type, partyID string) (*deadline.Deadline, error) {
	var rec DeadlineRecord
	err := s.conn(ctx).Where("case_id = ? AND type = ? AND party_id = ?", caseID, string(t), partyID).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find deadline %s: %w", t, err)
	}
	d := s.toDeadline(rec)
	return &d, nil
}

// SaveDeadline upserts by (case, type, party). The deadline date is derived
// by the record's save hook and copied back into d.
func (s *Store) SaveDeadline(ctx context.Context, d *deadline.Deadline) error {
	db := s.conn(ctx)
	var rec DeadlineRecord
	err := db.Where("case_id = ? AND type = ? AND party_id = ?", d.CaseID, string(d.Type), d.PartyID).First(&rec).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("load deadline %s: %w", d.Type, err)
	}
	rec.CaseID = d.CaseID
	rec.Type = string(d.Type)
	rec.PartyID = d.PartyID
	rec.TriggerDate = snapshot.FormatDate(d.TriggerDate)
	rec.ElectronicService = d.ElectronicService
	rec.Status = string(d.Status)
	if rec.Status == "" {
		rec.Status = string(deadline.StatusPending)
	}
	rec.Notes = d.Notes
	rec.CompletedAt = d.CompletedAt
	if err := db.Save(&rec).Error; err != nil {
		return fmt.Errorf("save deadline %s: %w", d.Type, err)
	}
	saved := s.toDeadline(rec)
	*d = saved
	return nil
}

// ListDeadlines returns a case's deadlines, earliest due first.
func (s *Store) ListDeadlines(ctx context.Context, caseID string) ([]DeadlineRecord, error) {
	var out []DeadlineRecord
	err := s.conn(ctx).Where("case_id = ?", caseID).Order("deadline_date").Order("type").Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("list deadlines for %s: %w", caseID, err)
	}
	return out, nil
}

// CompleteDeadline marks a deadline done. Completed deadlines are never
// moved by later syncs.
func (s *Store) CompleteDeadline(ctx context.Context, id string, at time.Time) (*DeadlineRecord, error) {
	db := s.conn(ctx)
	var rec DeadlineRecord
	err := db.Where("id = ?", id).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrDeadlineNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load deadline %s: %w", id, err)
	}
	at = at.UTC()
	rec.Status = string(deadline.StatusCompleted)
	rec.CompletedAt = &at
	if err := db.Save(&rec).Error; err != nil {
		return nil, fmt.Errorf("complete deadline %s: %w", id, err)
	}
	return &rec, nil
}

func (s *Store) toDeadline(rec DeadlineRecord) deadline.Deadline {
	d := deadline.Deadline{
		ID:                rec.ID,
		CaseID:            rec.CaseID,
		Type:              deadline.Type(rec.Type),
		PartyID:           rec.PartyID,
		ElectronicService: rec.ElectronicService,
		Status:            deadline.Status(rec.Status),
		Notes:             rec.Notes,
		CompletedAt:       rec.CompletedAt,
	}
	if t, err := snapshot.ParseDate(rec.TriggerDate, s.loc); err == nil {
		d.TriggerDate = t
	}
	if t, err := snapshot.ParseDate(rec.DeadlineDate, s.loc); err == nil {
		d.DeadlineDate = t
	}
	return d
}

// ----- calendar -----

// ListCalendarEvents returns what was last emitted for each hearing of a case.
func (s *Store) ListCalendarEvents(ctx context.Context, caseID string) ([]calendar.Emitted, error) {
	var records []CalendarEventRecord
	if err := s.conn(ctx).Where("case_id = ?", caseID).Order("hearing_key").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("list calendar events for %s: %w", caseID, err)
	}
	out := make([]calendar.Emitted, 0, len(records))
	for _, r := range records {
		out = append(out, calendar.Emitted{
			HearingKey: r.HearingKey,
			Hash:       r.Hash,
			Start:      r.Start.In(s.loc),
			Location:   r.Location,
			Title:      r.Title,
		})
	}
	return out, nil
}

// RecordCalendarIntents makes the stored emitted set match the intents.
func (s *Store) RecordCalendarIntents(ctx context.Context, caseID string, intents []calendar.Intent) error {
	if len(intents) == 0 {
		return nil
	}
	return s.conn(ctx).Transaction(func(tx *gorm.DB) error {
		for _, in := range intents {
			if in.Action == calendar.Delete {
				err := tx.Where("case_id = ? AND hearing_key = ?", caseID, in.Event.HearingKey).
					Delete(&CalendarEventRecord{}).Error
				if err != nil {
					return fmt.Errorf("delete calendar event %s: %w", in.Event.HearingKey, err)
				}
				continue
			}

			var rec CalendarEventRecord
			err := tx.Where("case_id = ? AND hearing_key = ?", caseID, in.Event.HearingKey).First(&rec).Error
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("load calendar event %s: %w", in.Event.HearingKey, err)
			}
			rec.CaseID = caseID
			rec.HearingKey = in.Event.HearingKey
			rec.Start = in.Event.Start.UTC()
			rec.Location = in.Event.Location
			rec.Title = in.Event.Title
			rec.Hash = in.Event.Hash
			if err := tx.Save(&rec).Error; err != nil {
				return fmt.Errorf("save calendar event %s: %w", in.Event.HearingKey, err)
			}
		}
		return nil
	})
}

// ----- sync runs -----

func (s *Store) SaveSyncRun(ctx context.Context, run *SyncRun) error {
	if err := s.conn(ctx).Create(run).Error; err != nil {
		return fmt.Errorf("save sync run: %w", err)
	}
	return nil
}

// LastSyncRun returns the most recent run of a case, or nil when it was
// never synced.
func (s *Store) LastSyncRun(ctx context.Context, caseID string) (*SyncRun, error) {
	var run SyncRun
	err := s.conn(ctx).Where("case_id = ?", caseID).Order("started_at desc").Order("created_at desc").First(&run).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load last sync run for %s: %w", caseID, err)
	}
	return &run, nil
}

// ListSyncRuns returns the newest runs first. An empty caseID lists all
// cases.
func (s *Store) ListSyncRuns(ctx context.Context, caseID string, limit int) ([]SyncRun, error) {
	q := s.conn(ctx).Order("started_at desc")
	if caseID != "" {
		q = q.Where("case_id = ?", caseID)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	var out []SyncRun
	if err := q.Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list sync runs: %w", err)
	}
	return out, nil
}
