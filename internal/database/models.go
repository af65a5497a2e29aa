package database

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/JustJay7/court-case-sync/internal/deadline"
	"github.com/JustJay7/court-case-sync/internal/snapshot"
)

// Civil dates (trigger and deadline days) are stored as YYYY-MM-DD text so
// they survive the driver's timezone handling unchanged.

// CaseRecord is a tracked court case.
type CaseRecord struct {
	ID        string         `json:"id" gorm:"type:uuid;primarykey"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	CaseNumber    string     `json:"case_number" gorm:"not null;uniqueIndex:idx_case_records_court_number"`
	CourtName     string     `json:"court_name" gorm:"uniqueIndex:idx_case_records_court_number"`
	PartyName     string     `json:"party_name"`
	Title         string     `json:"title"`
	Active        bool       `json:"active" gorm:"default:true"`
	LastHash      string     `json:"last_hash"`
	LastSyncedAt  *time.Time `json:"last_synced_at"`
	NextHearingAt *time.Time `json:"next_hearing_at"`
}

// SnapshotRecord is one captured snapshot. Rows are superseded, never
// rewritten.
type SnapshotRecord struct {
	ID         string    `json:"id" gorm:"type:uuid;primarykey"`
	CreatedAt  time.Time `json:"created_at"`
	CaseID     string    `json:"case_id" gorm:"type:uuid;not null;index"`
	CapturedAt time.Time `json:"captured_at"`
	Hash       string    `json:"hash" gorm:"size:64"`
	Data       string    `json:"-" gorm:"type:text"`
}

// UpdateRecord is one detected change.
type UpdateRecord struct {
	ID         string    `json:"id" gorm:"type:uuid;primarykey"`
	CreatedAt  time.Time `json:"created_at"`
	CaseID     string    `json:"case_id" gorm:"type:uuid;not null;index"`
	SnapshotID string    `json:"snapshot_id" gorm:"type:uuid"`
	Type       string    `json:"type"`
	Importance string    `json:"importance"`
	Summary    string    `json:"summary"`
	RefKind    string    `json:"ref_kind"`
	RefKey     string    `json:"ref_key"`
	RefDate    string    `json:"ref_date"`
	RefData    string    `json:"-" gorm:"type:text"`
	DetectedAt time.Time `json:"detected_at"`
}

// PartyRecord is a party of a case. A nil SourceIndex marks a legacy row
// entered before automated sync.
type PartyRecord struct {
	ID        string    `json:"id" gorm:"type:uuid;primarykey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	CaseID              string `json:"case_id" gorm:"type:uuid;not null;index"`
	Name                string `json:"name"`
	Type                string `json:"type"`
	Label               string `json:"label"`
	DisplayOrder        int    `json:"display_order"`
	SourceIndex         *int   `json:"source_index"`
	ManualOverride      bool   `json:"manual_override"`
	IsOurClient         bool   `json:"is_our_client"`
	ClientID            string `json:"client_id"`
	FeeAllocation       int64  `json:"fee_allocation"`
	IsPrimary           bool   `json:"is_primary"`
	JudgmentArrivalDate string `json:"judgment_arrival_date"`
	FinalizationDate    string `json:"finalization_date"`
	SyncedFromSource    bool   `json:"synced_from_source"`
	RawName             string `json:"raw_name"`
	RawLabel            string `json:"raw_label"`
	Notes               string `json:"notes" gorm:"type:text"`
}

// RepresentativeRecord is an attorney or agent of a case.
type RepresentativeRecord struct {
	ID        string    `json:"id" gorm:"type:uuid;primarykey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	CaseID           string `json:"case_id" gorm:"type:uuid;not null;uniqueIndex:idx_case_representatives_key"`
	Label            string `json:"label" gorm:"uniqueIndex:idx_case_representatives_key"`
	Name             string `json:"name" gorm:"uniqueIndex:idx_case_representatives_key"`
	Firm             string `json:"firm"`
	IsOurFirm        bool   `json:"is_our_firm"`
	ManualOverride   bool   `json:"manual_override"`
	SyncedFromSource bool   `json:"synced_from_source"`
}

// DeadlineRecord is a statutory deadline. DeadlineDate is derived from the
// trigger in BeforeSave and has no other writer.
type DeadlineRecord struct {
	ID        string    `json:"id" gorm:"type:uuid;primarykey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	CaseID            string     `json:"case_id" gorm:"type:uuid;not null;uniqueIndex:idx_case_deadlines_key"`
	Type              string     `json:"type" gorm:"not null;uniqueIndex:idx_case_deadlines_key"`
	PartyID           string     `json:"party_id" gorm:"uniqueIndex:idx_case_deadlines_key"`
	TriggerDate       string     `json:"trigger_date" gorm:"size:10"`
	DeadlineDate      string     `json:"deadline_date" gorm:"size:10;index"`
	ElectronicService bool       `json:"electronic_service"`
	Status            string     `json:"status" gorm:"default:pending"`
	Notes             string     `json:"notes" gorm:"type:text"`
	CompletedAt       *time.Time `json:"completed_at"`
}

// CalendarEventRecord remembers what was last emitted for a hearing.
type CalendarEventRecord struct {
	ID        string    `json:"id" gorm:"type:uuid;primarykey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	CaseID     string    `json:"case_id" gorm:"type:uuid;not null;uniqueIndex:idx_calendar_events_key"`
	HearingKey string    `json:"hearing_key" gorm:"not null;uniqueIndex:idx_calendar_events_key"`
	Start      time.Time `json:"start"`
	Location   string    `json:"location"`
	Title      string    `json:"title"`
	Hash       string    `json:"hash" gorm:"size:64"`
}

// SyncRun logs one sync pass of a case.
type SyncRun struct {
	ID               string    `json:"id" gorm:"type:uuid;primarykey"`
	CreatedAt        time.Time `json:"created_at"`
	CaseID           string    `json:"case_id" gorm:"type:uuid;index"`
	CaseNumber       string    `json:"case_number"`
	StartedAt        time.Time `json:"started_at"`
	FinishedAt       time.Time `json:"finished_at"`
	Status           string    `json:"status"`
	SnapshotHash     string    `json:"snapshot_hash"`
	Attempts         int       `json:"attempts"`
	Updates          int       `json:"updates"`
	PartiesUpserted  int       `json:"parties_upserted"`
	RepsUpserted     int       `json:"reps_upserted"`
	DeadlinesCreated int       `json:"deadlines_created"`
	DeadlinesUpdated int       `json:"deadlines_updated"`
	CalendarIntents  int       `json:"calendar_intents"`
	Notifications    int       `json:"notifications"`
	Partial          bool      `json:"partial"`
	Replayed         bool      `json:"replayed"`
	Warnings         string    `json:"warnings" gorm:"type:text"`
	ErrorMessage     string    `json:"error_message" gorm:"type:text"`
}

func newID(id *string) {
	if *id == "" {
		*id = uuid.New().String()
	}
}

func (r *CaseRecord) BeforeCreate(tx *gorm.DB) error { newID(&r.ID); return nil }
func (r *SnapshotRecord) BeforeCreate(tx *gorm.DB) error { newID(&r.ID); return nil }
func (r *UpdateRecord) BeforeCreate(tx *gorm.DB) error { newID(&r.ID); return nil }
func (r *PartyRecord) BeforeCreate(tx *gorm.DB) error { newID(&r.ID); return nil }
func (r *RepresentativeRecord) BeforeCreate(tx *gorm.DB) error { newID(&r.ID); return nil }
func (r *DeadlineRecord) BeforeCreate(tx *gorm.DB) error { newID(&r.ID); return nil }
func (r *CalendarEventRecord) BeforeCreate(tx *gorm.DB) error { newID(&r.ID); return nil }
func (r *SyncRun) BeforeCreate(tx *gorm.DB) error { newID(&r.ID); return nil }

// BeforeSave derives DeadlineDate from the trigger date, the catalog day
// count and the policy carried by the statement context.
func (r *DeadlineRecord) BeforeSave(tx *gorm.DB) error {
	def, ok := deadline.Lookup(deadline.Type(r.Type))
	if !ok {
		return fmt.Errorf("unknown deadline type %q", r.Type)
	}
	trigger, err := snapshot.ParseDate(r.TriggerDate, time.UTC)
	if err != nil {
		return fmt.Errorf("deadline %s: %w", r.Type, err)
	}
	policy := deadline.PolicyFromContext(tx.Statement.Context)
	r.DeadlineDate = snapshot.FormatDate(policy.DueDate(trigger, def.Days, r.ElectronicService))
	return nil
}

func (CaseRecord) TableName() string {
	return "case_records"
}

func (SnapshotRecord) TableName() string {
	return "case_snapshots"
}

func (UpdateRecord) TableName() string {
	return "case_updates"
}

func (PartyRecord) TableName() string {
	return "case_parties"
}

func (RepresentativeRecord) TableName() string {
	return "case_representatives"
}

func (DeadlineRecord) TableName() string {
	return "case_deadlines"
}

func (CalendarEventRecord) TableName() string {
	return "calendar_events"
}

func (SyncRun) TableName() string {
	return "sync_runs"
}
