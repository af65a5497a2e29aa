package detector

// UpdateType classifies one detected change.
type UpdateType string

const (
	HearingNew         UpdateType = "hearing_new"
	HearingChanged     UpdateType = "hearing_changed"
	HearingCanceled    UpdateType = "hearing_canceled"
	HearingResult      UpdateType = "hearing_result"
	ProgressAdded      UpdateType = "progress_added"
	ProgressRemoved    UpdateType = "progress_removed"
	DocumentFiled      UpdateType = "document_filed"
	DocumentServed     UpdateType = "document_served"
	Served             UpdateType = "served"
	MediationConcluded UpdateType = "mediation_concluded"
	ResultAnnounced    UpdateType = "result_announced"
	AppealFiled        UpdateType = "appeal_filed"
	StatusChanged      UpdateType = "status_changed"
	BasicInfoChanged   UpdateType = "basic_info_changed"
	DocumentAdded      UpdateType = "document_added"
	LowerCourtAdded    UpdateType = "lower_court_added"
)

// Label returns the Korean display name used in summaries and messages.
func (t UpdateType) Label() string {
	switch t {
	case HearingNew:
		return "기일 지정"
	case HearingChanged:
		return "기일 변경"
	case HearingCanceled:
		return "기일 취소"
	case HearingResult:
		return "기일 결과"
	case ProgressAdded:
		return "진행내용"
	case ProgressRemoved:
		return "진행내용 삭제"
	case DocumentFiled:
		return "서류 제출"
	case DocumentServed:
		return "서류 송달"
	case Served:
		return "송달 도달"
	case MediationConcluded:
		return "조정·화해 성립"
	case ResultAnnounced:
		return "판결/결정"
	case AppealFiled:
		return "상소 제기"
	case StatusChanged:
		return "상태 변경"
	case BasicInfoChanged:
		return "기본정보 변경"
	case DocumentAdded:
		return "제출서류"
	case LowerCourtAdded:
		return "심급사건"
	}
	return string(t)
}

// Importance ranks an update for notification purposes.
type Importance string

const (
	High   Importance = "high"
	Medium Importance = "medium"
	Low    Importance = "low"
)

// Rank orders importances; higher is more important. Unknown values rank
// below Low.
func (i Importance) Rank() int {
	switch i {
	case High:
		return 3
	case Medium:
		return 2
	case Low:
		return 1
	}
	return 0
}

// ParseImportance maps config strings onto an Importance. "normal" is
// accepted as an alias for medium.
func ParseImportance(s string) (Importance, bool) {
	switch s {
	case "high":
		return High, true
	case "medium", "normal":
		return Medium, true
	case "low":
		return Low, true
	}
	return "", false
}

// RefKind names the snapshot sub-list an update points into.
type RefKind string

const (
	RefHearing    RefKind = "hearing"
	RefProgress   RefKind = "progress"
	RefDocument   RefKind = "document"
	RefLowerCourt RefKind = "lower_court"
	RefBasicInfo  RefKind = "basic_info"
)

// Ref points at the sub-record an update concerns. Index is the position in
// the current snapshot, or -1 for removed entries.
type Ref struct {
	Kind     RefKind `json:"kind"`
	Index    int     `json:"index"`
	Key      string  `json:"key"`
	Date     string  `json:"date,omitempty"`
	Time     string  `json:"time,omitempty"`
	Type     string  `json:"type,omitempty"`
	Location string  `json:"location,omitempty"`
	Content  string  `json:"content,omitempty"`
	Result   string  `json:"result,omitempty"`
	OldValue string  `json:"oldValue,omitempty"`
	NewValue string  `json:"newValue,omitempty"`
}

// CaseUpdate is one detected change between two snapshots.
type CaseUpdate struct {
	Type       UpdateType `json:"updateType"`
	Importance Importance `json:"importance"`
	Summary    string     `json:"summary"`
	Ref        Ref        `json:"ref"`
}
