package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JustJay7/court-case-sync/internal/snapshot"
)

var kst = time.FixedZone("KST", 9*3600)

func fixedDiffer() *Differ {
	return New(kst).WithClock(func() time.Time {
		return time.Date(2025, 3, 1, 10, 0, 0, 0, kst)
	})
}

func emitted(intents []Intent) []Emitted {
	var out []Emitted
	for _, in := range intents {
		if in.Action != Delete {
			out = append(out, in.Event.Emitted())
		}
	}
	return out
}

func TestDiffCreatesEvents(t *testing.T) {
	d := fixedDiffer()
	hearings := []snapshot.Hearing{
		{Date: "2025.04.08", Time: "14:00", Type: "변론기일", Location: "법정 301호"},
		{Date: "2025.05.13", Type: "판결선고기일", Location: "법정 301호"},
	}

	intents := d.Diff("case-1", "2024가단12345", hearings, nil)
	require.Len(t, intents, 2)

	first := intents[0]
	assert.Equal(t, Create, first.Action)
	assert.Equal(t, "case-1", first.CaseID)
	assert.Equal(t, "2024가단12345 변론기일", first.Event.Title)
	assert.Equal(t, time.Date(2025, 4, 8, 14, 0, 0, 0, kst), first.Event.Start)
	assert.Equal(t, KindMain, first.Event.Kind)
	assert.Equal(t, StatusScheduled, first.Event.Status)
	assert.Len(t, first.Event.Hash, 64)

	second := intents[1]
	assert.Equal(t, time.Date(2025, 5, 13, 9, 0, 0, 0, kst), second.Event.Start, "missing time defaults to 09:00")
	assert.Equal(t, KindJudgment, second.Event.Kind)
}

func TestDiffIsIdempotent(t *testing.T) {
	d := fixedDiffer()
	hearings := []snapshot.Hearing{
		{Date: "2025.04.08", Time: "14:00", Type: "변론기일", Location: "법정 301호"},
	}

	first := d.Diff("case-1", "2024가단12345", hearings, nil)
	again := d.Diff("case-1", "2024가단12345", hearings, emitted(first))
	assert.Empty(t, again)
}

func TestDiffUpdatesAndDeletes(t *testing.T) {
	d := fixedDiffer()
	before := []snapshot.Hearing{
		{Date: "2025.04.08", Time: "14:00", Type: "변론기일", Location: "법정 301호"},
		{Date: "2025.04.22", Time: "10:00", Type: "조정기일", Location: "조정실"},
	}
	prev := emitted(d.Diff("case-1", "2024가단12345", before, nil))

	after := []snapshot.Hearing{
		{Date: "2025.04.08", Time: "15:30", Type: "변론기일", Location: "법정 302호"},
	}
	intents := d.Diff("case-1", "2024가단12345", after, prev)
	require.Len(t, intents, 2)

	assert.Equal(t, Update, intents[0].Action)
	assert.Equal(t, "법정 302호", intents[0].Event.Location)
	require.NotNil(t, intents[0].Previous)
	assert.Equal(t, "법정 301호", intents[0].Previous.Location)

	assert.Equal(t, Delete, intents[1].Action)
	assert.Equal(t, "2025.04.22|조정기일", intents[1].Event.HearingKey)
	require.NotNil(t, intents[1].Previous)
}

func TestDiffResultCompletesHearing(t *testing.T) {
	d := fixedDiffer()
	scheduled := []snapshot.Hearing{{Date: "2025.04.08", Time: "14:00", Type: "변론기일"}}
	prev := emitted(d.Diff("case-1", "2024가단12345", scheduled, nil))

	done := []snapshot.Hearing{{Date: "2025.04.08", Time: "14:00", Type: "변론기일", Result: "속행"}}
	intents := d.Diff("case-1", "2024가단12345", done, prev)
	require.Len(t, intents, 1)
	assert.Equal(t, Update, intents[0].Action)
	assert.Equal(t, StatusCompleted, intents[0].Event.Status)
	assert.Equal(t, OutcomeContinued, intents[0].Event.Outcome)
}

func TestDiffPastHearingIsCompleted(t *testing.T) {
	intents := fixedDiffer().Diff("case-1", "2024가단12345", []snapshot.Hearing{
		{Date: "2025.01.10", Type: "변론기일"},
	}, nil)
	require.Len(t, intents, 1)
	assert.Equal(t, StatusCompleted, intents[0].Event.Status)
}

func TestDiffSkipsUnparseableAndDuplicates(t *testing.T) {
	intents := fixedDiffer().Diff("case-1", "2024가단12345", []snapshot.Hearing{
		{Date: "미정", Type: "변론기일"},
		{Date: "2025.04.08", Type: "변론기일", Location: "A"},
		{Date: "2025.04.08", Type: "변론기일", Location: "B"},
	}, nil)
	require.Len(t, intents, 1)
	assert.Equal(t, "A", intents[0].Event.Location)
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		want HearingKind
	}{
		{"변론준비기일", KindMain},
		{"증인신문기일", KindMain},
		{"공판기일", KindMain},
		{"조정기일", KindMediation},
		{"화해권고기일", KindMediation},
		{"면접조사", KindInvestigation},
		{"판결선고기일", KindJudgment},
		{"결정선고", KindJudgment},
		{"심문기일", KindInterim},
		{"가처분심문", KindInterim},
		{"부모교육", KindParenting},
		{"면접교섭", KindParenting},
		{"기타", KindMain},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.name))
		})
	}
}

func TestOutcomeOf(t *testing.T) {
	assert.Equal(t, OutcomeNone, OutcomeOf(""))
	assert.Equal(t, OutcomeContinued, OutcomeOf("변론속행"))
	assert.Equal(t, OutcomeConcluded, OutcomeOf("변론종결"))
	assert.Equal(t, OutcomeConcluded, OutcomeOf("조정성립"))
	assert.Equal(t, OutcomePostponed, OutcomeOf("기일연기"))
	assert.Equal(t, OutcomeDismissed, OutcomeOf("청구기각"))
	assert.Equal(t, OutcomeNone, OutcomeOf("선고"))
}
