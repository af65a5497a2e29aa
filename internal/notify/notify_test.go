package notify

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JustJay7/court-case-sync/internal/calendar"
	"github.com/JustJay7/court-case-sync/internal/detector"
	"github.com/JustJay7/court-case-sync/pkg/logger"
)

func sampleUpdates() []detector.CaseUpdate {
	return []detector.CaseUpdate{
		{Type: detector.HearingNew, Importance: detector.High, Summary: "변론기일 지정"},
		{Type: detector.DocumentFiled, Importance: detector.Low, Summary: "준비서면 제출"},
		{Type: detector.Served, Importance: detector.Medium, Summary: "판결정본 도달"},
	}
}

func TestPolicySelect(t *testing.T) {
	updates := sampleUpdates()

	selected := DefaultPolicy().Select(updates)
	require.Len(t, selected, 2)
	assert.Equal(t, detector.HearingNew, selected[0].Type)
	assert.Equal(t, detector.Served, selected[1].Type)

	assert.Len(t, Policy{MinImportance: detector.High}.Select(updates), 1)
	assert.Len(t, Policy{MinImportance: detector.Low}.Select(updates), 3)
	assert.Len(t, Policy{}.Select(updates), 2, "zero policy behaves like the default")
}

func TestClassify(t *testing.T) {
	item := Classify(detector.CaseUpdate{Type: detector.HearingChanged, Importance: detector.High})
	assert.Equal(t, CategoryHearing, item.Category)
	assert.True(t, item.Urgent)

	item = Classify(detector.CaseUpdate{Type: detector.AppealFiled, Importance: detector.High})
	assert.Equal(t, CategoryDeadline, item.Category)

	item = Classify(detector.CaseUpdate{Type: detector.StatusChanged, Importance: detector.Medium})
	assert.Equal(t, CategoryManual, item.Category)
	assert.False(t, item.Urgent)
}

func setupRedis(t *testing.T) (*RedisPublisher, *miniredis.Miniredis) {
	s := miniredis.RunT(t)
	pub, err := NewRedisPublisher("redis://" + s.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { pub.Close() })
	return pub, s
}

func TestRedisPublisherPushesEnvelopes(t *testing.T) {
	pub, s := setupRedis(t)
	ctx := context.Background()

	var items []Item
	for _, u := range DefaultPolicy().Select(sampleUpdates()) {
		items = append(items, Classify(u))
	}
	require.NoError(t, pub.PublishUpdates(ctx, "case-1", "2024가단12345", items))

	list, err := s.List(NotificationQueue)
	require.NoError(t, err)
	require.Len(t, list, 1)

	var env Envelope
	require.NoError(t, json.Unmarshal([]byte(list[0]), &env))
	assert.Equal(t, "updates", env.Kind)
	assert.Equal(t, "case-1", env.CaseID)
	assert.Equal(t, "2024가단12345", env.CaseNumber)
	assert.NotEmpty(t, env.ID)

	var payload []Item
	require.NoError(t, json.Unmarshal(env.Payload, &payload))
	require.Len(t, payload, 2)
	assert.Equal(t, detector.HearingNew, payload[0].Update.Type)
}

func TestRedisPublisherCalendar(t *testing.T) {
	pub, s := setupRedis(t)
	ctx := context.Background()

	intents := []calendar.Intent{{
		Action: calendar.Create,
		CaseID: "case-1",
		Event: calendar.Event{
			HearingKey: "2025.04.08|변론기일",
			Start:      time.Date(2025, 4, 8, 14, 0, 0, 0, time.UTC),
			Title:      "2024가단12345 변론기일",
		},
	}}
	require.NoError(t, pub.PublishCalendar(ctx, "case-1", "2024가단12345", intents))

	list, err := s.List(CalendarQueue)
	require.NoError(t, err)
	require.Len(t, list, 1)

	var env Envelope
	require.NoError(t, json.Unmarshal([]byte(list[0]), &env))
	assert.Equal(t, "calendar", env.Kind)
}

func TestRedisPublisherSkipsEmpty(t *testing.T) {
	pub, s := setupRedis(t)
	ctx := context.Background()

	require.NoError(t, pub.PublishUpdates(ctx, "case-1", "", nil))
	require.NoError(t, pub.PublishCalendar(ctx, "case-1", "", nil))
	assert.False(t, s.Exists(NotificationQueue))
	assert.False(t, s.Exists(CalendarQueue))
}

func TestNewRedisPublisherFailsWithoutServer(t *testing.T) {
	_, err := NewRedisPublisher("redis://127.0.0.1:1")
	assert.Error(t, err)

	_, err = NewRedisPublisher("not a url")
	assert.Error(t, err)
}

func TestLogPublisher(t *testing.T) {
	pub := NewLogPublisher(logger.NewNop())
	ctx := context.Background()
	assert.NoError(t, pub.PublishUpdates(ctx, "case-1", "2024가단12345", []Item{Classify(sampleUpdates()[0])}))
	assert.NoError(t, pub.PublishCalendar(ctx, "case-1", "2024가단12345", []calendar.Intent{{Action: calendar.Delete}}))
	assert.NoError(t, pub.Close())
}
