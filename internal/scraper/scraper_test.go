package scraper

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JustJay7/court-case-sync/internal/config"
	"github.com/JustJay7/court-case-sync/internal/snapshot"
)

func TestSplitCaseNumber(t *testing.T) {
	tests := []struct {
		input              string
		year, code, serial string
		wantErr            bool
	}{
		{"2024가단12345", "2024", "가단", "12345", false},
		{"2024 드단 1234", "2024", "드단", "1234", false},
		{"2025고단7", "2025", "고단", "7", false},
		{"가단12345", "", "", "", true},
		{"2024-12345", "", "", "", true},
		{"", "", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			year, code, serial, err := SplitCaseNumber(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidCaseNumber)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.year, year)
			assert.Equal(t, tt.code, code)
			assert.Equal(t, tt.serial, serial)
		})
	}
}

func resultPage() []Table {
	return []Table{
		{
			Title: "기본내용",
			Rows: [][]string{
				{"사건번호", "2024가단12345", "사건명", "손해배상(기)"},
				{"재판부", "민사3단독", "접수일", "2024.03.02"},
				{"종국결과", "", "", ""},
			},
		},
		{
			Title:   "최근기일내용",
			Headers: []string{"일자", "시각", "기일구분", "기일장소", "결과"},
			Rows: [][]string{
				{"2025.04.08", "14:00", "변론기일", "제 401호 법정", "속행"},
				{"2025.05.13", "10:30", "판결선고기일", "제 401호 법정", ""},
			},
		},
		{
			Title:   "진행내용",
			Headers: []string{"일자", "내용", "결과"},
			Rows: [][]string{
				{"2024.03.02", "소장접수", ""},
				{"2024.03.20", "피고 김OO에게 소장부본 송달", "도달"},
			},
		},
		{
			Title:   "제출서류 접수내용",
			Headers: []string{"일자", "내용"},
			Rows:    [][]string{{"조회된 내역이 없습니다."}},
		},
		{
			Title:   "당사자내용",
			Headers: []string{"구분", "이름", "판결도달일", "확정일"},
			Rows: [][]string{
				{"원고", "1. 주식회사 한빛", "", ""},
				{"피고", "김OO", "", ""},
			},
		},
		{
			Title:   "대리인내용",
			Headers: []string{"구분", "이름"},
			Rows:    [][]string{{"원고 소송대리인", "법무법인 바른"}},
		},
		{
			Title:   "심급내용",
			Headers: []string{"법원", "사건번호", "결과"},
			Rows:    [][]string{{"서울중앙지방법원", "2023가소1000", "원고패"}},
		},
	}
}

func TestMapTables(t *testing.T) {
	snap, warnings := MapTables(resultPage())
	assert.Empty(t, warnings)

	v, ok := snap.Get("재판부")
	require.True(t, ok)
	assert.Equal(t, "민사3단독", v)
	v, ok = snap.Get("종국결과")
	require.True(t, ok)
	assert.Empty(t, v)
	assert.Len(t, snap.BasicInfo, 5)

	require.Len(t, snap.Hearings, 2)
	assert.Equal(t, snapshot.Hearing{
		Date:     "2025.04.08",
		Time:     "14:00",
		Type:     "변론기일",
		Location: "제 401호 법정",
		Result:   "속행",
	}, snap.Hearings[0])

	require.Len(t, snap.Progress, 2)
	assert.Equal(t, "도달", snap.Progress[1].Result)

	assert.Empty(t, snap.Documents)

	require.Len(t, snap.Parties, 2)
	assert.Equal(t, "1. 주식회사 한빛", snap.Parties[0].Name)
	assert.Equal(t, "피고", snap.Parties[1].Label)

	require.Len(t, snap.Representatives, 1)
	assert.Equal(t, "원고 소송대리인", snap.Representatives[0].Label)

	require.Len(t, snap.LowerCourtInfo, 1)
	assert.Equal(t, "2023가소1000", snap.LowerCourtInfo[0].CaseNo)
}

func TestMapTablesSplitsDateAndClock(t *testing.T) {
	snap, _ := MapTables([]Table{{
		Title:   "기일내용",
		Headers: []string{"일시", "기일구분", "장소"},
		Rows:    [][]string{{"2025.04.08 14:00", "조정기일", "조정실"}},
	}})

	require.Len(t, snap.Hearings, 1)
	assert.Equal(t, "2025.04.08", snap.Hearings[0].Date)
	assert.Equal(t, "14:00", snap.Hearings[0].Time)
	assert.Equal(t, "조정실", snap.Hearings[0].Location)
}

func TestMapTablesWarnsOnMissingSections(t *testing.T) {
	snap, warnings := MapTables([]Table{resultPage()[0]})

	assert.NotEmpty(t, snap.BasicInfo)
	assert.Empty(t, snap.Hearings)
	assert.ElementsMatch(t, []string{
		"section not found: hearings",
		"section not found: progress",
	}, warnings)
}

func TestMapTablesUntitledKeyValueTable(t *testing.T) {
	snap, warnings := MapTables([]Table{{
		Rows: [][]string{{"사건번호", "2024가단12345"}},
	}})

	v, ok := snap.Get("사건번호")
	require.True(t, ok)
	assert.Equal(t, "2024가단12345", v)
	assert.Len(t, warnings, 2)
}

func TestCaptchaRejected(t *testing.T) {
	assert.True(t, captchaRejected("보안문자를 다시 입력하세요"))
	assert.True(t, captchaRejected("입력하신 값이 일치하지 않습니다"))
	assert.False(t, captchaRejected("사건번호를 확인하세요"))
}

func fastPoll() PollSettings {
	return PollSettings{Interval: time.Millisecond, MaxPolls: 5}
}

func TestTwoCaptchaSolve(t *testing.T) {
	var polls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/in.php":
			assert.NoError(t, r.ParseForm())
			assert.Equal(t, "key-1", r.PostForm.Get("key"))
			assert.Equal(t, "base64", r.PostForm.Get("method"))
			_ = json.NewEncoder(w).Encode(twoCaptchaResponse{Status: 1, Request: "job-9"})
		case "/res.php":
			assert.Equal(t, "job-9", r.URL.Query().Get("id"))
			if atomic.AddInt32(&polls, 1) == 1 {
				_ = json.NewEncoder(w).Encode(twoCaptchaResponse{Status: 0, Request: "CAPCHA_NOT_READY"})
				return
			}
			_ = json.NewEncoder(w).Encode(twoCaptchaResponse{Status: 1, Request: "48213"})
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	solver := newTwoCaptcha("key-1", srv.URL)
	solver.Poll = fastPoll()

	text, err := solver.Solve(context.Background(), []byte("png"))
	require.NoError(t, err)
	assert.Equal(t, "48213", text)
	assert.Equal(t, int32(2), atomic.LoadInt32(&polls))
}

func TestTwoCaptchaRejectedSubmit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(twoCaptchaResponse{Status: 0, Request: "ERROR_WRONG_USER_KEY"})
	}))
	defer srv.Close()

	solver := newTwoCaptcha("bad", srv.URL)
	solver.Poll = fastPoll()

	_, err := solver.Solve(context.Background(), []byte("png"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ERROR_WRONG_USER_KEY")
}

func TestAntiCaptchaSolve(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "key-2", body["clientKey"])

		switch r.URL.Path {
		case "/createTask":
			_, _ = w.Write([]byte(`{"errorId":0,"taskId":77}`))
		case "/getTaskResult":
			assert.Equal(t, float64(77), body["taskId"])
			_, _ = w.Write([]byte(`{"errorId":0,"status":"ready","solution":{"text":"90210"}}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	solver := newAntiCaptcha("key-2", srv.URL)
	solver.Poll = fastPoll()

	text, err := solver.Solve(context.Background(), []byte("png"))
	require.NoError(t, err)
	assert.Equal(t, "90210", text)
}

func TestAntiCaptchaTimesOut(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/createTask" {
			_, _ = w.Write([]byte(`{"errorId":0,"taskId":1}`))
			return
		}
		_, _ = w.Write([]byte(`{"errorId":0,"status":"processing"}`))
	}))
	defer srv.Close()

	solver := newAntiCaptcha("key", srv.URL)
	solver.Poll = fastPoll()

	_, err := solver.Solve(context.Background(), []byte("png"))
	assert.EqualError(t, err, "anti-captcha timeout")
}

func TestTwoCaptchaServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "maintenance", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	solver := newTwoCaptcha("key", srv.URL)
	solver.Poll = fastPoll()

	_, err := solver.Solve(context.Background(), []byte("png"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 503")
}

func TestAntiCaptchaSendsJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`{"errorId":2,"taskId":0}`))
	}))
	defer srv.Close()

	solver := newAntiCaptcha("key", srv.URL)
	solver.Poll = fastPoll()

	_, err := solver.Solve(context.Background(), []byte("png"))
	assert.EqualError(t, err, "anti-captcha error: 2")
}

func TestPauseStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	err := pause(ctx, time.Minute)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), time.Second)

	assert.NoError(t, pause(context.Background(), time.Millisecond))
}

type stubSolver struct {
	name string
	text string
	err  error
}

func (s stubSolver) Name() string { return s.name }

func (s stubSolver) Solve(context.Context, []byte) (string, error) { return s.text, s.err }

func TestChainSolverFallsThrough(t *testing.T) {
	chain := ChainSolver{
		stubSolver{name: "a", err: errors.New("down")},
		stubSolver{name: "b"},
		stubSolver{name: "c", text: "1234"},
	}

	text, err := chain.Solve(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "1234", text)
	assert.Equal(t, "a,b,c", chain.Name())

	_, err = ChainSolver{stubSolver{name: "a", err: errors.New("down")}}.Solve(context.Background(), nil)
	assert.EqualError(t, err, "down")
}

func TestNewSolver(t *testing.T) {
	assert.Nil(t, NewSolver(&config.Config{}))

	s := NewSolver(&config.Config{TwoCaptchaKey: "x"})
	assert.Equal(t, "2captcha", s.Name())

	s = NewSolver(&config.Config{TwoCaptchaKey: "x", AntiCaptchaKey: "y"})
	assert.Equal(t, "2captcha,anti-captcha", s.Name())
}
