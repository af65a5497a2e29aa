// Package scraper reads case snapshots off the court portal with a headless
// browser.
package scraper

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/JustJay7/court-case-sync/internal/config"
	"github.com/JustJay7/court-case-sync/internal/snapshot"
	"github.com/JustJay7/court-case-sync/pkg/logger"
)

const (
	maxCaptchaAttempts = 3

	courtSelector  = `select[name="court_name"]`
	yearSelector   = `select[name="caseNumberYear"]`
	typeSelector   = `select[name="caseNumberType"]`
	serialSelector = `input[name="caseNumberNumber"]`
	partySelector  = `input[name="userName"]`
	searchSelector = `button[onclick*="search"], input[type="submit"]`
)

var (
	// ErrInvalidCaseNumber means the case number cannot be split into
	// year, type code and serial.
	ErrInvalidCaseNumber = errors.New("invalid case number")
	// ErrCaseNotFound means the portal answered that no such case exists.
	ErrCaseNotFound = errors.New("case not found on portal")
	// ErrCaptchaExhausted means every captcha attempt was rejected.
	ErrCaptchaExhausted = errors.New("captcha rejected on every attempt")

	caseNumberParts = regexp.MustCompile(`^(\d{4})([가-힣]+)(\d+)$`)
	notFoundText    = regexp.MustCompile(`(검색 ?결과가 없|사건이 없|존재하지 않|조회된 (사건|내역)이 없)`)
)

// SplitCaseNumber splits "2024가단12345" into year, type code and serial.
func SplitCaseNumber(caseNumber string) (year, code, serial string, err error) {
	compact := strings.Join(strings.Fields(caseNumber), "")
	m := caseNumberParts.FindStringSubmatch(compact)
	if m == nil {
		return "", "", "", fmt.Errorf("%w: %q", ErrInvalidCaseNumber, caseNumber)
	}
	return m[1], m[2], m[3], nil
}

// Scraper drives a shared browser. Each fetch borrows one page from a pool
// of at most cfg.ScraperSessions pages.
type Scraper struct {
	cfg     *config.Config
	browser *rod.Browser
	solver  Solver
	logger  *logger.Logger

	mu    sync.Mutex
	idle  []*rod.Page
	pages []*rod.Page
	slots chan struct{}
}

// NewScraper launches the browser.
func NewScraper(cfg *config.Config, log *logger.Logger) (*Scraper, error) {
	l := launcher.New().
		Headless(cfg.HeadlessMode).
		Set("user-agent", cfg.UserAgent).
		Set("disable-blink-features", "AutomationControlled").
		Delete("enable-automation")

	if cfg.BrowserPath != "" {
		l = l.Bin(cfg.BrowserPath)
	}
	if cfg.LogLevel == "debug" {
		l = l.Devtools(true)
	}

	browserURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	browser := rod.New().ControlURL(browserURL)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to browser: %w", err)
	}

	sessions := cfg.ScraperSessions
	if sessions < 1 {
		sessions = 1
	}
	return &Scraper{
		cfg:     cfg,
		browser: browser,
		solver:  NewSolver(cfg),
		logger:  log.With("component", "scraper"),
		slots:   make(chan struct{}, sessions),
	}, nil
}

// Close closes every pooled page and the browser.
func (s *Scraper) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, page := range s.pages {
		_ = page.Close()
	}
	s.pages, s.idle = nil, nil
	return s.browser.Close()
}

func (s *Scraper) acquire(ctx context.Context) (*rod.Page, error) {
	select {
	case s.slots <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if n := len(s.idle); n > 0 {
		page := s.idle[n-1]
		s.idle = s.idle[:n-1]
		return page, nil
	}

	page, err := s.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		<-s.slots
		return nil, err
	}
	if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{Width: 1920, Height: 1080, DeviceScaleFactor: 1}); err != nil {
		s.logger.Debug("Failed to set viewport", "error", err)
	}
	if _, err := page.SetExtraHeaders([]string{"Accept-Language", "ko-KR,ko;q=0.9"}); err != nil {
		s.logger.Debug("Failed to set headers", "error", err)
	}
	s.pages = append(s.pages, page)
	return page, nil
}

func (s *Scraper) release(page *rod.Page) {
	s.mu.Lock()
	s.idle = append(s.idle, page)
	s.mu.Unlock()
	<-s.slots
}

// FetchSnapshot looks the case up on the portal and maps the result page
// onto a snapshot. Errors that retrying cannot fix are wrapped with
// backoff.Permanent.
func (s *Scraper) FetchSnapshot(ctx context.Context, ref snapshot.CaseRef) (*snapshot.CaseSnapshot, error) {
	year, code, serial, err := SplitCaseNumber(ref.CaseNumber)
	if err != nil {
		return nil, backoff.Permanent(err)
	}

	page, err := s.acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open page: %w", err)
	}
	defer s.release(page)

	fetchCtx, cancel := context.WithTimeout(ctx, s.cfg.ScraperTimeout)
	defer cancel()
	page = page.Context(fetchCtx)

	log := s.logger.With("case_id", ref.ID, "case_number", ref.CaseNumber)
	dialogs := watchDialogs(page)

	log.Debug("Navigating to portal", "url", s.cfg.PortalURL)
	if err := page.Navigate(s.cfg.PortalURL); err != nil {
		return nil, fmt.Errorf("failed to navigate: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		log.Warn("Page load timeout", "error", err)
	}

	frame, err := s.searchFrame(page)
	if err != nil {
		return nil, err
	}

	if err := s.fillSearchForm(frame, ref, year, code, serial); err != nil {
		return nil, err
	}

	if err := s.submit(fetchCtx, frame, dialogs, log); err != nil {
		return nil, err
	}

	tables, err := readTables(frame)
	if err != nil {
		return nil, fmt.Errorf("failed to read result tables: %w", err)
	}

	snap, warnings := MapTables(tables)
	for _, w := range warnings {
		log.Warn("Result page shape", "warning", w)
	}
	if snap.IsEmpty() {
		return nil, fmt.Errorf("result page for %s had no readable tables", ref.CaseNumber)
	}
	log.Info("Snapshot fetched",
		"hearings", len(snap.Hearings),
		"progress", len(snap.Progress),
		"parties", len(snap.Parties),
	)
	return &snap, nil
}

// searchFrame returns the portal's embedded search frame, or the page itself
// when the form is not framed.
func (s *Scraper) searchFrame(page *rod.Page) (*rod.Page, error) {
	frames, err := page.Elements("iframe")
	if err != nil {
		return nil, fmt.Errorf("failed to list frames: %w", err)
	}
	for _, el := range frames {
		src, err := el.Attribute("src")
		if err != nil || src == nil || !strings.Contains(*src, "ssgo.scourt.go.kr") {
			continue
		}
		frame, err := el.Frame()
		if err != nil {
			return nil, fmt.Errorf("failed to enter search frame: %w", err)
		}
		if err := frame.WaitLoad(); err != nil {
			s.logger.Debug("Search frame load timeout", "error", err)
		}
		return frame, nil
	}
	return page, nil
}

func (s *Scraper) fillSearchForm(frame *rod.Page, ref snapshot.CaseRef, year, code, serial string) error {
	selects := []struct {
		selector string
		value    string
	}{
		{courtSelector, ref.CourtName},
		{yearSelector, year},
		{typeSelector, code},
	}
	for _, sel := range selects {
		if sel.value == "" {
			continue
		}
		el, err := frame.Element(sel.selector)
		if err != nil {
			return fmt.Errorf("search form field %s not found: %w", sel.selector, err)
		}
		if err := el.Select([]string{sel.value}, true, rod.SelectorTypeText); err != nil {
			return backoff.Permanent(fmt.Errorf("portal has no option %q for %s: %w", sel.value, sel.selector, err))
		}
	}

	inputs := []struct {
		selector string
		value    string
	}{
		{serialSelector, serial},
		{partySelector, ref.PartyName},
	}
	for _, in := range inputs {
		if in.value == "" {
			continue
		}
		el, err := frame.Element(in.selector)
		if err != nil {
			return fmt.Errorf("search form field %s not found: %w", in.selector, err)
		}
		if err := el.Input(in.value); err != nil {
			return fmt.Errorf("failed to fill %s: %w", in.selector, err)
		}
	}
	return nil
}

// submit solves the captcha and submits the form, refreshing the captcha
// when the portal rejects the answer.
func (s *Scraper) submit(ctx context.Context, frame *rod.Page, dialogs *dialogWatcher, log *logger.Logger) error {
	for attempt := 1; attempt <= maxCaptchaAttempts; attempt++ {
		if err := s.solveCaptcha(ctx, frame); err != nil {
			if errors.Is(err, ErrNoSolver) {
				return backoff.Permanent(err)
			}
			return err
		}

		btn, err := frame.Element(searchSelector)
		if err != nil {
			return fmt.Errorf("search button not found: %w", err)
		}
		if err := btn.Click(proto.InputMouseButtonLeft, 1); err != nil {
			return fmt.Errorf("failed to submit search: %w", err)
		}
		if err := frame.WaitLoad(); err != nil {
			log.Debug("Result load timeout", "error", err)
		}
		if err := pause(ctx, 2*time.Second); err != nil {
			return err
		}

		msg := dialogs.take() + " " + bodyText(frame)
		switch {
		case captchaRejected(msg):
			log.Warn("Captcha rejected", "attempt", attempt)
			s.refreshCaptcha(ctx, frame)
			continue
		case notFoundText.MatchString(msg):
			return backoff.Permanent(ErrCaseNotFound)
		}
		return nil
	}
	return ErrCaptchaExhausted
}

// pause waits for d or until ctx is done.
func pause(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func bodyText(frame *rod.Page) string {
	body, err := frame.Element("body")
	if err != nil {
		return ""
	}
	text, _ := body.Text()
	return text
}

// dialogWatcher accepts every JavaScript alert the portal raises and keeps
// the last message for the submit loop.
type dialogWatcher struct {
	mu   sync.Mutex
	last string
}

func watchDialogs(page *rod.Page) *dialogWatcher {
	w := &dialogWatcher{}
	go page.EachEvent(func(e *proto.PageJavascriptDialogOpening) {
		w.mu.Lock()
		w.last = e.Message
		w.mu.Unlock()
		_ = proto.PageHandleJavaScriptDialog{Accept: true}.Call(page)
	})()
	return w
}

func (w *dialogWatcher) take() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	msg := w.last
	w.last = ""
	return msg
}

const extractTablesJS = `() => {
	const heading = (table) => {
		const cap = table.querySelector('caption');
		if (cap && cap.innerText.trim()) return cap.innerText;
		for (let el = table; el; el = el.parentElement) {
			for (let prev = el.previousElementSibling; prev; prev = prev.previousElementSibling) {
				if (/^H[1-6]$/.test(prev.tagName) || prev.classList.contains('tit')) return prev.innerText;
				const h = prev.querySelector('h1,h2,h3,h4,h5,h6,.tit');
				if (h) return h.innerText;
			}
		}
		return '';
	};
	return Array.from(document.querySelectorAll('table')).map((t) => {
		const head = t.querySelector('thead tr');
		const headers = head ? Array.from(head.cells).map((c) => c.innerText) : [];
		const rows = Array.from(t.rows).filter((r) => r.parentElement.tagName !== 'THEAD');
		return {
			title: heading(t),
			headers: headers,
			rows: rows.map((r) => Array.from(r.cells).map((c) => c.innerText)),
		};
	});
}`

func readTables(frame *rod.Page) ([]Table, error) {
	res, err := frame.Eval(extractTablesJS)
	if err != nil {
		return nil, err
	}
	var tables []Table
	if err := res.Value.Unmarshal(&tables); err != nil {
		return nil, err
	}
	return tables, nil
}
