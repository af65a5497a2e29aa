package scraper

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"

	"github.com/JustJay7/court-case-sync/internal/config"
)

const (
	captchaImageSelector   = `img[src*="captcha"], img[src*="secure"], img[alt*="보안"]`
	captchaInputSelector   = `input[name="secureNo"]`
	captchaRefreshSelector = `a[onclick*="refresh"], button[onclick*="refresh"]`
)

// ErrNoSolver is returned when the portal shows a captcha and no solver
// service is configured.
var ErrNoSolver = errors.New("captcha shown but no solver configured")

// Solver turns a captcha image into its text.
type Solver interface {
	Name() string
	Solve(ctx context.Context, image []byte) (string, error)
}

// NewSolver returns the solvers configured by API key, tried in order
// 2captcha then anti-captcha. It returns nil when neither key is set.
func NewSolver(cfg *config.Config) Solver {
	var chain ChainSolver
	if cfg.TwoCaptchaKey != "" {
		chain = append(chain, NewTwoCaptcha(cfg.TwoCaptchaKey))
	}
	if cfg.AntiCaptchaKey != "" {
		chain = append(chain, NewAntiCaptcha(cfg.AntiCaptchaKey))
	}
	switch len(chain) {
	case 0:
		return nil
	case 1:
		return chain[0]
	}
	return chain
}

// ChainSolver tries each solver until one returns text.
type ChainSolver []Solver

func (c ChainSolver) Name() string {
	names := make([]string, len(c))
	for i, s := range c {
		names[i] = s.Name()
	}
	return strings.Join(names, ",")
}

func (c ChainSolver) Solve(ctx context.Context, image []byte) (string, error) {
	var errs []error
	for _, s := range c {
		text, err := s.Solve(ctx, image)
		if err == nil && text != "" {
			return text, nil
		}
		if err == nil {
			err = fmt.Errorf("%s: empty answer", s.Name())
		}
		errs = append(errs, err)
		if ctx.Err() != nil {
			break
		}
	}
	return "", errors.Join(errs...)
}

// PollSettings controls how often a solver asks for its answer.
type PollSettings struct {
	Interval time.Duration
	MaxPolls int
}

func defaultPolling() PollSettings {
	return PollSettings{Interval: 3 * time.Second, MaxPolls: 30}
}

func (p PollSettings) wait(ctx context.Context) error {
	t := time.NewTimer(p.Interval)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// TwoCaptcha solves image captchas through the 2captcha in.php/res.php API.
type TwoCaptcha struct {
	Key    string
	Poll   PollSettings
	client *resty.Client
}

type twoCaptchaResponse struct {
	Status  int    `json:"status"`
	Request string `json:"request"`
}

func NewTwoCaptcha(key string) *TwoCaptcha {
	return newTwoCaptcha(key, "https://2captcha.com")
}

func newTwoCaptcha(key, baseURL string) *TwoCaptcha {
	return &TwoCaptcha{
		Key:    key,
		Poll:   defaultPolling(),
		client: newSolverClient(baseURL),
	}
}

func (t *TwoCaptcha) Name() string { return "2captcha" }

func (t *TwoCaptcha) Solve(ctx context.Context, image []byte) (string, error) {
	var submitted twoCaptchaResponse
	resp, err := jsonRequest(ctx, t.client).
		SetFormData(map[string]string{
			"key":    t.Key,
			"method": "base64",
			"body":   base64.StdEncoding.EncodeToString(image),
			"json":   "1",
		}).
		SetResult(&submitted).
		Post("/in.php")
	if err := checkResponse(resp, err); err != nil {
		return "", fmt.Errorf("2captcha submit: %w", err)
	}
	if submitted.Status != 1 {
		return "", fmt.Errorf("2captcha submit rejected: %s", submitted.Request)
	}

	for i := 0; i < t.Poll.MaxPolls; i++ {
		if err := t.Poll.wait(ctx); err != nil {
			return "", err
		}
		var result twoCaptchaResponse
		resp, err := jsonRequest(ctx, t.client).
			SetQueryParams(map[string]string{
				"key":    t.Key,
				"action": "get",
				"id":     submitted.Request,
				"json":   "1",
			}).
			SetResult(&result).
			Get("/res.php")
		if checkResponse(resp, err) != nil {
			continue
		}
		if result.Status == 1 {
			return result.Request, nil
		}
		if result.Request != "CAPCHA_NOT_READY" {
			return "", fmt.Errorf("2captcha error: %s", result.Request)
		}
	}
	return "", fmt.Errorf("2captcha timeout")
}

// AntiCaptcha solves image captchas through the anti-captcha task API.
type AntiCaptcha struct {
	Key    string
	Poll   PollSettings
	client *resty.Client
}

func NewAntiCaptcha(key string) *AntiCaptcha {
	return newAntiCaptcha(key, "https://api.anti-captcha.com")
}

func newAntiCaptcha(key, baseURL string) *AntiCaptcha {
	return &AntiCaptcha{
		Key:    key,
		Poll:   defaultPolling(),
		client: newSolverClient(baseURL).SetHeader("Content-Type", "application/json"),
	}
}

func (a *AntiCaptcha) Name() string { return "anti-captcha" }

func (a *AntiCaptcha) Solve(ctx context.Context, image []byte) (string, error) {
	type task struct {
		Type string `json:"type"`
		Body string `json:"body"`
	}
	createReq := struct {
		ClientKey string `json:"clientKey"`
		Task      task   `json:"task"`
	}{
		ClientKey: a.Key,
		Task:      task{Type: "ImageToTextTask", Body: base64.StdEncoding.EncodeToString(image)},
	}

	var created struct {
		ErrorID int `json:"errorId"`
		TaskID  int `json:"taskId"`
	}
	if err := a.post(ctx, "/createTask", createReq, &created); err != nil {
		return "", fmt.Errorf("anti-captcha create: %w", err)
	}
	if created.ErrorID != 0 {
		return "", fmt.Errorf("anti-captcha error: %d", created.ErrorID)
	}

	for i := 0; i < a.Poll.MaxPolls; i++ {
		if err := a.Poll.wait(ctx); err != nil {
			return "", err
		}
		var result struct {
			ErrorID  int    `json:"errorId"`
			Status   string `json:"status"`
			Solution struct {
				Text string `json:"text"`
			} `json:"solution"`
		}
		getReq := map[string]interface{}{"clientKey": a.Key, "taskId": created.TaskID}
		if err := a.post(ctx, "/getTaskResult", getReq, &result); err != nil {
			continue
		}
		if result.ErrorID != 0 {
			return "", fmt.Errorf("anti-captcha error: %d", result.ErrorID)
		}
		if result.Status == "ready" {
			return result.Solution.Text, nil
		}
	}
	return "", fmt.Errorf("anti-captcha timeout")
}

func (a *AntiCaptcha) post(ctx context.Context, path string, body, out interface{}) error {
	resp, err := jsonRequest(ctx, a.client).
		SetBody(body).
		SetResult(out).
		Post(path)
	return checkResponse(resp, err)
}

func newSolverClient(baseURL string) *resty.Client {
	return resty.New().
		SetBaseURL(baseURL).
		SetTimeout(15 * time.Second).
		SetHeader("Accept", "application/json")
}

// Both services answer JSON, not always labelled as such.
func jsonRequest(ctx context.Context, c *resty.Client) *resty.Request {
	return c.R().SetContext(ctx).ForceContentType("application/json")
}

func checkResponse(resp *resty.Response, err error) error {
	if err != nil {
		return err
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode())
	}
	return nil
}

// solveCaptcha fills the security code on the search form. A form without a
// captcha image is left alone.
func (s *Scraper) solveCaptcha(ctx context.Context, frame *rod.Page) error {
	img, err := frame.Timeout(3 * time.Second).Element(captchaImageSelector)
	if err != nil {
		s.logger.Debug("No captcha on search form")
		return nil
	}
	if s.solver == nil {
		return ErrNoSolver
	}

	image, err := img.Screenshot(proto.PageCaptureScreenshotFormatPng, 0)
	if err != nil {
		return fmt.Errorf("failed to capture captcha: %w", err)
	}

	text, err := s.solver.Solve(ctx, image)
	if err != nil {
		return fmt.Errorf("captcha solver %s: %w", s.solver.Name(), err)
	}
	s.logger.Debug("Captcha solved", "solver", s.solver.Name(), "length", len(text))

	input, err := frame.Element(captchaInputSelector)
	if err != nil {
		return fmt.Errorf("captcha input not found: %w", err)
	}
	if err := input.SelectAllText(); err == nil {
		_ = input.Input("")
	}
	return input.Input(text)
}

// captchaRejected reports whether the portal complained about the security
// code after a submit.
func captchaRejected(text string) bool {
	return strings.Contains(text, "보안문자") || strings.Contains(text, "일치하지")
}

func (s *Scraper) refreshCaptcha(ctx context.Context, frame *rod.Page) {
	btn, err := frame.Timeout(2 * time.Second).Element(captchaRefreshSelector)
	if err != nil {
		return
	}
	if err := btn.Click(proto.InputMouseButtonLeft, 1); err != nil {
		s.logger.Debug("Captcha refresh failed", "error", err)
		return
	}
	_ = pause(ctx, time.Second)
}
