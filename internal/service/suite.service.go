package service

import (
	"bytes"
	"context"
	"fairhold/internal/domain"
	"fairhold/internal/logger"
	"fairhold/internal/report"
	"fairhold/internal/repository"
	"fairhold/internal/util"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
)

// RequiredVariables must all be set before the full suite is allowed to run
var RequiredVariables = []string{
	"CDP_API_KEY_NAME",
	"CDP_PRIVATE_KEY",
	"CDP_PROJECT_ID",
	"DATABASE_URL",
	"SUPABASE_URL",
	"SUPABASE_ANON_KEY",
}

var ansiPattern = regexp.MustCompile("\x1b\\[[0-9;]*m")

type SuiteService interface {
	ValidateEnvironment() []string
	RunAll(ctx context.Context) domain.SuiteReport
	RunOne(ctx context.Context, checkID string) (*domain.SuiteReport, error)
	// SendReport emails the rendered report when a recipient is configured.
	// It is a no-op otherwise.
	SendReport(ctx context.Context, r domain.SuiteReport) error
}

type suiteServiceHandler struct {
	Cfg             util.Config
	Checks          []Check
	EmailRepository repository.EmailRepository
}

// NewSuiteService builds the suite. emailRepository may be nil when no
// report recipient is configured.
func NewSuiteService(cfg util.Config, checks []Check, emailRepository repository.EmailRepository) SuiteService {
	return suiteServiceHandler{
		Cfg:             cfg,
		Checks:          checks,
		EmailRepository: emailRepository,
	}
}

func (h suiteServiceHandler) ValidateEnvironment() []string {
	return MissingVariables(h.Cfg, RequiredVariables)
}

func (h suiteServiceHandler) newReport() domain.SuiteReport {
	r := report.NewSuiteHeader(h.Cfg.DemoMode, h.Cfg.Network, h.Cfg.SimulateYield)
	r.RunID = uuid.New()
	r.Results = []domain.CheckResult{}
	return r
}

func (h suiteServiceHandler) RunAll(ctx context.Context) domain.SuiteReport {
	out := h.newReport()
	log := logger.FromContext(ctx).With("runID", out.RunID)

	for _, c := range h.Checks {
		result := h.runCheck(ctx, c)
		log.Infow("check finished",
			"check", c.ID(),
			"status", result.Status,
			"critical", result.Critical,
			"durationMs", result.DurationMs,
		)
		out.Results = append(out.Results, result)
	}

	out.Summarize()
	return out
}

func (h suiteServiceHandler) RunOne(ctx context.Context, checkID string) (*domain.SuiteReport, error) {
	for _, c := range h.Checks {
		if c.ID() != checkID {
			continue
		}
		out := h.newReport()
		out.Results = append(out.Results, h.runCheck(ctx, c))
		out.Summarize()
		return &out, nil
	}
	return nil, fmt.Errorf("unknown check %q", checkID)
}

// runCheck bounds a check by the configured timeout. A panicking optional
// check is recorded as skipped; a panicking critical check fails.
func (h suiteServiceHandler) runCheck(ctx context.Context, c Check) (result domain.CheckResult) {
	timeout := h.Cfg.CheckTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			logger.FromContext(ctx).Errorw("check panicked", "check", c.ID(), "panic", r)
			result = domain.CheckResult{
				Name:     c.Name(),
				Critical: c.Critical(),
				Steps:    []domain.CheckStep{},
			}
			err := fmt.Errorf("check panicked: %v", r)
			if c.Critical() {
				result.Fail(err)
			} else {
				result.Status = domain.CheckStatusSkipped
				result.Error = util.StringPointer(err.Error())
			}
		}
		result.Duration = time.Since(start)
		result.DurationMs = result.Duration.Milliseconds()
	}()

	return c.Run(ctx)
}

func verdict(r domain.SuiteReport) string {
	switch {
	case r.AllPassed && r.CriticalPassed:
		return "PASS"
	case r.CriticalPassed:
		return "PASS (optional failures)"
	}
	return "FAIL"
}

func (h suiteServiceHandler) SendReport(ctx context.Context, r domain.SuiteReport) error {
	to := h.Cfg.Report.EmailTo
	if to == "" {
		return nil
	}
	if h.EmailRepository == nil {
		return fmt.Errorf("REPORT_EMAIL_TO is set but no email repository is configured")
	}

	buf := &bytes.Buffer{}
	report.RenderSuite(buf, r)
	body := ansiPattern.ReplaceAllString(buf.String(), "")

	subject := fmt.Sprintf("Fairhold checks: %s (%s)", verdict(r), r.RunID)
	if err := h.EmailRepository.SendEmail(ctx, to, subject, body); err != nil {
		return fmt.Errorf("failed to send report: %w", err)
	}
	return nil
}
