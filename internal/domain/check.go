package domain

import (
	"time"

	"github.com/google/uuid"
)

type CheckStatus string

const (
	CheckStatusPass    CheckStatus = "pass"
	CheckStatusFail    CheckStatus = "fail"
	CheckStatusSkipped CheckStatus = "skipped"
)

// CheckStep is one line of diagnostics inside a check. Detail must never
// carry a secret value.
type CheckStep struct {
	Name   string `json:"name"`
	Ok     bool   `json:"ok"`
	Detail string `json:"detail,omitempty"`
	// informational steps don't affect the outcome
	Info bool `json:"info,omitempty"`
}

type CheckResult struct {
	Name       string        `json:"name"`
	Critical   bool          `json:"critical"`
	Status     CheckStatus   `json:"status"`
	Steps      []CheckStep   `json:"steps"`
	Error      *string       `json:"error,omitempty"`
	DurationMs int64         `json:"durationMs"`
	Duration   time.Duration `json:"-"`
}

func (c *CheckResult) AddStep(name string, ok bool, detail string) {
	c.Steps = append(c.Steps, CheckStep{
		Name:   name,
		Ok:     ok,
		Detail: detail,
	})
}

func (c *CheckResult) AddInfo(name string, detail string) {
	c.Steps = append(c.Steps, CheckStep{
		Name:   name,
		Ok:     true,
		Detail: detail,
		Info:   true,
	})
}

// Fail marks the result failed and records err, if any
func (c *CheckResult) Fail(err error) {
	c.Status = CheckStatusFail
	if err != nil {
		msg := err.Error()
		c.Error = &msg
	}
}

func (c CheckResult) Passed() bool {
	return c.Status == CheckStatusPass
}

type SuiteReport struct {
	RunID          uuid.UUID     `json:"runID"`
	Mode           string        `json:"mode"`
	Network        string        `json:"network"`
	YieldMode      string        `json:"yieldMode"`
	Results        []CheckResult `json:"results"`
	AllPassed      bool          `json:"allPassed"`
	CriticalPassed bool          `json:"criticalPassed"`
}

// Summarize recomputes the verdicts from Results. Skipped checks count
// toward AllPassed but a skipped critical check fails CriticalPassed.
func (s *SuiteReport) Summarize() {
	s.AllPassed = true
	s.CriticalPassed = true
	for _, r := range s.Results {
		if r.Status == CheckStatusFail {
			s.AllPassed = false
		}
		if r.Critical && r.Status != CheckStatusPass {
			s.CriticalPassed = false
		}
	}
}

// SchemaStatus describes what a probe query found in the database
type SchemaStatus string

const (
	SchemaReady   SchemaStatus = "ready"
	SchemaMissing SchemaStatus = "missing"
)
