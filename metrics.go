package fhirmodels

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gofhir/models/pkg/issue"
)

// Metrics tracks validation counters using lock-free atomic operations.
// All methods are safe for concurrent use.
type Metrics struct {
	validationsTotal atomic.Uint64
	validationsValid atomic.Uint64

	// Timing (stored as nanoseconds)
	validationTimeTotal atomic.Uint64
	validationTimeMin   atomic.Uint64
	validationTimeMax   atomic.Uint64

	elementsChecked      atomic.Uint64
	constraintsEvaluated atomic.Uint64

	errorsTotal   atomic.Uint64
	warningsTotal atomic.Uint64
	infosTotal    atomic.Uint64

	stageTiming sync.Map // map[string]*stageMetrics
}

type stageMetrics struct {
	invocations atomic.Uint64
	totalTime   atomic.Uint64 // nanoseconds
	issuesFound atomic.Uint64
}

// NewMetrics creates a new Metrics instance.
func NewMetrics() *Metrics {
	m := &Metrics{}
	// First value becomes the minimum.
	m.validationTimeMin.Store(^uint64(0))
	return m
}

// --- Recording Methods ---

// RecordValidation records a completed validation.
func (m *Metrics) RecordValidation(duration time.Duration, valid bool) {
	m.validationsTotal.Add(1)
	if valid {
		m.validationsValid.Add(1)
	}

	ns := uint64(duration.Nanoseconds()) //nolint:gosec // durations are positive
	m.validationTimeTotal.Add(ns)

	for {
		old := m.validationTimeMin.Load()
		if ns >= old || m.validationTimeMin.CompareAndSwap(old, ns) {
			break
		}
	}
	for {
		old := m.validationTimeMax.Load()
		if ns <= old || m.validationTimeMax.CompareAndSwap(old, ns) {
			break
		}
	}
}

// RecordStats adds the element and invariant counts of one validation.
func (m *Metrics) RecordStats(s *issue.Stats) {
	if s == nil {
		return
	}
	m.elementsChecked.Add(uint64(s.ElementsChecked))           //nolint:gosec // counts are positive
	m.constraintsEvaluated.Add(uint64(s.ConstraintsEvaluated)) //nolint:gosec // counts are positive
}

// RecordIssue records an issue based on severity.
func (m *Metrics) RecordIssue(severity issue.Severity) {
	switch severity {
	case issue.SeverityError, issue.SeverityFatal:
		m.errorsTotal.Add(1)
	case issue.SeverityWarning:
		m.warningsTotal.Add(1)
	case issue.SeverityInformation:
		m.infosTotal.Add(1)
	}
}

// RecordStage records one run of a validation stage ("structure",
// "constraint").
func (m *Metrics) RecordStage(name string, duration time.Duration, issuesFound int) {
	sm := m.stage(name)
	sm.invocations.Add(1)
	sm.totalTime.Add(uint64(duration.Nanoseconds())) //nolint:gosec // durations are positive
	sm.issuesFound.Add(uint64(issuesFound))          //nolint:gosec // counts are positive
}

func (m *Metrics) stage(name string) *stageMetrics {
	if v, ok := m.stageTiming.Load(name); ok {
		return v.(*stageMetrics)
	}
	actual, _ := m.stageTiming.LoadOrStore(name, &stageMetrics{})
	return actual.(*stageMetrics)
}

// --- Query Methods ---

// ValidationsTotal returns the total number of validations performed.
func (m *Metrics) ValidationsTotal() uint64 {
	return m.validationsTotal.Load()
}

// ValidationsValid returns the number of validations without errors.
func (m *Metrics) ValidationsValid() uint64 {
	return m.validationsValid.Load()
}

// ValidationRate returns the share of valid validations (0.0 to 1.0).
func (m *Metrics) ValidationRate() float64 {
	total := m.validationsTotal.Load()
	if total == 0 {
		return 0
	}
	return float64(m.validationsValid.Load()) / float64(total)
}

// AverageValidationTime returns the average validation duration.
func (m *Metrics) AverageValidationTime() time.Duration {
	total := m.validationsTotal.Load()
	if total == 0 {
		return 0
	}
	return time.Duration(m.validationTimeTotal.Load() / total) //nolint:gosec // nanoseconds within int64 range
}

// MinValidationTime returns the minimum validation duration.
func (m *Metrics) MinValidationTime() time.Duration {
	minVal := m.validationTimeMin.Load()
	if minVal == ^uint64(0) {
		return 0
	}
	return time.Duration(minVal) //nolint:gosec // nanoseconds within int64 range
}

// MaxValidationTime returns the maximum validation duration.
func (m *Metrics) MaxValidationTime() time.Duration {
	return time.Duration(m.validationTimeMax.Load()) //nolint:gosec // nanoseconds within int64 range
}

// ElementsChecked returns the number of elements walked.
func (m *Metrics) ElementsChecked() uint64 {
	return m.elementsChecked.Load()
}

// ConstraintsEvaluated returns the number of invariants evaluated.
func (m *Metrics) ConstraintsEvaluated() uint64 {
	return m.constraintsEvaluated.Load()
}

// ErrorsTotal returns the total error issues found.
func (m *Metrics) ErrorsTotal() uint64 {
	return m.errorsTotal.Load()
}

// WarningsTotal returns the total warning issues found.
func (m *Metrics) WarningsTotal() uint64 {
	return m.warningsTotal.Load()
}

// InfosTotal returns the total informational issues found.
func (m *Metrics) InfosTotal() uint64 {
	return m.infosTotal.Load()
}

// StageStats holds the statistics of one validation stage.
type StageStats struct {
	Name        string        `json:"name" yaml:"name"`
	Invocations uint64        `json:"invocations" yaml:"invocations"`
	TotalTime   time.Duration `json:"total_time_ns" yaml:"totalTimeNs"`
	AvgTime     time.Duration `json:"avg_time_ns" yaml:"avgTimeNs"`
	IssuesFound uint64        `json:"issues_found" yaml:"issuesFound"`
}

func (sm *stageMetrics) stats(name string) StageStats {
	invocations := sm.invocations.Load()
	totalTime := sm.totalTime.Load()

	var avgTime time.Duration
	if invocations > 0 {
		avgTime = time.Duration(totalTime / invocations) //nolint:gosec // nanoseconds within int64 range
	}
	return StageStats{
		Name:        name,
		Invocations: invocations,
		TotalTime:   time.Duration(totalTime), //nolint:gosec // nanoseconds within int64 range
		AvgTime:     avgTime,
		IssuesFound: sm.issuesFound.Load(),
	}
}

// StageStats returns statistics for a specific stage.
func (m *Metrics) StageStats(name string) (StageStats, bool) {
	v, ok := m.stageTiming.Load(name)
	if !ok {
		return StageStats{Name: name}, false
	}
	return v.(*stageMetrics).stats(name), true
}

// AllStageStats returns statistics for all stages.
func (m *Metrics) AllStageStats() []StageStats {
	var stats []StageStats
	m.stageTiming.Range(func(key, value any) bool {
		stats = append(stats, value.(*stageMetrics).stats(key.(string)))
		return true
	})
	return stats
}

// --- Export Methods ---

// Snapshot represents a point-in-time snapshot of all metrics.
type Snapshot struct {
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`

	ValidationsTotal uint64  `json:"validations_total" yaml:"validationsTotal"`
	ValidationsValid uint64  `json:"validations_valid" yaml:"validationsValid"`
	ValidationRate   float64 `json:"validation_rate" yaml:"validationRate"`

	AvgValidationTimeNs uint64 `json:"avg_validation_time_ns" yaml:"avgValidationTimeNs"`
	MinValidationTimeNs uint64 `json:"min_validation_time_ns" yaml:"minValidationTimeNs"`
	MaxValidationTimeNs uint64 `json:"max_validation_time_ns" yaml:"maxValidationTimeNs"`

	ElementsChecked      uint64 `json:"elements_checked" yaml:"elementsChecked"`
	ConstraintsEvaluated uint64 `json:"constraints_evaluated" yaml:"constraintsEvaluated"`

	ErrorsTotal   uint64 `json:"errors_total" yaml:"errorsTotal"`
	WarningsTotal uint64 `json:"warnings_total" yaml:"warningsTotal"`
	InfosTotal    uint64 `json:"infos_total" yaml:"infosTotal"`

	Stages []StageStats `json:"stages,omitempty" yaml:"stages,omitempty"`
}

// Snapshot returns a point-in-time snapshot of all metrics.
func (m *Metrics) Snapshot() Snapshot {
	total := m.validationsTotal.Load()

	var avgTime uint64
	var validationRate float64
	if total > 0 {
		avgTime = m.validationTimeTotal.Load() / total
		validationRate = float64(m.validationsValid.Load()) / float64(total)
	}

	minTime := m.validationTimeMin.Load()
	if minTime == ^uint64(0) {
		minTime = 0
	}

	return Snapshot{
		Timestamp:            time.Now(),
		ValidationsTotal:     total,
		ValidationsValid:     m.validationsValid.Load(),
		ValidationRate:       validationRate,
		AvgValidationTimeNs:  avgTime,
		MinValidationTimeNs:  minTime,
		MaxValidationTimeNs:  m.validationTimeMax.Load(),
		ElementsChecked:      m.elementsChecked.Load(),
		ConstraintsEvaluated: m.constraintsEvaluated.Load(),
		ErrorsTotal:          m.errorsTotal.Load(),
		WarningsTotal:        m.warningsTotal.Load(),
		InfosTotal:           m.infosTotal.Load(),
		Stages:               m.AllStageStats(),
	}
}

// Reset clears all metrics.
func (m *Metrics) Reset() {
	m.validationsTotal.Store(0)
	m.validationsValid.Store(0)
	m.validationTimeTotal.Store(0)
	m.validationTimeMin.Store(^uint64(0))
	m.validationTimeMax.Store(0)
	m.elementsChecked.Store(0)
	m.constraintsEvaluated.Store(0)
	m.errorsTotal.Store(0)
	m.warningsTotal.Store(0)
	m.infosTotal.Store(0)

	m.stageTiming.Range(func(key, _ any) bool {
		m.stageTiming.Delete(key)
		return true
	})
}
