package fhirmodels

import (
	"sync"
	"testing"
	"time"

	"github.com/gofhir/models/pkg/issue"
)

func TestMetrics_Basic(t *testing.T) {
	m := NewMetrics()

	if m.ValidationsTotal() != 0 {
		t.Errorf("ValidationsTotal() = %d; want 0", m.ValidationsTotal())
	}

	m.RecordValidation(100*time.Millisecond, true)

	if m.ValidationsTotal() != 1 {
		t.Errorf("ValidationsTotal() = %d; want 1", m.ValidationsTotal())
	}
	if m.ValidationsValid() != 1 {
		t.Errorf("ValidationsValid() = %d; want 1", m.ValidationsValid())
	}
}

func TestMetrics_ValidationRate(t *testing.T) {
	m := NewMetrics()

	if rate := m.ValidationRate(); rate != 0 {
		t.Errorf("ValidationRate() = %f; want 0", rate)
	}

	m.RecordValidation(100*time.Millisecond, true)
	m.RecordValidation(100*time.Millisecond, true)
	m.RecordValidation(100*time.Millisecond, false)

	rate := m.ValidationRate()
	expected := 2.0 / 3.0
	if rate < expected-0.01 || rate > expected+0.01 {
		t.Errorf("ValidationRate() = %f; want ~%f", rate, expected)
	}
}

func TestMetrics_ValidationTime(t *testing.T) {
	m := NewMetrics()

	if avg := m.AverageValidationTime(); avg != 0 {
		t.Errorf("AverageValidationTime() = %v; want 0", avg)
	}
	if minTime := m.MinValidationTime(); minTime != 0 {
		t.Errorf("MinValidationTime() = %v; want 0", minTime)
	}

	m.RecordValidation(100*time.Millisecond, true)
	m.RecordValidation(200*time.Millisecond, true)
	m.RecordValidation(300*time.Millisecond, true)

	if avg := m.AverageValidationTime(); avg != 200*time.Millisecond {
		t.Errorf("AverageValidationTime() = %v; want 200ms", avg)
	}
	if minTime := m.MinValidationTime(); minTime != 100*time.Millisecond {
		t.Errorf("MinValidationTime() = %v; want 100ms", minTime)
	}
	if maxTime := m.MaxValidationTime(); maxTime != 300*time.Millisecond {
		t.Errorf("MaxValidationTime() = %v; want 300ms", maxTime)
	}
}

func TestMetrics_RecordIssue(t *testing.T) {
	m := NewMetrics()

	m.RecordIssue(issue.SeverityFatal)
	m.RecordIssue(issue.SeverityError)
	m.RecordIssue(issue.SeverityWarning)
	m.RecordIssue(issue.SeverityInformation)

	if m.ErrorsTotal() != 2 {
		t.Errorf("ErrorsTotal() = %d; want 2", m.ErrorsTotal())
	}
	if m.WarningsTotal() != 1 {
		t.Errorf("WarningsTotal() = %d; want 1", m.WarningsTotal())
	}
	if m.InfosTotal() != 1 {
		t.Errorf("InfosTotal() = %d; want 1", m.InfosTotal())
	}
}

func TestMetrics_Stage(t *testing.T) {
	m := NewMetrics()

	m.RecordStage(StageConstraint, 10*time.Millisecond, 2)
	m.RecordStage(StageConstraint, 30*time.Millisecond, 1)

	stats, ok := m.StageStats(StageConstraint)
	if !ok {
		t.Fatal("StageStats() found nothing")
	}
	if stats.Invocations != 2 || stats.IssuesFound != 3 || stats.AvgTime != 20*time.Millisecond {
		t.Errorf("StageStats() = %+v", stats)
	}
	if _, ok := m.StageStats("missing"); ok {
		t.Error("unknown stage reported")
	}
	if got := len(m.AllStageStats()); got != 1 {
		t.Errorf("AllStageStats() len = %d; want 1", got)
	}
}

func TestMetrics_SnapshotAndReset(t *testing.T) {
	m := NewMetrics()
	m.RecordValidation(time.Millisecond, false)
	m.RecordStats(&issue.Stats{ElementsChecked: 12, ConstraintsEvaluated: 5})
	m.RecordIssue(issue.SeverityError)

	s := m.Snapshot()
	if s.ValidationsTotal != 1 || s.ElementsChecked != 12 || s.ConstraintsEvaluated != 5 || s.ErrorsTotal != 1 {
		t.Errorf("Snapshot() = %+v", s)
	}

	m.Reset()
	s = m.Snapshot()
	if s.ValidationsTotal != 0 || s.ElementsChecked != 0 || s.MinValidationTimeNs != 0 || len(s.Stages) != 0 {
		t.Errorf("Snapshot() after Reset = %+v", s)
	}
}

func TestMetrics_Concurrent(t *testing.T) {
	m := NewMetrics()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.RecordValidation(time.Duration(i+1)*time.Microsecond, i%2 == 0)
			m.RecordStage(StageStructure, time.Microsecond, 0)
		}()
	}
	wg.Wait()

	if m.ValidationsTotal() != 50 || m.ValidationsValid() != 25 {
		t.Errorf("totals = %d/%d", m.ValidationsTotal(), m.ValidationsValid())
	}
	if m.MinValidationTime() != time.Microsecond || m.MaxValidationTime() != 50*time.Microsecond {
		t.Errorf("min/max = %v/%v", m.MinValidationTime(), m.MaxValidationTime())
	}
}
