package assembler

import (
	"fmt"
	"testing"

	"github.com/iWorld-y/startup_radar/pkg/collector"
	dm "github.com/iWorld-y/startup_radar/pkg/model"
	"github.com/iWorld-y/startup_radar/pkg/synthesizer"
)

func report(domain string, scores ...int) *dm.TrendReport {
	return &dm.TrendReport{
		DomainName:               domain,
		Narrative:                "narrative for " + domain,
		MarketPotential:          scores[0],
		InnovationScore:          scores[1],
		InvestmentAttractiveness: scores[2],
	}
}

func TestResultPreservesOrder(t *testing.T) {
	a := New()
	a.AddReport(report("AI Hardware", 8, 7, 9))
	a.AddReport(report("Synthetic Biology", 6, 8, 5))

	run := a.Result()
	if len(run.Reports) != 2 || len(run.Failures) != 0 {
		t.Fatalf("run = %d reports, %d failures", len(run.Reports), len(run.Failures))
	}
	if run.Reports[0].DomainName != "AI Hardware" || run.Reports[1].DomainName != "Synthetic Biology" {
		t.Errorf("report order = %q, %q", run.Reports[0].DomainName, run.Reports[1].DomainName)
	}
	if run.GeneratedAt.IsZero() {
		t.Error("GeneratedAt not set")
	}
}

func TestFailureClassification(t *testing.T) {
	cases := []struct {
		err    error
		reason string
	}{
		{nil, ReasonNoResults},
		{fmt.Errorf("%w: dns failure", collector.ErrSearchUnavailable), ReasonSearchUnavailable},
		{fmt.Errorf("%w: 429", synthesizer.ErrModelUnavailable), ReasonModelUnavailable},
		{fmt.Errorf("%w: bad json", synthesizer.ErrMalformedResponse), ReasonMalformed},
		{fmt.Errorf("unexpected"), ReasonUnknown},
	}

	for _, tc := range cases {
		a := New()
		a.AddFailure("EdTech", tc.err)
		run := a.Result()
		if len(run.Failures) != 1 || run.Failures[0].Reason != tc.reason {
			t.Errorf("classify(%v) = %+v, want reason %s", tc.err, run.Failures, tc.reason)
		}
	}
}

func TestMixedOutcome(t *testing.T) {
	a := New()
	a.AddReport(report("AI Hardware", 8, 7, 9))
	a.AddFailure("Synthetic Biology", fmt.Errorf("%w: bad json", synthesizer.ErrMalformedResponse))

	run := a.Result()
	if len(run.Reports) != 1 || run.Reports[0].DomainName != "AI Hardware" {
		t.Errorf("reports = %v", run.Reports)
	}
	failed := run.FailedDomains()
	if len(failed) != 1 || failed[0] != "Synthetic Biology" {
		t.Errorf("FailedDomains() = %v, want [Synthetic Biology]", failed)
	}
}

func TestBuildChartData(t *testing.T) {
	a := New()
	a.AddReport(report("AI Hardware", 8, 7, 9))
	a.AddReport(report("FinTech", 5, 6, 4))
	run := a.Result()

	data := BuildChartData(run)
	if len(data.Axes) != 3 {
		t.Fatalf("Axes = %v", data.Axes)
	}
	if len(data.Radar) != 2 {
		t.Fatalf("Radar series = %d, want one per domain", len(data.Radar))
	}
	if got := data.Radar[0].Values; got[0] != 8 || got[1] != 7 || got[2] != 9 {
		t.Errorf("Radar[0].Values = %v", got)
	}
	if len(data.Bars) != 3 {
		t.Fatalf("Bar series = %d, want one per metric", len(data.Bars))
	}
	if got := data.Bars[0].Values; len(got) != 2 || got[0] != 8 || got[1] != 5 {
		t.Errorf("Bars[0].Values = %v", got)
	}
	if len(data.Domains) != 2 || data.Domains[1] != "FinTech" {
		t.Errorf("Domains = %v", data.Domains)
	}
}

func TestBuildChartDataEmptyRun(t *testing.T) {
	data := BuildChartData(New().Result())
	if len(data.Radar) != 0 || len(data.Domains) != 0 {
		t.Errorf("empty run chart data = %+v", data)
	}
	if len(data.Bars) != 3 {
		t.Errorf("Bars = %d, want 3 empty metric series", len(data.Bars))
	}
}
