package biz

import (
	"context"
	"testing"
	"time"

	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/startup_radar/pkg/engine"
	dm "github.com/iWorld-y/startup_radar/pkg/model"
)

// mockRunner 模拟分析引擎
type mockRunner struct {
	run        *dm.AnalysisRun
	gotDomains []string
}

func (m *mockRunner) Run(ctx context.Context, opts engine.RunOptions) (*dm.AnalysisRun, error) {
	m.gotDomains = opts.Domains
	return m.run, nil
}

// mockRunRepo 模拟结果集仓库
type mockRunRepo struct {
	saved *dm.AnalysisRun
}

func (m *mockRunRepo) SaveRun(ctx context.Context, run *dm.AnalysisRun) error {
	m.saved = run
	return nil
}

func (m *mockRunRepo) LatestRun(ctx context.Context) (*dm.AnalysisRun, error) {
	return m.saved, nil
}

func (m *mockRunRepo) GetReport(ctx context.Context, domainName string) (*dm.TrendReport, error) {
	for i := range m.saved.Reports {
		if m.saved.Reports[i].DomainName == domainName {
			return &m.saved.Reports[i], nil
		}
	}
	return nil, nil
}

func sampleRun() *dm.AnalysisRun {
	return &dm.AnalysisRun{
		GeneratedAt: time.Now(),
		Reports: []dm.TrendReport{
			{DomainName: "AI Hardware", Narrative: "hot", MarketPotential: 8, InnovationScore: 7, InvestmentAttractiveness: 9},
		},
	}
}

func TestAnalyzeSavesRun(t *testing.T) {
	runner := &mockRunner{run: sampleRun()}
	repo := &mockRunRepo{}
	uc := NewAnalysisUseCase(runner, repo, log.DefaultLogger)

	run, err := uc.Analyze(context.Background(), []string{"AI Hardware"})
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if len(runner.gotDomains) != 1 || runner.gotDomains[0] != "AI Hardware" {
		t.Errorf("runner domains = %v", runner.gotDomains)
	}
	if repo.saved != run {
		t.Error("Analyze() did not save the run")
	}
}

func TestChartsFromLatestRun(t *testing.T) {
	runner := &mockRunner{run: sampleRun()}
	repo := &mockRunRepo{}
	uc := NewAnalysisUseCase(runner, repo, log.DefaultLogger)

	if _, err := uc.Analyze(context.Background(), []string{"AI Hardware"}); err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	charts, err := uc.Charts(context.Background())
	if err != nil {
		t.Fatalf("Charts() error = %v", err)
	}
	if len(charts.Radar) != 1 || charts.Radar[0].Name != "AI Hardware" {
		t.Errorf("Radar = %+v", charts.Radar)
	}
}
