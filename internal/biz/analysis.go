package biz

import (
	"context"

	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/startup_radar/pkg/assembler"
	"github.com/iWorld-y/startup_radar/pkg/engine"
	dm "github.com/iWorld-y/startup_radar/pkg/model"
)

// Runner 抽象趋势分析引擎，便于在测试中替换
type Runner interface {
	Run(ctx context.Context, opts engine.RunOptions) (*dm.AnalysisRun, error)
}

// RunRepo 当前会话的结果集仓库。结果只在内存中保留，每次分析整体替换
type RunRepo interface {
	// SaveRun 替换当前结果集
	SaveRun(ctx context.Context, run *dm.AnalysisRun) error
	// LatestRun 获取当前结果集
	LatestRun(ctx context.Context) (*dm.AnalysisRun, error)
	// GetReport 按领域名获取单个报告
	GetReport(ctx context.Context, domainName string) (*dm.TrendReport, error)
}

// AnalysisUseCase 趋势分析业务逻辑
type AnalysisUseCase struct {
	runner Runner
	repo   RunRepo
	log    *log.Helper
}

// NewAnalysisUseCase 创建趋势分析业务逻辑实例
func NewAnalysisUseCase(runner Runner, repo RunRepo, logger log.Logger) *AnalysisUseCase {
	return &AnalysisUseCase{runner: runner, repo: repo, log: log.NewHelper(logger)}
}

// Analyze 对给定领域执行一次完整分析并替换会话内的结果集
func (uc *AnalysisUseCase) Analyze(ctx context.Context, domains []string) (*dm.AnalysisRun, error) {
	uc.log.Infof("analyze requested for %d domains", len(domains))

	run, err := uc.runner.Run(ctx, engine.RunOptions{Domains: domains})
	if err != nil {
		return nil, err
	}

	if err := uc.repo.SaveRun(ctx, run); err != nil {
		return nil, err
	}
	return run, nil
}

// Latest 返回当前会话的结果集
func (uc *AnalysisUseCase) Latest(ctx context.Context) (*dm.AnalysisRun, error) {
	return uc.repo.LatestRun(ctx)
}

// Report 按领域名返回单个报告
func (uc *AnalysisUseCase) Report(ctx context.Context, domainName string) (*dm.TrendReport, error) {
	return uc.repo.GetReport(ctx, domainName)
}

// Charts 返回当前结果集的图表数据
func (uc *AnalysisUseCase) Charts(ctx context.Context) (*dm.ChartData, error) {
	run, err := uc.repo.LatestRun(ctx)
	if err != nil {
		return nil, err
	}
	return assembler.BuildChartData(run), nil
}
