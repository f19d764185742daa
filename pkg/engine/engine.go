package engine

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"golang.org/x/time/rate"

	"github.com/iWorld-y/startup_radar/pkg/assembler"
	"github.com/iWorld-y/startup_radar/pkg/collector"
	"github.com/iWorld-y/startup_radar/pkg/config"
	"github.com/iWorld-y/startup_radar/pkg/logger"
	dm "github.com/iWorld-y/startup_radar/pkg/model"
	"github.com/iWorld-y/startup_radar/pkg/search/factory"
	"github.com/iWorld-y/startup_radar/pkg/synthesizer"
)

// Engine 核心处理引擎：串联收集、综合、装配三个阶段
type Engine struct {
	cfg         *config.Config
	collector   *collector.Collector
	synthesizer *synthesizer.Synthesizer
}

// NewEngine 创建引擎实例
func NewEngine(cfg *config.Config) (*Engine, error) {
	ctx := context.Background()

	// 初始化 LLM
	chatModel, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		BaseURL: cfg.LLM.BaseURL,
		APIKey:  cfg.LLM.APIKey,
		Model:   cfg.LLM.Model,
	})
	if err != nil {
		return nil, fmt.Errorf("LLM 初始化失败: %w", err)
	}

	// 初始化搜索客户端
	searcher, err := factory.NewSearcher(cfg)
	if err != nil {
		return nil, fmt.Errorf("搜索客户端初始化失败: %w", err)
	}

	// 初始化限流器，仅用于 LLM 配额控制
	limit := rate.Limit(float64(cfg.Concurrency.RPM) / 60.0)
	limiter := rate.NewLimiter(limit, cfg.Concurrency.QPS)

	col := collector.New(searcher, cfg.Analysis.MaxSnippets, cfg.Analysis.WindowDays)
	syn := synthesizer.New(chatModel, limiter, synthesizer.Options{
		Depth:      cfg.Analysis.Depth,
		FocusAreas: cfg.Analysis.FocusAreas,
	})

	return newEngine(cfg, col, syn), nil
}

// newEngine 用已装配好的组件构造引擎，测试通过这里注入 mock
func newEngine(cfg *config.Config, col *collector.Collector, syn *synthesizer.Synthesizer) *Engine {
	return &Engine{
		cfg:         cfg,
		collector:   col,
		synthesizer: syn,
	}
}

// RunOptions 运行选项
type RunOptions struct {
	Domains          []string
	ProgressCallback func(status string, progress int)
}

// Run 执行一次完整的趋势分析。
// 每个领域依次经过 搜索 -> 综合 两个阶段，单个领域失败不会中断整体运行，
// 失败会被记入结果集的 Failures。领域选择为空时直接返回空结果，不触发任何外部调用。
func (e *Engine) Run(ctx context.Context, opts RunOptions) (*dm.AnalysisRun, error) {
	logger.Log.Infof("开始趋势分析，包含 %d 个领域", len(opts.Domains))
	if opts.ProgressCallback != nil {
		opts.ProgressCallback("starting", 0)
	}

	asm := assembler.New()

	if len(opts.Domains) == 0 {
		if opts.ProgressCallback != nil {
			opts.ProgressCallback("completed", 100)
		}
		return asm.Result(), nil
	}

	total := len(opts.Domains)
	for i, domain := range opts.Domains {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		logger.Log.Infof("正在处理领域: %s", domain)

		// 1. 搜索
		snippets, err := e.collector.Collect(ctx, domain)
		if err != nil {
			logger.Log.Errorf("搜索领域失败 [%s]: %v", domain, err)
			asm.AddFailure(domain, err)
			e.progress(opts, domain, i+1, total)
			continue
		}
		if len(snippets) == 0 {
			logger.Log.Warnf("领域 [%s] 未找到有效文章，跳过综合", domain)
			asm.AddFailure(domain, nil)
			e.progress(opts, domain, i+1, total)
			continue
		}

		// 2. 综合
		report, err := e.synthesizer.Synthesize(ctx, domain, snippets)
		if err != nil {
			logger.Log.Errorf("生成领域报告失败 [%s]: %v", domain, err)
			asm.AddFailure(domain, err)
			e.progress(opts, domain, i+1, total)
			continue
		}
		report.Snippets = snippets // 关联原文引用

		asm.AddReport(report)
		logger.Log.Infof("领域 [%s] 处理完成 (评分: %v)", domain, report.Scores())
		e.progress(opts, domain, i+1, total)
	}

	// 3. 装配
	run := asm.Result()
	logger.Log.Infof("趋势分析完成: 成功 %d 个领域，失败 %d 个领域", len(run.Reports), len(run.Failures))
	if opts.ProgressCallback != nil {
		opts.ProgressCallback("completed", 100)
	}
	return run, nil
}

func (e *Engine) progress(opts RunOptions, domain string, done, total int) {
	if opts.ProgressCallback == nil {
		return
	}
	pct := 10 + int(float64(done)/float64(total)*85) // 10% -> 95%
	opts.ProgressCallback(fmt.Sprintf("processed domain: %s", domain), pct)
}
