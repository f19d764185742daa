package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/iWorld-y/startup_radar/pkg/assembler"
	"github.com/iWorld-y/startup_radar/pkg/config"
	"github.com/iWorld-y/startup_radar/pkg/engine"
	"github.com/iWorld-y/startup_radar/pkg/export"
	"github.com/iWorld-y/startup_radar/pkg/logger"
)

var (
	flagconf   = flag.String("conf", "configs/config.yaml", "config path, eg: -conf config.yaml")
	flagOutput = flag.String("output", "output", "output directory for reports and dashboard")
)

func main() {
	flag.Parse()

	// 1. 加载配置
	cfg, err := config.LoadConfig(*flagconf)
	if err != nil {
		log.Fatalf("无法加载配置文件: %v", err)
	}
	if cfg.LLM.APIKey == "" {
		log.Fatal("配置错误: 未设置 llm.api_key")
	}

	// 2. 初始化日志
	if err = logger.InitLogger(cfg.Log.Level, cfg.Log.File); err != nil {
		log.Fatalf("无法初始化日志: %v", err)
	}
	logger.Log.Info("启动创业趋势雷达...")

	// 3. 初始化引擎
	eng, err := engine.NewEngine(cfg)
	if err != nil {
		logger.Log.Fatalf("引擎初始化失败: %v", err)
	}

	// 4. 执行分析
	run, err := eng.Run(context.Background(), engine.RunOptions{
		Domains: cfg.Domains,
		ProgressCallback: func(status string, progress int) {
			logger.Log.Debugf("进度 %d%%: %s", progress, status)
		},
	})
	if err != nil {
		logger.Log.Fatalf("趋势分析失败: %v", err)
	}

	for _, f := range run.Failures {
		logger.Log.Warnf("领域 [%s] 分析失败: %s (%s)", f.DomainName, f.Reason, f.Detail)
	}

	// 5. 导出纯文本报告
	reportsDir := filepath.Join(*flagOutput, "reports")
	if err := os.MkdirAll(reportsDir, 0o755); err != nil {
		logger.Log.Fatalf("无法创建输出目录: %v", err)
	}
	for i := range run.Reports {
		report := &run.Reports[i]
		path := filepath.Join(reportsDir, export.FileName(report.DomainName))
		f, err := os.Create(path)
		if err != nil {
			logger.Log.Errorf("无法创建报告文件 [%s]: %v", path, err)
			continue
		}
		if err := export.WriteTextReport(f, report); err != nil {
			logger.Log.Errorf("写入报告失败 [%s]: %v", report.DomainName, err)
		}
		f.Close()
	}

	// 6. 生成仪表盘
	charts := assembler.BuildChartData(run)
	dashboard, err := os.Create(filepath.Join(*flagOutput, "index.html"))
	if err != nil {
		logger.Log.Fatalf("无法创建仪表盘文件: %v", err)
	}
	defer dashboard.Close()
	if err := export.WriteDashboard(dashboard, run, charts); err != nil {
		logger.Log.Fatalf("生成仪表盘失败: %v", err)
	}

	logger.Log.Infof("✅ 创业趋势报告生成完毕: 成功 %d 个领域，失败 %d 个领域", len(run.Reports), len(run.Failures))
}
