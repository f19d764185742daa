package assembler

import (
	"errors"
	"time"

	"github.com/iWorld-y/startup_radar/pkg/collector"
	dm "github.com/iWorld-y/startup_radar/pkg/model"
	"github.com/iWorld-y/startup_radar/pkg/synthesizer"
)

// 失败类型标识，供展示层分类呈现
const (
	ReasonSearchUnavailable = "search_unavailable"
	ReasonNoResults         = "no_results"
	ReasonModelUnavailable  = "model_unavailable"
	ReasonMalformed         = "malformed_response"
	ReasonUnknown           = "error"
)

// Assembler 报告装配器：按用户选择的顺序累积各领域的成败结果
type Assembler struct {
	reports  []dm.TrendReport
	failures []dm.Failure
}

// New 创建报告装配器
func New() *Assembler {
	return &Assembler{}
}

// AddReport 记录一个领域的成功报告，调用顺序即最终顺序
func (a *Assembler) AddReport(report *dm.TrendReport) {
	a.reports = append(a.reports, *report)
}

// AddFailure 记录一个领域的失败，err 为 nil 时视为无搜索结果
func (a *Assembler) AddFailure(domain string, err error) {
	f := dm.Failure{DomainName: domain, Reason: classify(err)}
	if err != nil {
		f.Detail = err.Error()
	}
	a.failures = append(a.failures, f)
}

// Result 产出本次运行的完整结果集
func (a *Assembler) Result() *dm.AnalysisRun {
	run := &dm.AnalysisRun{
		GeneratedAt: time.Now(),
		Reports:     make([]dm.TrendReport, len(a.reports)),
		Failures:    make([]dm.Failure, len(a.failures)),
	}
	copy(run.Reports, a.reports)
	copy(run.Failures, a.failures)
	return run
}

// classify 根据错误链判定失败类型
func classify(err error) string {
	switch {
	case err == nil:
		return ReasonNoResults
	case errors.Is(err, collector.ErrSearchUnavailable):
		return ReasonSearchUnavailable
	case errors.Is(err, synthesizer.ErrModelUnavailable):
		return ReasonModelUnavailable
	case errors.Is(err, synthesizer.ErrMalformedResponse):
		return ReasonMalformed
	default:
		return ReasonUnknown
	}
}

// BuildChartData 把报告集转换为雷达图与柱状图数据
func BuildChartData(run *dm.AnalysisRun) *dm.ChartData {
	data := &dm.ChartData{
		Axes:    append([]string(nil), dm.MetricAxes...),
		Domains: make([]string, 0, len(run.Reports)),
	}

	for _, r := range run.Reports {
		data.Domains = append(data.Domains, r.DomainName)
		data.Radar = append(data.Radar, dm.ChartSeries{
			Name:   r.DomainName,
			Values: r.Scores(),
		})
	}

	for i, axis := range data.Axes {
		values := make([]int, 0, len(run.Reports))
		for _, r := range run.Reports {
			values = append(values, r.Scores()[i])
		}
		data.Bars = append(data.Bars, dm.ChartSeries{Name: axis, Values: values})
	}

	return data
}
