package export

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"

	dm "github.com/iWorld-y/startup_radar/pkg/model"
)

// DashboardData 用于模板渲染的数据
type DashboardData struct {
	Date      string
	Reports   []dm.TrendReport
	Failures  []dm.Failure
	ChartJSON template.JS
}

const dashboardTpl = `<!DOCTYPE html>
<html lang="zh-CN">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>创业趋势雷达</title>
    <script src="https://cdn.jsdelivr.net/npm/marked/marked.min.js"></script>
    <script src="https://cdn.jsdelivr.net/npm/chart.js"></script>
    <style>
        :root {
            --primary-color: #2563eb;
            --bg-color: #f8fafc;
            --card-bg: #ffffff;
            --text-main: #1e293b;
            --text-secondary: #64748b;
            --border-color: #e2e8f0;
        }
        body {
            font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Arial, sans-serif;
            background-color: var(--bg-color);
            color: var(--text-main);
            line-height: 1.6;
            margin: 0;
            padding: 20px;
        }
        .container { max-width: 960px; margin: 0 auto; }
        header { text-align: center; margin-bottom: 40px; padding: 20px 0; }
        h1 { font-size: 2.2rem; margin: 0 0 10px 0; }
        .date-info { color: var(--text-secondary); }
        .charts { display: grid; gap: 24px; grid-template-columns: 1fr; margin-bottom: 40px; }
        @media (min-width: 768px) { .charts { grid-template-columns: 1fr 1fr; } }
        .chart-card {
            background: var(--card-bg);
            border: 1px solid var(--border-color);
            border-radius: 12px;
            padding: 20px;
        }
        .failures {
            background: #fef2f2;
            border: 1px solid #fecaca;
            border-radius: 8px;
            padding: 12px 20px;
            margin-bottom: 30px;
            color: #991b1b;
        }
        .domain-card {
            background: var(--card-bg);
            border-radius: 12px;
            padding: 24px;
            margin-bottom: 30px;
            border: 1px solid var(--border-color);
        }
        .domain-header {
            display: flex;
            justify-content: space-between;
            align-items: center;
            border-bottom: 1px solid #f1f5f9;
            padding-bottom: 15px;
            margin-bottom: 20px;
        }
        .domain-title { font-size: 1.6rem; font-weight: 800; }
        .domain-scores { color: var(--text-secondary); font-weight: bold; }
        .tags span {
            display: inline-block;
            background: #eff6ff;
            color: var(--primary-color);
            border-radius: 16px;
            padding: 2px 12px;
            margin: 0 6px 6px 0;
            font-size: 0.85rem;
        }
        .references { margin-top: 20px; padding-top: 15px; border-top: 1px dashed var(--border-color); font-size: 0.9rem; }
        .references a { color: var(--primary-color); text-decoration: none; }
    </style>
</head>
<body>
    <div class="container">
        <header>
            <h1>🚀 创业趋势雷达</h1>
            <div class="date-info">{{ .Date }} • 覆盖 {{ len .Reports }} 个领域</div>
        </header>

        {{if .Failures}}
        <div class="failures">
            以下领域分析失败：
            {{range .Failures}}<div>{{.DomainName}} ({{.Reason}})</div>{{end}}
        </div>
        {{end}}

        <div class="charts">
            <div class="chart-card"><canvas id="radar-chart"></canvas></div>
            <div class="chart-card"><canvas id="bar-chart"></canvas></div>
        </div>

        {{range .Reports}}
        <div class="domain-card">
            <div class="domain-header">
                <div class="domain-title">{{.DomainName}}</div>
                <div class="domain-scores">市场 {{.MarketPotential}} / 创新 {{.InnovationScore}} / 投资 {{.InvestmentAttractiveness}}</div>
            </div>
            <div class="markdown-content"></div>
            <div style="display:none" class="raw-narrative">{{.Narrative}}</div>
            <div class="tags">
                {{range .KeyTechnologies}}<span>{{.}}</span>{{end}}
            </div>
            {{if .Snippets}}
            <div class="references">
                参考来源：
                {{range .Snippets}}<div><a href="{{.Link}}" target="_blank">{{.Title}}</a></div>{{end}}
            </div>
            {{end}}
        </div>
        {{end}}
    </div>

    <script>
        const chartData = {{ .ChartJSON }};
        const palette = ['#2563eb', '#22c55e', '#ef4444', '#a855f7', '#f59e0b', '#06b6d4'];

        new Chart(document.getElementById('radar-chart'), {
            type: 'radar',
            data: {
                labels: chartData.axes,
                datasets: chartData.radar.map((s, i) => ({
                    label: s.name,
                    data: s.values,
                    borderColor: palette[i % palette.length],
                    fill: false
                }))
            },
            options: { scales: { r: { min: 0, max: 10 } } }
        });

        new Chart(document.getElementById('bar-chart'), {
            type: 'bar',
            data: {
                labels: chartData.domains,
                datasets: chartData.bars.map((s, i) => ({
                    label: s.name,
                    data: s.values,
                    backgroundColor: palette[i % palette.length]
                }))
            },
            options: { scales: { y: { min: 0, max: 10 } } }
        });

        document.addEventListener('DOMContentLoaded', function() {
            document.querySelectorAll('.raw-narrative').forEach(el => {
                el.previousElementSibling.innerHTML = marked.parse(el.textContent);
            });
        });
    </script>
</body>
</html>
`

var dashboardTemplate = template.Must(template.New("dashboard").Parse(dashboardTpl))

// WriteDashboard 渲染包含雷达图与柱状图的单页仪表盘
func WriteDashboard(w io.Writer, run *dm.AnalysisRun, charts *dm.ChartData) error {
	chartJSON, err := json.Marshal(charts)
	if err != nil {
		return fmt.Errorf("marshal chart data: %w", err)
	}

	data := DashboardData{
		Date:      run.GeneratedAt.Format("2006-01-02"),
		Reports:   run.Reports,
		Failures:  run.Failures,
		ChartJSON: template.JS(chartJSON),
	}
	return dashboardTemplate.Execute(w, data)
}
