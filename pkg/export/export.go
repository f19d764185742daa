package export

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	dm "github.com/iWorld-y/startup_radar/pkg/model"
)

const textTpl = `Startup Trend Report: {{ .DomainName }}
{{ divider }}

Scores (0-10)
  Market Potential:          {{ .MarketPotential }}
  Innovation Score:          {{ .InnovationScore }}
  Investment Attractiveness: {{ .InvestmentAttractiveness }}

Narrative
{{ .Narrative }}
{{ if .KeyTechnologies }}
Key Technologies
{{ range .KeyTechnologies }}  - {{ . }}
{{ end }}{{ end }}{{ if .Opportunities }}
Emerging Opportunities
{{ range .Opportunities }}  - {{ . }}
{{ end }}{{ end }}{{ if .Challenges }}
Challenges
{{ range .Challenges }}  - {{ . }}
{{ end }}{{ end }}{{ if .Snippets }}
Sources
{{ range .Snippets }}  - {{ .Title }} ({{ .Link }})
{{ end }}{{ end }}`

var reportTemplate = template.Must(template.New("report").
	Funcs(template.FuncMap{
		"divider": func() string { return strings.Repeat("=", 60) },
	}).
	Parse(textTpl))

// WriteTextReport 以纯文本格式输出单个领域的趋势报告
func WriteTextReport(w io.Writer, report *dm.TrendReport) error {
	return reportTemplate.Execute(w, report)
}

// TextReport 返回单个领域报告的纯文本形式
func TextReport(report *dm.TrendReport) (string, error) {
	var sb strings.Builder
	if err := WriteTextReport(&sb, report); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// FileName 根据领域名生成下载文件名
func FileName(domain string) string {
	name := strings.NewReplacer(" ", "_", "/", "_").Replace(domain)
	return fmt.Sprintf("%s_startup_trends.txt", name)
}
