package synthesizer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/model"
	"golang.org/x/time/rate"

	dm "github.com/iWorld-y/startup_radar/pkg/model"
)

var (
	// ErrModelUnavailable 模型服务调用失败（网络、鉴权、限流等）
	ErrModelUnavailable = errors.New("model service unavailable")
	// ErrMalformedResponse 模型返回内容无法按预期格式解析
	ErrMalformedResponse = errors.New("malformed model response")
)

// Options 分析选项，仅影响 Prompt 的构造
type Options struct {
	Depth      int
	FocusAreas []string
}

// Synthesizer 趋势综合器：把新闻片段交给 LLM，换回结构化的趋势报告
type Synthesizer struct {
	chatModel model.ChatModel
	limiter   *rate.Limiter
	opts      Options
}

// New 创建趋势综合器，limiter 为 nil 时不做节流
func New(cm model.ChatModel, limiter *rate.Limiter, opts Options) *Synthesizer {
	return &Synthesizer{
		chatModel: cm,
		limiter:   limiter,
		opts:      opts,
	}
}

// Synthesize 为单个领域生成趋势报告。
// 模型调用失败返回 ErrModelUnavailable，返回内容不符合预期格式返回 ErrMalformedResponse。
func (s *Synthesizer) Synthesize(ctx context.Context, domain string, snippets []dm.Snippet) (*dm.TrendReport, error) {
	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrModelUnavailable, err)
		}
	}

	messages := buildMessages(domain, snippets, s.opts)

	resp, err := s.chatModel.Generate(ctx, messages)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrModelUnavailable, err)
	}

	report, err := parseReport(resp.Content)
	if err != nil {
		return nil, err
	}

	report.DomainName = domain
	return report, nil
}

// parseReport 清洗并解析模型输出
func parseReport(content string) (*dm.TrendReport, error) {
	cleanContent := strings.TrimSpace(content)
	cleanContent = strings.TrimPrefix(cleanContent, "```json")
	cleanContent = strings.TrimPrefix(cleanContent, "```")
	cleanContent = strings.TrimSuffix(cleanContent, "```")
	cleanContent = strings.TrimSpace(cleanContent)

	var report dm.TrendReport
	if err := json.Unmarshal([]byte(cleanContent), &report); err != nil {
		return nil, fmt.Errorf("%w: json unmarshal: %v", ErrMalformedResponse, err)
	}

	if report.Narrative == "" {
		return nil, fmt.Errorf("%w: empty narrative", ErrMalformedResponse)
	}
	if !report.ScoresInRange() {
		return nil, fmt.Errorf("%w: scores out of range %v", ErrMalformedResponse, report.Scores())
	}

	return &report, nil
}
