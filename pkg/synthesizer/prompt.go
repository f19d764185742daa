package synthesizer

import (
	"fmt"
	"strings"

	"github.com/cloudwego/eino/schema"

	dm "github.com/iWorld-y/startup_radar/pkg/model"
)

const systemPrompt = "你是一个 JSON 生成器。请只输出 JSON 字符串。"

const schemaPrompt = `你是一个资深创业趋势分析师。请根据提供的新闻内容，撰写一份该领域的创业趋势分析报告。
请务必严格按照以下 JSON 格式返回，不要包含任何 markdown 标记：
{
	"narrative": "领域趋势综述（Markdown格式，约%d字），总结该领域初创公司的核心动态、技术方向与市场信号。",
	"key_technologies": ["关键技术1", "关键技术2", "关键技术3"],
	"emerging_opportunities": ["新兴机会1", "新兴机会2"],
	"challenges": ["主要挑战1", "主要挑战2"],
	"market_potential": 8,
	"innovation_score": 7,
	"investment_attractiveness": 6
}
评分说明：market_potential、innovation_score、investment_attractiveness 均为 0-10 的整数，
分别代表该领域当前的市场潜力、创新活跃程度和投资吸引力。`

// buildMessages 构造发给 LLM 的消息，depth 控制综述篇幅，focusAreas 附加关注重点
func buildMessages(domain string, snippets []dm.Snippet, opts Options) []*schema.Message {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("以下是关于领域【%s】的一组创业新闻，请阅读并分析：\n\n", domain))
	for i, s := range snippets {
		sb.WriteString(fmt.Sprintf("文章 %d:\n标题: %s\n内容摘要: %s\n\n", i+1, s.Title, s.Content))
	}
	if len(snippets) == 0 {
		sb.WriteString("（本次没有可用的新闻上下文，请基于领域常识给出保守的分析）\n\n")
	}

	depth := opts.Depth
	if depth <= 0 {
		depth = 7
	}
	if depth > 10 {
		depth = 10
	}

	prompt := fmt.Sprintf(schemaPrompt, depth*40)
	if len(opts.FocusAreas) > 0 {
		prompt += fmt.Sprintf("\n分析时请重点关注：%s。", strings.Join(opts.FocusAreas, "、"))
	}

	return []*schema.Message{
		{Role: schema.System, Content: systemPrompt},
		{Role: schema.User, Content: sb.String() + "\n\n" + prompt},
	}
}
