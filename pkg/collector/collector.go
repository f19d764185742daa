package collector

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-shiori/go-readability"

	"github.com/iWorld-y/startup_radar/pkg/logger"
	dm "github.com/iWorld-y/startup_radar/pkg/model"
	"github.com/iWorld-y/startup_radar/pkg/search"
)

// ErrSearchUnavailable 搜索服务不可达或返回错误
var ErrSearchUnavailable = errors.New("search provider unavailable")

const (
	// 摘要短于该长度时尝试抓取正文补全
	minExcerptLen = 500
	// 过短的内容对分析没有价值，直接丢弃
	minUsefulLen = 100
	// 正文截断上限，避免 Prompt 过长
	maxContentLen = 5000

	fetchTimeout = 30 * time.Second
)

// Collector 新闻收集器：按领域搜索并产出有效的文章片段
type Collector struct {
	searcher    search.Searcher
	maxSnippets int
	windowDays  int

	// 正文抓取函数，默认走 readability，测试时可替换
	fetchFull func(url string) (string, error)
}

// New 创建新闻收集器
func New(searcher search.Searcher, maxSnippets, windowDays int) *Collector {
	if maxSnippets <= 0 {
		maxSnippets = 6
	}
	if windowDays <= 0 {
		windowDays = 3
	}
	return &Collector{
		searcher:    searcher,
		maxSnippets: maxSnippets,
		windowDays:  windowDays,
		fetchFull:   fetchAndCleanContent,
	}
}

// Collect 搜索某个领域的最新创业动态，返回有效片段。
// 没有结果时返回空切片而非错误；搜索服务出错时返回 ErrSearchUnavailable。
func (c *Collector) Collect(ctx context.Context, domain string) ([]dm.Snippet, error) {
	now := time.Now()
	req := &search.Request{
		Query:      fmt.Sprintf("latest startup trends in %s", domain),
		Topic:      "news",
		MaxResults: c.maxSnippets * 3, // 多抓一些，保证过滤后仍有足够的优质片段
		StartDate:  now.AddDate(0, 0, -c.windowDays).Format(time.DateOnly),
		EndDate:    now.Format(time.DateOnly),
	}

	resp, err := c.searcher.Search(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSearchUnavailable, err)
	}

	var snippets []dm.Snippet
	for _, item := range resp.Results {
		content := item.Content

		// 摘要太短时尝试获取正文
		if len(content) < minExcerptLen {
			fetched, err := c.fetchFull(item.URL)
			if err == nil && len(fetched) > len(content) {
				content = fetched
			} else if err != nil {
				logger.Log.Debugf("抓取正文失败 [%s]: %v", item.URL, err)
			}
		}

		if len(content) > maxContentLen {
			content = content[:maxContentLen]
		}
		if len(content) < minUsefulLen {
			continue
		}

		snippets = append(snippets, dm.Snippet{
			Title:       item.Title,
			Link:        item.URL,
			Source:      domain,
			PubDate:     item.PublishedDate,
			Content:     content,
			RetrievedAt: now,
		})

		if len(snippets) >= c.maxSnippets {
			break
		}
	}

	return snippets, nil
}

// fetchAndCleanContent 抓取 URL 并提取核心文本
func fetchAndCleanContent(url string) (string, error) {
	article, err := readability.FromURL(url, fetchTimeout)
	if err != nil {
		return "", err
	}
	return article.TextContent, nil
}
