package duckduckgo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/iWorld-y/startup_radar/pkg/search"
)

const defaultBaseURL = "https://api.duckduckgo.com"

// Client DuckDuckGo Instant Answer API 客户端
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient 创建一个新的 DuckDuckGo 客户端，baseURL 为空时使用官方地址
func NewClient(baseURL string, timeout int) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	t := time.Duration(timeout) * time.Second
	if t == 0 {
		t = 30 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: t,
		},
	}
}

// Ensure Client implements search.Searcher
var _ search.Searcher = (*Client)(nil)

// apiResponse DuckDuckGo 响应结构
type apiResponse struct {
	Heading       string         `json:"Heading"`
	AbstractText  string         `json:"AbstractText"`
	AbstractURL   string         `json:"AbstractURL"`
	AbstractSrc   string         `json:"AbstractSource"`
	RelatedTopics []relatedTopic `json:"RelatedTopics"`
}

// relatedTopic 单条相关结果，分组结果会嵌套一层 Topics
type relatedTopic struct {
	Text     string         `json:"Text"`
	FirstURL string         `json:"FirstURL"`
	Topics   []relatedTopic `json:"Topics"`
}

// Search 执行搜索
func (c *Client) Search(ctx context.Context, req *search.Request) (*search.Response, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	q := u.Query()
	q.Set("q", req.Query)
	q.Set("format", "json")
	q.Set("no_html", "1")
	q.Set("skip_disambig", "1")
	u.RawQuery = q.Encode()

	httpReq, err := http.NewRequestWithContext(ctx, "GET", u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request failed: %w", err)
	}

	res, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(res.Body)
		return nil, fmt.Errorf("duckduckgo api error (status %d): %s", res.StatusCode, string(body))
	}

	var apiResp apiResponse
	if err := json.NewDecoder(res.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("decode response failed: %w", err)
	}

	var results []search.Result
	if apiResp.AbstractText != "" {
		results = append(results, search.Result{
			Title:   apiResp.Heading,
			URL:     apiResp.AbstractURL,
			Content: apiResp.AbstractText,
		})
	}
	results = append(results, flattenTopics(apiResp.RelatedTopics)...)

	if req.MaxResults > 0 && len(results) > req.MaxResults {
		results = results[:req.MaxResults]
	}

	return &search.Response{Results: results}, nil
}

// flattenTopics 展开嵌套的相关结果分组
func flattenTopics(topics []relatedTopic) []search.Result {
	var results []search.Result
	for _, t := range topics {
		if len(t.Topics) > 0 {
			results = append(results, flattenTopics(t.Topics)...)
			continue
		}
		if t.FirstURL == "" || t.Text == "" {
			continue
		}
		results = append(results, search.Result{
			Title:   topicTitle(t.Text),
			URL:     t.FirstURL,
			Content: t.Text,
		})
	}
	return results
}

// topicTitle 从 Text 中截取标题部分，DuckDuckGo 以 " - " 分隔标题与描述
func topicTitle(text string) string {
	if idx := strings.Index(text, " - "); idx > 0 {
		return text[:idx]
	}
	return text
}
