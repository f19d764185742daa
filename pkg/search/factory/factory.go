package factory

import (
	"fmt"

	"github.com/iWorld-y/startup_radar/pkg/config"
	"github.com/iWorld-y/startup_radar/pkg/duckduckgo"
	"github.com/iWorld-y/startup_radar/pkg/search"
	"github.com/iWorld-y/startup_radar/pkg/tavily"
)

// NewSearcher 根据配置创建搜索实例
func NewSearcher(cfg *config.Config) (search.Searcher, error) {
	provider := cfg.Search.Provider
	if provider == "" {
		// 默认回退逻辑：配置了 tavily key 则优先 tavily，否则用无需凭证的 duckduckgo
		if cfg.Search.Tavily.APIKey != "" {
			provider = "tavily"
		} else {
			provider = "duckduckgo"
		}
	}

	switch provider {
	case "tavily":
		if cfg.Search.Tavily.APIKey == "" {
			return nil, fmt.Errorf("tavily api key is missing")
		}
		return tavily.NewClient(cfg.Search.Tavily.APIKey), nil

	case "duckduckgo":
		return duckduckgo.NewClient(cfg.Search.DuckDuckGo.BaseURL, cfg.Search.DuckDuckGo.Timeout), nil

	default:
		return nil, fmt.Errorf("unknown search provider: %s", provider)
	}
}
