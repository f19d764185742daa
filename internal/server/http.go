package server

import (
	"fmt"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/middleware/recovery"
	"github.com/go-kratos/kratos/v2/transport/http"

	"github.com/iWorld-y/startup_radar/internal/service"
	"github.com/iWorld-y/startup_radar/pkg/config"
	"github.com/iWorld-y/startup_radar/pkg/export"
)

// NewHTTPServer 创建展示服务的 HTTP Server
func NewHTTPServer(c *config.ServerConfig, s *service.RadarService, logger log.Logger) *http.Server {
	var opts = []http.ServerOption{
		http.Middleware(
			recovery.Recovery(),
		),
	}
	if c.Addr != "" {
		opts = append(opts, http.Address(c.Addr))
	}
	if c.Timeout != "" {
		if d, err := time.ParseDuration(c.Timeout); err == nil {
			opts = append(opts, http.Timeout(d))
		}
	}

	srv := http.NewServer(opts...)
	registerRoutes(srv, s)
	return srv
}

// registerRoutes 注册 API 路由。
// 领域名可能包含 "/"（如 AI/Machine Learning），所以单领域接口用查询参数而非路径参数。
func registerRoutes(srv *http.Server, s *service.RadarService) {
	r := srv.Route("/api")

	r.POST("/analyze", func(ctx http.Context) error {
		var req service.AnalyzeReq
		if err := ctx.Bind(&req); err != nil {
			return err
		}
		reply, err := s.Analyze(ctx, &req)
		if err != nil {
			return err
		}
		return ctx.Result(200, reply)
	})

	r.GET("/runs/latest", func(ctx http.Context) error {
		reply, err := s.LatestRun(ctx)
		if err != nil {
			return err
		}
		return ctx.Result(200, reply)
	})

	r.GET("/report", func(ctx http.Context) error {
		reply, err := s.GetReport(ctx, ctx.Query().Get("domain"))
		if err != nil {
			return err
		}
		return ctx.Result(200, reply)
	})

	r.GET("/report/download", func(ctx http.Context) error {
		domain := ctx.Query().Get("domain")
		text, err := s.DownloadReport(ctx, domain)
		if err != nil {
			return err
		}
		ctx.Response().Header().Set("Content-Disposition",
			fmt.Sprintf("attachment; filename=%q", export.FileName(domain)))
		return ctx.Blob(200, "text/plain; charset=utf-8", []byte(text))
	})

	r.GET("/charts", func(ctx http.Context) error {
		reply, err := s.Charts(ctx)
		if err != nil {
			return err
		}
		return ctx.Result(200, reply)
	})
}
