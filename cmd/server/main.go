package main

import (
	"flag"
	"os"

	"github.com/go-kratos/kratos/v2"
	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/startup_radar/internal/biz"
	"github.com/iWorld-y/startup_radar/internal/data"
	"github.com/iWorld-y/startup_radar/internal/server"
	"github.com/iWorld-y/startup_radar/internal/service"
	"github.com/iWorld-y/startup_radar/pkg/config"
	"github.com/iWorld-y/startup_radar/pkg/engine"
	drLogger "github.com/iWorld-y/startup_radar/pkg/logger"
)

// go build -ldflags "-X main.Version=x.y.z"
var (
	// Name 是服务的名称
	Name string = "startup-radar"
	// Version 是服务的版本号
	Version string
	// flagconf 是配置文件的路径命令行参数
	flagconf string

	id, _ = os.Hostname()
)

func init() {
	flag.StringVar(&flagconf, "conf", "configs/config.yaml", "config path, eg: -conf config.yaml")
}

func main() {
	flag.Parse()
	logger := log.With(log.NewStdLogger(os.Stdout),
		"ts", log.DefaultTimestamp,
		"caller", log.DefaultCaller,
		"service.id", id,
		"service.name", Name,
		"service.version", Version,
	)

	cfg, err := config.LoadConfig(flagconf)
	if err != nil {
		panic(err)
	}

	// 引擎内部仍使用 pkg/logger，展示服务自身走 kratos log
	if err := drLogger.InitLogger(cfg.Log.Level, cfg.Log.File); err != nil {
		panic(err)
	}

	eng, err := engine.NewEngine(cfg)
	if err != nil {
		panic(err)
	}

	d, cleanup := data.NewData(logger)
	defer cleanup()

	uc := biz.NewAnalysisUseCase(eng, data.NewRunRepo(d, logger), logger)
	svc := service.NewRadarService(uc, logger)
	httpSrv := server.NewHTTPServer(&cfg.Server, svc, logger)

	app := kratos.New(
		kratos.ID(id),
		kratos.Name(Name),
		kratos.Version(Version),
		kratos.Logger(logger),
		kratos.Server(httpSrv),
	)

	if err := app.Run(); err != nil {
		panic(err)
	}
}
