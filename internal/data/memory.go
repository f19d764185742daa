package data

import (
	"context"
	"sync"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/startup_radar/internal/biz"
	dm "github.com/iWorld-y/startup_radar/pkg/model"
)

// Data 会话级内存存储。报告不做持久化，进程退出即丢弃
type Data struct {
	mu  sync.RWMutex
	run *dm.AnalysisRun
}

// NewData 创建内存存储
func NewData(logger log.Logger) (*Data, func()) {
	d := &Data{}
	cleanup := func() {
		log.NewHelper(logger).Info("closing in-memory run store")
	}
	return d, cleanup
}

type runRepo struct {
	data *Data
	log  *log.Helper
}

// NewRunRepo 创建结果集仓库
func NewRunRepo(data *Data, logger log.Logger) biz.RunRepo {
	return &runRepo{
		data: data,
		log:  log.NewHelper(logger),
	}
}

// SaveRun 整体替换当前结果集
func (r *runRepo) SaveRun(ctx context.Context, run *dm.AnalysisRun) error {
	r.data.mu.Lock()
	defer r.data.mu.Unlock()
	r.data.run = run
	return nil
}

// LatestRun 获取当前结果集
func (r *runRepo) LatestRun(ctx context.Context) (*dm.AnalysisRun, error) {
	r.data.mu.RLock()
	defer r.data.mu.RUnlock()
	if r.data.run == nil {
		return nil, errors.NotFound("RUN_NOT_FOUND", "no analysis has been run yet")
	}
	return r.data.run, nil
}

// GetReport 按领域名获取单个报告
func (r *runRepo) GetReport(ctx context.Context, domainName string) (*dm.TrendReport, error) {
	r.data.mu.RLock()
	defer r.data.mu.RUnlock()
	if r.data.run == nil {
		return nil, errors.NotFound("RUN_NOT_FOUND", "no analysis has been run yet")
	}
	for i := range r.data.run.Reports {
		if r.data.run.Reports[i].DomainName == domainName {
			return &r.data.run.Reports[i], nil
		}
	}
	return nil, errors.NotFound("REPORT_NOT_FOUND", "no report for domain "+domainName)
}
