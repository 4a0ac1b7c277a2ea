package provider

import (
	"context"

	"github.com/eryajf/jenkins-demo/internal/model"
)

// CICDProvider 定义 CI/CD 工具的统一接口
type CICDProvider interface {
	// GetName 返回提供商名称 (如: jenkins)
	GetName() string

	// Initialize 初始化客户端
	Initialize(config map[string]any) error

	// TriggerJob 触发构建,parameters 为空时不带参数
	TriggerJob(ctx context.Context, jobName string, parameters map[string]string) (*model.TriggerResult, error)

	// GetJobStatus 获取任务状态
	GetJobStatus(ctx context.Context, jobName string) (*model.JobStatus, error)

	// ListJobs 列出任务,PageInfo.Total 为分页前的总数
	ListJobs(ctx context.Context, opts *QueryOptions) (*model.JobList, error)

	// GetJobBuilds 获取任务的构建历史
	GetJobBuilds(ctx context.Context, jobName string, limit int) ([]*model.Build, error)

	// HealthCheck 健康检查
	HealthCheck(ctx context.Context) error
}

// QueryOptions 查询选项
type QueryOptions struct {
	PageSize int // 分页大小
	PageNum  int // 页码
}
