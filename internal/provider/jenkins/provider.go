package jenkins

import (
	"context"
	"fmt"
	"time"

	"cnb.cool/zhiqiangwang/pkg/logx"
	"github.com/eryajf/jenkins-demo/internal/model"
	"github.com/eryajf/jenkins-demo/internal/provider"
)

// Name Provider 注册名
const Name = "jenkins"

const defaultTimeout = 30 * time.Second

func init() {
	provider.RegisterCICD(Name, NewJenkinsProvider)
}

// JenkinsProvider Jenkins Provider
type JenkinsProvider struct {
	name   string
	client *Client
}

// NewJenkinsProvider 创建 Jenkins Provider
func NewJenkinsProvider() provider.CICDProvider {
	return &JenkinsProvider{
		name: Name,
	}
}

// GetName 获取 Provider 名称
func (p *JenkinsProvider) GetName() string {
	return p.name
}

// Initialize 初始化 Provider
// 支持的键: url, username, token (必填), timeout (time.Duration,可选)
func (p *JenkinsProvider) Initialize(config map[string]any) error {
	url, ok := config["url"].(string)
	if !ok || url == "" {
		return fmt.Errorf("url is required")
	}

	username, ok := config["username"].(string)
	if !ok || username == "" {
		return fmt.Errorf("username is required")
	}

	token, ok := config["token"].(string)
	if !ok || token == "" {
		return fmt.Errorf("token is required")
	}

	timeout := defaultTimeout
	if t, ok := config["timeout"].(time.Duration); ok && t > 0 {
		timeout = t
	}

	p.client = NewClient(url, username, token, timeout)

	logx.Debug("Jenkins Provider initialized, url %s, username %s, timeout %s", url, username, timeout)

	return nil
}

// TriggerJob 实现 CICDProvider 接口
func (p *JenkinsProvider) TriggerJob(ctx context.Context, jobName string, parameters map[string]string) (*model.TriggerResult, error) {
	if p.client == nil {
		return nil, errNotInitialized
	}
	return p.client.TriggerJob(ctx, jobName, parameters)
}

// GetJobStatus 实现 CICDProvider 接口
func (p *JenkinsProvider) GetJobStatus(ctx context.Context, jobName string) (*model.JobStatus, error) {
	if p.client == nil {
		return nil, errNotInitialized
	}
	return p.client.GetJobStatus(ctx, jobName)
}

// HealthCheck 健康检查
func (p *JenkinsProvider) HealthCheck(ctx context.Context) error {
	if err := p.ready(ctx); err != nil {
		return err
	}

	logx.Debug("Health check passed, version %s", p.client.GetJenkins().Version)
	return nil
}

// ready 确认已初始化并建立 gojenkins 连接
func (p *JenkinsProvider) ready(ctx context.Context) error {
	if p.client == nil {
		return errNotInitialized
	}
	return p.client.Connect(ctx)
}
