package server

import (
	"net/http"
	"time"

	"github.com/eryajf/jenkins-demo/internal/config"
	"github.com/eryajf/jenkins-demo/internal/model"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	dto "github.com/prometheus/client_model/go"
)

const (
	metricsPath      = "/metrics"
	metricsNamespace = "jenkins_demo"
)

// Metrics demo 服务的 Prometheus 指标
// 使用独立 registry,/metrics 只暴露 info、uptime、requests_total 三项
type Metrics struct {
	registry  *prometheus.Registry
	requests  prometheus.Counter
	env       *config.AppEnv
	startedAt time.Time

	infoDesc   *prometheus.Desc
	uptimeDesc *prometheus.Desc
}

// NewMetrics 创建并注册指标
func NewMetrics(env *config.AppEnv) *Metrics {
	m := &Metrics{
		registry:  prometheus.NewRegistry(),
		env:       env,
		startedAt: time.Now(),
		requests: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "requests_total",
			Help:      "Total number of requests",
		}),
		infoDesc: prometheus.NewDesc(
			prometheus.BuildFQName(metricsNamespace, "", "info"),
			"Application information",
			[]string{"version", "branch"}, nil,
		),
		uptimeDesc: prometheus.NewDesc(
			prometheus.BuildFQName(metricsNamespace, "", "uptime_seconds"),
			"Uptime in seconds",
			nil, nil,
		),
	}

	m.registry.MustRegister(m.requests, m)
	return m
}

// Describe 实现 prometheus.Collector
func (m *Metrics) Describe(ch chan<- *prometheus.Desc) {
	ch <- m.infoDesc
	ch <- m.uptimeDesc
}

// Collect 实现 prometheus.Collector,分支与版本在抓取时读取
func (m *Metrics) Collect(ch chan<- prometheus.Metric) {
	info := m.Snapshot()
	ch <- prometheus.MustNewConstMetric(m.infoDesc, prometheus.GaugeValue, 1, info.Version, info.Branch)
	ch <- prometheus.MustNewConstMetric(m.uptimeDesc, prometheus.CounterValue, info.UptimeSeconds)
}

// Snapshot 当前指标快照
func (m *Metrics) Snapshot() model.MetricsInfo {
	return model.MetricsInfo{
		UptimeSeconds: time.Since(m.startedAt).Seconds(),
		RequestsTotal: m.requestsTotal(),
		Version:       m.env.Version(),
		Branch:        m.env.Branch(),
	}
}

func (m *Metrics) requestsTotal() uint64 {
	var metric dto.Metric
	if err := m.requests.Write(&metric); err != nil {
		return 0
	}
	return uint64(metric.GetCounter().GetValue())
}

// Handler 返回 Prometheus 文本格式的抓取端点
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Middleware 在请求结束后计数,skipPath 的请求不计入
func (m *Metrics) Middleware(skipPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		if c.Request.URL.Path == skipPath {
			return
		}
		m.requests.Inc()
	}
}
