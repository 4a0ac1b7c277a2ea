package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"cnb.cool/zhiqiangwang/pkg/logx"
	"github.com/eryajf/jenkins-demo/internal/config"
	"github.com/gin-gonic/gin"
)

// HTTPGinServer 基于 Gin 的 demo HTTP 服务器
type HTTPGinServer struct {
	env     *config.AppEnv
	engine  *gin.Engine
	server  *http.Server
	metrics *Metrics
}

// NewHTTPGinServer 创建基于 Gin 的 HTTP 服务器
func NewHTTPGinServer(cfg config.ServerConfig, env *config.AppEnv) *HTTPGinServer {
	// 设置 Gin 模式
	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	s := &HTTPGinServer{
		env:     env,
		engine:  engine,
		metrics: NewMetrics(env),
	}
	s.server = &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", cfg.Port),
		Handler:      engine,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	// 注册中间件
	s.registerMiddlewares()

	// 注册路由
	s.registerRoutes()

	return s
}

// Handler 返回底层 http.Handler
func (s *HTTPGinServer) Handler() http.Handler {
	return s.engine
}

// registerMiddlewares 注册中间件
func (s *HTTPGinServer) registerMiddlewares() {
	// 恢复中间件 - 从 panic 恢复
	s.engine.Use(gin.Recovery())

	s.engine.Use(requestIDMiddleware())

	// 自定义日志中间件
	s.engine.Use(s.loggingMiddleware())

	// 请求计数,不统计 /metrics 抓取
	s.engine.Use(s.metrics.Middleware(metricsPath))
}

// loggingMiddleware 自定义日志中间件
func (s *HTTPGinServer) loggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		logx.Info("HTTP request, method %s, path %s, status %d, duration %s, remote_addr %s, request_id %s",
			method, path, c.Writer.Status(), time.Since(start), c.ClientIP(), c.GetString(requestIDKey))
	}
}

// registerRoutes 注册路由
func (s *HTTPGinServer) registerRoutes() {
	s.engine.GET("/", s.handleRoot)
	s.engine.GET("/health", s.handleHealth)
	s.engine.GET("/api/info", s.handleInfo)
	s.engine.GET(metricsPath, gin.WrapH(s.metrics.Handler()))
}

// Start 启动 HTTP 服务器,关闭后返回 http.ErrServerClosed
func (s *HTTPGinServer) Start() error {
	logx.Info("🛜 Starting HTTP Server (Gin), Addr %s, branch %s, version %s", s.server.Addr, s.env.Branch(), s.env.Version())
	return s.server.ListenAndServe()
}

// Stop 停止 HTTP 服务器
func (s *HTTPGinServer) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Addr 监听地址
func (s *HTTPGinServer) Addr() string {
	return s.server.Addr
}
