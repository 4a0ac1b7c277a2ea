package server

import (
	"net/http"
	"time"

	"github.com/eryajf/jenkins-demo/internal/model"
	"github.com/gin-gonic/gin"
)

const appMessage = "Hello from Jenkins Demo App"

// handleRoot 问候语,包含当前分支
func (s *HTTPGinServer) handleRoot(c *gin.Context) {
	c.String(http.StatusOK, "Hello, 2024 Kubernetes！I'm from Jenkins CI！\n分支: %s\n", s.env.Branch())
}

// handleHealth 存活探针,不检查任何依赖
func (s *HTTPGinServer) handleHealth(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

func (s *HTTPGinServer) handleInfo(c *gin.Context) {
	c.JSON(http.StatusOK, model.AppInfo{
		Message:   appMessage,
		Branch:    s.env.Branch(),
		Timestamp: time.Now().UTC(),
		Version:   s.env.Version(),
	})
}
