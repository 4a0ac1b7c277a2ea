package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cnb.cool/zhiqiangwang/pkg/logx"
	"github.com/eryajf/jenkins-demo/internal/config"
	"github.com/eryajf/jenkins-demo/internal/server"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 5 * time.Second

// serveCmd 启动 demo HTTP 服务
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the demo HTTP server",
	Long:  `在 0.0.0.0:$PORT 上提供 /、/health、/api/info、/metrics 四个端点。`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		srv := server.NewHTTPGinServer(cfg.Server, config.NewAppEnv())

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			errCh <- srv.Start()
		}()

		select {
		case err := <-errCh:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return fmt.Errorf("HTTP server failed: %w", err)
		case <-ctx.Done():
		}

		logx.Info("Shutting down HTTP server, addr %s", srv.Addr())

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Stop(shutdownCtx); err != nil {
			return fmt.Errorf("failed to stop HTTP server: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
