package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/eryajf/jenkins-demo/internal/config"
	"github.com/eryajf/jenkins-demo/internal/provider"
	"github.com/eryajf/jenkins-demo/internal/provider/jenkins"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *config.Config
)

// errUsage 缺少或未知的子命令,用法已经打印过
var errUsage = errors.New("invalid usage")

// rootCmd 根命令
var rootCmd = &cobra.Command{
	Use:   "jenkins-demo",
	Short: "Jenkins CLI Tool",
	Long:  `触发 Jenkins 构建、查询任务状态,并提供一个演示用的 HTTP 服务。`,
	Args:  cobra.ArbitraryArgs,

	SilenceErrors: true,
	SilenceUsage:  true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.LoadConfig(cfgFile, cmd.Flags())
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = c
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			fmt.Fprintf(cmd.ErrOrStderr(), "❌ Unknown command: %s\n", args[0])
		}
		printUsage(cmd.OutOrStdout())
		return errUsage
	},
}

// helpCmd 替换 cobra 默认的 help 命令
var helpCmd = &cobra.Command{
	Use:   "help [command]",
	Short: "Show this help",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			if target, _, err := rootCmd.Find(args); err == nil && target != rootCmd {
				return target.Help()
			}
		}
		printUsage(cmd.OutOrStdout())
		return nil
	},
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetHelpCommand(helpCmd)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "配置文件路径 (默认查找 ./config.yaml)")
	rootCmd.PersistentFlags().String("url", "", "Jenkins 地址 (JENKINS_URL)")
	rootCmd.PersistentFlags().String("username", "", "Jenkins 用户名 (JENKINS_USERNAME)")
	rootCmd.PersistentFlags().String("token", "", "Jenkins API Token (JENKINS_TOKEN)")
	rootCmd.PersistentFlags().Duration("timeout", config.DefaultTimeout, "请求超时时间 (JENKINS_TIMEOUT)")
}

// printUsage 打印用法
func printUsage(w io.Writer) {
	defaultJob := config.DefaultJob
	if cfg != nil && cfg.Jenkins.Job != "" {
		defaultJob = cfg.Jenkins.Job
	}

	fmt.Fprintln(w, "Jenkins CLI Tool")
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  jenkins-demo job [job-name]         - Trigger a Jenkins job")
	fmt.Fprintln(w, "  jenkins-demo status [job-name]      - Get job status")
	fmt.Fprintln(w, "  jenkins-demo list                   - List Jenkins jobs")
	fmt.Fprintln(w, "  jenkins-demo builds <job-name>      - List recent builds of a job")
	fmt.Fprintln(w, "  jenkins-demo ping                   - Check the Jenkins connection")
	fmt.Fprintln(w, "  jenkins-demo serve                  - Run the demo HTTP server")
	fmt.Fprintln(w, "  jenkins-demo help                   - Show this help")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Default job: %s\n", defaultJob)
}

// jobNameArg 取第一个位置参数,缺省使用配置中的默认 Job
func jobNameArg(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	return cfg.Jenkins.Job
}

// newJenkinsProvider 校验配置并初始化 Jenkins Provider
func newJenkinsProvider() (provider.CICDProvider, error) {
	if err := cfg.Jenkins.Validate(); err != nil {
		return nil, err
	}

	p, err := provider.GetCICDProvider(jenkins.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to get jenkins provider: %w", err)
	}

	providerConfig := map[string]any{
		"url":      cfg.Jenkins.URL,
		"username": cfg.Jenkins.Username,
		"token":    cfg.Jenkins.Token,
		"timeout":  cfg.Jenkins.Timeout,
	}

	if err := p.Initialize(providerConfig); err != nil {
		return nil, fmt.Errorf("failed to initialize jenkins provider: %w", err)
	}

	return p, nil
}

// run 执行命令并返回进程退出码
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintf(stderr, "❌ Error: %v\n", err)
		}
		return 1
	}
	return 0
}

// Execute 命令行入口
func Execute() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}
