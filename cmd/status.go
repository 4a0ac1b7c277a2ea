package cmd

import (
	"fmt"
	"io"

	"github.com/eryajf/jenkins-demo/internal/model"
	"github.com/spf13/cobra"
)

// statusCmd 查询 Jenkins Job 状态
var statusCmd = &cobra.Command{
	Use:   "status [job-name]",
	Short: "Get job status",
	Long:  `查询 Jenkins Job 的名称、是否可构建以及最近一次构建,未指定时使用默认 Job。`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		jobName := jobNameArg(args)

		p, err := newJenkinsProvider()
		if err != nil {
			return err
		}

		status, err := p.GetJobStatus(cmd.Context(), jobName)
		if err != nil {
			return err
		}

		printJobStatus(cmd.OutOrStdout(), jobName, status)
		return nil
	},
}

// printJobStatus 只打印响应中存在的字段
func printJobStatus(w io.Writer, jobName string, status *model.JobStatus) {
	fmt.Fprintf(w, "📊 Job Status for '%s':\n", jobName)

	if status.Name != nil {
		fmt.Fprintf(w, "   Name: %s\n", *status.Name)
	}
	if status.Buildable != nil {
		fmt.Fprintf(w, "   Buildable: %t\n", *status.Buildable)
	}
	if lb := status.LastBuild; lb != nil {
		if lb.Number != nil {
			fmt.Fprintf(w, "   Last Build: #%d\n", *lb.Number)
		}
		if lb.URL != nil {
			fmt.Fprintf(w, "   Last Build URL: %s\n", *lb.URL)
		}
	}
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
