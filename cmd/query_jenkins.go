package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"cnb.cool/zhiqiangwang/pkg/logx"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/eryajf/jenkins-demo/internal/provider"
	"github.com/spf13/cobra"
)

var (
	jenkinsOutputType string
	jenkinsPageSize   int
	jenkinsPageNum    int
)

// listCmd 列出所有 Job
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List Jenkins jobs",
	Long:  `列出 Jenkins 中的所有 Job,文件夹会被跳过。`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newJenkinsProvider()
		if err != nil {
			return err
		}

		opts := &provider.QueryOptions{
			PageSize: jenkinsPageSize,
			PageNum:  jenkinsPageNum,
		}

		list, err := p.ListJobs(cmd.Context(), opts)
		if err != nil {
			return fmt.Errorf("failed to list jobs: %w", err)
		}

		out := cmd.OutOrStdout()

		if jenkinsOutputType == "json" {
			return writeJSON(out, list)
		}

		rows := make([][]string, 0, len(list.Items))
		for _, job := range list.Items {
			buildable := "✓"
			if !job.Buildable {
				buildable = "✗"
			}

			lastBuild := "-"
			if job.LastBuild != nil {
				lastBuild = fmt.Sprintf("#%d", job.LastBuild.Number)
			}

			rows = append(rows, []string{job.Name, job.DisplayName, lastBuild, buildable})
		}

		fmt.Fprintln(out, newTable("Name", "Display Name", "Last Build", "Buildable").Rows(rows...))
		logx.Info("Query completed, count %d, total %d", len(list.Items), list.PageInfo.Total)

		return nil
	},
}

// buildsCmd 列出 Build 历史
var buildsCmd = &cobra.Command{
	Use:   "builds <job-name>",
	Short: "List recent builds of a job",
	Long:  `列出指定 Job 最近的构建历史,数量由 --page-size 控制。`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		jobName := args[0]

		p, err := newJenkinsProvider()
		if err != nil {
			return err
		}

		builds, err := p.GetJobBuilds(cmd.Context(), jobName, jenkinsPageSize)
		if err != nil {
			return fmt.Errorf("failed to list builds: %w", err)
		}

		out := cmd.OutOrStdout()

		if jenkinsOutputType == "json" {
			return writeJSON(out, builds)
		}

		rows := make([][]string, 0, len(builds))
		for _, build := range builds {
			timestamp := "-"
			if !build.Timestamp.IsZero() {
				timestamp = build.Timestamp.Format("2006-01-02 15:04:05")
			}

			rows = append(rows, []string{
				fmt.Sprintf("#%d", build.Number),
				build.Status,
				build.Result,
				timestamp,
				fmt.Sprintf("%dms", build.Duration),
			})
		}

		fmt.Fprintln(out, newTable("Build", "Status", "Result", "Timestamp", "Duration").Rows(rows...))
		logx.Info("Query completed, job %s, count %d", jobName, len(builds))

		return nil
	},
}

// newTable 统一的表格样式
func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("99"))).
		Headers(headers...)
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(buildsCmd)

	for _, c := range []*cobra.Command{listCmd, buildsCmd} {
		c.Flags().IntVar(&jenkinsPageSize, "page-size", 10, "分页大小")
		c.Flags().StringVarP(&jenkinsOutputType, "output", "o", "table", "输出格式 (table, json)")
	}
	listCmd.Flags().IntVar(&jenkinsPageNum, "page-num", 1, "页码")
}
