package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// triggerParameters 每次触发都会携带的固定参数
var triggerParameters = map[string]string{
	"BRANCH_NAME": "master",
	"BUILD_TYPE":  "release",
}

// jobCmd 触发 Jenkins Job
var jobCmd = &cobra.Command{
	Use:   "job [job-name]",
	Short: "Trigger a Jenkins job",
	Long:  `以固定参数 BRANCH_NAME=master、BUILD_TYPE=release 触发 Jenkins Job,未指定时使用默认 Job。`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		jobName := jobNameArg(args)
		out := cmd.OutOrStdout()

		fmt.Fprintf(out, "🚀 Triggering Jenkins job: %s\n", jobName)

		p, err := newJenkinsProvider()
		if err != nil {
			return err
		}

		result, err := p.TriggerJob(cmd.Context(), jobName, triggerParameters)
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "✅ Job '%s' triggered successfully\n", jobName)
		if result.QueueURL != "" {
			fmt.Fprintf(out, "📍 Queue URL: %s\n", result.QueueURL)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(jobCmd)
}
