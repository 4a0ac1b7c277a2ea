package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// pingCmd 检查 Jenkins 连接与凭据
var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check the Jenkins connection",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newJenkinsProvider()
		if err != nil {
			return err
		}

		if err := p.HealthCheck(cmd.Context()); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✅ Connected to Jenkins at %s\n", cfg.Jenkins.URL)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pingCmd)
}
