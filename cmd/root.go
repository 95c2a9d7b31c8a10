package cmd

import (
	"github.com/spf13/cobra"

	"github.com/clawpad/clawpad/config"
)

// SetVersion records the build info injected through ldflags.
func SetVersion(version, commit string) {
	config.SetBuildInfo(version, commit)
}

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "clawpad",
		Short:        "Clawpad backend: Solana data proxy and agent leaderboard",
		SilenceUsage: true,
	}

	cmd.AddCommand(apiCmd())
	cmd.AddCommand(migrateCmd())

	return cmd
}
