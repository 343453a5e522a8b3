package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "colibri-verify",
	Short:        "Run the C4 stateless Ethereum light-client verifier against a chain registry and a sync_data blob",
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(bootstrapCmd())
}

func Execute() error {
	return rootCmd.Execute()
}
