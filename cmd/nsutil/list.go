package main

import (
	"github.com/aretw0/nsutil/internal/cli"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the registered prefixes and exit",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		return cli.List(cmd.Context(), runOptions(cmd, cfg))
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
