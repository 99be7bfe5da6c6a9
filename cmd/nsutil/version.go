package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/nsutil"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of nsutil",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "nsutil version %s\n", version())
	},
}

func version() string {
	return strings.TrimSpace(nsutil.Version)
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
