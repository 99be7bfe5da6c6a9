package main

import (
	"fmt"
	"os"

	"github.com/aretw0/nsutil/internal/cli"
	"github.com/aretw0/nsutil/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "nsutil [bulk-file]",
	Short: "nsutil manages namespace prefix bindings",
	Long: `nsutil imports prefix definitions from a file, asking before each new or
conflicting binding, and then lets you register existing URIs under new
prefixes until input ends (ctrl-d).

The bulk file is either a YAML/JSON mapping of prefix to URI or one
"prefix:uri" per line.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		opts := runOptions(cmd, cfg)
		if len(args) > 0 {
			opts.Source = args[0]
		}
		return cli.Execute(cmd.Context(), opts)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	flags := rootCmd.PersistentFlags()
	flags.String("registry", config.DefaultRegistry, "Namespace store (memory:, file:<path>, sqlite:<path>, redis://..., loam:<dir>)")
	flags.String("format", "auto", "Bulk file format: auto, structured or lines")
	flags.Bool("debug", false, "Write debug logs to stderr")
	flags.String("metrics-file", "", "Write Prometheus metrics to this file on exit")
	flags.String("config", "", "Config file (default is .nsutil/config.yaml)")
	flags.Bool("plain", false, "Disable colors and markdown rendering")
	flags.Bool("echo", false, "Echo input lines (useful with piped input)")
	flags.Bool("dry-run", false, "Keep every write in memory; the registry is left untouched")
	flags.Duration("lease", 0, "Hold a single-writer lease on the registry, renewed on every access (redis only)")
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var opts []config.Option
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		opts = append(opts, config.WithConfigFile(path))
	}
	return config.Load(cmd.Flags(), opts...)
}

func runOptions(cmd *cobra.Command, cfg *config.Config) cli.RunOptions {
	return cli.RunOptions{
		Config:  cfg,
		Version: version(),
		Stdin:   cmd.InOrStdin(),
		Stdout:  cmd.OutOrStdout(),
	}
}
