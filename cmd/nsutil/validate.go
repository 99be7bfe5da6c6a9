package main

import (
	"fmt"

	"github.com/aretw0/nsutil/internal/validator"
	"github.com/aretw0/nsutil/pkg/domain"
	"github.com/aretw0/nsutil/pkg/source"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <bulk-file>",
	Short: "Check a bulk file without importing it",
	Long:  `Parses the bulk file and reports malformed entries, prefixes the registry would reject and prefixes defined twice with different URIs.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		res, err := source.NewParser(cfg.SourceFormat()).Load(args[0])
		if err != nil {
			return err
		}
		if err := validator.ValidateSource(res, domain.DefaultPolicy()); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s is valid: %d entries (%s)\n", args[0], len(res.Entries), res.Format)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
