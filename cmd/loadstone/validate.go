// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"loadstone/internal/config"
	"loadstone/internal/issue"
	"loadstone/internal/validate"

	"github.com/spf13/cobra"
)

var (
	validateOutput string

	validateCmd = &cobra.Command{
		Use:   "validate",
		Short: "Validate the loader configuration",
		Long: `Validate the loader configuration.

The file is first checked structurally against the configuration schema,
then semantically: character policies for firmware paths, name length
limits, NVRAM GUID syntax, and duplicate entries, tools, and drivers.
Exits non-zero when any error-severity finding is present.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd)
		},
	}
)

func init() {
	validateCmd.Flags().StringVarP(&validateOutput, "output", "o", "text", "output format: text, json, yaml, or toml")
}

func runValidate(cmd *cobra.Command) error {
	// Re-load explicitly instead of trusting initRootConfig: that hook
	// swallows load errors so other commands can run on defaults, but
	// validate must report them.
	loaded, err := config.Load(cfgFile)
	if err != nil {
		return &ExitError{Code: 1, Err: issue.NewErrorContext().
			WithOperation("load configuration").
			WithResource(cfgFile).
			WithSuggestion("Run 'loadstone explain config_load_failed' for details").
			Wrap(err).
			Build()}
	}

	result := validate.CheckAll(loaded)
	if err := renderFindings(cmd.OutOrStdout(), result, validateOutput); err != nil {
		return err
	}
	if !result.OK() {
		return &ExitError{Code: 1}
	}
	return nil
}
