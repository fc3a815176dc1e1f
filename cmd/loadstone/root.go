// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for loadstone.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"loadstone/internal/config"
	"loadstone/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables verbose output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string

	// cfg is the loaded configuration, populated by initRootConfig.
	cfg *config.Config

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "loadstone",
		Short: "Boot-entry discovery and configuration tooling",
		Long: TitleStyle.Render("loadstone") + SubtitleStyle.Render(" - Boot-entry discovery and configuration tooling") + `

loadstone discovers bootable operating systems through pluggable
boot-entry scanners (Boot Loader Specification entries, user-defined
custom entries) and validates loader configuration files before they
reach the firmware.

` + SubtitleStyle.Render("Examples:") + `
  loadstone scan /boot            Discover boot entries on a mounted volume
  loadstone scan                  List configured custom entries only
  loadstone validate              Check the loader configuration
  loadstone explain plugin_fault  Show remediation docs for a diagnostic`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/loadstone/config.yaml)")

	// Add subcommands
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(explainCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// initRootConfig loads the configuration file, if any.
func initRootConfig() {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		// Surface load errors but keep going on defaults; validate exists
		// precisely so broken configs can still be inspected.
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
		cfg = config.DefaultConfig()
	}
}

// formatErrorForDisplay formats an error for user display. ActionableErrors
// use their own Format; verbose mode shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
