// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"
	"strings"

	"loadstone/internal/config"
	"loadstone/internal/osfs"
	"loadstone/internal/plugins/customentry"
	"loadstone/internal/plugins/linuxbls"
	"loadstone/pkg/bootentry"
	"loadstone/pkg/bootfs"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	scanOutput  string
	scanPrescan string
	scanApple   bool

	scanCmd = &cobra.Command{
		Use:   "scan [mountpoint...]",
		Short: "Discover boot entries",
		Long: `Discover boot entries on the given mounted volumes.

Each mountpoint is scanned by every registered boot-entry plugin; the
custom entries configured under 'entries' and 'tools' are always
included. Diagnostics from plugins are logged to stderr and never abort
the scan.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, args)
		},
	}
)

func init() {
	scanCmd.Flags().StringVarP(&scanOutput, "output", "o", "text", "output format: text, json, yaml, or toml")
	scanCmd.Flags().StringVar(&scanPrescan, "match", "", "stop at the first entry with this exact name")
	scanCmd.Flags().BoolVar(&scanApple, "apple", false, "treat the given mountpoints as Apple filesystems")
}

// newScanLogger builds the stderr logger diagnostics are reported through.
func newScanLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "scan",
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// buildRegistry registers the built-in plugins. Diagnostics emitted during
// plugin scans flow through sink.
func buildRegistry(cfg *config.Config, sink func(bootentry.Diagnostic)) (*bootentry.Registry, error) {
	reg := bootentry.NewRegistry()
	if err := reg.Register(linuxbls.New(sink)); err != nil {
		return nil, err
	}
	if err := reg.Register(customentry.New(cfg)); err != nil {
		return nil, err
	}
	return reg, nil
}

func runScan(cmd *cobra.Command, mountpoints []string) error {
	logger := newScanLogger()
	sink := func(d bootentry.Diagnostic) { logDiagnostic(logger, d) }

	reg, err := buildRegistry(cfg, sink)
	if err != nil {
		return fmt.Errorf("failed to set up plugins: %w", err)
	}

	var policy bootfs.PolicyFlags
	if scanApple {
		policy = bootfs.PolicyAPFS
	}

	var entries []*bootentry.Entry

	// Custom entries first: they behave like natively configured entries
	// and win name collisions against scanner output.
	custom, diags, err := reg.CollectNamed(bootfs.CustomEntries, scanPrescan)
	logDiagnostics(logger, diags)
	if err != nil {
		logger.Warn("custom entry pass failed", "err", err)
	}
	entries = append(entries, custom...)

	for _, mp := range mountpoints {
		fs := osfs.New(mp, mp, policy)
		found, diags, err := reg.CollectNamed(fs, scanPrescan)
		logDiagnostics(logger, diags)
		if err != nil {
			logger.Warn("volume scan failed", "mountpoint", mp, "err", err)
		}
		merged, mergeDiags := bootentry.Merge(entries, found)
		logDiagnostics(logger, mergeDiags)
		entries = merged
	}

	return renderEntries(cmd.OutOrStdout(), entries, scanOutput)
}

// logDiagnostic maps a discovery diagnostic onto the structured logger.
// Info-severity diagnostics are progress chatter and only show up with -v.
func logDiagnostic(logger *log.Logger, d bootentry.Diagnostic) {
	kv := []any{"code", d.Code}
	if d.Plugin != "" {
		kv = append(kv, "plugin", d.Plugin)
	}
	if d.Device != "" {
		kv = append(kv, "device", d.Device)
	}
	if d.Cause != nil {
		kv = append(kv, "err", d.Cause)
	}

	switch d.Severity {
	case bootentry.SeverityError:
		logger.Error(d.Message, kv...)
	case bootentry.SeverityWarning:
		logger.Warn(d.Message, kv...)
	default:
		logger.Debug(d.Message, kv...)
	}
}

func logDiagnostics(logger *log.Logger, diags []bootentry.Diagnostic) {
	for _, d := range diags {
		logDiagnostic(logger, d)
	}
}

// summarizeEntry is the single-line text rendering of one entry.
func summarizeEntry(e *bootentry.Entry) string {
	var b strings.Builder
	b.WriteString(EntryStyle.Render(e.Name))
	b.WriteString(VerboseStyle.Render(" [" + e.Kind.String() + "]"))
	if e.DevicePath != "" {
		b.WriteString(SubtitleStyle.Render(" on " + e.DevicePath))
	}
	if e.Version != "" {
		b.WriteString(SubtitleStyle.Render(" (" + e.Version + ")"))
	}
	return b.String()
}
