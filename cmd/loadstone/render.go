// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"loadstone/internal/validate"
	"loadstone/pkg/bootentry"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// entryReport is the machine-readable wrapper around a scan result.
type entryReport struct {
	Entries []*bootentry.Entry `json:"entries" yaml:"entries" toml:"entries"`
}

// renderEntries writes the scan result in the requested format. The text
// format is for humans; json, yaml, and toml are stable machine formats.
func renderEntries(w io.Writer, entries []*bootentry.Entry, format string) error {
	switch format {
	case "text", "":
		if len(entries) == 0 {
			fmt.Fprintln(w, SubtitleStyle.Render("no boot entries found"))
			return nil
		}
		for _, e := range entries {
			fmt.Fprintln(w, summarizeEntry(e))
			if verbose && e.Kernel != "" {
				fmt.Fprintln(w, VerboseStyle.Render("    kernel  "+e.Kernel))
				if e.Initrd != "" {
					fmt.Fprintln(w, VerboseStyle.Render("    initrd  "+e.Initrd))
				}
				if e.Options != "" {
					fmt.Fprintln(w, VerboseStyle.Render("    options "+e.Options))
				}
			}
		}
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entryReport{Entries: entries})
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(entryReport{Entries: entries})
	case "toml":
		return toml.NewEncoder(w).Encode(entryReport{Entries: entries})
	default:
		return fmt.Errorf("unknown output format %q (want text, json, yaml, or toml)", format)
	}
}

// renderFindings writes a validation result in the requested format.
func renderFindings(w io.Writer, result *validate.Result, format string) error {
	switch format {
	case "text", "":
		for _, f := range result.Findings {
			style := WarningStyle
			if f.Severity == validate.SeverityError {
				style = ErrorStyle
			}
			loc := ""
			if f.Location != "" {
				loc = " " + EntryStyle.Render(f.Location)
			}
			fmt.Fprintf(w, "%s%s: %s\n", style.Render(f.Severity.String()), loc, f.Message)
		}
		if result.OK() {
			fmt.Fprintln(w, SuccessStyle.Render("configuration is valid"))
		} else {
			fmt.Fprintln(w, ErrorStyle.Render(fmt.Sprintf("%d error(s) found", result.ErrorCount())))
		}
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(result)
	case "toml":
		return toml.NewEncoder(w).Encode(result)
	default:
		return fmt.Errorf("unknown output format %q (want text, json, yaml, or toml)", format)
	}
}
