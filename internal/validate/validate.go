// SPDX-License-Identifier: MPL-2.0

// Package validate applies semantic rules to a structurally valid loader
// configuration: character policies, size limits, and duplicate detection
// that the CUE schema cannot express.
package validate

import (
	"fmt"

	"loadstone/internal/config"
)

// Severity ranks a finding.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// MarshalText renders the severity as its name in json, yaml, and toml output.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Finding is one rule violation, located by a config-tree path such as
// "entries[1].path".
type Finding struct {
	Severity Severity `json:"severity" yaml:"severity"`
	Code     string   `json:"code" yaml:"code"`
	Location string   `json:"location" yaml:"location"`
	Message  string   `json:"message" yaml:"message"`
}

// Result collects findings across checkers.
type Result struct {
	Findings []Finding `json:"findings" yaml:"findings"`
}

// ErrorCount returns the number of error-severity findings.
func (r *Result) ErrorCount() int {
	n := 0
	for _, f := range r.Findings {
		if f.Severity == SeverityError {
			n++
		}
	}
	return n
}

// OK reports whether the configuration passed without errors. Warnings do
// not fail validation.
func (r *Result) OK() bool { return r.ErrorCount() == 0 }

func (r *Result) errorf(code, location, format string, args ...any) {
	r.Findings = append(r.Findings, Finding{
		Severity: SeverityError,
		Code:     code,
		Location: location,
		Message:  fmt.Sprintf(format, args...),
	})
}

func (r *Result) warnf(code, location, format string, args ...any) {
	r.Findings = append(r.Findings, Finding{
		Severity: SeverityWarning,
		Code:     code,
		Location: location,
		Message:  fmt.Sprintf(format, args...),
	})
}

// checker validates one configuration section.
type checker func(cfg *config.Config, r *Result)

// CheckAll runs every section checker and returns the combined result.
func CheckAll(cfg *config.Config) *Result {
	r := &Result{}
	if cfg == nil {
		r.errorf("nil_config", "", "no configuration to validate")
		return r
	}

	checkers := []checker{
		checkBootloader,
		checkEntries,
		checkTools,
		checkDrivers,
		checkNVRAM,
	}
	for _, check := range checkers {
		check(cfg, r)
	}
	return r
}

func checkBootloader(cfg *config.Config, r *Result) {
	b := cfg.Bootloader
	switch b.Picker {
	case config.PickerBuiltin, config.PickerExternal, config.PickerApple, "":
	default:
		r.errorf("invalid_picker", "bootloader.picker",
			"picker %q is not one of builtin, external, apple", b.Picker)
	}
	if b.Timeout < 0 {
		r.errorf("negative_timeout", "bootloader.timeout",
			"timeout %d is negative", b.Timeout)
	}
	if b.HideAuxiliary && !hasAuxiliary(cfg.Entries) && !hasAuxiliary(cfg.Tools) {
		r.warnf("hide_auxiliary_unused", "bootloader.hide_auxiliary",
			"hide_auxiliary is set but no entry or tool is marked auxiliary")
	}
}

func hasAuxiliary(entries []config.CustomEntry) bool {
	for _, e := range entries {
		if e.Auxiliary {
			return true
		}
	}
	return false
}

func checkEntries(cfg *config.Config, r *Result) {
	checkCustomSection(cfg.Entries, "entries", r)
}

func checkTools(cfg *config.Config, r *Result) {
	checkCustomSection(cfg.Tools, "tools", r)
}

func checkCustomSection(entries []config.CustomEntry, section string, r *Result) {
	for i, e := range entries {
		loc := fmt.Sprintf("%s[%d]", section, i)
		if e.Name == "" {
			r.errorf("empty_name", loc+".name", "entry has no name")
		}
		if len([]rune(e.Name)) > maxEntryName {
			r.errorf("name_too_long", loc+".name",
				"name exceeds %d characters", maxEntryName)
		}
		if e.Path == "" {
			r.errorf("empty_path", loc+".path", "entry has no path")
		} else if !isLegalPath(e.Path) {
			r.errorf("illegal_path", loc+".path",
				"path %q contains characters outside 0-9, A-Z, a-z, '_', '-', '.', '/', and '\\'", e.Path)
		}
		if !isPrintableASCII(e.Comment) {
			r.warnf("non_ascii_comment", loc+".comment",
				"comment contains non-printable or non-ASCII characters")
		}
		if !isPrintableASCII(e.Arguments) {
			r.errorf("non_ascii_arguments", loc+".arguments",
				"arguments contain non-printable or non-ASCII characters")
		}
	}

	// Two entries naming the same target with the same arguments are
	// redundant even when their display names differ.
	findDuplicates(entries, func(a, b config.CustomEntry) bool {
		return a.Path != "" && a.Path == b.Path && a.Arguments == b.Arguments
	}, func(i, j int) {
		r.errorf("duplicate_entry", fmt.Sprintf("%s[%d]", section, j),
			"duplicates %s[%d]: same path %q and arguments", section, i, entries[i].Path)
	})
}

func checkDrivers(cfg *config.Config, r *Result) {
	for i, d := range cfg.Drivers {
		loc := fmt.Sprintf("drivers[%d]", i)
		if d == "" {
			r.errorf("empty_driver", loc, "driver has no path")
			continue
		}
		if !isLegalPath(d) {
			r.errorf("illegal_path", loc,
				"driver path %q contains illegal characters", d)
		}
		if !hasEFISuffix(d) {
			r.warnf("driver_suffix", loc,
				"driver %q does not end in .efi", d)
		}
	}

	findDuplicates(cfg.Drivers, func(a, b string) bool {
		return a != "" && a == b
	}, func(i, j int) {
		r.errorf("duplicate_driver", fmt.Sprintf("drivers[%d]", j),
			"duplicates drivers[%d]: %q", i, cfg.Drivers[i])
	})
}

func checkNVRAM(cfg *config.Config, r *Result) {
	for guid, vars := range cfg.NVRAM {
		loc := "nvram." + guid
		if !isGUID(guid) {
			r.errorf("invalid_guid", loc,
				"%q is not a GUID of the form xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx", guid)
		}
		for name := range vars {
			if name == "" {
				r.errorf("empty_variable", loc, "variable with empty name")
			}
		}
	}
}
