// SPDX-License-Identifier: MPL-2.0

// Package linuxbls discovers Linux installations through the Boot Loader
// Specification convention: type #1 entry files under /loader/entries.
package linuxbls

import (
	"errors"
	"fmt"
	"strings"

	"loadstone/pkg/bootentry"
	"loadstone/pkg/bootfs"
)

const (
	// entriesDir is the well-known BLS entries directory, relative to the
	// filesystem root.
	entriesDir = "loader/entries"

	confSuffix = ".conf"
	autoPrefix = "auto-"
)

// Sink receives scan diagnostics. Diagnostics are values, not log lines, so
// the rendering policy stays with the caller.
type Sink func(bootentry.Diagnostic)

// Plugin is the BLS reference plugin.
type Plugin struct {
	report Sink
}

// New returns a BLS plugin. sink may be nil, in which case diagnostics are
// discarded.
func New(sink Sink) *Plugin {
	if sink == nil {
		sink = func(bootentry.Diagnostic) {}
	}
	return &Plugin{report: sink}
}

// Name implements bootentry.Plugin.
func (p *Plugin) Name() string { return "linux-bls" }

// Revision implements bootentry.Plugin.
func (p *Plugin) Revision() int { return bootentry.Revision }

// GetBootEntries implements bootentry.Plugin.
func (p *Plugin) GetBootEntries(fs bootfs.Filesystem, prescanName string) ([]*bootentry.Entry, error) {
	// No custom entries. prescanName is invalid for a nil filesystem and is
	// ignored here.
	if fs == nil {
		return nil, bootentry.ErrNotFound
	}

	// Skip Apple filesystems before opening anything, mainly to avoid
	// needlessly scanning multiple APFS partitions.
	if fs.Policy().AppleFS() {
		p.report(bootentry.Diagnostic{
			Severity: bootentry.SeverityInfo,
			Code:     "apple_filesystem_skipped",
			Message:  fmt.Sprintf("not scanning Apple filesystem on %q", fs.Device()),
			Plugin:   p.Name(),
			Device:   fs.Device(),
		})
		return nil, bootentry.ErrNotFound
	}

	return p.scanLoaderEntries(fs, prescanName)
}

// scanLoaderEntries runs one pass over the entries directory.
func (p *Plugin) scanLoaderEntries(fs bootfs.Filesystem, prescanName string) ([]*bootentry.Entry, error) {
	dir, err := fs.OpenDir(entriesDir)
	if err != nil {
		if errors.Is(err, bootfs.ErrNotDir) {
			// A same-named regular file in place of the entries directory
			// is a structural fault, unlike plain absence.
			return nil, fmt.Errorf("%s: %w", entriesDir, bootentry.ErrInvalidParameter)
		}
		// Absence of the directory, or any other open failure, is the
		// normal case for non-Linux volumes.
		return nil, bootentry.ErrNotFound
	}
	defer func() {
		// Reset before closing regardless of outcome, leaving the handle
		// conventionally reusable.
		_ = dir.SetPosition(0)
		_ = dir.Close()
	}()

	if err := dir.SetPosition(0); err != nil {
		return nil, bootentry.ErrNotFound
	}

	var entries []*bootentry.Entry

	for {
		rec, err := dir.ReadNext()
		if err != nil {
			// Keep whatever was found up to the problem record. At least
			// one HFS+ driver signals exhaustion with a short result
			// instead of the documented buffer-too-small status, and that
			// quirk must not discard prior progress.
			p.report(bootentry.Diagnostic{
				Severity: bootentry.SeverityWarning,
				Code:     bootentry.CodeTruncatedRead,
				Message:  fmt.Sprintf("directory read failed on %q, keeping %d entries found so far", fs.Device(), len(entries)),
				Plugin:   p.Name(),
				Device:   fs.Device(),
				Cause:    err,
			})
			break
		}
		if rec == nil {
			break
		}

		// Skip directories, ".*" and "auto-*" files, and anything not
		// ending in ".conf"; case sensitive, following systemd-boot logic.
		if rec.IsDir ||
			strings.HasPrefix(rec.Name, ".") ||
			strings.HasPrefix(rec.Name, autoPrefix) ||
			!strings.HasSuffix(rec.Name, confSuffix) {
			continue
		}

		p.report(bootentry.Diagnostic{
			Severity: bootentry.SeverityInfo,
			Code:     "bls_candidate",
			Message:  fmt.Sprintf("scanning %s", rec.Name),
			Plugin:   p.Name(),
			Device:   fs.Device(),
		})

		entry, err := p.buildEntry(fs, rec.Name)
		if err != nil {
			p.report(bootentry.Diagnostic{
				Severity: bootentry.SeverityWarning,
				Code:     bootentry.CodeConfSkipped,
				Message:  fmt.Sprintf("skipping %s: %v", rec.Name, err),
				Plugin:   p.Name(),
				Device:   fs.Device(),
				Cause:    err,
			})
			continue
		}

		if prescanName != "" {
			// Only the first entry with the requested name, in enumeration
			// order, is returned.
			if entry.Name == prescanName {
				return []*bootentry.Entry{entry}, nil
			}
			continue
		}

		entries = append(entries, entry)
	}

	if len(entries) == 0 {
		return nil, bootentry.ErrNotFound
	}
	return entries, nil
}

// buildEntry parses one BLS entry file into a boot entry.
func (p *Plugin) buildEntry(fs bootfs.Filesystem, filename string) (*bootentry.Entry, error) {
	path := entriesDir + "/" + filename

	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, err
	}

	conf, err := parseConf(data)
	if err != nil {
		return nil, err
	}
	if conf.Linux == "" {
		return nil, errors.New("entry has no linux key")
	}

	name := conf.Title
	if name == "" {
		name = strings.TrimSuffix(filename, confSuffix)
	}

	entry, err := bootentry.NewEntry(name, bootentry.KindPlugin, fs.Device(), path)
	if err != nil {
		return nil, err
	}
	entry.Kernel = conf.Linux
	entry.Initrd = strings.Join(conf.Initrd, " ")
	entry.Options = strings.Join(conf.Options, " ")
	entry.Version = conf.Version
	return entry, nil
}
