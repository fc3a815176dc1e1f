// SPDX-License-Identifier: MPL-2.0

// Package customentry exposes user-defined boot entries from the loader
// configuration through the boot-entry plugin contract. Unlike scanners it
// produces entries only for the custom-entries pass (nil filesystem) and
// reports nothing for real volumes.
package customentry

import (
	"loadstone/internal/config"
	"loadstone/pkg/bootentry"
	"loadstone/pkg/bootfs"
)

// Plugin serves the entries and tools sections of the loader configuration.
type Plugin struct {
	entries []config.CustomEntry
	tools   []config.CustomEntry
}

// New builds a plugin over the given configuration. The configuration is
// captured by value at construction; later edits to cfg are not observed.
func New(cfg *config.Config) *Plugin {
	p := &Plugin{}
	if cfg != nil {
		p.entries = append(p.entries, cfg.Entries...)
		p.tools = append(p.tools, cfg.Tools...)
	}
	return p
}

func (p *Plugin) Name() string { return "custom-entry" }

func (p *Plugin) Revision() int { return bootentry.Revision }

// GetBootEntries returns the configured custom entries when fs is nil and
// ErrNotFound otherwise. Disabled entries are skipped; the prescan name is
// ignored on the custom pass per the plugin contract.
func (p *Plugin) GetBootEntries(fs bootfs.Filesystem, prescanName string) ([]*bootentry.Entry, error) {
	if fs != nil {
		return nil, bootentry.ErrNotFound
	}

	var out []*bootentry.Entry
	for _, src := range p.entries {
		if e := convert(src); e != nil {
			out = append(out, e)
		}
	}
	for _, src := range p.tools {
		if e := convert(src); e != nil {
			out = append(out, e)
		}
	}
	if len(out) == 0 {
		return nil, bootentry.ErrNotFound
	}
	return out, nil
}

func convert(src config.CustomEntry) *bootentry.Entry {
	if !src.Enabled {
		return nil
	}
	e, err := bootentry.NewEntry(src.Name, bootentry.KindCustom, "", src.Path)
	if err != nil {
		// Nameless entries are caught by validation; skip them here.
		return nil
	}
	e.Options = src.Arguments
	return e
}
