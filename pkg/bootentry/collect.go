// SPDX-License-Identifier: MPL-2.0

package bootentry

import (
	"errors"
	"fmt"

	"loadstone/pkg/bootfs"
)

// Collect invokes every registered plugin against one scan target, in
// registration order, and returns the concatenated entries. It is
// CollectNamed without a prescan filter.
func (r *Registry) Collect(fs bootfs.Filesystem) ([]*Entry, []Diagnostic, error) {
	return r.CollectNamed(fs, "")
}

// CollectNamed invokes every registered plugin against one scan target, in
// registration order, and returns the concatenated entries.
//
// fs may be a real filesystem or the bootfs.CustomEntries sentinel; the
// sentinel is translated to nil before any plugin sees it. A non-empty
// prescanName asks each plugin for at most the first entry with that exact
// name, and the pass stops at the first plugin that produces one. The
// prescan filter does not apply to the custom-entries pass and is blanked
// when the target is nil.
//
// Faults are isolated per plugin: a revision misdeclaration marks the plugin
// invalid for the rest of the pass, any other failure is recorded as a
// diagnostic and skipped, and ErrNotFound is silent. The returned error is
// the last non-not-found status encountered and exists for diagnostics only;
// the presence of entries is the authoritative success signal.
func (r *Registry) CollectNamed(fs bootfs.Filesystem, prescanName string) ([]*Entry, []Diagnostic, error) {
	var (
		entries []*Entry
		diags   []Diagnostic
		lastErr error
	)

	target := bootfs.Normalize(fs)
	device := ""
	if target != nil {
		device = target.Device()
	} else {
		prescanName = ""
	}

	for _, reg := range r.regs {
		if reg.invalid {
			continue
		}

		// Revision was negotiated at registration, but a plugin whose
		// declared revision drifts mid-pass is excluded permanently rather
		// than invoked with an incompatible contract.
		if rev := reg.plugin.Revision(); rev != Revision {
			reg.invalid = true
			diags = append(diags, Diagnostic{
				Severity: SeverityError,
				Code:     CodeRevisionMismatch,
				Message:  fmt.Sprintf("plugin %q revision %d does not match %d, excluded for this pass", reg.plugin.Name(), rev, Revision),
				Plugin:   reg.plugin.Name(),
			})
			continue
		}

		found, err := reg.plugin.GetBootEntries(target, prescanName)
		if err != nil {
			// Nothing from a given plugin on a given filesystem is normal.
			if errors.Is(err, ErrNotFound) {
				continue
			}
			lastErr = err
			diags = append(diags, Diagnostic{
				Severity: SeverityError,
				Code:     CodePluginFault,
				Message:  fmt.Sprintf("plugin %q failed: %v", reg.plugin.Name(), err),
				Plugin:   reg.plugin.Name(),
				Device:   device,
				Cause:    err,
			})
			continue
		}

		if len(found) == 0 {
			diags = append(diags, Diagnostic{
				Severity: SeverityWarning,
				Code:     CodeEmptyResult,
				Message:  fmt.Sprintf("plugin %q reported success with no entries", reg.plugin.Name()),
				Plugin:   reg.plugin.Name(),
				Device:   device,
			})
			continue
		}

		entries = append(entries, found...)

		// A prescan pass wants the first matching entry, not an exhaustive
		// sweep of the remaining plugins.
		if prescanName != "" {
			break
		}
	}

	return entries, diags, lastErr
}

// Merge folds plugin-collected entries into a filesystem's native entry set.
// Native entries come first in their existing order, then collected entries
// in collection order. An entry duplicating an earlier one — same display
// name on the same device — is dropped with a warning diagnostic; name-only
// collisions are kept, since unrelated volumes may both offer an entry
// called "Linux".
func Merge(native, collected []*Entry) ([]*Entry, []Diagnostic) {
	merged := make([]*Entry, 0, len(native)+len(collected))
	var diags []Diagnostic

	seen := make(map[string]struct{}, len(native)+len(collected))
	key := func(e *Entry) string { return e.Name + "\x00" + e.DevicePath }

	for _, e := range native {
		if _, dup := seen[key(e)]; dup {
			continue
		}
		seen[key(e)] = struct{}{}
		merged = append(merged, e)
	}

	for _, e := range collected {
		if _, dup := seen[key(e)]; dup {
			diags = append(diags, Diagnostic{
				Severity: SeverityWarning,
				Code:     CodeDuplicateEntry,
				Message:  fmt.Sprintf("dropped duplicate entry %q on %q", e.Name, e.DevicePath),
				Device:   e.DevicePath,
			})
			continue
		}
		seen[key(e)] = struct{}{}
		merged = append(merged, e)
	}

	return merged, diags
}
