// SPDX-License-Identifier: MPL-2.0

package bootentry

import (
	"errors"
	"fmt"
)

// RevisionError is returned when a plugin declares a contract revision other
// than the current one.
type RevisionError struct {
	// Plugin is the offending plugin's name.
	Plugin string
	// Got is the revision the plugin declared.
	Got int
}

// Error implements the error interface.
func (e *RevisionError) Error() string {
	return fmt.Sprintf("plugin %q declares contract revision %d, expected %d", e.Plugin, e.Got, Revision)
}

// ErrNilPlugin is returned by Register for a nil plugin value.
var ErrNilPlugin = errors.New("nil plugin")

// Registry holds the plugins participating in one scan pass. The boot
// manager builds a fresh Registry per pass and passes it down explicitly;
// there is no process-wide plugin lookup. An empty registry is normal and
// collects nothing.
//
// Registry is not safe for concurrent use. Scan passes are sequential.
type Registry struct {
	regs []*registration
}

type registration struct {
	plugin Plugin
	// invalid marks a plugin observed misdeclaring its revision mid-pass.
	// Once set it stays set: the plugin is skipped for every remaining
	// filesystem without re-checking.
	invalid bool
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a plugin, negotiating the contract revision up front. A
// mismatched plugin is rejected with a RevisionError and never enters the
// registry; rejection is not fatal to the caller, which simply continues
// with the plugins that did register.
func (r *Registry) Register(p Plugin) error {
	if p == nil {
		return ErrNilPlugin
	}
	if rev := p.Revision(); rev != Revision {
		return &RevisionError{Plugin: p.Name(), Got: rev}
	}
	r.regs = append(r.regs, &registration{plugin: p})
	return nil
}

// Len reports the number of registered plugins, including any marked
// invalid during the current pass.
func (r *Registry) Len() int {
	return len(r.regs)
}

// Plugins returns the registered plugins in registration order.
func (r *Registry) Plugins() []Plugin {
	out := make([]Plugin, len(r.regs))
	for i, reg := range r.regs {
		out[i] = reg.plugin
	}
	return out
}
