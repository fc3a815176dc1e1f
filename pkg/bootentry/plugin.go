// SPDX-License-Identifier: MPL-2.0

package bootentry

import (
	"errors"

	"loadstone/pkg/bootfs"
)

// Revision is the current contract revision. Revisions are compared for
// exact equality, never ordered: a plugin built against any other revision is
// incompatible, and no cross-revision compatibility is implied or supported.
const Revision = 1

var (
	// ErrNotFound means the plugin/filesystem combination legitimately has
	// nothing to offer. It is an expected, frequent outcome that callers
	// must never log as an error or let abort a pass.
	ErrNotFound = errors.New("no matching boot entries")

	// ErrInvalidParameter signals a structural fault, such as the well-known
	// entries path existing as a regular file instead of a directory.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrOutOfResources signals an allocation failure. Implementations must
	// release every partial allocation on the failing path before returning
	// it.
	ErrOutOfResources = errors.New("out of resources")
)

// Plugin is implemented by each boot entry discovery plugin.
type Plugin interface {
	// Name identifies the plugin in diagnostics.
	Name() string

	// Revision reports the contract revision the plugin was built against.
	Revision() int

	// GetBootEntries returns the boot entries this plugin discovers on fs.
	//
	// fs is either a real filesystem or nil, where nil requests the plugin's
	// custom entries, unconnected to any volume. Every implementation must
	// accept nil without fault; one with no custom entries reports
	// ErrNotFound immediately.
	//
	// prescanName, when non-empty, restricts the result to at most one
	// entry: the first entry, in the plugin's own enumeration order, whose
	// name equals prescanName. It is invalid together with a nil fs and must
	// be ignored in that case. Any plugin able to return more than one entry
	// for a filesystem must honor the filter.
	//
	// On success the returned slice holds at least one entry and ownership
	// transfers to the caller. On any error the plugin must not leave
	// partially built output reachable: the slice is nil. ErrNotFound is the
	// expected no-results outcome; ErrOutOfResources signals allocation
	// failure; anything else is a propagated sub-operation fault.
	GetBootEntries(fs bootfs.Filesystem, prescanName string) ([]*Entry, error)
}
