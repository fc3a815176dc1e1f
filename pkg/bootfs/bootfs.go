// SPDX-License-Identifier: MPL-2.0

// Package bootfs defines the filesystem capability consumed by boot entry
// plugins. The boot manager owns the concrete implementations (EFI simple
// filesystem bindings in firmware, os-backed adapters in tooling); plugins
// only ever see these interfaces.
package bootfs

import "errors"

// ErrNotDir is returned by OpenDir when the path exists but is not a
// directory. Callers must treat this differently from plain absence: a
// same-named regular file in place of a well-known directory is a structural
// fault, not an expected miss.
var ErrNotDir = errors.New("path is not a directory")

// PolicyFlags is the filesystem policy bitmask the boot manager attaches to
// each scan target. A set flag marks the filesystem as being of that type.
type PolicyFlags uint32

const (
	// PolicyAPFS marks an Apple APFS filesystem.
	PolicyAPFS PolicyFlags = 1 << iota
	// PolicyHFSPlus marks an Apple HFS+ filesystem.
	PolicyHFSPlus
)

// AppleFS reports whether either Apple filesystem flag is set. Plugins that
// discover non-Apple operating systems use this to skip whole volumes:
// scanning multiple APFS partitions for Linux entries is wasted work, not a
// safety issue.
func (p PolicyFlags) AppleFS() bool {
	return p&(PolicyAPFS|PolicyHFSPlus) != 0
}

// DirEntry is one record read from a directory stream. Records are ephemeral:
// scanners filter them in read order and never retain them past the loop.
type DirEntry struct {
	// Name is the bare filename, no path components.
	Name string
	// IsDir is true when the entry is itself a directory.
	IsDir bool
	// Size is the entry size in bytes, zero for directories.
	Size int64
}

// Directory is a positioned stream of directory records.
//
// Iteration order is whatever the underlying driver yields; it is stable for
// an unchanged directory on a conforming driver but is not guaranteed across
// filesystems. Consumers that need determinism get it only transitively from
// a deterministic stream.
type Directory interface {
	// ReadNext returns the next record, or (nil, nil) when the directory is
	// exhausted. Nonconforming drivers are known to signal exhaustion early
	// (a zero result where a buffer-too-small status is expected), so
	// consumers must treat (nil, nil) as end-of-stream and keep whatever
	// they found, and must treat a non-nil error the same way: stop, keep
	// partial progress.
	ReadNext() (*DirEntry, error)

	// SetPosition rewinds or seeks the stream. Scanners reset to zero before
	// closing so the handle is left conventionally reusable.
	SetPosition(pos uint64) error

	// Close releases the handle. Safe to call after a failed read.
	Close() error
}

// Filesystem is a single scan target.
type Filesystem interface {
	// Device identifies the underlying device or volume, used for entry
	// addressing and diagnostics.
	Device() string

	// Policy returns the policy bitmask classifying this filesystem.
	Policy() PolicyFlags

	// OpenDir opens a directory by slash-separated path relative to the
	// filesystem root. Absence is reported with an error satisfying
	// errors.Is(err, fs.ErrNotExist); a same-named non-directory is reported
	// with ErrNotDir.
	OpenDir(path string) (Directory, error)

	// ReadFile reads a whole file by slash-separated path relative to the
	// filesystem root.
	ReadFile(path string) ([]byte, error)
}
