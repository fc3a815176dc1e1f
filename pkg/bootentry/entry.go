// SPDX-License-Identifier: MPL-2.0

package bootentry

import (
	"errors"
	"fmt"
)

// MaxNameLength bounds entry display names. Names may later be persisted as
// 8-bit null-terminated strings in NVRAM, so anything longer is truncated at
// construction time rather than failing at persistence time.
const MaxNameLength = 127

// ErrEmptyName is returned by NewEntry for entries without a display name.
var ErrEmptyName = errors.New("boot entry has no display name")

// Kind tags where an entry came from, so the boot manager can tell
// plugin-sourced entries apart from ones produced by its own native scan.
type Kind int

const (
	// KindNative marks entries from the boot manager's own filesystem scan.
	KindNative Kind = iota
	// KindPlugin marks entries contributed by a plugin for a real filesystem.
	KindPlugin
	// KindCustom marks plugin-private entries tied to no volume.
	KindCustom
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindNative:
		return "native"
	case KindPlugin:
		return "plugin"
	case KindCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// MarshalText renders the kind by name in serialized output.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText parses a kind name produced by MarshalText.
func (k *Kind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "native":
		*k = KindNative
	case "plugin":
		*k = KindPlugin
	case "custom":
		*k = KindCustom
	default:
		return fmt.Errorf("unknown entry kind %q", text)
	}
	return nil
}

// Entry is a discovered bootable candidate. Entries are never mutated after
// construction and are never shared between concurrent owners: a plugin
// allocates them during its own invocation and ownership transfers to the
// caller on success.
type Entry struct {
	// Name is the display name shown in the boot picker, at most
	// MaxNameLength characters.
	Name string `json:"name" yaml:"name" toml:"name"`
	// Kind tags the entry's origin.
	Kind Kind `json:"kind" yaml:"kind" toml:"kind"`
	// DevicePath identifies the device or volume the entry lives on. Empty
	// for custom entries.
	DevicePath string `json:"device_path,omitempty" yaml:"device_path,omitempty" toml:"device_path,omitempty"`
	// Path is the path of the file the entry was built from, relative to the
	// filesystem root.
	Path string `json:"path,omitempty" yaml:"path,omitempty" toml:"path,omitempty"`
	// Kernel is the boot target image path, when known.
	Kernel string `json:"kernel,omitempty" yaml:"kernel,omitempty" toml:"kernel,omitempty"`
	// Initrd is the initial ramdisk path, when known.
	Initrd string `json:"initrd,omitempty" yaml:"initrd,omitempty" toml:"initrd,omitempty"`
	// Options is the kernel command line, when known.
	Options string `json:"options,omitempty" yaml:"options,omitempty" toml:"options,omitempty"`
	// Version is the entry version string, when known. Used for display
	// disambiguation only.
	Version string `json:"version,omitempty" yaml:"version,omitempty" toml:"version,omitempty"`
}

// NewEntry builds an immutable entry, truncating the display name to
// MaxNameLength. An empty name is rejected: a nameless entry cannot be
// presented or persisted.
func NewEntry(name string, kind Kind, devicePath, path string) (*Entry, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	return &Entry{
		Name:       TruncateName(name),
		Kind:       kind,
		DevicePath: devicePath,
		Path:       path,
	}, nil
}

// TruncateName clips a display name to MaxNameLength characters, counting
// runes so a multi-byte name is never cut mid-character.
func TruncateName(name string) string {
	runes := []rune(name)
	if len(runes) <= MaxNameLength {
		return name
	}
	return string(runes[:MaxNameLength])
}
