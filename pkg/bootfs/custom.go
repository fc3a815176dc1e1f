// SPDX-License-Identifier: MPL-2.0

package bootfs

// CustomEntries is the synthetic filesystem the boot manager uses to request
// plugin-private entries that are not tied to any volume. It is a sentinel,
// not a real filesystem: the aggregator translates it to an explicit nil
// before a plugin ever sees it, and plugins must treat nil as "return custom
// entries or report not found".
//
// Every method panics. Reaching one means a caller handed the sentinel to
// code that expected a dereferenceable filesystem, which is a contract
// violation on the caller's side, never recoverable plugin input.
var CustomEntries Filesystem = customFS{}

// IsCustom reports whether fs is the custom-entries sentinel.
func IsCustom(fs Filesystem) bool {
	_, ok := fs.(customFS)
	return ok
}

// Normalize translates the custom-entries sentinel to nil and passes every
// real filesystem through unchanged. Callers invoking a plugin must route the
// target through Normalize first.
func Normalize(fs Filesystem) Filesystem {
	if fs == nil || IsCustom(fs) {
		return nil
	}
	return fs
}

type customFS struct{}

func (customFS) Device() string { panic("bootfs: custom entries sentinel dereferenced") }
func (customFS) Policy() PolicyFlags { panic("bootfs: custom entries sentinel dereferenced") }
func (customFS) OpenDir(string) (Directory, error) { panic("bootfs: custom entries sentinel dereferenced") }
func (customFS) ReadFile(string) ([]byte, error) { panic("bootfs: custom entries sentinel dereferenced") }
