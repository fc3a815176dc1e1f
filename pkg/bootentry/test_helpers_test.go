// SPDX-License-Identifier: MPL-2.0

package bootentry

import "loadstone/pkg/bootfs"

// fakePlugin is a scriptable plugin for registry and collection tests.
type fakePlugin struct {
	name     string
	revision int
	entries  []*Entry
	err      error

	// calls records every GetBootEntries invocation.
	calls []fakeCall
	// revisionCalls counts Revision() queries.
	revisionCalls int
}

type fakeCall struct {
	fs      bootfs.Filesystem
	prescan string
}

func (f *fakePlugin) Name() string { return f.name }

func (f *fakePlugin) Revision() int {
	f.revisionCalls++
	return f.revision
}

func (f *fakePlugin) GetBootEntries(fs bootfs.Filesystem, prescanName string) ([]*Entry, error) {
	f.calls = append(f.calls, fakeCall{fs: fs, prescan: prescanName})
	if f.err != nil {
		return nil, f.err
	}
	return f.entries, nil
}

// fakeFS is a minimal real (non-sentinel) filesystem.
type fakeFS struct {
	device string
	policy bootfs.PolicyFlags
}

func (f *fakeFS) Device() string { return f.device }
func (f *fakeFS) Policy() bootfs.PolicyFlags { return f.policy }
func (f *fakeFS) OpenDir(string) (bootfs.Directory, error) { return nil, bootfs.ErrNotDir }
func (f *fakeFS) ReadFile(string) ([]byte, error) { return nil, bootfs.ErrNotDir }

func mustEntry(t interface{ Fatalf(string, ...any) }, name, device string) *Entry {
	e, err := NewEntry(name, KindPlugin, device, "loader/entries/"+name+".conf")
	if err != nil {
		t.Fatalf("NewEntry(%q) error = %v", name, err)
	}
	return e
}
