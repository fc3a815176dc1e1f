// SPDX-License-Identifier: MPL-2.0

package linuxbls

import (
	"errors"
	"fmt"
	"io/fs"

	"loadstone/pkg/bootentry"
	"loadstone/pkg/bootfs"
)

// memFS is a scriptable in-memory bootfs.Filesystem. Directory streams can
// be made to fail or end early at a chosen record index to model
// nonconforming drivers.
type memFS struct {
	device string
	policy bootfs.PolicyFlags

	// dirs maps directory paths to their records, in stream order.
	dirs map[string][]bootfs.DirEntry
	// files maps file paths to contents.
	files map[string][]byte
	// notDir marks paths that exist as regular files where a directory was
	// expected.
	notDir map[string]bool

	// failReadAt makes ReadNext return an error at this record index
	// (-1 to disable).
	failReadAt int
	// shortReadAt makes ReadNext signal exhaustion at this record index
	// even though records remain (-1 to disable).
	shortReadAt int

	// openCalls records every OpenDir invocation.
	openCalls []string
	// streams records every directory stream handed out, for lifecycle
	// assertions.
	streams []*memDir
}

func newMemFS(device string) *memFS {
	return &memFS{
		device:      device,
		dirs:        make(map[string][]bootfs.DirEntry),
		files:       make(map[string][]byte),
		notDir:      make(map[string]bool),
		failReadAt:  -1,
		shortReadAt: -1,
	}
}

// addConf places a BLS entry file into loader/entries and its record into
// the directory stream.
func (m *memFS) addConf(name, contents string) {
	m.dirs[entriesDir] = append(m.dirs[entriesDir], bootfs.DirEntry{Name: name, Size: int64(len(contents))})
	m.files[entriesDir+"/"+name] = []byte(contents)
}

// addRecord places a bare directory record without file contents.
func (m *memFS) addRecord(rec bootfs.DirEntry) {
	m.dirs[entriesDir] = append(m.dirs[entriesDir], rec)
}

func (m *memFS) Device() string { return m.device }
func (m *memFS) Policy() bootfs.PolicyFlags { return m.policy }

func (m *memFS) OpenDir(path string) (bootfs.Directory, error) {
	m.openCalls = append(m.openCalls, path)
	if m.notDir[path] {
		return nil, fmt.Errorf("%s: %w", path, bootfs.ErrNotDir)
	}
	recs, ok := m.dirs[path]
	if !ok {
		return nil, fmt.Errorf("%s: %w", path, fs.ErrNotExist)
	}
	d := &memDir{fs: m, recs: recs}
	m.streams = append(m.streams, d)
	return d, nil
}

func (m *memFS) ReadFile(path string) ([]byte, error) {
	data, ok := m.files[path]
	if !ok {
		return nil, fmt.Errorf("%s: %w", path, fs.ErrNotExist)
	}
	return data, nil
}

var errInjectedRead = errors.New("injected directory read fault")

type memDir struct {
	fs   *memFS
	recs []bootfs.DirEntry
	pos  int

	closed       bool
	resetAtClose bool
	lastSetPos   uint64
}

func (d *memDir) ReadNext() (*bootfs.DirEntry, error) {
	if d.fs.failReadAt >= 0 && d.pos == d.fs.failReadAt {
		return nil, errInjectedRead
	}
	if d.fs.shortReadAt >= 0 && d.pos == d.fs.shortReadAt {
		return nil, nil
	}
	if d.pos >= len(d.recs) {
		return nil, nil
	}
	rec := d.recs[d.pos]
	d.pos++
	return &rec, nil
}

func (d *memDir) SetPosition(pos uint64) error {
	d.lastSetPos = pos
	d.pos = int(pos)
	return nil
}

func (d *memDir) Close() error {
	d.closed = true
	d.resetAtClose = d.lastSetPos == 0
	return nil
}

// sinkRecorder collects plugin diagnostics.
type sinkRecorder struct {
	diags []bootentry.Diagnostic
}

func (s *sinkRecorder) sink(d bootentry.Diagnostic) {
	s.diags = append(s.diags, d)
}

func (s *sinkRecorder) codes() []string {
	out := make([]string, len(s.diags))
	for i, d := range s.diags {
		out[i] = d.Code
	}
	return out
}

const fedoraConf = `title Fedora Linux 41
version 6.11.4-301.fc41.x86_64
linux /vmlinuz-6.11.4-301.fc41.x86_64
initrd /initramfs-6.11.4-301.fc41.x86_64.img
options root=UUID=6b8f9e2a rw quiet
`
