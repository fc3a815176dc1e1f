// SPDX-License-Identifier: MPL-2.0

// Package osfs adapts an on-disk directory tree (a mounted ESP or other boot
// volume, or a test fixture) to the bootfs capability interfaces.
package osfs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"loadstone/pkg/bootfs"
)

// FS is a bootfs.Filesystem rooted at an os directory.
type FS struct {
	root   string
	device string
	policy bootfs.PolicyFlags
}

// New returns a filesystem rooted at root. device identifies the volume in
// entry addressing and diagnostics (typically the mount point or block
// device); policy is the classification the caller determined for the
// volume.
func New(root, device string, policy bootfs.PolicyFlags) *FS {
	return &FS{root: root, device: device, policy: policy}
}

// Device implements bootfs.Filesystem.
func (f *FS) Device() string { return f.device }

// Policy implements bootfs.Filesystem.
func (f *FS) Policy() bootfs.PolicyFlags { return f.policy }

// OpenDir implements bootfs.Filesystem.
func (f *FS) OpenDir(path string) (bootfs.Directory, error) {
	full := filepath.Join(f.root, filepath.FromSlash(path))

	info, err := os.Stat(full)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s: %w", path, bootfs.ErrNotDir)
	}

	h, err := os.Open(full)
	if err != nil {
		return nil, err
	}
	return &dir{f: h}, nil
}

// ReadFile implements bootfs.Filesystem.
func (f *FS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(filepath.Join(f.root, filepath.FromSlash(path)))
}

type dir struct {
	f *os.File
}

// ReadNext implements bootfs.Directory, yielding one record per call.
func (d *dir) ReadNext() (*bootfs.DirEntry, error) {
	recs, err := d.f.ReadDir(1)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}
	if len(recs) == 0 {
		return nil, nil
	}

	rec := recs[0]
	out := &bootfs.DirEntry{Name: rec.Name(), IsDir: rec.IsDir()}
	if info, err := rec.Info(); err == nil && !rec.IsDir() {
		out.Size = info.Size()
	}
	return out, nil
}

// SetPosition implements bootfs.Directory. Only a reset to zero is
// supported, which is the only position scanners use.
func (d *dir) SetPosition(pos uint64) error {
	if pos != 0 {
		return fmt.Errorf("osfs: unsupported directory position %d", pos)
	}
	_, err := d.f.Seek(0, io.SeekStart)
	return err
}

// Close implements bootfs.Directory.
func (d *dir) Close() error { return d.f.Close() }
