// SPDX-License-Identifier: MPL-2.0

package osfs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"loadstone/pkg/bootfs"
)

func newFixture(t *testing.T) (string, *FS) {
	t.Helper()
	root := t.TempDir()
	entries := filepath.Join(root, "loader", "entries")
	if err := os.MkdirAll(entries, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(entries, "fedora.conf"), []byte("linux /vmlinuz\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	return root, New(root, "disk0", 0)
}

func TestFS_Accessors(t *testing.T) {
	f := New("/mnt/esp", "/dev/sda1", bootfs.PolicyAPFS)
	if f.Device() != "/dev/sda1" {
		t.Errorf("Device() = %q", f.Device())
	}
	if f.Policy() != bootfs.PolicyAPFS {
		t.Errorf("Policy() = %v", f.Policy())
	}
}

func TestOpenDir_ReadsAllRecords(t *testing.T) {
	root, f := newFixture(t)
	if err := os.WriteFile(filepath.Join(root, "loader", "entries", "debian.conf"), []byte("linux /vmlinuz\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	dir, err := f.OpenDir("loader/entries")
	if err != nil {
		t.Fatalf("OpenDir() error = %v", err)
	}
	defer dir.Close()

	names := map[string]bool{}
	for {
		rec, err := dir.ReadNext()
		if err != nil {
			t.Fatalf("ReadNext() error = %v", err)
		}
		if rec == nil {
			break
		}
		names[rec.Name] = true
	}
	if !names["fedora.conf"] || !names["debian.conf"] {
		t.Errorf("records = %v, want both conf files", names)
	}
}

func TestOpenDir_Missing(t *testing.T) {
	_, f := newFixture(t)
	if _, err := f.OpenDir("loader/no-such"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("OpenDir() error = %v, want fs.ErrNotExist", err)
	}
}

func TestOpenDir_RegularFile(t *testing.T) {
	_, f := newFixture(t)
	if _, err := f.OpenDir("loader/entries/fedora.conf"); !errors.Is(err, bootfs.ErrNotDir) {
		t.Errorf("OpenDir() error = %v, want bootfs.ErrNotDir", err)
	}
}

func TestSetPosition_ResetRestartsStream(t *testing.T) {
	_, f := newFixture(t)

	dir, err := f.OpenDir("loader/entries")
	if err != nil {
		t.Fatalf("OpenDir() error = %v", err)
	}
	defer dir.Close()

	first, err := dir.ReadNext()
	if err != nil || first == nil {
		t.Fatalf("ReadNext() = %v, %v", first, err)
	}
	if err := dir.SetPosition(0); err != nil {
		t.Fatalf("SetPosition(0) error = %v", err)
	}
	again, err := dir.ReadNext()
	if err != nil || again == nil {
		t.Fatalf("ReadNext() after reset = %v, %v", again, err)
	}
	if again.Name != first.Name {
		t.Errorf("first record after reset = %q, want %q", again.Name, first.Name)
	}
}

func TestSetPosition_NonZeroUnsupported(t *testing.T) {
	_, f := newFixture(t)
	dir, err := f.OpenDir("loader/entries")
	if err != nil {
		t.Fatalf("OpenDir() error = %v", err)
	}
	defer dir.Close()

	if err := dir.SetPosition(3); err == nil {
		t.Error("SetPosition(3) = nil, want error")
	}
}

func TestReadFile(t *testing.T) {
	_, f := newFixture(t)
	data, err := f.ReadFile("loader/entries/fedora.conf")
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "linux /vmlinuz\n" {
		t.Errorf("ReadFile() = %q", data)
	}
}
