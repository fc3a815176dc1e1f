// SPDX-License-Identifier: MPL-2.0

package bootentry

import (
	"errors"
	"strings"
	"testing"
)

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindNative, "native"},
		{KindPlugin, "plugin"},
		{KindCustom, "custom"},
		{Kind(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.expected {
				t.Errorf("Kind(%d).String() = %s, want %s", tt.kind, got, tt.expected)
			}
		})
	}
}

func TestNewEntry(t *testing.T) {
	e, err := NewEntry("Fedora 41", KindPlugin, "/dev/sda2", "loader/entries/fedora.conf")
	if err != nil {
		t.Fatalf("NewEntry() error = %v", err)
	}
	if e.Name != "Fedora 41" {
		t.Errorf("Name = %q, want %q", e.Name, "Fedora 41")
	}
	if e.Kind != KindPlugin {
		t.Errorf("Kind = %v, want KindPlugin", e.Kind)
	}
	if e.DevicePath != "/dev/sda2" {
		t.Errorf("DevicePath = %q, want /dev/sda2", e.DevicePath)
	}
}

func TestNewEntry_EmptyName(t *testing.T) {
	if _, err := NewEntry("", KindPlugin, "dev", "path"); !errors.Is(err, ErrEmptyName) {
		t.Errorf("NewEntry(\"\") error = %v, want ErrEmptyName", err)
	}
}

func TestNewEntry_TruncatesLongName(t *testing.T) {
	long := strings.Repeat("x", MaxNameLength+40)
	e, err := NewEntry(long, KindPlugin, "dev", "path")
	if err != nil {
		t.Fatalf("NewEntry() error = %v", err)
	}
	if got := len([]rune(e.Name)); got != MaxNameLength {
		t.Errorf("len(Name) = %d, want %d", got, MaxNameLength)
	}
}

func TestTruncateName_MultiByte(t *testing.T) {
	long := strings.Repeat("ü", MaxNameLength+1) // ü, two bytes each
	got := TruncateName(long)
	if n := len([]rune(got)); n != MaxNameLength {
		t.Errorf("rune length = %d, want %d", n, MaxNameLength)
	}
	if !strings.HasSuffix(got, "ü") {
		t.Error("truncation cut a rune in half")
	}
}

func TestTruncateName_ShortNameUnchanged(t *testing.T) {
	if got := TruncateName("Arch Linux"); got != "Arch Linux" {
		t.Errorf("TruncateName = %q, want unchanged", got)
	}
}
