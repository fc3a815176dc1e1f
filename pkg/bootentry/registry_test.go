// SPDX-License-Identifier: MPL-2.0

package bootentry

import (
	"errors"
	"testing"
)

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()
	p := &fakePlugin{name: "ok", revision: Revision}

	if err := r.Register(p); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if r.Len() != 1 {
		t.Errorf("Len() = %d, want 1", r.Len())
	}
}

func TestRegistry_Register_NilPlugin(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(nil); !errors.Is(err, ErrNilPlugin) {
		t.Errorf("Register(nil) error = %v, want ErrNilPlugin", err)
	}
}

func TestRegistry_Register_RevisionMismatch(t *testing.T) {
	r := NewRegistry()
	p := &fakePlugin{name: "stale", revision: Revision + 1}

	err := r.Register(p)
	var revErr *RevisionError
	if !errors.As(err, &revErr) {
		t.Fatalf("Register() error = %v, want *RevisionError", err)
	}
	if revErr.Plugin != "stale" || revErr.Got != Revision+1 {
		t.Errorf("RevisionError = %+v, want Plugin=stale Got=%d", revErr, Revision+1)
	}
	if r.Len() != 0 {
		t.Errorf("mismatched plugin entered the registry, Len() = %d", r.Len())
	}
	if len(p.calls) != 0 {
		t.Errorf("mismatched plugin was invoked %d times, want 0", len(p.calls))
	}
}

func TestRegistry_Plugins_RegistrationOrder(t *testing.T) {
	r := NewRegistry()
	names := []string{"first", "second", "third"}
	for _, name := range names {
		if err := r.Register(&fakePlugin{name: name, revision: Revision}); err != nil {
			t.Fatalf("Register(%q) error = %v", name, err)
		}
	}

	got := r.Plugins()
	if len(got) != len(names) {
		t.Fatalf("Plugins() returned %d, want %d", len(got), len(names))
	}
	for i, p := range got {
		if p.Name() != names[i] {
			t.Errorf("Plugins()[%d] = %q, want %q", i, p.Name(), names[i])
		}
	}
}

func TestRegistry_Empty(t *testing.T) {
	r := NewRegistry()

	entries, diags, err := r.Collect(&fakeFS{device: "disk0"})
	if err != nil {
		t.Errorf("Collect() on empty registry error = %v, want nil", err)
	}
	if len(entries) != 0 {
		t.Errorf("Collect() returned %d entries, want 0", len(entries))
	}
	if len(diags) != 0 {
		t.Errorf("Collect() returned %d diagnostics, want 0", len(diags))
	}
}
