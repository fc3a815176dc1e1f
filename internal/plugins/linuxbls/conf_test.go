// SPDX-License-Identifier: MPL-2.0

package linuxbls

import (
	"errors"
	"testing"
)

func TestParseConf(t *testing.T) {
	conf, err := parseConf([]byte(fedoraConf))
	if err != nil {
		t.Fatalf("parseConf() error = %v", err)
	}

	if conf.Title != "Fedora Linux 41" {
		t.Errorf("Title = %q", conf.Title)
	}
	if conf.Version != "6.11.4-301.fc41.x86_64" {
		t.Errorf("Version = %q", conf.Version)
	}
	if conf.Linux != "/vmlinuz-6.11.4-301.fc41.x86_64" {
		t.Errorf("Linux = %q", conf.Linux)
	}
	if len(conf.Initrd) != 1 || conf.Initrd[0] != "/initramfs-6.11.4-301.fc41.x86_64.img" {
		t.Errorf("Initrd = %v", conf.Initrd)
	}
	if len(conf.Options) != 1 || conf.Options[0] != "root=UUID=6b8f9e2a rw quiet" {
		t.Errorf("Options = %v", conf.Options)
	}
}

func TestParseConf_MultipleInitrdAndOptions(t *testing.T) {
	in := "linux /vmlinuz\n" +
		"initrd /intel-ucode.img\n" +
		"initrd /initramfs.img\n" +
		"options root=/dev/sda2\n" +
		"options rw quiet\n"

	conf, err := parseConf([]byte(in))
	if err != nil {
		t.Fatalf("parseConf() error = %v", err)
	}
	if len(conf.Initrd) != 2 || conf.Initrd[0] != "/intel-ucode.img" || conf.Initrd[1] != "/initramfs.img" {
		t.Errorf("Initrd = %v, want both images in order", conf.Initrd)
	}
	if len(conf.Options) != 2 {
		t.Errorf("Options = %v, want two fragments", conf.Options)
	}
}

func TestParseConf_CommentsBlanksAndUnknownKeys(t *testing.T) {
	in := "# generated by kernel-install\n" +
		"\n" +
		"title   Arch Linux\n" +
		"linux /vmlinuz-linux\n" +
		"architecture x64\n" + // unknown to this scanner, ignored
		"machine-id 7d43a280c9f14c3ab5e9e16e5e2a3b01\n" +
		"sort-key arch\n"

	conf, err := parseConf([]byte(in))
	if err != nil {
		t.Fatalf("parseConf() error = %v", err)
	}
	if conf.Title != "Arch Linux" {
		t.Errorf("Title = %q, want surrounding whitespace trimmed", conf.Title)
	}
	if conf.MachineID != "7d43a280c9f14c3ab5e9e16e5e2a3b01" {
		t.Errorf("MachineID = %q", conf.MachineID)
	}
	if conf.SortKey != "arch" {
		t.Errorf("SortKey = %q", conf.SortKey)
	}
}

func TestParseConf_TabSeparated(t *testing.T) {
	conf, err := parseConf([]byte("title\tDebian GNU/Linux\nlinux\t/vmlinuz\n"))
	if err != nil {
		t.Fatalf("parseConf() error = %v", err)
	}
	if conf.Title != "Debian GNU/Linux" {
		t.Errorf("Title = %q", conf.Title)
	}
	if conf.Linux != "/vmlinuz" {
		t.Errorf("Linux = %q", conf.Linux)
	}
}

func TestParseConf_NoRecognizedKeys(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"only comments", "# nothing\n# here\n"},
		{"only unknown keys", "flavor spicy\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseConf([]byte(tt.in)); !errors.Is(err, errEmptyConf) {
				t.Errorf("parseConf() error = %v, want errEmptyConf", err)
			}
		})
	}
}
