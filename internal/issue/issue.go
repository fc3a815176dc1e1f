// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Code keys an issue. Discovery diagnostics and validation findings carry
// the same string codes, so a lookup here never needs translation.
type Code string

const (
	RevisionMismatchCode Code = "plugin_revision_mismatch"
	PluginFaultCode      Code = "plugin_fault"
	TruncatedReadCode    Code = "truncated_directory_read"
	ConfSkippedCode      Code = "conf_skipped"
	DuplicateEntryCode   Code = "duplicate_entry"
	IllegalPathCode      Code = "illegal_path"
	InvalidGUIDCode      Code = "invalid_guid"
	InvalidPickerCode    Code = "invalid_picker"
	ConfigLoadFailedCode Code = "config_load_failed"
)

type MarkdownMsg string

type HttpLink string

type Issue struct {
	code     Code        // code used to look the issue up
	mdMsg    MarkdownMsg // markdown text that will be rendered
	docLinks []HttpLink  // must never be empty, every issue type has docs
}

func (i *Issue) Code() Code {
	return i.code
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := "\n\n## See also\n"
	for _, link := range i.docLinks {
		extraMd += "- " + string(link) + "\n"
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	revisionMismatchIssue = &Issue{
		code: RevisionMismatchCode,
		mdMsg: `
# Plugin revision mismatch!

A boot-entry plugin was built against a different plugin contract revision
and has been excluded from discovery. Its entries will not appear.

## Things you can try:
- Update the plugin to a build matching this loadstone release
- Remove the stale plugin if it is no longer maintained
- List active plugins and their revisions:
~~~
$ loadstone scan --verbose
~~~`,
		docLinks: []HttpLink{"https://loadstone.dev/docs/plugins#revisions"},
	}

	pluginFaultIssue = &Issue{
		code: PluginFaultCode,
		mdMsg: `
# A boot-entry plugin failed!

One plugin returned an error while scanning a volume. Discovery continued:
entries from other plugins and other volumes are unaffected.

## Common causes:
- The volume went away mid-scan (removable media)
- A corrupted filesystem structure on the scanned volume
- A bug in the plugin itself

## Things you can try:
- Re-run the scan; transient media errors usually clear
- Check the device named in the diagnostic with your filesystem tools
- Run with verbose output to see the underlying error:
~~~
$ loadstone scan --verbose /boot
~~~`,
		docLinks: []HttpLink{"https://loadstone.dev/docs/scan#fault-isolation"},
	}

	truncatedReadIssue = &Issue{
		code: TruncatedReadCode,
		mdMsg: `
# Directory read ended early!

Reading a loader entries directory stopped before the end of the listing.
Entries discovered before the failure were kept; later files were not seen.

Some filesystem drivers (HFS+ in particular) report a read error instead of
a clean end-of-directory. When every expected entry is present this warning
is harmless.

## Things you can try:
- Compare the discovered entries against the conf files on disk:
~~~
$ ls /boot/loader/entries
~~~
- Run a filesystem check on the volume if entries are actually missing`,
		docLinks: []HttpLink{"https://loadstone.dev/docs/scan#truncated-reads"},
	}

	confSkippedIssue = &Issue{
		code: ConfSkippedCode,
		mdMsg: `
# A loader entry was skipped!

A file under loader/entries matched the scan filters but could not be turned
into a boot entry, so it was skipped.

## Common causes:
- The conf file has no ` + "`linux`" + ` line naming a kernel
- The file is empty or contains only comments
- The file is not a Boot Loader Specification entry at all

## Example of a minimal valid entry:
~~~
title   Fedora Linux 41
linux   /vmlinuz-6.11.4
initrd  /initramfs-6.11.4.img
options root=UUID=... rw
~~~`,
		docLinks: []HttpLink{"https://loadstone.dev/docs/scan#bls-entries"},
	}

	duplicateEntryIssue = &Issue{
		code: DuplicateEntryCode,
		mdMsg: `
# Duplicate boot entries!

Two sources produced entries with the same name on the same device, or two
configured custom entries point at the same target. Only the first one is
kept in the merged list.

## Things you can try:
- Remove or rename the redundant entry in your configuration
- Check whether two plugins scan the same volume`,
		docLinks: []HttpLink{"https://loadstone.dev/docs/config#entries"},
	}

	illegalPathIssue = &Issue{
		code: IllegalPathCode,
		mdMsg: `
# Illegal characters in a path!

Firmware path handling only tolerates 0-9, A-Z, a-z, '_', '-', '.', '/',
and '\'. Other characters (spaces included) break loading on some firmware.

## Things you can try:
- Rename the file on the boot volume and update the configured path
- Escape nothing: quoting does not help at the firmware level`,
		docLinks: []HttpLink{"https://loadstone.dev/docs/config#paths"},
	}

	invalidGUIDIssue = &Issue{
		code: InvalidGUIDCode,
		mdMsg: `
# Invalid NVRAM GUID!

NVRAM sections are keyed by vendor GUID in the canonical 8-4-4-4-12 form,
for example:
~~~
8be4df61-93ca-11d2-aa0d-00e098032b8c
~~~

## Things you can try:
- Check for missing dashes or non-hex characters
- Copy the GUID from the vendor documentation rather than retyping it`,
		docLinks: []HttpLink{"https://loadstone.dev/docs/config#nvram"},
	}

	invalidPickerIssue = &Issue{
		code: InvalidPickerCode,
		mdMsg: `
# Unknown picker mode!

## Valid picker modes:
- **builtin**: the text-mode boot picker
- **external**: defer to an external graphical picker
- **apple**: the firmware-native picker where available

## Example:
~~~yaml
bootloader:
  picker: builtin
~~~`,
		docLinks: []HttpLink{"https://loadstone.dev/docs/config#bootloader"},
	}

	configLoadFailedIssue = &Issue{
		code: ConfigLoadFailedCode,
		mdMsg: `
# Failed to load configuration!

## Configuration file locations:
- Linux: ~/.config/loadstone/config.yaml
- macOS: ~/Library/Application Support/loadstone/config.yaml
- Windows: %APPDATA%\loadstone\config.yaml

## Things you can try:
- Check the YAML syntax at the line named in the error
- Validate the file without running a scan:
~~~
$ loadstone validate --config path/to/config.yaml
~~~
- Remove the file to run on defaults`,
		docLinks: []HttpLink{"https://loadstone.dev/docs/config"},
	}

	issues = map[Code]*Issue{
		revisionMismatchIssue.Code(): revisionMismatchIssue,
		pluginFaultIssue.Code():      pluginFaultIssue,
		truncatedReadIssue.Code():    truncatedReadIssue,
		confSkippedIssue.Code():      confSkippedIssue,
		duplicateEntryIssue.Code():   duplicateEntryIssue,
		illegalPathIssue.Code():      illegalPathIssue,
		invalidGUIDIssue.Code():      invalidGUIDIssue,
		invalidPickerIssue.Code():    invalidPickerIssue,
		configLoadFailedIssue.Code(): configLoadFailedIssue,
	}
)

func Values() []*Issue {
	return maps.Values(issues)
}

func Get(code Code) *Issue {
	return issues[code]
}
