// SPDX-License-Identifier: MPL-2.0

package bootentry

const (
	// SeverityInfo marks informational scan progress.
	SeverityInfo Severity = "info"
	// SeverityWarning marks a recoverable scan warning.
	SeverityWarning Severity = "warning"
	// SeverityError marks a non-fatal per-plugin or per-file error.
	SeverityError Severity = "error"
)

// Diagnostic codes emitted by the aggregator and the bundled plugins. The
// code and severity are the load-bearing parts of a diagnostic; message text
// is an operational concern and may change.
const (
	// CodeRevisionMismatch: a plugin reported a revision other than the
	// current contract revision and was excluded for the rest of the pass.
	CodeRevisionMismatch = "plugin_revision_mismatch"
	// CodePluginFault: a plugin returned a non-not-found failure and was
	// skipped for this filesystem.
	CodePluginFault = "plugin_fault"
	// CodeEmptyResult: a plugin reported success with zero entries, which
	// the contract forbids; the result was treated as not found.
	CodeEmptyResult = "plugin_empty_result"
	// CodeDuplicateEntry: a collected entry duplicated an existing one
	// (same name and device) and was dropped at merge time.
	CodeDuplicateEntry = "duplicate_entry"
	// CodeConfSkipped: a scan candidate could not be parsed into an entry
	// and was skipped.
	CodeConfSkipped = "conf_skipped"
	// CodeTruncatedRead: a directory stream ended with a read fault and the
	// scan kept the candidates found up to that point.
	CodeTruncatedRead = "truncated_directory_read"
)

type (
	// Severity is a diagnostic level.
	Severity string

	// Diagnostic is a structured scan diagnostic returned to callers as a
	// value rather than written to a log stream, so the rendering policy
	// stays at the CLI/boot-manager boundary.
	Diagnostic struct {
		// Severity is the diagnostic level.
		Severity Severity
		// Code is a machine-readable identifier (e.g. CodePluginFault).
		Code string
		// Message is the human-readable description.
		Message string
		// Plugin names the plugin involved (optional).
		Plugin string
		// Device identifies the filesystem involved (optional).
		Device string
		// Cause is the underlying error for programmatic inspection
		// (optional).
		Cause error
	}
)
