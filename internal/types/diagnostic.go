package types

const (
	DiagnosticManifestParseFailed  = "manifest_parse_failed"
	DiagnosticDirectoryUnreadable  = "directory_unreadable"
	DiagnosticDuplicatePackageName = "duplicate_package_name"
)

type (
	// Diagnostic describes an item that discovery recovered from without
	// surfacing an error.
	Diagnostic struct {
		// Code is a machine-readable identifier such as "manifest_parse_failed".
		Code string
		// Message is the human-readable description.
		Message string
		// Path is the file or directory the diagnostic refers to.
		Path string
		// Cause is the underlying error, when there is one.
		Cause error
	}

	// DiagnosticSink receives diagnostics as they are produced. A nil sink
	// discards them.
	DiagnosticSink func(Diagnostic)
)

// Report forwards d to the sink when one is set.
func (s DiagnosticSink) Report(d Diagnostic) {
	if s != nil {
		s(d)
	}
}
