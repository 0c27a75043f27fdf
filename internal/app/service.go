package app

import (
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"fast-colcon/internal/adapters"
	"fast-colcon/internal/ports"
	"fast-colcon/internal/types"
)

type Service struct {
	Workspace   ports.WorkspacePort
	Symlinks    ports.SymlinkPort
	Listing     ports.ListingWriterPort
	Diagnostics types.DiagnosticSink
	Out         io.Writer
	Getwd       func() (string, error)
}

func NewService() Service {
	return NewServiceWithOutput(os.Stdout, LogDiagnostic)
}

// NewServiceWithOutput wires the adapters to write listings and link reports
// to out and to forward recovered failures to sink.
func NewServiceWithOutput(out io.Writer, sink types.DiagnosticSink) Service {
	return Service{
		Workspace:   adapters.NewWorkspaceAdapter(adapters.NewPackageXMLAdapter(), sink),
		Symlinks:    adapters.NewSymlinkAdapter(out),
		Listing:     adapters.NewListingWriterAdapter(),
		Diagnostics: sink,
		Out:         out,
		Getwd:       os.Getwd,
	}
}

// LogDiagnostic is the default sink. Diagnostics only show up at debug level.
func LogDiagnostic(d types.Diagnostic) {
	log.Debug().
		Str("code", d.Code).
		Str("path", d.Path).
		AnErr("cause", d.Cause).
		Msg(d.Message)
}
