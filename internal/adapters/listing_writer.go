package adapters

import (
	"fmt"
	"io"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"fast-colcon/internal/ports"
	"fast-colcon/internal/types"
)

type ListingWriterAdapter struct{}

func NewListingWriterAdapter() ListingWriterAdapter {
	return ListingWriterAdapter{}
}

// Each projection has its own record so that empty values are still
// written for the fields it selects.
type listingRecord struct {
	Name      string `yaml:"name"`
	Path      string `yaml:"path"`
	BuildType string `yaml:"build_type"`
}

type nameRecord struct {
	Name string `yaml:"name"`
}

type pathRecord struct {
	Path string `yaml:"path"`
}

// WriteListing emits entries in the order given; callers sort and
// deduplicate beforehand.
func (a ListingWriterAdapter) WriteListing(w io.Writer, entries []types.DiscoveredEntry, projection types.Projection, format types.OutputFormat) error {
	switch format {
	case types.OutputFormatText, "":
		return writeText(w, entries, projection)
	case types.OutputFormatYAML:
		return writeYAML(w, entries, projection)
	default:
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("unsupported output format: " + string(format))
	}
}

func writeText(w io.Writer, entries []types.DiscoveredEntry, projection types.Projection) error {
	for _, entry := range entries {
		var err error
		switch projection {
		case types.ProjectionNames:
			_, err = fmt.Fprintln(w, entry.Package.Name)
		case types.ProjectionPaths:
			_, err = fmt.Fprintln(w, entry.Path)
		default:
			_, err = fmt.Fprintf(w, "%s\t%s\t(%s)\n", entry.Package.Name, entry.Path, entry.Package.BuildType)
		}
		if err != nil {
			return writeFailed(err)
		}
	}
	return nil
}

func writeYAML(w io.Writer, entries []types.DiscoveredEntry, projection types.Projection) error {
	records := make([]any, 0, len(entries))
	for _, entry := range entries {
		switch projection {
		case types.ProjectionNames:
			records = append(records, nameRecord{Name: entry.Package.Name})
		case types.ProjectionPaths:
			records = append(records, pathRecord{Path: entry.Path})
		default:
			records = append(records, listingRecord{
				Name:      entry.Package.Name,
				Path:      entry.Path,
				BuildType: entry.Package.BuildType,
			})
		}
	}
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(records); err != nil {
		return writeFailed(err)
	}
	if err := encoder.Close(); err != nil {
		return writeFailed(err)
	}
	return nil
}

func writeFailed(err error) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInternal).
		WithMsg("failed to write package listing").
		WithCause(err)
}

var _ ports.ListingWriterPort = ListingWriterAdapter{}
