package adapters

import (
	"encoding/xml"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"fast-colcon/internal/ports"
	"fast-colcon/internal/types"
)

const packageXMLName = "package.xml"

type PackageXMLAdapter struct{}

func NewPackageXMLAdapter() PackageXMLAdapter {
	return PackageXMLAdapter{}
}

// Only the fields discovery reports are decoded; everything else in the
// manifest is skipped by the decoder.
type packageXML struct {
	Name   *string        `xml:"name"`
	Export *exportSection `xml:"export"`
}

type exportSection struct {
	BuildType *string `xml:"build_type"`
}

func (a PackageXMLAdapter) ParsePackage(path string) (types.PackageDescriptor, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return types.PackageDescriptor{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to read package.xml").
			WithCause(err)
	}
	var pkg packageXML
	if err := xml.Unmarshal(content, &pkg); err != nil {
		return types.PackageDescriptor{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse package.xml").
			WithCause(err)
	}
	if pkg.Name == nil {
		return types.PackageDescriptor{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("package.xml has no <name> element: " + path)
	}
	return types.PackageDescriptor{
		Name:      strings.TrimSpace(*pkg.Name),
		BuildType: buildTypeOf(pkg.Export),
	}, nil
}

func buildTypeOf(export *exportSection) string {
	if export == nil || export.BuildType == nil {
		return types.DefaultBuildType
	}
	return strings.TrimSpace(*export.BuildType)
}

var _ ports.PackageXMLPort = PackageXMLAdapter{}
