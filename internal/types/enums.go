package types

type Projection string

const (
	ProjectionFull  Projection = "full"
	ProjectionNames Projection = "names"
	ProjectionPaths Projection = "paths"
)

type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatYAML OutputFormat = "yaml"
)

type LinkStatus string

const (
	LinkStatusCreated LinkStatus = "created"
	LinkStatusSkipped LinkStatus = "skipped"
	LinkStatusFailed  LinkStatus = "failed"
)
