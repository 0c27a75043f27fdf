package types

// ScanOutcome is the result of classifying one directory. The concrete
// variants are Found, Ignored, NotADirectory and Descend; the interface is
// sealed so callers switch over exactly that set.
type ScanOutcome interface {
	scanOutcome()
}

// Found carries the package discovered in the classified directory.
type Found struct {
	Entry DiscoveredEntry
}

// Ignored marks a directory excluded by the ignore policy.
type Ignored struct{}

// NotADirectory marks a path that is a file or does not exist.
type NotADirectory struct{}

// Descend marks a directory with no usable manifest that may be recursed into.
type Descend struct{}

func (Found) scanOutcome() {}
func (Ignored) scanOutcome() {}
func (NotADirectory) scanOutcome() {}
func (Descend) scanOutcome() {}
