package types

type ProvisionOptions struct {
	Quiet bool
	Force bool
}

// LinkResult records what provisioning did for one package.
type LinkResult struct {
	Entry      DiscoveredEntry
	LinkPath   string
	TargetPath string
	Status     LinkStatus
	Err        error
}
