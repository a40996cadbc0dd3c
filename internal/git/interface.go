package git

// GitClient defines the interface for all git operations
type GitClient interface {
	RepoRoot() (string, error)
	CurrentBranch() (string, error)
	LocalBranches() ([]string, error)
	RemoteBranches() ([]string, error)
	RemoteDefaultBranch() (string, error)
	CommitHash(ref string) (string, error)
	Fetch() error
	Checkout(name string) error
	CreateBranch(name string) error
	CreateTrackingBranch(name string) error
	Add(path string) error
	HasStagedChanges() (bool, error)
	Commit(message string) error
	Push(branch string, force bool) error
	PushSetUpstream(branch string) error
}
