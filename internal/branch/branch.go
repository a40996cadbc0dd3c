// Package branch decides which branch the repository should end up on and
// orchestrates the stage/commit/push sequence. It is the single home for
// the detached-HEAD recovery logic; everything below it goes through the
// git.GitClient interface.
package branch

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Konoa-1025/Cresta-Open-Data/internal/git"
)

// DefaultCandidates is the priority order used to select a default branch
// when origin carries no symbolic default ref.
var DefaultCandidates = []string{"main", "master", "develop", "development"}

// Alternatives is the fallback order tried when the requested branch can
// neither be checked out nor created. The requested branch itself is
// skipped during the walk.
var Alternatives = []string{"main", "master"}

// ErrNoBranch indicates that no branch exists or could be selected at all.
var ErrNoBranch = errors.New("no branch available for checkout")

// BranchSet holds the local and remote branch names visible at one point
// in time. It is rebuilt on every inspection and never cached; callers
// needing a consistent view take one set and reuse it.
type BranchSet struct {
	Local  []string
	Remote []string
}

// Contains reports whether name exists locally or on the remote
func (s BranchSet) Contains(name string) bool {
	return containsName(s.Local, name) || containsName(s.Remote, name)
}

// ContainsRemote reports whether name exists on the remote
func (s BranchSet) ContainsRemote(name string) bool {
	return containsName(s.Remote, name)
}

// All returns local branches followed by remote-only branches,
// de-duplicated in that order
func (s BranchSet) All() []string {
	all := make([]string, 0, len(s.Local)+len(s.Remote))
	all = append(all, s.Local...)
	for _, name := range s.Remote {
		if !containsName(all, name) {
			all = append(all, name)
		}
	}
	return all
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

// State is a point-in-time report of the repository's branch layout.
// Detached is true exactly when CurrentBranch is empty.
type State struct {
	CurrentBranch  string
	Detached       bool
	LocalBranches  []string
	RemoteBranches []string
	DefaultBranch  string
}

// Ops bundles the branch resolver and push orchestrator around a git
// client. Status lines go to Out, which defaults to os.Stdout.
type Ops struct {
	git git.GitClient
	Out io.Writer
}

// New returns an Ops writing status lines to stdout
func New(client git.GitClient) *Ops {
	return &Ops{git: client, Out: os.Stdout}
}

func (o *Ops) logf(format string, args ...any) {
	fmt.Fprintf(o.Out, format+"\n", args...)
}

// AvailableBranches lists local and remote branches. A failed listing
// query contributes an empty list rather than an error; the resolver
// treats command failure as a normal outcome.
func (o *Ops) AvailableBranches() BranchSet {
	local, err := o.git.LocalBranches()
	if err != nil {
		local = nil
	}
	remote, err := o.git.RemoteBranches()
	if err != nil {
		remote = nil
	}
	return BranchSet{Local: local, Remote: remote}
}

// DefaultBranch selects the best default branch from set: the remote's
// symbolic default ref if resolvable, then the first DefaultCandidates
// entry present locally or remotely, then the first branch of the
// combined set, then "" when the repository has no branches at all.
func (o *Ops) DefaultBranch(set BranchSet) string {
	if name, err := o.git.RemoteDefaultBranch(); err == nil && name != "" {
		return name
	}
	for _, candidate := range DefaultCandidates {
		if set.Contains(candidate) {
			return candidate
		}
	}
	if all := set.All(); len(all) > 0 {
		return all[0]
	}
	return ""
}

// Inspect reports the current branch, detached-HEAD state, available
// branches and the recommended default branch
func (o *Ops) Inspect() (*State, error) {
	current, err := o.git.CurrentBranch()
	if err != nil {
		return nil, fmt.Errorf("failed to determine current branch: %w", err)
	}

	set := o.AvailableBranches()
	return &State{
		CurrentBranch:  current,
		Detached:       current == "",
		LocalBranches:  set.Local,
		RemoteBranches: set.Remote,
		DefaultBranch:  o.DefaultBranch(set),
	}, nil
}
