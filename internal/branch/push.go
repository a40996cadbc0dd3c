package branch

import (
	"fmt"
	"strings"
	"time"

	"github.com/Konoa-1025/Cresta-Open-Data/internal/ui"
)

// PushOptions control one push operation.
type PushOptions struct {
	// Branch guides resolution when HEAD is detached. The branch pushed
	// is always the current branch after resolution.
	Branch string
	// Message is the commit message; empty means a timestamped default.
	Message string
	// Files are the paths to stage; empty means everything (".").
	Files []string
	// Force pushes with --force.
	Force bool
}

// Push stages changes, commits them and pushes the current branch to
// origin. A detached HEAD is resolved to a branch first. Nothing staged
// is a successful no-op. A push rejected for a missing upstream tracking
// reference is retried exactly once with --set-upstream.
//
// Earlier steps are not rolled back when a later one fails: a commit that
// could not be pushed stays committed.
func (o *Ops) Push(opts PushOptions) error {
	current, err := o.git.CurrentBranch()
	if err != nil {
		return fmt.Errorf("failed to determine current branch: %w", err)
	}

	if current == "" {
		o.logf("%s", ui.Warning("detected detached HEAD state"))
		if err := o.ResolveAndSwitch(opts.Branch); err != nil {
			o.logf("%s", ui.Error("cannot push from detached HEAD state"))
			return err
		}
		current, err = o.git.CurrentBranch()
		if err != nil {
			return fmt.Errorf("failed to determine current branch: %w", err)
		}
		if current == "" {
			return fmt.Errorf("could not determine current branch for push")
		}
	} else {
		o.logf("Current branch: %s", ui.Branch(current))
	}

	paths := opts.Files
	if len(paths) == 0 {
		paths = []string{"."}
	}
	for _, path := range paths {
		if err := o.git.Add(path); err != nil {
			o.logf("%s", ui.Error(fmt.Sprintf("failed to stage '%s': %v", path, err)))
			return fmt.Errorf("failed to stage '%s': %w", path, err)
		}
	}

	staged, err := o.git.HasStagedChanges()
	if err != nil {
		return fmt.Errorf("failed to check staged changes: %w", err)
	}
	if !staged {
		o.logf("No changes to commit")
		return nil
	}

	message := opts.Message
	if message == "" {
		message = "Automated commit " + time.Now().Format("2006-01-02 15:04:05")
	}
	if err := o.git.Commit(message); err != nil {
		o.logf("%s", ui.Error(fmt.Sprintf("commit failed: %v", err)))
		return fmt.Errorf("failed to commit: %w", err)
	}
	o.logf("%s", ui.Success(fmt.Sprintf("committed: %s", message)))

	o.logf("Pushing branch %s", ui.Branch(current))
	err = o.git.Push(current, opts.Force)
	if err != nil && isMissingUpstream(err) {
		o.logf("%s", ui.Warning("no upstream configured, retrying with --set-upstream"))
		err = o.git.PushSetUpstream(current)
	}
	if err != nil {
		o.logf("%s", ui.Error(fmt.Sprintf("push failed: %v", err)))
		return fmt.Errorf("failed to push '%s': %w", current, err)
	}

	o.logf("%s", ui.Success(fmt.Sprintf("pushed to origin/%s", current)))
	return nil
}

// isMissingUpstream reports whether a push failure is the missing
// upstream-tracking case that warrants the single --set-upstream retry
func isMissingUpstream(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "no upstream branch") || strings.Contains(msg, "set-upstream")
}
