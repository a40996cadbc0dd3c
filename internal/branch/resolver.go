package branch

import (
	"fmt"

	"github.com/Konoa-1025/Cresta-Open-Data/internal/ui"
)

// ResolveAndSwitch ends up on target, creating the branch if necessary.
// An empty target selects the default branch. Calling it again while
// already on target is a no-op success.
//
// The sequence: direct checkout; if the branch exists nowhere, create it
// from its remote counterpart or from the current HEAD; otherwise walk
// the Alternatives list, checking out or creating each in turn.
func (o *Ops) ResolveAndSwitch(target string) error {
	if target == "" {
		target = o.DefaultBranch(o.AvailableBranches())
		if target == "" {
			o.logf("%s", ui.Error("no suitable branch found for checkout"))
			return ErrNoBranch
		}
		o.logf("No branch requested, selected %s", ui.Branch(target))
	}

	o.logf("Attempting to switch to branch %s", ui.Branch(target))

	err := o.git.Checkout(target)
	if err == nil {
		o.logf("%s", ui.Success(fmt.Sprintf("switched to branch '%s'", target)))
		return nil
	}
	o.logf("%s", ui.Warning(fmt.Sprintf("direct checkout failed: %v", err)))

	set := o.AvailableBranches()
	lastErr := err

	if !set.Contains(target) {
		o.logf("Branch %s not found, attempting to create it", ui.Branch(target))
		err = o.materialize(target, set)
		if err == nil {
			return nil
		}
		lastErr = err
	}

	for _, alt := range Alternatives {
		if alt == target {
			continue
		}
		if set.Contains(alt) {
			o.logf("Trying alternative branch %s", ui.Branch(alt))
			if err := o.git.Checkout(alt); err != nil {
				lastErr = err
				continue
			}
			o.logf("%s", ui.Success(fmt.Sprintf("switched to alternative branch '%s'", alt)))
			return nil
		}
		if err := o.materialize(alt, set); err != nil {
			lastErr = err
			continue
		}
		return nil
	}

	o.logf("%s", ui.Error("failed to switch to any suitable branch"))
	return fmt.Errorf("failed to resolve a branch: %w", lastErr)
}

// materialize creates name locally: tracking its remote counterpart when
// one exists in set, otherwise as a fresh branch from the current HEAD.
// Either way the new branch is checked out.
func (o *Ops) materialize(name string, set BranchSet) error {
	if set.ContainsRemote(name) {
		if err := o.git.CreateTrackingBranch(name); err != nil {
			o.logf("%s", ui.Error(fmt.Sprintf("failed to create branch '%s': %v", name, err)))
			return err
		}
		o.logf("%s", ui.Success(fmt.Sprintf("created local branch '%s' tracking 'origin/%s'", name, name)))
		return nil
	}

	if err := o.git.CreateBranch(name); err != nil {
		o.logf("%s", ui.Error(fmt.Sprintf("failed to create new branch '%s': %v", name, err)))
		return err
	}
	o.logf("%s", ui.Success(fmt.Sprintf("created new branch '%s' from current HEAD", name)))
	return nil
}
