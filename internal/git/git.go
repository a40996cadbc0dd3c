package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// Verbose controls whether to print executed commands
var Verbose = false

// commandTimeout bounds every git invocation. A hung credential helper or
// network push must not block the caller forever.
const commandTimeout = 30 * time.Second

type gitClient struct {
	repoPath string
}

// NewGitClient returns a GitClient that shells out to git inside repoPath.
// An empty repoPath means the process working directory.
func NewGitClient(repoPath string) GitClient {
	return &gitClient{repoPath: repoPath}
}

// runCmd executes a git command and returns trimmed stdout. On failure the
// returned error carries the trimmed stderr of the subprocess (stdout is
// discarded); when stderr is empty the exec error text is used instead. The
// underlying exec error is wrapped so callers can inspect exit codes.
func (c *gitClient) runCmd(args ...string) (string, error) {
	if Verbose {
		fmt.Printf("  [git] %s\n", strings.Join(args, " "))
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = c.repoPath
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", fmt.Errorf("git %s timed out after %s", strings.Join(args, " "), commandTimeout)
		}
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return "", fmt.Errorf("git %s failed: %s: %w", strings.Join(args, " "), msg, err)
	}

	return strings.TrimSpace(stdout.String()), nil
}

// RepoRoot returns the root directory of the git repository
func (c *gitClient) RepoRoot() (string, error) {
	return c.runCmd("rev-parse", "--show-toplevel")
}

// CurrentBranch returns the name of the currently checked out branch,
// or an empty string when HEAD is detached
func (c *gitClient) CurrentBranch() (string, error) {
	return c.runCmd("branch", "--show-current")
}

// LocalBranches returns all local branch names, de-duplicated in
// first-seen order
func (c *gitClient) LocalBranches() ([]string, error) {
	output, err := c.runCmd("branch", "--format=%(refname:short)")
	if err != nil {
		return nil, err
	}
	return splitBranchLines(output), nil
}

// RemoteBranches returns all remote-tracking branch names on origin with
// the origin/ prefix stripped. The synthetic origin/HEAD entry is excluded
// and the result is de-duplicated in first-seen order.
func (c *gitClient) RemoteBranches() ([]string, error) {
	output, err := c.runCmd("branch", "-r", "--format=%(refname:short)")
	if err != nil {
		return nil, err
	}
	return stripRemotePrefix(splitBranchLines(output)), nil
}

// RemoteDefaultBranch resolves the branch origin/HEAD points at.
// Fails when the remote has no symbolic default ref locally.
func (c *gitClient) RemoteDefaultBranch() (string, error) {
	output, err := c.runCmd("symbolic-ref", "refs/remotes/origin/HEAD")
	if err != nil {
		return "", err
	}
	return remoteHeadBranch(output), nil
}

// remoteHeadBranch extracts the branch name from a symbolic-ref target
// like refs/remotes/origin/main. Only the fixed prefix is stripped:
// branch names may themselves contain slashes (release/1.0).
func remoteHeadBranch(ref string) string {
	return strings.TrimPrefix(ref, "refs/remotes/origin/")
}

// CommitHash returns the commit hash of a ref
func (c *gitClient) CommitHash(ref string) (string, error) {
	return c.runCmd("rev-parse", ref)
}

// Fetch fetches from origin
func (c *gitClient) Fetch() error {
	_, err := c.runCmd("fetch", "origin")
	return err
}

// Checkout switches to the specified branch
func (c *gitClient) Checkout(name string) error {
	_, err := c.runCmd("checkout", name)
	return err
}

// CreateBranch creates a new branch from the current HEAD and checks it out
func (c *gitClient) CreateBranch(name string) error {
	_, err := c.runCmd("checkout", "-b", name)
	return err
}

// CreateTrackingBranch creates a local branch tracking origin/<name> and
// checks it out
func (c *gitClient) CreateTrackingBranch(name string) error {
	_, err := c.runCmd("checkout", "-b", name, "origin/"+name)
	return err
}

// Add stages a path (use "." for everything)
func (c *gitClient) Add(path string) error {
	_, err := c.runCmd("add", path)
	return err
}

// HasStagedChanges reports whether anything is staged in the index.
// Exit code 1 from diff --cached --quiet means there are differences;
// any other non-zero exit is a real failure.
func (c *gitClient) HasStagedChanges() (bool, error) {
	_, err := c.runCmd("diff", "--cached", "--quiet")
	if err == nil {
		return false, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
		return true, nil
	}
	return false, err
}

// Commit commits staged changes with the given message
func (c *gitClient) Commit(message string) error {
	_, err := c.runCmd("commit", "-m", message)
	return err
}

// Push pushes a branch to origin
func (c *gitClient) Push(branch string, force bool) error {
	args := []string{"push"}
	if force {
		args = append(args, "--force")
	}
	args = append(args, "origin", branch)

	_, err := c.runCmd(args...)
	return err
}

// PushSetUpstream pushes a branch to origin and records the upstream
// tracking reference
func (c *gitClient) PushSetUpstream(branch string) error {
	_, err := c.runCmd("push", "--set-upstream", "origin", branch)
	return err
}

// splitBranchLines splits branch listing output into clean names,
// dropping blanks and duplicates while preserving first-seen order
func splitBranchLines(output string) []string {
	branches := []string{}
	seen := make(map[string]bool)
	for _, line := range strings.Split(output, "\n") {
		name := strings.TrimSpace(line)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		branches = append(branches, name)
	}
	return branches
}

// stripRemotePrefix removes the origin/ prefix from remote-tracking names
// and drops HEAD pseudo-entries, de-duplicating the result
func stripRemotePrefix(branches []string) []string {
	stripped := []string{}
	seen := make(map[string]bool)
	for _, name := range branches {
		name = strings.TrimPrefix(name, "origin/")
		if name == "HEAD" || seen[name] {
			continue
		}
		seen[name] = true
		stripped = append(stripped, name)
	}
	return stripped
}
