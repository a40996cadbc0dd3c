package branch_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/Konoa-1025/Cresta-Open-Data/internal/branch"
	"github.com/Konoa-1025/Cresta-Open-Data/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var errNoUpstream = fmt.Errorf("git push origin main failed: fatal: The current branch main has no upstream branch.\nTo push the current branch and set the remote as upstream, use\n\n    git push --set-upstream origin main")

func TestPush(t *testing.T) {
	tests := []struct {
		name        string
		opts        branch.PushOptions
		setupMocks  func(*testutil.MockGitClient)
		expectError bool
		wantOutput  []string
	}{
		{
			name: "no-op when nothing staged",
			setupMocks: func(m *testutil.MockGitClient) {
				m.On("CurrentBranch").Return("main", nil)
				m.On("Add", ".").Return(nil)
				m.On("HasStagedChanges").Return(false, nil)
			},
			wantOutput: []string{"No changes to commit"},
		},
		{
			name: "commit and push with explicit message",
			opts: branch.PushOptions{Message: "update datasets"},
			setupMocks: func(m *testutil.MockGitClient) {
				m.On("CurrentBranch").Return("main", nil)
				m.On("Add", ".").Return(nil)
				m.On("HasStagedChanges").Return(true, nil)
				m.On("Commit", "update datasets").Return(nil)
				m.On("Push", "main", false).Return(nil)
			},
			wantOutput: []string{"committed: update datasets", "pushed to origin/main"},
		},
		{
			name: "stages explicit file list",
			opts: branch.PushOptions{Message: "add data", Files: []string{"a.csv", "b.csv"}},
			setupMocks: func(m *testutil.MockGitClient) {
				m.On("CurrentBranch").Return("main", nil)
				m.On("Add", "a.csv").Return(nil)
				m.On("Add", "b.csv").Return(nil)
				m.On("HasStagedChanges").Return(true, nil)
				m.On("Commit", "add data").Return(nil)
				m.On("Push", "main", false).Return(nil)
			},
		},
		{
			name: "force push",
			opts: branch.PushOptions{Message: "rewrite", Force: true},
			setupMocks: func(m *testutil.MockGitClient) {
				m.On("CurrentBranch").Return("main", nil)
				m.On("Add", ".").Return(nil)
				m.On("HasStagedChanges").Return(true, nil)
				m.On("Commit", "rewrite").Return(nil)
				m.On("Push", "main", true).Return(nil)
			},
		},
		{
			name: "retries once with set-upstream on missing upstream",
			opts: branch.PushOptions{Message: "first push"},
			setupMocks: func(m *testutil.MockGitClient) {
				m.On("CurrentBranch").Return("main", nil)
				m.On("Add", ".").Return(nil)
				m.On("HasStagedChanges").Return(true, nil)
				m.On("Commit", "first push").Return(nil)
				m.On("Push", "main", false).Return(errNoUpstream)
				m.On("PushSetUpstream", "main").Return(nil)
			},
			wantOutput: []string{"retrying with --set-upstream", "pushed to origin/main"},
		},
		{
			name: "no retry for other push failures",
			opts: branch.PushOptions{Message: "diverged"},
			setupMocks: func(m *testutil.MockGitClient) {
				m.On("CurrentBranch").Return("main", nil)
				m.On("Add", ".").Return(nil)
				m.On("HasStagedChanges").Return(true, nil)
				m.On("Commit", "diverged").Return(nil)
				m.On("Push", "main", false).Return(fmt.Errorf("git push origin main failed: ! [rejected] main -> main (non-fast-forward)"))
			},
			expectError: true,
			wantOutput:  []string{"push failed"},
		},
		{
			name: "upstream retry failure is terminal",
			opts: branch.PushOptions{Message: "first push"},
			setupMocks: func(m *testutil.MockGitClient) {
				m.On("CurrentBranch").Return("main", nil)
				m.On("Add", ".").Return(nil)
				m.On("HasStagedChanges").Return(true, nil)
				m.On("Commit", "first push").Return(nil)
				m.On("Push", "main", false).Return(errNoUpstream)
				m.On("PushSetUpstream", "main").Return(fmt.Errorf("git push --set-upstream origin main failed: permission denied"))
			},
			expectError: true,
		},
		{
			name: "staging failure aborts before commit",
			setupMocks: func(m *testutil.MockGitClient) {
				m.On("CurrentBranch").Return("main", nil)
				m.On("Add", ".").Return(fmt.Errorf("git add . failed: unable to index"))
			},
			expectError: true,
			wantOutput:  []string{"failed to stage"},
		},
		{
			name: "commit failure aborts before push",
			opts: branch.PushOptions{Message: "broken"},
			setupMocks: func(m *testutil.MockGitClient) {
				m.On("CurrentBranch").Return("main", nil)
				m.On("Add", ".").Return(nil)
				m.On("HasStagedChanges").Return(true, nil)
				m.On("Commit", "broken").Return(fmt.Errorf("git commit failed: empty ident"))
			},
			expectError: true,
			wantOutput:  []string{"commit failed"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockGit := new(testutil.MockGitClient)
			tt.setupMocks(mockGit)

			ops, buf := newOps(mockGit)
			err := ops.Push(tt.opts)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			for _, phrase := range tt.wantOutput {
				assert.Contains(t, buf.String(), phrase)
			}

			mockGit.AssertExpectations(t)
		})
	}
}

func TestPushNoOpSkipsCommitAndPush(t *testing.T) {
	mockGit := new(testutil.MockGitClient)
	mockGit.On("CurrentBranch").Return("main", nil)
	mockGit.On("Add", ".").Return(nil)
	mockGit.On("HasStagedChanges").Return(false, nil)

	ops, _ := newOps(mockGit)
	assert.NoError(t, ops.Push(branch.PushOptions{}))

	mockGit.AssertNotCalled(t, "Commit", mock.Anything)
	mockGit.AssertNotCalled(t, "Push", mock.Anything, mock.Anything)
}

func TestPushDefaultMessageIsTimestamped(t *testing.T) {
	mockGit := new(testutil.MockGitClient)
	mockGit.On("CurrentBranch").Return("main", nil)
	mockGit.On("Add", ".").Return(nil)
	mockGit.On("HasStagedChanges").Return(true, nil)
	mockGit.On("Commit", mock.MatchedBy(func(msg string) bool {
		return strings.HasPrefix(msg, "Automated commit ")
	})).Return(nil)
	mockGit.On("Push", "main", false).Return(nil)

	ops, _ := newOps(mockGit)
	assert.NoError(t, ops.Push(branch.PushOptions{}))
	mockGit.AssertExpectations(t)
}

func TestPushResolvesDetachedHead(t *testing.T) {
	mockGit := new(testutil.MockGitClient)
	// Detached at first, on main after resolution
	mockGit.On("CurrentBranch").Return("", nil).Once()
	mockGit.On("LocalBranches").Return([]string{"main", "feature-x"}, nil)
	mockGit.On("RemoteBranches").Return([]string{}, nil)
	mockGit.On("RemoteDefaultBranch").Return("", fmt.Errorf("no symbolic ref"))
	mockGit.On("Checkout", "main").Return(nil)
	mockGit.On("CurrentBranch").Return("main", nil).Once()
	mockGit.On("Add", ".").Return(nil)
	mockGit.On("HasStagedChanges").Return(true, nil)
	mockGit.On("Commit", "from detached").Return(nil)
	mockGit.On("Push", "main", false).Return(nil)

	ops, buf := newOps(mockGit)
	err := ops.Push(branch.PushOptions{Message: "from detached"})

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "detached HEAD")
	assert.Contains(t, buf.String(), "pushed to origin/main")
	mockGit.AssertExpectations(t)
}

func TestPushDetachedResolutionFailureAborts(t *testing.T) {
	mockGit := new(testutil.MockGitClient)
	mockGit.On("CurrentBranch").Return("", nil)
	mockGit.On("LocalBranches").Return([]string{}, nil)
	mockGit.On("RemoteBranches").Return([]string{}, nil)
	mockGit.On("RemoteDefaultBranch").Return("", fmt.Errorf("no symbolic ref"))

	ops, buf := newOps(mockGit)
	err := ops.Push(branch.PushOptions{})

	assert.True(t, errors.Is(err, branch.ErrNoBranch))
	assert.Contains(t, buf.String(), "cannot push from detached HEAD")
	mockGit.AssertNotCalled(t, "Add", mock.Anything)
}
