package testutil

import (
	"github.com/stretchr/testify/mock"
)

// MockGitClient is a mock implementation of git.GitClient for testing
type MockGitClient struct {
	mock.Mock
}

func (m *MockGitClient) RepoRoot() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

func (m *MockGitClient) CurrentBranch() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

func (m *MockGitClient) LocalBranches() ([]string, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockGitClient) RemoteBranches() ([]string, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockGitClient) RemoteDefaultBranch() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

func (m *MockGitClient) CommitHash(ref string) (string, error) {
	args := m.Called(ref)
	return args.String(0), args.Error(1)
}

func (m *MockGitClient) Fetch() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockGitClient) Checkout(name string) error {
	args := m.Called(name)
	return args.Error(0)
}

func (m *MockGitClient) CreateBranch(name string) error {
	args := m.Called(name)
	return args.Error(0)
}

func (m *MockGitClient) CreateTrackingBranch(name string) error {
	args := m.Called(name)
	return args.Error(0)
}

func (m *MockGitClient) Add(path string) error {
	args := m.Called(path)
	return args.Error(0)
}

func (m *MockGitClient) HasStagedChanges() (bool, error) {
	args := m.Called()
	return args.Bool(0), args.Error(1)
}

func (m *MockGitClient) Commit(message string) error {
	args := m.Called(message)
	return args.Error(0)
}

func (m *MockGitClient) Push(branch string, force bool) error {
	args := m.Called(branch, force)
	return args.Error(0)
}

func (m *MockGitClient) PushSetUpstream(branch string) error {
	args := m.Called(branch)
	return args.Error(0)
}
