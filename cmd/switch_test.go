package cmd

import (
	"fmt"
	"testing"

	"github.com/Konoa-1025/Cresta-Open-Data/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRunSwitch(t *testing.T) {
	testutil.SetupTest()
	defer testutil.TeardownTest()

	t.Run("switch to existing branch", func(t *testing.T) {
		mockGit := new(testutil.MockGitClient)
		mockGit.On("Fetch").Return(nil)
		mockGit.On("Checkout", "feature-a").Return(nil)

		err := runSwitch(mockGit, "feature-a")

		assert.NoError(t, err)
		mockGit.AssertExpectations(t)
	})

	t.Run("auto-selects default branch without argument", func(t *testing.T) {
		mockGit := new(testutil.MockGitClient)
		mockGit.On("Fetch").Return(nil)
		mockGit.On("LocalBranches").Return([]string{"develop", "main"}, nil)
		mockGit.On("RemoteBranches").Return([]string{}, nil)
		mockGit.On("RemoteDefaultBranch").Return("", fmt.Errorf("no symbolic ref"))
		mockGit.On("Checkout", "main").Return(nil)

		err := runSwitch(mockGit, "")

		assert.NoError(t, err)
		mockGit.AssertExpectations(t)
	})

	t.Run("fetch failure does not abort the switch", func(t *testing.T) {
		mockGit := new(testutil.MockGitClient)
		mockGit.On("Fetch").Return(fmt.Errorf("could not resolve host"))
		mockGit.On("Checkout", "feature-a").Return(nil)

		err := runSwitch(mockGit, "feature-a")

		assert.NoError(t, err)
		mockGit.AssertExpectations(t)
	})

	t.Run("resolution failure surfaces as error", func(t *testing.T) {
		mockGit := new(testutil.MockGitClient)
		mockGit.On("Fetch").Return(nil)
		mockGit.On("LocalBranches").Return([]string{}, nil)
		mockGit.On("RemoteBranches").Return([]string{}, nil)
		mockGit.On("RemoteDefaultBranch").Return("", fmt.Errorf("no symbolic ref"))

		err := runSwitch(mockGit, "")

		assert.Error(t, err)
		mockGit.AssertExpectations(t)
	})
}
