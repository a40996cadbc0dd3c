package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/Konoa-1025/Cresta-Open-Data/internal/branch"
	"github.com/Konoa-1025/Cresta-Open-Data/internal/git"
	"github.com/Konoa-1025/Cresta-Open-Data/internal/spinner"
	"github.com/Konoa-1025/Cresta-Open-Data/internal/ui"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current branch and available branches",
	Long: `Display the repository's branch state:
  - Current branch, or a detached HEAD warning with the HEAD commit
  - Local and remote branches
  - The recommended default branch`,
	Example: `  # Show branch state
  gitops status`,
	Run: func(cmd *cobra.Command, args []string) {
		client := git.NewGitClient(repoPath)
		if err := runStatus(client); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func runStatus(client git.GitClient) error {
	if err := spinner.Wrap("Fetching from origin...", client.Fetch); err != nil {
		fmt.Println(ui.Warning(fmt.Sprintf("fetch failed: %v", err)))
	}

	state, err := branch.New(client).Inspect()
	if err != nil {
		return err
	}

	if state.Detached {
		fmt.Println(ui.Warning("currently in detached HEAD state"))
		if hash, err := client.CommitHash("HEAD"); err == nil {
			fmt.Printf("HEAD is at %s\n", ui.Dim(hash))
		}
	} else {
		fmt.Printf("Current branch: %s\n", ui.Branch(state.CurrentBranch))
	}

	printBranchList("Local branches", state.LocalBranches)
	printBranchList("Remote branches", state.RemoteBranches)

	if state.DefaultBranch != "" {
		fmt.Printf("Recommended default branch: %s\n", ui.Branch(state.DefaultBranch))
	} else {
		fmt.Println("No branches found.")
	}

	return nil
}

func printBranchList(label string, branches []string) {
	if len(branches) == 0 {
		fmt.Printf("%s: %s\n", label, ui.Dim("none"))
		return
	}
	fmt.Printf("%s: %s\n", label, strings.Join(branches, ", "))
}
