package cmd

import (
	"fmt"
	"os"

	"github.com/Konoa-1025/Cresta-Open-Data/internal/branch"
	"github.com/Konoa-1025/Cresta-Open-Data/internal/git"
	"github.com/Konoa-1025/Cresta-Open-Data/internal/spinner"
	"github.com/Konoa-1025/Cresta-Open-Data/internal/ui"
	"github.com/spf13/cobra"
)

var switchCmd = &cobra.Command{
	Use:   "switch [branch]",
	Short: "Switch to a branch, creating it if necessary",
	Long: `Switch to the given branch. Without an argument the default branch is
selected automatically (remote default, then main, master, develop,
development, then the first available branch).

If the branch only exists on origin, a local branch tracking it is
created. If it exists nowhere, a new branch is created from the current
HEAD. When all of that fails, the alternative branches (main, master)
are tried in turn.`,
	Example: `  # Switch to a specific branch
  gitops switch feature-x

  # Recover from detached HEAD onto the default branch
  gitops switch`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var target string
		if len(args) > 0 {
			target = args[0]
		}

		client := git.NewGitClient(repoPath)
		if err := runSwitch(client, target); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func runSwitch(client git.GitClient, target string) error {
	// A failed fetch only means remote refs may be stale; resolution can
	// still proceed on what is already known locally.
	if err := spinner.Wrap("Fetching from origin...", client.Fetch); err != nil {
		fmt.Println(ui.Warning(fmt.Sprintf("fetch failed: %v", err)))
	}

	return branch.New(client).ResolveAndSwitch(target)
}
