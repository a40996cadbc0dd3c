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

var (
	pushMessage string
	pushFiles   []string
	pushBranch  string
	pushForce   bool
)

var pushCmd = &cobra.Command{
	Use:   "push",
	Short: "Stage, commit and push to origin in one step",
	Long: `Stage the given files (or all changes), commit them and push the
current branch to origin.

If HEAD is detached, an appropriate branch is resolved first (--branch,
or the default branch). If nothing is staged after adding, the command
succeeds without committing. A push rejected for a missing upstream
tracking reference is retried once with --set-upstream.

A commit that could not be pushed is left in place; nothing is rolled
back.`,
	Example: `  # Commit everything with a timestamped message and push
  gitops push

  # Commit selected files with a message
  gitops push -m "update datasets" --file data/a.csv --file data/b.csv

  # Recover from detached HEAD onto feature-x, then push
  gitops push -b feature-x`,
	Run: func(cmd *cobra.Command, args []string) {
		client := git.NewGitClient(repoPath)
		opts := branch.PushOptions{
			Branch:  pushBranch,
			Message: pushMessage,
			Files:   pushFiles,
			Force:   pushForce,
		}

		if err := runPush(client, opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	pushCmd.Flags().StringVarP(&pushMessage, "message", "m", "", "Commit message (default: timestamped)")
	pushCmd.Flags().StringArrayVar(&pushFiles, "file", nil, "File to stage (repeatable; default: all changes)")
	pushCmd.Flags().StringVarP(&pushBranch, "branch", "b", "", "Branch to resolve to when HEAD is detached")
	pushCmd.Flags().BoolVarP(&pushForce, "force", "f", false, "Force push")
}

func runPush(client git.GitClient, opts branch.PushOptions) error {
	if err := spinner.Wrap("Fetching from origin...", client.Fetch); err != nil {
		fmt.Println(ui.Warning(fmt.Sprintf("fetch failed: %v", err)))
	}

	return branch.New(client).Push(opts)
}
