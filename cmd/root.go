package cmd

import (
	"fmt"
	"os"

	"github.com/Konoa-1025/Cresta-Open-Data/internal/git"
	"github.com/Konoa-1025/Cresta-Open-Data/internal/spinner"
	"github.com/spf13/cobra"
)

var (
	verbose  bool
	repoPath string
)

var rootCmd = &cobra.Command{
	Use:   "gitops",
	Short: "Robust git branch switching and push operations",
	Long: `A CLI tool for robust git operations: determining the current branch,
recovering from detached HEAD state, selecting a sensible default branch,
creating branches on demand, and committing and pushing in one step.

All state lives in the git repository itself; the tool only wraps the
git command line with sensible fallback logic.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		git.Verbose = verbose
		spinner.Enabled = !verbose

		if err := validateRepo(git.NewGitClient(repoPath)); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

// validateRepo checks that repoPath is inside a git repository, keeping
// the underlying git error (timeout, missing binary, not a repository)
// in the diagnostic.
func validateRepo(client git.GitClient) error {
	if _, err := client.RepoRoot(); err != nil {
		return fmt.Errorf("not a git repository: %w", err)
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show executed git commands")
	rootCmd.PersistentFlags().StringVar(&repoPath, "repo", ".", "Path to the git repository")

	// Add subcommands
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(switchCmd)
	rootCmd.AddCommand(pushCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
