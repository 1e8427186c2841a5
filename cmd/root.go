/*
Copyright © 2026 ソニーレベル <C7kali3@gmail.com>

*/
package cmd

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

// Version is the semantic version (set via -ldflags)
var Version = "dev"

var (
	// Global flags
	noGitHub   bool
	publicRepo bool
	verbose    bool
)

// rootCmd represents the base command - runs directly without subcommand
var rootCmd = &cobra.Command{
	Use:   "pyboot <prefix>",
	Short: "Bootstrap a standardized Python project",
	Long: `pyboot sets up a standardized Python project in the current directory:
virtual environment, dependency manifests, src/ layout, and a Git
repository with an optional GitHub remote.

The project name is derived from the current directory name and the
given prefix. Run from a folder named "my-project":

  pyboot acme

creates a project named "acme-my-project".

Examples:
  pyboot acme
  pyboot acme --no-github
  pyboot acme --public
  pyboot acme --verbose`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return executeSetup(cmd.Context(), args[0])
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// fang.Execute for enhanced Cobra styling
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(Version),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&noGitHub, "no-github", false, "Skip GitHub repository creation")
	rootCmd.Flags().BoolVar(&publicRepo, "public", false, "Create the GitHub repository as public (default: private)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}
