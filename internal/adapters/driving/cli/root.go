// Package cli implements the cobra command tree. Commands are stateless:
// each one loads the project file named by --project, applies its
// operation and writes the file back.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/codify-labs/codify-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	verbose     bool
	projectPath string
)

var rootCmd = &cobra.Command{
	Use:   "codify",
	Short: "Categorize open-ended survey responses with fuzzy matching",
	Long: `Codify categorizes free-text survey responses into a user-defined
codeframe. Fuzzy matching surfaces responses similar to a query so whole
groups can be coded at once, in single or multi categorization mode.

Start by importing a data file (csv, tsv or xlsx; first column unique
identifiers, remaining columns response text):

  codify new responses.csv -o study.codify.json

Then match and categorize, from the command line or the interactive UI:

  codify match "apple" -p study.codify.json --threshold 75
  codify tui -p study.codify.json`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable verbose logging to stderr")
	rootCmd.PersistentFlags().StringVarP(&projectPath, "project", "p", "",
		"path of the project file")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}
