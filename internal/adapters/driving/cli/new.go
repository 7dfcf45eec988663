package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var newOutput string

var newCmd = &cobra.Command{
	Use:   "new [datafile]",
	Short: "Create a project from a data file",
	Long: `Creates a new project by importing a tabular data file (.csv, .tsv
or .xlsx). The first column must hold unique row identifiers; every other
column is treated as response text. All responses start uncategorized.`,
	Args: cobra.ExactArgs(1),
	RunE: runNew,
}

func init() {
	newCmd.Flags().StringVarP(&newOutput, "output", "o", "",
		"path of the project file to create (default <datafile>.codify.json)")
	rootCmd.AddCommand(newCmd)
}

func runNew(cmd *cobra.Command, args []string) error {
	if projectService == nil {
		return errors.New("project service not configured")
	}

	project, err := projectService.Import(args[0])
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	out := newOutput
	if out == "" {
		out = strings.TrimSuffix(args[0], "."+extOf(args[0])) + ".codify.json"
	}
	if err := projectService.Save(project, out); err != nil {
		return fmt.Errorf("saving project: %w", err)
	}

	ds := project.Dataset
	cmd.Printf("Created project %q: %d rows, %d response column(s), %d missing cell(s)\n",
		project.Name, len(ds.RowIDs()), len(ds.Columns), ds.MissingCount())
	cmd.Printf("Project file: %s\n", out)
	return nil
}

func extOf(path string) string {
	i := strings.LastIndex(path, ".")
	if i < 0 {
		return ""
	}
	return path[i+1:]
}
