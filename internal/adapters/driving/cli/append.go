package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var appendCmd = &cobra.Command{
	Use:   "append [datafile]",
	Short: "Append a data file to the project",
	Long: `Imports another data file with the same column shape into the
project. New responses start uncategorized, except those whose text is
already categorized elsewhere in the project; they inherit the existing
assignments.`,
	Args: cobra.ExactArgs(1),
	RunE: runAppend,
}

func init() {
	rootCmd.AddCommand(appendCmd)
}

func runAppend(cmd *cobra.Command, args []string) error {
	project, err := loadProject()
	if err != nil {
		return err
	}

	before := len(project.Dataset.Responses)
	if err := projectService.Append(project, args[0]); err != nil {
		return fmt.Errorf("append failed: %w", err)
	}
	if err := saveProject(project); err != nil {
		return err
	}

	cmd.Printf("Appended %d response(s); project now holds %d rows\n",
		len(project.Dataset.Responses)-before, len(project.Dataset.RowIDs()))
	return nil
}
