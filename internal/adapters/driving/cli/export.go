package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the categorized data to CSV",
	Long: `Writes the categorized dataset to a CSV file. Single mode writes one
category-name column per response column; multi mode writes one binary
column per category and response column pair.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "",
		"path of the CSV file to write")
	_ = exportCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	if projectService == nil {
		return errors.New("project service not configured")
	}
	project, err := loadProject()
	if err != nil {
		return err
	}

	if err := projectService.Export(project, exportOutput); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	cmd.Printf("Exported %q to %s\n", project.Name, exportOutput)
	return nil
}
