package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var categoryIncludeMissing bool

var categoryCmd = &cobra.Command{
	Use:   "category",
	Short: "Manage the codeframe",
}

var categoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories with response counts",
	RunE:  runCategoryList,
}

var categoryAddCmd = &cobra.Command{
	Use:   "add [name]...",
	Short: "Add one or more categories",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCategoryAdd,
}

var categoryRenameCmd = &cobra.Command{
	Use:   "rename [old] [new]",
	Short: "Rename a category",
	Args:  cobra.ExactArgs(2),
	RunE:  runCategoryRename,
}

var categoryDeleteCmd = &cobra.Command{
	Use:   "delete [name]",
	Short: "Delete a category",
	Long: `Deletes a category. Responses assigned only to it return to
Uncategorized.`,
	Args: cobra.ExactArgs(1),
	RunE: runCategoryDelete,
}

func init() {
	categoryListCmd.Flags().BoolVar(&categoryIncludeMissing, "include-missing", false,
		"count missing cells in the percentage denominator")
	categoryCmd.AddCommand(categoryListCmd)
	categoryCmd.AddCommand(categoryAddCmd)
	categoryCmd.AddCommand(categoryRenameCmd)
	categoryCmd.AddCommand(categoryDeleteCmd)
	rootCmd.AddCommand(categoryCmd)
}

func runCategoryList(cmd *cobra.Command, _ []string) error {
	if codeframeService == nil {
		return errors.New("codeframe service not configured")
	}
	project, err := loadProject()
	if err != nil {
		return err
	}

	metrics := codeframeService.Metrics(project, categoryIncludeMissing)
	if len(metrics) == 0 {
		cmd.Println("No categories.")
		return nil
	}
	for _, m := range metrics {
		cmd.Printf("  %-30s %6d  %5.1f%%\n", m.Name, m.Count, m.Percentage)
	}
	return nil
}

func runCategoryAdd(cmd *cobra.Command, args []string) error {
	if codeframeService == nil {
		return errors.New("codeframe service not configured")
	}
	project, err := loadProject()
	if err != nil {
		return err
	}

	for _, name := range args {
		if err := codeframeService.Create(project, name); err != nil {
			return fmt.Errorf("adding %q: %w", name, err)
		}
	}
	if err := saveProject(project); err != nil {
		return err
	}
	cmd.Printf("Added %d categor%s\n", len(args), plural(len(args), "y", "ies"))
	return nil
}

func runCategoryRename(cmd *cobra.Command, args []string) error {
	if codeframeService == nil {
		return errors.New("codeframe service not configured")
	}
	project, err := loadProject()
	if err != nil {
		return err
	}

	if err := codeframeService.Rename(project, args[0], args[1]); err != nil {
		return fmt.Errorf("rename failed: %w", err)
	}
	if err := saveProject(project); err != nil {
		return err
	}
	cmd.Printf("Renamed %q to %q\n", args[0], args[1])
	return nil
}

func runCategoryDelete(cmd *cobra.Command, args []string) error {
	if codeframeService == nil {
		return errors.New("codeframe service not configured")
	}
	project, err := loadProject()
	if err != nil {
		return err
	}

	if err := codeframeService.Delete(project, args[0]); err != nil {
		return fmt.Errorf("delete failed: %w", err)
	}
	if err := saveProject(project); err != nil {
		return err
	}
	cmd.Printf("Deleted %q; its responses returned to Uncategorized\n", args[0])
	return nil
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
