package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var responsesCmd = &cobra.Command{
	Use:   "responses [category]",
	Short: "List the responses in a category",
	Long: `Lists a category's responses deduplicated by normalised text with
occurrence counts, most frequent first. Use the category name
"Uncategorized" for the unassigned pool.`,
	Args: cobra.ExactArgs(1),
	RunE: runResponses,
}

func init() {
	rootCmd.AddCommand(responsesCmd)
}

func runResponses(cmd *cobra.Command, args []string) error {
	if assignmentService == nil {
		return errors.New("assignment service not configured")
	}
	project, err := loadProject()
	if err != nil {
		return err
	}

	counts, err := assignmentService.ResponsesIn(project, args[0])
	if err != nil {
		return fmt.Errorf("listing %q: %w", args[0], err)
	}
	if len(counts) == 0 {
		cmd.Printf("%q is empty.\n", args[0])
		return nil
	}

	cmd.Printf("%d distinct response(s) in %q:\n\n", len(counts), args[0])
	for _, c := range counts {
		cmd.Printf("  x%-4d %s\n", c.Count, c.Text)
	}
	return nil
}
