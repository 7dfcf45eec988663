package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/codify-labs/codify-cli/internal/core/domain"
)

var (
	assignCategories []string
	assignThreshold  int
	assignAll        bool

	recatFrom       string
	recatCategories []string
	recatThreshold  int
)

var assignCmd = &cobra.Command{
	Use:   "assign [query]",
	Short: "Categorize responses matching a query",
	Long: `Runs a fuzzy match and assigns every hit to the given categories.
Single mode takes exactly one --category and overwrites prior
assignments; multi mode adds membership without removing any.`,
	Args: cobra.ExactArgs(1),
	RunE: runAssign,
}

var recategorizeCmd = &cobra.Command{
	Use:   "recategorize [query]",
	Short: "Move matching responses between categories",
	Long: `Runs a fuzzy match over the responses currently in --from and moves
the hits into the given categories.`,
	Args: cobra.ExactArgs(1),
	RunE: runRecategorize,
}

func init() {
	assignCmd.Flags().StringArrayVarP(&assignCategories, "category", "c", nil,
		"category to assign (repeatable in multi mode)")
	assignCmd.Flags().IntVarP(&assignThreshold, "threshold", "t", -1,
		"minimum similarity score 0-100 (default from config, else 75)")
	assignCmd.Flags().BoolVar(&assignAll, "all", false,
		"match categorized responses too")
	_ = assignCmd.MarkFlagRequired("category")

	recategorizeCmd.Flags().StringVar(&recatFrom, "from", "",
		"category the responses currently belong to")
	recategorizeCmd.Flags().StringArrayVarP(&recatCategories, "category", "c", nil,
		"category to move the responses into (repeatable in multi mode)")
	recategorizeCmd.Flags().IntVarP(&recatThreshold, "threshold", "t", -1,
		"minimum similarity score 0-100 (default from config, else 75)")
	_ = recategorizeCmd.MarkFlagRequired("from")
	_ = recategorizeCmd.MarkFlagRequired("category")

	rootCmd.AddCommand(assignCmd)
	rootCmd.AddCommand(recategorizeCmd)
}

func runAssign(cmd *cobra.Command, args []string) error {
	if matchService == nil || assignmentService == nil {
		return errors.New("services not configured")
	}
	project, err := loadProject()
	if err != nil {
		return err
	}

	keys, err := matchKeys(project, args[0], assignThreshold, assignAll)
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		cmd.Println("No matches; nothing assigned.")
		return nil
	}

	if err := assignmentService.Categorize(project, keys, assignCategories); err != nil {
		return fmt.Errorf("assign failed: %w", err)
	}
	if err := saveProject(project); err != nil {
		return err
	}

	cmd.Printf("Assigned %d response(s) to %s\n", len(keys), joinNames(assignCategories))
	return nil
}

func runRecategorize(cmd *cobra.Command, args []string) error {
	if matchService == nil || assignmentService == nil {
		return errors.New("services not configured")
	}
	project, err := loadProject()
	if err != nil {
		return err
	}

	// Match across everything, then keep only the hits currently in --from.
	keys, err := matchKeys(project, args[0], recatThreshold, true)
	if err != nil {
		return err
	}
	keys = filterInCategory(project, keys, recatFrom)
	if len(keys) == 0 {
		cmd.Printf("No matches in %q; nothing moved.\n", recatFrom)
		return nil
	}

	if err := assignmentService.Recategorize(project, keys, recatFrom, recatCategories); err != nil {
		return fmt.Errorf("recategorize failed: %w", err)
	}
	if err := saveProject(project); err != nil {
		return err
	}

	cmd.Printf("Moved %d response(s) from %q to %s\n",
		len(keys), recatFrom, joinNames(recatCategories))
	return nil
}

// matchKeys runs a match and flattens the hits to response keys.
func matchKeys(project *domain.Project, query string, threshold int, includeCategorized bool) ([]domain.ResponseKey, error) {
	if threshold < 0 {
		threshold = defaultThreshold()
	}
	opts := domain.MatchOptions{
		Threshold:          threshold,
		IncludeCategorized: includeCategorized,
	}
	matches, err := matchService.Match(context.Background(), project, query, opts)
	if err != nil {
		return nil, fmt.Errorf("match failed: %w", err)
	}

	var keys []domain.ResponseKey
	for _, m := range matches {
		keys = append(keys, m.Keys...)
	}
	return keys, nil
}

// filterInCategory keeps only the keys currently assigned to category.
func filterInCategory(project *domain.Project, keys []domain.ResponseKey, category string) []domain.ResponseKey {
	var out []domain.ResponseKey
	for _, key := range keys {
		for _, c := range project.Ledger.Categories(key) {
			if c == category {
				out = append(out, key)
				break
			}
		}
	}
	return out
}

func joinNames(names []string) string {
	out := ""
	for i, n := range names {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%q", n)
	}
	return out
}
