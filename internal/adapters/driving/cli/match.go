package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/codify-labs/codify-cli/internal/core/domain"
)

var (
	matchThreshold int
	matchAll       bool
	matchJSON      bool
)

var matchCmd = &cobra.Command{
	Use:   "match [query]",
	Short: "Find responses similar to a query",
	Long: `Scores every uncategorized response against the query with fuzzy
matching (0-100) and lists the hits at or above the threshold, best
first. Identical responses are listed once with their occurrence count.

Pass --all to search categorized responses too, e.g. before
recategorizing.`,
	Args: cobra.ExactArgs(1),
	RunE: runMatch,
}

func init() {
	matchCmd.Flags().IntVarP(&matchThreshold, "threshold", "t", -1,
		"minimum similarity score 0-100 (default from config, else 75)")
	matchCmd.Flags().BoolVar(&matchAll, "all", false,
		"include already categorized responses")
	matchCmd.Flags().BoolVar(&matchJSON, "json", false,
		"output results as JSON")
	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, args []string) error {
	if matchService == nil {
		return errors.New("match service not configured")
	}
	project, err := loadProject()
	if err != nil {
		return err
	}

	threshold := matchThreshold
	if threshold < 0 {
		threshold = defaultThreshold()
	}
	opts := domain.MatchOptions{
		Threshold:          threshold,
		IncludeCategorized: matchAll,
	}

	matches, err := matchService.Match(context.Background(), project, args[0], opts)
	if err != nil {
		return fmt.Errorf("match failed: %w", err)
	}

	if matchJSON {
		return outputMatchJSON(cmd, matches)
	}
	return outputMatchTable(cmd, matches, threshold)
}

func outputMatchJSON(cmd *cobra.Command, matches []domain.Match) error {
	data, err := json.MarshalIndent(matches, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputMatchTable(cmd *cobra.Command, matches []domain.Match, threshold int) error {
	if len(matches) == 0 {
		cmd.Printf("No matches at threshold %d.\n", threshold)
		return nil
	}

	width := terminalWidth()
	cmd.Printf("%d match(es) at threshold %d:\n\n", len(matches), threshold)
	for _, m := range matches {
		text := m.Text
		// score + count prefix takes about 16 columns
		if max := width - 16; max > 10 && len(text) > max {
			text = text[:max-3] + "..."
		}
		cmd.Printf("  %3d  x%-4d %s\n", m.Score, m.Count, text)
	}
	return nil
}

// terminalWidth returns the width of the attached terminal, or 80.
func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}
