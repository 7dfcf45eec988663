package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var recentLimit int

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "List recently opened projects",
	RunE:  runRecent,
}

var recentForgetCmd = &cobra.Command{
	Use:   "forget [path]",
	Short: "Remove a project from the recent list",
	Args:  cobra.ExactArgs(1),
	RunE:  runRecentForget,
}

func init() {
	recentCmd.Flags().IntVarP(&recentLimit, "limit", "n", 10,
		"maximum number of entries")
	recentCmd.AddCommand(recentForgetCmd)
	rootCmd.AddCommand(recentCmd)
}

func runRecent(cmd *cobra.Command, _ []string) error {
	if sessionStore == nil {
		return errors.New("session store not configured")
	}

	entries, err := sessionStore.Recent(recentLimit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		cmd.Println("No recent projects.")
		return nil
	}
	for _, e := range entries {
		cmd.Printf("  %s  %-20s %s\n",
			e.LastOpened.Local().Format("2006-01-02 15:04"), e.Name, e.Path)
	}
	return nil
}

func runRecentForget(cmd *cobra.Command, args []string) error {
	if sessionStore == nil {
		return errors.New("session store not configured")
	}
	if err := sessionStore.Forget(args[0]); err != nil {
		return err
	}
	cmd.Printf("Forgot %s\n", args[0])
	return nil
}
