package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/codify-labs/codify-cli/internal/core/domain"
)

var modeForce bool

var modeCmd = &cobra.Command{
	Use:   "mode [single|multi]",
	Short: "Show or set the categorization mode",
	Long: `Single mode keeps each response in at most one category; multi mode
allows several. Switching multi to single is lossy and refused unless
--force is given, in which case each response keeps its first-assigned
category.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMode,
}

func init() {
	modeCmd.Flags().BoolVar(&modeForce, "force", false,
		"allow a lossy multi to single switch")
	rootCmd.AddCommand(modeCmd)
}

func runMode(cmd *cobra.Command, args []string) error {
	project, err := loadProject()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		cmd.Printf("%s: %s\n", project.Mode, project.Mode.Description())
		return nil
	}

	mode := domain.CategorizationMode(args[0])
	if err := project.SetMode(mode, modeForce); err != nil {
		if errors.Is(err, domain.ErrModeConflict) {
			return fmt.Errorf("%w (rerun with --force to keep each response's first category)", err)
		}
		return fmt.Errorf("setting mode: %w", err)
	}
	if err := saveProject(project); err != nil {
		return err
	}
	cmd.Printf("Mode set to %s\n", mode)
	return nil
}
