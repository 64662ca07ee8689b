package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"adrename/internal/config"
	"adrename/internal/meta"
	"adrename/internal/updater"

	"github.com/spf13/cobra"
)

var (
	updateYes     bool
	updateDryOnly bool
)

// updateCmd runs the remote workflow: dry run, confirmation, live run.
var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Rename ad accounts via the Marketing API (dry run, then confirm)",
	Long: `Lists the active ad accounts reachable with the configured access
token, computes the rename for each, and shows what would change.
Nothing is mutated until you confirm; declining ends the run normally.

Credentials come from the config file (see --config) or the
ADRENAME_ACCESS_TOKEN environment variable.`,
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().BoolVarP(&updateYes, "yes", "y", false, "skip the confirmation prompt")
	updateCmd.Flags().BoolVar(&updateDryOnly, "dry-run", false, "report intended changes and stop")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		// Credentials guidance, not a stack trace: abort before any
		// network call.
		fmt.Println(errorStyle.Render(err.Error()))
		return err
	}

	client := meta.NewClient(cfg.AccessToken, cfg.APIVersion, cfg.BaseURL, logger)
	u := updater.New(client, logger)
	u.SetDelay(cfg.UpdateDelayDuration())

	ctx := cmd.Context()

	fmt.Println(headingStyle.Render("Running DRY RUN - no changes will be made"))
	dry := u.Run(ctx, true)

	fmt.Println()
	fmt.Println(headingStyle.Render("DRY RUN RESULTS"))
	fmt.Printf("Total accounts: %d\n", dry.Total)
	fmt.Printf("Would change: %d\n", dry.Changed)
	fmt.Printf("No change needed: %d\n", dry.Unchanged)

	if dry.Total == 0 {
		fmt.Println("No active ad accounts found (or the listing call failed; see logs).")
		return nil
	}
	if dry.Changed == 0 {
		fmt.Println(successStyle.Render("Nothing to update."))
		return nil
	}

	if updateDryOnly {
		return nil
	}

	if !updateYes && !confirm(fmt.Sprintf("Proceed with updating %d accounts? (y/N): ", dry.Changed)) {
		fmt.Println("Aborted; no changes were made.")
		return nil
	}

	fmt.Println()
	fmt.Println(headingStyle.Render("Processing actual updates"))
	final := u.Run(ctx, false)

	fmt.Println()
	fmt.Println(headingStyle.Render("FINAL RESULTS"))
	fmt.Println(successStyle.Render(fmt.Sprintf("Successfully updated: %d", final.Changed)))
	if final.Errors > 0 {
		fmt.Println(errorStyle.Render(fmt.Sprintf("Errors: %d", final.Errors)))
	} else {
		fmt.Printf("Errors: %d\n", final.Errors)
	}

	return nil
}

// confirm prompts on stdin and accepts only an explicit "y"/"yes".
func confirm(prompt string) bool {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
