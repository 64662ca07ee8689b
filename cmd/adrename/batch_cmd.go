package main

import (
	"fmt"
	"os"

	"adrename/internal/rename"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	batchInput  string
	batchOutput string
)

// batchCmd rewrites names offline, from arguments or a CSV file. No
// network access.
var batchCmd = &cobra.Command{
	Use:   "batch [name ...]",
	Short: "Rewrite account names from a list or CSV file (offline)",
	Long: `Applies the rename rule to a static set of account names.

Names come either from positional arguments or, with --in, from the
first column of a CSV file (no header expected). With --out the
original/updated pairs are written as a two-column CSV with header.

Example:
  adrename batch "Washington Yakima Mission - North America West Area"
  adrename batch --in accounts.csv --out renamed.csv`,
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringVar(&batchInput, "in", "", "input CSV file (first column: account name)")
	batchCmd.Flags().StringVar(&batchOutput, "out", "", "output CSV file (Original Name,Updated Name)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	if batchInput == "" && len(args) == 0 {
		return fmt.Errorf("nothing to process: pass names as arguments or use --in")
	}

	var results []rename.Result

	if batchInput != "" {
		out := batchOutput
		if out == "" {
			out = "renamed.csv"
		}
		var err error
		results, err = rename.ProcessCSV(os.Stdout, batchInput, out)
		if err != nil {
			logger.Error("batch processing failed", zap.Error(err))
			return err
		}
		fmt.Printf("Wrote %s\n", out)
	} else {
		results = rename.ProcessList(os.Stdout, args)
	}

	changed := 0
	for _, r := range results {
		if r.Changed() {
			changed++
		}
	}

	fmt.Println()
	fmt.Println(headingStyle.Render(fmt.Sprintf("Processed %d accounts", len(results))))
	fmt.Printf("Changed: %d\n", changed)
	fmt.Printf("Unchanged: %d\n", len(results)-changed)

	return nil
}
