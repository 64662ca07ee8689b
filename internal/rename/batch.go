package rename

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// csvHeader is the header row written to output CSV files.
var csvHeader = []string{"Original Name", "Updated Name"}

// ProcessList rewrites every name in order and returns one Result per
// input, preserving order and count. A human-readable line per item is
// written to w.
func ProcessList(w io.Writer, names []string) []Result {
	results := make([]Result, 0, len(names))
	for _, name := range names {
		r := Result{Original: name, Updated: Rewrite(name)}
		results = append(results, r)
		reportResult(w, r)
	}
	return results
}

// ProcessCSV reads account names from the first column of inputPath (no
// header expected), rewrites each, and writes an "Original Name,Updated
// Name" CSV to outputPath. Empty rows are skipped; file I/O errors are
// fatal and returned.
func ProcessCSV(w io.Writer, inputPath, outputPath string) ([]Result, error) {
	in, err := os.Open(inputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer in.Close()

	out, err := os.Create(outputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create output: %w", err)
	}
	defer out.Close()

	reader := csv.NewReader(in)
	reader.FieldsPerRecord = -1 // rows are free-form; only the first column matters

	writer := csv.NewWriter(out)
	if err := writer.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	var results []Result
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read input: %w", err)
		}
		if len(row) == 0 || row[0] == "" {
			continue
		}

		r := Result{Original: row[0], Updated: Rewrite(row[0])}
		results = append(results, r)
		reportResult(w, r)

		if err := writer.Write([]string{r.Original, r.Updated}); err != nil {
			return nil, fmt.Errorf("failed to write row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush output: %w", err)
	}

	return results, nil
}

func reportResult(w io.Writer, r Result) {
	if r.Changed() {
		fmt.Fprintf(w, "CHANGED: %s -> %s\n", r.Original, r.Updated)
	} else {
		fmt.Fprintf(w, "NO CHANGE: %s\n", r.Original)
	}
}
