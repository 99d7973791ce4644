package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/frederickpi/pagedate"
	"github.com/frederickpi/pagedate/batch"
	"github.com/frederickpi/pagedate/fs"
)

// Run executes the cutoff command.
func (c *CutoffCmd) Run(deps *Dependencies) error {
	cutoff, err := time.Parse(pagedate.DateFormat, c.Date)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: cutoff must be YYYY-MM-DD, got %q\n", c.Date)
		return pagedate.Errorf(pagedate.EINVALID, "invalid cutoff date %q", c.Date)
	}

	records, err := readRecords(c.Records)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagedate.ErrorMessage(err))
		return err
	}

	rows := batch.Cutoff(records, cutoff.UTC())

	if c.Out != "" {
		if err := fs.NewWriter(c.Out).WriteJSON(rows); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", err)
			return err
		}
		fmt.Fprintf(deps.Stderr, "kept %d of %d records\n", len(rows), len(records))
		return nil
	}

	out, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(deps.Stdout, string(out))
	return nil
}

// readRecords loads a records file produced by the batch command.
func readRecords(path string) ([]*pagedate.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, pagedate.Errorf(pagedate.ENOTFOUND, "records %s: %v", path, err)
	}
	var records []*pagedate.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, pagedate.Errorf(pagedate.EINVALID, "malformed records file: %v", err)
	}
	return records, nil
}
