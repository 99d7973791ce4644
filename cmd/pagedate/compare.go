package main

import (
	"encoding/json"
	"fmt"

	"github.com/frederickpi/pagedate"
	"github.com/frederickpi/pagedate/batch"
)

// Run executes the compare command.
func (c *CompareCmd) Run(deps *Dependencies) error {
	records, err := readRecords(c.Records)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagedate.ErrorMessage(err))
		return err
	}

	stats := batch.Compare(records)

	out, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(deps.Stdout, string(out))
	return nil
}
