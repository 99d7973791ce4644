package main

import (
	"fmt"

	"github.com/frederickpi/pagedate"
	"github.com/frederickpi/pagedate/batch"
	"github.com/frederickpi/pagedate/fs"
)

// Run executes the batch command.
func (c *BatchCmd) Run(deps *Dependencies) error {
	entries, err := fs.ReadDataset(c.Dataset)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagedate.ErrorMessage(err))
		return err
	}

	runner := &batch.Runner{
		Extractor:   deps.Extractor,
		Baseline:    deps.Baseline,
		Store:       deps.Store,
		Concurrency: c.Concurrency,
	}

	records, err := runner.Run(deps.Ctx, entries, func(e batch.ProgressEvent) {
		switch e.Type {
		case batch.ProgressStarted:
			fmt.Fprintf(deps.Stderr, "extracting %d pages\n", e.Total)
		case batch.ProgressCompleted:
			suffix := ""
			if e.Cached {
				suffix = " (cached)"
			}
			fmt.Fprintf(deps.Stderr, "[%d/%d] %s%s\n", e.Completed, e.Total, e.URL, suffix)
		case batch.ProgressFinished:
			fmt.Fprintf(deps.Stderr, "done: %d pages\n", e.Total)
		}
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	if err := fs.NewWriter(c.Out).WriteJSON(records); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}
	fmt.Fprintf(deps.Stderr, "wrote %d records to %s\n", len(records), c.Out)
	return nil
}
