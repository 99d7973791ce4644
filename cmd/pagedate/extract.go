package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/frederickpi/pagedate"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	var html []byte
	var err error
	if c.Path == "-" {
		html, err = io.ReadAll(os.Stdin)
	} else {
		html, err = os.ReadFile(c.Path)
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return pagedate.Errorf(pagedate.ENOTFOUND, "cannot read %q: %v", c.Path, err)
	}

	result := deps.Extractor.Extract(deps.Ctx, pagedate.Source{URL: c.URL, HTML: string(html)})

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(deps.Stdout, string(out))
	return nil
}
