// Package fs reads batch datasets from disk and writes result files.
package fs

import (
	"bufio"
	"encoding/json"
	"errors"
	"io"
	"os"

	"github.com/frederickpi/pagedate"
)

// ReadDataset loads a dataset file.
func ReadDataset(path string) ([]*pagedate.Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, pagedate.Errorf(pagedate.ENOTFOUND, "dataset %s: %v", path, err)
	}
	defer f.Close()
	return DecodeDataset(f)
}

// DecodeDataset decodes a dataset from r. Both layouts are accepted: a single
// JSON array of entries, or newline-delimited JSON with one entry per line.
func DecodeDataset(r io.Reader) ([]*pagedate.Entry, error) {
	br := bufio.NewReader(r)

	first, err := peekNonSpace(br)
	if err != nil {
		return nil, pagedate.Errorf(pagedate.EINVALID, "empty dataset")
	}

	if first == '[' {
		var entries []*pagedate.Entry
		if err := json.NewDecoder(br).Decode(&entries); err != nil {
			return nil, pagedate.Errorf(pagedate.EINVALID, "malformed dataset: %v", err)
		}
		return entries, nil
	}

	var entries []*pagedate.Entry
	dec := json.NewDecoder(br)
	for {
		var e pagedate.Entry
		if err := dec.Decode(&e); errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return nil, pagedate.Errorf(pagedate.EINVALID, "malformed dataset line %d: %v", len(entries)+1, err)
		}
		entries = append(entries, &e)
	}
	return entries, nil
}

// peekNonSpace returns the first non-whitespace byte without consuming it.
func peekNonSpace(br *bufio.Reader) (byte, error) {
	for {
		b, err := br.Peek(1)
		if err != nil {
			return 0, err
		}
		switch b[0] {
		case ' ', '\t', '\r', '\n':
			if _, err := br.Discard(1); err != nil {
				return 0, err
			}
		default:
			return b[0], nil
		}
	}
}
