package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/frederickpi/pagedate"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Config    pagedate.Config
	Extractor pagedate.Extractor
	Baseline  pagedate.Baseline
	Store     pagedate.RecordStore
	Logger    *slog.Logger
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DayFirst  bool `help:"Prefer day-first order for ambiguous numeric dates"`
	FloorYear int  `default:"1990" help:"Earliest plausible year for extracted dates"`
	Verbose   bool `short:"v" help:"Log each document to stderr"`

	Extract ExtractCmd `cmd:"" help:"Extract dates from one HTML document"`
	Batch   BatchCmd   `cmd:"" help:"Extract dates for every page in a dataset"`
	Cutoff  CutoffCmd  `cmd:"" help:"Filter extracted records by a cutoff date"`
	Compare CompareCmd `cmd:"" help:"Summarize agreement with the baseline extractor"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Path     string `arg:"" help:"HTML file to read, or - for stdin"`
	URL      string `short:"u" help:"URL the document was fetched from"`
	Fallback bool   `help:"Consult the Gemini fallback when nothing is found"`
}

// BatchCmd is the "batch" subcommand.
type BatchCmd struct {
	Dataset     string  `arg:"" help:"Dataset file (JSON array or newline-delimited JSON)"`
	Out         string  `short:"o" default:"records.json" help:"Results file"`
	DB          string  `env:"PAGEDATE_DB" help:"SQLite cache path for resumable runs"`
	Concurrency int     `short:"c" default:"10" help:"Concurrent extraction limit"`
	Fallback    bool    `help:"Consult the Gemini fallback when nothing is found"`
	Baseline    bool    `help:"Record go-htmldate baseline answers alongside results"`
	RPS         float64 `default:"1" help:"Fallback calls per second"`
}

// CutoffCmd is the "cutoff" subcommand.
type CutoffCmd struct {
	Records string `arg:"" help:"Records file produced by 'pagedate batch'"`
	Date    string `arg:"" help:"Cutoff date (YYYY-MM-DD), inclusive"`
	Out     string `short:"o" help:"Output file (stdout when omitted)"`
}

// CompareCmd is the "compare" subcommand.
type CompareCmd struct {
	Records string `arg:"" help:"Records file produced by 'pagedate batch --baseline'"`
}
