package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/frederickpi/pagedate"
	"github.com/frederickpi/pagedate/batch"
	"github.com/frederickpi/pagedate/dateparse"
	"github.com/frederickpi/pagedate/extract"
	"github.com/frederickpi/pagedate/gemini"
	"github.com/frederickpi/pagedate/goquery"
	"github.com/frederickpi/pagedate/htmldate"
	"github.com/frederickpi/pagedate/htmltomarkdown"
	pagedateslog "github.com/frederickpi/pagedate/slog"
	"github.com/frederickpi/pagedate/sqlite"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite record cache, opened only for batch runs with --db.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pagedate"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pagedate --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg := pagedate.DefaultConfig()
	cfg.DayFirst = cli.DayFirst
	if cli.FloorYear > 0 {
		cfg.FloorYear = cli.FloorYear
	}
	deps.Config = cfg

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelInfo
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Wire the fallback only when requested: it needs a live API key.
	var fallback pagedate.Fallback
	useFallback := (cmd == "extract" && cli.Extract.Fallback) || (cmd == "batch" && cli.Batch.Fallback)
	if useFallback {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return fmt.Errorf("GEMINI_API_KEY not set")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		counter, err := gemini.NewTokenCounter(tokenizerModel)
		if err != nil {
			return fmt.Errorf("failed to create token counter: %w", err)
		}

		fallback = gemini.NewFallback(client, htmltomarkdown.NewConverter(), counter)
		fallback = pagedateslog.NewLoggingFallback(fallback, deps.Logger)
		if cmd == "batch" {
			fallback = batch.NewRateLimitedFallback(fallback, cli.Batch.RPS)
		}
	}

	var extractor pagedate.Extractor = &extract.Pipeline{
		Scanners:   goquery.DefaultScanners(),
		Normalizer: dateparse.NewNormalizer(cfg),
		Fallback:   fallback,
		Config:     cfg,
	}
	if cli.Verbose {
		extractor = pagedateslog.NewLoggingExtractor(extractor, deps.Logger)
	}
	deps.Extractor = extractor

	if cmd == "batch" {
		if cli.Batch.Baseline {
			deps.Baseline = htmldate.NewExtractor(cfg)
		}
		if cli.Batch.DB != "" {
			m.DB = sqlite.NewDB(cli.Batch.DB)
			if err := m.DB.Open(); err != nil {
				fmt.Fprintln(stderr, "Hint: Set PAGEDATE_DB or --db to a writable path")
				return fmt.Errorf("failed to open cache at %q: %w", cli.Batch.DB, err)
			}
			defer m.Close()
			deps.Store = sqlite.NewRecordStore(m.DB)
		}
	}

	return kongCtx.Run(deps)
}

// tokenizerModel is used for local token counting before fallback calls.
const tokenizerModel = "gemini-2.5-flash"
