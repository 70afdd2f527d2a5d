package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/crawldex"
	"github.com/fwojciec/crawldex/crawl"
	"github.com/fwojciec/crawldex/fs"
	"github.com/fwojciec/crawldex/goquery"
	crawlhttp "github.com/fwojciec/crawldex/http"
	"github.com/fwojciec/crawldex/prometheus"
	crawlslog "github.com/fwojciec/crawldex/slog"
	"github.com/fwojciec/crawldex/yaml"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Getenv looks up configuration overrides. Defaults to os.Getenv.
	Getenv func(string) string

	// Index is the session index. It survives across Run calls on the
	// same Main, so a build followed by a find reuses the crawled index.
	Index *crawldex.Index
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Getenv: os.Getenv,
		Index:  crawldex.NewIndex(),
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Index:  m.Index,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("crawldex"),
		kong.Description("Crawl a website, build an inverted index and search it."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'crawldex --help' to see available commands")
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

	cfg, err := yaml.LoadConfig(cli.Config, m.Getenv)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", crawldex.ErrorMessage(err))
		return err
	}
	if cli.LogLevel != "" {
		cfg.Log.Level = cli.LogLevel
	}
	if cli.LogFormat != "" {
		cfg.Log.Format = cli.LogFormat
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "error: %s\n", crawldex.ErrorMessage(err))
		return err
	}

	logger, err := newLogger(stderr, cfg.Log)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", crawldex.ErrorMessage(err))
		return err
	}

	deps.Config = cfg
	deps.Logger = logger
	deps.Stores = func(path string) crawldex.IndexStore {
		return crawlslog.NewLoggingIndexStore(fs.NewIndexStore(path), logger.With("path", path))
	}

	if kongCtx.Command() == "build" {
		fetcher := crawlhttp.NewFetcher(
			crawlhttp.WithTimeout(cfg.FetchTimeout),
			crawlhttp.WithUserAgent(cfg.UserAgent),
			crawlhttp.WithMaxBodySize(cfg.MaxBodySize),
		)
		defer fetcher.Close()

		deps.Metrics = prometheus.NewMetrics()
		deps.Crawler = &crawl.Crawler{
			Fetcher:     crawlslog.NewLoggingFetcher(prometheus.NewFetcher(fetcher, deps.Metrics), logger),
			Parser:      goquery.NewParser(),
			RateLimiter: crawl.NewDomainLimiter(cfg.Delay),
			Logger:      logger,
			MaxPages:    cfg.MaxPages,
		}
	}

	err = kongCtx.Run(deps)
	m.Index = deps.Index
	return err
}

// newLogger builds a slog logger writing to w.
func newLogger(w io.Writer, cfg crawldex.LogConfig) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, crawldex.Errorf(crawldex.EINVALID, "unknown log level %q", cfg.Level)
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}
