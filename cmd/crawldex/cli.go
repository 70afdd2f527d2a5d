package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/crawldex"
	"github.com/fwojciec/crawldex/crawl"
	"github.com/fwojciec/crawldex/prometheus"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Config  *crawldex.Config
	Stores  func(path string) crawldex.IndexStore
	Crawler *crawl.Crawler
	Metrics *prometheus.Metrics

	// Index is the session index. Commands replace it on build and load.
	Index *crawldex.Index
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config    string `help:"YAML config file (default: crawldex.yaml if present)"`
	LogLevel  string `name:"log-level" help:"Log level: debug, info, warn or error"`
	LogFormat string `name:"log-format" help:"Log format: text or json"`

	Build BuildCmd `cmd:"" help:"Crawl the site and build the index"`
	Load  LoadCmd  `cmd:"" help:"Load an index file"`
	Print PrintCmd `cmd:"" help:"Print the postings of a word"`
	Find  FindCmd  `cmd:"" help:"Find pages containing every query word"`
}

// BuildCmd is the "build" subcommand.
type BuildCmd struct {
	Output   string         `short:"o" help:"Index file to write"`
	StartURL string         `name:"start-url" help:"URL to start crawling from"`
	Delay    *time.Duration `help:"Politeness delay between requests"`
	MaxPages *int           `name:"max-pages" help:"Stop after this many pages (0 for no limit)"`
	Metrics  string         `name:"metrics-file" help:"Write Prometheus metrics to this file"`
}

// LoadCmd is the "load" subcommand.
type LoadCmd struct {
	Input string `short:"i" help:"Index file to read"`
}

// PrintCmd is the "print" subcommand.
type PrintCmd struct {
	Word string `arg:"" help:"Word to look up"`
}

// FindCmd is the "find" subcommand.
type FindCmd struct {
	Query []string `arg:"" help:"Search terms"`
}
