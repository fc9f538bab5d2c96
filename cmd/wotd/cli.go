package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/wotd"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx         context.Context
	Stdout      io.Writer
	Stderr      io.Writer
	Logger      *slog.Logger
	WordService wotd.WordService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" env:"WOTD_VERBOSE" help:"Enable debug logging"`
	LogJSON bool `name:"log-json" env:"WOTD_LOG_JSON" help:"Write logs as JSON"`

	Serve ServeCmd `cmd:"" help:"Serve the word of the day over HTTP"`
	Fetch FetchCmd `cmd:"" help:"Print the word of the day once"`
}

// LookupFlags configure the word of the day lookup.
type LookupFlags struct {
	BaseURL   string        `name:"base-url" default:"https://www.duden.de" env:"WOTD_BASE_URL" help:"Dictionary site to query"`
	Sentinel  string        `default:"N/A" env:"WOTD_SENTINEL" help:"Placeholder for fields that could not be extracted (e.g. \"nicht verfügbar\")"`
	DebugInfo bool          `name:"debug-info" env:"WOTD_DEBUG_INFO" help:"Attach debug information to every record"`
	Timeout   time.Duration `short:"t" default:"10s" env:"WOTD_TIMEOUT" help:"Timeout per upstream request"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	LookupFlags `embed:""`

	Addr string `default:":8080" env:"WOTD_ADDR" help:"Listen address"`
}

// FetchCmd is the "fetch" subcommand.
type FetchCmd struct {
	LookupFlags `embed:""`

	Format string `short:"f" enum:"json,yaml" default:"json" help:"Output format (json or yaml)"`
}
