package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	// Packages
	kong "github.com/alecthomas/kong"
	client "github.com/mutablelogic/go-client"
	logger "github.com/mutablelogic/go-server/pkg/logger"
	httpclient "github.com/mutablelogic/go-weatherstock/pkg/httpclient"
	openmeteo "github.com/mutablelogic/go-weatherstock/pkg/openmeteo"
	prompt "github.com/mutablelogic/go-weatherstock/pkg/prompt"
	tool "github.com/mutablelogic/go-weatherstock/pkg/tool"
	yahoo "github.com/mutablelogic/go-weatherstock/pkg/yahoo"
	otel "go.opentelemetry.io/otel"
	trace "go.opentelemetry.io/otel/trace"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type Globals struct {
	// Debugging
	Debug   bool `name:"debug" help:"Enable debug output"`
	Verbose bool `name:"verbose" help:"Enable verbose output"`

	// HTTP server and client options
	HTTP struct {
		Addr    string        `name:"addr" env:"WEATHERSTOCK_ADDR" default:"localhost:8085" help:"HTTP listen address"`
		Prefix  string        `name:"prefix" default:"/api" help:"HTTP path prefix"`
		Origin  string        `name:"origin" default:"" help:"Allowed CORS origin"`
		Timeout time.Duration `name:"timeout" help:"Timeout for upstream requests (no timeout when zero)"`
		Remote  string        `name:"remote" env:"WEATHERSTOCK_REMOTE" help:"Use the tools and prompts of a running server, e.g. http://localhost:8085/api"`
	} `embed:"" prefix:"http."`

	// Prompt definitions
	PromptDir string `name:"prompts" env:"WEATHERSTOCK_PROMPTS" type:"existingdir" help:"Directory of prompt definitions (*.yaml) to serve instead of the built-in prompts"`

	// Upstream endpoints
	OpenMeteo struct {
		ForecastEndpoint  string `name:"forecast-endpoint" env:"OPENMETEO_FORECAST_ENDPOINT" help:"Open-Meteo forecast endpoint"`
		GeocodingEndpoint string `name:"geocoding-endpoint" env:"OPENMETEO_GEOCODING_ENDPOINT" help:"Open-Meteo geocoding endpoint"`
	} `embed:"" prefix:"openmeteo."`
	Yahoo struct {
		Endpoint       string `name:"endpoint" env:"YAHOO_ENDPOINT" help:"Yahoo Finance endpoint"`
		CookieEndpoint string `name:"cookie-endpoint" env:"YAHOO_COOKIE_ENDPOINT" help:"Yahoo session cookie endpoint"`
	} `embed:"" prefix:"yahoo."`

	// Context
	ctx      context.Context
	logger   *slog.Logger
	tracer   trace.Tracer
	execName string
}

type CLI struct {
	Globals
	ServerCommands
	ToolCommands
	PromptCommands
	VersionCommands
}

////////////////////////////////////////////////////////////////////////////////
// MAIN

func main() {
	// Create a cli parser
	cli := CLI{}
	cmd := kong.Parse(&cli,
		kong.Name(execName()),
		kong.Description("Weather and stock market tools for language model hosts"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{},
	)

	// Create a context
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	cli.Globals.ctx = ctx
	cli.Globals.execName = execName()

	// Logging goes to stderr, so that stdout is free for the MCP transport
	cli.Globals.logger = newLogger(os.Stderr, cli.Debug)

	// Tracing uses the global provider, which does nothing unless configured
	cli.Globals.tracer = otel.Tracer(cli.Globals.execName)

	// Run the command
	if err := cmd.Run(&cli.Globals); err != nil {
		cmd.FatalIfErrorf(err)
		return
	}
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Toolkit returns a toolkit with the weather and stock tools
func (g *Globals) Toolkit() (*tool.Toolkit, error) {
	opts := g.clientOpts()

	// Weather tools
	weather, err := openmeteo.NewTools(g.OpenMeteo.ForecastEndpoint, g.OpenMeteo.GeocodingEndpoint, opts...)
	if err != nil {
		return nil, err
	}

	// Stock tools
	stock, err := yahoo.NewTools(g.Yahoo.Endpoint, g.Yahoo.CookieEndpoint, opts...)
	if err != nil {
		return nil, err
	}

	// Return the toolkit
	return tool.New(
		tool.WithTracer(g.tracer),
		tool.WithTools(weather...),
		tool.WithTools(stock...),
	)
}

// Client returns a client for the remote server, or nil when tools and
// prompts are served locally
func (g *Globals) Client() (*httpclient.Client, error) {
	if g.HTTP.Remote == "" {
		return nil, nil
	}
	return httpclient.New(g.HTTP.Remote, g.clientOpts()...)
}

// Prompts returns the built-in prompt catalogue, or the catalogue read
// from the prompt directory when one is set
func (g *Globals) Prompts() (*prompt.Catalogue, error) {
	if g.PromptDir != "" {
		return prompt.Read(os.DirFS(g.PromptDir))
	}
	return prompt.New()
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func execName() string {
	// The name of the executable
	name, err := os.Executable()
	if err != nil {
		panic(err)
	} else {
		return filepath.Base(name)
	}
}

// newLogger returns a terminal logger at info level, or debug level when
// debug is set
func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := new(slog.LevelVar)
	if debug {
		level.Set(slog.LevelDebug)
	}
	return slog.New(logger.NewTermHandler(w, level))
}

func (g *Globals) clientOpts() []client.ClientOpt {
	result := []client.ClientOpt{}
	if g.Debug || g.Verbose {
		result = append(result, client.OptTrace(os.Stderr, g.Verbose))
	}
	if g.tracer != nil {
		result = append(result, client.OptTracer(g.tracer))
	}
	if g.HTTP.Timeout > 0 {
		result = append(result, client.OptTimeout(g.HTTP.Timeout))
	}
	return result
}
