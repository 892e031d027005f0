package main

import (
	"crypto/tls"
	"fmt"
	"os"

	// Packages
	httprouter "github.com/mutablelogic/go-server/pkg/httprouter"
	httpserver "github.com/mutablelogic/go-server/pkg/httpserver"
	httphandler "github.com/mutablelogic/go-weatherstock/pkg/httphandler"
	mcp "github.com/mutablelogic/go-weatherstock/pkg/mcp"
	prompt "github.com/mutablelogic/go-weatherstock/pkg/prompt"
	tool "github.com/mutablelogic/go-weatherstock/pkg/tool"
	version "github.com/mutablelogic/go-weatherstock/pkg/version"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type ServerCommands struct {
	MCP       MCPServer `cmd:"" name:"mcp" help:"Run an MCP server on standard input and output." group:"SERVER"`
	RunServer RunServer `cmd:"" name:"run" help:"Run an HTTP server with REST and MCP endpoints." group:"SERVER"`
}

type MCPServer struct{}

type RunServer struct {
	// TLS server options
	TLS struct {
		ServerName string `name:"name" help:"TLS server name"`
		CertFile   string `name:"cert" help:"TLS certificate file"`
		KeyFile    string `name:"key" help:"TLS key file"`
	} `embed:"" prefix:"tls."`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *MCPServer) Run(ctx *Globals) error {
	toolkit, err := ctx.Toolkit()
	if err != nil {
		return err
	}
	prompts, err := ctx.Prompts()
	if err != nil {
		return err
	}
	server, err := ctx.MCPServer(toolkit, prompts)
	if err != nil {
		return err
	}

	// Run the server on stdio
	ctx.logger.InfoContext(ctx.ctx, "starting MCP server", "name", ctx.execName, "version", version.Version())
	return server.Run(ctx.ctx)
}

func (cmd *RunServer) Run(ctx *Globals) error {
	toolkit, err := ctx.Toolkit()
	if err != nil {
		return err
	}
	prompts, err := ctx.Prompts()
	if err != nil {
		return err
	}
	server, err := ctx.MCPServer(toolkit, prompts)
	if err != nil {
		return err
	}

	// Create the TLS config if TLS options are provided
	var tlsConfig *tls.Config
	if cmd.TLS.CertFile != "" || cmd.TLS.KeyFile != "" {
		var pemData [][]byte
		if cmd.TLS.CertFile != "" {
			certData, err := os.ReadFile(cmd.TLS.CertFile)
			if err != nil {
				return fmt.Errorf("failed to read TLS certificate: %w", err)
			}
			pemData = append(pemData, certData)
		}
		if cmd.TLS.KeyFile != "" {
			keyData, err := os.ReadFile(cmd.TLS.KeyFile)
			if err != nil {
				return fmt.Errorf("failed to read TLS key: %w", err)
			}
			pemData = append(pemData, keyData)
		}
		tlsConfig, err = httpserver.TLSConfig(cmd.TLS.ServerName, false, pemData...)
		if err != nil {
			return fmt.Errorf("failed to create TLS config: %w", err)
		}
	}

	// Create the HTTP router
	router, err := httprouter.NewRouter(ctx.ctx, ctx.HTTP.Prefix, ctx.HTTP.Origin, "Weather and Stock Tools", version.Version())
	if err != nil {
		return err
	} else if err := httphandler.RegisterHandlers(toolkit, prompts, server.Handler(), router, true); err != nil {
		return err
	}

	// Create the server
	httpserver, err := httpserver.New(ctx.HTTP.Addr, router, tlsConfig)
	if err != nil {
		return err
	}

	// Run the server
	ctx.logger.InfoContext(ctx.ctx, "started", "name", ctx.execName, "version", version.Version(), "addr", ctx.HTTP.Addr, "prefix", ctx.HTTP.Prefix)
	if err := httpserver.Run(ctx.ctx); err != nil {
		return err
	}

	// Return success
	ctx.logger.InfoContext(ctx.ctx, "stopped", "name", ctx.execName)
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// MCPServer returns an MCP server with the toolkit and prompt catalogue
func (g *Globals) MCPServer(toolkit *tool.Toolkit, prompts *prompt.Catalogue) (*mcp.Server, error) {
	return mcp.New(g.execName, version.Version(),
		mcp.WithToolkit(toolkit),
		mcp.WithPrompts(prompts),
		mcp.WithLogger(g.logger),
		mcp.WithInstructions("Weather forecasts from Open-Meteo and stock market data from Yahoo Finance. Use get_location_coordinates before the weather tools, and search_stocks to find a ticker symbol."),
	)
}
