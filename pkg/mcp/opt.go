package mcp

import (
	"log/slog"

	// Packages
	weatherstock "github.com/mutablelogic/go-weatherstock"
	prompt "github.com/mutablelogic/go-weatherstock/pkg/prompt"
	tool "github.com/mutablelogic/go-weatherstock/pkg/tool"
)

/////////////////////////////////////////////////////////////////////////////////
// TYPES

type Opt func(*Server) error

/////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

func (server *Server) apply(opts ...Opt) error {
	for _, opt := range opts {
		if err := opt(server); err != nil {
			return err
		}
	}
	return nil
}

/////////////////////////////////////////////////////////////////////////////////
// OPTIONS

func WithToolkit(v *tool.Toolkit) Opt {
	return func(server *Server) error {
		if v == nil {
			return weatherstock.ErrBadParameter.With("toolkit is nil")
		}
		server.toolkit = v
		return nil
	}
}

func WithPrompts(v *prompt.Catalogue) Opt {
	return func(server *Server) error {
		if v == nil {
			return weatherstock.ErrBadParameter.With("prompt catalogue is nil")
		}
		server.prompts = v
		return nil
	}
}

// WithLogger sets the logger for tool calls and the protocol server
func WithLogger(v *slog.Logger) Opt {
	return func(server *Server) error {
		server.logger = v
		return nil
	}
}

// WithInstructions sets the instructions returned to clients on initialization
func WithInstructions(v string) Opt {
	return func(server *Server) error {
		server.instructions = v
		return nil
	}
}
