package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	// Packages
	schema "github.com/mutablelogic/go-weatherstock/pkg/schema"
	uitable "github.com/mutablelogic/go-weatherstock/pkg/ui/table"
	errgroup "golang.org/x/sync/errgroup"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type ToolCommands struct {
	ListTools ListToolsCommand `cmd:"" name:"tools" help:"List available tools." group:"TOOL"`
	CallTool  CallToolCommand  `cmd:"" name:"call" help:"Call a tool with JSON input." group:"TOOL"`
}

type ListToolsCommand struct {
	JSON     bool `name:"json" help:"Output as JSON"`
	Markdown bool `name:"markdown" help:"Output as a Markdown table"`
}

type CallToolCommand struct {
	Name     string   `arg:"" name:"name" help:"Tool name"`
	Input    []string `arg:"" name:"input" optional:"" sep:"none" help:"JSON input for the tool, which is called once for each input"`
	Table    bool     `name:"table" help:"Render stock results as a table"`
	Markdown bool     `name:"markdown" help:"Render stock results as a Markdown table"`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *ListToolsCommand) Run(ctx *Globals) error {
	defs, err := ctx.toolDefinitions()
	if err != nil {
		return err
	}

	switch {
	case cmd.JSON:
		fmt.Println(schema.Stringify(defs))
	case cmd.Markdown:
		fmt.Println(uitable.RenderMarkdown(schema.ToolTable(defs)))
	default:
		fmt.Println(uitable.Render(schema.ToolTable(defs)))
	}
	return nil
}

func (cmd *CallToolCommand) Run(ctx *Globals) error {
	invoke, err := ctx.invoker(cmd.Name)
	if err != nil {
		return err
	}

	// Without input, the tool is called once with no arguments
	inputs := make([]json.RawMessage, 0, len(cmd.Input))
	for _, input := range cmd.Input {
		inputs = append(inputs, json.RawMessage(input))
	}
	if len(inputs) == 0 {
		inputs = append(inputs, nil)
	}

	// Call the tool concurrently, once for each input
	results := make([]schema.Result, len(inputs))
	group, groupctx := errgroup.WithContext(ctx.ctx)
	for i, input := range inputs {
		group.Go(func() (err error) {
			results[i], err = invoke(groupctx, input)
			return err
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}

	// Output the results in input order
	var result error
	for _, r := range results {
		if !r.OK() {
			fmt.Fprintln(os.Stderr, r.Message)
			result = errors.Join(result, fmt.Errorf("%s: %s", r.Tool, r.Kind))
			continue
		}
		fmt.Println(cmd.format(r))
	}
	return result
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// toolDefinitions returns the tools of the remote server, or the local
// toolkit when there is no remote server
func (g *Globals) toolDefinitions() ([]schema.ToolDefinition, error) {
	remote, err := g.Client()
	if err != nil {
		return nil, err
	} else if remote != nil {
		response, err := remote.ListTools(g.ctx)
		if err != nil {
			return nil, err
		}
		return response.Body, nil
	}

	toolkit, err := g.Toolkit()
	if err != nil {
		return nil, err
	}
	return toolkit.Definitions(), nil
}

// invoker returns a function which calls the named tool. Errors are returned
// only when the remote server cannot be reached.
func (g *Globals) invoker(name string) (func(context.Context, json.RawMessage) (schema.Result, error), error) {
	remote, err := g.Client()
	if err != nil {
		return nil, err
	} else if remote != nil {
		return func(ctx context.Context, input json.RawMessage) (schema.Result, error) {
			result, err := remote.CallTool(ctx, name, input)
			if err != nil {
				return schema.Result{}, err
			}
			return *result, nil
		}, nil
	}

	toolkit, err := g.Toolkit()
	if err != nil {
		return nil, err
	}
	return func(ctx context.Context, input json.RawMessage) (schema.Result, error) {
		return toolkit.Invoke(ctx, name, input), nil
	}, nil
}

// format renders a successful result, as a table for stock results when
// requested and as JSON otherwise
func (cmd *CallToolCommand) format(r schema.Result) string {
	if !cmd.Table && !cmd.Markdown {
		return r.Text()
	}
	data, err := table(r)
	if err != nil || data == nil {
		return r.Text()
	}
	if cmd.Markdown {
		return uitable.RenderMarkdown(data)
	}
	return uitable.Render(data)
}

func table(r schema.Result) (uitable.TableData, error) {
	switch r.Tool {
	case "get_stock_price":
		var quote schema.StockQuote
		if err := json.Unmarshal(r.Payload, &quote); err != nil {
			return nil, err
		}
		return schema.QuoteTable(quote), nil
	case "get_stock_history":
		var points []schema.HistoryPoint
		if err := json.Unmarshal(r.Payload, &points); err != nil {
			return nil, err
		}
		return schema.HistoryTable(points), nil
	case "search_stocks":
		var matches []schema.StockMatch
		if err := json.Unmarshal(r.Payload, &matches); err != nil {
			return nil, err
		}
		return schema.MatchTable(matches), nil
	default:
		return nil, nil
	}
}
