package main

import (
	"fmt"
	"strings"

	// Packages
	weatherstock "github.com/mutablelogic/go-weatherstock"
	schema "github.com/mutablelogic/go-weatherstock/pkg/schema"
	uitable "github.com/mutablelogic/go-weatherstock/pkg/ui/table"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type PromptCommands struct {
	ListPrompts ListPromptsCommand `cmd:"" name:"prompts" help:"List available prompts." group:"PROMPT"`
	GetPrompt   GetPromptCommand   `cmd:"" name:"prompt" help:"Render a prompt with key=value arguments." group:"PROMPT"`
}

type ListPromptsCommand struct {
	JSON bool `name:"json" help:"Output as JSON"`
}

type GetPromptCommand struct {
	Name string   `arg:"" name:"name" help:"Prompt name"`
	Args []string `arg:"" name:"args" optional:"" sep:"none" help:"Prompt arguments as key=value"`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *ListPromptsCommand) Run(ctx *Globals) error {
	var defs []schema.PromptDefinition
	if remote, err := ctx.Client(); err != nil {
		return err
	} else if remote != nil {
		response, err := remote.ListPrompts(ctx.ctx)
		if err != nil {
			return err
		}
		defs = response.Body
	} else if prompts, err := ctx.Prompts(); err != nil {
		return err
	} else {
		defs = prompts.Definitions()
	}

	if cmd.JSON {
		fmt.Println(schema.Stringify(defs))
	} else {
		fmt.Println(uitable.Render(schema.PromptTable(defs)))
	}
	return nil
}

func (cmd *GetPromptCommand) Run(ctx *Globals) error {
	// Parse the arguments
	args := make(map[string]string, len(cmd.Args))
	for _, arg := range cmd.Args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return weatherstock.ErrBadParameter.Withf("expected key=value, got %q", arg)
		}
		args[key] = value
	}

	// Render the prompt
	var prompt *schema.Prompt
	if remote, err := ctx.Client(); err != nil {
		return err
	} else if remote != nil {
		if prompt, err = remote.GetPrompt(ctx.ctx, cmd.Name, args); err != nil {
			return err
		}
	} else if prompts, err := ctx.Prompts(); err != nil {
		return err
	} else if result, err := prompts.Render(cmd.Name, args); err != nil {
		return err
	} else {
		prompt = &result
	}
	fmt.Print(prompt.Text)
	return nil
}
