/*
prompt implements a catalogue of text templates which describe multi-step
tool workflows for an external agent. Rendering only substitutes the
prompt arguments; the tool placeholders in the text are never executed.
*/
package prompt

import (
	"bytes"
	"embed"
	"io/fs"
	"path"
	"slices"
	"strings"
	"text/template"

	// Packages
	weatherstock "github.com/mutablelogic/go-weatherstock"
	schema "github.com/mutablelogic/go-weatherstock/pkg/schema"
	yaml "gopkg.in/yaml.v3"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Catalogue is a set of prompts with unique names. It is read-only once
// created, so prompts can be rendered concurrently.
type Catalogue struct {
	prompts map[string]*prompt
}

type prompt struct {
	schema.PromptDefinition `yaml:",inline"`
	Template                string `yaml:"template"`
	tmpl                    *template.Template
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

//go:embed prompts/*.yaml
var builtin embed.FS

const (
	// Delimiters for argument substitution, leaving {{ }} for tool placeholders
	leftDelim  = "[["
	rightDelim = "]]"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New returns the built-in catalogue
func New() (*Catalogue, error) {
	fsys, err := fs.Sub(builtin, "prompts")
	if err != nil {
		return nil, err
	}
	return Read(fsys)
}

// Read returns a catalogue from the YAML files at the root of fsys. Each
// file defines one prompt, and names must be unique.
func Read(fsys fs.FS) (*Catalogue, error) {
	files, err := fs.Glob(fsys, "*.yaml")
	if err != nil {
		return nil, err
	}

	c := &Catalogue{prompts: make(map[string]*prompt, len(files))}
	for _, file := range files {
		p, err := read(fsys, file)
		if err != nil {
			return nil, err
		}
		if _, exists := c.prompts[p.Name]; exists {
			return nil, weatherstock.ErrConflict.Withf("duplicate prompt name: %q", p.Name)
		}
		c.prompts[p.Name] = p
	}

	return c, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Definitions returns the prompt definitions, sorted by name
func (c *Catalogue) Definitions() []schema.PromptDefinition {
	result := make([]schema.PromptDefinition, 0, len(c.prompts))
	for _, p := range c.prompts {
		result = append(result, p.PromptDefinition)
	}
	slices.SortFunc(result, func(a, b schema.PromptDefinition) int {
		return strings.Compare(a.Name, b.Name)
	})
	return result
}

// Lookup returns a prompt definition by name
func (c *Catalogue) Lookup(name string) (schema.PromptDefinition, bool) {
	if p, exists := c.prompts[name]; exists {
		return p.PromptDefinition, true
	}
	return schema.PromptDefinition{}, false
}

// Render returns the text of a prompt with the arguments substituted.
// Returns a not found error for an unknown prompt, and a bad parameter
// error when a required argument is missing or empty.
func (c *Catalogue) Render(name string, args map[string]string) (schema.Prompt, error) {
	p, exists := c.prompts[name]
	if !exists {
		return schema.Prompt{}, weatherstock.ErrNotFound.Withf("prompt not found: %q", name)
	}

	// Only declared arguments are passed to the template
	data := make(map[string]string, len(p.Arguments))
	for _, arg := range p.Arguments {
		value := strings.TrimSpace(args[arg.Name])
		if value == "" && arg.Required {
			return schema.Prompt{}, weatherstock.ErrBadParameter.Withf("missing argument %q for prompt %q", arg.Name, name)
		}
		data[arg.Name] = value
	}

	var buf bytes.Buffer
	if err := p.tmpl.Execute(&buf, data); err != nil {
		return schema.Prompt{}, weatherstock.ErrInternalServerError.Withf("prompt %q: %v", name, err)
	}

	return schema.Prompt{
		Name:        p.Name,
		Description: p.Description,
		Text:        buf.String(),
	}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func read(fsys fs.FS, file string) (*prompt, error) {
	data, err := fs.ReadFile(fsys, file)
	if err != nil {
		return nil, err
	}

	var p prompt
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, weatherstock.ErrBadParameter.Withf("%s: %v", file, err)
	}

	// The name defaults to the file name
	if p.Name = strings.TrimSpace(p.Name); p.Name == "" {
		p.Name = strings.TrimSuffix(path.Base(file), path.Ext(file))
	}
	if p.Arguments == nil {
		p.Arguments = []schema.PromptArgument{}
	}
	for _, arg := range p.Arguments {
		if arg.Name == "" {
			return nil, weatherstock.ErrBadParameter.Withf("%s: argument without a name", file)
		}
	}

	// Parse the template
	p.tmpl, err = template.New(p.Name).Delims(leftDelim, rightDelim).Option("missingkey=zero").Funcs(funcMap()).Parse(p.Template)
	if err != nil {
		return nil, weatherstock.ErrBadParameter.Withf("%s: template: %v", file, err)
	}

	return &p, nil
}
