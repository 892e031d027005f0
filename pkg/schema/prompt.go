package schema

////////////////////////////////////////////////////////////////////////////////
// TYPES

// PromptDefinition describes a prompt template and the arguments it accepts
type PromptDefinition struct {
	Name        string           `json:"name" yaml:"name"`
	Description string           `json:"description,omitempty" yaml:"description"`
	Arguments   []PromptArgument `json:"arguments" yaml:"arguments"`
}

// PromptArgument is a named string argument to a prompt
type PromptArgument struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description"`
	Required    bool   `json:"required" yaml:"required"`
}

// Prompt is the rendered text of a prompt
type Prompt struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Text        string `json:"text"`
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (p PromptDefinition) String() string {
	return Stringify(p)
}

func (p Prompt) String() string {
	return Stringify(p)
}
