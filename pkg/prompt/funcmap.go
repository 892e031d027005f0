package prompt

import (
	"encoding/json"
	"text/template"

	// Packages
	sprig "github.com/Masterminds/sprig/v3"
)

///////////////////////////////////////////////////////////////////////////////
// TEMPLATE FUNCTIONS

// funcMap returns the functions available in prompt templates: the sprig
// text functions, with json encoding a value on a single line
func funcMap() template.FuncMap {
	funcs := sprig.TxtFuncMap()
	funcs["json"] = func(v any) (string, error) {
		data, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	return funcs
}
