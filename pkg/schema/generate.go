package schema

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// Generator reflects a JSON schema from a configuration value. Go doc
// comments become schema descriptions, so the generated schema stays in sync
// with the types.
type Generator struct {
	value      any
	modulePath string
	sourceDir  string
}

// NewGenerator creates a [Generator] for the given value. The module path
// and source directory locate the Go sources whose comments are reflected
// into the schema.
func NewGenerator(value any, modulePath, sourceDir string) *Generator {
	return &Generator{
		value:      value,
		modulePath: modulePath,
		sourceDir:  sourceDir,
	}
}

// Generate produces the indented JSON schema document.
func (g *Generator) Generate() ([]byte, error) {
	r := &jsonschema.Reflector{
		ExpandedStruct: true,
	}

	err := r.AddGoComments(g.modulePath, g.sourceDir)
	if err != nil {
		return nil, fmt.Errorf("add go comments: %w", err)
	}

	jss := r.Reflect(g.value)

	data, err := json.MarshalIndent(jss, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}

	return data, nil
}
