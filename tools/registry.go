package tools

import (
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
)

// DuplicateToolError reports a second registration under an existing name.
type DuplicateToolError struct {
	Name string
}

func (e *DuplicateToolError) Error() string {
	return fmt.Sprintf("tool %q already registered", e.Name)
}

// Registry is the fixed collection of tool definitions advertised to the
// model. It is built once at startup and handed by reference to the runner;
// all access after construction is read-only, so no locking is needed.
type Registry struct {
	byName map[string]*ToolDefinition
	order  []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]*ToolDefinition)}
}

// Register adds a definition under its name.
func (r *Registry) Register(def ToolDefinition) error {
	if _, exists := r.byName[def.Name]; exists {
		return &DuplicateToolError{Name: def.Name}
	}
	d := def
	r.byName[def.Name] = &d
	r.order = append(r.order, def.Name)
	return nil
}

// Lookup returns the definition for name. Unknown names are a normal
// condition, since tool names arrive from the model, and are reported
// through ok rather than an error.
func (r *Registry) Lookup(name string) (*ToolDefinition, bool) {
	d, ok := r.byName[name]
	return d, ok
}

// Describe returns all definitions in registration order.
func (r *Registry) Describe() []ToolDefinition {
	out := make([]ToolDefinition, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, *r.byName[name])
	}
	return out
}

// AnthropicTools returns the wire advertisement for every registered tool:
// {name, description, input_schema: {type: "object", properties, required}}.
func (r *Registry) AnthropicTools() []anthropic.ToolUnionParam {
	defs := r.Describe()
	out := make([]anthropic.ToolUnionParam, 0, len(defs))
	for _, d := range defs {
		out = append(out, anthropic.ToolUnionParam{OfTool: &anthropic.ToolParam{
			Name:        d.Name,
			Description: anthropic.String(d.Description),
			InputSchema: anthropic.ToolInputSchemaParam{
				Properties: d.InputSchema.Properties,
				Required:   d.InputSchema.Required,
			},
		}})
	}
	return out
}

// Builtins returns a registry wired with the built-in coding tools in a
// deterministic order.
func Builtins() *Registry {
	r := NewRegistry()
	for _, def := range []ToolDefinition{
		ReadFileDefinition,
		ListFilesDefinition,
		BashDefinition,
		EditFileDefinition,
		CodeSearchDefinition,
	} {
		if err := r.Register(def); err != nil {
			panic(err)
		}
	}
	return r
}
