// Package tools defines the tool contracts and the built-in implementations.
//
// Includes:
//   - ToolDefinition: name, description, JSON input schema, handler.
//   - GenerateSchema[T](): derive the input schema from a Go struct.
//   - Registry: the fixed, insertion-ordered collection advertised to the model.
//   - ValidateInput: schema validation applied before every handler call.
//   - Built-in tools: read_file, list_files, bash, edit_file, code_search.
//
// Handlers share no mutable state; a handler signals failure by returning an
// error, which the dispatcher converts into result text for the model.
package tools
