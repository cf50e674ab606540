package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hjerpe/coding-agent/internal/fsops"
)

type ReadFileInput struct {
	Path string `json:"path" jsonschema_description:"The relative path of a file to read"`
}

var ReadFileDefinition = ToolDefinition{
	Name:        "read_file",
	Description: "Read the contents of a given relative file path. Use this when you need to examine the contents of an existing file.",
	InputSchema: ReadFileInputSchema,
	Function:    ReadFile,
}

var ReadFileInputSchema = GenerateSchema[ReadFileInput]()

// ReadFile returns the file contents. Missing files, permission problems,
// and binary content come back as errors for the dispatcher to relay.
func ReadFile(ctx context.Context, input json.RawMessage) (string, error) {
	var in ReadFileInput
	if err := json.Unmarshal(input, &in); err != nil {
		return "", err
	}

	content, err := fsops.ReadTextFile(in.Path)
	if err != nil {
		return "", fmt.Errorf("reading file: %w", err)
	}
	return content, nil
}
