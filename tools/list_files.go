package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hjerpe/coding-agent/internal/fsops"
)

type ListFilesInput struct {
	Path string `json:"path,omitempty" jsonschema:"default=." jsonschema_description:"The relative path of a directory to list (defaults to current directory)"`
}

var ListFilesDefinition = ToolDefinition{
	Name:        "list_files",
	Description: "List files and directories at a given path. If no path is provided, lists files in the current directory. Returns a JSON array of file and directory names (directories end with /).",
	InputSchema: ListFilesInputSchema,
	Function:    ListFiles,
}

var ListFilesInputSchema = GenerateSchema[ListFilesInput]()

// ListFiles walks the directory recursively and returns a JSON array of
// relative paths, directories suffixed with "/". Hidden entries and hidden
// directory subtrees are excluded entirely. Output is sorted so snapshots
// are deterministic.
func ListFiles(ctx context.Context, input json.RawMessage) (string, error) {
	var in ListFilesInput
	if err := json.Unmarshal(input, &in); err != nil {
		return "", err
	}
	if in.Path == "" {
		in.Path = "."
	}

	entries, err := fsops.ListTree(in.Path)
	if err != nil {
		return "", fmt.Errorf("listing files: %w", err)
	}

	b, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}
