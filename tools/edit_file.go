package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/hjerpe/coding-agent/internal/fsops"
	"github.com/hjerpe/coding-agent/internal/metrics"
)

// previewLen bounds the sought-text excerpt carried in match errors.
const previewLen = 50

type EditFileInput struct {
	Path   string `json:"path" jsonschema_description:"The path to the file to edit"`
	OldStr string `json:"old_str" jsonschema_description:"The text to search for and replace (must match exactly once). Use empty string to create new file or append."`
	NewStr string `json:"new_str" jsonschema_description:"The text to replace old_str with"`
}

var EditFileDefinition = ToolDefinition{
	Name:        "edit_file",
	Description: "Make edits to a text file by replacing 'old_str' with 'new_str'. The old_str must match exactly once in the file. For creating new files or appending, use an empty old_str.",
	InputSchema: EditFileInputSchema,
	Function:    EditFile,
}

var EditFileInputSchema = GenerateSchema[EditFileInput]()

// EditFile is the exact-match replace-once editor. An empty old_str creates
// the file (with parent directories) or appends to an existing one; otherwise
// old_str must occur exactly once and only that occurrence is replaced. The
// file is left untouched on any error.
func EditFile(ctx context.Context, input json.RawMessage) (string, error) {
	var in EditFileInput
	if err := json.Unmarshal(input, &in); err != nil {
		return "", err
	}

	if in.Path == "" {
		return "", errors.New("path cannot be empty")
	}
	if in.OldStr == in.NewStr {
		return "", errors.New("old_str and new_str cannot be identical")
	}

	if in.OldStr == "" {
		return createOrAppend(in.Path, in.NewStr)
	}

	content, err := os.ReadFile(in.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("file not found: %s", in.Path)
		}
		return "", fmt.Errorf("reading file: %w", err)
	}

	count := strings.Count(string(content), in.OldStr)
	switch {
	case count == 0:
		return "", fmt.Errorf("'%s' not found in %s", metrics.Preview(in.OldStr, previewLen), in.Path)
	case count > 1:
		return "", fmt.Errorf("'%s' found %d times, need exactly 1 match. Include more context to make it unique.",
			metrics.Preview(in.OldStr, previewLen), count)
	}

	updated := strings.Replace(string(content), in.OldStr, in.NewStr, 1)
	if err := fsops.WriteFile(in.Path, updated); err != nil {
		return "", fmt.Errorf("writing file: %w", err)
	}
	return fmt.Sprintf("Successfully edited %s", in.Path), nil
}

func createOrAppend(path, content string) (string, error) {
	existing, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		if err := fsops.WriteFile(path, content); err != nil {
			return "", fmt.Errorf("creating file: %w", err)
		}
		return fmt.Sprintf("Created new file: %s", path), nil
	case err != nil:
		return "", fmt.Errorf("reading file: %w", err)
	}

	if err := fsops.WriteFile(path, string(existing)+content); err != nil {
		return "", fmt.Errorf("appending to file: %w", err)
	}
	return fmt.Sprintf("Appended to file: %s", path), nil
}
