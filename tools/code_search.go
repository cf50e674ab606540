package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// maxSearchMatches caps result lines so one search cannot flood a turn.
const maxSearchMatches = 50

type CodeSearchInput struct {
	Pattern       string `json:"pattern" jsonschema_description:"The search pattern or regex to find in files"`
	Path          string `json:"path,omitempty" jsonschema:"default=." jsonschema_description:"The path to search in (defaults to current directory)"`
	FileType      string `json:"file_type,omitempty" jsonschema_description:"Optional file type filter (e.g., 'py', 'js', 'go', 'ts')"`
	CaseSensitive bool   `json:"case_sensitive,omitempty" jsonschema:"default=false" jsonschema_description:"Whether the search should be case-sensitive (defaults to false)"`
}

var CodeSearchDefinition = ToolDefinition{
	Name:        "code_search",
	Description: "Search for code patterns using ripgrep (rg). Returns matching lines with file names and line numbers. Supports regex patterns.",
	InputSchema: CodeSearchInputSchema,
	Function:    CodeSearch,
}

var CodeSearchInputSchema = GenerateSchema[CodeSearchInput]()

// CodeSearch shells out to ripgrep. Exit status 1 means the search ran and
// matched nothing, which is a normal result; other non-zero statuses are
// reported as data so the model can adjust the pattern, and a missing rg
// binary gets its own actionable error.
func CodeSearch(ctx context.Context, input json.RawMessage) (string, error) {
	var in CodeSearchInput
	if err := json.Unmarshal(input, &in); err != nil {
		return "", err
	}
	if in.Pattern == "" {
		return "", errors.New("pattern cannot be empty")
	}
	if in.Path == "" {
		in.Path = "."
	}

	args := []string{"--line-number", "--with-filename", "--color=never"}
	if !in.CaseSensitive {
		args = append(args, "--ignore-case")
	}
	if in.FileType != "" {
		args = append(args, "--type", in.FileType)
	}
	args = append(args, in.Pattern, in.Path)

	cmd := exec.CommandContext(ctx, "rg", args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		switch {
		case errors.As(err, &exitErr) && exitErr.ExitCode() == 1:
			return "No matches found", nil
		case errors.As(err, &exitErr):
			if ctx.Err() != nil {
				return "", fmt.Errorf("search timed out: %w", ctx.Err())
			}
			return fmt.Sprintf("Search error: %s", strings.TrimSpace(stderr.String())), nil
		case errors.Is(err, exec.ErrNotFound):
			return "", errors.New("ripgrep (rg) is not installed. Install it with: brew install ripgrep (macOS) or apt install ripgrep (Ubuntu)")
		default:
			return "", fmt.Errorf("running search: %w", err)
		}
	}

	output := strings.TrimSpace(stdout.String())
	if output == "" {
		return "No matches found", nil
	}

	lines := strings.Split(output, "\n")
	if len(lines) > maxSearchMatches {
		shown := strings.Join(lines[:maxSearchMatches], "\n")
		return fmt.Sprintf("%s\n\n... (showing first %d of %d matches)", shown, maxSearchMatches, len(lines)), nil
	}
	return output, nil
}
