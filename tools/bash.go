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

type BashInput struct {
	Command string `json:"command" jsonschema_description:"The bash command to execute"`
}

var BashDefinition = ToolDefinition{
	Name:        "bash",
	Description: "Execute a bash command and return its output. Use this for running shell commands, scripts, or system utilities.",
	InputSchema: BashInputSchema,
	Function:    Bash,
}

var BashInputSchema = GenerateSchema[BashInput]()

// Bash runs the command through the shell and returns stdout followed by
// stderr. A non-zero exit is reported as data in the result text, not as an
// error; only spawn failures and timeouts error.
func Bash(ctx context.Context, input json.RawMessage) (string, error) {
	var in BashInput
	if err := json.Unmarshal(input, &in); err != nil {
		return "", err
	}

	cmd := exec.CommandContext(ctx, "sh", "-c", in.Command)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	output := stdout.String() + stderr.String()

	if runErr != nil {
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			if ctx.Err() != nil {
				return "", fmt.Errorf("command timed out: %w", ctx.Err())
			}
			return fmt.Sprintf("Command failed (exit %d):\n%s", exitErr.ExitCode(), output), nil
		}
		return "", fmt.Errorf("executing command: %w", runErr)
	}

	if output == "" {
		return "(no output)", nil
	}
	return strings.TrimRight(output, " \t\r\n"), nil
}
