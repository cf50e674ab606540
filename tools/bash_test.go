package tools_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/hjerpe/coding-agent/tools"
)

func runBash(t *testing.T, command string) (string, error) {
	t.Helper()
	b, _ := json.Marshal(tools.BashInput{Command: command})
	return tools.BashDefinition.Function(context.Background(), b)
}

func TestBash_CapturesOutput(t *testing.T) {
	out, err := runBash(t, "echo hi")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if out != "hi" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestBash_StdoutThenStderr(t *testing.T) {
	out, err := runBash(t, "echo out; echo err 1>&2")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if out != "out\nerr" {
		t.Fatalf("expected stdout before stderr, got %q", out)
	}
}

func TestBash_NonZeroExitIsData(t *testing.T) {
	out, err := runBash(t, "exit 3")
	if err != nil {
		t.Fatalf("non-zero exit must not error: %v", err)
	}
	if !strings.Contains(out, "Command failed (exit 3)") {
		t.Fatalf("unexpected failure text: %q", out)
	}
}

func TestBash_NonZeroExitKeepsOutput(t *testing.T) {
	out, err := runBash(t, "echo partial; exit 2")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !strings.Contains(out, "Command failed (exit 2)") || !strings.Contains(out, "partial") {
		t.Fatalf("failure text should carry the output: %q", out)
	}
}

func TestBash_EmptyOutputSentinel(t *testing.T) {
	out, err := runBash(t, "true")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if out != "(no output)" {
		t.Fatalf("expected sentinel, got %q", out)
	}
}

func TestBash_TrailingWhitespaceStripped(t *testing.T) {
	out, err := runBash(t, "printf 'value   \n\n'")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if out != "value" {
		t.Fatalf("expected stripped output, got %q", out)
	}
}

func TestBash_ContextTimeout(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	b, _ := json.Marshal(tools.BashInput{Command: "sleep 5"})
	if _, err := tools.BashDefinition.Function(ctx, b); err == nil {
		t.Fatal("expected timeout error")
	}
}
