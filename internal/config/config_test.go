package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hjerpe/coding-agent/internal/runner"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "agent.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("AGENT_MODEL", "")
	t.Setenv("AGENT_MAX_TOKENS", "")
	t.Setenv("AGENT_MAX_TOOL_ROUNDS", "")
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load("/nonexistent/agent.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Model == "" {
		t.Error("expected default model to be set")
	}
	if cfg.MaxTokens != runner.DefaultMaxTokens {
		t.Errorf("expected default max tokens, got %d", cfg.MaxTokens)
	}
	if cfg.MaxToolRounds != runner.DefaultMaxRounds {
		t.Errorf("expected default tool rounds, got %d", cfg.MaxToolRounds)
	}
}

func TestLoad_FileValuesApplied(t *testing.T) {
	clearEnv(t)
	path := writeTempConfig(t, `
model: claude-test-model
max_tokens: 2048
max_tool_rounds: 7
tool_timeouts:
  default_seconds: 5
  per_tool_seconds:
    bash: 90
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Model != "claude-test-model" {
		t.Errorf("model: got %s", cfg.Model)
	}
	if cfg.MaxTokens != 2048 {
		t.Errorf("max_tokens: got %d", cfg.MaxTokens)
	}
	if cfg.MaxToolRounds != 7 {
		t.Errorf("max_tool_rounds: got %d", cfg.MaxToolRounds)
	}
	tc := cfg.Timeouts()
	if tc.Default != 5*time.Second {
		t.Errorf("default timeout: got %v", tc.Default)
	}
	if tc.TimeoutFor("bash") != 90*time.Second {
		t.Errorf("bash timeout: got %v", tc.TimeoutFor("bash"))
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeTempConfig(t, `
model: file-model
max_tokens: 100
`)
	t.Setenv("AGENT_MODEL", "env-model")
	t.Setenv("AGENT_MAX_TOKENS", "512")
	t.Setenv("AGENT_MAX_TOOL_ROUNDS", "9")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Model != "env-model" {
		t.Errorf("expected env model to override file, got %s", cfg.Model)
	}
	if cfg.MaxTokens != 512 {
		t.Errorf("expected env max tokens to override file, got %d", cfg.MaxTokens)
	}
	if cfg.MaxToolRounds != 9 {
		t.Errorf("expected env tool rounds, got %d", cfg.MaxToolRounds)
	}
}

func TestLoad_InvalidEnvValue(t *testing.T) {
	clearEnv(t)
	t.Setenv("AGENT_MAX_TOKENS", "lots")
	if _, err := Load("/nonexistent/agent.yaml"); err == nil {
		t.Fatal("expected error for non-numeric AGENT_MAX_TOKENS")
	}
}

func TestLoad_RejectsNonPositiveValues(t *testing.T) {
	clearEnv(t)
	for name, content := range map[string]string{
		"zero max_tokens":          "max_tokens: 0",
		"negative max_tool_rounds": "max_tool_rounds: -1",
		"empty model":              `model: ""`,
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := Load(writeTempConfig(t, content)); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestLoad_RejectsUnknownField(t *testing.T) {
	clearEnv(t)
	if _, err := Load(writeTempConfig(t, "mdoel: typo")); err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	clearEnv(t)
	if _, err := Load(writeTempConfig(t, "model: [unclosed")); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestDefault_TimeoutsBoundProcessTools(t *testing.T) {
	tc := Default().Timeouts()
	if tc.TimeoutFor("bash") != 60*time.Second {
		t.Errorf("bash: got %v", tc.TimeoutFor("bash"))
	}
	if tc.TimeoutFor("code_search") != 30*time.Second {
		t.Errorf("code_search: got %v", tc.TimeoutFor("code_search"))
	}
	if tc.TimeoutFor("read_file") != 0 {
		t.Errorf("read_file should be unbounded, got %v", tc.TimeoutFor("read_file"))
	}
}
