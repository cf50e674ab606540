package tools

import "time"

// TimeoutConfig sets wall-clock bounds on tool execution. A zero Default
// means no bound for tools without a per-tool entry.
type TimeoutConfig struct {
	Default time.Duration
	PerTool map[string]time.Duration
}

// DefaultTimeoutConfig bounds the tools that block on external processes;
// a hung command must not stall the conversation loop forever.
func DefaultTimeoutConfig() TimeoutConfig {
	return TimeoutConfig{
		PerTool: map[string]time.Duration{
			"bash":        60 * time.Second,
			"code_search": 30 * time.Second,
		},
	}
}

// TimeoutFor returns the timeout for a tool, falling back to Default.
func (t TimeoutConfig) TimeoutFor(name string) time.Duration {
	if t.PerTool != nil {
		if d, ok := t.PerTool[name]; ok {
			return d
		}
	}
	return t.Default
}
