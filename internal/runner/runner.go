package runner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/hjerpe/coding-agent/internal/metrics"
	"github.com/hjerpe/coding-agent/internal/telemetry"
	"github.com/hjerpe/coding-agent/memory"
	"github.com/hjerpe/coding-agent/tools"
)

const (
	// DefaultMaxRounds bounds the tool rounds a single user turn may consume.
	DefaultMaxRounds = 25
	// DefaultMaxTokens is the per-response token cap sent with each request.
	DefaultMaxTokens = 1024

	resultPreviewRunes = 100
)

// ErrRoundLimit is returned when a user turn exhausts its tool-round budget
// without the model producing a final text answer.
var ErrRoundLimit = errors.New("tool round limit reached")

// Options configures a Runner. Zero values fall back to defaults.
type Options struct {
	Model     anthropic.Model
	MaxTokens int64
	MaxRounds int
	Timeouts  tools.TimeoutConfig
}

// Runner owns one conversation loop: it sends the conversation plus the tool
// advertisement, executes requested tools, and feeds results back until the
// model answers in plain text.
type Runner struct {
	client *anthropic.Client
	reg    *tools.Registry
	opts   Options
}

func New(client *anthropic.Client, reg *tools.Registry, opts Options) *Runner {
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = DefaultMaxTokens
	}
	if opts.MaxRounds <= 0 {
		opts.MaxRounds = DefaultMaxRounds
	}
	return &Runner{client: client, reg: reg, opts: opts}
}

// RunTurn appends input as a user message and loops until the model stops
// requesting tools, returning the text of its final message. Tool failures
// are data fed back to the model; only transport errors and the round limit
// abort the turn.
func (r *Runner) RunTurn(ctx context.Context, conv *memory.Conversation, input string) (string, error) {
	turnID, ok := telemetry.TurnIDFromContext(ctx)
	if !ok {
		turnID = fmt.Sprintf("turn-%d", time.Now().UnixNano())
		ctx = telemetry.WithTurnID(ctx, turnID)
	}

	conv.Append(anthropic.NewUserMessage(anthropic.NewTextBlock(input)))

	for round := 0; round < r.opts.MaxRounds; round++ {
		msg, err := r.client.Messages.New(ctx, anthropic.MessageNewParams{
			Model:     r.opts.Model,
			MaxTokens: r.opts.MaxTokens,
			Messages:  conv.Messages(),
			Tools:     r.reg.AnthropicTools(),
		})
		if err != nil {
			return "", fmt.Errorf("messages request: %w", err)
		}
		conv.Append(msg.ToParam())

		lg := telemetry.L()
		lg.Debug().
			Str("turn_id", turnID).
			Int("round", round).
			Str("stop_reason", string(msg.StopReason)).
			Msg("model_response")

		var texts []string
		var results []anthropic.ContentBlockParamUnion
		for _, block := range msg.Content {
			switch v := block.AsAny().(type) {
			case anthropic.TextBlock:
				texts = append(texts, v.Text)
			case anthropic.ToolUseBlock:
				raw := json.RawMessage(v.JSON.Input.Raw())
				results = append(results, r.dispatch(ctx, v.ID, v.Name, raw))
			}
		}

		if len(results) == 0 {
			return strings.Join(texts, "\n"), nil
		}
		conv.Append(anthropic.NewUserMessage(results...))
	}

	return "", fmt.Errorf("turn aborted after %d rounds: %w", r.opts.MaxRounds, ErrRoundLimit)
}

// dispatch resolves and executes one tool call. It always returns a
// tool_result block for the given id; lookup misses, invalid input, handler
// errors, and panics all become error results the model can react to.
func (r *Runner) dispatch(ctx context.Context, id, name string, input json.RawMessage) anthropic.ContentBlockParamUnion {
	turnID, _ := telemetry.TurnIDFromContext(ctx)

	emit := func(durationMs int64, outputSize int, errStr string) {
		fields := map[string]any{
			"tool_name":   name,
			"duration_ms": durationMs,
			"input_size":  len(input),
			"output_size": outputSize,
			"turn_id":     turnID,
		}
		if errStr != "" {
			fields["error"] = errStr
		} else {
			fields["error"] = nil
		}
		telemetry.Emit("tool_exec", fields)
	}

	start := time.Now()

	def, ok := r.reg.Lookup(name)
	if !ok {
		emit(time.Since(start).Milliseconds(), 0, "tool not found")
		return anthropic.NewToolResultBlock(id, fmt.Sprintf("Unknown tool: %s", name), true)
	}

	validated, err := tools.ValidateInput(def.InputSchema, input)
	if err != nil {
		emit(time.Since(start).Milliseconds(), 0, "invalid input")
		return anthropic.NewToolResultBlock(id, fmt.Sprintf("Invalid input for %s: %s", name, err), true)
	}

	execCtx := ctx
	if d := r.opts.Timeouts.TimeoutFor(name); d > 0 {
		var cancel context.CancelFunc
		execCtx, cancel = context.WithTimeout(ctx, d)
		defer cancel()
	}

	resp, err := safeExec(execCtx, def, validated)
	if err != nil {
		// Telemetry carries a generic marker; the detailed message goes back
		// to the model in the tool result.
		emit(time.Since(start).Milliseconds(), 0, "tool error")
		return anthropic.NewToolResultBlock(id, err.Error(), true)
	}

	feats := metrics.Measure(resp)
	emit(time.Since(start).Milliseconds(), feats.Bytes, "")
	lg := telemetry.L()
	lg.Debug().
		Str("turn_id", turnID).
		Str("tool_name", name).
		Int("output_lines", feats.Lines).
		Str("result_preview", metrics.Preview(resp, resultPreviewRunes)).
		Msg("tool_result")

	return anthropic.NewToolResultBlock(id, resp, false)
}

// safeExec confines handler panics to an error result so one misbehaving tool
// cannot take down the loop.
func safeExec(ctx context.Context, def *tools.ToolDefinition, input json.RawMessage) (out string, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("tool %s panicked: %v", def.Name, p)
		}
	}()
	return def.Function(ctx, input)
}
