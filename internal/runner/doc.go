// Package runner drives the conversation loop against the Anthropic Messages
// API and dispatches tool calls.
//
// Invariant:
//   - every tool_use block in an assistant turn receives exactly one
//     tool_result, in the same order, in the immediately following user turn;
//     the next model call is never issued with outstanding results.
//
// Flow:
//
//	user(text) -> assistant(tool_use...) -> user(tool_result...) -> assistant(text)
package runner
