package provider

import (
	"github.com/anthropics/anthropic-sdk-go"
)

// NewClient returns a client using the API key from the env.
func NewClient() *anthropic.Client {
	c := anthropic.NewClient()
	return &c
}

// DefaultModel is used when the configuration names no model.
const DefaultModel = anthropic.Model("claude-sonnet-4-20250514")
