package memory

import "github.com/anthropics/anthropic-sdk-go"

// Conversation is the append-only message buffer for one session.
type Conversation struct {
	msgs []anthropic.MessageParam
}

// NewConversation returns an empty buffer.
func NewConversation() *Conversation {
	return &Conversation{}
}

// Append adds a turn at the end of the buffer.
func (c *Conversation) Append(m anthropic.MessageParam) {
	c.msgs = append(c.msgs, m)
}

// Messages returns a copy of the buffer in insertion order.
func (c *Conversation) Messages() []anthropic.MessageParam {
	out := make([]anthropic.MessageParam, len(c.msgs))
	copy(out, c.msgs)
	return out
}

// Len returns the number of buffered turns.
func (c *Conversation) Len() int {
	return len(c.msgs)
}
