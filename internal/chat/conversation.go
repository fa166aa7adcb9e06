package chat

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Author tags who wrote a message.
type Author string

const (
	AuthorUser      Author = "user"
	AuthorAssistant Author = "assistant"
)

// Message is one entry in the conversation log.
type Message struct {
	Author Author
	Text   string
	Time   time.Time
}

// Conversation is the transient, append-only message log behind one
// chat session. Sends alternate: the user message is appended
// immediately and synchronously, the assistant message after the
// responder resolves. The log never removes or reorders entries.
type Conversation struct {
	id string

	mu       sync.Mutex
	messages []Message
	pending  bool
}

// NewConversation starts an empty log with a fresh identity.
func NewConversation() *Conversation {
	return &Conversation{id: uuid.NewString()}
}

// ID identifies this conversation; replies addressed to an older
// conversation are discarded by the caller.
func (c *Conversation) ID() string { return c.id }

// AppendUser records the user's message and marks a reply as pending.
func (c *Conversation) AppendUser(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, Message{Author: AuthorUser, Text: text, Time: time.Now()})
	c.pending = true
}

// AppendAssistant records the responder's reply and clears the pending
// flag.
func (c *Conversation) AppendAssistant(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, Message{Author: AuthorAssistant, Text: text, Time: time.Now()})
	c.pending = false
}

// Pending reports whether a reply is still outstanding. The interface
// uses this to refuse a new send while one is in flight.
func (c *Conversation) Pending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending
}

// Messages returns a snapshot of the log in append order.
func (c *Conversation) Messages() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// Len returns the number of logged messages.
func (c *Conversation) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.messages)
}
