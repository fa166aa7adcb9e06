package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	// go.opencensus.io (a transitive dependency of the genai client) starts a
	// worker goroutine from package init that outlives every test.
	goleak.VerifyTestMain(m, goleak.IgnoreTopFunction("go.opencensus.io/stats/view.(*worker).start"))
}

func TestConversation_AppendOrder(t *testing.T) {
	c := NewConversation()

	c.AppendUser("bonjour")
	c.AppendAssistant("bonjour, comment puis-je aider ?")
	c.AppendUser("j'ai mal à la tête")
	c.AppendAssistant("reposez-vous")

	msgs := c.Messages()
	require.Len(t, msgs, 4)
	assert.Equal(t, AuthorUser, msgs[0].Author)
	assert.Equal(t, AuthorAssistant, msgs[1].Author)
	assert.Equal(t, AuthorUser, msgs[2].Author)
	assert.Equal(t, AuthorAssistant, msgs[3].Author)
	assert.Equal(t, "j'ai mal à la tête", msgs[2].Text)

	assert.False(t, msgs[1].Time.Before(msgs[0].Time), "timestamps are monotone in append order")
}

func TestConversation_PendingFlag(t *testing.T) {
	c := NewConversation()
	assert.False(t, c.Pending())

	c.AppendUser("question")
	assert.True(t, c.Pending(), "a reply is outstanding after a user send")

	c.AppendAssistant("réponse")
	assert.False(t, c.Pending())
}

func TestConversation_MessagesIsASnapshot(t *testing.T) {
	c := NewConversation()
	c.AppendUser("a")

	snap := c.Messages()
	snap[0].Text = "tampered"

	assert.Equal(t, "a", c.Messages()[0].Text)
}

func TestConversation_DistinctIdentities(t *testing.T) {
	a, b := NewConversation(), NewConversation()
	assert.NotEmpty(t, a.ID())
	assert.NotEqual(t, a.ID(), b.ID(), "each chat session gets its own identity")
}
