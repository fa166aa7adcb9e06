// Package chat provides the medical-advice responder and the
// conversation log behind the chat view. Two responders satisfy the
// same contract: a deterministic local keyword matcher, and a Gemini
// delegation. Neither ever fails past the contract — every failure
// path resolves to a valid reply string in the active language.
package chat

import (
	"context"

	"github.com/amin-jlassi/Hospitalrecordmanagementmvp/internal/i18n"
)

// Responder produces a reply for one user message. Implementations
// must return a non-empty reply for any input; failures are downgraded
// to a canned apology, never surfaced as an error.
type Responder interface {
	Respond(ctx context.Context, text string, lang i18n.Lang) string
}
