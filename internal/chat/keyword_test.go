package chat

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/amin-jlassi/Hospitalrecordmanagementmvp/internal/i18n"
)

func TestKeywordResponder_HeadacheFrench(t *testing.T) {
	r := NewKeywordResponder()

	got := r.Respond(context.Background(), "j'ai mal à la tête", i18n.French)
	assert.Equal(t, adviceRules[0].fr, got, "headache input must return the neurological advice block verbatim")
}

func TestKeywordResponder_HeadacheArabic(t *testing.T) {
	r := NewKeywordResponder()

	got := r.Respond(context.Background(), "عندي صداع قوي", i18n.Arabic)
	assert.Equal(t, adviceRules[0].ar, got)
}

func TestKeywordResponder_UnmatchedGetsDefaultReply(t *testing.T) {
	r := NewKeywordResponder()

	got := r.Respond(context.Background(), "quelle heure est-il ?", i18n.French)
	assert.Equal(t, defaultReplyFR, got, "unrelated input must get the clarifying prompt")
	assert.NotEmpty(t, got)

	got = r.Respond(context.Background(), "شكرا", i18n.Arabic)
	assert.Equal(t, defaultReplyAR, got)
}

func TestKeywordResponder_NeverEmpty(t *testing.T) {
	r := NewKeywordResponder()

	inputs := []string{"", "   ", "fièvre", "mal au ventre", "douleur à la poitrine", "j'ai des démangeaisons", "xyz"}
	for _, in := range inputs {
		for _, lang := range []i18n.Lang{i18n.French, i18n.Arabic} {
			assert.NotEmpty(t, r.Respond(context.Background(), in, lang), "input %q lang %s", in, lang)
		}
	}
}

func TestKeywordResponder_MatchIsCaseInsensitive(t *testing.T) {
	r := NewKeywordResponder()

	got := r.Respond(context.Background(), "FIÈVRE depuis hier", i18n.French)
	assert.Equal(t, adviceRules[1].fr, got)
}

func TestKeywordResponder_FirstRuleWins(t *testing.T) {
	r := NewKeywordResponder()

	// Mentions both head and fever; the rule order decides.
	got := r.Respond(context.Background(), "mal à la tête et fièvre", i18n.French)
	assert.Equal(t, adviceRules[0].fr, got)
}

func TestAdviceRules_BothLanguagesFilled(t *testing.T) {
	for i, rule := range adviceRules {
		assert.NotEmpty(t, rule.keywords, "rule %d has no keywords", i)
		assert.NotEmpty(t, rule.fr, "rule %d missing French block", i)
		assert.NotEmpty(t, rule.ar, "rule %d missing Arabic block", i)
	}
}
