package chat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/amin-jlassi/Hospitalrecordmanagementmvp/internal/i18n"
)

func TestNewGemini_RequiresKey(t *testing.T) {
	_, err := NewGemini("", "")
	assert.Error(t, err)
}

func TestPromptFor_EmbedsQuestionAndLanguage(t *testing.T) {
	fr := promptFor(i18n.French, "j'ai mal à la tête")
	assert.Contains(t, fr, "assistant médical francophone")
	assert.Contains(t, fr, "j'ai mal à la tête")

	ar := promptFor(i18n.Arabic, "عندي صداع")
	assert.Contains(t, ar, "مساعد طبي")
	assert.Contains(t, ar, "عندي صداع")

	assert.False(t, strings.Contains(ar, "francophone"))
}

func TestApology_PerLanguage(t *testing.T) {
	assert.Equal(t, apologyFR, apology(i18n.French))
	assert.Equal(t, apologyAR, apology(i18n.Arabic))
	assert.NotEmpty(t, apology(i18n.French))
}
