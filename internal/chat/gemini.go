package chat

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"
	"google.golang.org/genai"

	"github.com/amin-jlassi/Hospitalrecordmanagementmvp/internal/i18n"
)

const defaultGeminiModel = "gemini-2.0-flash"

// Per-language apology used whenever the delegation fails: transport
// error, timeout, empty output. The contract forbids propagating any
// of these as errors.
const (
	apologyFR = "Désolé, une erreur s'est produite. Veuillez réessayer."
	apologyAR = "عذرًا، حدث خطأ. يرجى المحاولة مرة أخرى."
)

// GeminiResponder delegates to the Gemini API with a language-specific
// instruction prompt. Identical in-flight questions are collapsed into
// one API call; every failure path resolves to the apology string.
type GeminiResponder struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	group   singleflight.Group
}

// NewGemini creates a Gemini-backed responder.
func NewGemini(apiKey, model string) (*GeminiResponder, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if model == "" {
		model = defaultGeminiModel
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &GeminiResponder{
		client:  client,
		model:   model,
		timeout: 30 * time.Second,
	}, nil
}

// Respond sends the question to Gemini and returns its reply, or the
// per-language apology when anything goes wrong.
func (r *GeminiResponder) Respond(ctx context.Context, text string, lang i18n.Lang) string {
	key := string(lang) + "\x00" + text
	v, err, _ := r.group.Do(key, func() (interface{}, error) {
		ctx, cancel := context.WithTimeout(ctx, r.timeout)
		defer cancel()

		result, err := r.client.Models.GenerateContent(ctx, r.model,
			genai.Text(promptFor(lang, text)), nil)
		if err != nil {
			return "", err
		}
		reply := result.Text()
		if reply == "" {
			return "", fmt.Errorf("empty model output")
		}
		return reply, nil
	})
	if err != nil {
		return apology(lang)
	}
	return v.(string)
}

// promptFor wraps the user's question in the language-specific medical
// assistant instruction.
func promptFor(lang i18n.Lang, text string) string {
	if lang == i18n.Arabic {
		return fmt.Sprintf("أنت مساعد طبي. أجب بلغة عربية واضحة وودودة على: %q", text)
	}
	return fmt.Sprintf("Tu es un assistant médical francophone. Réponds poliment et clairement à : %q", text)
}

func apology(lang i18n.Lang) string {
	if lang == i18n.Arabic {
		return apologyAR
	}
	return apologyFR
}
