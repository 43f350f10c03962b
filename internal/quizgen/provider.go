package quizgen

import (
	"context"
	"errors"
	"fmt"

	"github.com/prabhashaj/EdututorAI/internal/config"
	"google.golang.org/genai"
)

const maxAttempts = 3

// Provider is the model-call boundary. Failures here are fatal to the
// generation request and propagate to the caller, unlike malformed
// blocks inside a successful response.
type Provider interface {
	SendPrompt(ctx context.Context, prompt string) (string, error)
}

type geminiProvider struct {
	client *genai.Client
	model  string
}

func NewGeminiProvider(ctx context.Context) (Provider, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &geminiProvider{
		client: client,
		model:  config.GetEnv("GEMINI_MODEL", "gemini-2.0-flash"),
	}, nil
}

func (p *geminiProvider) SendPrompt(ctx context.Context, prompt string) (string, error) {
	log := config.WithContext(ctx)

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		result, err := p.client.Models.GenerateContent(
			ctx,
			p.model,
			genai.Text(prompt),
			nil,
		)
		if err != nil {
			lastErr = err
			log.WithError(err).Warnf("Gemini call failed (attempt %d/%d)", attempt, maxAttempts)
			continue
		}

		raw := result.Text()
		if raw == "" {
			lastErr = errors.New("empty response from model")
			log.Warnf("Gemini returned an empty response (attempt %d/%d)", attempt, maxAttempts)
			continue
		}

		log.Debugf("Raw Gemini output:\n%s", raw)
		return raw, nil
	}

	return "", fmt.Errorf("failed to generate content: %w", lastErr)
}
