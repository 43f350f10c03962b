package quizgen

import (
	"context"
	"fmt"

	"github.com/prabhashaj/EdututorAI/internal/config"
)

type Service interface {
	GenerateQuestions(ctx context.Context, topic string, difficulty, numQuestions int) ([]ParsedQuestion, error)
}

type service struct {
	provider Provider
}

func NewService(provider Provider) Service {
	return &service{provider: provider}
}

func (s *service) GenerateQuestions(ctx context.Context, topic string, difficulty, numQuestions int) ([]ParsedQuestion, error) {
	log := config.WithContext(ctx)

	difficulty = clamp(difficulty, 1, 5)
	if numQuestions <= 0 {
		numQuestions = 5
	}
	numQuestions = clamp(numQuestions, 1, 10)

	prompt := BuildPrompt(topic, difficulty, numQuestions)

	raw, err := s.provider.SendPrompt(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("quiz generation failed: %w", err)
	}

	questions := ParseQuizOutput(ctx, raw)
	log.Infof("Parsed %d questions for topic %q", len(questions), topic)
	return questions, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
