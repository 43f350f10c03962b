package quizgen_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prabhashaj/EdututorAI/internal/quizgen"
)

func TestBuildPrompt(t *testing.T) {
	prompt := quizgen.BuildPrompt("Photosynthesis", 3, 7)

	assert.Contains(t, prompt, "Create 7 multiple choice questions about 'Photosynthesis' at difficulty level 3/5.")
	assert.Contains(t, prompt, `Start each question with "Question X:"`)
	assert.Contains(t, prompt, "Topic: Photosynthesis")
	assert.Contains(t, prompt, "Difficulty: 3/5")
	assert.Contains(t, prompt, "Number of questions: 7")

	assert.Equal(t, prompt, quizgen.BuildPrompt("Photosynthesis", 3, 7), "prompt must be deterministic")
}

// The worked examples embedded in the prompt use the exact layout the
// parser recognizes, so the prompt itself must reparse cleanly. This
// pins the prompt and parser to a single shared format.
func TestPromptAndParserStayInLockStep(t *testing.T) {
	prompt := quizgen.BuildPrompt("European capitals", 2, 5)

	got := quizgen.ParseQuizOutput(context.Background(), prompt)

	require.Len(t, got, 2)
	assert.Equal(t, "What is the capital of France?", got[0].Text)
	assert.Equal(t, []string{"London", "Berlin", "Paris", "Madrid"}, got[0].Options)
	assert.Equal(t, "C", got[0].CorrectLetter)
	assert.Equal(t, "B", got[1].CorrectLetter)
}
