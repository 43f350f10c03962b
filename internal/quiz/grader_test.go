package quiz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prabhashaj/EdututorAI/internal/quiz"
)

func capitalQuestion() quiz.QuizQuestion {
	return quiz.QuizQuestion{
		Text:          "What is the capital of France?",
		Options:       []string{"Paris", "London", "Berlin", "Madrid"},
		CorrectLetter: "A",
		Explanation:   "Paris is the capital of France.",
	}
}

func TestGrade_AnswerComparison(t *testing.T) {
	questions := []quiz.QuizQuestion{capitalQuestion()}

	t.Run("ExactText", func(t *testing.T) {
		res := quiz.Grade(questions, map[int]string{0: "Paris"})
		assert.Equal(t, 1, res.CorrectCount)
		assert.Equal(t, 100.0, res.Score)
	})

	t.Run("WhitespaceTrimmed", func(t *testing.T) {
		res := quiz.Grade(questions, map[int]string{0: "  Paris  "})
		assert.Equal(t, 1, res.CorrectCount)
	})

	t.Run("CaseSensitive", func(t *testing.T) {
		res := quiz.Grade(questions, map[int]string{0: " paris"})
		assert.Equal(t, 0, res.CorrectCount)
	})

	// Grading compares against the option text, not the letter, so a
	// bare letter is wrong even when it names the correct option. The
	// asymmetry is kept for compatibility with existing clients.
	t.Run("LetterIsNotAccepted", func(t *testing.T) {
		res := quiz.Grade(questions, map[int]string{0: "A"})
		assert.Equal(t, 0, res.CorrectCount)
	})

	t.Run("MissingAnswerCountsIncorrect", func(t *testing.T) {
		res := quiz.Grade(questions, map[int]string{})
		assert.Equal(t, 0, res.CorrectCount)
		require.Len(t, res.Feedback, 1)
		assert.Contains(t, res.Feedback[0], "❌ Incorrect")
		assert.Contains(t, res.Feedback[0], "You answered: ''")
	})
}

func TestGrade_Feedback(t *testing.T) {
	questions := []quiz.QuizQuestion{capitalQuestion()}

	correct := quiz.Grade(questions, map[int]string{0: "Paris"})
	require.Len(t, correct.Feedback, 1)
	assert.Equal(t, "Question 1: ✅ Correct! Paris is the capital of France.", correct.Feedback[0])

	wrong := quiz.Grade(questions, map[int]string{0: "London"})
	require.Len(t, wrong.Feedback, 1)
	assert.Equal(t,
		"Question 1: ❌ Incorrect. You answered: 'London'. Correct answer: A) Paris. Paris is the capital of France.",
		wrong.Feedback[0])
}

func TestGrade_Score(t *testing.T) {
	questions := make([]quiz.QuizQuestion, 0, 4)
	for i := 0; i < 4; i++ {
		questions = append(questions, capitalQuestion())
	}

	res := quiz.Grade(questions, map[int]string{0: "Paris", 1: "Paris", 2: "Paris", 3: "London"})
	assert.Equal(t, 3, res.CorrectCount)
	assert.Equal(t, 4, res.TotalQuestions)
	assert.Equal(t, 75.0, res.Score)
	assert.Len(t, res.Feedback, 4)
}

func TestGrade_ZeroQuestionsGuard(t *testing.T) {
	res := quiz.Grade(nil, map[int]string{0: "Paris"})
	assert.Equal(t, 0.0, res.Score)
	assert.Equal(t, 0, res.TotalQuestions)
	assert.Empty(t, res.Feedback)
}

func TestGrade_CorruptCorrectLetter(t *testing.T) {
	q := capitalQuestion()
	q.CorrectLetter = "Z"

	res := quiz.Grade([]quiz.QuizQuestion{q}, map[int]string{0: "Paris"})
	assert.Equal(t, 0, res.CorrectCount, "out-of-range letter resolves to empty correct text")

	res = quiz.Grade([]quiz.QuizQuestion{q}, map[int]string{0: ""})
	assert.Equal(t, 1, res.CorrectCount, "empty answer matches empty correct text")
}

func TestNormalizeAnswers(t *testing.T) {
	t.Run("NumericKeys", func(t *testing.T) {
		got := quiz.NormalizeAnswers(map[string]string{"0": "Paris", "2": "Berlin"})
		assert.Equal(t, map[int]string{0: "Paris", 2: "Berlin"}, got)
	})

	t.Run("NonNumericKeysDropped", func(t *testing.T) {
		got := quiz.NormalizeAnswers(map[string]string{"first": "Paris", "1": "London"})
		assert.Equal(t, map[int]string{1: "London"}, got)
	})

	t.Run("PaddedKeys", func(t *testing.T) {
		got := quiz.NormalizeAnswers(map[string]string{" 0 ": "Paris"})
		assert.Equal(t, map[int]string{0: "Paris"}, got)
	})
}

// Whether a client serialized the question index as "0" or 0, grading
// must come out identical after normalization.
func TestGrade_KeyFormTolerance(t *testing.T) {
	questions := []quiz.QuizQuestion{capitalQuestion()}

	fromString := quiz.Grade(questions, quiz.NormalizeAnswers(map[string]string{"0": "Paris"}))
	direct := quiz.Grade(questions, map[int]string{0: "Paris"})

	assert.Equal(t, direct, fromString)
}
