package quiz

import (
	"fmt"
	"strconv"
	"strings"
)

type GradeResult struct {
	Score          float64  `json:"score"`
	TotalQuestions int      `json:"total_questions"`
	CorrectCount   int      `json:"correct_count"`
	Feedback       []string `json:"feedback"`
}

// NormalizeAnswers coerces raw submission keys to integer question
// indexes once, at the boundary. Clients have historically sent both
// "0" and 0 as keys; non-numeric keys are dropped.
func NormalizeAnswers(raw map[string]string) map[int]string {
	answers := make(map[int]string, len(raw))
	for k, v := range raw {
		idx, err := strconv.Atoi(strings.TrimSpace(k))
		if err != nil {
			continue
		}
		answers[idx] = v
	}
	return answers
}

// Grade scores a submission against the quiz questions. A missing answer
// counts as incorrect. The learner's answer is compared against the
// correct option's literal text (trimmed, case-sensitive), not against
// the letter: submitting "A" is wrong even when A is the correct option.
// That quirk is long-standing client-facing behavior and is kept on
// purpose; see grader tests.
func Grade(questions []QuizQuestion, answers map[int]string) GradeResult {
	if len(questions) == 0 {
		return GradeResult{Feedback: []string{}}
	}

	correct := 0
	feedback := make([]string, 0, len(questions))

	for i, q := range questions {
		userAnswer := answers[i]
		correctText := correctOptionText(q)

		if strings.TrimSpace(userAnswer) == strings.TrimSpace(correctText) {
			correct++
			feedback = append(feedback, fmt.Sprintf("Question %d: ✅ Correct! %s", i+1, q.Explanation))
		} else {
			feedback = append(feedback, fmt.Sprintf(
				"Question %d: ❌ Incorrect. You answered: '%s'. Correct answer: %s) %s. %s",
				i+1, userAnswer, q.CorrectLetter, correctText, q.Explanation))
		}
	}

	return GradeResult{
		Score:          100.0 * float64(correct) / float64(len(questions)),
		TotalQuestions: len(questions),
		CorrectCount:   correct,
		Feedback:       feedback,
	}
}

// correctOptionText maps the correct letter to its option text. Out of
// range letters yield "", which can only happen on hand-edited data.
func correctOptionText(q QuizQuestion) string {
	if len(q.CorrectLetter) != 1 {
		return ""
	}
	idx := int(q.CorrectLetter[0] - 'A')
	if idx < 0 || idx >= len(q.Options) {
		return ""
	}
	return q.Options[idx]
}
