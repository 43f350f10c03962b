package quizgen

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/prabhashaj/EdututorAI/internal/config"
)

// ParsedQuestion is one validated question extracted from model output.
type ParsedQuestion struct {
	Text          string
	Options       []string
	CorrectLetter string
	Explanation   string
}

var (
	questionMarkerRe = regexp.MustCompile(`(?i)Question \d+:`)
	optionRe         = regexp.MustCompile(`(?i)^([A-D])\)\s*(.+)$`)
	answerRe         = regexp.MustCompile(`(?i)ANSWER:\s*([A-D])`)
)

// ParseQuizOutput converts raw model output into validated questions.
// It never returns an empty slice and never panics outward: malformed
// blocks are dropped one by one, and when nothing usable remains (or an
// internal fault is recovered) a single placeholder question is returned
// so quiz creation downstream never sees zero questions.
func ParseQuizOutput(ctx context.Context, raw string) (questions []ParsedQuestion) {
	log := config.WithContext(ctx)

	defer func() {
		if r := recover(); r != nil {
			log.Warnf("Recovered from panic while parsing quiz output: %v", r)
			questions = []ParsedQuestion{parseErrorFallback()}
		}
	}()

	blocks := questionMarkerRe.Split(raw, -1)
	for _, block := range blocks[1:] {
		if q, ok := parseBlock(block); ok {
			questions = append(questions, q)
		}
	}

	if len(questions) == 0 {
		log.Warn("No usable questions in model output, returning fallback question")
		return []ParsedQuestion{noQuestionsFallback()}
	}

	return questions
}

func parseBlock(block string) (ParsedQuestion, bool) {
	var lines []string
	for _, line := range strings.Split(block, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}

	// A usable block needs at least question + 4 options + answer.
	if len(lines) < 6 {
		return ParsedQuestion{}, false
	}

	questionText := lines[0]

	var options [4]string
	var seen [4]bool
	answerLineIdx := -1

	for i, line := range lines[1:] {
		if m := optionRe.FindStringSubmatch(line); m != nil {
			idx := int(strings.ToUpper(m[1])[0] - 'A')
			if seen[idx] {
				return ParsedQuestion{}, false
			}
			seen[idx] = true
			options[idx] = strings.TrimSpace(m[2])
			continue
		}
		if strings.HasPrefix(line, "ANSWER:") {
			answerLineIdx = i + 1
			break
		}
	}

	for _, s := range seen {
		if !s {
			return ParsedQuestion{}, false
		}
	}

	if answerLineIdx < 1 {
		return ParsedQuestion{}, false
	}

	m := answerRe.FindStringSubmatch(lines[answerLineIdx])
	if m == nil {
		return ParsedQuestion{}, false
	}
	correctLetter := strings.ToUpper(m[1])

	explanation := ""
	for _, line := range lines[answerLineIdx+1:] {
		if strings.HasPrefix(line, "EXPLANATION:") {
			explanation = strings.TrimSpace(strings.TrimPrefix(line, "EXPLANATION:"))
		} else if explanation != "" && !strings.HasPrefix(line, "Question") {
			explanation += " " + line
		} else {
			break
		}
	}

	if questionText == "" {
		return ParsedQuestion{}, false
	}
	if explanation == "" {
		explanation = fmt.Sprintf("The correct answer is %s.", correctLetter)
	}

	return ParsedQuestion{
		Text:          questionText,
		Options:       options[:],
		CorrectLetter: correctLetter,
		Explanation:   explanation,
	}, true
}

func noQuestionsFallback() ParsedQuestion {
	return ParsedQuestion{
		Text:          "What is a key concept in the topic we are studying?",
		Options:       []string{"Concept A", "Concept B", "Concept C", "Concept D"},
		CorrectLetter: "A",
		Explanation:   "This is a basic question about the topic.",
	}
}

func parseErrorFallback() ParsedQuestion {
	return ParsedQuestion{
		Text:          "What is an important aspect of this subject?",
		Options:       []string{"Option A", "Option B", "Option C", "Option D"},
		CorrectLetter: "A",
		Explanation:   "This is a fallback question due to parsing error.",
	}
}
