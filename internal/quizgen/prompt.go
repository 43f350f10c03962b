package quizgen

import "fmt"

// BuildPrompt renders the instruction sent to the model. The layout it
// demands is the same one ParseQuizOutput recognizes; changing one side
// without the other breaks generation.
func BuildPrompt(topic string, difficulty, numQuestions int) string {
	return fmt.Sprintf(`
Create %d multiple choice questions about '%s' at difficulty level %d/5.

CRITICAL: Follow this EXACT format for each question. Do not deviate from this format:

Question 1:
What is the capital of France?
A) London
B) Berlin
C) Paris
D) Madrid
ANSWER: C
EXPLANATION: Paris is the capital and largest city of France.

Question 2:
Which planet is closest to the Sun?
A) Venus
B) Mercury
C) Earth
D) Mars
ANSWER: B
EXPLANATION: Mercury is the smallest planet and the one closest to the Sun in our solar system.

Now generate %d questions about '%s' following this EXACT format:
- Start each question with "Question X:" where X is the number
- Write the question on the next line
- List exactly 4 options (A, B, C, D)
- Include "ANSWER: " followed by the correct letter
- Include "EXPLANATION: " followed by a brief explanation
- Leave a blank line between questions

Topic: %s
Difficulty: %d/5
Number of questions: %d

Begin:
`, numQuestions, topic, difficulty, numQuestions, topic, topic, difficulty, numQuestions)
}
