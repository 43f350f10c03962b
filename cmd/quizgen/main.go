// Command quizgen generates a quiz from the command line: it builds the
// model prompt, calls Gemini and prints the parsed questions. Useful
// for tuning prompts without running the API.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/fatih/color"

	"github.com/prabhashaj/EdututorAI/internal/config"
	"github.com/prabhashaj/EdututorAI/internal/quizgen"
)

func main() {
	topic := flag.String("topic", "", "quiz topic (required)")
	difficulty := flag.Int("difficulty", 3, "difficulty from 1 to 5")
	count := flag.Int("count", 5, "number of questions")
	reveal := flag.Bool("reveal", false, "print correct answers and explanations")
	flag.Parse()

	if *topic == "" {
		flag.Usage()
		os.Exit(2)
	}

	config.Init()
	ctx := context.Background()

	provider, err := quizgen.NewGeminiProvider(ctx)
	if err != nil {
		log.Fatalf("failed to initialize Gemini provider: %v", err)
	}
	service := quizgen.NewService(provider)

	questions, err := service.GenerateQuestions(ctx, *topic, *difficulty, *count)
	if err != nil {
		log.Fatalf("quiz generation failed: %v", err)
	}

	title := color.New(color.FgCyan, color.Bold)
	title.Printf("Quiz on %s (%d questions)\n\n", *topic, len(questions))

	for i, q := range questions {
		color.New(color.Bold).Printf("Question %d: ", i+1)
		fmt.Println(q.Text)
		for j, opt := range q.Options {
			fmt.Printf("  %c) %s\n", 'A'+j, opt)
		}
		if *reveal {
			color.Green("  ANSWER: %s", q.CorrectLetter)
			color.Yellow("  EXPLANATION: %s", q.Explanation)
		}
		fmt.Println()
	}
}
