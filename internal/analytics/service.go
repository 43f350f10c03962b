package analytics

import (
	"context"
	"sort"

	"github.com/prabhashaj/EdututorAI/internal/vectorindex"
)

// QuizOutcome is one graded quiz as analytics sees it, decoupled from
// how the result was stored.
type QuizOutcome struct {
	Topic      string  `json:"topic"`
	Difficulty int     `json:"difficulty"`
	Score      float64 `json:"score"`
}

type StudentMetrics struct {
	TotalQuizzes       int                `json:"total_quizzes"`
	AverageScore       float64            `json:"average_score"`
	BestScore          float64            `json:"best_score"`
	TopicsCovered      int                `json:"topics_covered"`
	TopicAverages      map[string]float64 `json:"topic_averages"`
	DifficultyAverages map[int]float64    `json:"difficulty_averages"`
}

type ClassOverview struct {
	Students       []vectorindex.StudentOverview `json:"students"`
	ActiveStudents int                           `json:"active_students"`
	ClassAverage   float64                       `json:"class_average"`
}

type Service interface {
	StudentsOverview(ctx context.Context) (*ClassOverview, error)
	StudentMetrics(outcomes []QuizOutcome) StudentMetrics
}

type service struct {
	index vectorindex.Index
}

func NewService(index vectorindex.Index) Service {
	return &service{index: index}
}

// StudentsOverview aggregates per-student data for the educator
// dashboard: an active student is one with at least one graded quiz,
// and the class average spans active students only.
func (s *service) StudentsOverview(ctx context.Context) (*ClassOverview, error) {
	students, err := s.index.StudentsOverview(ctx)
	if err != nil {
		return nil, err
	}

	active := 0
	total := 0.0
	for _, st := range students {
		if st.TotalQuizzes > 0 {
			active++
			total += st.AverageScore
		}
	}

	classAverage := 0.0
	if active > 0 {
		classAverage = total / float64(active)
	}

	sort.SliceStable(students, func(i, j int) bool {
		return students[i].AverageScore > students[j].AverageScore
	})

	return &ClassOverview{
		Students:       students,
		ActiveStudents: active,
		ClassAverage:   classAverage,
	}, nil
}

func (s *service) StudentMetrics(outcomes []QuizOutcome) StudentMetrics {
	metrics := StudentMetrics{
		TopicAverages:      make(map[string]float64),
		DifficultyAverages: make(map[int]float64),
	}
	if len(outcomes) == 0 {
		return metrics
	}

	topicScores := make(map[string][]float64)
	difficultyScores := make(map[int][]float64)
	total := 0.0

	for _, o := range outcomes {
		total += o.Score
		if o.Score > metrics.BestScore {
			metrics.BestScore = o.Score
		}
		topicScores[o.Topic] = append(topicScores[o.Topic], o.Score)
		difficultyScores[o.Difficulty] = append(difficultyScores[o.Difficulty], o.Score)
	}

	metrics.TotalQuizzes = len(outcomes)
	metrics.AverageScore = total / float64(len(outcomes))
	metrics.TopicsCovered = len(topicScores)

	for topic, scores := range topicScores {
		metrics.TopicAverages[topic] = mean(scores)
	}
	for difficulty, scores := range difficultyScores {
		metrics.DifficultyAverages[difficulty] = mean(scores)
	}

	return metrics
}

func mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
