package vectorindex

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// Index is the narrow boundary to the vector store that keeps learner
// profiles and quiz outcomes for analytics. The in-memory implementation
// below stands in for a hosted vector database.
type Index interface {
	UpsertProfile(ctx context.Context, p Profile) error
	RecordResult(ctx context.Context, rec ResultRecord) error
	HistoryByLearner(ctx context.Context, userID string) ([]ResultRecord, error)
	StudentsOverview(ctx context.Context) ([]StudentOverview, error)
}

type Profile struct {
	UserID  string   `json:"user_id"`
	Name    string   `json:"name"`
	Email   string   `json:"email"`
	Role    string   `json:"role"`
	Courses []string `json:"courses"`
}

type ResultRecord struct {
	UserID         string    `json:"user_id"`
	QuizID         string    `json:"quiz_id"`
	Topic          string    `json:"topic"`
	Difficulty     int       `json:"difficulty"`
	Score          float64   `json:"score"`
	TotalQuestions int       `json:"total_questions"`
	CorrectCount   int       `json:"correct_count"`
	SubmittedAt    time.Time `json:"submitted_at"`
}

type StudentOverview struct {
	UserID       string         `json:"user_id"`
	Name         string         `json:"name"`
	Email        string         `json:"email"`
	Courses      []string       `json:"courses"`
	QuizHistory  []ResultRecord `json:"quiz_history"`
	TotalQuizzes int            `json:"total_quizzes"`
	AverageScore float64        `json:"average_score"`
}

type profileEntry struct {
	profile   Profile
	embedding []float64
}

type resultEntry struct {
	record    ResultRecord
	embedding []float64
}

type memoryIndex struct {
	mu       sync.RWMutex
	profiles map[string]profileEntry
	results  []resultEntry
}

func NewMemoryIndex() Index {
	return &memoryIndex{
		profiles: make(map[string]profileEntry),
	}
}

func (m *memoryIndex) UpsertProfile(ctx context.Context, p Profile) error {
	text := fmt.Sprintf("%s %s %s", p.Name, p.Role, strings.Join(p.Courses, " "))

	m.mu.Lock()
	defer m.mu.Unlock()
	m.profiles[p.UserID] = profileEntry{
		profile:   p,
		embedding: Embed(text),
	}
	return nil
}

func (m *memoryIndex) RecordResult(ctx context.Context, rec ResultRecord) error {
	text := fmt.Sprintf("%s difficulty_%d", rec.Topic, rec.Difficulty)
	if rec.SubmittedAt.IsZero() {
		rec.SubmittedAt = time.Now()
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.results = append(m.results, resultEntry{
		record:    rec,
		embedding: Embed(text),
	})
	return nil
}

func (m *memoryIndex) HistoryByLearner(ctx context.Context, userID string) ([]ResultRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var history []ResultRecord
	for _, e := range m.results {
		if e.record.UserID == userID {
			history = append(history, e.record)
		}
	}

	sort.Slice(history, func(i, j int) bool {
		return history[i].SubmittedAt.After(history[j].SubmittedAt)
	})
	return history, nil
}

func (m *memoryIndex) StudentsOverview(ctx context.Context) ([]StudentOverview, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var overviews []StudentOverview
	for _, e := range m.profiles {
		if e.profile.Role != "student" {
			continue
		}

		var history []ResultRecord
		var total float64
		for _, r := range m.results {
			if r.record.UserID == e.profile.UserID {
				history = append(history, r.record)
				total += r.record.Score
			}
		}
		sort.Slice(history, func(i, j int) bool {
			return history[i].SubmittedAt.After(history[j].SubmittedAt)
		})

		average := 0.0
		if len(history) > 0 {
			average = total / float64(len(history))
		}

		overviews = append(overviews, StudentOverview{
			UserID:       e.profile.UserID,
			Name:         e.profile.Name,
			Email:        e.profile.Email,
			Courses:      e.profile.Courses,
			QuizHistory:  history,
			TotalQuizzes: len(history),
			AverageScore: average,
		})
	}

	sort.Slice(overviews, func(i, j int) bool {
		return overviews[i].Name < overviews[j].Name
	})
	return overviews, nil
}
