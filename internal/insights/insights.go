// Package insights holds the deterministic scoring and text helpers behind the
// learner recommendations and the /api/ai endpoints. Nothing here touches storage.
package insights

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"unicode/utf8"
)

// NoContentSummary is returned when there is nothing long enough to summarize
const NoContentSummary = "No content available for summarization."

const (
	minSentenceLength = 20
	summarySentences  = 3
)

var sentenceSplit = regexp.MustCompile(`[.!?]+`)

func splitSentences(text string) []string {
	return sentenceSplit.Split(text, -1)
}

// Summarize keeps the first three sentences of at least 20 characters, joined with ". "
func Summarize(text string) string {
	var kept []string
	for _, s := range splitSentences(text) {
		s = strings.TrimSpace(s)
		if utf8.RuneCountInString(s) >= minSentenceLength {
			kept = append(kept, s)
		}
		if len(kept) == summarySentences {
			break
		}
	}
	if len(kept) == 0 {
		return NoContentSummary
	}
	return strings.Join(kept, ". ")
}

// AnswerKey is the part of a question grading needs
type AnswerKey struct {
	QuestionID    string
	CorrectAnswer int
}

type Grade struct {
	Correct    int
	Total      int
	Percentage float64
	Passed     bool
}

// GradeQuiz compares answers (question id -> option index) against the key.
// An empty quiz scores 0% and only passes when the passing score is 0.
func GradeQuiz(keys []AnswerKey, answers map[string]int, passingScore int) Grade {
	g := Grade{Total: len(keys)}
	for _, k := range keys {
		if chosen, ok := answers[k.QuestionID]; ok && chosen == k.CorrectAnswer {
			g.Correct++
		}
	}
	if g.Total > 0 {
		g.Percentage = float64(g.Correct) / float64(g.Total) * 100
	}
	g.Passed = g.Percentage >= float64(passingScore)
	return g
}

// CompletionPercentage is completed/total*100, 0 for a course with no lessons
func CompletionPercentage(completed, total int64) float64 {
	if total <= 0 {
		return 0
	}
	return float64(completed) / float64(total) * 100
}

// GeneratedQuestion is a templated multiple choice question
type GeneratedQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"`
}

var questionTemplates = map[string]string{
	"beginner":     "What is %s?",
	"intermediate": "Which of the following best describes %s?",
	"advanced":     "In the context of %s, which statement is most accurate?",
}

// GenerateQuizQuestion builds a question from the first five words of the first sentence.
// Unknown difficulties use the intermediate template. Returns nil when content has no words.
func GenerateQuizQuestion(content, difficulty string) *GeneratedQuestion {
	words := strings.Fields(splitSentences(content)[0])
	if len(words) == 0 {
		return nil
	}
	if len(words) > 5 {
		words = words[:5]
	}

	tmpl, ok := questionTemplates[difficulty]
	if !ok {
		tmpl = questionTemplates["intermediate"]
	}

	return &GeneratedQuestion{
		Question: fmt.Sprintf(tmpl, strings.Join(words, " ")),
		Options: []string{
			"Correct answer option",
			"Option 2",
			"Option 3",
			"Option 4",
		},
		CorrectAnswer: 0,
	}
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
