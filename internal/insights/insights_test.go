package insights

import (
	"testing"

	"github.com/NeroQue/learnsmart-backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "skips short sentences",
			in:   "AAAAAAAAAAAAAAAAAAAA. Short. BBBBBBBBBBBBBBBBBBBB. CCCCCCCCCCCCCCCCCCCC.",
			want: "AAAAAAAAAAAAAAAAAAAA. BBBBBBBBBBBBBBBBBBBB. CCCCCCCCCCCCCCCCCCCC",
		},
		{
			name: "keeps at most three",
			in:   "The first sentence is long enough! The second sentence is long enough? The third sentence is long enough. The fourth sentence is long enough.",
			want: "The first sentence is long enough. The second sentence is long enough. The third sentence is long enough",
		},
		{name: "nothing long enough", in: "Hi. Ok. Sure!", want: NoContentSummary},
		{name: "empty", in: "", want: NoContentSummary},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Summarize(tt.in))
		})
	}
}

func TestGradeQuiz(t *testing.T) {
	keys := []AnswerKey{{QuestionID: "q1", CorrectAnswer: 1}, {QuestionID: "q2", CorrectAnswer: 3}}

	g := GradeQuiz(keys, map[string]int{"q1": 1, "q2": 2}, 70)
	assert.Equal(t, 1, g.Correct)
	assert.Equal(t, 2, g.Total)
	assert.Equal(t, 50.0, g.Percentage)
	assert.False(t, g.Passed)

	g = GradeQuiz(keys, map[string]int{"q1": 1, "q2": 3}, 70)
	assert.Equal(t, 100.0, g.Percentage)
	assert.True(t, g.Passed)
}

func TestGradeQuizEmpty(t *testing.T) {
	g := GradeQuiz(nil, map[string]int{"q1": 0}, 70)
	assert.Equal(t, 0.0, g.Percentage)
	assert.False(t, g.Passed)

	assert.True(t, GradeQuiz(nil, nil, 0).Passed, "a zero passing score passes an empty quiz")
}

func TestCompletionPercentage(t *testing.T) {
	assert.Equal(t, 0.0, CompletionPercentage(0, 0))
	assert.InDelta(t, 100.0/3, CompletionPercentage(1, 3), 1e-9)
	assert.Equal(t, 100.0, CompletionPercentage(3, 3))
}

func TestGenerateQuizQuestion(t *testing.T) {
	q := GenerateQuizQuestion("Python is a high-level programming language. It is popular.", "beginner")
	require.NotNil(t, q)
	assert.Equal(t, "What is Python is a high-level programming?", q.Question)
	assert.Len(t, q.Options, 4)
	assert.Equal(t, 0, q.CorrectAnswer)

	q = GenerateQuizQuestion("Variables store data", "expert")
	require.NotNil(t, q)
	assert.Equal(t, "Which of the following best describes Variables store data?", q.Question)

	assert.Nil(t, GenerateQuizQuestion("   ", "beginner"))
}

func TestClassifyLearningStyle(t *testing.T) {
	tests := []struct {
		name   string
		scores []float64
		times  []int
		want   string
	}{
		{"no quizzes", nil, []int{10}, StyleBalanced},
		{"no lessons", []float64{90}, nil, StyleBalanced},
		{"quick", []float64{90, 80}, []int{10, 20}, StyleQuick},
		{"thorough", []float64{100}, []int{30, 40}, StyleThorough},
		{"developing", []float64{50, 60}, []int{10}, StyleDeveloping},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyLearningStyle(tt.scores, tt.times)
			assert.Equal(t, tt.want, got.Style)
			assert.NotEmpty(t, got.Insights)
		})
	}

	got := ClassifyLearningStyle([]float64{90, 80}, []int{10, 20})
	require.NotNil(t, got.AverageScore)
	assert.Equal(t, 85.0, *got.AverageScore)
	assert.Equal(t, 15.0, *got.AverageTimePerLesson)
}

func TestAnalyzeQuizPerformance(t *testing.T) {
	empty := AnalyzeQuizPerformance(nil)
	assert.Empty(t, empty.Strengths)
	assert.Equal(t, []string{"Start taking quizzes to get performance insights"}, empty.Recommendations)
	assert.Nil(t, empty.AverageScore)

	strong := AnalyzeQuizPerformance([]float64{90, 85})
	assert.Contains(t, strong.Strengths, "Strong grasp of concepts")

	weak := AnalyzeQuizPerformance([]float64{10, 20})
	assert.Contains(t, weak.Weaknesses, "Need more practice with core concepts")

	improving := AnalyzeQuizPerformance([]float64{40, 50, 80, 90, 100})
	assert.Contains(t, improving.Strengths, "Showing improvement over time")
	assert.Equal(t, 72.0, *improving.AverageScore)

	// exactly three: earlier == recent, so no improvement note
	three := AnalyzeQuizPerformance([]float64{10, 50, 100})
	assert.NotContains(t, three.Strengths, "Showing improvement over time")
}

func TestLearningInsights(t *testing.T) {
	got := LearningInsights(10, 1, []float64{90})
	assert.Equal(t, []string{
		"🌟 Excellent performance! You're mastering the concepts.",
		"📚 You've completed 1 lessons so far!",
		"🎯 Consider focusing on one course at a time for better results.",
	}, got)

	got = LearningInsights(5, 4, nil)
	assert.Equal(t, []string{
		"📚 You've completed 4 lessons so far!",
		"⭐ Outstanding commitment! You're making great progress.",
	}, got)

	got = LearningInsights(10, 5, []float64{75})
	assert.Len(t, got, 2)
}

func TestScoreCourses(t *testing.T) {
	python := &models.Course{ID: uuid.New(), Category: "Programming", DifficultyLevel: "beginner", EnrollmentCount: 25}
	webdev := &models.Course{ID: uuid.New(), Category: "Web Development", DifficultyLevel: "intermediate"}
	science := &models.Course{ID: uuid.New(), Category: "Data Science", DifficultyLevel: "advanced", EnrollmentCount: 5}
	design := &models.Course{ID: uuid.New(), Category: "Design", DifficultyLevel: "advanced"}

	courses := []*models.Course{python, webdev, science, design}

	t.Run("scores and order", func(t *testing.T) {
		recs := ScoreCourses([]string{"programming", "science"}, "beginner", courses, nil)
		require.Len(t, recs, 3)
		assert.Equal(t, python.ID, recs[0].Course.ID) // 3 + 2 + 1
		assert.Equal(t, 6.0, recs[0].Score)
		assert.Equal(t, science.ID, recs[1].Course.ID) // 3 + 0.5
		assert.Equal(t, 3.5, recs[1].Score)
		assert.Equal(t, webdev.ID, recs[2].Course.ID) // 1
		assert.Equal(t, "Matches your programming, science interests", recs[0].Reason)
	})

	t.Run("completed courses excluded", func(t *testing.T) {
		recs := ScoreCourses([]string{"programming"}, "beginner", courses, []uuid.UUID{python.ID})
		for _, r := range recs {
			assert.NotEqual(t, python.ID, r.Course.ID)
		}
	})

	t.Run("ties keep input order", func(t *testing.T) {
		a := &models.Course{ID: uuid.New(), Category: "Art", DifficultyLevel: "advanced"}
		b := &models.Course{ID: uuid.New(), Category: "Art", DifficultyLevel: "advanced"}
		recs := ScoreCourses(nil, "advanced", []*models.Course{a, b}, nil)
		require.Len(t, recs, 2)
		assert.Equal(t, a.ID, recs[0].Course.ID)
		assert.Equal(t, "Recommended based on your skill level", recs[0].Reason)
	})

	t.Run("top five", func(t *testing.T) {
		var many []*models.Course
		for i := 0; i < 8; i++ {
			many = append(many, &models.Course{ID: uuid.New(), Category: "Programming", DifficultyLevel: "beginner"})
		}
		assert.Len(t, ScoreCourses([]string{"programming"}, "beginner", many, nil), 5)
	})
}

func TestContentTemplate(t *testing.T) {
	out := ContentTemplate("Goroutines", "advanced")
	assert.Contains(t, out, "# Mastering Goroutines")
	assert.NotContains(t, out, "{topic}")

	assert.Contains(t, ContentTemplate("Maps", "unknown"), "# Introduction to Maps")
}
