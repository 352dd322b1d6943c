package insights

import "fmt"

const (
	StyleBalanced   = "balanced"
	StyleQuick      = "quick_learner"
	StyleThorough   = "thorough_learner"
	StyleDeveloping = "developing_learner"
)

type LearningStyle struct {
	Style                string   `json:"style"`
	AverageScore         *float64 `json:"average_score,omitempty"`
	AverageTimePerLesson *float64 `json:"average_time_per_lesson,omitempty"`
	Insights             []string `json:"insights"`
}

var styleInsights = map[string][]string{
	StyleQuick: {
		"You have excellent comprehension skills!",
		"Consider challenging yourself with advanced courses.",
		"You absorb information quickly and effectively.",
	},
	StyleThorough: {
		"You take your time to fully understand concepts.",
		"You have strong attention to detail.",
		"Keep up the methodical approach!",
	},
	StyleDeveloping: {
		"Consider reviewing previous lessons to strengthen your foundation.",
		"Take your time with each concept.",
		"Practice regularly to improve your performance.",
	},
}

// ClassifyLearningStyle buckets a learner by mean quiz percentage and mean minutes per lesson
func ClassifyLearningStyle(quizScores []float64, lessonMinutes []int) LearningStyle {
	if len(quizScores) == 0 || len(lessonMinutes) == 0 {
		return LearningStyle{
			Style:    StyleBalanced,
			Insights: []string{"Not enough data for analysis"},
		}
	}

	avgScore := mean(quizScores)
	times := make([]float64, len(lessonMinutes))
	for i, m := range lessonMinutes {
		times[i] = float64(m)
	}
	avgTime := mean(times)

	style := StyleDeveloping
	if avgScore >= 80 {
		if avgTime < 30 {
			style = StyleQuick
		} else {
			style = StyleThorough
		}
	}

	score, minutes := round2(avgScore), round2(avgTime)
	return LearningStyle{
		Style:                style,
		AverageScore:         &score,
		AverageTimePerLesson: &minutes,
		Insights:             append([]string(nil), styleInsights[style]...),
	}
}

type PerformanceAnalysis struct {
	Strengths       []string `json:"strengths"`
	Weaknesses      []string `json:"weaknesses"`
	Recommendations []string `json:"recommendations"`
	AverageScore    *float64 `json:"average_score,omitempty"`
}

// AnalyzeQuizPerformance takes attempt percentages oldest first
func AnalyzeQuizPerformance(scores []float64) PerformanceAnalysis {
	out := PerformanceAnalysis{
		Strengths:       []string{},
		Weaknesses:      []string{},
		Recommendations: []string{},
	}
	if len(scores) == 0 {
		out.Recommendations = append(out.Recommendations, "Start taking quizzes to get performance insights")
		return out
	}

	avg := mean(scores)
	switch {
	case avg >= 80:
		out.Strengths = append(out.Strengths, "Strong grasp of concepts")
		out.Recommendations = append(out.Recommendations, "Consider moving to more advanced courses")
	case avg >= 70:
		out.Strengths = append(out.Strengths, "Good understanding, room for improvement")
		out.Recommendations = append(out.Recommendations, "Review challenging topics and retake quizzes")
	default:
		out.Weaknesses = append(out.Weaknesses, "Need more practice with core concepts")
		out.Recommendations = append(out.Recommendations, "Focus on understanding fundamentals before advancing")
	}

	// with exactly three attempts there is nothing earlier to compare against
	if len(scores) >= 3 {
		recent := mean(scores[len(scores)-3:])
		earlier := recent
		if len(scores) > 3 {
			earlier = mean(scores[:len(scores)-3])
		}
		if recent > earlier {
			out.Strengths = append(out.Strengths, "Showing improvement over time")
		}
	}

	rounded := round2(avg)
	out.AverageScore = &rounded
	return out
}

// LearningInsights builds the short encouragement list shown on the insights page.
// totalLessons counts lessons across the learner's enrolled courses.
func LearningInsights(totalLessons, completedLessons int, quizScores []float64) []string {
	insights := []string{}

	if len(quizScores) > 0 {
		avg := mean(quizScores)
		switch {
		case avg >= 80:
			insights = append(insights, "🌟 Excellent performance! You're mastering the concepts.")
		case avg >= 70:
			insights = append(insights, "👍 Good progress! Keep practicing to improve further.")
		default:
			insights = append(insights, "💪 Focus on reviewing the material and taking notes.")
		}
	}

	insights = append(insights, fmt.Sprintf("📚 You've completed %d lessons so far!", completedLessons))

	var rate float64
	if totalLessons > 0 {
		rate = float64(completedLessons) / float64(totalLessons) * 100
	}
	if rate < 30 {
		insights = append(insights, "🎯 Consider focusing on one course at a time for better results.")
	} else if rate >= 80 {
		insights = append(insights, "⭐ Outstanding commitment! You're making great progress.")
	}
	return insights
}
