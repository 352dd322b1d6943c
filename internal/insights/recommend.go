package insights

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/NeroQue/learnsmart-backend/internal/models"
	"github.com/google/uuid"
)

const maxRecommendations = 5

// Recommendation is one entry of a personalized path
type Recommendation struct {
	Course *models.Course `json:"course"`
	Score  float64        `json:"score"`
	Reason string         `json:"reason"`
}

// ScoreCourse rates how well a course fits the learner:
// +3 per matching interest, +2 for an exact difficulty match (+1 for intermediate
// courses offered to beginners) and up to +1 for popularity.
func ScoreCourse(interests []string, skillLevel string, course *models.Course) float64 {
	var score float64

	category := strings.ToLower(course.Category)
	for _, interest := range interests {
		interest = strings.ToLower(interest)
		if strings.Contains(category, interest) || strings.Contains(interest, category) {
			score += 3
		}
	}

	difficulty := strings.ToLower(course.DifficultyLevel)
	skill := strings.ToLower(skillLevel)
	if difficulty == skill {
		score += 2
	} else if difficulty == models.SkillIntermediate && skill == models.SkillBeginner {
		score += 1
	}

	score += math.Min(float64(course.EnrollmentCount)/10, 1)
	return score
}

// ScoreCourses ranks the courses the learner hasn't completed and returns the top five.
// Ties keep the input order.
func ScoreCourses(interests []string, skillLevel string, courses []*models.Course, completed []uuid.UUID) []Recommendation {
	done := make(map[uuid.UUID]bool, len(completed))
	for _, id := range completed {
		done[id] = true
	}

	reason := "Recommended based on your skill level"
	if len(interests) > 0 {
		reason = fmt.Sprintf("Matches your %s interests", strings.Join(interests, ", "))
	}

	recs := []Recommendation{}
	for _, c := range courses {
		if done[c.ID] {
			continue
		}
		if score := ScoreCourse(interests, skillLevel, c); score > 0 {
			recs = append(recs, Recommendation{Course: c, Score: score, Reason: reason})
		}
	}

	sort.SliceStable(recs, func(i, j int) bool { return recs[i].Score > recs[j].Score })
	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}

var contentTemplates = map[string]string{
	models.SkillBeginner: `
# Introduction to {topic}

Welcome to learning {topic}! This is a fundamental concept that you'll use throughout your learning journey.

## What is {topic}?
{topic} is an essential concept that forms the foundation of this subject. Understanding {topic} will help you grasp more advanced topics later.

## Key Concepts
1. Understanding the basics of {topic}
2. Common use cases
3. Best practices

## Learning Objectives
By the end of this lesson, you will:
- Understand what {topic} is
- Know when and why to use {topic}
- Be able to apply {topic} in simple scenarios
`,
	models.SkillIntermediate: `
# Deep Dive into {topic}

This intermediate course will expand your understanding of {topic} and its applications.

## Advanced Concepts
Building on your basic knowledge, we'll explore:
- Advanced techniques for using {topic}
- Common pitfalls and how to avoid them
- Best practices and design patterns

## Real-World Applications
{topic} is used in many production systems. We'll examine real-world examples and case studies.

## Practice Exercises
Hands-on exercises will help you master {topic} through practical application.
`,
	models.SkillAdvanced: `
# Mastering {topic}

This advanced course is designed for experienced practitioners ready to push boundaries.

## Advanced Techniques
- Deep dive into {topic} internals
- Optimization strategies
- Advanced patterns and architectures

## Expert Insights
Learn from real-world case studies and expert best practices.

## Challenge Projects
Complex, real-world projects to demonstrate mastery of {topic}.
`,
}

// ContentTemplate returns a markdown lesson outline for topic, beginner on unknown difficulty
func ContentTemplate(topic, difficulty string) string {
	tmpl, ok := contentTemplates[difficulty]
	if !ok {
		tmpl = contentTemplates[models.SkillBeginner]
	}
	return strings.ReplaceAll(tmpl, "{topic}", topic)
}
