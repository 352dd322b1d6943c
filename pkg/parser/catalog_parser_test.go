package parser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c, err := NewCatalogParser("").Load()
	require.NoError(t, err)

	require.Len(t, c.Users, 2)
	assert.Equal(t, "admin", c.Users[0].Username)
	assert.Equal(t, "admin", c.Users[0].Role)
	assert.Equal(t, []string{"programming", "web development", "python"}, c.Users[1].Interests)

	require.Len(t, c.Courses, 5)
	python := c.Courses[0]
	assert.Equal(t, "Python Programming Fundamentals", python.Title)
	assert.Len(t, python.Lessons, 3)
	require.Len(t, python.Quizzes, 1)

	quiz := python.Quizzes[0]
	require.NotNil(t, quiz.PassingScore)
	assert.Equal(t, 70, *quiz.PassingScore)
	require.Len(t, quiz.Questions, 3)
	assert.Equal(t, 1, quiz.Questions[0].CorrectAnswer)
	assert.Equal(t, 3, quiz.Questions[1].CorrectAnswer)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	body := "courses:\n  - title: Go Basics\n    category: programming\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	p := NewCatalogParser(path)
	c, err := p.Load()
	require.NoError(t, err)
	assert.Equal(t, path, p.Source())
	require.Len(t, c.Courses, 1)
	assert.Empty(t, c.Users)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := NewCatalogParser(filepath.Join(t.TempDir(), "nope.yaml")).Load()
	assert.Error(t, err)
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"unknown key", "courses:\n  - title: A\n    category: b\n    colour: red\n", "invalid seed catalog"},
		{"bad answer index", `courses:
  - title: A
    category: b
    quizzes:
      - title: Q
        questions:
          - question_text: x
            options: [a, b]
            correct_answer: 2
`, "out of range"},
		{"duplicate user", "users:\n  - {username: a, email: a@x.io, password: p}\n  - {username: a, email: b@x.io, password: p}\n", "duplicate username"},
		{"lesson without content", "courses:\n  - title: A\n    category: b\n    lessons:\n      - title: L\n", "title and content"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParseEmpty(t *testing.T) {
	c, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, c.Courses)
}
