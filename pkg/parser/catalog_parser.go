package parser

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default_catalog.yaml
var defaultCatalog []byte

// Catalog is the seed data file: accounts plus courses with their content
type Catalog struct {
	Users   []SeedUser   `yaml:"users"`
	Courses []SeedCourse `yaml:"courses"`
}

type SeedUser struct {
	Username   string   `yaml:"username"`
	Email      string   `yaml:"email"`
	Password   string   `yaml:"password"`
	Role       string   `yaml:"role"`
	SkillLevel string   `yaml:"skill_level"`
	Interests  []string `yaml:"interests"`
}

type SeedCourse struct {
	Title           string       `yaml:"title"`
	Description     string       `yaml:"description"`
	Category        string       `yaml:"category"`
	DifficultyLevel string       `yaml:"difficulty_level"`
	DurationHours   float64      `yaml:"duration_hours"`
	Instructor      string       `yaml:"instructor"`
	Lessons         []SeedLesson `yaml:"lessons"`
	Quizzes         []SeedQuiz   `yaml:"quizzes"`
}

type SeedLesson struct {
	Title           string `yaml:"title"`
	Content         string `yaml:"content"`
	OrderIndex      int    `yaml:"order_index"`
	DurationMinutes int    `yaml:"duration_minutes"`
}

type SeedQuiz struct {
	Title            string         `yaml:"title"`
	Description      string         `yaml:"description"`
	PassingScore     *int           `yaml:"passing_score"`
	TimeLimitMinutes *int           `yaml:"time_limit_minutes"`
	Questions        []SeedQuestion `yaml:"questions"`
}

type SeedQuestion struct {
	QuestionText  string   `yaml:"question_text"`
	Options       []string `yaml:"options"`
	CorrectAnswer int      `yaml:"correct_answer"`
	Explanation   string   `yaml:"explanation"`
	Points        *int     `yaml:"points"`
}

// CatalogParser reads a seed catalog from disk, or the built in one when Path is empty
type CatalogParser struct {
	Path string
}

func NewCatalogParser(path string) *CatalogParser {
	return &CatalogParser{Path: path}
}

// Source names where the catalog comes from, for logging
func (p *CatalogParser) Source() string {
	if p.Path == "" {
		return "built-in catalog"
	}
	return p.Path
}

func (p *CatalogParser) Load() (*Catalog, error) {
	if p.Path == "" {
		return Parse(bytes.NewReader(defaultCatalog))
	}

	f, err := os.Open(p.Path)
	if err != nil {
		return nil, fmt.Errorf("cannot open seed catalog: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse decodes and validates a catalog. Unknown keys are an error so typos don't get silently dropped.
func Parse(r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var c Catalog
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return &c, nil
		}
		return nil, fmt.Errorf("invalid seed catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate catches mistakes that would otherwise fail halfway through seeding
func (c *Catalog) Validate() error {
	usernames := map[string]bool{}
	for i, u := range c.Users {
		if u.Username == "" || u.Email == "" || u.Password == "" {
			return fmt.Errorf("users[%d]: username, email and password are required", i)
		}
		if usernames[u.Username] {
			return fmt.Errorf("users[%d]: duplicate username %q", i, u.Username)
		}
		usernames[u.Username] = true
	}

	for i, course := range c.Courses {
		if course.Title == "" || course.Category == "" {
			return fmt.Errorf("courses[%d]: title and category are required", i)
		}
		for j, l := range course.Lessons {
			if l.Title == "" || l.Content == "" {
				return fmt.Errorf("courses[%d].lessons[%d]: title and content are required", i, j)
			}
		}
		for j, q := range course.Quizzes {
			if q.Title == "" {
				return fmt.Errorf("courses[%d].quizzes[%d]: title is required", i, j)
			}
			for k, qs := range q.Questions {
				if len(qs.Options) == 0 {
					return fmt.Errorf("courses[%d].quizzes[%d].questions[%d]: options are required", i, j, k)
				}
				if qs.CorrectAnswer < 0 || qs.CorrectAnswer >= len(qs.Options) {
					return fmt.Errorf("courses[%d].quizzes[%d].questions[%d]: correct_answer %d out of range", i, j, k, qs.CorrectAnswer)
				}
			}
		}
	}
	return nil
}
