package api

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/NeroQue/learnsmart-backend/internal/config"
	"github.com/NeroQue/learnsmart-backend/internal/database"
	"github.com/NeroQue/learnsmart-backend/pkg/logger"
	"github.com/NeroQue/learnsmart-backend/pkg/session"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, opts ...func(*config.Config)) *Server {
	t.Helper()

	cfg := &config.Config{
		Port:          "0",
		DBDriver:      config.DriverMemory,
		JWTSecret:     "test-secret",
		TokenTTL:      time.Hour,
		CORSOrigins:   []string{"http://localhost:3000"},
		RateLimitAuth: 100,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	tokens, err := session.NewManager(cfg.JWTSecret, cfg.TokenTTL)
	require.NoError(t, err)

	return NewServer(cfg, database.NewMemoryStore(), tokens, logger.NewNop())
}

func do(t *testing.T, s *Server, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

// register returns an access token for a new account
func register(t *testing.T, s *Server, username, role string) string {
	t.Helper()
	body := map[string]interface{}{
		"username": username,
		"email":    username + "@example.com",
		"password": "password123",
	}
	if role != "" {
		body["role"] = role
	}
	rec := do(t, s, http.MethodPost, "/api/auth/register", "", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	token, _ := decode(t, rec)["access_token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decode(t, rec)["status"])
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestRegisterAndLogin(t *testing.T) {
	s := newTestServer(t)
	register(t, s, "alice", "")

	t.Run("duplicate username", func(t *testing.T) {
		rec := do(t, s, http.MethodPost, "/api/auth/register", "", map[string]string{
			"username": "alice", "email": "other@example.com", "password": "password123",
		})
		assert.Equal(t, http.StatusConflict, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, false, body["success"])
		assert.NotEmpty(t, body["error"])
	})

	t.Run("login", func(t *testing.T) {
		rec := do(t, s, http.MethodPost, "/api/auth/login", "", map[string]string{
			"username": "alice", "password": "password123",
		})
		require.Equal(t, http.StatusOK, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, "Login successful", body["message"])
		assert.NotEmpty(t, body["access_token"])
	})

	t.Run("wrong password", func(t *testing.T) {
		rec := do(t, s, http.MethodPost, "/api/auth/login", "", map[string]string{
			"username": "alice", "password": "nope-nope",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Invalid credentials", decode(t, rec)["error"])
	})
}

func TestRequestBodyValidation(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name string
		body interface{}
	}{
		{"unknown field", map[string]string{"username": "bob", "password": "x", "admin": "yes"}},
		{"malformed json", `{"username": `},
		{"empty body", ""},
		{"missing password", map[string]string{"username": "bob"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, s, http.MethodPost, "/api/auth/login", "", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			body := decode(t, rec)
			assert.Equal(t, false, body["success"])
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestAuthGate(t *testing.T) {
	s := newTestServer(t)
	learner := register(t, s, "learner1", "")

	rec := do(t, s, http.MethodGet, "/api/auth/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(t, s, http.MethodGet, "/api/auth/profile", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(t, s, http.MethodGet, "/api/auth/profile", learner, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "learner1", decode(t, rec)["username"])

	// learners can't reach the admin group or admin-only ai routes
	rec = do(t, s, http.MethodGet, "/api/admin/users", learner, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Admin access required", decode(t, rec)["error"])

	rec = do(t, s, http.MethodPost, "/api/ai/generate-content", learner, map[string]string{"topic": "Go"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestLearnerFlow(t *testing.T) {
	s := newTestServer(t)
	admin := register(t, s, "admin1", "admin")
	learner := register(t, s, "learner1", "")

	rec := do(t, s, http.MethodPost, "/api/admin/courses", admin, map[string]interface{}{
		"title": "Go Basics", "category": "Programming", "description": "Learn Go from scratch.",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	courseID := decode(t, rec)["course"].(map[string]interface{})["id"].(string)

	var lessonIDs []string
	for i, title := range []string{"Variables", "Functions"} {
		rec = do(t, s, http.MethodPost, "/api/admin/courses/"+courseID+"/lessons", admin, map[string]interface{}{
			"title": title, "content": "All about " + title + " in Go programs.", "order_index": i + 1,
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		lessonIDs = append(lessonIDs, decode(t, rec)["lesson"].(map[string]interface{})["id"].(string))
	}

	rec = do(t, s, http.MethodGet, "/api/courses/"+courseID, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode(t, rec)["lessons"], 2)

	rec = do(t, s, http.MethodPost, "/api/learner/enroll/"+courseID, learner, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = do(t, s, http.MethodPost, "/api/learner/enroll/"+courseID, learner, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, s, http.MethodPost, "/api/learner/lesson-progress", learner, map[string]interface{}{
		"lesson_id": lessonIDs[0], "time_spent_minutes": 12,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "Lesson marked as complete", decode(t, rec)["message"])

	rec = do(t, s, http.MethodGet, "/api/learner/my-courses", learner, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var mine []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &mine))
	require.Len(t, mine, 1)
	enrollment := mine[0]["enrollment"].(map[string]interface{})
	assert.InDelta(t, 50.0, enrollment["progress_percentage"], 0.001)

	rec = do(t, s, http.MethodGet, "/api/learner/dashboard", learner, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 1, decode(t, rec)["total_courses"])

	rec = do(t, s, http.MethodGet, "/api/ai/summarize-course/"+courseID, learner, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Go Basics", decode(t, rec)["course_title"])

	rec = do(t, s, http.MethodDelete, "/api/admin/courses/"+courseID, admin, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, s, http.MethodGet, "/api/courses/"+courseID, "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInvalidPathID(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodGet, "/api/courses/not-a-uuid", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid course ID", decode(t, rec)["error"])
}

func TestCourseListEmpty(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodGet, "/api/courses", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestUnknownRoute(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodGet, "/api/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, false, decode(t, rec)["success"])
}

func TestAuthRateLimit(t *testing.T) {
	s := newTestServer(t, func(c *config.Config) { c.RateLimitAuth = 2 })

	for i := 0; i < 2; i++ {
		rec := do(t, s, http.MethodPost, "/api/auth/login", "", map[string]string{"username": "x", "password": "y"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	}
	rec := do(t, s, http.MethodPost, "/api/auth/login", "", map[string]string{"username": "x", "password": "y"})
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, decode(t, rec)["error"])
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/courses", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t)
	do(t, s, http.MethodGet, "/api/health", "", nil)

	rec := do(t, s, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "learnsmart_api_requests_total")
}

