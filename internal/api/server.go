package api

import (
	"net/http"

	"github.com/NeroQue/learnsmart-backend/internal/api/handlers"
	"github.com/NeroQue/learnsmart-backend/internal/config"
	"github.com/NeroQue/learnsmart-backend/internal/database"
	"github.com/NeroQue/learnsmart-backend/internal/services"
	"github.com/NeroQue/learnsmart-backend/pkg/logger"
	"github.com/NeroQue/learnsmart-backend/pkg/session"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server holds all the app components together
type Server struct {
	Router *chi.Mux
	Log    *logger.Logger

	// services the server needs directly, the rest live behind handlers
	Auth    *services.AuthService
	Courses *services.CourseService

	// handlers for different parts of the API
	AuthHandler    *handlers.AuthHandler
	CourseHandler  *handlers.CourseHandler
	LearnerHandler *handlers.LearnerHandler
	AdminHandler   *handlers.AdminHandler
	AIHandler      *handlers.AIHandler

	cfg *config.Config
}

// NewServer wires up all the dependencies and returns a ready-to-use server
func NewServer(cfg *config.Config, store database.Store, tokens *session.Manager, log *logger.Logger) *Server {
	// create service layer instances
	authSvc := services.NewAuthService(store, tokens, log)
	courseSvc := services.NewCourseService(store, log)
	learnerSvc := services.NewLearnerService(store, log)
	adminSvc := services.NewAdminService(store, log)
	aiSvc := services.NewAIService(store, log)

	// wire everything together
	s := &Server{
		Router:         chi.NewRouter(),
		Log:            log.With("component", "http"),
		Auth:           authSvc,
		Courses:        courseSvc,
		AuthHandler:    handlers.NewAuthHandler(authSvc),
		CourseHandler:  handlers.NewCourseHandler(courseSvc),
		LearnerHandler: handlers.NewLearnerHandler(learnerSvc),
		AdminHandler:   handlers.NewAdminHandler(adminSvc, courseSvc),
		AIHandler:      handlers.NewAIHandler(aiSvc),
		cfg:            cfg,
	}

	s.setupRoutes()
	return s
}

// setupRoutes maps all the endpoints to handler functions
func (s *Server) setupRoutes() {
	r := s.Router

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(metricsMiddleware)
	r.Use(corsHandler(s.cfg.CORSOrigins))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		handlers.SendErrorResponse(w, r, "Not found", http.StatusNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		handlers.SendErrorResponse(w, r, "Method not allowed", http.StatusMethodNotAllowed)
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.HealthHandler)

		r.Route("/auth", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(authLimiter(s.cfg.RateLimitAuth))
				r.Post("/register", s.AuthHandler.Register)
				r.Post("/login", s.AuthHandler.Login)
			})
			r.Group(func(r chi.Router) {
				r.Use(s.Authenticate)
				r.Get("/profile", s.AuthHandler.GetProfile)
				r.Put("/profile", s.AuthHandler.UpdateProfile)
			})
		})

		// public catalog
		r.Route("/courses", func(r chi.Router) {
			r.Get("/", s.CourseHandler.List)
			r.Get("/category/{category}", s.CourseHandler.ListByCategory)
			r.Get("/{courseID}", s.CourseHandler.Get)
		})

		r.Route("/learner", func(r chi.Router) {
			r.Use(s.Authenticate)
			r.Post("/enroll/{courseID}", s.LearnerHandler.Enroll)
			r.Get("/my-courses", s.LearnerHandler.MyCourses)
			r.Post("/lesson-progress", s.LearnerHandler.CompleteLesson)
			r.Get("/quiz/{quizID}", s.LearnerHandler.GetQuiz)
			r.Post("/quiz/{quizID}/submit", s.LearnerHandler.SubmitQuiz)
			r.Get("/recommendations", s.LearnerHandler.Recommendations)
			r.Get("/dashboard", s.LearnerHandler.Dashboard)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(s.Authenticate)
			r.Use(RequireAdmin)

			r.Get("/users", s.AdminHandler.ListUsers)
			r.Get("/analytics", s.AdminHandler.Analytics)

			r.Post("/courses", s.AdminHandler.CreateCourse)
			r.Put("/courses/{courseID}", s.AdminHandler.UpdateCourse)
			r.Delete("/courses/{courseID}", s.AdminHandler.DeleteCourse)

			r.Post("/courses/{courseID}/lessons", s.AdminHandler.CreateLesson)
			r.Put("/lessons/{lessonID}", s.AdminHandler.UpdateLesson)
			r.Delete("/lessons/{lessonID}", s.AdminHandler.DeleteLesson)

			r.Post("/courses/{courseID}/quizzes", s.AdminHandler.CreateQuiz)
			r.Put("/quizzes/{quizID}", s.AdminHandler.UpdateQuiz)
			r.Delete("/quizzes/{quizID}", s.AdminHandler.DeleteQuiz)

			r.Post("/quizzes/{quizID}/questions", s.AdminHandler.CreateQuestion)
			r.Put("/questions/{questionID}", s.AdminHandler.UpdateQuestion)
			r.Delete("/questions/{questionID}", s.AdminHandler.DeleteQuestion)
		})

		r.Route("/ai", func(r chi.Router) {
			r.Use(s.Authenticate)
			r.Get("/summarize-course/{courseID}", s.AIHandler.SummarizeCourse)
			r.Get("/analyze-learning-style", s.AIHandler.LearningStyle)
			r.Get("/personalized-path", s.AIHandler.PersonalizedPath)
			r.Get("/learning-insights", s.AIHandler.LearningInsights)

			r.With(RequireAdmin).Post("/generate-quiz", s.AIHandler.GenerateQuiz)
			r.With(RequireAdmin).Post("/generate-content", s.AIHandler.GenerateContent)
		})
	})
}

// ServeHTTP implements the http.Handler interface
// This allows the server to be used directly with http.Server
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}

// HealthHandler is a simple liveness check
// This is kept at the server level as it doesn't require business logic
func (s *Server) HealthHandler(w http.ResponseWriter, r *http.Request) {
	type responseData struct {
		Status  string `json:"status"`
		Service string `json:"service"`
	}
	handlers.SendSuccessResponse(w, r, responseData{Status: "ok", Service: "learnsmart"})
}
