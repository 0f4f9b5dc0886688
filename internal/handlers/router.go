package handlers

import (
	"time"

	"go_5_course_keep/internal/config"
	"go_5_course_keep/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// Handlers はルーティング対象のハンドラー一式です。
type Handlers struct {
	Course     *CourseHandler
	Module     *ModuleHandler
	Lesson     *LessonHandler
	Completion *CompletionHandler
	Auth       *AuthHandler
	Health     *HealthHandler
}

// RegisterRoutes は /health と /api/v1 配下のルートを登録します。
// 更新系は auth.enabled が true の場合のみJWT認証が必要です。
func RegisterRoutes(r chi.Router, h *Handlers, cfg *config.Config) {
	r.Get("/health", h.Health.Check)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(chimiddleware.Timeout(60 * time.Second))

		r.Route("/users", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/login", h.Auth.Login)
			r.With(middleware.JWTAuthMiddleware(cfg)).Get("/me", h.Auth.GetMe)
		})

		r.Route("/courses", func(r chi.Router) {
			r.Get("/", h.Course.ListCourses)
			r.Get("/{courseId}", h.Course.GetCourse)
			r.Group(func(r chi.Router) {
				r.Use(middleware.AuthIfEnabled(cfg))
				r.Post("/", h.Course.CreateCourse)
				r.Put("/{courseId}", h.Course.UpdateCourse)
				r.Delete("/{courseId}", h.Course.DeleteCourse)
			})
		})

		r.Route("/modules", func(r chi.Router) {
			r.Get("/", h.Module.ListModules)
			r.Get("/{moduleId}", h.Module.GetModule)
			r.Group(func(r chi.Router) {
				r.Use(middleware.AuthIfEnabled(cfg))
				r.Post("/", h.Module.CreateModule)
				r.Put("/{moduleId}", h.Module.UpdateModule)
				r.Delete("/{moduleId}", h.Module.DeleteModule)
			})
		})

		r.Route("/lessons", func(r chi.Router) {
			r.Get("/", h.Lesson.ListLessons)
			r.Get("/{lessonId}", h.Lesson.GetLesson)
			r.Group(func(r chi.Router) {
				r.Use(middleware.AuthIfEnabled(cfg))
				r.Post("/", h.Lesson.CreateLesson)
				r.Put("/{lessonId}", h.Lesson.UpdateLesson)
				r.Delete("/{lessonId}", h.Lesson.DeleteLesson)
			})
		})

		r.Route("/completions", func(r chi.Router) {
			r.Get("/", h.Completion.ListCompletions)
			r.Get("/{completionId}", h.Completion.GetCompletion)
			r.Get("/user/{userId}/progress", h.Completion.GetUserProgress)
			r.Group(func(r chi.Router) {
				r.Use(middleware.AuthIfEnabled(cfg))
				r.Post("/", h.Completion.RecordCompletion)
				r.Put("/{completionId}", h.Completion.UpdateCompletion)
				r.Delete("/{completionId}", h.Completion.DeleteCompletion)
			})
		})
	})
}
