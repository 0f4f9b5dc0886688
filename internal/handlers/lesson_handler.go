// internal/handlers/lesson_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_5_course_keep/internal/middleware"
	"go_5_course_keep/internal/model"
	"go_5_course_keep/internal/service"
	"go_5_course_keep/internal/webutil"
)

type LessonHandler struct {
	service service.LessonService
}

func NewLessonHandler(s service.LessonService) *LessonHandler {
	return &LessonHandler{service: s}
}

func (h *LessonHandler) ListLessons(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "ListLessons"))

	lessons, err := h.service.ListLessons(r.Context(), model.LessonFilter{ModuleID: queryID(r, "moduleId", logger)})
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if lessons == nil {
		lessons = []*model.Lesson{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, lessons, logger)
}

func (h *LessonHandler) GetLesson(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "GetLesson"))

	lessonID, err := pathID(r, "lessonId")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	lesson, err := h.service.GetLesson(r.Context(), lessonID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, lesson, logger)
}

func (h *LessonHandler) CreateLesson(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "CreateLesson"))

	var req model.CreateLessonRequest
	if err := decodeAndValidate(r, logger, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	lesson, err := h.service.CreateLesson(r.Context(), &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusCreated, lesson, logger)
}

func (h *LessonHandler) UpdateLesson(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "UpdateLesson"))

	lessonID, err := pathID(r, "lessonId")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.UpdateLessonRequest
	if err := decodeAndValidate(r, logger, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	lesson, err := h.service.UpdateLesson(r.Context(), lessonID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, lesson, logger)
}

func (h *LessonHandler) DeleteLesson(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "DeleteLesson"))

	lessonID, err := pathID(r, "lessonId")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if err := h.service.DeleteLesson(r.Context(), lessonID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondNoContent(w)
}
