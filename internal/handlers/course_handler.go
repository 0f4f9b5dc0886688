// internal/handlers/course_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_5_course_keep/internal/middleware"
	"go_5_course_keep/internal/model"
	"go_5_course_keep/internal/service"
	"go_5_course_keep/internal/webutil"
)

type CourseHandler struct {
	service service.CourseService
}

func NewCourseHandler(s service.CourseService) *CourseHandler {
	return &CourseHandler{service: s}
}

func (h *CourseHandler) ListCourses(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "ListCourses"))

	courses, err := h.service.ListCourses(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if courses == nil {
		courses = []*model.Course{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, courses, logger)
}

func (h *CourseHandler) GetCourse(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "GetCourse"))

	courseID, err := pathID(r, "courseId")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	course, err := h.service.GetCourse(r.Context(), courseID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, course, logger)
}

func (h *CourseHandler) CreateCourse(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "CreateCourse"))

	var req model.CreateCourseRequest
	if err := decodeAndValidate(r, logger, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	course, err := h.service.CreateCourse(r.Context(), &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusCreated, course, logger)
}

func (h *CourseHandler) UpdateCourse(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "UpdateCourse"))

	courseID, err := pathID(r, "courseId")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.UpdateCourseRequest
	if err := decodeAndValidate(r, logger, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	course, err := h.service.UpdateCourse(r.Context(), courseID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, course, logger)
}

func (h *CourseHandler) DeleteCourse(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "DeleteCourse"))

	courseID, err := pathID(r, "courseId")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if err := h.service.DeleteCourse(r.Context(), courseID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondNoContent(w)
}
