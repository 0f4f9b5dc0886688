// internal/handlers/completion_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_5_course_keep/internal/middleware"
	"go_5_course_keep/internal/model"
	"go_5_course_keep/internal/service"
	"go_5_course_keep/internal/webutil"
)

type CompletionHandler struct {
	service service.CompletionService
}

func NewCompletionHandler(s service.CompletionService) *CompletionHandler {
	return &CompletionHandler{service: s}
}

// ListCompletions は userId, lessonId で絞り込み、完了日時の新しい順に返します。
func (h *CompletionHandler) ListCompletions(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "ListCompletions"))

	filter := model.CompletionFilter{
		UserID:   queryID(r, "userId", logger),
		LessonID: queryID(r, "lessonId", logger),
	}

	completions, err := h.service.ListCompletions(r.Context(), filter)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if completions == nil {
		completions = []*model.Completion{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, completions, logger)
}

func (h *CompletionHandler) GetCompletion(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "GetCompletion"))

	completionID, err := pathID(r, "completionId")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	completion, err := h.service.GetCompletion(r.Context(), completionID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, completion, logger)
}

func (h *CompletionHandler) RecordCompletion(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "RecordCompletion"))

	var req model.CreateCompletionRequest
	if err := decodeAndValidate(r, logger, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	completion, err := h.service.RecordCompletion(r.Context(), &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger.Info("Completion recorded", slog.Uint64("completion_id", uint64(completion.ID)))
	webutil.RespondWithJSON(w, http.StatusCreated, completion, logger)
}

func (h *CompletionHandler) UpdateCompletion(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "UpdateCompletion"))

	completionID, err := pathID(r, "completionId")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.UpdateCompletionRequest
	if err := decodeAndValidate(r, logger, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	completion, err := h.service.UpdateCompletion(r.Context(), completionID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, completion, logger)
}

func (h *CompletionHandler) DeleteCompletion(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "DeleteCompletion"))

	completionID, err := pathID(r, "completionId")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if err := h.service.DeleteCompletion(r.Context(), completionID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondNoContent(w)
}

// GetUserProgress はユーザーの学習進捗の集計を返します。
func (h *CompletionHandler) GetUserProgress(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "GetUserProgress"))

	userID, err := pathID(r, "userId")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	progress, err := h.service.ComputeUserProgress(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, progress, logger)
}
