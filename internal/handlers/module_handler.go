// internal/handlers/module_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_5_course_keep/internal/middleware"
	"go_5_course_keep/internal/model"
	"go_5_course_keep/internal/service"
	"go_5_course_keep/internal/webutil"
)

type ModuleHandler struct {
	service service.ModuleService
}

func NewModuleHandler(s service.ModuleService) *ModuleHandler {
	return &ModuleHandler{service: s}
}

// ListModules は courseId, moduleId (親), root=true で絞り込めます。
func (h *ModuleHandler) ListModules(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "ListModules"))

	filter := model.ModuleFilter{
		CourseID:       queryID(r, "courseId", logger),
		ParentModuleID: queryID(r, "moduleId", logger),
		RootOnly:       r.URL.Query().Get("root") == "true",
	}

	modules, err := h.service.ListModules(r.Context(), filter)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if modules == nil {
		modules = []*model.Module{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, modules, logger)
}

func (h *ModuleHandler) GetModule(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "GetModule"))

	moduleID, err := pathID(r, "moduleId")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	module, err := h.service.GetModule(r.Context(), moduleID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, module, logger)
}

func (h *ModuleHandler) CreateModule(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "CreateModule"))

	var req model.CreateModuleRequest
	if err := decodeAndValidate(r, logger, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	module, err := h.service.CreateModule(r.Context(), &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusCreated, module, logger)
}

func (h *ModuleHandler) UpdateModule(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "UpdateModule"))

	moduleID, err := pathID(r, "moduleId")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.UpdateModuleRequest
	if err := decodeAndValidate(r, logger, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	module, err := h.service.UpdateModule(r.Context(), moduleID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, module, logger)
}

func (h *ModuleHandler) DeleteModule(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "DeleteModule"))

	moduleID, err := pathID(r, "moduleId")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if err := h.service.DeleteModule(r.Context(), moduleID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondNoContent(w)
}
