package handlers

import (
	"net/http"
	"strconv"
	"time"

	"gradrecruit/internal/app"
	"gradrecruit/internal/common"
	"gradrecruit/internal/domain/application"
	"gradrecruit/internal/domain/user"
	"gradrecruit/internal/http/middleware"
	"gradrecruit/internal/http/response"
)

type ApplicationHandler struct {
	applications *app.ApplicationService
	limiter      middleware.Limiter
}

func NewApplicationHandler(applications *app.ApplicationService, limiter middleware.Limiter) *ApplicationHandler {
	return &ApplicationHandler{applications: applications, limiter: limiter}
}

type applyRequest struct {
	VacancyID   int64  `json:"vacancy_id"`
	CoverLetter string `json:"cover_letter"`
}

type statusRequest struct {
	Status string `json:"status"`
}

func (h *ApplicationHandler) Apply(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	var req applyRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	if req.VacancyID <= 0 {
		response.Error(w, common.NewValidationError("invalid request", map[string]string{"vacancy_id": "vacancy_id is required"}))
		return
	}
	if h.limiter != nil {
		key := "apply:" + common.FormatID(req.VacancyID) + ":" + common.FormatID(userID)
		if !h.limiter.Allow(key, 3, time.Minute) {
			response.Error(w, common.NewError(common.CodeRateLimited, "apply rate limit exceeded", nil))
			return
		}
	}
	created, err := h.applications.Apply(r.Context(), userID, req.VacancyID, req.CoverLetter)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

// List dispatches on the caller's role: students see their own joined
// listing, admins the full audit listing with orphans kept.
func (h *ApplicationHandler) List(w http.ResponseWriter, r *http.Request) {
	role, ok := middleware.RoleFromContext(r.Context())
	if !ok || role == "" {
		response.Error(w, common.NewError(common.CodeForbidden, "role not found", nil))
		return
	}
	switch role {
	case user.RoleStudent:
		h.listStudent(w, r)
	case user.RoleAdmin:
		h.listAll(w, r)
	default:
		response.Error(w, common.NewError(common.CodeForbidden, "insufficient role", nil))
	}
}

func (h *ApplicationHandler) listStudent(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	items, err := h.applications.ListForStudent(r.Context(), userID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}

func (h *ApplicationHandler) listAll(w http.ResponseWriter, r *http.Request) {
	items, err := h.applications.ListAll(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}

func (h *ApplicationHandler) ListRecent(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if value := r.URL.Query().Get("limit"); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			limit = parsed
		}
	}
	items, err := h.applications.ListRecent(r.Context(), limit)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}

func (h *ApplicationHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	applicationID, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req statusRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	if req.Status == "" {
		response.Error(w, common.NewError(common.CodeValidation, "status is required", nil))
		return
	}
	updated, err := h.applications.UpdateStatus(r.Context(), applicationID, application.Status(req.Status))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}
