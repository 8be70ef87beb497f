package handlers

import (
	"net/http"
	"strconv"

	"gradrecruit/internal/app"
	"gradrecruit/internal/common"
	"gradrecruit/internal/domain/user"
	"gradrecruit/internal/http/middleware"
	"gradrecruit/internal/http/response"
)

type NotificationHandler struct {
	notifications *app.NotificationService
}

func NewNotificationHandler(notifications *app.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

// List returns the caller's notifications; an admin may pass user_id to read
// another recipient's feed, or nothing for the recent systemwide feed.
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	role, _ := middleware.RoleFromContext(r.Context())
	if role == user.RoleAdmin {
		if value := r.URL.Query().Get("user_id"); value != "" {
			requested, err := common.ParseID(value)
			if err != nil {
				response.Error(w, err)
				return
			}
			items, err := h.notifications.ListForUser(r.Context(), requested)
			if err != nil {
				response.Error(w, err)
				return
			}
			response.JSON(w, http.StatusOK, items)
			return
		}
		limit := 50
		if value := r.URL.Query().Get("limit"); value != "" {
			if parsed, err := strconv.Atoi(value); err == nil {
				limit = parsed
			}
		}
		items, err := h.notifications.ListRecent(r.Context(), limit)
		if err != nil {
			response.Error(w, err)
			return
		}
		response.JSON(w, http.StatusOK, items)
		return
	}
	items, err := h.notifications.ListForUser(r.Context(), userID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}

func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	role, _ := middleware.RoleFromContext(r.Context())
	notificationID, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	if err := h.notifications.MarkRead(r.Context(), notificationID, userID, role); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]bool{"ok": true})
}
