package handlers

import (
	"net/http"
	"strconv"

	"gradrecruit/internal/app"
	"gradrecruit/internal/domain/student"
	"gradrecruit/internal/http/middleware"
	"gradrecruit/internal/http/response"
)

type StudentHandler struct {
	students *app.StudentService
}

func NewStudentHandler(students *app.StudentService) *StudentHandler {
	return &StudentHandler{students: students}
}

type studentProfileRequest struct {
	FullName       string   `json:"full_name"`
	Course         int      `json:"course"`
	Specialization string   `json:"specialization"`
	Skills         []string `json:"skills"`
	WorkExperience string   `json:"work_experience"`
	PortfolioLink  string   `json:"portfolio_link"`
	ContactNumber  string   `json:"contact_number"`
	Email          string   `json:"email"`
	GPA            *float64 `json:"gpa"`
	University     string   `json:"university"`
	GraduationYear *int     `json:"graduation_year"`
}

func (h *StudentHandler) UpsertProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	var req studentProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	saved, err := h.students.UpsertProfile(r.Context(), userID, student.Student{
		FullName:       req.FullName,
		Course:         req.Course,
		Specialization: req.Specialization,
		Skills:         req.Skills,
		WorkExperience: req.WorkExperience,
		PortfolioLink:  req.PortfolioLink,
		ContactNumber:  req.ContactNumber,
		Email:          req.Email,
		GPA:            req.GPA,
		University:     req.University,
		GraduationYear: req.GraduationYear,
	})
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, saved)
}

func (h *StudentHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	profile, err := h.students.GetProfile(r.Context(), userID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, profile)
}

// List applies the name/course/specialization filters in memory, over the
// full most-recent-first listing.
func (h *StudentHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := app.StudentFilter{
		Name:           r.URL.Query().Get("name"),
		Specialization: r.URL.Query().Get("specialization"),
	}
	if value := r.URL.Query().Get("course"); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			filter.Course = parsed
		}
	}
	items, err := h.students.List(r.Context(), filter)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}

func (h *StudentHandler) Get(w http.ResponseWriter, r *http.Request) {
	studentID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	item, err := h.students.Get(r.Context(), studentID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, item)
}

func (h *StudentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	studentID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	if err := h.students.Delete(r.Context(), studentID); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]bool{"ok": true})
}
