package handlers

import (
	"net/http"
	"time"

	"gradrecruit/internal/app"
	"gradrecruit/internal/common"
	"gradrecruit/internal/domain/employment"
	"gradrecruit/internal/http/response"
)

type EmploymentHandler struct {
	reports *app.EmploymentService
}

func NewEmploymentHandler(reports *app.EmploymentService) *EmploymentHandler {
	return &EmploymentHandler{reports: reports}
}

type employmentRequest struct {
	StudentID   int64  `json:"student_id"`
	CompanyName string `json:"company_name"`
	Position    string `json:"position"`
	EmployedAt  string `json:"employment_date"`
	Salary      string `json:"salary"`
}

func (h *EmploymentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req employmentRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	if req.StudentID <= 0 {
		response.Error(w, common.NewValidationError("invalid request", map[string]string{"student_id": "student_id is required"}))
		return
	}
	employedAt, err := time.Parse("2006-01-02", req.EmployedAt)
	if err != nil {
		response.Error(w, common.NewValidationError("invalid request", map[string]string{"employment_date": "employment_date must be a YYYY-MM-DD date"}))
		return
	}
	created, err := h.reports.Create(r.Context(), employment.Report{
		StudentID:   req.StudentID,
		CompanyName: req.CompanyName,
		Position:    req.Position,
		EmployedAt:  employedAt,
		Salary:      req.Salary,
	})
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

func (h *EmploymentHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.reports.ListAll(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}
