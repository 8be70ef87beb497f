package handlers

import (
	"net/http"
	"time"

	"gradrecruit/internal/app"
	"gradrecruit/internal/common"
	"gradrecruit/internal/domain/vacancy"
	"gradrecruit/internal/http/response"
)

type VacancyHandler struct {
	vacancies *app.VacancyService
}

func NewVacancyHandler(vacancies *app.VacancyService) *VacancyHandler {
	return &VacancyHandler{vacancies: vacancies}
}

type vacancyRequest struct {
	CompanyName    string `json:"company_name"`
	Position       string `json:"position"`
	Specialization string `json:"specialization"`
	RequiredCourse int    `json:"required_course"`
	SalaryRange    string `json:"salary_range"`
	Description    string `json:"description"`
	Requirements   string `json:"requirements"`
	ContactEmail   string `json:"contact_email"`
	Deadline       string `json:"application_deadline"`
}

type vacancyStatusRequest struct {
	Active *bool `json:"is_active"`
}

func (req *vacancyRequest) toDomain() (vacancy.Vacancy, error) {
	v := vacancy.Vacancy{
		CompanyName:    req.CompanyName,
		Position:       req.Position,
		Specialization: req.Specialization,
		RequiredCourse: req.RequiredCourse,
		SalaryRange:    req.SalaryRange,
		Description:    req.Description,
		Requirements:   req.Requirements,
		ContactEmail:   req.ContactEmail,
	}
	if req.Deadline != "" {
		parsed, err := time.Parse("2006-01-02", req.Deadline)
		if err != nil {
			return v, common.NewValidationError("invalid vacancy", map[string]string{"application_deadline": "deadline must be a YYYY-MM-DD date"})
		}
		v.Deadline = &parsed
	}
	return v, nil
}

func (h *VacancyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req vacancyRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	v, err := req.toDomain()
	if err != nil {
		response.Error(w, err)
		return
	}
	created, err := h.vacancies.Create(r.Context(), v)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

func (h *VacancyHandler) Update(w http.ResponseWriter, r *http.Request) {
	vacancyID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req vacancyRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	v, err := req.toDomain()
	if err != nil {
		response.Error(w, err)
		return
	}
	v.ID = vacancyID
	updated, err := h.vacancies.Update(r.Context(), v)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

// UpdateStatus flips the active flag: the soft delete and its reversal.
func (h *VacancyHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	vacancyID, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req vacancyStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	if req.Active == nil {
		response.Error(w, common.NewValidationError("invalid request", map[string]string{"is_active": "is_active is required"}))
		return
	}
	if err := h.vacancies.SetActive(r.Context(), vacancyID, *req.Active); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *VacancyHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	items, err := h.vacancies.ListActive(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}

func (h *VacancyHandler) Get(w http.ResponseWriter, r *http.Request) {
	vacancyID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	item, err := h.vacancies.Get(r.Context(), vacancyID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, item)
}
