package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nextshift/shiftboard/pkg/core/catalog"
)

// ListShiftTemplates returns every shift template, retired ones included.
// GET /api/shifts
func (h *Handler) ListShiftTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := catalog.ListAll(r.Context(), h.Store)
	if err != nil {
		h.writeError(w, 0, "Failed to list shift templates", err)
		return
	}

	dtos := make([]ShiftTemplateDTO, len(templates))
	for i, t := range templates {
		dtos[i] = toTemplateDTO(t)
	}

	writeJSON(w, http.StatusOK, dtos)
}

// ListActiveShiftTemplates returns the templates available for assignment.
// GET /api/shifts/active
func (h *Handler) ListActiveShiftTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := catalog.ListActive(r.Context(), h.Store)
	if err != nil {
		h.writeError(w, 0, "Failed to list active shift templates", err)
		return
	}

	dtos := make([]ShiftTemplateDTO, len(templates))
	for i, t := range templates {
		dtos[i] = toTemplateDTO(t)
	}

	writeJSON(w, http.StatusOK, dtos)
}

// CreateShiftTemplate creates a new shift template.
// POST /api/shifts
func (h *Handler) CreateShiftTemplate(w http.ResponseWriter, r *http.Request) {
	var req ShiftTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	template, err := catalog.Create(r.Context(), h.Store, h.Logger, catalog.CreateInput{
		Name:      req.Name,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		BgColor:   req.BgColor,
		TextColor: req.TextColor,
	})
	if err != nil {
		h.writeError(w, 0, "Failed to create shift template", err)
		return
	}

	writeJSON(w, http.StatusCreated, toTemplateDTO(*template))
}

// UpdateShiftTemplate replaces a template's editable fields.
// PUT /api/shifts/{id}
func (h *Handler) UpdateShiftTemplate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req ShiftTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	err := catalog.Update(r.Context(), h.Store, h.Logger, id, catalog.CreateInput{
		Name:      req.Name,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		BgColor:   req.BgColor,
		TextColor: req.TextColor,
	})
	if err != nil {
		h.writeError(w, 0, "Failed to update shift template", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ToggleShiftTemplate flips a template between active and retired.
// POST /api/shifts/{id}/toggle
func (h *Handler) ToggleShiftTemplate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := catalog.ToggleActive(r.Context(), h.Store, h.Logger, id); err != nil {
		h.writeError(w, 0, "Failed to toggle shift template", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
