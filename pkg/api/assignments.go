package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/nextshift/shiftboard/pkg/core/engine"
	"github.com/nextshift/shiftboard/pkg/core/overtime"
	"github.com/nextshift/shiftboard/pkg/export"
)

// CreateAssignment places a shift on the board, replacing whatever held the
// employee's slot for that date.
// POST /api/assignments
func (h *Handler) CreateAssignment(w http.ResponseWriter, r *http.Request) {
	var req CreateAssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	assignment, err := engine.Assign(r.Context(), h.Store, h.Logger, engine.AssignInput{
		EmployeeID:     req.EmployeeID,
		ShiftID:        req.ShiftID,
		Date:           req.Date,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		Classification: req.ShiftType,
		CustomDetails:  req.CustomDetails,
		ApprovalStatus: req.ApprovalStatus,
	})
	if err != nil {
		h.writeError(w, 0, "Failed to assign shift", err)
		return
	}

	writeJSON(w, http.StatusCreated, toAssignmentDTO(*assignment))
}

// UpdateAssignment re-points an assignment at a different employee, template
// or date.
// PUT /api/assignments/{id}
func (h *Handler) UpdateAssignment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req UpdateAssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	err := engine.Update(r.Context(), h.Store, h.Logger, engine.UpdateInput{
		ID:            id,
		EmployeeID:    req.EmployeeID,
		ShiftID:       req.ShiftID,
		Date:          req.Date,
		CustomDetails: req.CustomDetails,
	})
	if err != nil {
		h.writeError(w, 0, "Failed to update assignment", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteAssignment removes an assignment from the board.
// DELETE /api/assignments/{id}
func (h *Handler) DeleteAssignment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	deleted, err := engine.Delete(r.Context(), h.Store, h.Logger, id)
	if err != nil {
		h.writeError(w, 0, "Failed to delete assignment", err)
		return
	}
	if !deleted {
		h.writeError(w, http.StatusNotFound, "Assignment not found", nil)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RecordActualTimes stores the worked times for an assignment and recomputes
// its overtime.
// POST /api/assignments/{id}/times
func (h *Handler) RecordActualTimes(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req RecordTimesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	err := overtime.RecordActualTimes(r.Context(), h.Store, h.Logger, id, req.ActualStartTime, req.ActualEndTime)
	if err != nil {
		h.writeError(w, 0, "Failed to record actual times", err)
		return
	}

	assignment, err := h.Store.GetAssignment(r.Context(), id)
	if err != nil {
		h.writeError(w, 0, "Failed to load assignment", err)
		return
	}

	writeJSON(w, http.StatusOK, toAssignmentDTO(*assignment))
}

// ApproveRequest approves a pending REST/OFF request.
// POST /api/assignments/{id}/approve
func (h *Handler) ApproveRequest(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := engine.Approve(r.Context(), h.Store, h.Logger, h.Notifier, id); err != nil {
		h.writeError(w, 0, "Failed to approve request", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RejectRequest rejects a pending REST/OFF request, removing it entirely.
// POST /api/assignments/{id}/reject
func (h *Handler) RejectRequest(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := engine.Reject(r.Context(), h.Store, h.Logger, h.Notifier, id); err != nil {
		h.writeError(w, 0, "Failed to reject request", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListPendingRequests lists REST/OFF requests awaiting a decision.
// GET /api/requests/pending
func (h *Handler) ListPendingRequests(w http.ResponseWriter, r *http.Request) {
	pending, err := engine.PendingRequests(r.Context(), h.Store)
	if err != nil {
		h.writeError(w, 0, "Failed to list pending requests", err)
		return
	}

	writeJSON(w, http.StatusOK, toDetailDTOs(pending))
}

// GetBoard returns every assignment grouped by team.
// GET /api/board
func (h *Handler) GetBoard(w http.ResponseWriter, r *http.Request) {
	view, err := engine.Board(r.Context(), h.Store)
	if err != nil {
		h.writeError(w, 0, "Failed to load board", err)
		return
	}

	resp := BoardResponse{
		Teams: make(map[string][]AssignmentDTO, len(view.Teams)),
		Order: view.TeamNames,
	}
	for team, details := range view.Teams {
		resp.Teams[team] = toDetailDTOs(details)
	}

	writeJSON(w, http.StatusOK, resp)
}

// ExportBoard streams the board as an Excel workbook. With ?month=2006-01
// it renders the month grid instead of the flat listing.
// GET /api/board/export
func (h *Handler) ExportBoard(w http.ResponseWriter, r *http.Request) {
	view, err := engine.Board(r.Context(), h.Store)
	if err != nil {
		h.writeError(w, 0, "Failed to load board", err)
		return
	}

	var f *excelize.File
	filename := "schedule.xlsx"
	if monthParam := r.URL.Query().Get("month"); monthParam != "" {
		parsed, err := time.Parse("2006-01", monthParam)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, "Invalid month, expected YYYY-MM", err)
			return
		}
		f, err = export.MonthWorkbook(view, parsed.Year(), parsed.Month())
		if err != nil {
			h.writeError(w, 0, "Failed to build workbook", err)
			return
		}
		filename = fmt.Sprintf("schedule_%s.xlsx", monthParam)
	} else {
		f, err = export.BoardWorkbook(view)
		if err != nil {
			h.writeError(w, 0, "Failed to build workbook", err)
			return
		}
	}
	defer f.Close()

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if err := f.Write(w); err != nil {
		h.Logger.Warn("Failed to stream workbook", zap.Error(err))
	}
}
