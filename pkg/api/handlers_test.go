package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nextshift/shiftboard/pkg/db"
	"github.com/nextshift/shiftboard/pkg/db/memory"
)

type testAPI struct {
	store  *memory.Store
	router http.Handler
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	store := memory.NewStore()
	handler := NewHandler(store, zap.NewNop(), nil, t.TempDir())
	return &testAPI{
		store:  store,
		router: NewRouter(handler, nil),
	}
}

func (a *testAPI) seed(t *testing.T) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, a.store.InsertEmployee(ctx, &db.Employee{
		ID: "emp-1", FirstName: "Dana", LastName: "Reyes", Team: "Alpha", Email: "dana@example.com",
	}))
	require.NoError(t, a.store.InsertTemplate(ctx, &db.ShiftTemplate{
		ID: "shift-morning", Name: "Morning", StartTime: "08:00", EndTime: "16:00",
		BgColor: "#2d6cdf", TextColor: "#ffffff", IsActive: true,
	}))
	require.NoError(t, a.store.InsertTemplate(ctx, &db.ShiftTemplate{
		ID: "shift-off", Name: "OFF", BgColor: "#d64545", TextColor: "#ffffff", IsActive: true,
	}))
}

func (a *testAPI) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	return out
}

func TestCreateAssignment(t *testing.T) {
	a := newTestAPI(t)
	a.seed(t)

	rec := a.do(t, http.MethodPost, "/api/assignments", CreateAssignmentRequest{
		EmployeeID: "emp-1", ShiftID: "shift-morning", Date: "2024-01-10",
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	dto := decodeBody[AssignmentDTO](t, rec)
	assert.NotEmpty(t, dto.ID)
	assert.Equal(t, db.ShiftRegular, dto.ShiftType)
	assert.Equal(t, db.StatusApproved, dto.ApprovalStatus)
	assert.Equal(t, "08:00", dto.StartTime)
}

func TestCreateAssignment_UnknownEmployee(t *testing.T) {
	a := newTestAPI(t)
	a.seed(t)

	rec := a.do(t, http.MethodPost, "/api/assignments", CreateAssignmentRequest{
		EmployeeID: "ghost", ShiftID: "shift-morning", Date: "2024-01-10",
	})

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateAssignment_BadDate(t *testing.T) {
	a := newTestAPI(t)
	a.seed(t)

	rec := a.do(t, http.MethodPost, "/api/assignments", CreateAssignmentRequest{
		EmployeeID: "emp-1", ShiftID: "shift-morning", Date: "10/01/2024",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateAssignment_ReplacesSlot(t *testing.T) {
	a := newTestAPI(t)
	a.seed(t)

	first := decodeBody[AssignmentDTO](t, a.do(t, http.MethodPost, "/api/assignments", CreateAssignmentRequest{
		EmployeeID: "emp-1", ShiftID: "shift-morning", Date: "2024-01-10",
	}))
	second := decodeBody[AssignmentDTO](t, a.do(t, http.MethodPost, "/api/assignments", CreateAssignmentRequest{
		EmployeeID: "emp-1", ShiftID: "shift-off", Date: "2024-01-10",
	}))

	assert.NotEqual(t, first.ID, second.ID)

	_, err := a.store.GetAssignment(context.Background(), first.ID)
	assert.ErrorIs(t, err, db.ErrNotFound)
}

func TestApprovalFlow(t *testing.T) {
	a := newTestAPI(t)
	a.seed(t)

	dto := decodeBody[AssignmentDTO](t, a.do(t, http.MethodPost, "/api/assignments", CreateAssignmentRequest{
		EmployeeID: "emp-1", ShiftID: "shift-off", Date: "2024-01-11",
	}))
	require.Equal(t, db.StatusPending, dto.ApprovalStatus)

	pending := decodeBody[[]AssignmentDTO](t, a.do(t, http.MethodGet, "/api/requests/pending", nil))
	require.Len(t, pending, 1)
	assert.Equal(t, "Dana Reyes", pending[0].EmployeeName)

	rec := a.do(t, http.MethodPost, "/api/assignments/"+dto.ID+"/approve", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	// Approving twice is a validation error.
	rec = a.do(t, http.MethodPost, "/api/assignments/"+dto.ID+"/approve", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRejectRemovesAssignment(t *testing.T) {
	a := newTestAPI(t)
	a.seed(t)

	dto := decodeBody[AssignmentDTO](t, a.do(t, http.MethodPost, "/api/assignments", CreateAssignmentRequest{
		EmployeeID: "emp-1", ShiftID: "shift-off", Date: "2024-01-11",
	}))

	rec := a.do(t, http.MethodPost, "/api/assignments/"+dto.ID+"/reject", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	_, err := a.store.GetAssignment(context.Background(), dto.ID)
	assert.ErrorIs(t, err, db.ErrNotFound)
}

func TestRecordActualTimes(t *testing.T) {
	a := newTestAPI(t)
	a.seed(t)

	dto := decodeBody[AssignmentDTO](t, a.do(t, http.MethodPost, "/api/assignments", CreateAssignmentRequest{
		EmployeeID: "emp-1", ShiftID: "shift-morning", Date: "2024-01-10",
	}))

	rec := a.do(t, http.MethodPost, "/api/assignments/"+dto.ID+"/times", RecordTimesRequest{
		ActualStartTime: "08:00", ActualEndTime: "18:00",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	updated := decodeBody[AssignmentDTO](t, rec)
	assert.Equal(t, "02:00", updated.OvertimeHours)

	schedule := decodeBody[ScheduleResponse](t, a.do(t, http.MethodGet, "/api/employees/emp-1/schedule", nil))
	assert.Equal(t, "02:00", schedule.TotalOvertime)
	require.Len(t, schedule.Assignments, 1)
}

func TestDeleteAssignment(t *testing.T) {
	a := newTestAPI(t)
	a.seed(t)

	dto := decodeBody[AssignmentDTO](t, a.do(t, http.MethodPost, "/api/assignments", CreateAssignmentRequest{
		EmployeeID: "emp-1", ShiftID: "shift-morning", Date: "2024-01-10",
	}))

	rec := a.do(t, http.MethodDelete, "/api/assignments/"+dto.ID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = a.do(t, http.MethodDelete, "/api/assignments/"+dto.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetBoard(t *testing.T) {
	a := newTestAPI(t)
	a.seed(t)

	a.do(t, http.MethodPost, "/api/assignments", CreateAssignmentRequest{
		EmployeeID: "emp-1", ShiftID: "shift-morning", Date: "2024-01-10",
	})

	rec := a.do(t, http.MethodGet, "/api/board", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	board := decodeBody[BoardResponse](t, rec)
	require.Contains(t, board.Teams, "Alpha")
	require.Len(t, board.Teams["Alpha"], 1)
	entry := board.Teams["Alpha"][0]
	assert.Equal(t, "Morning", entry.ShiftName)
	// Regular shifts always read as approved on the board.
	assert.Equal(t, db.StatusApproved, entry.ApprovalStatus)
}

func TestExportBoard(t *testing.T) {
	a := newTestAPI(t)
	a.seed(t)

	a.do(t, http.MethodPost, "/api/assignments", CreateAssignmentRequest{
		EmployeeID: "emp-1", ShiftID: "shift-morning", Date: "2024-01-10",
	})

	rec := a.do(t, http.MethodGet, "/api/board/export", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "spreadsheetml")
	assert.NotZero(t, rec.Body.Len())
}

func TestEmployeeCRUD(t *testing.T) {
	a := newTestAPI(t)

	rec := a.do(t, http.MethodPost, "/api/employees", EmployeeRequest{
		FirstName: "Omar", LastName: "Haddad", Team: "Bravo", Email: "omar@example.com",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeBody[EmployeeDTO](t, rec)
	assert.Equal(t, db.ZeroOvertime, created.TotalOvertime)

	rec = a.do(t, http.MethodPut, "/api/employees/"+created.ID, EmployeeRequest{
		FirstName: "Omar", LastName: "Haddad", Team: "Alpha",
	})
	assert.Equal(t, http.StatusNoContent, rec.Code)

	fetched := decodeBody[EmployeeDTO](t, a.do(t, http.MethodGet, "/api/employees/"+created.ID, nil))
	assert.Equal(t, "Alpha", fetched.Team)

	rec = a.do(t, http.MethodDelete, "/api/employees/"+created.ID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = a.do(t, http.MethodGet, "/api/employees/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEmployeeValidation(t *testing.T) {
	a := newTestAPI(t)

	rec := a.do(t, http.MethodPost, "/api/employees", EmployeeRequest{FirstName: "  "})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestShiftTemplateEndpoints(t *testing.T) {
	a := newTestAPI(t)

	rec := a.do(t, http.MethodPost, "/api/shifts", ShiftTemplateRequest{
		Name: "Night", StartTime: "22:00", EndTime: "06:00", BgColor: "#1b1f3b", TextColor: "#ffffff",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeBody[ShiftTemplateDTO](t, rec)
	assert.True(t, created.IsActive)

	// Timed template without times is rejected.
	rec = a.do(t, http.MethodPost, "/api/shifts", ShiftTemplateRequest{
		Name: "Evening", BgColor: "#000000", TextColor: "#ffffff",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = a.do(t, http.MethodPost, "/api/shifts/"+created.ID+"/toggle", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	active := decodeBody[[]ShiftTemplateDTO](t, a.do(t, http.MethodGet, "/api/shifts/active", nil))
	assert.Empty(t, active)

	all := decodeBody[[]ShiftTemplateDTO](t, a.do(t, http.MethodGet, "/api/shifts", nil))
	assert.Len(t, all, 1)
}
