package models_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homestash/homestash/internal/api/models"
)

func TestProblem_NewProblem(t *testing.T) {
	p := models.NewProblem(
		models.ProblemTypeValidation,
		"Validation error",
		http.StatusBadRequest,
		"req_test123",
	)

	assert.Equal(t, models.ProblemTypeValidation, p.Type)
	assert.Equal(t, "Validation error", p.Title)
	assert.Equal(t, http.StatusBadRequest, p.Status)
	assert.Equal(t, "req_test123", p.TraceID)
	assert.Empty(t, p.Detail)
	assert.Empty(t, p.Instance)
	assert.Nil(t, p.Errors)
}

func TestProblem_Builders(t *testing.T) {
	p := models.NewProblem(
		models.ProblemTypeValidation,
		"Validation error",
		http.StatusBadRequest,
		"req_test123",
	).
		WithDetail("totalHours must be 23 or less").
		WithInstance("/v1/wfh/schedule:compute").
		WithErrors([]models.FieldError{
			{Field: "totalHours", Message: "Must be 23 or less", Code: "TOO_LARGE"},
			{Field: "timeIn", Message: "Time In is required", Code: "REQUIRED"},
		})

	assert.Equal(t, "totalHours must be 23 or less", p.Detail)
	assert.Equal(t, "/v1/wfh/schedule:compute", p.Instance)
	require.Len(t, p.Errors, 2)
	assert.Equal(t, "totalHours", p.Errors[0].Field)
	assert.Equal(t, "TOO_LARGE", p.Errors[0].Code)
}

func TestProblem_Write(t *testing.T) {
	p := models.NewBadRequest("req_test123", "invalid input", []models.FieldError{
		{Field: "timeIn", Message: "Time In is required"},
	})
	p.Instance = "/v1/wfh/schedule:compute"

	w := httptest.NewRecorder()
	p.Write(w)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "application/problem+json", w.Header().Get("Content-Type"))
	assert.Equal(t, "req_test123", w.Header().Get("X-Request-Id"))

	var result models.Problem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))

	assert.Equal(t, models.ProblemTypeValidation, result.Type)
	assert.Equal(t, "Validation error", result.Title)
	assert.Equal(t, http.StatusBadRequest, result.Status)
	assert.Equal(t, "invalid input", result.Detail)
	assert.Equal(t, "/v1/wfh/schedule:compute", result.Instance)
	assert.Equal(t, "req_test123", result.TraceID)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "timeIn", result.Errors[0].Field)
}

func TestProblem_WriteWithoutTraceID(t *testing.T) {
	w := httptest.NewRecorder()
	models.NewNotFound("", "no such route").Write(w)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, w.Header().Get("X-Request-Id"))
}

func TestProblemConstructors(t *testing.T) {
	tests := []struct {
		name    string
		problem *models.Problem
		typ     string
		title   string
		status  int
	}{
		{
			name:    "bad request",
			problem: models.NewBadRequest("req_123", "detail", nil),
			typ:     models.ProblemTypeValidation,
			title:   "Validation error",
			status:  http.StatusBadRequest,
		},
		{
			name:    "unprocessable",
			problem: models.NewUnprocessableEntity("req_123", "detail", nil),
			typ:     models.ProblemTypeUnprocessable,
			title:   "Unprocessable input",
			status:  http.StatusUnprocessableEntity,
		},
		{
			name:    "not found",
			problem: models.NewNotFound("req_123", "detail"),
			typ:     models.ProblemTypeNotFound,
			title:   "Not found",
			status:  http.StatusNotFound,
		},
		{
			name:    "method not allowed",
			problem: models.NewMethodNotAllowed("req_123", "detail"),
			typ:     models.ProblemTypeMethodNotAllowed,
			title:   "Method not allowed",
			status:  http.StatusMethodNotAllowed,
		},
		{
			name:    "unsupported media type",
			problem: models.NewUnsupportedMediaType("req_123", "detail"),
			typ:     models.ProblemTypeUnsupportedMedia,
			title:   "Unsupported media type",
			status:  http.StatusUnsupportedMediaType,
		},
		{
			name:    "too many requests",
			problem: models.NewTooManyRequests("req_123", "detail"),
			typ:     models.ProblemTypeTooManyRequests,
			title:   "Too many requests",
			status:  http.StatusTooManyRequests,
		},
		{
			name:    "internal",
			problem: models.NewInternalError("req_123", "detail"),
			typ:     models.ProblemTypeInternal,
			title:   "Internal server error",
			status:  http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.typ, tt.problem.Type)
			assert.Equal(t, tt.title, tt.problem.Title)
			assert.Equal(t, tt.status, tt.problem.Status)
			assert.Equal(t, "detail", tt.problem.Detail)
			assert.Equal(t, "req_123", tt.problem.TraceID)
		})
	}
}

func TestNewTLSRequired(t *testing.T) {
	p := models.NewTLSRequired("req_123")

	assert.Equal(t, models.ProblemTypeTLSRequired, p.Type)
	assert.Equal(t, http.StatusForbidden, p.Status)
	assert.Equal(t, "This endpoint requires HTTPS", p.Detail)
}

func TestTimestamp_JSON(t *testing.T) {
	ts := models.Timestamp(time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC))

	data, err := json.Marshal(ts)
	require.NoError(t, err)
	assert.Equal(t, `"2026-03-02T09:30:00Z"`, string(data))

	var parsed models.Timestamp
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.True(t, ts.Time().Equal(parsed.Time()))
}

func TestScheduleRequest_Durations(t *testing.T) {
	var req models.ScheduleRequest
	th, tm, gh, gm := req.Durations()
	assert.Equal(t, []int{9, 15, 0, 20}, []int{th, tm, gh, gm})

	require.NoError(t, json.Unmarshal([]byte(`{"totalHours":8,"totalMinutes":0,"gapMinutes":45}`), &req))
	th, tm, gh, gm = req.Durations()
	assert.Equal(t, []int{8, 0, 0, 45}, []int{th, tm, gh, gm})
}
