package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/rs/zerolog"

	"github.com/homestash/homestash/internal/api/middleware"
	"github.com/homestash/homestash/internal/api/models"
	"github.com/homestash/homestash/internal/api/response"
	"github.com/homestash/homestash/internal/api/validation"
	"github.com/homestash/homestash/internal/wfh"
)

// maxScheduleBodyBytes bounds the request body of the compute endpoint.
const maxScheduleBodyBytes = 16 << 10

// ScheduleService computes WFH schedules.
type ScheduleService interface {
	Compute(ctx context.Context, in wfh.Input) (wfh.Result, error)
	Bounds() wfh.DayBounds
}

// WFHHandler handles the work-from-home calculator endpoints.
type WFHHandler struct {
	service   ScheduleService
	validator *validation.Validator
	logger    zerolog.Logger
}

// NewWFHHandler creates a new WFHHandler.
func NewWFHHandler(service ScheduleService, v *validation.Validator, logger zerolog.Logger) *WFHHandler {
	return &WFHHandler{
		service:   service,
		validator: v,
		logger:    logger,
	}
}

// GetDefaults handles GET /v1/wfh/defaults - the values an empty form starts with.
func (h *WFHHandler) GetDefaults(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, r, http.StatusOK, models.ScheduleDefaults{
		TotalHours:          models.DefaultTotalHours,
		TotalMinutes:        models.DefaultTotalMinutes,
		GapHours:            models.DefaultGapHours,
		GapMinutes:          models.DefaultGapMinutes,
		AlternateGapOffsets: wfh.AlternateGapOffsets(),
		DayBounds:           models.NewDayBounds(h.service.Bounds()),
	})
}

// ComputeSchedule handles POST /v1/wfh/schedule:compute.
func (h *WFHHandler) ComputeSchedule(w http.ResponseWriter, r *http.Request) {
	var req models.ScheduleRequest
	if detail, fieldErrors := decodeJSON(w, r, &req); detail != "" {
		response.BadRequest(w, r, detail, fieldErrors)
		return
	}

	if fieldErrors := h.validator.Struct(&req); len(fieldErrors) > 0 {
		response.BadRequest(w, r, "Request validation failed", fieldErrors)
		return
	}

	in, err := req.Input()
	if err != nil {
		response.BadRequest(w, r, err.Error(), nil)
		return
	}

	res, err := h.service.Compute(r.Context(), in)
	if err != nil {
		var fe *wfh.FieldError
		if errors.As(err, &fe) {
			response.UnprocessableEntity(w, r, fe.Message, []models.FieldError{
				{Field: fe.Field, Message: fe.Message, Code: fe.Code},
			})
			return
		}
		h.logger.Error().
			Err(err).
			Str("request_id", middleware.GetRequestID(r.Context())).
			Msg("failed to compute schedule")
		response.InternalError(w, r, "failed to compute schedule")
		return
	}

	response.JSON(w, r, http.StatusOK, models.NewScheduleResponse(res, h.service.Bounds()))
}

// decodeJSON decodes the request body into v. On failure it returns a
// problem detail and, for type mismatches, the offending field.
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) (string, []models.FieldError) {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxScheduleBodyBytes))
	err := dec.Decode(v)
	if err == nil {
		if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
			return "Request body is not valid JSON", nil
		}
		return "", nil
	}

	var typeErr *json.UnmarshalTypeError
	var maxErr *http.MaxBytesError
	switch {
	case errors.Is(err, io.EOF):
		return "Request body is required", nil
	case errors.As(err, &typeErr) && typeErr.Field == "":
		return "Request body must be a JSON object", nil
	case errors.As(err, &typeErr):
		msg := "Must be a string"
		if k := typeErr.Type.Kind(); k == reflect.Int || k == reflect.Ptr {
			msg = "Must be a whole number"
			if strings.HasPrefix(typeErr.Value, "number") {
				msg = "Must be a whole number without a fraction or exponent"
			}
		}
		return "Request body has an invalid field type", []models.FieldError{
			{Field: typeErr.Field, Message: msg, Code: "INVALID_TYPE"},
		}
	case errors.As(err, &maxErr):
		return "Request body is too large", nil
	default:
		return "Request body is not valid JSON", nil
	}
}
