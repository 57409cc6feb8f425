package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/homestash/homestash/internal/api/handler"
	"github.com/homestash/homestash/internal/api/middleware"
	"github.com/homestash/homestash/internal/api/validation"
	"github.com/homestash/homestash/internal/wfh"
)

const computePath = "/v1/wfh/schedule:compute"

// brokenCalculator fails every computation with an internal error.
type brokenCalculator struct{}

func (brokenCalculator) Compute(context.Context, wfh.Input) (wfh.Result, error) {
	return wfh.Result{}, errors.New("calculator unavailable")
}

func (brokenCalculator) Bounds() wfh.DayBounds { return wfh.DefaultDayBounds() }

type computeRoute struct {
	log     zerolog.Logger
	limit   int
	service handler.ScheduleService
}

// newComputeRouter mounts the schedule endpoint behind the request ID,
// tracing and logging middleware in the order the API router uses.
func newComputeRouter(t *testing.T, rc computeRoute) http.Handler {
	t.Helper()

	if rc.limit == 0 {
		rc.limit = 10
	}
	if rc.service == nil {
		svc, err := wfh.NewService(wfh.ServiceConfig{Logger: zerolog.Nop()})
		require.NoError(t, err)
		rc.service = svc
	}
	v, err := validation.New()
	require.NoError(t, err)
	h := handler.NewWFHHandler(rc.service, v, zerolog.Nop())

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Tracing("homestash-api"))
	r.Use(middleware.Logger(rc.log))
	r.Route("/v1/wfh", func(r chi.Router) {
		r.With(
			middleware.RateLimitByIP(middleware.RateLimitConfig{RequestLimit: rc.limit, WindowLength: time.Minute}),
			middleware.RequireJSON,
		).Post("/schedule:compute", h.ComputeSchedule)
	})
	return r
}

func postCompute(h http.Handler, contentType, body string, header ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, computePath, strings.NewReader(body))
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("User-Agent", "wfh-form/1.0")
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}
