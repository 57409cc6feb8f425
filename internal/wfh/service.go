package wfh

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/homestash/homestash/internal/wfh"

// ServiceConfig holds configuration for the schedule service.
type ServiceConfig struct {
	Bounds DayBounds
	Logger zerolog.Logger
}

// Service wraps a Calculator with tracing, metrics and logging.
type Service struct {
	calc   Calculator
	logger zerolog.Logger
	tracer trace.Tracer

	computeTotal metric.Int64Counter
	remaining    metric.Int64Histogram
}

// NewService creates a new schedule service.
// Zero bounds fall back to DefaultDayBounds.
func NewService(cfg ServiceConfig) (*Service, error) {
	bounds := cfg.Bounds
	if bounds == (DayBounds{}) {
		bounds = DefaultDayBounds()
	}
	if err := bounds.Validate(); err != nil {
		return nil, err
	}

	meter := otel.Meter(instrumentationName)

	computeTotal, err := meter.Int64Counter(
		"wfh.schedule.compute.total",
		metric.WithDescription("Total number of WFH schedule computations"),
		metric.WithUnit("{schedule}"),
	)
	if err != nil {
		return nil, err
	}

	remaining, err := meter.Int64Histogram(
		"wfh.schedule.remaining",
		metric.WithDescription("Remaining minutes to be worked from home"),
		metric.WithUnit("min"),
	)
	if err != nil {
		return nil, err
	}

	return &Service{
		calc:         NewCalculator(bounds),
		logger:       cfg.Logger,
		tracer:       otel.Tracer(instrumentationName),
		computeTotal: computeTotal,
		remaining:    remaining,
	}, nil
}

// Bounds returns the day bounds used for placement.
func (s *Service) Bounds() DayBounds {
	return s.calc.Bounds()
}

var readyInput = Input{
	TimeIn:        9 * 60,
	TimeOut:       17 * 60,
	TotalRequired: Minutes(9, 15),
	Gap:           Minutes(0, 20),
}

// Ready reports whether the service can compute schedules. It fails when the
// service was not built by NewService or ctx is already done.
func (s *Service) Ready(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.tracer == nil {
		return errors.New("schedule service is not initialized")
	}
	if err := s.calc.Bounds().Validate(); err != nil {
		return err
	}
	res, err := s.calc.Compute(readyInput)
	if err != nil {
		return err
	}
	if !res.NoWFHNeeded && res.Primary.Duration() != res.Remaining {
		return fmt.Errorf("schedule window is %d minutes, want %d", res.Primary.Duration(), res.Remaining)
	}
	return nil
}

// Compute runs the calculator for in.
func (s *Service) Compute(ctx context.Context, in Input) (Result, error) {
	ctx, span := s.tracer.Start(ctx, "wfh.Compute",
		trace.WithAttributes(
			attribute.String("wfh.time_in", in.TimeIn.String()),
			attribute.String("wfh.time_out", in.TimeOut.String()),
			attribute.Int("wfh.total_required", in.TotalRequired),
			attribute.Int("wfh.gap", in.Gap),
		),
	)
	defer span.End()

	res, err := s.calc.Compute(in)
	if err != nil {
		outcome := "error"
		var fe *FieldError
		if errors.As(err, &fe) {
			outcome = "invalid"
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.computeTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
		s.logger.Debug().Err(err).
			Str("time_in", in.TimeIn.String()).
			Str("time_out", in.TimeOut.String()).
			Msg("schedule rejected")
		return Result{}, err
	}

	attrs := []attribute.KeyValue{
		attribute.String("outcome", "ok"),
		attribute.Bool("wfh.no_wfh_needed", res.NoWFHNeeded),
	}
	if !res.NoWFHNeeded {
		attrs = append(attrs, attribute.String("wfh.placement", string(res.Placement)))
	}
	span.SetAttributes(attrs...)
	s.computeTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
	s.remaining.Record(ctx, int64(res.Remaining))

	s.logger.Debug().
		Bool("no_wfh_needed", res.NoWFHNeeded).
		Str("placement", string(res.Placement)).
		Int("remaining", res.Remaining).
		Bool("within_day", s.calc.Bounds().Contains(res.Primary)).
		Msg("schedule computed")

	return res, nil
}
