package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/homestash/homestash/internal/api/models"
	"github.com/homestash/homestash/internal/api/validation"
	"github.com/homestash/homestash/internal/wfh"
)

func (a *App) computeCmd() *cobra.Command {
	var (
		timeIn       string
		timeOut      string
		totalHours   int
		totalMinutes int
		gapHours     int
		gapMinutes   int
		dayStart     string
		dayEnd       string
		asJSON       bool
	)

	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Compute the WFH window for an office day",
		Long: `Compute the work-from-home window needed to reach the required total.

Example:
  wfhcalc compute --in=09:00 --out=17:00
  wfhcalc compute --in=12:00 --out=18:00 --total-hours=8 --total-minutes=0 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req := models.ScheduleRequest{
				TimeIn:       timeIn,
				TimeOut:      timeOut,
				TotalHours:   &totalHours,
				TotalMinutes: &totalMinutes,
				GapHours:     &gapHours,
				GapMinutes:   &gapMinutes,
			}

			v, err := validation.New()
			if err != nil {
				return err
			}
			if fieldErrors := v.Struct(&req); len(fieldErrors) > 0 {
				return fieldErrorsToError(fieldErrors)
			}

			in, err := req.Input()
			if err != nil {
				return err
			}

			bounds, err := parseBounds(dayStart, dayEnd)
			if err != nil {
				return err
			}

			svc, err := wfh.NewService(wfh.ServiceConfig{
				Bounds: bounds,
				Logger: a.logger(cmd.ErrOrStderr()),
			})
			if err != nil {
				return err
			}

			res, err := svc.Compute(cmd.Context(), in)
			if err != nil {
				return err
			}

			resp := models.NewScheduleResponse(res, bounds)
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(resp)
			}
			PrintSchedule(cmd.OutOrStdout(), resp)
			return nil
		},
	}

	start, end := wfh.DefaultDayStart.String(), wfh.DefaultDayEnd.String()
	if a.config != nil {
		start, end = a.config.WFH.DayStart.String(), a.config.WFH.DayEnd.String()
	}

	cmd.Flags().StringVar(&timeIn, "in", "", "Time In (HH:MM, required)")
	cmd.Flags().StringVar(&timeOut, "out", "", "Time Out (HH:MM, required)")
	cmd.Flags().IntVar(&totalHours, "total-hours", models.DefaultTotalHours, "Required work day, hours (0-23)")
	cmd.Flags().IntVar(&totalMinutes, "total-minutes", models.DefaultTotalMinutes, "Required work day, minutes (0-59)")
	cmd.Flags().IntVar(&gapHours, "gap-hours", models.DefaultGapHours, "Commute gap, hours (0-23)")
	cmd.Flags().IntVar(&gapMinutes, "gap-minutes", models.DefaultGapMinutes, "Commute gap, minutes (0-59)")
	cmd.Flags().StringVar(&dayStart, "day-start", start, "Earliest WFH start used to choose a placement (HH:MM)")
	cmd.Flags().StringVar(&dayEnd, "day-end", end, "Latest WFH end used to choose a placement (HH:MM)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")

	_ = cmd.MarkFlagRequired("in")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

func (a *App) defaultsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "defaults",
		Short: "Print the default form values",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Required total  %s\n", wfh.FormatDuration(wfh.Minutes(models.DefaultTotalHours, models.DefaultTotalMinutes)))
			fmt.Fprintf(out, "Commute gap     %s\n", wfh.GapLabel(wfh.Minutes(models.DefaultGapHours, models.DefaultGapMinutes)))
			offsets := make([]string, 0, len(wfh.AlternateGapOffsets()))
			for _, o := range wfh.AlternateGapOffsets() {
				offsets = append(offsets, fmt.Sprintf("+%dm", o))
			}
			fmt.Fprintf(out, "Alternate gaps  %s\n", strings.Join(offsets, ", "))
		},
	}
}

func parseBounds(start, end string) (wfh.DayBounds, error) {
	s, err := wfh.ParseClock(start)
	if err != nil {
		return wfh.DayBounds{}, fmt.Errorf("--day-start: %w", err)
	}
	e, err := wfh.ParseClock(end)
	if err != nil {
		return wfh.DayBounds{}, fmt.Errorf("--day-end: %w", err)
	}
	b := wfh.DayBounds{Start: s, End: e}
	if err := b.Validate(); err != nil {
		return wfh.DayBounds{}, err
	}
	return b, nil
}

func fieldErrorsToError(fieldErrors []models.FieldError) error {
	errs := make([]error, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		errs = append(errs, fmt.Errorf("%s: %s", fe.Field, fe.Message))
	}
	return errors.Join(errs...)
}
