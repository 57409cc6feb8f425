package models

import "github.com/homestash/homestash/internal/wfh"

// Form defaults for the WFH calculator.
const (
	DefaultTotalHours   = 9
	DefaultTotalMinutes = 15
	DefaultGapHours     = 0
	DefaultGapMinutes   = 20
)

// ScheduleRequest is the body of POST /v1/wfh/schedule:compute.
// Omitted durations take the form defaults.
type ScheduleRequest struct {
	TimeIn       string `json:"timeIn" validate:"required,clock"`
	TimeOut      string `json:"timeOut" validate:"required,clock"`
	TotalHours   *int   `json:"totalHours,omitempty" validate:"omitempty,min=0,max=23"`
	TotalMinutes *int   `json:"totalMinutes,omitempty" validate:"omitempty,min=0,max=59"`
	GapHours     *int   `json:"gapHours,omitempty" validate:"omitempty,min=0,max=23"`
	GapMinutes   *int   `json:"gapMinutes,omitempty" validate:"omitempty,min=0,max=59"`
}

// Durations returns the total required and gap durations, applying defaults.
func (r *ScheduleRequest) Durations() (totalHours, totalMinutes, gapHours, gapMinutes int) {
	return intOr(r.TotalHours, DefaultTotalHours),
		intOr(r.TotalMinutes, DefaultTotalMinutes),
		intOr(r.GapHours, DefaultGapHours),
		intOr(r.GapMinutes, DefaultGapMinutes)
}

// Input converts a validated request into calculator input.
func (r *ScheduleRequest) Input() (wfh.Input, error) {
	timeIn, err := wfh.ParseClock(r.TimeIn)
	if err != nil {
		return wfh.Input{}, err
	}
	timeOut, err := wfh.ParseClock(r.TimeOut)
	if err != nil {
		return wfh.Input{}, err
	}

	totalHours, totalMinutes, gapHours, gapMinutes := r.Durations()
	return wfh.Input{
		TimeIn:        timeIn,
		TimeOut:       timeOut,
		TotalRequired: wfh.Minutes(totalHours, totalMinutes),
		Gap:           wfh.Minutes(gapHours, gapMinutes),
	}, nil
}

func intOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

// Duration is a length of time split for display.
type Duration struct {
	Hours        int    `json:"hours"`
	Minutes      int    `json:"minutes"`
	TotalMinutes int    `json:"totalMinutes"`
	Label        string `json:"label"`
}

// OfficeBlock describes the in-office part of the day.
type OfficeBlock struct {
	In       string   `json:"in"`
	Out      string   `json:"out"`
	Duration Duration `json:"duration"`
}

// ScheduleWindow is a computed WFH window.
type ScheduleWindow struct {
	From        string `json:"from"`
	To          string `json:"to"`
	FromMinutes int    `json:"fromMinutes"`
	ToMinutes   int    `json:"toMinutes"`
	// WithinDay is false when the window leaves the configured day bounds.
	WithinDay bool `json:"withinDay"`
}

// AlternateWindow is a WFH window computed with a larger gap.
type AlternateWindow struct {
	GapMinutes int    `json:"gapMinutes"`
	GapLabel   string `json:"gapLabel"`
	ScheduleWindow
}

// DayBounds is the working-day window used to choose a placement.
type DayBounds struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// ScheduleResponse is the result of a WFH schedule computation.
type ScheduleResponse struct {
	NoWFHNeeded    bool              `json:"noWfhNeeded"`
	Office         OfficeBlock       `json:"office"`
	Remaining      Duration          `json:"remaining"`
	Placement      Placement         `json:"placement"`
	PlacementLabel string            `json:"placementLabel,omitempty"`
	WFH            *ScheduleWindow   `json:"wfh,omitempty"`
	Alternates     []AlternateWindow `json:"alternates"`
	DayBounds      DayBounds         `json:"dayBounds"`
}

// ScheduleDefaults is returned by GET /v1/wfh/defaults to seed an empty form.
type ScheduleDefaults struct {
	TotalHours          int       `json:"totalHours"`
	TotalMinutes        int       `json:"totalMinutes"`
	GapHours            int       `json:"gapHours"`
	GapMinutes          int       `json:"gapMinutes"`
	AlternateGapOffsets []int     `json:"alternateGapOffsets"`
	DayBounds           DayBounds `json:"dayBounds"`
}

// NewScheduleResponse renders a calculator result. Windows are flagged with
// WithinDay against bounds; alternates are empty, never null, when no WFH is needed.
func NewScheduleResponse(res wfh.Result, bounds wfh.DayBounds) ScheduleResponse {
	resp := ScheduleResponse{
		NoWFHNeeded: res.NoWFHNeeded,
		Office: OfficeBlock{
			In:       res.OfficeInLabel(),
			Out:      res.OfficeOutLabel(),
			Duration: NewDuration(res.OfficeDuration),
		},
		Remaining:  NewDuration(res.Remaining),
		Placement:  Placement(res.Placement),
		Alternates: make([]AlternateWindow, 0, len(res.Alternates)),
		DayBounds:  NewDayBounds(bounds),
	}
	if res.NoWFHNeeded {
		return resp
	}

	primary := newScheduleWindow(res.Primary, bounds)
	resp.WFH = &primary
	resp.PlacementLabel = res.Placement.Description()
	for _, alt := range res.Alternates {
		resp.Alternates = append(resp.Alternates, AlternateWindow{
			GapMinutes:     alt.Gap,
			GapLabel:       alt.GapLabel,
			ScheduleWindow: newScheduleWindow(alt.Window, bounds),
		})
	}
	return resp
}

// NewDuration splits minutes into a Duration.
func NewDuration(minutes int) Duration {
	h, m := wfh.SplitMinutes(minutes)
	return Duration{
		Hours:        h,
		Minutes:      m,
		TotalMinutes: minutes,
		Label:        wfh.FormatDuration(minutes),
	}
}

// NewDayBounds renders day bounds as HH:MM strings.
func NewDayBounds(b wfh.DayBounds) DayBounds {
	return DayBounds{Start: b.Start.String(), End: b.End.String()}
}

func newScheduleWindow(win wfh.Window, bounds wfh.DayBounds) ScheduleWindow {
	return ScheduleWindow{
		From:        win.FromLabel(),
		To:          win.ToLabel(),
		FromMinutes: win.From,
		ToMinutes:   win.To,
		WithinDay:   bounds.Contains(win),
	}
}
