// Package wfh computes work-from-home schedules that top up in-office hours
// to a required daily total.
package wfh

import (
	"errors"
	"fmt"
)

// Placement says on which side of the office block the WFH window falls.
type Placement string

// Placement values.
const (
	PlacementBefore Placement = "before"
	PlacementAfter  Placement = "after"
)

// Description returns the label shown next to a placement.
func (p Placement) Description() string {
	if p == PlacementBefore {
		return "Before office hours"
	}
	return "After office hours"
}

// alternateGapOffsets are the extra gap minutes used for alternate windows.
var alternateGapOffsets = [...]int{10, 20}

// AlternateGapOffsets returns a copy of the extra gap minutes used for
// alternate windows.
func AlternateGapOffsets() []int {
	return append([]int(nil), alternateGapOffsets[:]...)
}

// Default day bounds.
const (
	DefaultDayStart Clock = 8 * 60
	DefaultDayEnd   Clock = 20 * 60
)

// DayBounds is the soft window used to choose a placement.
// Computed windows are never clamped to it.
type DayBounds struct {
	Start Clock
	End   Clock
}

// DefaultDayBounds returns 08:00 to 20:00.
func DefaultDayBounds() DayBounds {
	return DayBounds{Start: DefaultDayStart, End: DefaultDayEnd}
}

// ErrInvalidDayBounds is returned when the day start is not before the day end.
var ErrInvalidDayBounds = errors.New("day start must be before day end")

// Validate checks that the bounds describe a non-empty window.
func (b DayBounds) Validate() error {
	if b.Start < 0 || b.End > MinutesPerDay || b.Start >= b.End {
		return fmt.Errorf("%w: %s-%s", ErrInvalidDayBounds, b.Start, b.End)
	}
	return nil
}

// Contains reports whether w lies entirely within the bounds.
func (b DayBounds) Contains(w Window) bool {
	return w.From >= int(b.Start) && w.To <= int(b.End)
}

// Input is a single schedule request.
type Input struct {
	TimeIn        Clock
	TimeOut       Clock
	TotalRequired int // minutes
	Gap           int // minutes
}

// Window is a span of minutes since midnight. Values may fall outside a
// single day when the inputs push the window past midnight.
type Window struct {
	From int
	To   int
}

// Duration returns the length of the window in minutes.
func (w Window) Duration() int {
	return w.To - w.From
}

// FromLabel returns the 12-hour start time.
func (w Window) FromLabel() string {
	return FormatTime12(w.From)
}

// ToLabel returns the 12-hour end time.
func (w Window) ToLabel() string {
	return FormatTime12(w.To)
}

// Alternate is a WFH window computed with a larger gap.
type Alternate struct {
	Gap      int
	GapLabel string
	Window   Window
}

// Result is the outcome of a schedule computation.
type Result struct {
	OfficeIn       Clock
	OfficeOut      Clock
	OfficeDuration int
	// Remaining is zero when NoWFHNeeded is set.
	Remaining   int
	NoWFHNeeded bool
	Placement   Placement
	Primary     Window
	Alternates  []Alternate

	// Slack on each side of the office block, used to pick Placement.
	AvailableBefore int
	AvailableAfter  int
}

// OfficeInLabel returns the 12-hour office start time.
func (r Result) OfficeInLabel() string {
	return FormatTime12(int(r.OfficeIn))
}

// OfficeOutLabel returns the 12-hour office end time.
func (r Result) OfficeOutLabel() string {
	return FormatTime12(int(r.OfficeOut))
}

// Calculator computes WFH schedules within a set of day bounds.
// The zero value is not usable; use NewCalculator.
type Calculator struct {
	bounds DayBounds
}

// NewCalculator creates a calculator using the given day bounds.
func NewCalculator(bounds DayBounds) Calculator {
	return Calculator{bounds: bounds}
}

// Bounds returns the calculator's day bounds.
func (c Calculator) Bounds() DayBounds {
	return c.bounds
}

// Compute returns the schedule for in. A time-out at or before time-in yields
// a *FieldError on the timeOut field and no result.
func (c Calculator) Compute(in Input) (Result, error) {
	if in.TimeOut <= in.TimeIn {
		return Result{}, errTimeOrder()
	}

	office := int(in.TimeOut - in.TimeIn)
	remaining := in.TotalRequired - office

	res := Result{
		OfficeIn:       in.TimeIn,
		OfficeOut:      in.TimeOut,
		OfficeDuration: office,
	}

	if remaining <= 0 {
		res.NoWFHNeeded = true
		res.Placement = PlacementAfter
		return res, nil
	}

	res.Remaining = remaining
	res.AvailableBefore = int(in.TimeIn) - in.Gap - int(c.bounds.Start)
	res.AvailableAfter = int(c.bounds.End) - (int(in.TimeOut) + in.Gap)

	res.Placement = PlacementAfter
	if res.AvailableBefore >= remaining && res.AvailableBefore >= res.AvailableAfter {
		res.Placement = PlacementBefore
	}

	res.Primary = place(res.Placement, in, in.Gap, remaining)

	res.Alternates = make([]Alternate, 0, len(alternateGapOffsets))
	for _, extra := range alternateGapOffsets {
		gap := in.Gap + extra
		res.Alternates = append(res.Alternates, Alternate{
			Gap:      gap,
			GapLabel: GapLabel(gap),
			Window:   place(res.Placement, in, gap, remaining),
		})
	}

	return res, nil
}

func place(p Placement, in Input, gap, length int) Window {
	if p == PlacementBefore {
		to := int(in.TimeIn) - gap
		return Window{From: to - length, To: to}
	}
	from := int(in.TimeOut) + gap
	return Window{From: from, To: from + length}
}
