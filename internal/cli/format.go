package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/homestash/homestash/internal/api/models"
)

var (
	colorHeader  = color.New(color.Bold)
	colorWindow  = color.New(color.FgCyan, color.Bold)
	colorSuccess = color.New(color.FgGreen, color.Bold)
	colorWarn    = color.New(color.FgYellow)
	colorMuted   = color.New(color.FgWhite, color.Faint)
)

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// PrintSchedule writes a human-readable schedule to w.
func PrintSchedule(w io.Writer, resp models.ScheduleResponse) {
	if resp.NoWFHNeeded {
		fmt.Fprintln(w, colorSuccess.Sprint("No WFH Needed!"))
		fmt.Fprintln(w, colorMuted.Sprint("Your office hours already cover the full required work day."))
		fmt.Fprintf(w, "  Office hours    %s - %s (%s)\n", resp.Office.In, resp.Office.Out, resp.Office.Duration.Label)
		return
	}

	fmt.Fprintln(w, colorHeader.Sprint("Your WFH Schedule"))
	fmt.Fprintf(w, "  Office hours    %s - %s (%s)\n", resp.Office.In, resp.Office.Out, resp.Office.Duration.Label)
	fmt.Fprintf(w, "  WFH required    %s\n", resp.Remaining.Label)
	if resp.WFH != nil {
		fmt.Fprintf(w, "  Work from home  %s  %s%s\n",
			colorWindow.Sprint(windowLabel(*resp.WFH)),
			colorMuted.Sprintf("(%s)", resp.PlacementLabel),
			outsideNote(*resp.WFH, resp.DayBounds))
	}

	if len(resp.Alternates) == 0 {
		return
	}
	fmt.Fprintln(w, colorMuted.Sprint("  Other gap options"))
	for _, alt := range resp.Alternates {
		fmt.Fprintf(w, "    %-12s  %s%s\n",
			alt.GapLabel+" gap",
			windowLabel(alt.ScheduleWindow),
			outsideNote(alt.ScheduleWindow, resp.DayBounds))
	}
}

func windowLabel(win models.ScheduleWindow) string {
	return win.From + " → " + win.To
}

func outsideNote(win models.ScheduleWindow, bounds models.DayBounds) string {
	if win.WithinDay {
		return ""
	}
	return "  " + colorWarn.Sprintf("outside %s-%s", bounds.Start, bounds.End)
}
