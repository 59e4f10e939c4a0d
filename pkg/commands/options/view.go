package options

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/cutover/pkg/plan"
)

const layoutISO = "2006-01-02"

// ViewOptions captures the overlay filter and presentation flags: grouping
// strategy, stat-card filter, day focus, goal id, and timezone.
type ViewOptions struct {
	By       string
	Stat     string
	On       string
	Mode     string
	Goal     string
	Timezone string
}

func AddViewArgs(cmd *cobra.Command, o *ViewOptions) {
	cmd.Flags().StringVar(&o.By, "by", "phase",
		"Grouping: phase, day, or flat.")
	cmd.Flags().StringVar(&o.Stat, "stat", "",
		"Stat-card filter: complete, wip, planned, pastdue, or impact.")
	cmd.Flags().StringVar(&o.On, "on", "",
		"Day focus target date (YYYY-MM-DD).")
	cmd.Flags().StringVar(&o.Mode, "mode", "",
		"Day focus mode: starting or dueby (requires --on).")
	cmd.Flags().StringVarP(&o.Goal, "goal", "g", "",
		"Goal mode: show everything up to this task id.")
	AddTimezoneArg(cmd, &o.Timezone)
}

func AddTimezoneArg(cmd *cobra.Command, tz *string) {
	cmd.Flags().StringVar(tz, "tz", "",
		"Timezone for logged times: GMT, AZT, EST, BOTH, or UTC.")
}

// Overlay validates the flags and folds them into a base state. Goal mode
// wins over --mode when both are given, matching the UI's mutually
// exclusive day-focus buttons.
func (o *ViewOptions) Overlay(s plan.State) (plan.State, error) {
	switch strings.ToLower(strings.TrimSpace(o.Stat)) {
	case "":
		s.Stat = plan.StatNone
	case "complete", "done":
		s.Stat = plan.StatComplete
	case "wip", "inprogress":
		s.Stat = plan.StatWIP
	case "planned", "pln":
		s.Stat = plan.StatPlanned
	case "pastdue":
		s.Stat = plan.StatPastDue
	case "impact", "usca":
		s.Stat = plan.StatImpact
	default:
		return s, fmt.Errorf("unknown stat filter %q", o.Stat)
	}

	if o.On != "" {
		d, err := time.ParseInLocation(layoutISO, strings.TrimSpace(o.On), time.Local)
		if err != nil {
			return s, fmt.Errorf("bad --on date %q, want YYYY-MM-DD", o.On)
		}
		s.FocusDate = d
	}

	if goal := strings.TrimSpace(o.Goal); goal != "" {
		s.Mode = plan.ModeGoal
		s.GoalID = goal
		return s, nil
	}

	switch strings.ToLower(strings.TrimSpace(o.Mode)) {
	case "":
		if !s.FocusDate.IsZero() {
			s.Mode = plan.ModeStarting
		}
	case "starting":
		s.Mode = plan.ModeStarting
	case "dueby":
		s.Mode = plan.ModeDueBy
	default:
		return s, fmt.Errorf("unknown day focus mode %q", o.Mode)
	}
	if s.Mode != plan.ModeOff && s.FocusDate.IsZero() {
		return s, fmt.Errorf("--mode %s requires --on", o.Mode)
	}
	return s, nil
}
