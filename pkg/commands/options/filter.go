// Package options defines shared flag helpers for CLI commands.
package options

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/cutover/pkg/plan"
	"tableflip.dev/cutover/pkg/task"
)

// FilterOptions captures the base filter flags shared by the view commands.
type FilterOptions struct {
	Phase      string
	Workstream string
	Status     string
	Owner      string
	Search     string
	HideDone   bool
}

// AddFilterArgs wires the base filter flags on the provided command.
func AddFilterArgs(cmd *cobra.Command, o *FilterOptions) {
	cmd.Flags().StringVarP(&o.Phase, "phase", "p", "",
		"Filter to one phase (id, e.g. 'Phase 1').")
	cmd.Flags().StringVarP(&o.Workstream, "workstream", "w", "",
		"Filter to one workstream.")
	cmd.Flags().StringVarP(&o.Status, "status", "s", "",
		"Filter to one status (code, label, or short badge).")
	cmd.Flags().StringVar(&o.Owner, "owner", "",
		"Filter to one responsible owner.")
	cmd.Flags().StringVarP(&o.Search, "search", "q", "",
		"Free-text search over id, people, description, and notes.")
	cmd.Flags().BoolVar(&o.HideDone, "hide-done", false,
		"Hide Complete and Archived tasks.")
}

// ResolveStatus accepts a status as canonical code, display label, or short
// badge, case-insensitively. Empty input means no status filter.
func ResolveStatus(raw string) (task.Status, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", nil
	}
	for _, m := range task.DefaultStatuses() {
		if strings.EqualFold(s, string(m.Status)) ||
			strings.EqualFold(s, m.Label) ||
			strings.EqualFold(s, m.Short) {
			return m.Status, nil
		}
	}
	return "", fmt.Errorf("unknown status %q", raw)
}

// State converts the flags to the engine's filter state.
func (o *FilterOptions) State() (plan.State, error) {
	st, err := ResolveStatus(o.Status)
	if err != nil {
		return plan.State{}, err
	}
	return plan.State{
		Phase:      strings.TrimSpace(o.Phase),
		Workstream: strings.TrimSpace(o.Workstream),
		Status:     st,
		Owner:      strings.TrimSpace(o.Owner),
		Search:     strings.TrimSpace(o.Search),
		HideDone:   o.HideDone,
	}, nil
}
