package options

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/cutover/pkg/task"
)

// TimesOptions captures the four overlay timestamp flags for `set`.
type TimesOptions struct {
	EstStart string
	EstEnd   string
	ActStart string
	ActEnd   string
}

func AddTimesArgs(cmd *cobra.Command, o *TimesOptions) {
	cmd.Flags().StringVar(&o.EstStart, "est-start", "", "Estimated start time (HH:MM).")
	cmd.Flags().StringVar(&o.EstEnd, "est-end", "", "Estimated end time (HH:MM).")
	cmd.Flags().StringVar(&o.ActStart, "act-start", "", "Actual start time (HH:MM).")
	cmd.Flags().StringVar(&o.ActEnd, "act-end", "", "Actual end time (HH:MM).")
}

var clockPattern = regexp.MustCompile(`^\d{1,2}:\d{2}$`)

// Times validates the set flags and returns the partial edit. A flag that
// was not passed stays nil; an explicitly empty value clears the field.
func (o *TimesOptions) Times(cmd *cobra.Command) (task.Times, error) {
	var e task.Times
	set := func(flag, v string, dst **string) error {
		if !cmd.Flags().Changed(flag) {
			return nil
		}
		v = strings.TrimSpace(v)
		if v != "" && !clockPattern.MatchString(v) {
			return fmt.Errorf("bad --%s value %q, want HH:MM", flag, v)
		}
		*dst = &v
		return nil
	}
	if err := set("est-start", o.EstStart, &e.EstStart); err != nil {
		return e, err
	}
	if err := set("est-end", o.EstEnd, &e.EstEnd); err != nil {
		return e, err
	}
	if err := set("act-start", o.ActStart, &e.ActStart); err != nil {
		return e, err
	}
	if err := set("act-end", o.ActEnd, &e.ActEnd); err != nil {
		return e, err
	}
	return e, nil
}
