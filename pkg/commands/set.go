package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/cutover/pkg/commands/options"
	"tableflip.dev/cutover/pkg/runner/set"
	"tableflip.dev/cutover/pkg/store"
)

func addSet(topLevel *cobra.Command) {
	to := &options.TimesOptions{}
	var tz string

	cmd := &cobra.Command{
		Use:   "set <id>",
		Short: "Record estimated or actual times against a task",
		Long: `Record HH:MM timestamps against one task. The edit lives in the
session overlay; it survives restarts but is discarded when a new plan is
loaded or pulled. Pass an empty value to clear a field.`,
		Example: `
cutover set M3-132 --act-start 14:05
cutover set M3-132 --est-start 13:00 --est-end 16:30
cutover set M3-132 --act-start ""
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			edit, err := to.Times(cmd)
			if err != nil {
				return err
			}
			if edit.Empty() {
				return errors.New("nothing to set, pass at least one time flag")
			}
			zone, err := resolveZone(tz)
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := set.Set{
				ID:          args[0],
				Edit:        edit,
				Zone:        zone,
				Persistence: p,
			}
			return s.Do(cmd.Context())
		},
	}

	options.AddTimesArgs(cmd, to)
	options.AddTimezoneArg(cmd, &tz)

	topLevel.AddCommand(cmd)
}
