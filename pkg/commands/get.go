package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/cutover/pkg/commands/options"
	"tableflip.dev/cutover/pkg/runner/get"
	"tableflip.dev/cutover/pkg/store"
)

func addGet(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}
	vo := &options.ViewOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Get a filtered view of the plan",
		Long: `Get all or a filtered set of tasks.

Base filters (phase, workstream, status, owner, search, hide-done) compose
with AND. On top of those, --stat narrows to one stat card's population and
--on/--mode or --goal applies a day focus:

  starting: tasks starting on the target date
  dueby:    tasks past due or due by end of the target date
  goal:     everything still open up to the goal task's position
`,
		Example: `
cutover get
cutover get --phase "Phase 1" --hide-done
cutover get --on 2026-02-20 --mode dueby
cutover get --goal M3-132 --by flat
cutover get --search smith --json
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := fo.State()
			if err != nil {
				return err
			}
			state, err = vo.Overlay(state)
			if err != nil {
				return err
			}
			zone, err := resolveZone(vo.Timezone)
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := get.Get{
				State:       state,
				By:          vo.By,
				Zone:        zone,
				JSON:        oo.JSON,
				Persistence: p,
			}
			return oo.HandleError(s.Do(cmd.Context()))
		},
	}

	options.AddFilterArgs(cmd, fo)
	options.AddViewArgs(cmd, vo)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
