package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/cutover/pkg/commands/options"
	"tableflip.dev/cutover/pkg/dash"
	"tableflip.dev/cutover/pkg/store"
)

func addDash(topLevel *cobra.Command) {
	var tz string

	cmd := &cobra.Command{
		Use:   "dash",
		Short: "Open the interactive dashboard",
		Long: `Open the full-screen dashboard: phase bar, stat cards, and a live
filterable task list. Press ? inside for keybindings.`,
		Example: `
cutover dash
cutover dash --tz both
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			zone, err := resolveZone(tz)
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			tasks, err := p.Merged(cmd.Context())
			if err != nil {
				return err
			}
			return dash.Run(tasks, zone)
		},
	}

	options.AddTimezoneArg(cmd, &tz)

	topLevel.AddCommand(cmd)
}
