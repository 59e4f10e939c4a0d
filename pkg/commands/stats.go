package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/cutover/pkg/commands/options"
	"tableflip.dev/cutover/pkg/runner/stats"
	"tableflip.dev/cutover/pkg/store"
)

func addStats(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show stat cards and phase progress",
		Example: `
cutover stats
cutover stats --workstream Finance
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := fo.State()
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := stats.Stats{
				State:       state,
				Persistence: p,
			}
			return s.Do(cmd.Context())
		},
	}

	options.AddFilterArgs(cmd, fo)

	topLevel.AddCommand(cmd)
}
