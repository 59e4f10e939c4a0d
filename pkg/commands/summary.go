package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/cutover/pkg/commands/options"
	"tableflip.dev/cutover/pkg/runner/summary"
	"tableflip.dev/cutover/pkg/store"
)

func addSummary(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}
	vo := &options.ViewOptions{}
	var user string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Generate a standup summary of the current view",
		Long: `Send the currently filtered task subset to the backend summarizer
and print what comes back. The same filter and focus flags as get apply, so
the summary covers exactly what a get with the same flags would show.`,
		Example: `
cutover summary --on 2026-02-20 --mode dueby
cutover summary --phase "Phase 2" --user alice
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
			c, err := apiClient(nil)
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := summary.Summary{
				State:       state,
				User:        user,
				Client:      c,
				Persistence: p,
			}
			return s.Do(cmd.Context())
		},
	}

	options.AddFilterArgs(cmd, fo)
	options.AddViewArgs(cmd, vo)
	cmd.Flags().StringVarP(&user, "user", "u", "", "Name to record as the requester.")

	topLevel.AddCommand(cmd)
}
