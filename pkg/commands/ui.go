package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/cutover/pkg/store"
	"tableflip.dev/cutover/pkg/ui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Browse the plan by phase",
		Example: `
cutover ui
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			tasks, err := p.Merged(cmd.Context())
			if err != nil {
				return err
			}
			return ui.Do(cmd.Context(), tasks)
		},
	}

	topLevel.AddCommand(cmd)
}
