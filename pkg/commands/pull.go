package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/cutover/pkg/runner/pull"
	"tableflip.dev/cutover/pkg/store"
)

func addPull(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "pull",
		Short: "Replace the session plan with the shared one",
		Long: `Fetch the shared task list from the backend and replace the session
plan with it. Overlay edits recorded with set are discarded, same as a
fresh load.`,
		Example: `
cutover pull
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := apiClient(nil)
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := pull.Pull{
				Client:      c,
				Persistence: p,
			}
			return s.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
