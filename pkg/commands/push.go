package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/cutover/pkg/runner/push"
	"tableflip.dev/cutover/pkg/store"
)

func addPush(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "push",
		Short: "Replace the shared plan with the session one",
		Long: `Upload the session plan, overlay edits merged in, as the new shared
task list. The backend requires an admin token for this.`,
		Example: `
cutover push
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
			s := push.Push{
				Client:      c,
				Persistence: p,
			}
			return s.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
