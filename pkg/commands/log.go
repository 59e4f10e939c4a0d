package commands

import (
	"strings"

	"github.com/spf13/cobra"

	runlog "tableflip.dev/cutover/pkg/runner/log"
)

func addLog(topLevel *cobra.Command) {
	var user string

	cmd := &cobra.Command{
		Use:   "log [message...]",
		Short: "Read or append the shared activity log",
		Example: `
cutover log
cutover log "DB failover done" --user alice
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := apiClient(nil)
			if err != nil {
				return err
			}
			s := runlog.Log{
				Message: strings.Join(args, " "),
				User:    user,
				Client:  c,
			}
			return s.Do(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&user, "user", "u", "", "Name to record against the entry.")

	topLevel.AddCommand(cmd)
}
