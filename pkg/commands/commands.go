package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/cutover/pkg/client"
	"tableflip.dev/cutover/pkg/store"
	"tableflip.dev/cutover/pkg/timefmt"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "cutover",
		Short: base.Wrap80("Cutover migration dashboard on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addLoad(topLevel)
	addGet(topLevel)
	addStats(topLevel)
	addSet(topLevel)
	addPull(topLevel)
	addPush(topLevel)
	addLog(topLevel)
	addSummary(topLevel)
	addUI(topLevel)
	addDash(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

// apiClient builds the backend client from config.
func apiClient(cfg store.Config) (*client.Client, error) {
	if cfg == nil {
		var err error
		cfg, err = store.LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	return client.New(cfg.API(), cfg.Token())
}

// resolveZone picks the display zone: flag wins over config, config over
// the GMT default.
func resolveZone(flag string) (timefmt.Zone, error) {
	if flag != "" {
		return timefmt.ParseZone(flag)
	}
	cfg, err := store.LoadConfig()
	if err != nil {
		return timefmt.GMT, err
	}
	return timefmt.ParseZone(cfg.Timezone())
}
