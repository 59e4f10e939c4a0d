package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/cutover/pkg/runner/load"
	"tableflip.dev/cutover/pkg/store"
)

func addLoad(topLevel *cobra.Command) {
	var year int

	cmd := &cobra.Command{
		Use:   "load <file>",
		Short: "Load a cutover plan from a spreadsheet export",
		Long: `Load a CSV/TSV export of the cutover plan into the session store.

Columns are auto-detected from the header row; any subset of the expected
columns may be absent. Loading replaces the prior plan and discards any
recorded timestamps.`,
		Example: `
cutover load plan.csv
cutover load plan.tsv --year 2027
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			p, err := store.Load(cfg)
			if err != nil {
				return err
			}
			if year == 0 {
				year = cfg.Year()
			}
			s := load.Load{
				Path:        args[0],
				Year:        year,
				Persistence: p,
			}
			return s.Do(cmd.Context())
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Default year for yearless dates.")

	topLevel.AddCommand(cmd)
}
