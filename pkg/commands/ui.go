package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/hajz/pkg/app"
	"tableflip.dev/hajz/pkg/commands/options"
	"tableflip.dev/hajz/pkg/store"
	"tableflip.dev/hajz/pkg/tui"
)

func addUI(topLevel *cobra.Command) {
	lo := &options.LogOptions{}
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the booking console",
		Example: `
hajz ui
hajz ui --log /tmp/hajz.log
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			p, err := store.Load(cfg)
			if err != nil {
				return err
			}
			logger, err := app.NewLogger(lo.Path)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			// Identity is established inside the program so the console can
			// render its loading state while the bootstrap runs.
			svc := &app.Service{Persistence: p}
			return tui.Run(svc, cfg.AuthToken(), logger)
		},
	}

	options.AddLogArgs(cmd, lo)
	topLevel.AddCommand(cmd)
}
