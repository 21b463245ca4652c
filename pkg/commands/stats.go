package commands

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/hajz/pkg/booking"
	"tableflip.dev/hajz/pkg/printers"
)

func addStats(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "summarize the booked sessions",
		Example: `
hajz stats
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := loadService()
			if err != nil {
				return oo.HandleError(err)
			}
			sessions, err := svc.Sessions(context.Background())
			if err != nil {
				return oo.HandleError(err)
			}
			sum := booking.Summarize(sessions)

			if oo.JSON {
				b, err := json.Marshal(sum)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintln(color.Output, string(b))
				return nil
			}

			pp := printers.PrettyPrint{}
			pp.NewLine()
			pp.Title("Stats")
			pp.Stats(sum)
			return nil
		},
	}

	base.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
