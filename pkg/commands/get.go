package commands

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/hajz/pkg/commands/options"
	"tableflip.dev/hajz/pkg/printers"
)

func addGet(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:       "get [sessions|students]",
		Short:     "get sessions or students",
		ValidArgs: []string{"sessions", "students"},
		Args:      cobra.MaximumNArgs(1),
		Example: `
hajz get
hajz get sessions --id
hajz get students
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := loadService()
			if err != nil {
				return oo.HandleError(err)
			}
			ctx := context.Background()

			sessions, err := svc.Sessions(ctx)
			if err != nil {
				return oo.HandleError(err)
			}
			students, err := svc.Students(ctx)
			if err != nil {
				return oo.HandleError(err)
			}

			what := ""
			if len(args) == 1 {
				what = args[0]
			}

			if oo.JSON {
				out := map[string]interface{}{}
				if what == "" || what == "sessions" {
					out["sessions"] = sessions
				}
				if what == "" || what == "students" {
					out["students"] = students
				}
				b, err := json.Marshal(out)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintln(color.Output, string(b))
				return nil
			}

			pp := printers.PrettyPrint{ShowID: io.ShowID}
			if what == "" || what == "sessions" {
				pp.NewLine()
				pp.TitleWithCount("Sessions", len(sessions))
				pp.Sessions(sessions)
			}
			if what == "" || what == "students" {
				pp.NewLine()
				pp.TitleWithCount("Students", len(students))
				pp.Students(students, sessions)
			}
			return nil
		},
	}

	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
