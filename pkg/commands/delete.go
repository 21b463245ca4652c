package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/hajz/pkg/printers"
)

func addDelete(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:       "delete [session|student] <id>",
		Short:     "delete a session or a student by id",
		ValidArgs: []string{"session", "student"},
		Example: `
hajz delete session 9ec4c43d-79e2-4b52-9a34-17e9a9b2c9a1
hajz delete student 4f6c1f9e-1f9f-4f57-8f7a-1a2b3c4d5e6f
`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := loadService()
			if err != nil {
				return oo.HandleError(err)
			}
			ctx := context.Background()

			kind, id := args[0], args[1]
			switch kind {
			case "session":
				err = svc.DeleteSession(ctx, id)
			case "student":
				err = svc.DeleteStudent(ctx, id)
			default:
				err = errors.New("expected 'session' or 'student'")
			}
			if err != nil {
				return oo.HandleError(err)
			}

			pp := printers.PrettyPrint{}
			pp.NewLine()
			pp.Title("Deleted " + kind + " " + id)
			return nil
		},
	}

	base.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
