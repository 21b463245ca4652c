package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/hajz/pkg/commands/options"
	"tableflip.dev/hajz/pkg/printers"
)

func addAdd(topLevel *cobra.Command) {
	so := &options.StudentOptions{}

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "add a student to the roster",
		Example: `
hajz add "Omar Farouk" --phone 0101234567
hajz add Laila -p 0123456789 -e laila@example.com
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := loadService()
			if err != nil {
				return oo.HandleError(err)
			}

			name := strings.Join(args, " ")
			st, err := svc.AddStudent(context.Background(), name, so.Phone, so.Email)
			if err != nil {
				return oo.HandleError(err)
			}

			pp := printers.PrettyPrint{}
			pp.NewLine()
			pp.Title("Added " + st.Name)
			return nil
		},
	}

	options.AddStudentArgs(cmd, so)
	base.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
