package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

var (
	oo = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "hajz",
		Short: base.Wrap80("Booking console for scheduling tutoring sessions."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addGet(topLevel)
	addAdd(topLevel)
	addBook(topLevel)
	addDelete(topLevel)
	addStats(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}
