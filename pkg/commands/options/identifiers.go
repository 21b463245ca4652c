package options

import "github.com/spf13/cobra"

// IDOptions controls whether record ids are printed alongside rows.
type IDOptions struct {
	ShowID bool
}

func AddShowIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().BoolVar(&o.ShowID, "id", false,
		"Show record ids.")
}
