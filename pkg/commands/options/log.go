package options

import "github.com/spf13/cobra"

// LogOptions points structured logs at a file so they do not fight the
// terminal UI for the screen.
type LogOptions struct {
	Path string
}

func AddLogArgs(cmd *cobra.Command, o *LogOptions) {
	cmd.Flags().StringVar(&o.Path, "log", "",
		"Write structured logs to this file. Disabled when empty.")
}
