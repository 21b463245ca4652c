// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// BookingOptions captures the fields of a session booked from the command
// line instead of the interactive form.
type BookingOptions struct {
	Subject   string
	Date      string
	StartTime string
	EndTime   string
	Lecturer  string
	Student   string
	Status    string
}

// AddBookingArgs wires booking-related flags on the provided command.
func AddBookingArgs(cmd *cobra.Command, o *BookingOptions) {
	cmd.Flags().StringVarP(&o.Subject, "subject", "s", "",
		"Subject of the session.")
	cmd.Flags().StringVarP(&o.Date, "date", "d", "",
		"Session date, YYYY-MM-DD.")
	cmd.Flags().StringVar(&o.StartTime, "start", "",
		"Start time, HH:MM.")
	cmd.Flags().StringVar(&o.EndTime, "end", "",
		"End time, HH:MM.")
	cmd.Flags().StringVarP(&o.Lecturer, "lecturer", "l", "",
		"Lecturer name.")
	cmd.Flags().StringVar(&o.Status, "status", "",
		"Session status. Defaults to scheduled.")
}
