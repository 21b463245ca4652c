package options

import "github.com/spf13/cobra"

// StudentOptions captures the contact fields of a student record.
type StudentOptions struct {
	Phone string
	Email string
}

// AddStudentArgs wires student contact flags on the provided command.
func AddStudentArgs(cmd *cobra.Command, o *StudentOptions) {
	cmd.Flags().StringVarP(&o.Phone, "phone", "p", "",
		"Student phone number.")
	cmd.Flags().StringVarP(&o.Email, "email", "e", "",
		"Student email address.")
}
