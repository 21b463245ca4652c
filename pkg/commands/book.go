package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/hajz/pkg/booking"
	"tableflip.dev/hajz/pkg/commands/options"
	"tableflip.dev/hajz/pkg/printers"
	"tableflip.dev/hajz/pkg/roster"
	"tableflip.dev/hajz/pkg/session"
)

func addBook(topLevel *cobra.Command) {
	bo := &options.BookingOptions{}

	cmd := &cobra.Command{
		Use:   "book <student>",
		Short: "book a session without opening the console",
		Long: "Book a session for a student, referenced by id or by a name or\n" +
			"phone fragment that matches exactly one roster entry.",
		Example: `
hajz book Omar --date 2026-09-01 --start 10:00 --end 11:00 -s Math
hajz book 0101234567 -d 2026-09-01 --start 18:00 --end 19:30
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := loadService()
			if err != nil {
				return oo.HandleError(err)
			}
			ctx := context.Background()

			students, err := svc.Students(ctx)
			if err != nil {
				return oo.HandleError(err)
			}
			st, err := resolveStudent(students, args[0])
			if err != nil {
				return oo.HandleError(err)
			}

			d := booking.NewDraft()
			d.Subject = bo.Subject
			d.Date = bo.Date
			d.StartTime = bo.StartTime
			d.EndTime = bo.EndTime
			d.Lecturer = bo.Lecturer
			d.StudentID = st.ID
			if bo.Status != "" {
				status, err := session.ParseStatus(bo.Status)
				if err != nil {
					return oo.HandleError(err)
				}
				d.Status = status
			}

			saved, err := d.Submit(ctx, svc, students)
			if err != nil {
				return oo.HandleError(err)
			}

			pp := printers.PrettyPrint{}
			pp.NewLine()
			pp.Title("Booked " + saved.StudentName)
			pp.Sessions([]*session.Session{saved})
			return nil
		},
	}

	options.AddBookingArgs(cmd, bo)
	base.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

// resolveStudent accepts an exact id or a search fragment that narrows the
// roster to a single student.
func resolveStudent(students []*session.Student, ref string) (*session.Student, error) {
	if st, ok := roster.Find(students, ref); ok {
		return st, nil
	}
	f := roster.NewFilter(students)
	f.SetQuery(ref)
	matches := f.Matches()
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("no student matches %q", ref)
	case 1:
		return matches[0], nil
	}
	return nil, fmt.Errorf("%q matches %d students, be more specific", ref, len(matches))
}
