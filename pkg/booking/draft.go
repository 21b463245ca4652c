// Package booking owns the in-progress booking form state: the draft's
// fields, the create-versus-edit lifecycle, and submit validation.
package booking

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/hajz/pkg/roster"
	"tableflip.dev/hajz/pkg/session"
	"tableflip.dev/hajz/pkg/timevalue"
)

var (
	// ErrNotReady blocks submission until the identity bootstrap completes.
	// Retry is implicit on the next submit attempt.
	ErrNotReady = errors.New("booking: identity not established")

	// ErrInvalidTimeRange means the end time is not strictly after the start.
	ErrInvalidTimeRange = errors.New("booking: end time must be after start time")

	// ErrStudentNotFound means the draft's student id is absent from the roster.
	ErrStudentNotFound = errors.New("booking: student not found")
)

// Saver is the slice of the application service a submit needs.
type Saver interface {
	Ready() bool
	SaveSession(ctx context.Context, s *session.Session) error
}

// Draft is the transient, client-only form state. It mirrors either a blank
// template or a loaded session; editID doubles as the mode tag, so the
// editing flag can never drift from the identifier it belongs to.
type Draft struct {
	Subject   string
	Date      string
	StartTime string
	EndTime   string
	Lecturer  string
	StudentID string
	Status    session.Status

	editID string
}

// NewDraft returns the empty draft: no fields set, scheduled status, create
// mode.
func NewDraft() Draft {
	return Draft{Status: session.Scheduled}
}

// Editing reports whether the draft was loaded from an existing session.
func (d *Draft) Editing() bool {
	return d.editID != ""
}

// EditID returns the identifier of the session being edited, if any.
func (d *Draft) EditID() string {
	return d.editID
}

// Empty reports whether every user-settable field is at its reset value.
func (d *Draft) Empty() bool {
	return d.Subject == "" && d.Date == "" && d.StartTime == "" && d.EndTime == "" &&
		d.Lecturer == "" && d.StudentID == "" && d.Status == session.Scheduled && d.editID == ""
}

// LoadForEdit populates every field 1:1 from an existing session and switches
// the draft into edit mode.
func (d *Draft) LoadForEdit(s *session.Session) {
	d.Subject = s.Subject
	d.Date = s.Date
	d.StartTime = s.StartTime
	d.EndTime = s.EndTime
	d.Lecturer = s.Lecturer
	d.StudentID = s.StudentID
	d.Status = s.Status
	d.editID = s.ID
}

// CancelEdit resets the entire draft regardless of its current contents.
func (d *Draft) CancelEdit() {
	d.Reset()
}

// Reset restores the empty draft.
func (d *Draft) Reset() {
	*d = NewDraft()
}

// DurationMinutes derives the booked interval length from the current time
// fields; zero signals an invalid range.
func (d *Draft) DurationMinutes() int {
	return timevalue.Duration(d.StartTime, d.EndTime)
}

// Submit validates the draft and persists it: identity readiness first, then
// the time range, then student resolution against the supplied roster. On
// success the built session (denormalized student contact, computed duration,
// fresh UpdatedAt) is created or overwritten depending on edit mode, and the
// draft resets to empty. On any failure the draft is left untouched so the
// operator's input survives.
func (d *Draft) Submit(ctx context.Context, svc Saver, students []*session.Student) (*session.Session, error) {
	if svc == nil || !svc.Ready() {
		return nil, ErrNotReady
	}
	duration := d.DurationMinutes()
	if duration <= 0 {
		return nil, ErrInvalidTimeRange
	}
	student, ok := roster.Find(students, d.StudentID)
	if !ok {
		return nil, ErrStudentNotFound
	}

	payload := &session.Session{
		ID:           d.editID,
		Date:         d.Date,
		StartTime:    d.StartTime,
		EndTime:      d.EndTime,
		Lecturer:     d.Lecturer,
		StudentID:    d.StudentID,
		Subject:      d.Subject,
		Status:       d.Status,
		Duration:     duration,
		StudentName:  student.Name,
		StudentPhone: student.Phone,
		StudentEmail: student.Email,
		UpdatedAt:    session.Now(),
	}
	if err := svc.SaveSession(ctx, payload); err != nil {
		return nil, fmt.Errorf("booking: save session: %w", err)
	}

	d.Reset()
	return payload, nil
}
