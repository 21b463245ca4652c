package session

// Session is a scheduled or historical tutoring booking. The store assigns ID
// on creation; Duration is derived from the time range at save time. Student
// contact fields are denormalized from the roster when the booking is saved so
// the listing stays readable even if the student is later removed.
type Session struct {
	ID        string `json:"id,omitempty"`
	Date      string `json:"date"`      // YYYY-MM-DD
	StartTime string `json:"startTime"` // HH:MM, 24h
	EndTime   string `json:"endTime"`   // HH:MM, 24h
	Lecturer  string `json:"lecturer"`
	StudentID string `json:"studentId"`
	Subject   string `json:"subject"`
	Status    Status `json:"status"`
	Duration  int    `json:"duration"` // minutes

	StudentName  string `json:"studentName,omitempty"`
	StudentPhone string `json:"studentPhone,omitempty"`
	StudentEmail string `json:"studentEmail,omitempty"`

	UpdatedAt Timestamp `json:"updatedAt,omitempty"`
}

// TimeRange renders the booked interval for display.
func (s *Session) TimeRange() string {
	return s.StartTime + " - " + s.EndTime
}

// Student is a roster entry. Students are created and deleted, never updated.
type Student struct {
	ID        string    `json:"id,omitempty"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	CreatedAt Timestamp `json:"createdAt,omitempty"`
}

// Lecturers is the fixed vocabulary offered by the booking form.
func Lecturers() []string {
	return []string{
		"د. أحمد علي",
		"أ. سارة محمود",
		"د. محمد حسن",
		"أ. ليلى خالد",
	}
}
