package models

import "time"

// Exam links a subject, room, stream and optional teacher to a date and time.
type Exam struct {
	ID        int64
	SubjectID int64
	TeacherID *int64
	RoomID    int64
	StreamID  int64
	// Date carries the calendar day only.
	Date time.Time
	// Time carries the time of day only; its date part is zero.
	Time time.Time
}

// ExamDetail is an exam joined with the catalog rows it references.
type ExamDetail struct {
	Exam
	Subject Subject
	Stream  Stream
	Room    Room
}

// StartsAt combines Date and Time into one instant in the date's location.
func (e Exam) StartsAt() time.Time {
	return time.Date(e.Date.Year(), e.Date.Month(), e.Date.Day(),
		e.Time.Hour(), e.Time.Minute(), e.Time.Second(), 0, e.Date.Location())
}

// Convocation is a student's seat assignment for one exam.
type Convocation struct {
	ID          int64
	StudentID   int64
	ExamID      int64
	TableNumber int
}
