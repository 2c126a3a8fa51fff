package dto

import (
	"github.com/yigit/examdesk/internal/app/models"
	"github.com/yigit/examdesk/internal/pkg/apperrors"
	"github.com/yigit/examdesk/internal/pkg/helpers"
)

// ExamRequest creates or replaces an exam
type ExamRequest struct {
	SubjectID int64  `json:"subject_id" binding:"required,gt=0"`
	TeacherID *int64 `json:"teacher_id" binding:"omitempty,gt=0"`
	RoomID    int64  `json:"room_id" binding:"required,gt=0"`
	StreamID  int64  `json:"stream_id" binding:"required,gt=0"`
	Date      string `json:"date" binding:"required,isodate" example:"2025-06-12"`
	Time      string `json:"time" binding:"required,clock" example:"09:00"`
}

// ToModel parses date and time into an exam
func (r ExamRequest) ToModel() (*models.Exam, error) {
	date, err := helpers.ParseDate(r.Date)
	if err != nil {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, err.Error())
	}
	clock, err := helpers.ParseClock(r.Time)
	if err != nil {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, err.Error())
	}
	return &models.Exam{
		SubjectID: r.SubjectID,
		TeacherID: r.TeacherID,
		RoomID:    r.RoomID,
		StreamID:  r.StreamID,
		Date:      date,
		Time:      clock,
	}, nil
}

// ExamResponse is the public view of an exam with its catalog names
type ExamResponse struct {
	ID          int64  `json:"id"`
	SubjectID   int64  `json:"subject_id"`
	SubjectName string `json:"subject_name"`
	TeacherID   *int64 `json:"teacher_id"`
	RoomID      int64  `json:"room_id"`
	RoomName    string `json:"room_name"`
	StreamID    int64  `json:"stream_id"`
	StreamName  string `json:"stream_name"`
	Date        string `json:"date" example:"2025-06-12"`
	Time        string `json:"time" example:"09:00:00"`
}

// NewExamResponse maps an exam detail
func NewExamResponse(e *models.ExamDetail) ExamResponse {
	return ExamResponse{
		ID:          e.ID,
		SubjectID:   e.SubjectID,
		SubjectName: e.Subject.Name,
		TeacherID:   e.TeacherID,
		RoomID:      e.RoomID,
		RoomName:    e.Room.Name,
		StreamID:    e.StreamID,
		StreamName:  e.Stream.Name,
		Date:        e.Date.Format(helpers.DateLayout),
		Time:        e.Time.Format(helpers.TimeLayout),
	}
}

// NewExamResponses maps exam details
func NewExamResponses(exams []*models.ExamDetail) []ExamResponse {
	out := make([]ExamResponse, 0, len(exams))
	for _, e := range exams {
		out = append(out, NewExamResponse(e))
	}
	return out
}
