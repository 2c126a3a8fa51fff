package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/examdesk/internal/app/models"
	"github.com/yigit/examdesk/internal/pkg/apperrors"
)

func TestCreateExam(t *testing.T) {
	f := newFixture(t)

	detail := f.exam(t)
	assert.Equal(t, "Optimization", detail.Subject.Name)
	assert.Equal(t, "IAA", detail.Stream.Name)
	assert.Equal(t, "Amphi A", detail.Room.Name)
	assert.Equal(t, 9, detail.Time.Hour())
}

func TestCreateExamMissingReferences(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	base := func() *models.Exam {
		return &models.Exam{SubjectID: f.subject.ID, RoomID: f.room.ID, StreamID: f.stream.ID, Date: time.Now()}
	}

	tests := []struct {
		name   string
		mutate func(e *models.Exam)
		want   error
	}{
		{"subject", func(e *models.Exam) { e.SubjectID = 999 }, apperrors.ErrExamReferences},
		{"room", func(e *models.Exam) { e.RoomID = 999 }, apperrors.ErrExamReferences},
		{"stream", func(e *models.Exam) { e.StreamID = 999 }, apperrors.ErrExamReferences},
		{"unknown teacher", func(e *models.Exam) { id := int64(999); e.TeacherID = &id }, apperrors.ErrTeacherNotFound},
		{"student as teacher", func(e *models.Exam) { e.TeacherID = &f.student.ID }, apperrors.ErrTeacherNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exam := base()
			tt.mutate(exam)
			_, err := f.svc.Exam.CreateExam(ctx, exam)
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
		})
	}

	all, err := f.svc.Exam.ListExams(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestExamViews(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	exam := f.exam(t)

	forStudent, err := f.svc.Exam.ListForStudent(ctx, f.student)
	require.NoError(t, err)
	require.Len(t, forStudent, 1)
	assert.Equal(t, exam.ID, forStudent[0].ID)

	forTeacher, err := f.svc.Exam.ListForTeacher(ctx, f.teacher)
	require.NoError(t, err)
	assert.Len(t, forTeacher, 1)

	forAdmin, err := f.svc.Exam.ListForTeacher(ctx, f.admin)
	require.NoError(t, err)
	assert.Empty(t, forAdmin)

	noStream, err := f.svc.Exam.ListForStudent(ctx, &models.User{ID: 77, Role: models.RoleStudent})
	require.NoError(t, err)
	assert.Empty(t, noStream)
}

func TestUpdateAndDeleteExam(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	exam := f.exam(t)

	changed := exam.Exam
	changed.TeacherID = nil
	changed.Time = time.Time{}.Add(14*time.Hour + 30*time.Minute)
	updated, err := f.svc.Exam.UpdateExam(ctx, exam.ID, &changed)
	require.NoError(t, err)
	assert.Nil(t, updated.TeacherID)
	assert.Equal(t, "14:30", updated.Time.Format("15:04"))

	_, err = f.svc.Exam.UpdateExam(ctx, 999, &changed)
	assert.ErrorIs(t, err, apperrors.ErrExamNotFound)

	require.NoError(t, f.svc.Exam.DeleteExam(ctx, exam.ID))
	_, err = f.svc.Exam.GetExam(ctx, exam.ID)
	assert.ErrorIs(t, err, apperrors.ErrExamNotFound)
}
