package inmem

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/examdesk/internal/app/models"
	"github.com/yigit/examdesk/internal/app/repositories"
	"github.com/yigit/examdesk/internal/pkg/apperrors"
)

func TestUserEmailUnique(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories()

	require.NoError(t, repos.UserRepository.Create(ctx, &models.User{Email: "a@x.io", Role: models.RoleAdmin}))
	err := repos.UserRepository.Create(ctx, &models.User{Email: "a@x.io", Role: models.RoleTeacher})
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	ok, err := repos.UserRepository.ExistsWithRole(ctx, models.RoleAdmin)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRoomDeleteCascadesToExamsAndConvocations(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories()

	stream := &models.Stream{Name: "IAA"}
	require.NoError(t, repos.StreamRepository.Create(ctx, stream))
	subject := &models.Subject{Name: "Optimization", StreamID: stream.ID}
	require.NoError(t, repos.SubjectRepository.Create(ctx, subject))
	room := &models.Room{Name: "Amphi A", Capacity: 100}
	require.NoError(t, repos.RoomRepository.Create(ctx, room))
	student := &models.User{Email: "s@x.io", Role: models.RoleStudent, StreamID: &stream.ID}
	require.NoError(t, repos.UserRepository.Create(ctx, student))

	exam := &models.Exam{SubjectID: subject.ID, RoomID: room.ID, StreamID: stream.ID, Date: time.Now()}
	require.NoError(t, repos.ExamRepository.Create(ctx, exam))
	_, _, err := repos.ConvocationRepository.Create(ctx, &models.Convocation{StudentID: student.ID, ExamID: exam.ID, TableNumber: 5})
	require.NoError(t, err)

	require.NoError(t, repos.RoomRepository.Delete(ctx, room.ID))

	_, err = repos.ExamRepository.GetByID(ctx, exam.ID)
	assert.ErrorIs(t, err, apperrors.ErrExamNotFound)
	_, err = repos.ConvocationRepository.GetByStudentAndExam(ctx, student.ID, exam.ID)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestConvocationCreateKeepsFirstRow(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	repos := store.Repositories()

	stream := &models.Stream{Name: "IMSD"}
	require.NoError(t, repos.StreamRepository.Create(ctx, stream))
	subject := &models.Subject{Name: "Deep learning", StreamID: stream.ID}
	require.NoError(t, repos.SubjectRepository.Create(ctx, subject))
	room := &models.Room{Name: "Salle 1", Capacity: 40}
	require.NoError(t, repos.RoomRepository.Create(ctx, room))
	exam := &models.Exam{SubjectID: subject.ID, RoomID: room.ID, StreamID: stream.ID}
	require.NoError(t, repos.ExamRepository.Create(ctx, exam))

	first, created, err := repos.ConvocationRepository.Create(ctx, &models.Convocation{StudentID: 9, ExamID: exam.ID, TableNumber: 3})
	require.NoError(t, err)
	assert.True(t, created)
	second, created, err := repos.ConvocationRepository.Create(ctx, &models.Convocation{StudentID: 9, ExamID: exam.ID, TableNumber: 44})
	require.NoError(t, err)
	assert.False(t, created)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 3, second.TableNumber)
}

func TestExamListFilters(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories()

	a := &models.Stream{Name: "A"}
	b := &models.Stream{Name: "B"}
	require.NoError(t, repos.StreamRepository.Create(ctx, a))
	require.NoError(t, repos.StreamRepository.Create(ctx, b))
	room := &models.Room{Name: "R", Capacity: 30}
	require.NoError(t, repos.RoomRepository.Create(ctx, room))
	teacher := &models.User{Email: "t@x.io", Role: models.RoleTeacher}
	require.NoError(t, repos.UserRepository.Create(ctx, teacher))

	for _, st := range []*models.Stream{a, b} {
		subject := &models.Subject{Name: "S", StreamID: st.ID}
		require.NoError(t, repos.SubjectRepository.Create(ctx, subject))
		exam := &models.Exam{SubjectID: subject.ID, RoomID: room.ID, StreamID: st.ID}
		if st == b {
			exam.TeacherID = &teacher.ID
		}
		require.NoError(t, repos.ExamRepository.Create(ctx, exam))
	}

	byStream, err := repos.ExamRepository.List(ctx, repositories.ExamFilter{StreamID: &a.ID})
	require.NoError(t, err)
	require.Len(t, byStream, 1)
	assert.Equal(t, "A", byStream[0].Stream.Name)

	byTeacher, err := repos.ExamRepository.List(ctx, repositories.ExamFilter{TeacherID: &teacher.ID})
	require.NoError(t, err)
	require.Len(t, byTeacher, 1)
	assert.Equal(t, b.ID, byTeacher[0].StreamID)

	err = repos.ExamRepository.Create(ctx, &models.Exam{SubjectID: 999, RoomID: room.ID, StreamID: a.ID})
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}
