package services

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/examdesk/internal/app/models"
	"github.com/yigit/examdesk/internal/pkg/apperrors"
)

func TestIssueConvocationIsIdempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	exam := f.exam(t)

	draws := 0
	f.svc.Convocation.WithRand(func(n int) int {
		draws++
		assert.Equal(t, DefaultMaxTableNumber, n)
		return 41
	})

	first, err := f.svc.Convocation.Issue(ctx, f.student, exam.ID)
	require.NoError(t, err)
	assert.True(t, first.Created)
	assert.Equal(t, 42, first.Convocation.TableNumber)
	assert.Equal(t, "Amphi A", first.Exam.Room.Name)

	f.svc.Convocation.WithRand(func(int) int { draws++; return 0 })
	second, err := f.svc.Convocation.Issue(ctx, f.student, exam.ID)
	require.NoError(t, err)
	assert.False(t, second.Created)
	assert.Equal(t, first.Convocation.ID, second.Convocation.ID)
	assert.Equal(t, 42, second.Convocation.TableNumber)
	assert.Equal(t, 1, draws)
}

func TestIssueConvocationTableRange(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	exam := f.exam(t)

	for i := 0; i < 50; i++ {
		student := &models.User{FullName: "S", Email: fmt.Sprintf("s%d@range.io", i), Role: models.RoleStudent, StreamID: &f.stream.ID}
		require.NoError(t, f.repos.UserRepository.Create(ctx, student))

		slip, err := f.svc.Convocation.Issue(ctx, student, exam.ID)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, slip.Convocation.TableNumber, 1)
		assert.LessOrEqual(t, slip.Convocation.TableNumber, DefaultMaxTableNumber)
	}
}

func TestIssueConvocationRejectsNonStudents(t *testing.T) {
	f := newFixture(t)
	exam := f.exam(t)

	for _, u := range []*models.User{f.teacher, f.admin} {
		_, err := f.svc.Convocation.Issue(context.Background(), u, exam.ID)
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied, u.Role)
	}
}

func TestIssueConvocationUnknownExam(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Convocation.Issue(context.Background(), f.student, 999)
	assert.ErrorIs(t, err, apperrors.ErrExamNotFound)
}

func TestIssueConvocationConcurrent(t *testing.T) {
	f := newFixture(t)
	exam := f.exam(t)

	var wg sync.WaitGroup
	tables := make([]int, 8)
	for i := range tables {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			slip, err := f.svc.Convocation.Issue(context.Background(), f.student, exam.ID)
			if assert.NoError(t, err) {
				tables[i] = slip.Convocation.TableNumber
			}
		}(i)
	}
	wg.Wait()

	for _, tn := range tables {
		assert.Equal(t, tables[0], tn)
	}
}
