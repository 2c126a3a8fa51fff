package repositories

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/yigit/examdesk/internal/app/migrations"
	"github.com/yigit/examdesk/internal/app/models"
	"github.com/yigit/examdesk/internal/db"
	"github.com/yigit/examdesk/internal/pkg/apperrors"
)

var (
	sharedOnce      sync.Once
	sharedInitErr   error
	sharedContainer *postgres.PostgresContainer
	sharedPool      *pgxpool.Pool
)

func TestMain(m *testing.M) {
	code := m.Run()
	if sharedPool != nil {
		sharedPool.Close()
	}
	if sharedContainer != nil {
		_ = sharedContainer.Terminate(context.Background())
	}
	os.Exit(code)
}

// setupPostgres returns repositories backed by a migrated, emptied database.
func setupPostgres(t *testing.T) *Repositories {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping PostgreSQL integration test in short mode")
	}

	sharedOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		container, err := postgres.Run(ctx,
			"postgres:16-alpine",
			postgres.WithDatabase("examdesk"),
			postgres.WithUsername("examdesk"),
			postgres.WithPassword("examdesk"),
			postgres.BasicWaitStrategies(),
		)
		if err != nil {
			sharedInitErr = err
			return
		}
		sharedContainer = container

		dbURL, err := container.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			sharedInitErr = err
			return
		}
		if err := migrations.NewMigrator(dbURL, zerolog.Nop()).Up(); err != nil {
			sharedInitErr = err
			return
		}
		sharedPool, sharedInitErr = pgxpool.New(ctx, dbURL)
	})
	if sharedInitErr != nil {
		t.Skipf("PostgreSQL container unavailable: %v", sharedInitErr)
	}

	_, err := sharedPool.Exec(context.Background(),
		`TRUNCATE convocations, exams, rooms, subjects, users, streams RESTART IDENTITY CASCADE`)
	require.NoError(t, err)

	return NewRepositories(db.FromPool(sharedPool))
}

type pgFixture struct {
	stream  *models.Stream
	subject *models.Subject
	room    *models.Room
	teacher *models.User
	student *models.User
}

func seedPostgres(t *testing.T, repos *Repositories) *pgFixture {
	t.Helper()
	ctx := context.Background()

	f := &pgFixture{
		stream: &models.Stream{Name: "IAA"},
		room:   &models.Room{Name: "Amphi A", Capacity: 100},
	}
	require.NoError(t, repos.StreamRepository.Create(ctx, f.stream))
	f.subject = &models.Subject{Name: "SMA", StreamID: f.stream.ID}
	require.NoError(t, repos.SubjectRepository.Create(ctx, f.subject))
	require.NoError(t, repos.RoomRepository.Create(ctx, f.room))

	apoge, cne := "A1", "C1"
	f.teacher = &models.User{FullName: "Karim", Email: "karim@example.com", PasswordHash: "h", Role: models.RoleTeacher, StreamID: &f.stream.ID}
	f.student = &models.User{FullName: "Sara", Email: "sara@example.com", PasswordHash: "h", Role: models.RoleStudent, StreamID: &f.stream.ID, CodeApoge: &apoge, CNE: &cne}
	require.NoError(t, repos.UserRepository.Create(ctx, f.teacher))
	require.NoError(t, repos.UserRepository.Create(ctx, f.student))
	return f
}

func (f *pgFixture) newExam() *models.Exam {
	return &models.Exam{
		SubjectID: f.subject.ID,
		TeacherID: &f.teacher.ID,
		RoomID:    f.room.ID,
		StreamID:  f.stream.ID,
		Date:      time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC),
		Time:      time.Time{}.Add(9*time.Hour + 30*time.Minute),
	}
}

func TestPostgresUserRepository(t *testing.T) {
	repos := setupPostgres(t)
	f := seedPostgres(t, repos)
	ctx := context.Background()

	got, err := repos.UserRepository.GetByEmail(ctx, "sara@example.com")
	require.NoError(t, err)
	assert.Equal(t, f.student.ID, got.ID)
	assert.Equal(t, models.RoleStudent, got.Role)
	require.NotNil(t, got.CNE)
	assert.Equal(t, "C1", *got.CNE)

	dup := &models.User{FullName: "Other", Email: "sara@example.com", PasswordHash: "h", Role: models.RoleStudent}
	assert.ErrorIs(t, repos.UserRepository.Create(ctx, dup), apperrors.ErrConflict)

	missingStream := int64(9999)
	orphan := &models.User{FullName: "Orphan", Email: "orphan@example.com", PasswordHash: "h", Role: models.RoleTeacher, StreamID: &missingStream}
	assert.ErrorIs(t, repos.UserRepository.Create(ctx, orphan), apperrors.ErrStreamNotFound)

	_, err = repos.UserRepository.GetByID(ctx, 9999)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)

	hasAdmin, err := repos.UserRepository.ExistsWithRole(ctx, models.RoleAdmin)
	require.NoError(t, err)
	assert.False(t, hasAdmin)
}

func TestPostgresCatalogRepositories(t *testing.T) {
	repos := setupPostgres(t)
	f := seedPostgres(t, repos)
	ctx := context.Background()

	assert.ErrorIs(t, repos.StreamRepository.Create(ctx, &models.Stream{Name: "IAA"}), apperrors.ErrConflict)
	assert.ErrorIs(t, repos.RoomRepository.Create(ctx, &models.Room{Name: "Amphi A", Capacity: 10}), apperrors.ErrConflict)

	subjects, err := repos.SubjectRepository.List(ctx, &f.stream.ID)
	require.NoError(t, err)
	require.Len(t, subjects, 1)

	exists, err := repos.SubjectRepository.Exists(ctx, f.stream.ID, "SMA")
	require.NoError(t, err)
	assert.True(t, exists)

	f.room.Capacity = 120
	require.NoError(t, repos.RoomRepository.Update(ctx, f.room))
	room, err := repos.RoomRepository.GetByName(ctx, "Amphi A")
	require.NoError(t, err)
	assert.Equal(t, 120, room.Capacity)

	assert.ErrorIs(t, repos.RoomRepository.Delete(ctx, 9999), apperrors.ErrRoomNotFound)
}

func TestPostgresExamRepository(t *testing.T) {
	repos := setupPostgres(t)
	f := seedPostgres(t, repos)
	ctx := context.Background()

	exam := f.newExam()
	require.NoError(t, repos.ExamRepository.Create(ctx, exam))
	require.NotZero(t, exam.ID)

	detail, err := repos.ExamRepository.GetByID(ctx, exam.ID)
	require.NoError(t, err)
	assert.Equal(t, "SMA", detail.Subject.Name)
	assert.Equal(t, "Amphi A", detail.Room.Name)
	assert.Equal(t, "IAA", detail.Stream.Name)
	assert.Equal(t, "2025-06-12", detail.Date.Format("2006-01-02"))
	assert.Equal(t, "09:30:00", detail.Time.Format("15:04:05"))

	byTeacher, err := repos.ExamRepository.List(ctx, ExamFilter{TeacherID: &f.teacher.ID})
	require.NoError(t, err)
	assert.Len(t, byTeacher, 1)

	otherStream := f.stream.ID + 1
	byStream, err := repos.ExamRepository.List(ctx, ExamFilter{StreamID: &otherStream})
	require.NoError(t, err)
	assert.Empty(t, byStream)

	other := &models.Stream{Name: "IMSD"}
	require.NoError(t, repos.StreamRepository.Create(ctx, other))
	shared := &models.Subject{Name: "Analyse", StreamID: other.ID}
	require.NoError(t, repos.SubjectRepository.Create(ctx, shared))
	crossStream := f.newExam()
	crossStream.SubjectID = shared.ID
	require.NoError(t, repos.ExamRepository.Create(ctx, crossStream))
	crossDetail, err := repos.ExamRepository.GetByID(ctx, crossStream.ID)
	require.NoError(t, err)
	assert.Equal(t, other.ID, crossDetail.Subject.StreamID)
	assert.Equal(t, f.stream.ID, crossDetail.StreamID)

	broken := f.newExam()
	broken.RoomID = 9999
	assert.ErrorIs(t, repos.ExamRepository.Create(ctx, broken), apperrors.ErrResourceNotFound)

	require.NoError(t, repos.RoomRepository.Delete(ctx, f.room.ID))
	_, err = repos.ExamRepository.GetByID(ctx, exam.ID)
	assert.ErrorIs(t, err, apperrors.ErrExamNotFound)
}

func TestPostgresConvocationCreateIsIdempotent(t *testing.T) {
	repos := setupPostgres(t)
	f := seedPostgres(t, repos)
	ctx := context.Background()

	exam := f.newExam()
	require.NoError(t, repos.ExamRepository.Create(ctx, exam))

	_, err := repos.ConvocationRepository.GetByStudentAndExam(ctx, f.student.ID, exam.ID)
	assert.ErrorIs(t, err, apperrors.ErrConvocationNotFound)

	first, created, err := repos.ConvocationRepository.Create(ctx, &models.Convocation{StudentID: f.student.ID, ExamID: exam.ID, TableNumber: 12})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, 12, first.TableNumber)

	second, created, err := repos.ConvocationRepository.Create(ctx, &models.Convocation{StudentID: f.student.ID, ExamID: exam.ID, TableNumber: 40})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 12, second.TableNumber)

	require.NoError(t, repos.ExamRepository.Delete(ctx, exam.ID))
	_, err = repos.ConvocationRepository.GetByStudentAndExam(ctx, f.student.ID, exam.ID)
	assert.ErrorIs(t, err, apperrors.ErrConvocationNotFound)
}
