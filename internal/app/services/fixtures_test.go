package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/yigit/examdesk/internal/app/models"
	"github.com/yigit/examdesk/internal/app/repositories"
	"github.com/yigit/examdesk/internal/app/repositories/inmem"
	"github.com/yigit/examdesk/internal/pkg/auth"
)

type fixture struct {
	repos   *repositories.Repositories
	svc     *Services
	jwt     *auth.JWTService
	stream  *models.Stream
	subject *models.Subject
	room    *models.Room
	teacher *models.User
	student *models.User
	admin   *models.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	repos := inmem.NewRepositories()
	hasher := auth.BcryptHasher{Cost: bcrypt.MinCost}
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "test-secret", AccessTokenExp: time.Hour, TokenIssuer: "test"})
	f := &fixture{
		repos: repos,
		svc:   NewServices(repos, jwtService, hasher, 0, zerolog.Nop()),
		jwt:   jwtService,
	}

	f.stream = &models.Stream{Name: "IAA"}
	require.NoError(t, repos.StreamRepository.Create(ctx, f.stream))
	f.subject = &models.Subject{Name: "Optimization", StreamID: f.stream.ID}
	require.NoError(t, repos.SubjectRepository.Create(ctx, f.subject))
	f.room = &models.Room{Name: "Amphi A", Capacity: 100}
	require.NoError(t, repos.RoomRepository.Create(ctx, f.room))

	hash, err := hasher.Hash("secret")
	require.NoError(t, err)
	apoge, cne := "A1", "C1"
	f.teacher = &models.User{FullName: "T", Email: "t@x.io", PasswordHash: hash, Role: models.RoleTeacher, StreamID: &f.stream.ID}
	f.student = &models.User{FullName: "S", Email: "s@x.io", PasswordHash: hash, Role: models.RoleStudent, StreamID: &f.stream.ID, CodeApoge: &apoge, CNE: &cne}
	f.admin = &models.User{FullName: "A", Email: "a@x.io", PasswordHash: hash, Role: models.RoleAdmin}
	for _, u := range []*models.User{f.teacher, f.student, f.admin} {
		require.NoError(t, repos.UserRepository.Create(ctx, u))
	}
	return f
}

func (f *fixture) exam(t *testing.T) *models.ExamDetail {
	t.Helper()
	detail, err := f.svc.Exam.CreateExam(context.Background(), &models.Exam{
		SubjectID: f.subject.ID,
		TeacherID: &f.teacher.ID,
		RoomID:    f.room.ID,
		StreamID:  f.stream.ID,
		Date:      time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC),
		Time:      time.Time{}.Add(9 * time.Hour),
	})
	require.NoError(t, err)
	return detail
}
