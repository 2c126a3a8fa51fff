package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/examdesk/internal/app/models"
	"github.com/yigit/examdesk/internal/app/models/dto"
	"github.com/yigit/examdesk/internal/pkg/apperrors"
)

func TestLogin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	t.Run("valid credentials", func(t *testing.T) {
		resp, err := f.svc.Auth.Login(ctx, &dto.LoginRequest{Email: "s@x.io", Password: "secret"})
		require.NoError(t, err)
		assert.Equal(t, "bearer", resp.TokenType)

		claims, err := f.jwt.ValidateToken(resp.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, "s@x.io", claims.Subject)
		assert.Equal(t, "student", claims.Role)
		assert.Equal(t, f.student.ID, claims.UserID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := f.svc.Auth.Login(ctx, &dto.LoginRequest{Email: "s@x.io", Password: "nope"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := f.svc.Auth.Login(ctx, &dto.LoginRequest{Email: "ghost@x.io", Password: "secret"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})
}

func TestAuthenticate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	resp, err := f.svc.Auth.Login(ctx, &dto.LoginRequest{Email: "t@x.io", Password: "secret"})
	require.NoError(t, err)

	user, err := f.svc.Auth.Authenticate(ctx, resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, f.teacher.ID, user.ID)

	token, _, err := f.jwt.GenerateAccessToken(99, "gone@x.io", "student")
	require.NoError(t, err)
	_, err = f.svc.Auth.Authenticate(ctx, token)
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)

	_, err = f.svc.Auth.Authenticate(ctx, "garbage")
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}

func TestRegisterStudent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	req := &dto.RegisterStudentRequest{
		FullName:  "Amina",
		Email:     "Amina@Example.com",
		Password:  "pw",
		CodeApoge: "19000",
		CNE:       "R1300",
		StreamID:  f.stream.ID,
	}
	user, err := f.svc.Auth.RegisterStudent(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, models.RoleStudent, user.Role)
	assert.Equal(t, "amina@example.com", user.Email)
	assert.NotEqual(t, "pw", user.PasswordHash)
	require.NotNil(t, user.CNE)
	assert.Equal(t, "R1300", *user.CNE)

	_, err = f.svc.Auth.RegisterStudent(ctx, req)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestRegisterRejectsEmailOfAnotherRole(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Auth.RegisterTeacher(context.Background(), &dto.RegisterTeacherRequest{
		FullName: "Dup",
		Email:    f.student.Email,
		Password: "pw",
		StreamID: f.stream.ID,
	})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestRegisterRoleMismatch(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Auth.RegisterTeacher(context.Background(), &dto.RegisterTeacherRequest{
		FullName: "X",
		Email:    "x@x.io",
		Password: "pw",
		StreamID: f.stream.ID,
		Role:     "admin",
	})
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)

	_, err = f.svc.Auth.RegisterTeacher(context.Background(), &dto.RegisterTeacherRequest{
		FullName: "X",
		Email:    "x@x.io",
		Password: "pw",
		StreamID: f.stream.ID,
		Role:     "Teacher",
	})
	assert.NoError(t, err)
}

func TestRegisterUnknownStream(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Auth.RegisterTeacher(context.Background(), &dto.RegisterTeacherRequest{
		FullName: "X",
		Email:    "x@x.io",
		Password: "pw",
		StreamID: 404,
	})
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestCreateAdmin(t *testing.T) {
	f := newFixture(t)

	admin, err := f.svc.Auth.CreateAdmin(context.Background(), &dto.CreateAdminRequest{
		FullName: "Root",
		Email:    "root@x.io",
		Password: "pw",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.Nil(t, admin.StreamID)
}

func TestRegisterRejectsOverlongPassword(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Auth.RegisterTeacher(context.Background(), &dto.RegisterTeacherRequest{
		FullName: "Long",
		Email:    "long@x.io",
		Password: strings.Repeat("p", 80),
		StreamID: f.stream.ID,
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = f.repos.UserRepository.GetByEmail(context.Background(), "long@x.io")
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}
