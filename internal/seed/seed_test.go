package seed

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/yigit/examdesk/internal/app/models"
	"github.com/yigit/examdesk/internal/app/repositories/inmem"
	"github.com/yigit/examdesk/internal/pkg/auth"
)

func TestSeederRunIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repos := inmem.NewRepositories()
	hasher := auth.BcryptHasher{Cost: bcrypt.MinCost}
	seeder := NewSeeder(repos, hasher, Admin{FullName: "Default Admin", Email: "admin@example.com", Password: "admin123"}, zerolog.Nop())

	require.NoError(t, seeder.Run(ctx))
	require.NoError(t, seeder.Run(ctx))

	streams, err := repos.StreamRepository.List(ctx)
	require.NoError(t, err)
	require.Len(t, streams, 2)

	for _, stream := range streams {
		subjects, err := repos.SubjectRepository.List(ctx, &stream.ID)
		require.NoError(t, err)
		assert.Len(t, subjects, 7, stream.Name)
	}

	rooms, err := repos.RoomRepository.List(ctx)
	require.NoError(t, err)
	require.Len(t, rooms, 3)
	amphi, err := repos.RoomRepository.GetByName(ctx, "Amphi A")
	require.NoError(t, err)
	assert.Equal(t, 100, amphi.Capacity)

	users, err := repos.UserRepository.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, models.RoleAdmin, users[0].Role)
	assert.True(t, hasher.Compare(users[0].PasswordHash, "admin123"))
}

func TestSeederKeepsExistingAdmin(t *testing.T) {
	ctx := context.Background()
	repos := inmem.NewRepositories()
	require.NoError(t, repos.UserRepository.Create(ctx, &models.User{
		FullName: "Someone", Email: "boss@example.com", PasswordHash: "x", Role: models.RoleAdmin,
	}))

	seeder := NewSeeder(repos, auth.BcryptHasher{Cost: bcrypt.MinCost}, Admin{Email: "admin@example.com", Password: "admin123"}, zerolog.Nop())
	require.NoError(t, seeder.Run(ctx))

	exists, err := repos.UserRepository.EmailExists(ctx, "admin@example.com")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestSeederCompletesPartialData(t *testing.T) {
	ctx := context.Background()
	repos := inmem.NewRepositories()
	iaa := &models.Stream{Name: "IAA"}
	require.NoError(t, repos.StreamRepository.Create(ctx, iaa))
	require.NoError(t, repos.SubjectRepository.Create(ctx, &models.Subject{Name: "SMA", StreamID: iaa.ID}))

	seeder := NewSeeder(repos, auth.BcryptHasher{Cost: bcrypt.MinCost}, Admin{Email: "admin@example.com", Password: "admin123"}, zerolog.Nop())
	require.NoError(t, seeder.Run(ctx))

	subjects, err := repos.SubjectRepository.List(ctx, &iaa.ID)
	require.NoError(t, err)
	assert.Len(t, subjects, 7)
}

func TestSeederNormalizesAdminEmail(t *testing.T) {
	ctx := context.Background()
	repos := inmem.NewRepositories()
	seeder := NewSeeder(repos, auth.BcryptHasher{Cost: bcrypt.MinCost}, Admin{FullName: "Office", Email: "  Office@Example.COM ", Password: "admin123"}, zerolog.Nop())
	require.NoError(t, seeder.Run(ctx))

	admin, err := repos.UserRepository.GetByEmail(ctx, "office@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, admin.Role)
}
