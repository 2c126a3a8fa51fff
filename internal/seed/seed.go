package seed

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/examdesk/internal/app/models"
	"github.com/yigit/examdesk/internal/app/repositories"
	"github.com/yigit/examdesk/internal/pkg/apperrors"
	"github.com/yigit/examdesk/internal/pkg/auth"
)

// DefaultStreams maps every seeded stream to its subjects.
var DefaultStreams = []struct {
	Name     string
	Subjects []string
}{
	{
		Name: "IAA",
		Subjects: []string{
			"Deep learning",
			"Optimization",
			"NoSql et ETL",
			"SMA",
			"Langues",
			"Digital skills",
			"python pour le web",
		},
	},
	{
		Name: "IMSD",
		Subjects: []string{
			"Deep learning",
			"Apprentissage automatique",
			"Introduction aux EDP et Contrôle des systèmes linéaires",
			"langues",
			"Optimisation numérique",
			"Droit et éthique de l’IA",
			"Culture digitale",
		},
	},
}

// DefaultRooms are created when missing.
var DefaultRooms = []models.Room{
	{Name: "Amphi A", Capacity: 100},
	{Name: "Salle 1", Capacity: 40},
	{Name: "Salle 2", Capacity: 40},
}

// Admin describes the account created when no admin exists yet.
type Admin struct {
	FullName string
	Email    string
	Password string
}

// Seeder creates the reference data the application expects at startup.
type Seeder struct {
	repos  *repositories.Repositories
	hasher auth.PasswordHasher
	admin  Admin
	logger zerolog.Logger
}

// NewSeeder creates a Seeder
func NewSeeder(repos *repositories.Repositories, hasher auth.PasswordHasher, admin Admin, logger zerolog.Logger) *Seeder {
	// Login matches on the lowercased address.
	admin.Email = strings.ToLower(strings.TrimSpace(admin.Email))
	return &Seeder{repos: repos, hasher: hasher, admin: admin, logger: logger}
}

// Run creates every missing stream, subject, room and the default admin.
// It keeps going after a failure and returns all collected errors.
func (s *Seeder) Run(ctx context.Context) error {
	s.logger.Info().Msg("Checking/Creating default data (streams, subjects, rooms, admin)...")

	var finalErr error
	for _, stream := range DefaultStreams {
		if err := s.ensureStream(ctx, stream.Name, stream.Subjects); err != nil {
			s.logger.Error().Err(err).Str("stream", stream.Name).Msg("Error seeding stream")
			finalErr = errors.Join(finalErr, err)
		}
	}

	for _, room := range DefaultRooms {
		if err := s.ensureRoom(ctx, room); err != nil {
			s.logger.Error().Err(err).Str("room", room.Name).Msg("Error seeding room")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if err := s.ensureAdmin(ctx); err != nil {
		s.logger.Error().Err(err).Msg("Error seeding default admin")
		finalErr = errors.Join(finalErr, err)
	}

	s.logger.Info().Msg("Default data check/creation finished.")
	return finalErr
}

func (s *Seeder) ensureStream(ctx context.Context, name string, subjects []string) error {
	stream, err := s.repos.StreamRepository.GetByName(ctx, name)
	if errors.Is(err, apperrors.ErrResourceNotFound) {
		stream = &models.Stream{Name: name}
		err = s.repos.StreamRepository.Create(ctx, stream)
		if errors.Is(err, apperrors.ErrConflict) {
			stream, err = s.repos.StreamRepository.GetByName(ctx, name)
		}
	}
	if err != nil {
		return fmt.Errorf("stream %s: %w", name, err)
	}

	existing, err := s.repos.SubjectRepository.List(ctx, &stream.ID)
	if err != nil {
		return fmt.Errorf("subjects of %s: %w", name, err)
	}
	known := make(map[string]bool, len(existing))
	for _, subject := range existing {
		known[subject.Name] = true
	}

	var finalErr error
	for _, subjectName := range subjects {
		if known[subjectName] {
			continue
		}
		err := s.repos.SubjectRepository.Create(ctx, &models.Subject{Name: subjectName, StreamID: stream.ID})
		if err != nil {
			finalErr = errors.Join(finalErr, fmt.Errorf("subject %s/%s: %w", name, subjectName, err))
		}
	}
	return finalErr
}

func (s *Seeder) ensureRoom(ctx context.Context, room models.Room) error {
	_, err := s.repos.RoomRepository.GetByName(ctx, room.Name)
	if err == nil {
		return nil
	}
	if !errors.Is(err, apperrors.ErrResourceNotFound) {
		return fmt.Errorf("room %s: %w", room.Name, err)
	}

	err = s.repos.RoomRepository.Create(ctx, &room)
	if err != nil && !errors.Is(err, apperrors.ErrConflict) {
		return fmt.Errorf("room %s: %w", room.Name, err)
	}
	return nil
}

func (s *Seeder) ensureAdmin(ctx context.Context) error {
	exists, err := s.repos.UserRepository.ExistsWithRole(ctx, models.RoleAdmin)
	if err != nil {
		return err
	}
	if exists {
		s.logger.Info().Msg("Admin user already exists, skipping creation")
		return nil
	}

	hash, err := s.hasher.Hash(s.admin.Password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	admin := &models.User{
		FullName:     s.admin.FullName,
		Email:        s.admin.Email,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
	}
	if err := s.repos.UserRepository.Create(ctx, admin); err != nil {
		return err
	}
	s.logger.Info().Int64("adminID", admin.ID).Str("email", admin.Email).Msg("Default admin user created")
	return nil
}
