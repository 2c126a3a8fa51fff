package services

import (
	"context"

	"github.com/yigit/examdesk/internal/app/models"
	"github.com/yigit/examdesk/internal/app/repositories"
)

// UserService exposes user listings
type UserService struct {
	userRepo repositories.IUserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repositories.IUserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// ListUsers returns every registered user
func (s *UserService) ListUsers(ctx context.Context) ([]*models.User, error) {
	return s.userRepo.List(ctx)
}

// ListTeachers returns the users holding the teacher role
func (s *UserService) ListTeachers(ctx context.Context) ([]*models.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	teachers := make([]*models.User, 0, len(users))
	for _, u := range users {
		if u.HasRole(models.RoleTeacher) {
			teachers = append(teachers, u)
		}
	}
	return teachers, nil
}
