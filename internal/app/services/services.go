package services

import (
	"github.com/rs/zerolog"
	"github.com/yigit/examdesk/internal/app/repositories"
	"github.com/yigit/examdesk/internal/pkg/auth"
)

// Services groups every service of the application
type Services struct {
	Auth        *AuthService
	User        *UserService
	Catalog     *CatalogService
	Exam        *ExamService
	Convocation *ConvocationService
}

// NewServices wires the services on top of repos
func NewServices(
	repos *repositories.Repositories,
	jwtService *auth.JWTService,
	hasher auth.PasswordHasher,
	maxTableNumber int,
	logger zerolog.Logger,
) *Services {
	return &Services{
		Auth:        NewAuthService(repos.UserRepository, repos.StreamRepository, hasher, jwtService, logger),
		User:        NewUserService(repos.UserRepository),
		Catalog:     NewCatalogService(repos.StreamRepository, repos.SubjectRepository, repos.RoomRepository),
		Exam:        NewExamService(repos, logger),
		Convocation: NewConvocationService(repos.ExamRepository, repos.ConvocationRepository, maxTableNumber, logger),
	}
}
