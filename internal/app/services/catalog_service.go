package services

import (
	"context"
	"strings"

	"github.com/yigit/examdesk/internal/app/models"
	"github.com/yigit/examdesk/internal/app/repositories"
	"github.com/yigit/examdesk/internal/pkg/apperrors"
)

// CatalogService manages streams, subjects and rooms
type CatalogService struct {
	streamRepo  repositories.IStreamRepository
	subjectRepo repositories.ISubjectRepository
	roomRepo    repositories.IRoomRepository
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(
	streamRepo repositories.IStreamRepository,
	subjectRepo repositories.ISubjectRepository,
	roomRepo repositories.IRoomRepository,
) *CatalogService {
	return &CatalogService{
		streamRepo:  streamRepo,
		subjectRepo: subjectRepo,
		roomRepo:    roomRepo,
	}
}

func requireName(name, what string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", apperrors.NewCustomError(apperrors.ErrValidationFailed, what+" name cannot be empty")
	}
	return name, nil
}

// ListStreams returns every stream
func (s *CatalogService) ListStreams(ctx context.Context) ([]*models.Stream, error) {
	return s.streamRepo.List(ctx)
}

// CreateStream adds a stream with a unique name
func (s *CatalogService) CreateStream(ctx context.Context, name string) (*models.Stream, error) {
	name, err := requireName(name, "stream")
	if err != nil {
		return nil, err
	}
	stream := &models.Stream{Name: name}
	if err := s.streamRepo.Create(ctx, stream); err != nil {
		return nil, err
	}
	return stream, nil
}

// ListSubjects returns all subjects, or those of streamID when given
func (s *CatalogService) ListSubjects(ctx context.Context, streamID *int64) ([]*models.Subject, error) {
	return s.subjectRepo.List(ctx, streamID)
}

// CreateSubject adds a subject to an existing stream
func (s *CatalogService) CreateSubject(ctx context.Context, subject *models.Subject) (*models.Subject, error) {
	name, err := requireName(subject.Name, "subject")
	if err != nil {
		return nil, err
	}
	subject.Name = name

	if _, err := s.streamRepo.GetByID(ctx, subject.StreamID); err != nil {
		return nil, err
	}
	if err := s.subjectRepo.Create(ctx, subject); err != nil {
		return nil, err
	}
	return subject, nil
}

// ListRooms returns every room
func (s *CatalogService) ListRooms(ctx context.Context) ([]*models.Room, error) {
	return s.roomRepo.List(ctx)
}

// CreateRoom adds a room with a unique name
func (s *CatalogService) CreateRoom(ctx context.Context, room *models.Room) (*models.Room, error) {
	if err := normalizeRoom(room); err != nil {
		return nil, err
	}
	if err := s.roomRepo.Create(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

// UpdateRoom replaces name and capacity of room id
func (s *CatalogService) UpdateRoom(ctx context.Context, id int64, room *models.Room) (*models.Room, error) {
	if err := normalizeRoom(room); err != nil {
		return nil, err
	}
	room.ID = id
	if err := s.roomRepo.Update(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

// DeleteRoom removes room id together with the exams scheduled in it
func (s *CatalogService) DeleteRoom(ctx context.Context, id int64) error {
	return s.roomRepo.Delete(ctx, id)
}

func normalizeRoom(room *models.Room) error {
	name, err := requireName(room.Name, "room")
	if err != nil {
		return err
	}
	room.Name = name
	if room.Capacity == 0 {
		room.Capacity = models.DefaultRoomCapacity
	}
	if room.Capacity < 0 {
		return apperrors.NewCustomError(apperrors.ErrValidationFailed, "capacity must be positive")
	}
	return nil
}
