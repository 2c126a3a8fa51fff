package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/examdesk/internal/app/models"
	"github.com/yigit/examdesk/internal/app/repositories"
	"github.com/yigit/examdesk/internal/pkg/apperrors"
)

// ExamService schedules exams and answers exam listings
type ExamService struct {
	examRepo    repositories.IExamRepository
	subjectRepo repositories.ISubjectRepository
	roomRepo    repositories.IRoomRepository
	streamRepo  repositories.IStreamRepository
	userRepo    repositories.IUserRepository
	logger      zerolog.Logger
}

// NewExamService creates a new ExamService
func NewExamService(repos *repositories.Repositories, logger zerolog.Logger) *ExamService {
	return &ExamService{
		examRepo:    repos.ExamRepository,
		subjectRepo: repos.SubjectRepository,
		roomRepo:    repos.RoomRepository,
		streamRepo:  repos.StreamRepository,
		userRepo:    repos.UserRepository,
		logger:      logger,
	}
}

// checkReferences verifies subject, room, stream and the optional teacher
func (s *ExamService) checkReferences(ctx context.Context, exam *models.Exam) error {
	lookups := []func() error{
		func() error { _, err := s.subjectRepo.GetByID(ctx, exam.SubjectID); return err },
		func() error { _, err := s.roomRepo.GetByID(ctx, exam.RoomID); return err },
		func() error { _, err := s.streamRepo.GetByID(ctx, exam.StreamID); return err },
	}
	for _, lookup := range lookups {
		if err := lookup(); err != nil {
			if errors.Is(err, apperrors.ErrResourceNotFound) {
				return apperrors.ErrExamReferences
			}
			return err
		}
	}

	if exam.TeacherID == nil {
		return nil
	}
	teacher, err := s.userRepo.GetByID(ctx, *exam.TeacherID)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return apperrors.ErrTeacherNotFound
		}
		return err
	}
	if !teacher.HasRole(models.RoleTeacher) {
		return apperrors.ErrTeacherNotFound
	}
	return nil
}

// CreateExam schedules a new exam
func (s *ExamService) CreateExam(ctx context.Context, exam *models.Exam) (*models.ExamDetail, error) {
	if err := s.checkReferences(ctx, exam); err != nil {
		return nil, err
	}
	if err := s.examRepo.Create(ctx, exam); err != nil {
		return nil, err
	}
	s.logger.Info().Int64("examID", exam.ID).Int64("subjectID", exam.SubjectID).Msg("Exam created")
	return s.examRepo.GetByID(ctx, exam.ID)
}

// UpdateExam replaces every field of exam id
func (s *ExamService) UpdateExam(ctx context.Context, id int64, exam *models.Exam) (*models.ExamDetail, error) {
	if _, err := s.examRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	exam.ID = id
	if err := s.checkReferences(ctx, exam); err != nil {
		return nil, err
	}
	if err := s.examRepo.Update(ctx, exam); err != nil {
		return nil, err
	}
	return s.examRepo.GetByID(ctx, id)
}

// DeleteExam removes exam id and its convocations
func (s *ExamService) DeleteExam(ctx context.Context, id int64) error {
	if err := s.examRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("examID", id).Msg("Exam deleted")
	return nil
}

// GetExam returns a single exam
func (s *ExamService) GetExam(ctx context.Context, id int64) (*models.ExamDetail, error) {
	return s.examRepo.GetByID(ctx, id)
}

// ListExams returns every exam
func (s *ExamService) ListExams(ctx context.Context) ([]*models.ExamDetail, error) {
	return s.examRepo.List(ctx, repositories.ExamFilter{})
}

// ListForStudent returns the exams of the student's stream
func (s *ExamService) ListForStudent(ctx context.Context, student *models.User) ([]*models.ExamDetail, error) {
	if student.StreamID == nil {
		return []*models.ExamDetail{}, nil
	}
	exams, err := s.examRepo.List(ctx, repositories.ExamFilter{StreamID: student.StreamID})
	if err != nil {
		return nil, fmt.Errorf("error listing exams of stream %d: %w", *student.StreamID, err)
	}
	return exams, nil
}

// ListForTeacher returns the exams assigned to the teacher
func (s *ExamService) ListForTeacher(ctx context.Context, teacher *models.User) ([]*models.ExamDetail, error) {
	exams, err := s.examRepo.List(ctx, repositories.ExamFilter{TeacherID: &teacher.ID})
	if err != nil {
		return nil, fmt.Errorf("error listing exams of teacher %d: %w", teacher.ID, err)
	}
	return exams, nil
}
