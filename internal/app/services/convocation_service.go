package services

import (
	"context"
	"errors"
	"math/rand"

	"github.com/rs/zerolog"
	"github.com/yigit/examdesk/internal/app/models"
	"github.com/yigit/examdesk/internal/app/repositories"
	"github.com/yigit/examdesk/internal/pkg/apperrors"
	"github.com/yigit/examdesk/internal/pkg/metrics"
)

// DefaultMaxTableNumber is the highest table number drawn for a convocation.
const DefaultMaxTableNumber = 80

// ConvocationSlip is everything needed to print a convocation
type ConvocationSlip struct {
	Student     *models.User
	Exam        *models.ExamDetail
	Convocation *models.Convocation
	// Created is true when the table number was drawn by this call.
	Created bool
}

// ConvocationService assigns table numbers to students, once per exam
type ConvocationService struct {
	examRepo        repositories.IExamRepository
	convocationRepo repositories.IConvocationRepository
	maxTable        int
	intN            func(n int) int
	logger          zerolog.Logger
}

// NewConvocationService creates a new ConvocationService. maxTable <= 0 selects
// DefaultMaxTableNumber.
func NewConvocationService(
	examRepo repositories.IExamRepository,
	convocationRepo repositories.IConvocationRepository,
	maxTable int,
	logger zerolog.Logger,
) *ConvocationService {
	if maxTable <= 0 {
		maxTable = DefaultMaxTableNumber
	}
	return &ConvocationService{
		examRepo:        examRepo,
		convocationRepo: convocationRepo,
		maxTable:        maxTable,
		intN:            rand.Intn,
		logger:          logger,
	}
}

// WithRand replaces the table number source; intN must return a value in [0, n).
func (s *ConvocationService) WithRand(intN func(n int) int) *ConvocationService {
	s.intN = intN
	return s
}

// Issue returns the student's convocation for examID, drawing a table number
// on the first request and returning the stored one afterwards.
func (s *ConvocationService) Issue(ctx context.Context, student *models.User, examID int64) (*ConvocationSlip, error) {
	if !student.HasRole(models.RoleStudent) {
		return nil, apperrors.NewForbiddenError("Only students can get convocation")
	}

	exam, err := s.examRepo.GetByID(ctx, examID)
	if err != nil {
		return nil, err
	}

	slip := &ConvocationSlip{Student: student, Exam: exam}

	existing, err := s.convocationRepo.GetByStudentAndExam(ctx, student.ID, examID)
	switch {
	case err == nil:
		slip.Convocation = existing
		metrics.ConvocationsIssued.WithLabelValues(metrics.ConvocationReused).Inc()
		return slip, nil
	case !errors.Is(err, apperrors.ErrResourceNotFound):
		return nil, err
	}

	drawn := &models.Convocation{
		StudentID:   student.ID,
		ExamID:      examID,
		TableNumber: s.intN(s.maxTable) + 1,
	}
	stored, created, err := s.convocationRepo.Create(ctx, drawn)
	if err != nil {
		return nil, err
	}

	slip.Convocation = stored
	slip.Created = created
	result := metrics.ConvocationReused
	if slip.Created {
		result = metrics.ConvocationCreated
	}
	metrics.ConvocationsIssued.WithLabelValues(result).Inc()

	s.logger.Info().
		Int64("studentID", student.ID).
		Int64("examID", examID).
		Int("table", stored.TableNumber).
		Bool("created", slip.Created).
		Msg("Convocation issued")
	return slip, nil
}
