package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/examdesk/internal/app/models"
	"github.com/yigit/examdesk/internal/db"
	"github.com/yigit/examdesk/internal/pkg/apperrors"
	"github.com/yigit/examdesk/internal/pkg/dberrors"
)

// ConvocationRepository handles convocation database operations
type ConvocationRepository struct {
	db *db.PostgresDB
	sb squirrel.StatementBuilderType
}

// NewConvocationRepository creates a new ConvocationRepository
func NewConvocationRepository(database *db.PostgresDB) *ConvocationRepository {
	return &ConvocationRepository{db: database, sb: statementBuilder()}
}

func (r *ConvocationRepository) get(ctx context.Context, q Querier, studentID, examID int64) (*models.Convocation, error) {
	sql, args, err := r.sb.Select("id", "student_id", "exam_id", "table_number").
		From("convocations").
		Where(squirrel.Eq{"student_id": studentID, "exam_id": examID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get convocation query: %w", err)
	}

	c := &models.Convocation{}
	if err := q.QueryRow(ctx, sql, args...).Scan(&c.ID, &c.StudentID, &c.ExamID, &c.TableNumber); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrConvocationNotFound
		}
		return nil, fmt.Errorf("error getting convocation: %w", err)
	}
	return c, nil
}

// GetByStudentAndExam returns the student's convocation for the exam
func (r *ConvocationRepository) GetByStudentAndExam(ctx context.Context, studentID, examID int64) (*models.Convocation, error) {
	return r.get(ctx, r.db.Pool, studentID, examID)
}

// Create inserts c and returns the stored row. A concurrent insert for the same
// (student, exam) wins and its row is returned instead.
func (r *ConvocationRepository) Create(ctx context.Context, c *models.Convocation) (*models.Convocation, bool, error) {
	sql, args, err := r.sb.Insert("convocations").
		Columns("student_id", "exam_id", "table_number").
		Values(c.StudentID, c.ExamID, c.TableNumber).
		Suffix("ON CONFLICT ON CONSTRAINT convocations_student_exam_key DO NOTHING").
		ToSql()
	if err != nil {
		return nil, false, fmt.Errorf("failed to build create convocation query: %w", err)
	}

	var (
		stored  *models.Convocation
		created bool
	)
	err = r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, sql, args...)
		if err != nil {
			if dberrors.IsForeignKeyViolation(err) {
				return apperrors.ErrExamNotFound
			}
			return fmt.Errorf("error creating convocation: %w", err)
		}
		created = tag.RowsAffected() == 1
		stored, err = r.get(ctx, tx, c.StudentID, c.ExamID)
		return err
	})
	if err != nil {
		return nil, false, err
	}
	return stored, created, nil
}
