package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/yigit/examdesk/internal/app/models"
	"github.com/yigit/examdesk/internal/pkg/apperrors"
	"github.com/yigit/examdesk/internal/pkg/dberrors"
	"github.com/yigit/examdesk/internal/pkg/helpers"
	"github.com/yigit/examdesk/internal/pkg/logger"
)

var examDetailColumns = []string{
	"e.id", "e.subject_id", "e.teacher_id", "e.room_id", "e.stream_id", "e.date", "e.time",
	"s.name", "s.stream_id", "st.name", "r.name", "r.capacity",
}

// ExamRepository handles exam database operations
type ExamRepository struct {
	db Querier
	sb squirrel.StatementBuilderType
}

// NewExamRepository creates a new ExamRepository
func NewExamRepository(db Querier) *ExamRepository {
	return &ExamRepository{db: db, sb: statementBuilder()}
}

func (r *ExamRepository) selectDetails() squirrel.SelectBuilder {
	return r.sb.Select(examDetailColumns...).
		From("exams e").
		Join("subjects s ON s.id = e.subject_id").
		Join("streams st ON st.id = e.stream_id").
		Join("rooms r ON r.id = e.room_id")
}

func scanExamDetail(row pgx.Row) (*models.ExamDetail, error) {
	detail := &models.ExamDetail{}
	var (
		date pgtype.Date
		tm   pgtype.Time
	)
	err := row.Scan(
		&detail.ID, &detail.SubjectID, &detail.TeacherID, &detail.RoomID, &detail.StreamID, &date, &tm,
		&detail.Subject.Name, &detail.Subject.StreamID, &detail.Stream.Name, &detail.Room.Name, &detail.Room.Capacity,
	)
	if err != nil {
		return nil, err
	}
	detail.Date = helpers.FromPgDate(date)
	detail.Time = helpers.FromPgTime(tm)
	detail.Subject.ID = detail.SubjectID
	detail.Stream.ID = detail.StreamID
	detail.Room.ID = detail.RoomID
	return detail, nil
}

// Create inserts an exam and sets its ID
func (r *ExamRepository) Create(ctx context.Context, exam *models.Exam) error {
	sql, args, err := r.sb.Insert("exams").
		Columns("subject_id", "teacher_id", "room_id", "stream_id", "date", "time").
		Values(exam.SubjectID, exam.TeacherID, exam.RoomID, exam.StreamID, helpers.PgDate(exam.Date), helpers.PgTime(exam.Time)).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create exam query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&exam.ID); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrExamReferences
		}
		logger.Error().Err(err).Int64("subjectID", exam.SubjectID).Msg("Error creating exam")
		return fmt.Errorf("error creating exam: %w", err)
	}
	return nil
}

// GetByID retrieves an exam together with its subject, stream and room
func (r *ExamRepository) GetByID(ctx context.Context, id int64) (*models.ExamDetail, error) {
	sql, args, err := r.selectDetails().Where(squirrel.Eq{"e.id": id}).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get exam query: %w", err)
	}

	detail, err := scanExamDetail(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrExamNotFound
		}
		return nil, fmt.Errorf("error getting exam: %w", err)
	}
	return detail, nil
}

// List returns exams ordered by id, narrowed by filter
func (r *ExamRepository) List(ctx context.Context, filter ExamFilter) ([]*models.ExamDetail, error) {
	query := r.selectDetails().OrderBy("e.id ASC")
	if filter.StreamID != nil {
		query = query.Where(squirrel.Eq{"e.stream_id": *filter.StreamID})
	}
	if filter.TeacherID != nil {
		query = query.Where(squirrel.Eq{"e.teacher_id": *filter.TeacherID})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list exams query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying exams: %w", err)
	}
	defer rows.Close()

	exams := []*models.ExamDetail{}
	for rows.Next() {
		detail, err := scanExamDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning exam row: %w", err)
		}
		exams = append(exams, detail)
	}
	return exams, rows.Err()
}

// Update overwrites every column of an existing exam
func (r *ExamRepository) Update(ctx context.Context, exam *models.Exam) error {
	sql, args, err := r.sb.Update("exams").
		SetMap(map[string]interface{}{
			"subject_id": exam.SubjectID,
			"teacher_id": exam.TeacherID,
			"room_id":    exam.RoomID,
			"stream_id":  exam.StreamID,
			"date":       helpers.PgDate(exam.Date),
			"time":       helpers.PgTime(exam.Time),
		}).
		Where(squirrel.Eq{"id": exam.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update exam query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrExamReferences
		}
		return fmt.Errorf("error updating exam: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrExamNotFound
	}
	return nil
}

// Delete removes an exam and, by cascade, its convocations
func (r *ExamRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("exams").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete exam query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting exam: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrExamNotFound
	}
	return nil
}
