package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/examdesk/internal/app/models"
	"github.com/yigit/examdesk/internal/pkg/apperrors"
	"github.com/yigit/examdesk/internal/pkg/dberrors"
)

// SubjectRepository handles subject database operations
type SubjectRepository struct {
	db Querier
	sb squirrel.StatementBuilderType
}

// NewSubjectRepository creates a new SubjectRepository
func NewSubjectRepository(db Querier) *SubjectRepository {
	return &SubjectRepository{db: db, sb: statementBuilder()}
}

// Create inserts a subject and sets its ID
func (r *SubjectRepository) Create(ctx context.Context, subject *models.Subject) error {
	sql, args, err := r.sb.Insert("subjects").
		Columns("name", "stream_id").
		Values(subject.Name, subject.StreamID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create subject query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&subject.ID); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrStreamNotFound
		}
		return fmt.Errorf("error creating subject: %w", err)
	}
	return nil
}

// GetByID retrieves a subject by ID
func (r *SubjectRepository) GetByID(ctx context.Context, id int64) (*models.Subject, error) {
	sql, args, err := r.sb.Select("id", "name", "stream_id").
		From("subjects").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get subject query: %w", err)
	}

	subject := &models.Subject{}
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&subject.ID, &subject.Name, &subject.StreamID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSubjectNotFound
		}
		return nil, fmt.Errorf("error getting subject: %w", err)
	}
	return subject, nil
}

// List returns subjects ordered by id, optionally restricted to one stream
func (r *SubjectRepository) List(ctx context.Context, streamID *int64) ([]*models.Subject, error) {
	query := r.sb.Select("id", "name", "stream_id").From("subjects").OrderBy("id ASC")
	if streamID != nil {
		query = query.Where(squirrel.Eq{"stream_id": *streamID})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list subjects query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying subjects: %w", err)
	}
	defer rows.Close()

	subjects := []*models.Subject{}
	for rows.Next() {
		subject := &models.Subject{}
		if err := rows.Scan(&subject.ID, &subject.Name, &subject.StreamID); err != nil {
			return nil, fmt.Errorf("error scanning subject row: %w", err)
		}
		subjects = append(subjects, subject)
	}
	return subjects, rows.Err()
}

// Exists reports whether streamID already has a subject called name
func (r *SubjectRepository) Exists(ctx context.Context, streamID int64, name string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM subjects WHERE stream_id = $1 AND name = $2)`,
		streamID, name).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking subject: %w", err)
	}
	return exists, nil
}
