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

// StreamRepository handles stream database operations
type StreamRepository struct {
	db Querier
	sb squirrel.StatementBuilderType
}

// NewStreamRepository creates a new StreamRepository
func NewStreamRepository(db Querier) *StreamRepository {
	return &StreamRepository{db: db, sb: statementBuilder()}
}

// Create inserts a stream and sets its ID
func (r *StreamRepository) Create(ctx context.Context, stream *models.Stream) error {
	sql, args, err := r.sb.Insert("streams").
		Columns("name").
		Values(stream.Name).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create stream query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&stream.ID); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "streams_name_key") {
			return apperrors.ErrStreamAlreadyExists
		}
		return fmt.Errorf("error creating stream: %w", err)
	}
	return nil
}

func (r *StreamRepository) getOne(ctx context.Context, where squirrel.Eq) (*models.Stream, error) {
	sql, args, err := r.sb.Select("id", "name").From("streams").Where(where).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get stream query: %w", err)
	}

	stream := &models.Stream{}
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&stream.ID, &stream.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStreamNotFound
		}
		return nil, fmt.Errorf("error getting stream: %w", err)
	}
	return stream, nil
}

// GetByID retrieves a stream by ID
func (r *StreamRepository) GetByID(ctx context.Context, id int64) (*models.Stream, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetByName retrieves a stream by its unique name
func (r *StreamRepository) GetByName(ctx context.Context, name string) (*models.Stream, error) {
	return r.getOne(ctx, squirrel.Eq{"name": name})
}

// List returns all streams ordered by id
func (r *StreamRepository) List(ctx context.Context) ([]*models.Stream, error) {
	sql, args, err := r.sb.Select("id", "name").From("streams").OrderBy("id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list streams query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying streams: %w", err)
	}
	defer rows.Close()

	streams := []*models.Stream{}
	for rows.Next() {
		stream := &models.Stream{}
		if err := rows.Scan(&stream.ID, &stream.Name); err != nil {
			return nil, fmt.Errorf("error scanning stream row: %w", err)
		}
		streams = append(streams, stream)
	}
	return streams, rows.Err()
}
