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
	"github.com/yigit/examdesk/internal/pkg/logger"
)

// RoomRepository handles room database operations
type RoomRepository struct {
	db Querier
	sb squirrel.StatementBuilderType
}

// NewRoomRepository creates a new RoomRepository
func NewRoomRepository(db Querier) *RoomRepository {
	return &RoomRepository{db: db, sb: statementBuilder()}
}

// Create inserts a room and sets its ID
func (r *RoomRepository) Create(ctx context.Context, room *models.Room) error {
	sql, args, err := r.sb.Insert("rooms").
		Columns("name", "capacity").
		Values(room.Name, room.Capacity).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create room query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&room.ID); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "rooms_name_key") {
			return apperrors.ErrRoomAlreadyExists
		}
		logger.Error().Err(err).Str("room", room.Name).Msg("Error creating room")
		return fmt.Errorf("error creating room: %w", err)
	}
	return nil
}

func (r *RoomRepository) getOne(ctx context.Context, where squirrel.Eq) (*models.Room, error) {
	sql, args, err := r.sb.Select("id", "name", "capacity").From("rooms").Where(where).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get room query: %w", err)
	}

	room := &models.Room{}
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&room.ID, &room.Name, &room.Capacity); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRoomNotFound
		}
		return nil, fmt.Errorf("error getting room: %w", err)
	}
	return room, nil
}

// GetByID retrieves a room by ID
func (r *RoomRepository) GetByID(ctx context.Context, id int64) (*models.Room, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetByName retrieves a room by its unique name
func (r *RoomRepository) GetByName(ctx context.Context, name string) (*models.Room, error) {
	return r.getOne(ctx, squirrel.Eq{"name": name})
}

// List returns all rooms ordered by id
func (r *RoomRepository) List(ctx context.Context) ([]*models.Room, error) {
	sql, args, err := r.sb.Select("id", "name", "capacity").From("rooms").OrderBy("id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list rooms query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying rooms: %w", err)
	}
	defer rows.Close()

	rooms := []*models.Room{}
	for rows.Next() {
		room := &models.Room{}
		if err := rows.Scan(&room.ID, &room.Name, &room.Capacity); err != nil {
			return nil, fmt.Errorf("error scanning room row: %w", err)
		}
		rooms = append(rooms, room)
	}
	return rooms, rows.Err()
}

// Update overwrites name and capacity of an existing room
func (r *RoomRepository) Update(ctx context.Context, room *models.Room) error {
	sql, args, err := r.sb.Update("rooms").
		Set("name", room.Name).
		Set("capacity", room.Capacity).
		Where(squirrel.Eq{"id": room.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update room query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "rooms_name_key") {
			return apperrors.ErrRoomAlreadyExists
		}
		return fmt.Errorf("error updating room: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrRoomNotFound
	}
	return nil
}

// Delete removes a room; exams held there are removed by cascade
func (r *RoomRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("rooms").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete room query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting room: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrRoomNotFound
	}
	return nil
}
