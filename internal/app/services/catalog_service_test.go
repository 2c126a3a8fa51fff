package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/examdesk/internal/app/models"
	"github.com/yigit/examdesk/internal/pkg/apperrors"
)

func TestCreateStream(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	stream, err := f.svc.Catalog.CreateStream(ctx, "  IMSD ")
	require.NoError(t, err)
	assert.Equal(t, "IMSD", stream.Name)

	_, err = f.svc.Catalog.CreateStream(ctx, "IMSD")
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	_, err = f.svc.Catalog.CreateStream(ctx, " ")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestSubjectsByStream(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	other, err := f.svc.Catalog.CreateStream(ctx, "IMSD")
	require.NoError(t, err)
	_, err = f.svc.Catalog.CreateSubject(ctx, &models.Subject{Name: "EDP", StreamID: other.ID})
	require.NoError(t, err)

	all, err := f.svc.Catalog.ListSubjects(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	filtered, err := f.svc.Catalog.ListSubjects(ctx, &other.ID)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "EDP", filtered[0].Name)

	_, err = f.svc.Catalog.CreateSubject(ctx, &models.Subject{Name: "X", StreamID: 999})
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestRooms(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	room, err := f.svc.Catalog.CreateRoom(ctx, &models.Room{Name: "Salle 1"})
	require.NoError(t, err)
	assert.Equal(t, models.DefaultRoomCapacity, room.Capacity)

	_, err = f.svc.Catalog.CreateRoom(ctx, &models.Room{Name: "Salle 1", Capacity: 40})
	assert.ErrorIs(t, err, apperrors.ErrRoomAlreadyExists)

	updated, err := f.svc.Catalog.UpdateRoom(ctx, room.ID, &models.Room{Name: "Salle 1 bis", Capacity: 45})
	require.NoError(t, err)
	assert.Equal(t, 45, updated.Capacity)

	_, err = f.svc.Catalog.UpdateRoom(ctx, room.ID, &models.Room{Name: "Amphi A", Capacity: 45})
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	_, err = f.svc.Catalog.CreateRoom(ctx, &models.Room{Name: "Neg", Capacity: -1})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	require.NoError(t, f.svc.Catalog.DeleteRoom(ctx, room.ID))
	assert.ErrorIs(t, f.svc.Catalog.DeleteRoom(ctx, room.ID), apperrors.ErrResourceNotFound)

	rooms, err := f.svc.Catalog.ListRooms(ctx)
	require.NoError(t, err)
	assert.Len(t, rooms, 1)
}
