package inmem

import (
	"context"

	"github.com/yigit/examdesk/internal/app/models"
	"github.com/yigit/examdesk/internal/pkg/apperrors"
)

type streamRepository struct {
	db *Store
}

func (repo *streamRepository) Create(_ context.Context, stream *models.Stream) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	for _, s := range repo.db.streams {
		if s.Name == stream.Name {
			return apperrors.ErrStreamAlreadyExists
		}
	}
	stream.ID = repo.db.next("streams")
	repo.db.streams[stream.ID] = *stream
	return nil
}

func (repo *streamRepository) GetByID(_ context.Context, id int64) (*models.Stream, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if s, ok := repo.db.streams[id]; ok {
		return &s, nil
	}
	return nil, apperrors.ErrStreamNotFound
}

func (repo *streamRepository) GetByName(_ context.Context, name string) (*models.Stream, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	for _, s := range repo.db.streams {
		if s.Name == name {
			return &s, nil
		}
	}
	return nil, apperrors.ErrStreamNotFound
}

func (repo *streamRepository) List(_ context.Context) ([]*models.Stream, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	streams := make([]*models.Stream, 0, len(repo.db.streams))
	for _, id := range sortedIDs(repo.db.streams) {
		s := repo.db.streams[id]
		streams = append(streams, &s)
	}
	return streams, nil
}

type subjectRepository struct {
	db *Store
}

func (repo *subjectRepository) Create(_ context.Context, subject *models.Subject) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.streams[subject.StreamID]; !ok {
		return apperrors.ErrStreamNotFound
	}
	subject.ID = repo.db.next("subjects")
	repo.db.subjects[subject.ID] = *subject
	return nil
}

func (repo *subjectRepository) GetByID(_ context.Context, id int64) (*models.Subject, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if s, ok := repo.db.subjects[id]; ok {
		return &s, nil
	}
	return nil, apperrors.ErrSubjectNotFound
}

func (repo *subjectRepository) List(_ context.Context, streamID *int64) ([]*models.Subject, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	subjects := []*models.Subject{}
	for _, id := range sortedIDs(repo.db.subjects) {
		s := repo.db.subjects[id]
		if streamID != nil && s.StreamID != *streamID {
			continue
		}
		subjects = append(subjects, &s)
	}
	return subjects, nil
}

func (repo *subjectRepository) Exists(_ context.Context, streamID int64, name string) (bool, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	for _, s := range repo.db.subjects {
		if s.StreamID == streamID && s.Name == name {
			return true, nil
		}
	}
	return false, nil
}

type roomRepository struct {
	db *Store
}

func (repo *roomRepository) nameTaken(name string, exceptID int64) bool {
	for _, r := range repo.db.rooms {
		if r.Name == name && r.ID != exceptID {
			return true
		}
	}
	return false
}

func (repo *roomRepository) Create(_ context.Context, room *models.Room) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if repo.nameTaken(room.Name, 0) {
		return apperrors.ErrRoomAlreadyExists
	}
	room.ID = repo.db.next("rooms")
	repo.db.rooms[room.ID] = *room
	return nil
}

func (repo *roomRepository) GetByID(_ context.Context, id int64) (*models.Room, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if r, ok := repo.db.rooms[id]; ok {
		return &r, nil
	}
	return nil, apperrors.ErrRoomNotFound
}

func (repo *roomRepository) GetByName(_ context.Context, name string) (*models.Room, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	for _, r := range repo.db.rooms {
		if r.Name == name {
			return &r, nil
		}
	}
	return nil, apperrors.ErrRoomNotFound
}

func (repo *roomRepository) List(_ context.Context) ([]*models.Room, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	rooms := make([]*models.Room, 0, len(repo.db.rooms))
	for _, id := range sortedIDs(repo.db.rooms) {
		r := repo.db.rooms[id]
		rooms = append(rooms, &r)
	}
	return rooms, nil
}

func (repo *roomRepository) Update(_ context.Context, room *models.Room) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.rooms[room.ID]; !ok {
		return apperrors.ErrRoomNotFound
	}
	if repo.nameTaken(room.Name, room.ID) {
		return apperrors.ErrRoomAlreadyExists
	}
	repo.db.rooms[room.ID] = *room
	return nil
}

func (repo *roomRepository) Delete(_ context.Context, id int64) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.rooms[id]; !ok {
		return apperrors.ErrRoomNotFound
	}
	delete(repo.db.rooms, id)
	for examID, e := range repo.db.exams {
		if e.RoomID == id {
			repo.db.deleteExam(examID)
		}
	}
	return nil
}
