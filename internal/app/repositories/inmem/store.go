// Package inmem keeps repository data in process memory. It backs the service
// and router tests and mirrors the constraints the PostgreSQL schema enforces.
package inmem

import (
	"sort"
	"sync"

	"github.com/yigit/examdesk/internal/app/models"
	"github.com/yigit/examdesk/internal/app/repositories"
)

// Store is the shared in-memory database behind every repository.
type Store struct {
	mutex sync.RWMutex
	seq   map[string]int64

	users        map[int64]models.User
	streams      map[int64]models.Stream
	subjects     map[int64]models.Subject
	rooms        map[int64]models.Room
	exams        map[int64]models.Exam
	convocations map[int64]models.Convocation
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		seq:          map[string]int64{},
		users:        map[int64]models.User{},
		streams:      map[int64]models.Stream{},
		subjects:     map[int64]models.Subject{},
		rooms:        map[int64]models.Room{},
		exams:        map[int64]models.Exam{},
		convocations: map[int64]models.Convocation{},
	}
}

// NewRepositories wires every repository to a fresh Store.
func NewRepositories() *repositories.Repositories {
	return NewStore().Repositories()
}

// Repositories wires every repository to s.
func (s *Store) Repositories() *repositories.Repositories {
	return &repositories.Repositories{
		UserRepository:        &userRepository{s},
		StreamRepository:      &streamRepository{s},
		SubjectRepository:     &subjectRepository{s},
		RoomRepository:        &roomRepository{s},
		ExamRepository:        &examRepository{s},
		ConvocationRepository: &convocationRepository{s},
	}
}

// next must be called with the write lock held.
func (s *Store) next(table string) int64 {
	s.seq[table]++
	return s.seq[table]
}

func sortedIDs[T any](table map[int64]T) []int64 {
	ids := make([]int64, 0, len(table))
	for id := range table {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
