package inmem

import (
	"context"

	"github.com/yigit/examdesk/internal/app/models"
	"github.com/yigit/examdesk/internal/app/repositories"
	"github.com/yigit/examdesk/internal/pkg/apperrors"
)

// deleteExam must be called with the write lock held.
func (s *Store) deleteExam(id int64) {
	delete(s.exams, id)
	for cid, c := range s.convocations {
		if c.ExamID == id {
			delete(s.convocations, cid)
		}
	}
}

type examRepository struct {
	db *Store
}

func (repo *examRepository) referencesExist(exam *models.Exam) bool {
	_, subjectOK := repo.db.subjects[exam.SubjectID]
	_, roomOK := repo.db.rooms[exam.RoomID]
	_, streamOK := repo.db.streams[exam.StreamID]
	teacherOK := true
	if exam.TeacherID != nil {
		_, teacherOK = repo.db.users[*exam.TeacherID]
	}
	return subjectOK && roomOK && streamOK && teacherOK
}

func (repo *examRepository) detail(e models.Exam) *models.ExamDetail {
	return &models.ExamDetail{
		Exam:    e,
		Subject: repo.db.subjects[e.SubjectID],
		Stream:  repo.db.streams[e.StreamID],
		Room:    repo.db.rooms[e.RoomID],
	}
}

func (repo *examRepository) Create(_ context.Context, exam *models.Exam) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if !repo.referencesExist(exam) {
		return apperrors.ErrExamReferences
	}
	exam.ID = repo.db.next("exams")
	repo.db.exams[exam.ID] = *exam
	return nil
}

func (repo *examRepository) GetByID(_ context.Context, id int64) (*models.ExamDetail, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	e, ok := repo.db.exams[id]
	if !ok {
		return nil, apperrors.ErrExamNotFound
	}
	return repo.detail(e), nil
}

func (repo *examRepository) List(_ context.Context, filter repositories.ExamFilter) ([]*models.ExamDetail, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	exams := []*models.ExamDetail{}
	for _, id := range sortedIDs(repo.db.exams) {
		e := repo.db.exams[id]
		if filter.StreamID != nil && e.StreamID != *filter.StreamID {
			continue
		}
		if filter.TeacherID != nil && (e.TeacherID == nil || *e.TeacherID != *filter.TeacherID) {
			continue
		}
		exams = append(exams, repo.detail(e))
	}
	return exams, nil
}

func (repo *examRepository) Update(_ context.Context, exam *models.Exam) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.exams[exam.ID]; !ok {
		return apperrors.ErrExamNotFound
	}
	if !repo.referencesExist(exam) {
		return apperrors.ErrExamReferences
	}
	repo.db.exams[exam.ID] = *exam
	return nil
}

func (repo *examRepository) Delete(_ context.Context, id int64) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.exams[id]; !ok {
		return apperrors.ErrExamNotFound
	}
	repo.db.deleteExam(id)
	return nil
}

type convocationRepository struct {
	db *Store
}

func (repo *convocationRepository) find(studentID, examID int64) (models.Convocation, bool) {
	for _, c := range repo.db.convocations {
		if c.StudentID == studentID && c.ExamID == examID {
			return c, true
		}
	}
	return models.Convocation{}, false
}

func (repo *convocationRepository) GetByStudentAndExam(_ context.Context, studentID, examID int64) (*models.Convocation, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if c, ok := repo.find(studentID, examID); ok {
		return &c, nil
	}
	return nil, apperrors.ErrConvocationNotFound
}

func (repo *convocationRepository) Create(_ context.Context, c *models.Convocation) (*models.Convocation, bool, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if existing, ok := repo.find(c.StudentID, c.ExamID); ok {
		return &existing, false, nil
	}
	if _, ok := repo.db.exams[c.ExamID]; !ok {
		return nil, false, apperrors.ErrExamNotFound
	}
	stored := *c
	stored.ID = repo.db.next("convocations")
	repo.db.convocations[stored.ID] = stored
	return &stored, true, nil
}
