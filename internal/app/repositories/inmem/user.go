package inmem

import (
	"context"
	"time"

	"github.com/yigit/examdesk/internal/app/models"
	"github.com/yigit/examdesk/internal/pkg/apperrors"
)

type userRepository struct {
	db *Store
}

func (repo *userRepository) Create(_ context.Context, user *models.User) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	for _, u := range repo.db.users {
		if u.Email == user.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	if user.StreamID != nil {
		if _, ok := repo.db.streams[*user.StreamID]; !ok {
			return apperrors.ErrStreamNotFound
		}
	}

	user.ID = repo.db.next("users")
	user.CreatedAt = time.Now().UTC()
	repo.db.users[user.ID] = *user
	return nil
}

func (repo *userRepository) GetByID(_ context.Context, id int64) (*models.User, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if u, ok := repo.db.users[id]; ok {
		return &u, nil
	}
	return nil, apperrors.ErrUserNotFound
}

func (repo *userRepository) GetByEmail(_ context.Context, email string) (*models.User, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	for _, u := range repo.db.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (repo *userRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	_, err := repo.GetByEmail(ctx, email)
	return err == nil, nil
}

func (repo *userRepository) List(_ context.Context) ([]*models.User, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	users := make([]*models.User, 0, len(repo.db.users))
	for _, id := range sortedIDs(repo.db.users) {
		u := repo.db.users[id]
		users = append(users, &u)
	}
	return users, nil
}

func (repo *userRepository) ExistsWithRole(_ context.Context, role models.Role) (bool, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	for _, u := range repo.db.users {
		if u.Role == role {
			return true, nil
		}
	}
	return false, nil
}
