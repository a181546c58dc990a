package entity

import (
	"context"
	"strings"

	"github.com/m04kA/SST-VisitService/internal/domain"
)

// ListUsers возвращает пользователей в порядке добавления
func (s *Store) ListUsers(ctx context.Context) []*domain.User {
	unlock := s.readLock(ctx)
	defer unlock()

	out := make([]*domain.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u.Clone())
	}
	return out
}

func (s *Store) GetUser(ctx context.Context, id string) (*domain.User, error) {
	unlock := s.readLock(ctx)
	defer unlock()

	idx := s.userIndex(id)
	if idx < 0 {
		return nil, ErrUserNotFound
	}
	return s.users[idx].Clone(), nil
}

// FindUserByEmail ищет пользователя по email без учета регистра
func (s *Store) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	unlock := s.readLock(ctx)
	defer unlock()

	needle := strings.TrimSpace(email)
	for _, u := range s.users {
		if strings.EqualFold(u.Email, needle) {
			return u.Clone(), nil
		}
	}
	return nil, ErrUserNotFound
}

// UpdateUserProfile меняет имя, email и аватар. Роль и прочие поля не меняются.
func (s *Store) UpdateUserProfile(ctx context.Context, id, name, email string, avatar *string) (*domain.User, error) {
	unlock := s.writeLock(ctx)
	defer unlock()

	idx := s.userIndex(id)
	if idx < 0 {
		return nil, ErrUserNotFound
	}

	for _, u := range s.users {
		if u.ID != id && strings.EqualFold(u.Email, email) {
			return nil, ErrEmailTaken
		}
	}

	u := s.users[idx]
	u.Name = name
	u.Email = email
	if avatar != nil {
		v := *avatar
		u.Avatar = &v
	}
	return u.Clone(), nil
}

func (s *Store) userIndex(id string) int {
	for i, u := range s.users {
		if u.ID == id {
			return i
		}
	}
	return -1
}
