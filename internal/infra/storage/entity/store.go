package entity

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/m04kA/SST-VisitService/internal/domain"
)

// Snapshot начальное состояние хранилища
type Snapshot struct {
	Users        []*domain.User
	Companies    []*domain.Company
	Appointments []*domain.Appointment // новые первыми
}

// Store in-memory хранилище пользователей, компаний и визитов.
// Все методы возвращают копии, изменения видны сразу.
type Store struct {
	mu sync.RWMutex

	users        []*domain.User
	companies    []*domain.Company
	appointments []*domain.Appointment

	newID func() string
}

// NewStore создает хранилище из снимка (снимок копируется)
func NewStore(snapshot Snapshot) *Store {
	s := &Store{
		users:        make([]*domain.User, 0, len(snapshot.Users)),
		companies:    make([]*domain.Company, 0, len(snapshot.Companies)),
		appointments: make([]*domain.Appointment, 0, len(snapshot.Appointments)),
		newID:        uuid.NewString,
	}

	for _, u := range snapshot.Users {
		s.users = append(s.users, u.Clone())
	}
	for _, c := range snapshot.Companies {
		s.companies = append(s.companies, c.Clone())
	}
	for _, a := range snapshot.Appointments {
		s.appointments = append(s.appointments, a.Clone())
	}

	return s
}

type txKey struct{}

// DoSerializable выполняет fn под эксклюзивной блокировкой хранилища.
// Вызовы методов хранилища с контекстом fn не блокируются повторно,
// поэтому проверка и запись внутри fn выполняются атомарно.
func (s *Store) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.inTx(ctx) {
		return fn(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return fn(context.WithValue(ctx, txKey{}, s))
}

func (s *Store) inTx(ctx context.Context) bool {
	owner, ok := ctx.Value(txKey{}).(*Store)
	return ok && owner == s
}

func (s *Store) readLock(ctx context.Context) func() {
	if s.inTx(ctx) {
		return func() {}
	}
	s.mu.RLock()
	return s.mu.RUnlock
}

func (s *Store) writeLock(ctx context.Context) func() {
	if s.inTx(ctx) {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}
