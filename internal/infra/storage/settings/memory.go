package settings

import (
	"context"
	"sync"

	"github.com/m04kA/SST-VisitService/internal/domain"
)

// MemoryRepository хранит флаги в памяти процесса (когда БД выключена)
type MemoryRepository struct {
	mu    sync.Mutex
	flags map[domain.FlagKey]bool
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{flags: make(map[domain.FlagKey]bool)}
}

func (r *MemoryRepository) LoadAll(_ context.Context) (map[domain.FlagKey]bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make(map[domain.FlagKey]bool, len(r.flags))
	for k, v := range r.flags {
		out[k] = v
	}
	return out, nil
}

func (r *MemoryRepository) SaveAll(_ context.Context, flags map[domain.FlagKey]bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for k, v := range flags {
		r.flags[k] = v
	}
	return nil
}
