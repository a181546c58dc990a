package settings

import (
	"context"
	"fmt"
	"sync"

	"github.com/m04kA/SST-VisitService/internal/domain"
	"github.com/m04kA/SST-VisitService/internal/service/visibility"
)

const (
	msgSaved      = "Settings saved."
	msgSaveFailed = "Could not save settings. Please try again."
)

// Service граф флагов настроек: хранимые значения и зависимости от родителей
type Service struct {
	repo      Repository
	txManager TransactionManager
	notifier  Notifier
	logger    Logger
	parents   map[domain.FlagKey]domain.FlagKey
	defaults  map[domain.FlagKey]bool

	saveMu sync.Mutex // сериализует Toggle и Load
	mu     sync.RWMutex
	stored map[domain.FlagKey]bool
}

// NewService создает сервис настроек.
// overrides заменяет значения по умолчанию для известных ключей, txManager может быть nil.
func NewService(repo Repository, txManager TransactionManager, notifier Notifier, overrides map[string]bool, logger Logger) *Service {
	defaults := domain.DefaultFlags()
	for k, v := range overrides {
		key := domain.FlagKey(k)
		if domain.IsKnownFlag(key) {
			defaults[key] = v
		}
	}

	return &Service{
		repo:      repo,
		txManager: txManager,
		notifier:  notifier,
		logger:    logger,
		parents:   domain.FlagParents,
		defaults:  defaults,
		stored:    copyFlags(defaults),
	}
}

// Load читает сохраненные флаги. При ошибке остаются значения по умолчанию.
func (s *Service) Load(ctx context.Context) {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	flags := copyFlags(s.defaults)

	loaded, err := s.repo.LoadAll(ctx)
	if err != nil {
		s.logger.Warn("LoadSettings: falling back to defaults: %v", err)
	} else {
		for k, v := range loaded {
			if domain.IsKnownFlag(k) {
				flags[k] = v
			}
		}
	}

	s.mu.Lock()
	s.stored = flags
	s.mu.Unlock()

	s.logger.Info("LoadSettings: loaded=%d", len(loaded))
}

// IsEffective возвращает хранимое значение флага с учетом цепочки родителей
func (s *Service) IsEffective(key domain.FlagKey) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.effective(key, make(map[domain.FlagKey]bool))
}

func (s *Service) effective(key domain.FlagKey, seen map[domain.FlagKey]bool) bool {
	if seen[key] {
		// цикл в объявлениях родителей
		return false
	}
	seen[key] = true

	if !s.stored[key] {
		return false
	}
	parent, ok := s.parents[key]
	if !ok {
		return true
	}
	return s.effective(parent, seen)
}

// Toggle переключает хранимое значение флага и сохраняет набор.
// Дочерние флаги не меняются.
func (s *Service) Toggle(ctx context.Context, actor *domain.User, key string) (*FlagState, error) {
	if actor == nil || !visibility.CapabilitiesFor(actor.Role).CanManageSettings {
		s.logger.Warn("ToggleSetting: access denied, key=%s", key)
		return nil, ErrAccessDenied
	}

	flag := domain.FlagKey(key)
	if !domain.IsKnownFlag(flag) {
		s.logger.Warn("ToggleSetting: unknown key=%s", key)
		return nil, fmt.Errorf("%w: %s", ErrUnknownFlag, key)
	}

	// переключения выполняются по одному: сохранение и память не расходятся
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	s.mu.RLock()
	snapshot := copyFlags(s.stored)
	s.mu.RUnlock()
	snapshot[flag] = !snapshot[flag]

	if err := s.save(ctx, snapshot); err != nil {
		s.logger.Error("ToggleSetting: failed to save key=%s: %v", key, err)
		s.notifier.Failure(actor.ID, msgSaveFailed)
		return nil, fmt.Errorf("%w: failed to save settings: %v", ErrInternal, err)
	}

	s.mu.Lock()
	s.stored = snapshot
	s.mu.Unlock()

	s.notifier.Success(actor.ID, msgSaved)
	s.logger.Info("ToggleSetting: key=%s, stored=%t", key, snapshot[flag])

	state := s.state(flag)
	return &state, nil
}

// Snapshot возвращает все флаги в порядке отображения
func (s *Service) Snapshot() []FlagState {
	out := make([]FlagState, 0, len(domain.FlagOrder))
	for _, key := range domain.FlagOrder {
		out = append(out, s.state(key))
	}
	return out
}

func (s *Service) state(key domain.FlagKey) FlagState {
	s.mu.RLock()
	stored := s.stored[key]
	s.mu.RUnlock()

	st := FlagState{Key: key, Stored: stored, Effective: s.IsEffective(key)}
	if parent, ok := s.parents[key]; ok {
		p := parent
		st.Parent = &p
	}
	return st
}

func (s *Service) save(ctx context.Context, flags map[domain.FlagKey]bool) error {
	if s.txManager == nil {
		return s.repo.SaveAll(ctx, flags)
	}
	return s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		return s.repo.SaveAll(txCtx, flags)
	})
}

func copyFlags(in map[domain.FlagKey]bool) map[domain.FlagKey]bool {
	out := make(map[domain.FlagKey]bool, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
