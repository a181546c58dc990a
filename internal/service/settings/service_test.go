package settings

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SST-VisitService/internal/domain"
	storage "github.com/m04kA/SST-VisitService/internal/infra/storage/settings"
	"github.com/m04kA/SST-VisitService/pkg/logger"
)

type fakeNotifier struct {
	mu       sync.Mutex
	success  []string
	failures []string
}

func (n *fakeNotifier) Success(_, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.success = append(n.success, message)
}

func (n *fakeNotifier) Failure(_, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.failures = append(n.failures, message)
}

type failingRepository struct {
	loadErr error
	saveErr error
}

func (r *failingRepository) LoadAll(context.Context) (map[domain.FlagKey]bool, error) {
	return nil, r.loadErr
}

func (r *failingRepository) SaveAll(context.Context, map[domain.FlagKey]bool) error {
	return r.saveErr
}

type countingTx struct{ calls int }

func (m *countingTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

var (
	admin = &domain.User{ID: "admin_1", Role: domain.RoleAdmin}
	org   = &domain.User{ID: "comp_1", Role: domain.RoleOrganization}
)

func TestToggle_DoubleToggleRestoresStoredValue(t *testing.T) {
	ctx := context.Background()
	repo := storage.NewMemoryRepository()
	svc := NewService(repo, nil, &fakeNotifier{}, nil, logger.NewNop())

	before := svc.Snapshot()

	for _, key := range domain.FlagOrder {
		_, err := svc.Toggle(ctx, admin, string(key))
		require.NoError(t, err)
		_, err = svc.Toggle(ctx, admin, string(key))
		require.NoError(t, err)
	}

	assert.Equal(t, before, svc.Snapshot())
}

func TestToggle_ParentMasksChild(t *testing.T) {
	ctx := context.Background()
	svc := NewService(storage.NewMemoryRepository(), nil, &fakeNotifier{}, nil, logger.NewNop())

	require.True(t, svc.IsEffective(domain.FlagEmailReminder24h))

	state, err := svc.Toggle(ctx, admin, string(domain.FlagEmailNotifications))
	require.NoError(t, err)
	assert.False(t, state.Stored)
	assert.False(t, svc.IsEffective(domain.FlagEmailReminder24h))

	child := svc.Snapshot()[2]
	assert.Equal(t, domain.FlagEmailReminder24h, child.Key)
	require.NotNil(t, child.Parent)
	assert.Equal(t, domain.FlagEmailNotifications, *child.Parent)
	assert.True(t, child.Stored)
	assert.False(t, child.Effective)

	_, err = svc.Toggle(ctx, admin, string(domain.FlagEmailNotifications))
	require.NoError(t, err)
	assert.True(t, svc.IsEffective(domain.FlagEmailReminder24h))
}

func TestToggle_PersistsThroughTransaction(t *testing.T) {
	ctx := context.Background()
	repo := storage.NewMemoryRepository()
	tx := &countingTx{}
	notifier := &fakeNotifier{}
	svc := NewService(repo, tx, notifier, nil, logger.NewNop())

	_, err := svc.Toggle(ctx, admin, string(domain.FlagDataSharing))
	require.NoError(t, err)
	assert.Equal(t, 1, tx.calls)
	assert.Equal(t, []string{msgSaved}, notifier.success)

	stored, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	assert.True(t, stored[domain.FlagDataSharing])
	assert.Len(t, stored, len(domain.FlagOrder))

	reloaded := NewService(repo, nil, &fakeNotifier{}, nil, logger.NewNop())
	reloaded.Load(ctx)
	assert.True(t, reloaded.IsEffective(domain.FlagDataSharing))
}

func TestToggle_RevertsOnSaveFailure(t *testing.T) {
	ctx := context.Background()
	notifier := &fakeNotifier{}
	svc := NewService(&failingRepository{saveErr: errors.New("db down")}, nil, notifier, nil, logger.NewNop())

	_, err := svc.Toggle(ctx, admin, string(domain.FlagAutoApprove))
	assert.ErrorIs(t, err, ErrInternal)
	assert.True(t, svc.IsEffective(domain.FlagAutoApprove))
	assert.Equal(t, []string{msgSaveFailed}, notifier.failures)
}

// gatedRepository блокирует первое сохранение до закрытия release
type gatedRepository struct {
	entered chan struct{}
	release chan struct{}
	once    sync.Once

	mu    sync.Mutex
	saved map[domain.FlagKey]bool
	fail  bool
}

func (r *gatedRepository) LoadAll(context.Context) (map[domain.FlagKey]bool, error) {
	return nil, errors.New("empty")
}

func (r *gatedRepository) SaveAll(_ context.Context, flags map[domain.FlagKey]bool) error {
	first := false
	r.once.Do(func() { first = true })
	if first {
		close(r.entered)
		<-r.release
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if first && r.fail {
		return errors.New("db down")
	}
	r.saved = copyFlags(flags)
	return nil
}

func TestToggle_ConcurrentTogglesKeepStoreInSync(t *testing.T) {
	for _, firstFails := range []bool{false, true} {
		repo := &gatedRepository{entered: make(chan struct{}), release: make(chan struct{}), fail: firstFails}
		svc := NewService(repo, nil, &fakeNotifier{}, nil, logger.NewNop())
		ctx := context.Background()

		var wg sync.WaitGroup
		errs := make([]error, 2)
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[0] = svc.Toggle(ctx, admin, string(domain.FlagDataSharing))
		}()
		<-repo.entered

		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[1] = svc.Toggle(ctx, admin, string(domain.FlagDataSharing))
		}()
		time.Sleep(20 * time.Millisecond)
		close(repo.release)
		wg.Wait()

		require.NoError(t, errs[1])
		if firstFails {
			assert.ErrorIs(t, errs[0], ErrInternal)
			assert.True(t, svc.IsEffective(domain.FlagDataSharing), "failed toggle must not undo the successful one")
		} else {
			require.NoError(t, errs[0])
			assert.False(t, svc.IsEffective(domain.FlagDataSharing))
		}

		repo.mu.Lock()
		persisted := repo.saved[domain.FlagDataSharing]
		repo.mu.Unlock()
		assert.Equal(t, svc.IsEffective(domain.FlagDataSharing), persisted)
	}
}

func TestToggle_Rejections(t *testing.T) {
	ctx := context.Background()
	svc := NewService(storage.NewMemoryRepository(), nil, &fakeNotifier{}, nil, logger.NewNop())

	_, err := svc.Toggle(ctx, org, string(domain.FlagAutoApprove))
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.Toggle(ctx, admin, "darkMode")
	assert.ErrorIs(t, err, ErrUnknownFlag)
}

func TestLoad_FallsBackToDefaults(t *testing.T) {
	svc := NewService(
		&failingRepository{loadErr: errors.New("no table")},
		nil,
		&fakeNotifier{},
		map[string]bool{"smsNotifications": true, "unknown": true},
		logger.NewNop(),
	)
	svc.Load(context.Background())

	assert.True(t, svc.IsEffective(domain.FlagAutoApprove))
	assert.True(t, svc.IsEffective(domain.FlagSMSNotifications))
	assert.False(t, svc.IsEffective(domain.FlagDataSharing))
	assert.Len(t, svc.Snapshot(), len(domain.FlagOrder))
}

func TestIsEffective_StopsOnCycle(t *testing.T) {
	svc := NewService(storage.NewMemoryRepository(), nil, &fakeNotifier{}, nil, logger.NewNop())
	svc.parents = map[domain.FlagKey]domain.FlagKey{
		domain.FlagAutoApprove: domain.FlagDataSharing,
		domain.FlagDataSharing: domain.FlagAutoApprove,
	}
	svc.stored[domain.FlagDataSharing] = true

	assert.False(t, svc.IsEffective(domain.FlagAutoApprove))
}
