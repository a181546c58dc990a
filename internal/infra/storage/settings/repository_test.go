package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SST-VisitService/internal/domain"
)

func TestBuildUpsert(t *testing.T) {
	query, args, err := buildUpsert(map[domain.FlagKey]bool{
		domain.FlagEmailReminder24h:   false,
		domain.FlagEmailNotifications: true,
		"legacyFlag":                  true,
	})
	require.NoError(t, err)

	assert.Equal(t,
		"INSERT INTO settings_flags (key,enabled) VALUES ($1,$2),($3,$4),($5,$6) "+
			"ON CONFLICT (key) DO UPDATE SET enabled = EXCLUDED.enabled, updated_at = NOW()",
		query)
	assert.Equal(t, []interface{}{
		"emailNotifications", true,
		"emailReminder24h", false,
		"legacyFlag", true,
	}, args)
}

func TestMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	flags, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, flags)

	require.NoError(t, repo.SaveAll(ctx, map[domain.FlagKey]bool{domain.FlagAutoApprove: false}))

	flags, err = repo.LoadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[domain.FlagKey]bool{domain.FlagAutoApprove: false}, flags)

	flags[domain.FlagAutoApprove] = true
	again, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	assert.False(t, again[domain.FlagAutoApprove])
}

func TestMigrationsEmbedded(t *testing.T) {
	entries, err := migrations.ReadDir("migrations")
	require.NoError(t, err)
	assert.NotEmpty(t, entries)
}
