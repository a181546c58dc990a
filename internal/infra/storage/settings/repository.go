package settings

import (
	"context"
	"fmt"
	"sort"

	"github.com/m04kA/SST-VisitService/internal/domain"
	"github.com/m04kA/SST-VisitService/pkg/dbmetrics"
	"github.com/m04kA/SST-VisitService/pkg/psqlbuilder"
)

const table = "settings_flags"

// Repository хранит флаги настроек в PostgreSQL (ключ -> bool)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// LoadAll загружает сохранённые флаги.
// Если в контексте передана активная транзакция, использует её.
func (r *Repository) LoadAll(ctx context.Context) (map[domain.FlagKey]bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("key", "enabled").
		From(table).
		OrderBy("key ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: LoadAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: LoadAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	flags := make(map[domain.FlagKey]bool)
	for rows.Next() {
		var (
			key     string
			enabled bool
		)
		if err := rows.Scan(&key, &enabled); err != nil {
			return nil, fmt.Errorf("%w: LoadAll - scan row: %v", ErrScanRow, err)
		}
		flags[domain.FlagKey(key)] = enabled
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: LoadAll - rows error: %v", ErrScanRow, err)
	}

	return flags, nil
}

// SaveAll сохраняет все флаги одним upsert-запросом
func (r *Repository) SaveAll(ctx context.Context, flags map[domain.FlagKey]bool) error {
	if len(flags) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildUpsert(flags)
	if err != nil {
		return fmt.Errorf("%w: SaveAll - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: SaveAll - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}

func buildUpsert(flags map[domain.FlagKey]bool) (string, []interface{}, error) {
	insert := psqlbuilder.Insert(table).Columns("key", "enabled")
	for _, key := range orderedKeys(flags) {
		insert = insert.Values(string(key), flags[key])
	}

	return insert.
		Suffix("ON CONFLICT (key) DO UPDATE SET enabled = EXCLUDED.enabled, updated_at = NOW()").
		ToSql()
}

// orderedKeys известные ключи в порядке отображения, затем остальные по алфавиту
func orderedKeys(flags map[domain.FlagKey]bool) []domain.FlagKey {
	keys := make([]domain.FlagKey, 0, len(flags))
	seen := make(map[domain.FlagKey]bool, len(flags))

	for _, key := range domain.FlagOrder {
		if _, ok := flags[key]; ok {
			keys = append(keys, key)
			seen[key] = true
		}
	}

	var rest []domain.FlagKey
	for key := range flags {
		if !seen[key] {
			rest = append(rest, key)
		}
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i] < rest[j] })

	return append(keys, rest...)
}
