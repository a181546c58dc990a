package dbmetrics

import (
	"context"
	"database/sql"
	"time"

	"github.com/m04kA/SST-VisitService/pkg/metrics"
)

// DB обёртка над *sql.DB, которая пишет длительность запросов в метрики.
// metrics может быть nil, тогда обёртка просто проксирует вызовы.
type DB struct {
	db      *sql.DB
	metrics *metrics.Metrics
}

// Wrap оборачивает соединение с БД
func Wrap(db *sql.DB, m *metrics.Metrics) *DB {
	return &DB{db: db, metrics: m}
}

func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	defer func() { d.metrics.ObserveDBQuery("exec", time.Since(start)) }()
	return d.db.ExecContext(ctx, query, args...)
}

func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	defer func() { d.metrics.ObserveDBQuery("query", time.Since(start)) }()
	return d.db.QueryContext(ctx, query, args...)
}

func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	defer func() { d.metrics.ObserveDBQuery("query_row", time.Since(start)) }()
	return d.db.QueryRowContext(ctx, query, args...)
}

// BeginTx начинает транзакцию
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	tx, err := d.db.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return tx, nil
}

// CollectPoolStats периодически выгружает статистику пула соединений, пока не закрыт stop
func (d *DB) CollectPoolStats(interval time.Duration, stop <-chan struct{}) {
	if d.metrics == nil {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				stats := d.db.Stats()
				d.metrics.SetDBConnections(stats.OpenConnections, stats.InUse)
			case <-stop:
				return
			}
		}
	}()
}
