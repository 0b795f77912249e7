package dbmetrics

import (
	"context"
	"database/sql"
	"time"

	"github.com/m04kA/SMC-ResourcePlanner/pkg/metrics"
)

// DefaultStatsInterval период сбора статистики connection pool
const DefaultStatsInterval = 15 * time.Second

// DB обертка над *sql.DB, отдающая транзакции как TxExecutor
type DB struct {
	*sql.DB
}

// Wrap оборачивает *sql.DB без сбора метрик
func Wrap(db *sql.DB) *DB {
	return &DB{DB: db}
}

// WrapWithDefault оборачивает *sql.DB и запускает сбор метрик connection pool
// с интервалом DefaultStatsInterval до закрытия stop.
func WrapWithDefault(db *sql.DB, m *metrics.Metrics, serviceName string, stop <-chan struct{}) *DB {
	return WrapWithInterval(db, m, serviceName, DefaultStatsInterval, stop)
}

// WrapWithInterval как WrapWithDefault, но с заданным интервалом
func WrapWithInterval(db *sql.DB, m *metrics.Metrics, serviceName string, interval time.Duration, stop <-chan struct{}) *DB {
	wrapped := Wrap(db)
	if m != nil {
		wrapped.collectStats(m, serviceName)
		go wrapped.runStatsCollector(m, serviceName, interval, stop)
	}
	return wrapped
}

// BeginTx начинает транзакцию
func (db *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	tx, err := db.DB.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return tx, nil
}

func (db *DB) runStatsCollector(m *metrics.Metrics, serviceName string, interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			db.collectStats(m, serviceName)
		}
	}
}

func (db *DB) collectStats(m *metrics.Metrics, serviceName string) {
	stats := db.Stats()
	m.DBOpenConnections.WithLabelValues(serviceName).Set(float64(stats.OpenConnections))
	m.DBInUse.WithLabelValues(serviceName).Set(float64(stats.InUse))
	m.DBIdle.WithLabelValues(serviceName).Set(float64(stats.Idle))
	m.DBWaitCount.WithLabelValues(serviceName).Set(float64(stats.WaitCount))
}
