package dbmetrics

import (
	"context"
	"database/sql"
	"time"

	"github.com/quickcourt/QC-BookingService/pkg/metrics"
)

// DBExecutor минимальный интерфейс выполнения запросов.
// Ему удовлетворяют *sql.DB, *sql.Tx, *dbmetrics.DB и *dbmetrics.Tx.
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// TxExecutor интерфейс исполнителя внутри транзакции
type TxExecutor interface {
	DBExecutor
	Commit() error
	Rollback() error
}

// DB обертка над *sql.DB, собирающая метрики запросов и connection pool
type DB struct {
	db      *sql.DB
	metrics *metrics.Metrics
	name    string
}

// Wrap оборачивает *sql.DB сборщиком метрик
func Wrap(db *sql.DB, m *metrics.Metrics, name string) *DB {
	return &DB{db: db, metrics: m, name: name}
}

// WrapWithDefault оборачивает *sql.DB и запускает периодический сбор
// статистики connection pool. Горутина останавливается по закрытию stop.
func WrapWithDefault(db *sql.DB, m *metrics.Metrics, name string, stop <-chan struct{}) *DB {
	wrapped := Wrap(db, m, name)
	go wrapped.collectPoolStats(15*time.Second, stop)
	return wrapped
}

func (d *DB) collectPoolStats(interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			stats := d.db.Stats()
			d.metrics.DBConnectionsOpen.WithLabelValues(d.name).Set(float64(stats.OpenConnections))
			d.metrics.DBConnectionsIdle.WithLabelValues(d.name).Set(float64(stats.Idle))
			d.metrics.DBConnectionsInUse.WithLabelValues(d.name).Set(float64(stats.InUse))
		}
	}
}

func (d *DB) observe(operation string, start time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	d.metrics.ObserveDBQuery(operation, status, time.Since(start))
}

// ExecContext выполняет запрос без результата, фиксируя метрики
func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := d.db.ExecContext(ctx, query, args...)
	d.observe("exec", start, err)
	return res, err
}

// QueryContext выполняет запрос с множественным результатом, фиксируя метрики
func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.observe("query", start, err)
	return rows, err
}

// QueryRowContext выполняет запрос с одной строкой результата
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.observe("query_row", start, nil)
	return row
}

// BeginTx начинает транзакцию; возвращаемый исполнитель тоже собирает метрики
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	tx, err := d.db.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &Tx{tx: tx, parent: d}, nil
}

// Tx обертка над *sql.Tx с метриками
type Tx struct {
	tx     *sql.Tx
	parent *DB
}

// ExecContext выполняет запрос в транзакции
func (t *Tx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := t.tx.ExecContext(ctx, query, args...)
	t.parent.observe("tx_exec", start, err)
	return res, err
}

// QueryContext выполняет запрос в транзакции
func (t *Tx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := t.tx.QueryContext(ctx, query, args...)
	t.parent.observe("tx_query", start, err)
	return rows, err
}

// QueryRowContext выполняет запрос в транзакции
func (t *Tx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := t.tx.QueryRowContext(ctx, query, args...)
	t.parent.observe("tx_query_row", start, nil)
	return row
}

// Commit фиксирует транзакцию
func (t *Tx) Commit() error {
	return t.tx.Commit()
}

// Rollback откатывает транзакцию
func (t *Tx) Rollback() error {
	return t.tx.Rollback()
}

// SqlTxWrapper адаптер *sql.Tx к интерфейсу TxExecutor (без метрик)
type SqlTxWrapper struct {
	*sql.Tx
}
