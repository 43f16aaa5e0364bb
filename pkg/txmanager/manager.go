package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/quickcourt/QC-BookingService/pkg/dbmetrics"
)

// Код ошибки PostgreSQL для конфликта сериализации
const pgSerializationFailure = "40001"

// Количество повторов сериализуемой транзакции при конфликте
const maxSerializableRetries = 3

// ErrTxFailed возвращается, когда транзакция не завершилась успешно
var ErrTxFailed = errors.New("txmanager: transaction failed")

// TransactionManager управляет транзакциями поверх *dbmetrics.DB.
// Функция fn получает контекст с активной транзакцией; репозитории
// подхватывают её через dbmetrics.GetExecutor.
type TransactionManager struct {
	db *dbmetrics.DB
}

// NewTransactionManager создает менеджер транзакций
func NewTransactionManager(db *dbmetrics.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// Do выполняет fn в транзакции с уровнем изоляции по умолчанию
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{}, fn)
}

// DoReadOnly выполняет fn в read-only транзакции
func (m *TransactionManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{ReadOnly: true}, fn)
}

// DoSerializable выполняет fn в сериализуемой транзакции.
// При конфликте сериализации (SQLSTATE 40001) транзакция повторяется
// целиком, включая все чтения внутри fn.
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	var lastErr error

	for attempt := 0; attempt < maxSerializableRetries; attempt++ {
		lastErr = m.run(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable}, fn)
		if lastErr == nil {
			return nil
		}
		if !isSerializationFailure(lastErr) {
			return lastErr
		}
	}

	return fmt.Errorf("%w: serialization conflict after %d attempts: %v",
		ErrTxFailed, maxSerializableRetries, lastErr)
}

func (m *TransactionManager) run(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("%w: begin: %v", ErrTxFailed, err)
	}

	txCtx := dbmetrics.WithTx(ctx, tx)

	if err := fn(txCtx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("%w: commit: %v", ErrTxFailed, err)
	}

	return nil
}

// isSerializationFailure проверяет, является ли ошибка конфликтом
// сериализации PostgreSQL
func isSerializationFailure(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pgSerializationFailure
	}
	return false
}
