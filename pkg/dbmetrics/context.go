package dbmetrics

import "context"

type ctxKey struct{}

// WithTx кладет активную транзакцию в контекст.
// Репозитории достают её через GetExecutor и выполняют запросы в рамках
// транзакции, не зная о ней явно.
func WithTx(ctx context.Context, tx TxExecutor) context.Context {
	return context.WithValue(ctx, ctxKey{}, tx)
}

// GetExecutor возвращает исполнителя из контекста, если там есть активная
// транзакция, иначе переданный fallback (обычно *sql.DB или *dbmetrics.DB).
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if tx, ok := ctx.Value(ctxKey{}).(TxExecutor); ok {
		return tx
	}
	return fallback
}

// IsInTransaction возвращает true, если в контексте есть активная транзакция
func IsInTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(ctxKey{}).(TxExecutor)
	return ok
}
