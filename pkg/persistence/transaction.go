//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "Transaction=Transaction"
package persistence

import "context"

type Transaction interface {
	// WithinContext runs fn inside a database transaction, taking the named
	// advisory locks first. Nested calls join the outer transaction.
	WithinContext(ctx context.Context, fn func(ctx context.Context) error, lockNames ...string) error
	// WithLock marks the context so the next repository read locks the rows it
	// returns for the duration of the surrounding transaction.
	WithLock(ctx context.Context) context.Context
}

func WithinTransactionWithResult[T any](
	ctx context.Context,
	transaction Transaction,
	fn func(ctx context.Context) (T, error),
	lockNames ...string,
) (T, error) {
	var result T
	err := transaction.WithinContext(ctx, func(ctx context.Context) error {
		var fnErr error
		result, fnErr = fn(ctx)
		return fnErr
	}, lockNames...)

	return result, err
}
