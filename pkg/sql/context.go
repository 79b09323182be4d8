package sql

import "context"

type contextKey int

const (
	dbTransactionContextKey contextKey = iota
	dbTransactionLockContextKey
	dbTransactionEventsContextKey
)

// IsLockRequested reports whether repositories should read with FOR UPDATE.
func IsLockRequested(ctx context.Context) bool {
	requested, ok := ctx.Value(dbTransactionLockContextKey).(bool)
	return ok && requested
}
