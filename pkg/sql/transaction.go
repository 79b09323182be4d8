package sql

import (
	"context"
	"database/sql"
	"fmt"
	"hash/fnv"

	"github.com/upservice/user-profile-service/pkg/persistence"
)

type instanceID string

type txData struct {
	ClientTx
	instanceID instanceID
}

type transaction struct {
	id       instanceID
	client   TxClient
	onCommit func(ctx context.Context)
}

// NewTransaction returns a persistence.Transaction storing the active
// database transaction in the context, so repositories transparently join it.
// The onCommit hook runs with the transaction context after the outermost
// transaction commits.
func NewTransaction(client TxClient, instanceName string, onCommit func(ctx context.Context)) persistence.Transaction {
	return &transaction{id: instanceID(instanceName), client: client, onCommit: onCommit}
}

func (t *transaction) WithinContext(
	ctx context.Context,
	fn func(ctx context.Context) error,
	lockNames ...string,
) error {
	var err error
	storedTx, ok := ctx.Value(dbTransactionContextKey).(txData)
	hasParentTx := ok && storedTx.instanceID == t.id
	if !hasParentTx {
		var tx ClientTx
		tx, err = t.client.Begin(ctx)
		if err != nil {
			return fmt.Errorf("start db transaction: %w", err)
		}
		defer func() {
			if err != nil {
				_ = tx.Rollback()
			}
		}()

		storedTx.instanceID = t.id
		storedTx.ClientTx = tx
		ctx = context.WithValue(ctx, dbTransactionContextKey, storedTx)
		ctx = context.WithValue(ctx, dbTransactionEventsContextKey, &pendingEvents{})
	}

	for _, lockName := range lockNames {
		err = lockTransaction(ctx, storedTx.ClientTx, lockName)
		if err != nil {
			return err
		}
	}

	err = fn(ctx)
	if err != nil {
		return err
	}

	if hasParentTx {
		return nil
	}

	err = storedTx.ClientTx.Commit()
	if err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	if t.onCommit != nil {
		t.onCommit(ctx)
	}

	return nil
}

func (t *transaction) WithLock(ctx context.Context) context.Context {
	return context.WithValue(ctx, dbTransactionLockContextKey, true)
}

func lockTransaction(ctx context.Context, client Client, lockName string) error {
	hash := fnv.New64()
	_, _ = hash.Write([]byte(lockName))

	_, err := client.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", int64(hash.Sum64()))
	if err != nil {
		return fmt.Errorf("get advisory lock %s: %w", lockName, err)
	}
	return nil
}

// NewTransactionalClient returns a Client which uses the transaction stored
// in the context when present and falls back to the raw client otherwise.
func NewTransactionalClient(client Client) Client {
	return &transactionalClient{client: client}
}

type transactionalClient struct {
	client Client
}

func (c *transactionalClient) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return c.resolve(ctx).ExecContext(ctx, query, args...)
}

func (c *transactionalClient) NamedExecContext(ctx context.Context, query string, arg any) (sql.Result, error) {
	return c.resolve(ctx).NamedExecContext(ctx, query, arg)
}

func (c *transactionalClient) GetContext(ctx context.Context, dest any, query string, args ...any) error {
	return c.resolve(ctx).GetContext(ctx, dest, query, args...)
}

func (c *transactionalClient) SelectContext(ctx context.Context, dest any, query string, args ...any) error {
	return c.resolve(ctx).SelectContext(ctx, dest, query, args...)
}

func (c *transactionalClient) resolve(ctx context.Context) Client {
	tx, ok := ctx.Value(dbTransactionContextKey).(txData)
	if ok {
		return tx.ClientTx
	}
	return c.client
}
