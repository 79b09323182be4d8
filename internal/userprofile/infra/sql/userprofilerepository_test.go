package sql_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/upservice/user-profile-service/internal/userprofile/domain"
	infrasql "github.com/upservice/user-profile-service/internal/userprofile/infra/sql"
	"github.com/upservice/user-profile-service/pkg/event"
	commonsql "github.com/upservice/user-profile-service/pkg/sql"
)

func TestUserProfileRepository_StoreDispatchesEventsAfterCommit(t *testing.T) {
	ops := &operationLog{}
	client := &fakeTxClient{ops: ops}
	dispatched := &recordingDispatcher{ops: ops}

	deferredDispatcher := commonsql.NewDeferredEventDispatcher(dispatched)
	transaction := commonsql.NewTransaction(client, domain.Name, func(ctx context.Context) {
		_ = deferredDispatcher.Flush(ctx)
	})
	repo := infrasql.NewUserProfileRepository(commonsql.NewTransactionalClient(client), deferredDispatcher)

	err := transaction.WithinContext(context.Background(), func(ctx context.Context) error {
		profile := domain.NewUserProfile(repo.NextID(), "someone@example.com", "passwordHash", "", "")
		return repo.Store(ctx, profile)
	})

	require.NoError(t, err)
	require.Equal(t, []string{"begin", "exec", "commit", "dispatch"}, ops.entries)
	require.Len(t, dispatched.events, 1)
	require.Equal(t, domain.EventTypeUserProfileRegistered, dispatched.events[0].Type())
}

func TestUserProfileRepository_StoreDispatchesNothingWhenCommitFails(t *testing.T) {
	ops := &operationLog{}
	client := &fakeTxClient{ops: ops, commitErr: errors.New("connection reset")}
	dispatched := &recordingDispatcher{ops: ops}

	deferredDispatcher := commonsql.NewDeferredEventDispatcher(dispatched)
	transaction := commonsql.NewTransaction(client, domain.Name, func(ctx context.Context) {
		_ = deferredDispatcher.Flush(ctx)
	})
	repo := infrasql.NewUserProfileRepository(commonsql.NewTransactionalClient(client), deferredDispatcher)

	err := transaction.WithinContext(context.Background(), func(ctx context.Context) error {
		profile := domain.NewUserProfile(repo.NextID(), "someone@example.com", "passwordHash", "", "")
		return repo.Store(ctx, profile)
	})

	require.Error(t, err)
	require.Equal(t, []string{"begin", "exec", "commit", "rollback"}, ops.entries)
	require.Empty(t, dispatched.events)
}

func TestUserProfileRepository_DeleteDispatchesEventsAfterCommit(t *testing.T) {
	ops := &operationLog{}
	client := &fakeTxClient{ops: ops}
	dispatched := &recordingDispatcher{ops: ops}

	deferredDispatcher := commonsql.NewDeferredEventDispatcher(dispatched)
	transaction := commonsql.NewTransaction(client, domain.Name, func(ctx context.Context) {
		_ = deferredDispatcher.Flush(ctx)
	})
	repo := infrasql.NewUserProfileRepository(commonsql.NewTransactionalClient(client), deferredDispatcher)

	err := transaction.WithinContext(context.Background(), func(ctx context.Context) error {
		profile := &domain.UserProfile{ID: repo.NextID(), Email: "someone@example.com"}
		profile.MarkDeleted()
		return repo.Delete(ctx, profile)
	})

	require.NoError(t, err)
	require.Equal(t, []string{"begin", "exec", "commit", "dispatch"}, ops.entries)
	require.Len(t, dispatched.events, 1)
	require.Equal(t, domain.EventTypeUserProfileDeleted, dispatched.events[0].Type())
}

type operationLog struct {
	entries []string
}

func (l *operationLog) record(op string) {
	l.entries = append(l.entries, op)
}

type recordingDispatcher struct {
	ops    *operationLog
	events []event.Event
}

func (d *recordingDispatcher) Dispatch(_ context.Context, events ...event.Event) error {
	d.ops.record("dispatch")
	d.events = append(d.events, events...)
	return nil
}

type fakeTxClient struct {
	ops       *operationLog
	commitErr error
}

func (c *fakeTxClient) Begin(context.Context) (commonsql.ClientTx, error) {
	c.ops.record("begin")
	return &fakeClientTx{ops: c.ops, commitErr: c.commitErr}, nil
}

func (c *fakeTxClient) ExecContext(context.Context, string, ...any) (sql.Result, error) {
	c.ops.record("exec")
	return nil, nil
}

func (c *fakeTxClient) NamedExecContext(context.Context, string, any) (sql.Result, error) {
	c.ops.record("exec")
	return nil, nil
}

func (c *fakeTxClient) GetContext(context.Context, any, string, ...any) error {
	return nil
}

func (c *fakeTxClient) SelectContext(context.Context, any, string, ...any) error {
	return nil
}

type fakeClientTx struct {
	ops       *operationLog
	commitErr error
}

func (c *fakeClientTx) Commit() error {
	c.ops.record("commit")
	return c.commitErr
}

func (c *fakeClientTx) Rollback() error {
	c.ops.record("rollback")
	return nil
}

func (c *fakeClientTx) ExecContext(context.Context, string, ...any) (sql.Result, error) {
	c.ops.record("exec")
	return nil, nil
}

func (c *fakeClientTx) NamedExecContext(context.Context, string, any) (sql.Result, error) {
	c.ops.record("exec")
	return nil, nil
}

func (c *fakeClientTx) GetContext(context.Context, any, string, ...any) error {
	return nil
}

func (c *fakeClientTx) SelectContext(context.Context, any, string, ...any) error {
	return nil
}
