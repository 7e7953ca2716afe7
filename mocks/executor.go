package mocks

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/mock"

	"github.com/meridiancruises/compliance-backend/repositories"
)

type Executor struct {
	mock.Mock
}

func (e *Executor) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	arguments := e.Called(ctx, sql, args)
	return arguments.Get(0).(pgconn.CommandTag), arguments.Error(1)
}

func (e *Executor) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	arguments := e.Called(ctx, sql, args)
	return arguments.Get(0).(pgx.Rows), arguments.Error(1)
}

func (e *Executor) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	arguments := e.Called(ctx, sql, args)
	return arguments.Get(0).(pgx.Row)
}

type Transaction struct {
	mock.Mock
}

func (t *Transaction) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	arguments := t.Called(ctx, sql, args)
	return arguments.Get(0).(pgconn.CommandTag), arguments.Error(1)
}

func (t *Transaction) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	arguments := t.Called(ctx, sql, args)
	return arguments.Get(0).(pgx.Rows), arguments.Error(1)
}

func (t *Transaction) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	arguments := t.Called(ctx, sql, args)
	return arguments.Get(0).(pgx.Row)
}

func (t *Transaction) RawTx() pgx.Tx {
	arguments := t.Called()
	return arguments.Get(0).(pgx.Tx)
}

type ExecutorFactory struct {
	mock.Mock
}

func (e *ExecutorFactory) NewExecutor() repositories.Executor {
	args := e.Called()
	return args.Get(0).(repositories.Executor)
}

// TransactionFactory runs the callback against TxMock so a test can assert
// on the statements executed inside the transaction.
type TransactionFactory struct {
	mock.Mock
	TxMock *Transaction
}

func (t *TransactionFactory) Transaction(ctx context.Context,
	fn func(tx repositories.Transaction) error,
) error {
	args := t.Called(ctx, fn)
	if err := fn(t.TxMock); err != nil {
		return err
	}
	return args.Error(0)
}
