package executor_factory

import (
	"context"

	"github.com/meridiancruises/compliance-backend/repositories"
)

type ExecutorFactory interface {
	NewExecutor() repositories.Executor
}

type TransactionFactory interface {
	Transaction(ctx context.Context, fn func(tx repositories.Transaction) error) error
}

type dbExecutorFactoryRepository interface {
	GetExecutor() repositories.Executor
	Transaction(ctx context.Context, fn func(tx repositories.Transaction) error) error
}

type DbExecutorFactory struct {
	executorGetter dbExecutorFactoryRepository
}

func NewDbExecutorFactory(executorGetter dbExecutorFactoryRepository) DbExecutorFactory {
	return DbExecutorFactory{
		executorGetter: executorGetter,
	}
}

func (factory DbExecutorFactory) NewExecutor() repositories.Executor {
	return factory.executorGetter.GetExecutor()
}

func (factory DbExecutorFactory) Transaction(
	ctx context.Context,
	f func(tx repositories.Transaction) error,
) error {
	return factory.executorGetter.Transaction(ctx, f)
}
