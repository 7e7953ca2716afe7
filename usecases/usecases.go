package usecases

import (
	"github.com/meridiancruises/compliance-backend/repositories"
	"github.com/meridiancruises/compliance-backend/usecases/executor_factory"
)

type Usecases struct {
	Repositories         repositories.Repositories
	appName              string
	tokenLifetimeMinute  int
	caseFilesBucketUrl   string
	patronFilesBucketUrl string
	avatarsBucketUrl     string
}

type Option func(*options)

type options struct {
	appName              string
	tokenLifetimeMinute  int
	caseFilesBucketUrl   string
	patronFilesBucketUrl string
	avatarsBucketUrl     string
}

func WithAppName(appName string) Option {
	return func(o *options) {
		o.appName = appName
	}
}

func WithTokenLifetimeMinute(minutes int) Option {
	return func(o *options) {
		o.tokenLifetimeMinute = minutes
	}
}

func WithCaseFilesBucketUrl(bucket string) Option {
	return func(o *options) {
		o.caseFilesBucketUrl = bucket
	}
}

func WithPatronFilesBucketUrl(bucket string) Option {
	return func(o *options) {
		o.patronFilesBucketUrl = bucket
	}
}

func WithAvatarsBucketUrl(bucket string) Option {
	return func(o *options) {
		o.avatarsBucketUrl = bucket
	}
}

func NewUsecases(repos repositories.Repositories, opts ...Option) Usecases {
	o := &options{
		tokenLifetimeMinute: 60,
	}
	for _, opt := range opts {
		opt(o)
	}
	return Usecases{
		Repositories:         repos,
		appName:              o.appName,
		tokenLifetimeMinute:  o.tokenLifetimeMinute,
		caseFilesBucketUrl:   o.caseFilesBucketUrl,
		patronFilesBucketUrl: o.patronFilesBucketUrl,
		avatarsBucketUrl:     o.avatarsBucketUrl,
	}
}

func (usecases *Usecases) NewExecutorFactory() executor_factory.ExecutorFactory {
	return executor_factory.NewDbExecutorFactory(usecases.Repositories.ExecutorGetter)
}

func (usecases *Usecases) NewTransactionFactory() executor_factory.TransactionFactory {
	return executor_factory.NewDbExecutorFactory(usecases.Repositories.ExecutorGetter)
}

// NewTokenUsecase is available without credentials: it is what produces them.
func (usecases *Usecases) NewTokenUsecase() TokenUsecase {
	return TokenUsecase{
		jwtRepository:       usecases.Repositories.JwtRepository,
		memberRepository:    usecases.Repositories.ComplianceDbRepository,
		executorFactory:     usecases.NewExecutorFactory(),
		tokenLifetimeMinute: usecases.tokenLifetimeMinute,
	}
}

func (usecases *Usecases) NewLivenessUsecase() LivenessUsecase {
	return LivenessUsecase{
		executorFactory:    usecases.NewExecutorFactory(),
		livenessRepository: usecases.Repositories.ComplianceDbRepository,
	}
}
