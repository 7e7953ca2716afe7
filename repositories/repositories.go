package repositories

import (
	"crypto/rsa"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repositories struct {
	ExecutorGetter         ExecutorGetter
	ComplianceDbRepository *ComplianceDbRepository
	BlobRepository         BlobRepository
	JwtRepository          *JwtRepository
	RosterListener         *RosterListener
}

type Option func(*options)

type options struct {
	googleApplicationCredentials string
}

func WithGoogleApplicationCredentials(path string) Option {
	return func(o *options) {
		o.googleApplicationCredentials = path
	}
}

func NewRepositories(
	jwtSigningKey *rsa.PrivateKey,
	pool *pgxpool.Pool,
	opts ...Option,
) Repositories {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	return Repositories{
		ExecutorGetter:         NewExecutorGetter(pool),
		ComplianceDbRepository: &ComplianceDbRepository{},
		BlobRepository:         NewBlobRepository(o.googleApplicationCredentials),
		JwtRepository:          NewJwtRepository(jwtSigningKey),
		RosterListener:         NewRosterListener(pool),
	}
}
