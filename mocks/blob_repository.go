package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/meridiancruises/compliance-backend/models"
)

type BlobRepository struct {
	mock.Mock
}

func (b *BlobRepository) GetBlob(ctx context.Context, bucketUrl, fileName string) (models.Blob, error) {
	args := b.Called(ctx, bucketUrl, fileName)
	return args.Get(0).(models.Blob), args.Error(1)
}

func (b *BlobRepository) OpenStream(ctx context.Context, bucketUrl, fileName string) (io.WriteCloser, error) {
	args := b.Called(ctx, bucketUrl, fileName)
	return args.Get(0).(io.WriteCloser), args.Error(1)
}

func (b *BlobRepository) DeleteFile(ctx context.Context, bucketUrl, fileName string) error {
	args := b.Called(ctx, bucketUrl, fileName)
	return args.Error(0)
}

func (b *BlobRepository) GenerateSignedUrl(ctx context.Context, bucketUrl, fileName string) (string, error) {
	args := b.Called(ctx, bucketUrl, fileName)
	return args.String(0), args.Error(1)
}
