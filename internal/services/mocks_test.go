package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockUploader is a mock implementation of the Uploader interface
type MockUploader struct {
	mock.Mock
}

func (m *MockUploader) Upload(ctx context.Context, fileName string, content []byte, contentType string) (string, error) {
	args := m.Called(ctx, fileName, content, contentType)
	return args.String(0), args.Error(1)
}
