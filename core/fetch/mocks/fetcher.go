package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Fetcher is a mock implementation of fetch.Fetcher
type Fetcher struct {
	mock.Mock
}

func (m *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	args := m.Called(ctx, url)
	return args.String(0), args.Error(1)
}
