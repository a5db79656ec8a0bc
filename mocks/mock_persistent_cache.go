package mocks

import (
	"github.com/stretchr/testify/mock"

	"schemadoc/internal/domain"
)

// MockPersistentCache is a mock implementation of port.PersistentCache.
type MockPersistentCache struct {
	mock.Mock
}

func (m *MockPersistentCache) Get(key uint64) (*domain.ParseResult, bool) {
	args := m.Called(key)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*domain.ParseResult), args.Bool(1)
}

func (m *MockPersistentCache) Put(key uint64, result *domain.ParseResult) {
	m.Called(key, result)
}

func (m *MockPersistentCache) Stats() domain.CacheStats {
	args := m.Called()
	return args.Get(0).(domain.CacheStats)
}

func (m *MockPersistentCache) Enabled() bool {
	args := m.Called()
	return args.Bool(0)
}
