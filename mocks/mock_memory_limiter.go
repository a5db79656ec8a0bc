package mocks

import (
	"github.com/stretchr/testify/mock"
)

// MockMemoryLimiter is a mock implementation of port.MemoryLimiter.
type MockMemoryLimiter struct {
	mock.Mock
}

func (m *MockMemoryLimiter) Limit() int64 {
	args := m.Called()
	return args.Get(0).(int64)
}

func (m *MockMemoryLimiter) SetLimit(limit int64) (int64, error) {
	args := m.Called(limit)
	return args.Get(0).(int64), args.Error(1)
}
