package mocks

import (
	"github.com/stretchr/testify/mock"

	"schemadoc/internal/port"
)

// MockEventLogger is a mock implementation of port.EventLogger.
type MockEventLogger struct {
	mock.Mock
}

func (m *MockEventLogger) ParseStarted(e port.ParseEvent) {
	m.Called(e)
}

func (m *MockEventLogger) ParseCompleted(e port.ParseEvent) {
	m.Called(e)
}

func (m *MockEventLogger) ParseFailed(e port.ParseEvent, err error) {
	m.Called(e, err)
}

func (m *MockEventLogger) Warning(e port.ParseEvent, msg string) {
	m.Called(e, msg)
}
