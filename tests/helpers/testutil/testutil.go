// Package testutil provides testing utilities and helpers for backend tests.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/xpdesk/backend/internal/shared/types"
)

// MockProgramSource is a mock implementation of window.ProgramSource.
type MockProgramSource struct {
	mock.Mock
}

// Get mocks program lookup by key.
func (m *MockProgramSource) Get(key string) (*types.ProgramConfig, bool) {
	args := m.Called(key)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*types.ProgramConfig), args.Bool(1)
}

// MockChromeBuilder is a mock implementation of window.ChromeBuilder.
type MockChromeBuilder struct {
	mock.Mock
}

// Build mocks chrome assembly.
func (m *MockChromeBuilder) Build(cfg *types.ProgramConfig) (*types.Chrome, error) {
	args := m.Called(cfg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Chrome), args.Error(1)
}

// MockFrameNotifier is a mock implementation of window.FrameNotifier.
type MockFrameNotifier struct {
	mock.Mock
}

// NotifyFrame mocks outbound frame delivery.
func (m *MockFrameNotifier) NotifyFrame(frameID string, msg types.FrameMessage) {
	m.Called(frameID, msg)
}

// NewMockProgramSource creates a mock program source that resolves every
// key to a plain test program.
func NewMockProgramSource(t *testing.T) *MockProgramSource {
	t.Helper()
	m := new(MockProgramSource)

	m.On("Get", mock.Anything).
		Return(CreateTestProgram(t, "test"), true).
		Maybe()

	return m
}

// NewMockFrameNotifier creates a mock notifier that accepts every message.
func NewMockFrameNotifier(t *testing.T) *MockFrameNotifier {
	t.Helper()
	m := new(MockFrameNotifier)
	m.On("NotifyFrame", mock.Anything, mock.Anything).Maybe()
	return m
}

// CreateTestProgram creates a program configuration with sane defaults.
func CreateTestProgram(t *testing.T, key string) *types.ProgramConfig {
	t.Helper()

	return &types.ProgramConfig{
		ID:         key,
		Title:      "Test Program",
		Icon:       key + ".png",
		Dimensions: types.Size{Width: 600, Height: 400},
		ContentRef: "/apps/" + key + "/index.html",
	}
}

// TestViewport returns the viewport used across backend tests.
func TestViewport() types.Viewport {
	return types.Viewport{Width: 1280, Height: 800, TaskbarHeight: 40}
}
