package metrics

import "github.com/stretchr/testify/mock"

const (
	OutcomeMethod   = "Outcome"
	RejectionMethod = "Rejection"
)

// Ensure MockRecorder implements RecorderIFace
var _ RecorderIFace = (*MockRecorder)(nil)

type MockRecorder struct {
	mock.Mock
}

func (m *MockRecorder) Outcome(outcome string) {
	m.Called(outcome)
}

func (m *MockRecorder) Rejection(reason string) {
	m.Called(reason)
}
