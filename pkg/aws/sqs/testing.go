package sqs

import (
	"context"

	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/sqs"
	"github.com/aws/aws-sdk-go/service/sqs/sqsiface"
	"github.com/stretchr/testify/mock"
)

const (
	ConnectMethod = "Connect"
	SendMethod    = "Send"

	sendMessageWithContextMethod = "SendMessageWithContext"
)

// Ensure MockClient implements ClientIFace
var _ ClientIFace = (*MockClient)(nil)

type MockClient struct {
	mock.Mock
}

func (m *MockClient) Connect() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockClient) Send(ctx context.Context, queueUrl string, msg string) error {
	args := m.Called(ctx, queueUrl, msg)
	return args.Error(0)
}

// mockSqsApi stubs the SDK client underneath Client.
type mockSqsApi struct {
	sqsiface.SQSAPI
	mock.Mock
}

func (m *mockSqsApi) SendMessageWithContext(ctx context.Context, in *sqs.SendMessageInput, _ ...request.Option) (*sqs.SendMessageOutput, error) {
	args := m.Called(ctx, in)
	return &sqs.SendMessageOutput{}, args.Error(0)
}
