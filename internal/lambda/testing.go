package lambda

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/mock"
)

const StageHandleMethod = "Handle"

// Ensure MockStage implements Stage
var _ Stage = (*MockStage)(nil)

type MockStage struct {
	mock.Mock
}

func (m *MockStage) Handle(ctx context.Context, event events.APIGatewayV2HTTPRequest, body []byte) (events.APIGatewayV2HTTPResponse, error) {
	args := m.Called(ctx, event, body)
	return args.Get(0).(events.APIGatewayV2HTTPResponse), args.Error(1)
}
