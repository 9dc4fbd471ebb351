package deferred

import (
	"context"
	"io"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"

	"interaction-gate/internal/config"
	"interaction-gate/pkg/aws/sqs"
	"interaction-gate/pkg/discord"
)

const loggerName = "deferred"

// Queue hands authenticated interactions to a message queue and answers with
// a deferred response. Whoever consumes the queue edits the reply later.
type Queue struct {
	logger    *zap.Logger
	sqsUrl    string
	sqsClient sqs.ClientIFace
}

func New(cfg *config.Config) *Queue {
	return &Queue{
		logger:    cfg.Logger.Named(loggerName),
		sqsUrl:    cfg.SqsUrl,
		sqsClient: sqs.New(),
	}
}

func (q *Queue) Connect() error {
	return q.sqsClient.Connect()
}

func (q *Queue) Enqueue(ctx context.Context, body []byte) error {
	return q.sqsClient.Send(ctx, q.sqsUrl, string(body))
}

func (q *Queue) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	if err := q.Enqueue(r.Context(), body); err != nil {
		q.logger.Error("failed to queue interaction", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write(discord.DeferredResponseJson); err != nil {
		q.logger.Error("failed to write response", zap.Error(err))
	}
}

// Handle is the Lambda form of ServeHTTP. Queue errors are returned as is.
func (q *Queue) Handle(ctx context.Context, _ events.APIGatewayV2HTTPRequest, body []byte) (events.APIGatewayV2HTTPResponse, error) {
	if err := q.Enqueue(ctx, body); err != nil {
		return events.APIGatewayV2HTTPResponse{}, err
	}

	return events.APIGatewayV2HTTPResponse{
		StatusCode: http.StatusOK,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(discord.DeferredResponseJson),
	}, nil
}
