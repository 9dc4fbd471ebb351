package lambda

import (
	"context"
	crypto "crypto/ed25519"
	"encoding/base64"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"

	"interaction-gate/internal/config"
	"interaction-gate/internal/metrics"
	"interaction-gate/pkg/discord"
)

const loggerName = "lambda"

var (
	unauthorizedResponse = events.APIGatewayV2HTTPResponse{
		StatusCode: http.StatusUnauthorized,
		Headers:    map[string]string{"Content-Type": "text/plain; charset=utf-8"},
		Body:       discord.UnauthorizedMessage,
	}

	pingResponse = events.APIGatewayV2HTTPResponse{
		StatusCode: http.StatusOK,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(discord.PingResponseJson),
	}
)

// Stage handles an authenticated, non-ping interaction. body is the raw,
// already decoded request body.
type Stage interface {
	Handle(ctx context.Context, event events.APIGatewayV2HTTPRequest, body []byte) (events.APIGatewayV2HTTPResponse, error)
}

type Handler struct {
	logger  *zap.Logger
	metrics metrics.RecorderIFace

	publicKey crypto.PublicKey
	verify    discord.VerifyFunc

	stage Stage
}

func New(cfg *config.Config, stage Stage, recorder metrics.RecorderIFace) *Handler {
	if recorder == nil {
		recorder = metrics.Nop
	}
	return &Handler{
		logger:    cfg.Logger.Named(loggerName),
		metrics:   recorder,
		publicKey: cfg.PublicKey,
		verify:    discord.Ed25519Verify,
		stage:     stage,
	}
}

// Handle authenticates the event and answers pings itself. Everything else
// goes to the stage, whose response and error are returned unchanged.
func (h *Handler) Handle(ctx context.Context, event events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	body, err := eventBody(event)
	if err != nil {
		return h.reject(discord.ErrUnreadableBody), nil
	}

	// Verify request signature
	timestamp := discord.HeaderValue(event.Headers, discord.TimestampHeader)
	signature := discord.HeaderValue(event.Headers, discord.SignatureHeader)
	if err := discord.AuthenticateWith(body, timestamp, signature, h.publicKey, h.verify); err != nil {
		return h.reject(err), nil
	}

	if err := ctx.Err(); err != nil {
		h.metrics.Outcome(metrics.OutcomeCanceled)
		return events.APIGatewayV2HTTPResponse{}, err
	}

	// Acknowledge a ping
	if discord.IsPing(body) {
		h.metrics.Outcome(metrics.OutcomeHandshake)
		return pingResponse, nil
	}

	h.metrics.Outcome(metrics.OutcomeForwarded)
	return h.stage.Handle(ctx, event, body)
}

func (h *Handler) reject(reason error) events.APIGatewayV2HTTPResponse {
	h.logger.Warn("rejected request", zap.String("reason", reason.Error()))
	h.metrics.Rejection(reason.Error())
	h.metrics.Outcome(metrics.OutcomeRejected)
	return unauthorizedResponse
}

// eventBody returns the bytes the sender signed.
func eventBody(event events.APIGatewayV2HTTPRequest) ([]byte, error) {
	if event.IsBase64Encoded {
		return base64.StdEncoding.DecodeString(event.Body)
	}
	return []byte(event.Body), nil
}
