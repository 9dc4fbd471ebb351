package upstream

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"

	"interaction-gate/internal/config"
	"interaction-gate/pkg/discord"
)

const loggerName = "upstream"

var Timeout = 3 * time.Second

// Forwarder relays authenticated interactions to another interactions
// endpoint. The signature headers go along so the upstream can verify too.
type Forwarder struct {
	logger     *zap.Logger
	url        string
	httpClient *http.Client
}

type Response struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

func New(cfg *config.Config) *Forwarder {
	return &Forwarder{
		logger:     cfg.Logger.Named(loggerName),
		url:        cfg.UpstreamUrl,
		httpClient: &http.Client{Timeout: Timeout},
	}
}

func (f *Forwarder) Forward(ctx context.Context, body []byte, timestamp, signature string) (*Response, error) {
	// Build HTTP request
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(discord.SignatureHeader, signature)
	req.Header.Set(discord.TimestampHeader, timestamp)

	// Make HTTP call
	rsp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer rsp.Body.Close()

	rspBody, err := io.ReadAll(rsp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading upstream response: %w", err)
	}

	return &Response{
		StatusCode:  rsp.StatusCode,
		ContentType: rsp.Header.Get("Content-Type"),
		Body:        rspBody,
	}, nil
}

func (f *Forwarder) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	rsp, err := f.Forward(r.Context(), body, r.Header.Get(discord.TimestampHeader), r.Header.Get(discord.SignatureHeader))
	if err != nil {
		f.logger.Error("failed to forward request", zap.Error(err))
		http.Error(w, "Bad gateway", http.StatusBadGateway)
		return
	}

	if rsp.ContentType != "" {
		w.Header().Set("Content-Type", rsp.ContentType)
	}
	w.WriteHeader(rsp.StatusCode)
	if _, err := w.Write(rsp.Body); err != nil {
		f.logger.Error("failed to write response", zap.Error(err))
	}
}

// Handle is the Lambda form of ServeHTTP. Transport errors are returned as is.
func (f *Forwarder) Handle(ctx context.Context, event events.APIGatewayV2HTTPRequest, body []byte) (events.APIGatewayV2HTTPResponse, error) {
	timestamp := discord.HeaderValue(event.Headers, discord.TimestampHeader)
	signature := discord.HeaderValue(event.Headers, discord.SignatureHeader)
	rsp, err := f.Forward(ctx, body, timestamp, signature)
	if err != nil {
		return events.APIGatewayV2HTTPResponse{}, err
	}

	out := events.APIGatewayV2HTTPResponse{
		StatusCode: rsp.StatusCode,
		Body:       string(rsp.Body),
	}
	if rsp.ContentType != "" {
		out.Headers = map[string]string{"Content-Type": rsp.ContentType}
	}
	return out, nil
}
