package gate

import (
	"bytes"
	crypto "crypto/ed25519"
	"io"
	"net/http"

	"go.uber.org/zap"

	"interaction-gate/internal/config"
	"interaction-gate/internal/metrics"
	"interaction-gate/pkg/discord"
)

const loggerName = "gate"

// Gate authenticates Discord interaction requests before they reach the next
// handler. It holds no per-request state and is safe for concurrent use.
type Gate struct {
	logger  *zap.Logger
	metrics metrics.RecorderIFace

	publicKey crypto.PublicKey
	verify    discord.VerifyFunc
	maxBody   int64
}

func New(cfg *config.Config, recorder metrics.RecorderIFace) *Gate {
	if recorder == nil {
		recorder = metrics.Nop
	}
	return &Gate{
		logger:    cfg.Logger.Named(loggerName),
		metrics:   recorder,
		publicKey: cfg.PublicKey,
		verify:    discord.Ed25519Verify,
		maxBody:   cfg.MaxBodyBytes,
	}
}

// Wrap returns a handler that only lets authentic requests through to next.
// Pings are answered by the gate itself.
func (g *Gate) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := g.authenticate(w, r)
		if !ok {
			return
		}
		g.respondOrForward(w, r, body, next)
	})
}

// authenticate returns the raw body when the request signature is valid.
// Otherwise the rejection has already been written.
func (g *Gate) authenticate(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	body, err := g.readBody(w, r)
	g.abortIfCanceled(r)
	if err != nil {
		g.reject(w, r, discord.ErrUnreadableBody)
		return nil, false
	}

	timestamp := r.Header.Get(discord.TimestampHeader)
	signature := r.Header.Get(discord.SignatureHeader)
	if err := discord.AuthenticateWith(body, timestamp, signature, g.publicKey, g.verify); err != nil {
		g.reject(w, r, err)
		return nil, false
	}

	g.abortIfCanceled(r)
	return body, true
}

func (g *Gate) readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	if r.Body == nil {
		return nil, nil
	}
	defer r.Body.Close()
	return io.ReadAll(http.MaxBytesReader(w, r.Body, g.maxBody))
}

// reject is the only place a rejection is written. The reason stays in logs.
func (g *Gate) reject(w http.ResponseWriter, r *http.Request, reason error) {
	g.logger.Warn("rejected request",
		zap.String("reason", reason.Error()),
		zap.String("remote", r.RemoteAddr),
	)
	g.metrics.Rejection(reason.Error())
	g.metrics.Outcome(metrics.OutcomeRejected)
	http.Error(w, discord.UnauthorizedMessage, http.StatusUnauthorized)
}

// abortIfCanceled drops the response when the caller is gone, so a request
// that did not finish verification can never look accepted.
func (g *Gate) abortIfCanceled(r *http.Request) {
	if err := r.Context().Err(); err != nil {
		g.logger.Debug("request canceled", zap.Error(err))
		g.metrics.Outcome(metrics.OutcomeCanceled)
		panic(http.ErrAbortHandler)
	}
}

// restoreBody makes the consumed body readable again for the next handler.
func restoreBody(r *http.Request, body []byte) {
	r.Body = io.NopCloser(bytes.NewReader(body))
	r.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(body)), nil
	}
	r.ContentLength = int64(len(body))
}
