package gate

import (
	"net/http"

	"go.uber.org/zap"

	"interaction-gate/internal/metrics"
	"interaction-gate/pkg/discord"
)

// respondOrForward answers pings and hands everything else to next untouched.
// A body whose type cannot be read is forwarded; it is authentic, so next
// decides what to do with it.
func (g *Gate) respondOrForward(w http.ResponseWriter, r *http.Request, body []byte, next http.Handler) {
	if discord.IsPing(body) {
		g.metrics.Outcome(metrics.OutcomeHandshake)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(discord.PingResponseJson); err != nil {
			g.logger.Error("failed to write ping response", zap.Error(err))
		}
		return
	}

	g.logger.Debug("forwarding request", zap.Int("bytes", len(body)))
	g.metrics.Outcome(metrics.OutcomeForwarded)
	restoreBody(r, body)
	next.ServeHTTP(w, r)
}
