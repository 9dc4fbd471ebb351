package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Recorder(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := New(reg)

	r.Outcome(OutcomeForwarded)
	r.Outcome(OutcomeForwarded)
	r.Outcome(OutcomeRejected)
	r.Rejection("invalid signature")

	assert.Equal(t, 2.0, testutil.ToFloat64(r.requests.WithLabelValues(OutcomeForwarded)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.requests.WithLabelValues(OutcomeRejected)))
	assert.Equal(t, 0.0, testutil.ToFloat64(r.requests.WithLabelValues(OutcomeHandshake)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.rejections.WithLabelValues("invalid signature")))
}

func Test_Handler(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg).Outcome(OutcomeHandshake)

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `interaction_gate_requests_total{outcome="handshake"} 1`)
}
