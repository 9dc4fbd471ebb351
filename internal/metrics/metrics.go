package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "interaction_gate"

// Terminal outcomes of a gated request
const (
	OutcomeRejected  = "rejected"
	OutcomeHandshake = "handshake"
	OutcomeForwarded = "forwarded"
	OutcomeCanceled  = "canceled"
)

// Ensure Recorder implements RecorderIFace
var _ RecorderIFace = (*Recorder)(nil)

type RecorderIFace interface {
	Outcome(outcome string)
	Rejection(reason string)
}

type Recorder struct {
	requests   *prometheus.CounterVec
	rejections *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "Requests seen by the gate, by terminal outcome.",
		}, []string{"outcome"}),
		rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rejections_total",
			Help:      "Rejected requests, by internal reason.",
		}, []string{"reason"}),
	}
	reg.MustRegister(r.requests, r.rejections)
	return r
}

func (r *Recorder) Outcome(outcome string) {
	r.requests.WithLabelValues(outcome).Inc()
}

func (r *Recorder) Rejection(reason string) {
	r.rejections.WithLabelValues(reason).Inc()
}

// Handler serves the metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

type nop struct{}

func (nop) Outcome(string)   {}
func (nop) Rejection(string) {}

// Nop discards everything.
var Nop RecorderIFace = nop{}
