package metrics

import "github.com/prometheus/client_golang/prometheus"

// IntakeMetrics exposes counters/histograms for the intake conversation flow.
type IntakeMetrics struct {
	inboundTurns         *prometheus.CounterVec
	stateTransitions     *prometheus.CounterVec
	collaboratorFailures *prometheus.CounterVec
	completions          *prometheus.CounterVec
	webhookLatency       *prometheus.HistogramVec
}

func NewIntakeMetrics(reg prometheus.Registerer) *IntakeMetrics {
	m := &IntakeMetrics{
		inboundTurns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "intake",
			Name:      "inbound_turns_total",
			Help:      "Total inbound conversation turns processed",
		}, []string{"state", "outcome"}),
		stateTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "intake",
			Name:      "state_transitions_total",
			Help:      "Total state machine transitions",
		}, []string{"from", "to"}),
		collaboratorFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "intake",
			Name:      "collaborator_failures_total",
			Help:      "Failures from external collaborators",
		}, []string{"collaborator"}),
		completions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "intake",
			Name:      "completions_total",
			Help:      "Completed intake conversations",
		}, []string{"mode"}),
		webhookLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "intake",
			Name:      "webhook_latency_seconds",
			Help:      "Latency of inbound webhook processing",
			Buckets:   prometheus.DefBuckets,
		}, []string{"endpoint"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.inboundTurns, m.stateTransitions, m.collaboratorFailures, m.completions, m.webhookLatency)
	return m
}

func (m *IntakeMetrics) ObserveTurn(state, outcome string) {
	if m == nil {
		return
	}
	m.inboundTurns.WithLabelValues(state, outcome).Inc()
}

func (m *IntakeMetrics) ObserveTransition(from, to string) {
	if m == nil {
		return
	}
	m.stateTransitions.WithLabelValues(from, to).Inc()
}

func (m *IntakeMetrics) ObserveCollaboratorFailure(collaborator string) {
	if m == nil {
		return
	}
	m.collaboratorFailures.WithLabelValues(collaborator).Inc()
}

// ObserveCompletion counts a finished conversation. Mode is "confirmed" for
// the normal path and "degraded" for early completion after a collaborator
// failure.
func (m *IntakeMetrics) ObserveCompletion(mode string) {
	if m == nil {
		return
	}
	m.completions.WithLabelValues(mode).Inc()
}

func (m *IntakeMetrics) ObserveWebhookLatency(endpoint string, seconds float64) {
	if m == nil {
		return
	}
	m.webhookLatency.WithLabelValues(endpoint).Observe(seconds)
}
