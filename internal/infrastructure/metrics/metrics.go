package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns a private registry so tests can build as many as they like.
type Metrics struct {
	reg *prometheus.Registry

	calculations     *prometheus.CounterVec
	rejections       *prometheus.CounterVec
	assistantAnswers *prometheus.CounterVec
	logins           *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		reg: prometheus.NewRegistry(),
		calculations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "masar",
			Name:      "calculations_total",
			Help:      "Mortgage calculations by outcome (eligible, ineligible, invalid).",
		}, []string{"outcome"}),
		rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "masar",
			Name:      "eligibility_rejections_total",
			Help:      "Ineligible verdicts by the rule that fired.",
		}, []string{"rule"}),
		assistantAnswers: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "masar",
			Name:      "assistant_answers_total",
			Help:      "Assistant answers by the provider that produced them.",
		}, []string{"provider"}),
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "masar",
			Name:      "logins_total",
			Help:      "Login attempts by result.",
		}, []string{"result"}),
	}
	m.reg.MustRegister(
		m.calculations, m.rejections, m.assistantAnswers, m.logins,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) Calculation(outcome string) { m.calculations.WithLabelValues(outcome).Inc() }

func (m *Metrics) Rejection(rule string) { m.rejections.WithLabelValues(rule).Inc() }

func (m *Metrics) AssistantAnswer(provider string) {
	m.assistantAnswers.WithLabelValues(provider).Inc()
}

func (m *Metrics) Login(result string) { m.logins.WithLabelValues(result).Inc() }

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{Registry: m.reg})
}
