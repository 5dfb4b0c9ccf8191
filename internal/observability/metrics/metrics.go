package metrics

import "github.com/prometheus/client_golang/prometheus"

// ChatMetrics exposes counters for the dialogue flow.
type ChatMetrics struct {
	turnsTotal      *prometheus.CounterVec
	escalationTotal prometheus.Counter
	leadsTotal      prometheus.Counter
	leadEmailTotal  *prometheus.CounterVec
}

func NewChatMetrics(reg prometheus.Registerer) *ChatMetrics {
	m := &ChatMetrics{
		turnsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "leadchat",
			Subsystem: "chat",
			Name:      "turns_total",
			Help:      "Total handled chat turns by resulting stage",
		}, []string{"stage"}),
		escalationTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "leadchat",
			Subsystem: "chat",
			Name:      "escalations_total",
			Help:      "Total turns that triggered the human-escalation reply",
		}),
		leadsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "leadchat",
			Subsystem: "chat",
			Name:      "leads_completed_total",
			Help:      "Total conversations that reached a confirmed lead",
		}),
		leadEmailTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "leadchat",
			Subsystem: "notify",
			Name:      "lead_email_total",
			Help:      "Total lead notification emails by outcome",
		}, []string{"outcome"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.turnsTotal, m.escalationTotal, m.leadsTotal, m.leadEmailTotal)
	return m
}

func (m *ChatMetrics) ObserveTurn(stage string, escalation bool) {
	if m == nil {
		return
	}
	m.turnsTotal.WithLabelValues(stage).Inc()
	if escalation {
		m.escalationTotal.Inc()
	}
}

func (m *ChatMetrics) ObserveLeadCompleted() {
	if m == nil {
		return
	}
	m.leadsTotal.Inc()
}

func (m *ChatMetrics) ObserveLeadEmail(outcome string) {
	if m == nil {
		return
	}
	m.leadEmailTotal.WithLabelValues(outcome).Inc()
}
