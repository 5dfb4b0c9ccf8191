package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestChatMetrics_NilSafe(t *testing.T) {
	var m *ChatMetrics
	m.ObserveTurn("NEEDS", true)
	m.ObserveLeadCompleted()
	m.ObserveLeadEmail("sent")
}

func TestChatMetrics_Registers(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewChatMetrics(reg)

	m.ObserveTurn("NEEDS", false)
	m.ObserveTurn("NEEDS", true)
	m.ObserveLeadCompleted()
	m.ObserveLeadEmail("error")

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather failed: %v", err)
	}
	if len(families) != 4 {
		t.Fatalf("expected 4 metric families, got %d", len(families))
	}
}
