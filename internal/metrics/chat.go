package metrics

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	chatTurnsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "coffee",
		Name:      "chat_turns_total",
		Help:      "Total number of handled chat turns by intent and action",
	}, []string{"intent", "action"})

	chatTurnDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "coffee",
		Name:      "chat_turn_duration_seconds",
		Help:      "Latency of a full chat turn by action",
		Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
	}, []string{"action"})

	collaboratorErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "coffee",
		Name:      "collaborator_errors_total",
		Help:      "Total number of collaborator failures by collaborator and failure category",
	}, []string{"collaborator", "category"})
)

// RecordTurn records one completed chat turn.
func RecordTurn(intent, action string, elapsed time.Duration) {
	action = normalizeActionLabel(action)
	chatTurnsTotal.WithLabelValues(normalizeIntentLabel(intent), action).Inc()
	chatTurnDuration.WithLabelValues(action).Observe(elapsed.Seconds())
}

// RecordCollaboratorError records a failed collaborator call.
func RecordCollaboratorError(collaborator, category string) {
	collaboratorErrorsTotal.WithLabelValues(
		normalizeCollaboratorLabel(collaborator),
		normalizeCategoryLabel(category),
	).Inc()
}

func normalizeIntentLabel(intent string) string {
	switch v := strings.ToLower(strings.TrimSpace(intent)); v {
	case "calculation", "outlet_info", "general_chat":
		return v
	default:
		return "unknown"
	}
}

func normalizeActionLabel(action string) string {
	switch v := strings.ToLower(strings.TrimSpace(action)); v {
	case "ask_for_info", "use_calculator", "use_outlet_lookup", "respond_directly":
		return v
	default:
		return "unknown"
	}
}

func normalizeCollaboratorLabel(name string) string {
	switch v := strings.ToLower(strings.TrimSpace(name)); v {
	case "calculator", "outlet", "product", "llm", "store":
		return v
	default:
		return "other"
	}
}

func normalizeCategoryLabel(category string) string {
	switch v := strings.ToLower(strings.TrimSpace(category)); v {
	case "unreachable", "rejected", "unknown":
		return v
	default:
		return "unknown"
	}
}
