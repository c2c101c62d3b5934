package metrics

import (
	"github.com/osse101/Reforge_Go/internal/domain"
)

// RecordAttempt updates the reforge counters for one resolved attempt
func RecordAttempt(result *domain.AttemptResult) {
	if result == nil {
		return
	}

	if result.Outcome == domain.OutcomeCannotAttempt {
		ReforgeRefusals.WithLabelValues(string(result.Reason)).Inc()
		return
	}

	ReforgeAttempts.WithLabelValues(string(result.Outcome), string(result.Category)).Inc()
	if result.TotalCost > 0 {
		CoinsSpent.Add(result.TotalCost)
	}
	if result.Outcome == domain.OutcomeFailure {
		ItemsDestroyed.Inc()
	}

	returned := 0
	for _, m := range result.Returned {
		returned += m.Count
	}
	if returned > 0 {
		MaterialsRefunded.Add(float64(returned))
	}
}

// RecordRefusal counts a request refused during validation
func RecordRefusal(reason string) {
	ReforgeRefusals.WithLabelValues(reason).Inc()
}

// RecordMaterialsConsumed counts material units taken by an attempt
func RecordMaterialsConsumed(units int) {
	if units > 0 {
		MaterialsConsumed.Add(float64(units))
	}
}

// RecordRefundFailure counts coins that could not be handed back
func RecordRefundFailure(amount float64) {
	RefundFailures.Inc()
	if amount > 0 {
		CoinsUnrefunded.Add(amount)
	}
}

// RecordSecurityEvent counts one refused or suspicious client request
func RecordSecurityEvent(event string) {
	SecurityEvents.WithLabelValues(event).Inc()
}
