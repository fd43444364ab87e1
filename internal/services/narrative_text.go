package services

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"financial-coach/internal/models"
)

const (
	narrativeSystemPrompt = "You are a careful, friendly money coach. Be brief (2–3 sentences), concrete, and non-judgmental. Never give legal or tax advice."
	narrativeUserTemplate = "Metrics JSON: %s\nTurn the numbers into a short, encouraging weekly check-in. Include one tiny action the user can take next week."

	explainUntouchableSystemPrompt = "Rewrite the user's note in 2 short sentences, friendly and practical. Do NOT change any numbers or percentages. Keep them exactly as given."
	explainUntouchableNextStep     = " End with one tiny next step (e.g., try the suggested % for one paycheck)."

	explainCreditSystemPrompt = "Rewrite in 2 short sentences, friendly and practical. Do NOT change numbers or percentages; keep them identical."
	explainCreditNextStep     = " Suggest a tiny next step to lower utilization. If %.1f%% is less than 30%%, add the step but with a small compliment."

	healthProbeSystemPrompt = "Reply with exactly PONG"
	healthProbeUserPrompt   = "Test"
	healthProbeExpected     = "PONG"

	stableWeekNarrative = "Stable week. No notable anomalies."
	tinyActionSuffix    = " Tiny action: review one subscription."
	notAvailable        = "N/A"
)

func narrativePrompt(metrics models.NarrativeMetrics) models.Prompt {
	payload, err := json.Marshal(metrics)
	if err != nil {
		payload = []byte("{}")
	}
	return models.Prompt{
		System:      narrativeSystemPrompt,
		User:        fmt.Sprintf(narrativeUserTemplate, payload),
		Temperature: 0.25,
		MaxTokens:   180,
	}
}

// FallbackNarrative builds the deterministic check-in from whichever metrics are
// present, in a fixed order.
func FallbackNarrative(metrics models.NarrativeMetrics) string {
	parts := make([]string, 0, 4)

	if metrics.TopSpikeCategory != nil && *metrics.TopSpikeCategory != "" {
		parts = append(parts, fmt.Sprintf("Spending in %s was higher than usual.", *metrics.TopSpikeCategory))
	}
	if metrics.UntouchablePct != nil {
		parts = append(parts, fmt.Sprintf("Untouchable rate: %d%%.", int(*metrics.UntouchablePct*100)))
	}
	if metrics.CreditUtilization != nil {
		parts = append(parts, fmt.Sprintf("Credit utilization: %s%%. Keep it <30%% if possible.", formatMetric(*metrics.CreditUtilization)))
	}
	if metrics.SubscriptionsCount != nil {
		parts = append(parts, fmt.Sprintf("%d recurring charges on file.", *metrics.SubscriptionsCount))
	}

	text := strings.Join(parts, " ")
	if text == "" {
		text = stableWeekNarrative
	}
	return text + tinyActionSuffix
}

// UntouchableExplanation is the deterministic note the collaborator may rephrase
func UntouchableExplanation(p models.ExplainUntouchableParams) string {
	chosenSave := p.MonthlyIncome * p.ChosenPct
	suggestedSave := p.MonthlyIncome * p.SuggestedPct
	deltaSave := suggestedSave - chosenSave
	spendable := p.MonthlyIncome - chosenSave
	netAfterBaseline := spendable - p.BaselineSpend

	return fmt.Sprintf(
		"At %d%% you’ll set aside $%.0f this month, leaving $%.0f to spend and a first-month buffer of $%.0f. "+
			"Our safe bound suggests %d%% (≈ $%.0f), %s$%.0f vs your choice. "+
			"Net after baseline $%.0f is %s$%.0f.",
		int(p.ChosenPct*100), chosenSave, spendable, p.FirstMonthBuffer,
		int(p.SuggestedPct*100), suggestedSave, plusIfNonNegative(deltaSave), deltaSave,
		p.BaselineSpend, plusIfNonNegative(netAfterBaseline), netAfterBaseline,
	)
}

func untouchablePrompt(base string) models.Prompt {
	return models.Prompt{
		System:      explainUntouchableSystemPrompt,
		User:        base + explainUntouchableNextStep,
		Temperature: 0.15,
		MaxTokens:   140,
	}
}

// CreditExplanation is the deterministic credit note; missing values print as N/A
func CreditExplanation(p models.ExplainCreditParams) string {
	return fmt.Sprintf(
		"Balance $%.0f at %.2f%% APR. Minimum only: %s months, $%s interest. Min+extra: %s months, $%s interest. Current utilization %.1f%%.",
		p.Balance, p.APRAnnual,
		optionalInt(p.MinMonths), optionalFloat(p.MinInterest),
		optionalInt(p.PlusMonths), optionalFloat(p.PlusInterest),
		p.Utilization,
	)
}

func creditPrompt(base string, utilization float64) models.Prompt {
	return models.Prompt{
		System:      explainCreditSystemPrompt,
		User:        base + fmt.Sprintf(explainCreditNextStep, utilization),
		Temperature: 0.15,
		MaxTokens:   140,
	}
}

func healthProbePrompt() models.Prompt {
	return models.Prompt{
		System:      healthProbeSystemPrompt,
		User:        healthProbeUserPrompt,
		Temperature: 0,
		MaxTokens:   5,
	}
}

func plusIfNonNegative(v float64) string {
	if v >= 0 {
		return "+"
	}
	return ""
}

func optionalInt(v *int) string {
	if v == nil {
		return notAvailable
	}
	return strconv.Itoa(*v)
}

func optionalFloat(v *float64) string {
	if v == nil {
		return notAvailable
	}
	return formatNumber(*v)
}

// formatMetric prints an integer metric without a fraction
func formatMetric(n models.MetricNumber) string {
	if n.Integer {
		return strconv.FormatFloat(n.Value, 'f', -1, 64)
	}
	return formatNumber(n.Value)
}

// formatNumber prints the shortest exact representation, keeping a trailing ".0" on
// whole numbers so 42 reads as 42.0.
func formatNumber(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".") {
		s += ".0"
	}
	return s
}
