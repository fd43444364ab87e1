package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

const (
	NarrativeSourceLLM      = "llm"
	NarrativeSourceFallback = "fallback"
)

// NarrativeMetrics is the closed set of metrics a coaching narrative can mention.
// A nil field is absent and is left out of both the prompt and the fallback text.
type NarrativeMetrics struct {
	TopSpikeCategory   *string  `json:"top_spike_category,omitempty"`
	UntouchablePct     *float64 `json:"untouchable_pct,omitempty"`
	CreditUtilization  *MetricNumber `json:"credit_utilization,omitempty"`
	SubscriptionsCount *int          `json:"subscriptions_count,omitempty"`
}

// MetricNumber is a caller-supplied JSON number that keeps its integer form, so 42
// is echoed as "42" and 42.0 as "42.0"
type MetricNumber struct {
	Value   float64
	Integer bool
}

// NewIntegerMetric returns a metric that was written without a fraction or exponent
func NewIntegerMetric(v int64) *MetricNumber {
	return &MetricNumber{Value: float64(v), Integer: true}
}

// NewFloatMetric returns a metric that was written as a decimal number
func NewFloatMetric(v float64) *MetricNumber {
	return &MetricNumber{Value: v}
}

func (n *MetricNumber) UnmarshalJSON(data []byte) error {
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return err
	}
	v, err := num.Float64()
	if err != nil {
		return fmt.Errorf("metric %s is out of range: %w", num, err)
	}
	n.Value = v
	n.Integer = !strings.ContainsAny(num.String(), ".eE")
	return nil
}

func (n MetricNumber) MarshalJSON() ([]byte, error) {
	if n.Integer {
		return []byte(strconv.FormatFloat(n.Value, 'f', -1, 64)), nil
	}
	return json.Marshal(n.Value)
}

// HasAny reports whether at least one metric would appear in a fallback narrative
func (m *NarrativeMetrics) HasAny() bool {
	if m == nil {
		return false
	}
	return (m.TopSpikeCategory != nil && *m.TopSpikeCategory != "") ||
		m.UntouchablePct != nil ||
		m.CreditUtilization != nil ||
		m.SubscriptionsCount != nil
}

// Prompt is a single system + user exchange sent to the text-completion collaborator
type Prompt struct {
	System      string
	User        string
	Temperature float32
	MaxTokens   int32
}

// GeneratedText is the outcome of a step that may be rewritten by the collaborator
type GeneratedText struct {
	Text   string `json:"text"`
	Source string `json:"source"`
}

// IsFallback reports whether the deterministic text was used
func (g *GeneratedText) IsFallback() bool {
	return g.Source == NarrativeSourceFallback
}

type ExplainUntouchableParams struct {
	MonthlyIncome    float64
	BaselineSpend    float64
	ChosenPct        float64
	SuggestedPct     float64
	FirstMonthBuffer float64
}

// ExplainCreditParams mirrors a credit simulation summary. Nil fields print as N/A.
type ExplainCreditParams struct {
	Balance      float64
	APRAnnual    float64
	MinMonths    *int
	MinInterest  *float64
	PlusMonths   *int
	PlusInterest *float64
	Utilization  float64
}

// CollaboratorHealth is the result of the fixed PONG probe. It never carries an
// error status; failures are described in Error or Reason.
type CollaboratorHealth struct {
	OK     bool    `json:"ok"`
	HasKey bool    `json:"has_key"`
	Sample *string `json:"sample,omitempty"`
	Error  *string `json:"error,omitempty"`
	Reason string  `json:"reason,omitempty"`
}
