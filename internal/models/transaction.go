package models

import (
	"errors"
	"fmt"
	"math"
	"time"
)

const (
	AccountTypeChecking = "checking"
	AccountTypeCredit   = "credit"
	AccountTypeSavings  = "savings"
	AccountTypeIncome   = "income"
)

var (
	ErrInvalidAccountType = errors.New("invalid account type")
	ErrNonFiniteAmount    = errors.New("transaction amount must be a finite number")
	ErrMissingDate        = errors.New("transaction date is required")
)

// Transaction is one normalized record of a user's history. Negative amounts are
// outflows (spend), positive amounts are inflows. Date is the calendar date used for
// month grouping; OccurredAt keeps the time of day when the caller sent one.
type Transaction struct {
	Date        time.Time `json:"date"`
	OccurredAt  time.Time `json:"-"`
	Amount      float64   `json:"amount"`
	Merchant    string    `json:"merchant"`
	Category    string    `json:"category"`
	AccountType string    `json:"account_type"`
	IsRecurring bool      `json:"is_recurring"`
}

// Validate checks the invariants every normalized transaction must hold
func (t *Transaction) Validate() error {
	if t.Date.IsZero() {
		return ErrMissingDate
	}
	if math.IsNaN(t.Amount) || math.IsInf(t.Amount, 0) {
		return ErrNonFiniteAmount
	}
	if !IsValidAccountType(t.AccountType) {
		return ErrInvalidAccountType
	}
	return nil
}

// IsSpend reports whether the transaction is an outflow
func (t *Transaction) IsSpend() bool {
	return t.Amount < 0
}

// Instant is the moment the transaction happened, its calendar date when no time
// of day is known
func (t *Transaction) Instant() time.Time {
	if t.OccurredAt.IsZero() {
		return t.Date
	}
	return t.OccurredAt
}

// Month returns the first-of-month anchor of the transaction date
func (t *Transaction) Month() time.Time {
	return MonthAnchor(t.Date)
}

// MonthAnchor truncates a date to midnight UTC on the first day of its month
func MonthAnchor(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// IsValidAccountType checks the account type against the allowed set
func IsValidAccountType(accountType string) bool {
	switch accountType {
	case AccountTypeChecking, AccountTypeCredit, AccountTypeSavings, AccountTypeIncome:
		return true
	default:
		return false
	}
}

// AllAccountTypes returns the accepted account types in display order
func AllAccountTypes() []string {
	return []string{AccountTypeChecking, AccountTypeCredit, AccountTypeSavings, AccountTypeIncome}
}

// NormalizedTransactions holds the two views every detector reads from.
// Both slices are read-only once built.
type NormalizedTransactions struct {
	All   []Transaction
	Spend []Transaction
}

// IsEmpty reports whether no spend rows are available for analysis
func (n *NormalizedTransactions) IsEmpty() bool {
	return n == nil || len(n.Spend) == 0
}

var acceptedDateLayouts = []string{
	DateLayout,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseTimestamp reads a calendar date in YYYY-MM-DD form or an ISO-8601 timestamp.
// Date-only values and timestamps without an offset are taken as UTC.
func ParseTimestamp(value string) (time.Time, error) {
	for _, layout := range acceptedDateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", value)
}

// ParseDate reads the same forms as ParseTimestamp and keeps only the date part, as
// written. The result is midnight UTC of that calendar date.
func ParseDate(value string) (time.Time, error) {
	parsed, err := ParseTimestamp(value)
	if err != nil {
		return time.Time{}, err
	}
	return CalendarDate(parsed), nil
}

// CalendarDate drops the time of day, keeping the date in the timestamp's own offset
func CalendarDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
