package dto

import "financial-coach/internal/models"

// MaxTransactionsPerRequest bounds the size of a single analysis request
const MaxTransactionsPerRequest = 20000

// TransactionInput is one raw transaction record as received on the wire
type TransactionInput struct {
	Date        string  `json:"date" validate:"required,iso_date"`
	Amount      float64 `json:"amount" validate:"finite"`
	Merchant    string  `json:"merchant" validate:"max=255"`
	Category    string  `json:"category" validate:"max=100"`
	AccountType string  `json:"account_type" validate:"required,account_type"`
	IsRecurring bool    `json:"is_recurring"`
}

// TransactionsRequest is the body shared by every spend analysis endpoint
type TransactionsRequest struct {
	Transactions []TransactionInput `json:"transactions" validate:"required,dive"`
}

type SpikesResponse struct {
	Spikes []models.AnomalySpike `json:"spikes"`
}

type MoversResponse struct {
	Movers []models.CategoryMover `json:"movers"`
}

type SubscriptionsResponse struct {
	Subscriptions []models.RecurringChargeGroup `json:"subscriptions"`
}
