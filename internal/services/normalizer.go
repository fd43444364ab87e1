package services

import (
	"errors"
	"fmt"

	"financial-coach/internal/dto"
	"financial-coach/internal/models"
)

var ErrInvalidTransaction = errors.New("invalid transaction")

type transactionNormalizer struct{}

func NewTransactionNormalizer() TransactionNormalizerInterface {
	return &transactionNormalizer{}
}

// Normalize rejects the whole batch on the first bad record; no partial output is
// produced.
func (n *transactionNormalizer) Normalize(inputs []dto.TransactionInput) (*models.NormalizedTransactions, error) {
	normalized := &models.NormalizedTransactions{
		All:   make([]models.Transaction, 0, len(inputs)),
		Spend: make([]models.Transaction, 0),
	}

	for i, input := range inputs {
		occurredAt, err := models.ParseTimestamp(input.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrInvalidTransaction, i, err)
		}

		txn := models.Transaction{
			Date:        models.CalendarDate(occurredAt),
			OccurredAt:  occurredAt,
			Amount:      input.Amount,
			Merchant:    input.Merchant,
			Category:    input.Category,
			AccountType: input.AccountType,
			IsRecurring: input.IsRecurring,
		}
		if err := txn.Validate(); err != nil {
			return nil, fmt.Errorf("%w: record %d: %w", ErrInvalidTransaction, i, err)
		}

		normalized.All = append(normalized.All, txn)
		if txn.IsSpend() {
			normalized.Spend = append(normalized.Spend, txn)
		}
	}

	return normalized, nil
}
