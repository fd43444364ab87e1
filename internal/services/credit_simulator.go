package services

import (
	"errors"
	"fmt"
	"math"

	"financial-coach/internal/models"
)

const (
	MaxPayoffMonths = 600

	NotePaymentTooLow = "Payment too low to reduce balance."
	NotePayoffCapHit  = "Balance not paid off within 600 months."

	highUtilizationThreshold = 0.5
	mildUtilizationThreshold = 0.3

	AlertHighUtilization = "High utilization (≥50%) can significantly hurt credit scores. Aim to pay down before statement close."
	AlertMildUtilization = "Utilization above 30% may start to affect your score. Consider a small extra payment."
)

var ErrInvalidCreditInput = errors.New("invalid credit input")

type creditSimulator struct{}

func NewCreditSimulator() CreditSimulatorInterface {
	return &creditSimulator{}
}

// SimulatePayoff runs the shared amortization loop once with the minimum payment and
// once with the extra payment added.
func (s *creditSimulator) SimulatePayoff(params models.CreditParams) (*models.CreditPayoffSimulation, error) {
	if err := validateCreditParams(params); err != nil {
		return nil, err
	}

	monthlyRate := params.APRAnnual / 100 / 12

	return &models.CreditPayoffSimulation{
		MinOnly:      amortize(params.Balance, monthlyRate, params.MinPayment, 0),
		MinPlusExtra: amortize(params.Balance, monthlyRate, params.MinPayment, params.ExtraPayment),
	}, nil
}

// Guardrails treats a zero credit limit as fully utilized
func (s *creditSimulator) Guardrails(balance, creditLimit float64) models.UtilizationGuardrails {
	utilization := 1.0
	if creditLimit != 0 {
		utilization = balance / creditLimit
	}

	alerts := make([]string, 0, 1)
	switch {
	case utilization >= highUtilizationThreshold:
		alerts = append(alerts, AlertHighUtilization)
	case utilization >= mildUtilizationThreshold:
		alerts = append(alerts, AlertMildUtilization)
	}

	return models.UtilizationGuardrails{
		Utilization: round(utilization*100, 1),
		Alerts:      alerts,
	}
}

// Plan combines both payoff runs with the utilization guardrail
func (s *creditSimulator) Plan(params models.CreditParams) (*models.CreditRepaymentPlan, error) {
	simulation, err := s.SimulatePayoff(params)
	if err != nil {
		return nil, err
	}

	return &models.CreditRepaymentPlan{
		Simulation: *simulation,
		Guardrails: s.Guardrails(params.Balance, params.CreditLimit),
	}, nil
}

func validateCreditParams(params models.CreditParams) error {
	if !isFinite(params.Balance, params.APRAnnual, params.MinPayment, params.ExtraPayment, params.CreditLimit) {
		return fmt.Errorf("%w: all amounts must be finite numbers", ErrInvalidCreditInput)
	}
	if params.Balance < 0 {
		return fmt.Errorf("%w: balance must not be negative", ErrInvalidCreditInput)
	}
	return nil
}

// amortize stops when the balance reaches zero, when the payment cannot cover the
// interest, or at MaxPayoffMonths. Rows are rounded, the running balance is not.
func amortize(balance, monthlyRate, minPayment, extra float64) models.PayoffSchedule {
	months := 0
	totalInterest := 0.0
	schedule := make([]models.PayoffRow, 0)

	for balance > 0 && months < MaxPayoffMonths {
		interest := balance * monthlyRate
		payment := math.Max(minPayment, 0) + extra
		principal := payment - interest

		if principal <= 0 {
			schedule = append(schedule, models.PayoffRow{
				Month:    months + 1,
				Balance:  round(balance, 2),
				Interest: round(interest, 2),
				Payment:  round(payment, 2),
			})
			return models.PayoffSchedule{
				Schedule: schedule,
				Note:     NotePaymentTooLow,
			}
		}

		balance = math.Max(0, balance-principal)
		totalInterest += interest
		months++
		schedule = append(schedule, models.PayoffRow{
			Month:    months,
			Balance:  round(balance, 2),
			Interest: round(interest, 2),
			Payment:  round(payment, 2),
		})
	}

	roundedInterest := round(totalInterest, 2)
	result := models.PayoffSchedule{
		Months:        &months,
		TotalInterest: &roundedInterest,
		Schedule:      schedule,
	}
	if balance > 0 {
		result.Note = NotePayoffCapHit
	}
	return result
}
