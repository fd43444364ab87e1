package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func month(year int, m time.Month) time.Time {
	return time.Date(year, m, 1, 0, 0, 0, 0, time.UTC)
}

func sampleAggregate() *MonthlyCategoryAggregate {
	return &MonthlyCategoryAggregate{
		Rows: []MonthlyCategoryTotal{
			{Month: month(2025, 1), Category: "Dining", Total: -100},
			{Month: month(2025, 2), Category: "Dining", Total: -120},
			{Month: month(2025, 3), Category: "Dining", Total: -300},
			{Month: month(2025, 1), Category: "Groceries", Total: -250},
			{Month: month(2025, 3), Category: "Travel", Total: -50},
		},
		LatestMonth: month(2025, 3),
	}
}

func TestMonthlyCategoryAggregate_Categories(t *testing.T) {
	assert.Equal(t, []string{"Dining", "Groceries", "Travel"}, sampleAggregate().Categories())

	var empty *MonthlyCategoryAggregate
	assert.Nil(t, empty.Categories())
}

func TestMonthlyCategoryAggregate_LatestTotal(t *testing.T) {
	agg := sampleAggregate()

	assert.Equal(t, -300.0, agg.LatestTotal("Dining"))
	assert.Equal(t, 0.0, agg.LatestTotal("Groceries"))
	assert.Equal(t, -50.0, agg.LatestTotal("Travel"))
}

func TestMonthlyCategoryAggregate_History(t *testing.T) {
	agg := sampleAggregate()

	assert.Equal(t, []float64{-100, -120}, agg.History("Dining"))
	assert.Equal(t, []float64{-250}, agg.History("Groceries"))
	assert.Empty(t, agg.History("Travel"))
}

func TestMonthlyCategoryAggregate_LatestMonthLabel(t *testing.T) {
	assert.Equal(t, "2025-03-01", sampleAggregate().LatestMonthLabel())
	assert.Equal(t, "", (&MonthlyCategoryAggregate{}).LatestMonthLabel())
}
