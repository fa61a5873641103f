package models_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/runway-finance/backend/pkg/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestItemCategoryDefaultDay(t *testing.T) {
	tests := []struct {
		category models.ItemCategory
		day      int
	}{
		{models.CategoryIncome, 1},
		{models.CategoryFixedCost, 5},
		{models.CategorySubscription, 10},
		{models.CategoryCredit, 15},
		{models.CategorySavingsContribution, 20},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.day, tt.category.DefaultDay(), tt.category)
	}
}

func TestProfileAnchorDate(t *testing.T) {
	now := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)
	balanceDate := time.Date(2026, 10, 10, 0, 0, 0, 0, time.UTC)
	updatedAt := time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, balanceDate, models.ProfileSnapshot{BalanceDate: balanceDate, UpdatedAt: updatedAt}.AnchorDate(now))
	assert.Equal(t, updatedAt, models.ProfileSnapshot{UpdatedAt: updatedAt}.AnchorDate(now))
	assert.Equal(t, now, models.ProfileSnapshot{}.AnchorDate(now))
}

func TestProfileTotalIgnoresNonPositive(t *testing.T) {
	p := models.ProfileSnapshot{
		FixedCosts: []models.RecurringItem{
			{Name: "Rent", Amount: decimal.NewFromInt(800)},
			{Name: "Broken", Amount: decimal.NewFromInt(-50)},
			{Name: "Insurance", Amount: decimal.NewFromFloat(35.5)},
		},
	}

	assert.True(t, decimal.NewFromFloat(835.5).Equal(p.Total(models.CategoryFixedCost)))
	assert.True(t, p.Total(models.CategoryIncome).IsZero())
}

func TestPurchaseTotalRepayable(t *testing.T) {
	credit := models.PurchaseIntent{Mode: models.ModeCredit, Amount: decimal.NewFromInt(1200), Rate: decimal.NewFromInt(6), Duration: 12}
	assert.True(t, decimal.NewFromInt(1272).Equal(credit.TotalRepayable()), credit.TotalRepayable().String())
	assert.True(t, decimal.NewFromInt(106).Equal(credit.Installment()))

	split := models.PurchaseIntent{Mode: models.ModeSplit, Amount: decimal.NewFromInt(300), Rate: decimal.NewFromInt(6), Duration: 3}
	assert.True(t, decimal.NewFromInt(300).Equal(split.TotalRepayable()))
	assert.True(t, decimal.NewFromInt(100).Equal(split.Installment()))

	noDuration := models.PurchaseIntent{Mode: models.ModeSplit, Amount: decimal.NewFromInt(300)}
	assert.Equal(t, 1, noDuration.Months())
	assert.True(t, decimal.NewFromInt(300).Equal(noDuration.Installment()))
}

func TestPersonaRules(t *testing.T) {
	assert.Equal(t, models.PersonaEmployee.Rules(), models.Persona("astronaut").Rules())
	assert.True(t, decimal.NewFromInt(6).Equal(models.PersonaFreelancer.Rules().TargetSafetyMonths))
}

func TestDailyRecordMarshalJSON(t *testing.T) {
	known := models.DailyRecord{
		Date:    time.Date(2026, 10, 11, 12, 0, 0, 0, time.UTC),
		Balance: decimal.NewNullDecimal(decimal.NewFromFloat(489.6)),
		Status:  models.StatusSafe,
	}
	out, err := json.Marshal(known)
	assert.Nil(t, err)
	assert.JSONEq(t, `{"date": "2026-10-11", "balance": 490, "events": [], "variableSpending": "0", "status": "safe"}`, string(out))

	unknown := models.DailyRecord{
		Date:   time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC),
		Status: models.StatusSafe,
	}
	out, err = json.Marshal(unknown)
	assert.Nil(t, err)
	assert.Contains(t, string(out), `"balance":null`)
}

func TestTimelineWithWarningThreshold(t *testing.T) {
	day := func(d int, balance float64) models.DailyRecord {
		status := models.StatusSafe
		if balance < 0 {
			status = models.StatusDanger
		}
		return models.DailyRecord{
			Date:    time.Date(2026, 10, d, 12, 0, 0, 0, time.UTC),
			Balance: decimal.NewNullDecimal(decimal.NewFromFloat(balance)),
			Status:  status,
		}
	}

	timeline := models.Timeline{{Days: []models.DailyRecord{day(1, 500), day(2, 80), day(3, -10)}}}
	warned := timeline.WithWarningThreshold(decimal.NewFromInt(100))

	assert.Equal(t, models.StatusSafe, warned[0].Days[0].Status)
	assert.Equal(t, models.StatusWarning, warned[0].Days[1].Status)
	assert.Equal(t, models.StatusDanger, warned[0].Days[2].Status)

	// The original is left untouched
	assert.Equal(t, models.StatusSafe, timeline[0].Days[1].Status)
}

func TestGoalNormalize(t *testing.T) {
	g := models.Goal{Name: "  Trip  \t", Target: decimal.NewFromInt(-5), Saved: decimal.NewFromInt(10)}.Normalize()

	assert.Equal(t, "Trip", g.Name)
	assert.True(t, g.Target.IsZero())
	assert.True(t, decimal.NewFromInt(10).Equal(g.Saved))
}
