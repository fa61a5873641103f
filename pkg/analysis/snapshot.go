// Package analysis judges purchase intents against a budget snapshot and the
// projected cash flow.
package analysis

import (
	"github.com/runway-finance/backend/pkg/models"
	"github.com/shopspring/decimal"
)

// SafetyMonthsCap is the number of safety months reported when the reserve
// is positive and there are no mandatory expenses.
const SafetyMonthsCap = 99

var (
	hundred = decimal.NewFromInt(100)
	cap99   = decimal.NewFromInt(SafetyMonthsCap)
)

// NewSnapshot derives the static budget state from a profile.
func NewSnapshot(profile models.ProfileSnapshot) models.Snapshot {
	income := profile.Total(models.CategoryIncome)
	mandatory := profile.Total(models.CategoryFixedCost).
		Add(profile.Total(models.CategorySubscription)).
		Add(profile.Total(models.CategoryCredit))

	variable := decimal.Max(profile.VariableBudget, decimal.Zero)
	capacity := income.Sub(mandatory).Sub(variable)
	reserve := decimal.Max(profile.Savings, decimal.Zero)

	return models.Snapshot{
		MonthlyIncome:     income,
		MandatoryExpenses: mandatory,
		Remainder:         capacity.Sub(profile.Total(models.CategorySavingsContribution)),
		Reserve:           reserve,
		CapacityToSave:    capacity,
		SafetyMonths:      SafetyMonths(reserve, mandatory).Round(2),
		EngagementRate:    EngagementRate(mandatory, income).Round(2),
		Persona:           profile.Persona,
		Rules:             profile.Persona.Rules(),
		Locale:            profile.Locale,
	}
}

// SafetyMonths returns the number of months the reserve covers the mandatory
// expenses, capped at SafetyMonthsCap.
func SafetyMonths(reserve, mandatory decimal.Decimal) decimal.Decimal {
	if !mandatory.IsPositive() {
		if reserve.IsPositive() {
			return cap99
		}
		return decimal.Zero
	}

	return decimal.Min(reserve.Div(mandatory), cap99)
}

// EngagementRate returns the mandatory expenses in percent of the income.
//
// Without income, any commitment counts as a full engagement.
func EngagementRate(mandatory, income decimal.Decimal) decimal.Decimal {
	if !income.IsPositive() {
		if mandatory.IsPositive() {
			return hundred
		}
		return decimal.Zero
	}

	return mandatory.Div(income).Mul(hundred)
}
