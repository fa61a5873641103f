package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
)

// ItemCategory is the category of a recurring item in a profile.
type ItemCategory string

const (
	CategoryIncome              ItemCategory = "income"
	CategoryFixedCost           ItemCategory = "fixed_cost"
	CategorySubscription        ItemCategory = "subscription"
	CategoryCredit              ItemCategory = "credit"
	CategorySavingsContribution ItemCategory = "savings_contribution"
)

// DefaultDay returns the day of month an item of the category triggers on
// when the item does not specify one.
func (c ItemCategory) DefaultDay() int {
	switch c {
	case CategoryIncome:
		return 1
	case CategoryFixedCost:
		return 5
	case CategorySubscription:
		return 10
	case CategoryCredit:
		return 15
	case CategorySavingsContribution:
		return 20
	}
	return 1
}

// RecurringItem is a monthly cash movement declared by the user.
//
// Amounts are always positive, the category decides the direction.
type RecurringItem struct {
	Name       string          `json:"name" example:"Rent"`
	Amount     decimal.Decimal `json:"amount" example:"800"`
	DayOfMonth int             `json:"dayOfMonth" example:"5"` // 0 means the category default
}

// ProfileSnapshot is the declared financial state of a user at one point in time.
type ProfileSnapshot struct {
	Balance              decimal.Decimal `json:"balance" example:"1520.35"`                   // Account balance at BalanceDate
	BalanceDate          time.Time       `json:"balanceDate" example:"2026-10-10"`            // Date the balance was declared for
	UpdatedAt            time.Time       `json:"updatedAt" example:"2026-10-10"`              // Last time the profile was updated
	Savings              decimal.Decimal `json:"savings" example:"4000"`                      // Reserve held outside the current account
	Incomes              []RecurringItem `json:"incomes"`                                     // Salaries, pensions, allowances
	FixedCosts           []RecurringItem `json:"fixedCosts"`                                  // Rent, insurance, utilities
	Subscriptions        []RecurringItem `json:"subscriptions"`                               // Streaming, phone, gym
	Credits              []RecurringItem `json:"credits"`                                     // Loan installments
	SavingsContributions []RecurringItem `json:"savingsContributions"`                        // Standing transfers to savings
	VariableBudget       decimal.Decimal `json:"variableBudget" example:"300"`                // Monthly budget for groceries, leisure and other irregular spending
	Persona              Persona         `json:"persona" example:"employee"`                  // Profile type used to resolve thresholds
	Locale               language.Tag    `json:"locale" swaggertype:"string" example:"fr-FR"` // Locale used to format amounts in messages
}

// Items returns the recurring items of the profile for a category.
func (p ProfileSnapshot) Items(category ItemCategory) []RecurringItem {
	switch category {
	case CategoryIncome:
		return p.Incomes
	case CategoryFixedCost:
		return p.FixedCosts
	case CategorySubscription:
		return p.Subscriptions
	case CategoryCredit:
		return p.Credits
	case CategorySavingsContribution:
		return p.SavingsContributions
	}
	return nil
}

// Total returns the monthly sum of all positive items of a category.
func (p ProfileSnapshot) Total(category ItemCategory) decimal.Decimal {
	total := decimal.Zero
	for _, item := range p.Items(category) {
		if item.Amount.IsPositive() {
			total = total.Add(item.Amount)
		}
	}
	return total
}

// AnchorDate returns the date the declared balance is valid for.
//
// It is the balance date if set, the last update otherwise and now as a last resort.
func (p ProfileSnapshot) AnchorDate(now time.Time) time.Time {
	if !p.BalanceDate.IsZero() {
		return p.BalanceDate
	}

	if !p.UpdatedAt.IsZero() {
		return p.UpdatedAt
	}

	return now
}

// HistoryEntry is a past purchase decision.
type HistoryEntry struct {
	ID       uuid.UUID       `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"`
	Purchase PurchaseIntent  `json:"purchase"`
	Date     time.Time       `json:"date" example:"2026-09-14"` // Used when the purchase itself has no date
	Result   *AnalysisResult `json:"result"`                    // The analysis made at the time, if any
}
