package models

import (
	"github.com/runway-finance/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
)

// Verdict is the decision tier for a purchase.
type Verdict string

const (
	VerdictGreen  Verdict = "green"
	VerdictOrange Verdict = "orange"
	VerdictRed    Verdict = "red"
)

// Period places a purchase date relative to today.
type Period string

const (
	PeriodPast    Period = "past"
	PeriodCurrent Period = "current"
	PeriodFuture  Period = "future"
)

// IssueCode identifies the kind of an issue.
type IssueCode string

const (
	IssueInsufficientFunds  IssueCode = "insufficient_funds"
	IssueProjectedOverdraft IssueCode = "projected_overdraft"
	IssueLifestyle          IssueCode = "lifestyle"
	IssueDoubleAlert        IssueCode = "double_alert"
	IssueLowSafetyNet       IssueCode = "low_safety_net"
	IssueHighDebtRatio      IssueCode = "high_debt_ratio"
)

// Issue is a problem found while analyzing a purchase.
type Issue struct {
	Code    IssueCode `json:"code" example:"lifestyle"`
	Level   Verdict   `json:"level" example:"orange"`
	Message string    `json:"message" example:"Only 120 € would be left to live on this month"`
}

// Snapshot is the static budget state a purchase is judged against.
type Snapshot struct {
	MonthlyIncome     decimal.Decimal `json:"monthlyIncome" example:"2000"`
	MandatoryExpenses decimal.Decimal `json:"mandatoryExpenses" example:"950"` // Fixed costs, subscriptions and credits
	Remainder         decimal.Decimal `json:"remainder" example:"450"`         // Discretionary money left each month
	Reserve           decimal.Decimal `json:"reserve" example:"4000"`          // Savings available for cash purchases
	CapacityToSave    decimal.Decimal `json:"capacityToSave" example:"750"`    // Income minus recurring commitments
	SafetyMonths      decimal.Decimal `json:"safetyMonths" example:"4.2"`      // Reserve divided by mandatory expenses
	EngagementRate    decimal.Decimal `json:"engagementRate" example:"47.5"`   // Mandatory expenses in percent of income
	Persona           Persona         `json:"persona" example:"employee"`
	Rules             PersonaRules    `json:"rules"`
	Locale            language.Tag    `json:"locale" swaggertype:"string" example:"fr-FR"` // Locale used to format amounts in messages
}

// CurvePoint is one day of a projected balance curve.
type CurvePoint struct {
	Date    types.Date      `json:"date" swaggertype:"string" example:"2026-10-21"`
	Balance decimal.Decimal `json:"balance" example:"830"`
}

// Metrics are the projected figures of a purchase.
type Metrics struct {
	RealCost          decimal.Decimal     `json:"realCost" example:"1254"`                                  // Money that actually leaves the household
	NewReserve        decimal.Decimal     `json:"newReserve" example:"4000"`                                // Reserve after the purchase, never negative
	NewRemainder      decimal.Decimal     `json:"newRemainder" example:"345.5"`                             // Monthly remainder after the purchase
	NewSafetyMonths   decimal.Decimal     `json:"newSafetyMonths" example:"3.8"`                            // Capped at 99
	NewEngagementRate decimal.Decimal     `json:"newEngagementRate" example:"52.7"`                         // In percent of income
	MonthlyCost       decimal.Decimal     `json:"monthlyCost" example:"104.5"`                              // New recurring monthly cost
	OpportunityCost   decimal.Decimal     `json:"opportunityCost" example:"788.6"`                          // Investment growth forgone
	CreditCost        decimal.Decimal     `json:"creditCost" example:"54"`                                  // Interest paid
	WorkDays          decimal.Decimal     `json:"workDays" example:"13.2"`                                  // Days of work the cost represents
	LowestBalance     decimal.NullDecimal `json:"lowestBalance" swaggertype:"number" example:"-120"`        // Lowest projected balance over the next 45 days
	FirstOverdraft    *types.Date         `json:"firstOverdraft" swaggertype:"string" example:"2026-11-02"` // First day the balance is projected below zero
	ProjectedCurve    []CurvePoint        `json:"projectedCurve"`
}

// AnalysisResult is the verdict on a purchase intent.
type AnalysisResult struct {
	Verdict Verdict  `json:"verdict" example:"orange"`
	Score   int      `json:"score" example:"60"` // 0 to 100
	Period  Period   `json:"period" example:"current"`
	Message string   `json:"message" example:"Affordable, but your monthly margin shrinks"`
	Issues  []Issue  `json:"issues"`
	Tips    []string `json:"tips"`
	Metrics Metrics  `json:"metrics"`
}
