package analysis

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/runway-finance/backend/internal/types"
	"github.com/runway-finance/backend/pkg/forecast"
	"github.com/runway-finance/backend/pkg/models"
	"github.com/shopspring/decimal"
	"golang.org/x/text/message"
)

const (
	// DynamicHorizon is the number of days the cash flow is checked for.
	DynamicHorizon = 45

	// WorkingDays is the number of working days per month used to derive
	// the daily income.
	WorkingDays = 21

	// InvestmentYears is the reference horizon for opportunity costs.
	InvestmentYears = 10
)

// Scores of the verdicts before penalties.
const (
	ScoreGreen             = 100
	ScoreOverdraft         = 50
	ScoreLifestyle         = 60
	ScoreDoubleAlert       = 10
	ScoreInsufficientFunds = 0

	PenaltySafetyNet = 15
	PenaltyDebtRatio = 20
)

// InvestmentRate is the yearly return the money could have earned instead.
var InvestmentRate = decimal.NewFromFloat(0.05)

var twelve = decimal.NewFromInt(12)

// Dynamic is the full profile a purchase is checked against day by day.
type Dynamic struct {
	Profile models.ProfileSnapshot
	History []models.HistoryEntry
}

// impact is the static effect of a purchase on the budget.
type impact struct {
	relevantCost decimal.Decimal // Cost used for the derived metrics
	monthlyCost  decimal.Decimal // New recurring monthly cost
	newReserve   decimal.Decimal
	newRemainder decimal.Decimal
	insufficient bool // Paid from savings that do not cover it
	creditCost   decimal.Decimal
}

// cashflow is the result of the dynamic check.
type cashflow struct {
	checked        bool
	lowest         decimal.Decimal
	firstOverdraft time.Time
	curve          []models.CurvePoint
}

func (c cashflow) ok() bool {
	return !c.checked || !c.lowest.IsNegative()
}

// Analyze classifies a purchase intent.
//
// The static snapshot is always used. When dynamic is not nil, the purchase
// is also simulated on the projected cash flow of the next DynamicHorizon days.
func Analyze(snapshot models.Snapshot, intent models.PurchaseIntent, dynamic *Dynamic, now time.Time) models.AnalysisResult {
	p := newPrinter(snapshot.Locale)

	date := types.ResolveDate(intent.Date, now)
	period := PeriodOf(date, now)

	imp := staticImpact(snapshot, intent, period)
	metrics := deriveMetrics(snapshot, intent, imp)

	flow := checkCashflow(intent, dynamic, now)
	if flow.checked {
		metrics.LowestBalance = decimal.NewNullDecimal(flow.lowest)
		metrics.ProjectedCurve = flow.curve
		if !flow.firstOverdraft.IsZero() {
			d := types.Date(flow.firstOverdraft)
			metrics.FirstOverdraft = &d
		}
	}

	result := models.AnalysisResult{
		Period:  period,
		Issues:  []models.Issue{},
		Tips:    tips(p, intent, metrics),
		Metrics: metrics,
	}

	budgetOK := imp.newRemainder.GreaterThanOrEqual(snapshot.Rules.MinLivingRemainder)
	if intent.Mode == models.ModeCashSavings {
		budgetOK = !imp.insufficient
	}

	switch {
	case period == models.PeriodPast:
		result.Verdict = models.VerdictGreen
		result.Score = ScoreGreen
		result.Message = p.Sprintf("This past purchase is recorded as a regularization")

	case imp.insufficient:
		result.Verdict = models.VerdictRed
		result.Score = ScoreInsufficientFunds
		result.Message = p.Sprintf("Your savings of %s do not cover this purchase of %s", money(p, snapshot.Reserve), money(p, intent.Amount))
		result.Issues = append(result.Issues, models.Issue{Code: models.IssueInsufficientFunds, Level: models.VerdictRed, Message: result.Message})

	case budgetOK && flow.ok():
		result.Verdict = models.VerdictGreen
		result.Score = ScoreGreen
		result.Message = p.Sprintf("This purchase fits your budget and your cash flow")

	case budgetOK:
		result.Verdict = models.VerdictOrange
		result.Score = ScoreOverdraft
		result.Message = p.Sprintf("Your balance is projected to drop to %s, first below zero on %s", money(p, flow.lowest), types.DateKey(flow.firstOverdraft))
		result.Issues = append(result.Issues, models.Issue{Code: models.IssueProjectedOverdraft, Level: models.VerdictOrange, Message: result.Message})

	case flow.ok():
		result.Verdict = models.VerdictOrange
		result.Score = ScoreLifestyle
		result.Message = p.Sprintf("Only %s would be left to live on each month, below the %s you need", money(p, imp.newRemainder), money(p, snapshot.Rules.MinLivingRemainder))
		result.Issues = append(result.Issues, models.Issue{Code: models.IssueLifestyle, Level: models.VerdictOrange, Message: result.Message})

	default:
		result.Verdict = models.VerdictRed
		result.Score = ScoreDoubleAlert
		result.Message = p.Sprintf("This purchase strains both your monthly budget and your cash flow")
		result.Issues = append(result.Issues, models.Issue{Code: models.IssueDoubleAlert, Level: models.VerdictRed, Message: result.Message})
	}

	if period != models.PeriodPast && !intent.Reimbursable {
		applyPenalties(p, &result, snapshot, imp, metrics)
	}

	log.Debug().
		Str("mode", string(intent.Mode)).
		Str("period", string(period)).
		Str("verdict", string(result.Verdict)).
		Int("score", result.Score).
		Bool("dynamic", flow.checked).
		Msg("purchase analyzed")

	return result
}

// PeriodOf places a purchase date relative to now.
func PeriodOf(date, now time.Time) models.Period {
	today := types.Midday(now)

	switch {
	case types.Midday(date).Before(today):
		return models.PeriodPast
	case types.MonthOf(date).Equal(types.MonthOf(today)):
		return models.PeriodCurrent
	}
	return models.PeriodFuture
}

// staticImpact computes the effect of the purchase on reserve and monthly remainder.
//
// Only purchases of the current month reduce the remainder.
func staticImpact(snapshot models.Snapshot, intent models.PurchaseIntent, period models.Period) impact {
	imp := impact{
		relevantCost: intent.Amount,
		monthlyCost:  decimal.Zero,
		newReserve:   snapshot.Reserve,
		newRemainder: snapshot.Remainder,
		creditCost:   decimal.Zero,
	}

	deduction := decimal.Zero

	switch intent.Mode {
	case models.ModeCashSavings:
		imp.insufficient = snapshot.Reserve.LessThan(intent.Amount)
		imp.newReserve = decimal.Max(snapshot.Reserve.Sub(intent.Amount), decimal.Zero)

	case models.ModeCashAccount:
		deduction = intent.Amount

	case models.ModeSubscription:
		imp.monthlyCost = intent.Amount
		imp.relevantCost = intent.Amount.Mul(twelve)
		deduction = intent.Amount

	case models.ModeCredit, models.ModeSplit:
		imp.monthlyCost = intent.Installment()
		imp.relevantCost = intent.TotalRepayable()
		imp.creditCost = intent.TotalRepayable().Sub(intent.Amount)
		deduction = imp.monthlyCost
	}

	if period == models.PeriodCurrent {
		imp.newRemainder = imp.newRemainder.Sub(deduction)
	}

	return imp
}

// deriveMetrics computes the cost metrics and projected ratios.
func deriveMetrics(snapshot models.Snapshot, intent models.PurchaseIntent, imp impact) models.Metrics {
	mandatory := snapshot.MandatoryExpenses.Add(imp.monthlyCost)

	m := models.Metrics{
		RealCost:          imp.relevantCost,
		NewReserve:        imp.newReserve,
		NewRemainder:      imp.newRemainder,
		NewSafetyMonths:   SafetyMonths(imp.newReserve, mandatory).Round(2),
		NewEngagementRate: EngagementRate(mandatory, snapshot.MonthlyIncome).Round(2),
		MonthlyCost:       imp.monthlyCost,
		OpportunityCost:   OpportunityCost(imp.relevantCost).Round(2),
		CreditCost:        imp.creditCost,
		WorkDays:          decimal.Zero,
		ProjectedCurve:    []models.CurvePoint{},
	}

	if daily := snapshot.MonthlyIncome.Div(decimal.NewFromInt(WorkingDays)); daily.GreaterThan(decimal.NewFromInt(1)) {
		m.WorkDays = imp.relevantCost.Div(daily).Round(1)
	}

	if intent.Reimbursable {
		m.RealCost = decimal.Zero
		m.CreditCost = decimal.Zero
		m.OpportunityCost = decimal.Zero
		m.WorkDays = decimal.Zero
	} else if intent.Professional {
		m.OpportunityCost = decimal.Zero
	}

	return m
}

// OpportunityCost is the growth forgone by spending instead of investing
// at InvestmentRate for InvestmentYears.
func OpportunityCost(outflow decimal.Decimal) decimal.Decimal {
	if !outflow.IsPositive() {
		return decimal.Zero
	}

	factor := decimal.NewFromInt(1).Add(InvestmentRate).Pow(decimal.NewFromInt(InvestmentYears))
	return outflow.Mul(factor).Sub(outflow)
}

// checkCashflow projects the cash flow with the purchase and finds its lowest point.
func checkCashflow(intent models.PurchaseIntent, dynamic *Dynamic, now time.Time) cashflow {
	if dynamic == nil {
		return cashflow{}
	}

	timeline := forecast.Build(forecast.Input{
		Profile:   dynamic.Profile,
		History:   dynamic.History,
		Simulated: forecast.Simulate(intent, now),
		Horizon:   DynamicHorizon,
		Now:       now,
	})

	flow := cashflow{checked: true, curve: []models.CurvePoint{}}
	first := true

	for _, record := range timeline.Days() {
		if !record.Balance.Valid {
			continue
		}

		balance := record.Balance.Decimal
		if first || balance.LessThan(flow.lowest) {
			flow.lowest = balance
			first = false
		}

		if balance.IsNegative() && flow.firstOverdraft.IsZero() {
			flow.firstOverdraft = record.Date
		}

		flow.curve = append(flow.curve, models.CurvePoint{Date: types.Date(record.Date), Balance: balance.Round(0)})
	}

	return flow
}

// applyPenalties adds the safety net and debt ratio issues and lowers the score.
func applyPenalties(p *message.Printer, result *models.AnalysisResult, snapshot models.Snapshot, imp impact, metrics models.Metrics) {
	rules := snapshot.Rules
	mandatory := snapshot.MandatoryExpenses.Add(imp.monthlyCost)

	if SafetyMonths(imp.newReserve, mandatory).LessThan(rules.TargetSafetyMonths) {
		result.Score -= PenaltySafetyNet
		result.Issues = append(result.Issues, models.Issue{
			Code:    models.IssueLowSafetyNet,
			Level:   models.VerdictOrange,
			Message: p.Sprintf("Your savings would cover %s months of expenses, less than the %s months recommended", metrics.NewSafetyMonths.StringFixed(1), rules.TargetSafetyMonths.String()),
		})
	}

	if EngagementRate(mandatory, snapshot.MonthlyIncome).GreaterThan(rules.MaxDebtRatio) {
		result.Score -= PenaltyDebtRatio
		result.Issues = append(result.Issues, models.Issue{
			Code:    models.IssueHighDebtRatio,
			Level:   models.VerdictOrange,
			Message: p.Sprintf("Your commitments would take %s%% of your income, more than the %s%% limit", metrics.NewEngagementRate.StringFixed(1), rules.MaxDebtRatio.String()),
		})
	}

	if result.Score < 0 {
		result.Score = 0
	}
}
