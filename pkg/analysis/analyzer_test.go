package analysis_test

import (
	"testing"
	"time"

	"github.com/runway-finance/backend/pkg/analysis"
	"github.com/runway-finance/backend/pkg/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

var now = time.Date(2026, 9, 10, 9, 0, 0, 0, time.UTC)

// healthy returns a snapshot that triggers no penalty.
func healthy() models.Snapshot {
	return models.Snapshot{
		MonthlyIncome:     decimal.NewFromInt(2100),
		MandatoryExpenses: decimal.NewFromInt(600),
		Remainder:         decimal.NewFromInt(900),
		Reserve:           decimal.NewFromInt(5000),
		CapacityToSave:    decimal.NewFromInt(1000),
		Persona:           models.PersonaEmployee,
		Rules:             models.PersonaEmployee.Rules(),
	}
}

func cash(amount int64) models.PurchaseIntent {
	return models.PurchaseIntent{Name: "Purchase", Amount: decimal.NewFromInt(amount), Mode: models.ModeCashAccount}
}

// account returns a dynamic context with a flat balance.
func account(balance int64) *analysis.Dynamic {
	return &analysis.Dynamic{
		Profile: models.ProfileSnapshot{Balance: decimal.NewFromInt(balance), BalanceDate: now},
	}
}

func codes(issues []models.Issue) []models.IssueCode {
	out := []models.IssueCode{}
	for _, i := range issues {
		out = append(out, i.Code)
	}
	return out
}

func TestPeriodOf(t *testing.T) {
	tests := []struct {
		date time.Time
		want models.Period
	}{
		{time.Date(2026, 9, 9, 23, 0, 0, 0, time.UTC), models.PeriodPast},
		{time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC), models.PeriodPast},
		{time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC), models.PeriodCurrent},
		{time.Date(2026, 9, 30, 12, 0, 0, 0, time.UTC), models.PeriodCurrent},
		{time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC), models.PeriodFuture},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, analysis.PeriodOf(tt.date, now), tt.date.String())
	}
}

func TestAnalyzeVerdicts(t *testing.T) {
	tests := []struct {
		name    string
		intent  models.PurchaseIntent
		dynamic *analysis.Dynamic
		verdict models.Verdict
		score   int
		issues  []models.IssueCode
	}{
		{"Green", cash(100), nil, models.VerdictGreen, 100, []models.IssueCode{}},
		{"Green with cash flow", cash(100), account(1000), models.VerdictGreen, 100, []models.IssueCode{}},
		{"Lifestyle", cash(800), nil, models.VerdictOrange, 60, []models.IssueCode{models.IssueLifestyle}},
		{"Lifestyle with cash flow", cash(800), account(1000), models.VerdictOrange, 60, []models.IssueCode{models.IssueLifestyle}},
		{"Overdraft", cash(300), account(100), models.VerdictOrange, 50, []models.IssueCode{models.IssueProjectedOverdraft}},
		{"Double alert", cash(800), account(100), models.VerdictRed, 10, []models.IssueCode{models.IssueDoubleAlert}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := analysis.Analyze(healthy(), tt.intent, tt.dynamic, now)

			assert.Equal(t, tt.verdict, result.Verdict)
			assert.Equal(t, tt.score, result.Score)
			assert.Equal(t, tt.issues, codes(result.Issues))
			assert.Equal(t, models.PeriodCurrent, result.Period)
			assert.NotEmpty(t, result.Message)
		})
	}
}

func TestAnalyzeOverdraftMetrics(t *testing.T) {
	result := analysis.Analyze(healthy(), cash(300), account(100), now)

	require.True(t, result.Metrics.LowestBalance.Valid)
	assert.True(t, decimal.NewFromInt(-200).Equal(result.Metrics.LowestBalance.Decimal))
	require.NotNil(t, result.Metrics.FirstOverdraft)
	assert.Equal(t, "2026-09-10", result.Metrics.FirstOverdraft.Time().Format("2006-01-02"))
	assert.Len(t, result.Metrics.ProjectedCurve, analysis.DynamicHorizon)
	assert.Contains(t, result.Message, "2026-09-10")
}

func TestAnalyzeInsufficientSavings(t *testing.T) {
	snapshot := healthy()
	snapshot.Reserve = decimal.NewFromInt(200)

	result := analysis.Analyze(snapshot, models.PurchaseIntent{
		Name:   "Phone",
		Amount: decimal.NewFromInt(500),
		Mode:   models.ModeCashSavings,
	}, account(1000), now)

	assert.Equal(t, models.VerdictRed, result.Verdict)
	assert.Equal(t, 0, result.Score)
	require.NotEmpty(t, result.Issues)
	assert.Equal(t, models.IssueInsufficientFunds, result.Issues[0].Code)
	assert.True(t, result.Metrics.NewReserve.IsZero(), "the reserve is floored at zero")
}

func TestAnalyzeSavingsDoNotTouchRemainder(t *testing.T) {
	result := analysis.Analyze(healthy(), models.PurchaseIntent{
		Name:   "Bike",
		Amount: decimal.NewFromInt(1000),
		Mode:   models.ModeCashSavings,
	}, nil, now)

	assert.Equal(t, models.VerdictGreen, result.Verdict)
	assert.True(t, decimal.NewFromInt(900).Equal(result.Metrics.NewRemainder))
	assert.True(t, decimal.NewFromInt(4000).Equal(result.Metrics.NewReserve))
}

func TestAnalyzePast(t *testing.T) {
	snapshot := healthy()
	snapshot.Reserve = decimal.Zero

	intent := cash(5000)
	intent.Date = time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC)

	result := analysis.Analyze(snapshot, intent, account(0), now)

	assert.Equal(t, models.PeriodPast, result.Period)
	assert.Equal(t, models.VerdictGreen, result.Verdict)
	assert.Equal(t, 100, result.Score)
	assert.Empty(t, result.Issues, "no penalties for regularizations")
	assert.True(t, decimal.NewFromInt(900).Equal(result.Metrics.NewRemainder))
}

func TestAnalyzeFutureDoesNotTouchRemainder(t *testing.T) {
	intent := cash(800)
	intent.Date = time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)

	result := analysis.Analyze(healthy(), intent, nil, now)

	assert.Equal(t, models.PeriodFuture, result.Period)
	assert.Equal(t, models.VerdictGreen, result.Verdict)
}

func TestAnalyzeVerdictExclusivity(t *testing.T) {
	for _, budgetOK := range []bool{true, false} {
		for _, cashflowOK := range []bool{true, false} {
			amount := int64(100)
			if !budgetOK {
				amount = 800
			}

			balance := int64(10000)
			if !cashflowOK {
				balance = 0
			}

			result := analysis.Analyze(healthy(), cash(amount), account(balance), now)

			assert.Equal(t, budgetOK && cashflowOK, result.Verdict == models.VerdictGreen, "budget %t, cash flow %t", budgetOK, cashflowOK)
			assert.Equal(t, !budgetOK && !cashflowOK, result.Verdict == models.VerdictRed, "budget %t, cash flow %t", budgetOK, cashflowOK)
		}
	}
}

func TestAnalyzePenalties(t *testing.T) {
	tests := []struct {
		name      string
		reserve   int64
		mandatory int64
		intent    models.PurchaseIntent
		score     int
		issues    []models.IssueCode
	}{
		{"Safety net", 100, 600, cash(100), 85, []models.IssueCode{models.IssueLowSafetyNet}},
		{"Debt ratio", 5000, 800, cash(100), 80, []models.IssueCode{models.IssueHighDebtRatio}},
		{"Both", 100, 800, cash(100), 65, []models.IssueCode{models.IssueLowSafetyNet, models.IssueHighDebtRatio}},
		{
			"New subscription raises the debt ratio", 5000, 600,
			models.PurchaseIntent{Name: "Gym", Amount: decimal.NewFromInt(200), Mode: models.ModeSubscription},
			80, []models.IssueCode{models.IssueHighDebtRatio},
		},
		{
			"Lifestyle", 100, 800, cash(800),
			25, []models.IssueCode{models.IssueLifestyle, models.IssueLowSafetyNet, models.IssueHighDebtRatio},
		},
		{
			"Reimbursable", 100, 800,
			models.PurchaseIntent{Name: "Hotel", Amount: decimal.NewFromInt(100), Mode: models.ModeCashAccount, Reimbursable: true},
			100, []models.IssueCode{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshot := healthy()
			snapshot.Reserve = decimal.NewFromInt(tt.reserve)
			snapshot.MandatoryExpenses = decimal.NewFromInt(tt.mandatory)

			result := analysis.Analyze(snapshot, tt.intent, nil, now)
			assert.Equal(t, tt.score, result.Score)
			assert.Equal(t, tt.issues, codes(result.Issues))
		})
	}
}

func TestAnalyzeScoreFloor(t *testing.T) {
	snapshot := healthy()
	snapshot.Reserve = decimal.NewFromInt(100)
	snapshot.MandatoryExpenses = decimal.NewFromInt(800)

	result := analysis.Analyze(snapshot, cash(800), account(0), now)

	assert.Equal(t, models.VerdictRed, result.Verdict)
	assert.Equal(t, 0, result.Score)
	assert.Equal(t, []models.IssueCode{models.IssueDoubleAlert, models.IssueLowSafetyNet, models.IssueHighDebtRatio}, codes(result.Issues))
}

func TestAnalyzeMetrics(t *testing.T) {
	credit := models.PurchaseIntent{
		Name:     "Laptop",
		Amount:   decimal.NewFromInt(1200),
		Mode:     models.ModeCredit,
		Rate:     decimal.NewFromInt(6),
		Duration: 12,
	}

	result := analysis.Analyze(healthy(), credit, nil, now)
	m := result.Metrics

	assert.True(t, decimal.NewFromInt(1272).Equal(m.RealCost), "real cost %s", m.RealCost)
	assert.True(t, decimal.NewFromInt(72).Equal(m.CreditCost), "credit cost %s", m.CreditCost)
	assert.True(t, decimal.NewFromInt(106).Equal(m.MonthlyCost), "monthly cost %s", m.MonthlyCost)
	assert.True(t, decimal.NewFromInt(794).Equal(m.NewRemainder), "new remainder %s", m.NewRemainder)
	assert.True(t, decimal.RequireFromString("799.95").Equal(m.OpportunityCost), "opportunity cost %s", m.OpportunityCost)
	assert.True(t, decimal.RequireFromString("12.7").Equal(m.WorkDays), "work days %s", m.WorkDays)
	assert.False(t, m.LowestBalance.Valid, "no dynamic check without profile")
	assert.Nil(t, m.FirstOverdraft)
	assert.NotEmpty(t, result.Tips)

	professional := credit
	professional.Professional = true
	m = analysis.Analyze(healthy(), professional, nil, now).Metrics
	assert.True(t, m.OpportunityCost.IsZero())
	assert.True(t, decimal.NewFromInt(72).Equal(m.CreditCost))

	reimbursable := credit
	reimbursable.Reimbursable = true
	m = analysis.Analyze(healthy(), reimbursable, nil, now).Metrics
	assert.True(t, m.RealCost.IsZero())
	assert.True(t, m.CreditCost.IsZero())
	assert.True(t, m.OpportunityCost.IsZero())
	assert.True(t, m.WorkDays.IsZero())
}

func TestAnalyzeSubscriptionCost(t *testing.T) {
	result := analysis.Analyze(healthy(), models.PurchaseIntent{
		Name:   "Streaming",
		Amount: decimal.NewFromInt(15),
		Mode:   models.ModeSubscription,
	}, nil, now)

	assert.True(t, decimal.NewFromInt(180).Equal(result.Metrics.RealCost))
	assert.True(t, decimal.NewFromInt(15).Equal(result.Metrics.MonthlyCost))
	assert.Contains(t, result.Tips, "This subscription costs 180 per year")
}

func TestAnalyzeWithoutIncome(t *testing.T) {
	result := analysis.Analyze(models.Snapshot{Rules: models.PersonaStudent.Rules()}, cash(50), nil, now)

	assert.True(t, result.Metrics.WorkDays.IsZero())
	assert.True(t, decimal.NewFromInt(-50).Equal(result.Metrics.NewRemainder))
	assert.Equal(t, models.VerdictOrange, result.Verdict)
	assert.NotNil(t, result.Issues)
	assert.NotNil(t, result.Tips)
}

func TestAnalyzeLocalizedMessages(t *testing.T) {
	snapshot := healthy()
	snapshot.Reserve = decimal.NewFromInt(2500)
	snapshot.Locale = language.English

	result := analysis.Analyze(snapshot, models.PurchaseIntent{
		Name:   "Car",
		Amount: decimal.NewFromInt(12000),
		Mode:   models.ModeCashSavings,
	}, nil, now)

	assert.Equal(t, "Your savings of 2,500 do not cover this purchase of 12,000", result.Message)
}
