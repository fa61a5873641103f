package v1_test

import (
	"net/http"
	"testing"

	"github.com/runway-finance/backend/pkg/models"
	"github.com/runway-finance/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type analysisResponse struct {
	Data  *models.AnalysisResult `json:"data"`
	Error *string                `json:"error"`
}

func createAnalysis(t *testing.T, body any, expectedStatus ...int) models.AnalysisResult {
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusOK)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/analyses", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response analysisResponse
	test.DecodeResponse(t, &r, &response)
	if response.Data == nil {
		return models.AnalysisResult{}
	}
	return *response.Data
}

func (suite *TestSuiteStandard) TestAnalysisGreen() {
	result := createAnalysis(suite.T(), map[string]any{
		"profile":  profile(),
		"purchase": map[string]any{"name": "Shoes", "amount": 500, "mode": "CASH_ACCOUNT", "date": "2026-09-20"},
	})

	assert.Equal(suite.T(), models.VerdictGreen, result.Verdict)
	assert.Equal(suite.T(), 100, result.Score)
	assert.Equal(suite.T(), models.PeriodCurrent, result.Period)
	assert.Empty(suite.T(), result.Issues)
	assert.True(suite.T(), decimal.NewFromInt(1680).Equal(result.Metrics.NewRemainder), "remainder is %s", result.Metrics.NewRemainder)
	assert.Len(suite.T(), result.Metrics.ProjectedCurve, 45)
	assert.Nil(suite.T(), result.Metrics.FirstOverdraft)
}

func (suite *TestSuiteStandard) TestAnalysisOverdraft() {
	result := createAnalysis(suite.T(), map[string]any{
		"profile":  profile(),
		"purchase": map[string]any{"name": "Sofa", "amount": "1 500,00 €", "mode": "CASH_ACCOUNT", "date": "2026-09-20"},
	})

	assert.Equal(suite.T(), models.VerdictOrange, result.Verdict)
	assert.Equal(suite.T(), 50, result.Score)
	require.Len(suite.T(), result.Issues, 1)
	assert.Equal(suite.T(), models.IssueProjectedOverdraft, result.Issues[0].Code)

	require.True(suite.T(), result.Metrics.LowestBalance.Valid)
	assert.True(suite.T(), decimal.NewFromInt(-520).Equal(result.Metrics.LowestBalance.Decimal), "lowest balance is %s", result.Metrics.LowestBalance.Decimal)
	require.NotNil(suite.T(), result.Metrics.FirstOverdraft)
	assert.Equal(suite.T(), "2026-09-20", result.Metrics.FirstOverdraft.Time().Format("2006-01-02"))
}

func (suite *TestSuiteStandard) TestAnalysisSnapshotOnly() {
	result := createAnalysis(suite.T(), map[string]any{
		"snapshot": map[string]any{
			"monthlyIncome":     3000,
			"mandatoryExpenses": 820,
			"remainder":         100,
			"reserve":           5000,
		},
		"purchase": map[string]any{"name": "Dinner", "amount": 50, "mode": "CASH_ACCOUNT"},
	})

	assert.Equal(suite.T(), models.VerdictOrange, result.Verdict)
	assert.Equal(suite.T(), 60, result.Score)
	require.Len(suite.T(), result.Issues, 1)
	assert.Equal(suite.T(), models.IssueLifestyle, result.Issues[0].Code)
	assert.False(suite.T(), result.Metrics.LowestBalance.Valid, "no cash flow check without a profile")
	assert.Empty(suite.T(), result.Metrics.ProjectedCurve)
}

func (suite *TestSuiteStandard) TestAnalysisPastPurchase() {
	result := createAnalysis(suite.T(), map[string]any{
		"profile":  profile(),
		"purchase": map[string]any{"name": "Car", "amount": 90000, "mode": "CASH_SAVINGS", "date": "2026-08-01"},
	})

	assert.Equal(suite.T(), models.PeriodPast, result.Period)
	assert.Equal(suite.T(), models.VerdictGreen, result.Verdict)
	assert.Equal(suite.T(), 100, result.Score)
}

func (suite *TestSuiteStandard) TestAnalysisErrors() {
	tests := []struct {
		name     string
		body     any
		contains string
	}{
		{"No profile or snapshot", map[string]any{"purchase": map[string]any{"amount": 10}}, "a profile or a snapshot"},
		{"Empty body", "", "must not be empty"},
		{"Wrong type", `{ "purchase": { "reimbursable": "maybe" } }`, "un-parseable"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/analyses", tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
			assert.Contains(t, test.DecodeError(t, r.Body.Bytes()), tt.contains)
		})
	}
}

func (suite *TestSuiteStandard) TestAnalysisLenientFlags() {
	tests := []struct {
		reimbursable any
		realCost     int64
	}{
		{true, 0},
		{"true", 0},
		{"yes", 0},
		{1, 0},
		{"no", 500},
		{nil, 500},
	}

	for _, tt := range tests {
		result := createAnalysis(suite.T(), map[string]any{
			"profile": profile(),
			"purchase": map[string]any{
				"name":         12,
				"amount":       500,
				"mode":         "cash_account",
				"reimbursable": tt.reimbursable,
				"professional": "false",
				"date":         "2026-09-20",
			},
		})

		assert.Equal(suite.T(), models.VerdictGreen, result.Verdict, "reimbursable %v", tt.reimbursable)
		assert.True(suite.T(), decimal.NewFromInt(tt.realCost).Equal(result.Metrics.RealCost), "reimbursable %v: real cost %s", tt.reimbursable, result.Metrics.RealCost)
	}
}
