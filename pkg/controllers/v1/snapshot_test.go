package v1_test

import (
	"net/http"

	"github.com/runway-finance/backend/pkg/models"
	"github.com/runway-finance/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestSnapshot() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/snapshots", map[string]any{"profile": profile()})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response struct {
		Data *models.Snapshot `json:"data"`
	}
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)

	tests := []struct {
		name     string
		expected string
		actual   decimal.Decimal
	}{
		{"Income", "3000", response.Data.MonthlyIncome},
		{"Mandatory", "820", response.Data.MandatoryExpenses},
		{"Remainder", "2180", response.Data.Remainder},
		{"Capacity", "2180", response.Data.CapacityToSave},
		{"Reserve", "5000", response.Data.Reserve},
		{"Safety months", "6.1", response.Data.SafetyMonths},
		{"Engagement rate", "27.33", response.Data.EngagementRate},
	}

	for _, tt := range tests {
		assert.True(suite.T(), decimal.RequireFromString(tt.expected).Equal(tt.actual), "%s: expected %s, got %s", tt.name, tt.expected, tt.actual)
	}

	assert.Equal(suite.T(), models.PersonaEmployee, response.Data.Persona)
	assert.True(suite.T(), decimal.NewFromInt(200).Equal(response.Data.Rules.MinLivingRemainder))
	assert.Equal(suite.T(), "en-US", response.Data.Locale.String())
}

func (suite *TestSuiteStandard) TestSnapshotLenientText() {
	p := profile()
	p["persona"] = 42
	p["locale"] = false

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/snapshots", map[string]any{"profile": p})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response struct {
		Data *models.Snapshot `json:"data"`
	}
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)

	assert.Equal(suite.T(), models.Persona("42"), response.Data.Persona)
	assert.Equal(suite.T(), models.PersonaEmployee.Rules(), response.Data.Rules)
}
