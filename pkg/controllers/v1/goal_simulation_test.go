package v1_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/runway-finance/backend/pkg/models"
	"github.com/runway-finance/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type goalSimulationResponse struct {
	Data *models.GoalSimulation `json:"data"`
}

func createGoalSimulation(t *testing.T, query string, body any, expectedStatus ...int) models.GoalSimulation {
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusOK)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/goal-simulations"+query, body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response goalSimulationResponse
	test.DecodeResponse(t, &r, &response)
	if response.Data == nil {
		return models.GoalSimulation{}
	}
	return *response.Data
}

func (suite *TestSuiteStandard) TestGoalSimulationFromList() {
	car := uuid.New()
	body := map[string]any{
		"profile": profile(),
		"goals": []map[string]any{
			goal(car, 12000, 500, "2027-09-10"),
			goal(uuid.New(), 5000, 1500, "2027-01-01"),
		},
	}

	sim := createGoalSimulation(suite.T(), "?goal="+car.String(), body)

	assert.Equal(suite.T(), 12, sim.Months)
	assert.True(suite.T(), decimal.NewFromInt(1000).Equal(sim.RequiredMonthlyEffort))
	assert.True(suite.T(), decimal.NewFromInt(680).Equal(sim.RemainingCapacity), "the other goal's contribution is committed, remaining is %s", sim.RemainingCapacity)
	assert.False(suite.T(), sim.IsPossible)

	require.NotNil(suite.T(), sim.Suggestion)
	assert.Equal(suite.T(), models.SuggestionExtendTime, sim.Suggestion.Type)
	assert.Equal(suite.T(), 18, sim.Suggestion.NeededMonths)
	require.NotNil(suite.T(), sim.Suggestion.NewDeadline)
	assert.Equal(suite.T(), "2028-03-10", sim.Suggestion.NewDeadline.Format("2006-01-02"))
}

func (suite *TestSuiteStandard) TestGoalSimulationFromBody() {
	body := map[string]any{
		"profile": profile(),
		"goals": []map[string]any{
			goal(uuid.New(), 12000, 500, "2027-09-10"),
			goal(uuid.New(), 5000, 1500, "2027-01-01"),
		},
		"goal": map[string]any{
			"name":     "Bike",
			"target":   "1 200",
			"deadline": "2027-09-10",
		},
	}

	sim := createGoalSimulation(suite.T(), "", body)

	assert.True(suite.T(), decimal.NewFromInt(180).Equal(sim.RemainingCapacity), "all contributions are committed, remaining is %s", sim.RemainingCapacity)
	assert.True(suite.T(), decimal.NewFromInt(100).Equal(sim.RequiredMonthlyEffort))
	assert.True(suite.T(), sim.IsPossible)
	assert.Nil(suite.T(), sim.Suggestion)
}

func (suite *TestSuiteStandard) TestGoalSimulationErrors() {
	body := map[string]any{
		"profile": profile(),
		"goals":   []map[string]any{goal(uuid.New(), 100, 0, "2027-01-01")},
	}

	tests := []struct {
		name     string
		query    string
		status   int
		contains string
	}{
		{"Unknown goal", "?goal=" + uuid.New().String(), http.StatusNotFound, "no goal with this ID"},
		{"Invalid ID", "?goal=my-goal", http.StatusBadRequest, "query string"},
		{"No goal", "", http.StatusBadRequest, "a goal must be set"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/goal-simulations"+tt.query, body)
			test.AssertHTTPStatus(t, &r, tt.status)
			assert.Contains(t, test.DecodeError(t, r.Body.Bytes()), tt.contains)
		})
	}
}
