package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/runway-finance/backend/pkg/controllers/v1"
	"github.com/runway-finance/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestGet() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.Response
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), v1.Links{
		Timelines:       "http://example.com/v1/timelines",
		Analyses:        "http://example.com/v1/analyses",
		GoalSimulations: "http://example.com/v1/goal-simulations",
		Snapshots:       "http://example.com/v1/snapshots",
	}, response.Links)
}

func (suite *TestSuiteStandard) TestOptions() {
	tests := []struct {
		path  string
		allow string
	}{
		{"/v1", "OPTIONS, GET"},
		{"/v1/timelines", "OPTIONS, POST"},
		{"/v1/analyses", "OPTIONS, POST"},
		{"/v1/goal-simulations", "OPTIONS, POST"},
		{"/v1/snapshots", "OPTIONS, POST"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.path, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, "http://example.com"+tt.path, "")
			test.AssertHTTPStatus(t, &r, http.StatusNoContent)
			assert.Equal(t, tt.allow, r.Header().Get("allow"))
		})
	}
}

func (suite *TestSuiteStandard) TestMethodNotAllowed() {
	for _, path := range []string{"/v1/timelines", "/v1/analyses", "/v1/goal-simulations", "/v1/snapshots"} {
		suite.T().Run(path, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com"+path, "")
			test.AssertHTTPStatus(t, &r, http.StatusMethodNotAllowed)
		})
	}
}
