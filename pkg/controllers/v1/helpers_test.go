package v1_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// profile returns a profile with the balance declared on the day requests
// are processed at: 3000 income on the 1st, 800 rent on the 5th and a 20
// phone subscription on the 10th.
func profile() map[string]any {
	return map[string]any{
		"balance":     1000,
		"balanceDate": "2026-09-10",
		"savings":     5000,
		"incomes":     []map[string]any{{"name": "Salary", "amount": 3000}},
		"fixedCosts":  []map[string]any{{"name": "Rent", "amount": "800"}},
		"subscriptions": []map[string]any{
			{"name": "Phone", "amount": 20},
		},
		"persona": "employee",
		"locale":  "en-US",
	}
}

func goal(id uuid.UUID, target, contribution int, deadline string) map[string]any {
	return map[string]any{
		"id":                  id.String(),
		"name":                "Goal " + id.String()[:4],
		"target":              target,
		"deadline":            deadline,
		"monthlyContribution": contribution,
	}
}

func bytesOf(t *testing.T, body any) *bytes.Buffer {
	b, err := json.Marshal(body)
	require.Nil(t, err)
	return bytes.NewBuffer(b)
}
