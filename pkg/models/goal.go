package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Goal is a savings target.
type Goal struct {
	ID                  uuid.UUID       `json:"id" example:"f81566d9-af4d-4f13-9830-c62c4b5e4c7e"`
	Name                string          `json:"name" example:"New TV"`
	Target              decimal.Decimal `json:"target" example:"4000"`             // The amount to reach
	Saved               decimal.Decimal `json:"saved" example:"250"`               // Already saved towards the goal
	Deadline            time.Time       `json:"deadline" example:"2027-10-01"`     // When the target should be reached
	MonthlyContribution decimal.Decimal `json:"monthlyContribution" example:"150"` // Monthly effort currently planned
	ProjectedYield      decimal.Decimal `json:"projectedYield" example:"2.5"`      // Yearly yield of the savings in percent
}

// Normalize trims whitespace from the name and floors negative amounts at zero.
func (g Goal) Normalize() Goal {
	g.Name = strings.TrimSpace(g.Name)
	if g.Target.IsNegative() {
		g.Target = decimal.Zero
	}
	if g.Saved.IsNegative() {
		g.Saved = decimal.Zero
	}
	if g.MonthlyContribution.IsNegative() {
		g.MonthlyContribution = decimal.Zero
	}
	return g
}

// SuggestionType is the kind of alternative offered for an infeasible goal.
type SuggestionType string

const (
	SuggestionExtendTime SuggestionType = "extend_time"
	SuggestionImpossible SuggestionType = "impossible"
)

// Suggestion is an alternative plan for a goal that is not feasible.
type Suggestion struct {
	Type             SuggestionType  `json:"type" example:"extend_time"`
	Message          string          `json:"message" example:"Reachable in 80 months by saving 50 per month"`
	NeededMonths     int             `json:"neededMonths,omitempty" example:"80"`
	NewDeadline      *time.Time      `json:"newDeadline,omitempty" example:"2033-06-18T00:00:00Z"`
	NewMonthlyEffort decimal.Decimal `json:"newMonthlyEffort" example:"50"`
}

// GoalSimulation is the feasibility verdict for a goal.
type GoalSimulation struct {
	AmountToSave          decimal.Decimal `json:"amountToSave" example:"3750"`
	Months                int             `json:"months" example:"12"`
	RequiredMonthlyEffort decimal.Decimal `json:"requiredMonthlyEffort" example:"312.5"`
	RemainingCapacity     decimal.Decimal `json:"remainingCapacity" example:"50"` // Capacity to save not committed to other goals
	IsPossible            bool            `json:"isPossible" example:"false"`
	Suggestion            *Suggestion     `json:"suggestion"`
	ProjectedAmount       decimal.Decimal `json:"projectedAmount" example:"2100"` // Saved amount at the deadline with the current contribution and yield
	OnTrack               bool            `json:"onTrack" example:"false"`        // The current contribution reaches the target in time
}
