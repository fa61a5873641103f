// Package goals checks whether savings goals can be reached in time.
package goals

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/runway-finance/backend/internal/types"
	"github.com/runway-finance/backend/pkg/models"
	"github.com/shopspring/decimal"
)

var twelveHundred = decimal.NewFromInt(1200)

const projectionPlaces = 8

// Commitments returns the monthly contributions planned for all goals
// except the one with the given ID.
func Commitments(goals []models.Goal, exclude uuid.UUID) decimal.Decimal {
	total := decimal.Zero
	for _, goal := range goals {
		if exclude != uuid.Nil && goal.ID == exclude {
			continue
		}

		if goal.MonthlyContribution.IsPositive() {
			total = total.Add(goal.MonthlyContribution)
		}
	}
	return total
}

// Solve computes the monthly effort a goal needs and whether the capacity to
// save left after other commitments covers it.
//
// When it does not, a later deadline that uses the remaining capacity
// exactly is suggested.
func Solve(capacity, commitments decimal.Decimal, goal models.Goal, now time.Time) models.GoalSimulation {
	goal = goal.Normalize()
	today := types.Midday(now)

	months := 1
	if !goal.Deadline.IsZero() {
		months = max(1, types.MonthsBetween(today, goal.Deadline))
	}

	amountToSave := decimal.Max(goal.Target.Sub(goal.Saved), decimal.Zero)

	sim := models.GoalSimulation{
		AmountToSave:          amountToSave,
		Months:                months,
		RequiredMonthlyEffort: amountToSave.Div(decimal.NewFromInt(int64(months))).Round(2),
		RemainingCapacity:     capacity.Sub(commitments),
	}

	// Compare unrounded so that the suggested effort is always accepted
	required := amountToSave.Div(decimal.NewFromInt(int64(months)))
	sim.IsPossible = amountToSave.IsZero() || sim.RemainingCapacity.GreaterThanOrEqual(required)

	sim.ProjectedAmount = Project(goal.Saved, goal.MonthlyContribution, goal.ProjectedYield, months).Round(2)
	sim.OnTrack = sim.ProjectedAmount.GreaterThanOrEqual(goal.Target)

	if !sim.IsPossible {
		sim.Suggestion = suggest(amountToSave, sim.RemainingCapacity, today)
	}

	log.Debug().
		Str("goal", goal.Name).
		Int("months", months).
		Str("required", sim.RequiredMonthlyEffort.String()).
		Str("remaining", sim.RemainingCapacity.String()).
		Bool("possible", sim.IsPossible).
		Msg("goal solved")

	return sim
}

func suggest(amountToSave, remaining decimal.Decimal, today time.Time) *models.Suggestion {
	if !remaining.IsPositive() {
		return &models.Suggestion{
			Type:             models.SuggestionImpossible,
			Message:          "No savings capacity is left for this goal",
			NewMonthlyEffort: decimal.Zero,
		}
	}

	needed := int(amountToSave.Div(remaining).Ceil().IntPart())
	deadline := types.AddMonths(today, needed)

	return &models.Suggestion{
		Type:             models.SuggestionExtendTime,
		Message:          fmt.Sprintf("Saving %s per month reaches the goal on %s", remaining.StringFixed(2), types.DateKey(deadline)),
		NeededMonths:     needed,
		NewDeadline:      &deadline,
		NewMonthlyEffort: remaining,
	}
}

// Project returns the amount saved after the given number of months with a
// monthly contribution and a yearly yield in percent, compounded monthly.
//
// Each month is rounded to projectionPlaces so that the cost of a step does
// not grow with the number of months.
func Project(saved, contribution, yearlyYield decimal.Decimal, months int) decimal.Decimal {
	contribution = decimal.Max(contribution, decimal.Zero)
	if months < 1 {
		return saved
	}

	if !yearlyYield.IsPositive() {
		return saved.Add(contribution.Mul(decimal.NewFromInt(int64(months))))
	}

	rate := yearlyYield.Div(twelveHundred)
	amount := saved
	for i := 0; i < months; i++ {
		amount = amount.Add(amount.Mul(rate)).Add(contribution).Round(projectionPlaces)
	}
	return amount
}
