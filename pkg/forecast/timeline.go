package forecast

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/runway-finance/backend/internal/types"
	"github.com/runway-finance/backend/pkg/models"
	"github.com/shopspring/decimal"
)

// DefaultHorizon is the number of days projected after the anchor date
// when no horizon is given.
const DefaultHorizon = 365

// weekdayWeights spreads the variable budget over the week. The weights
// sum to 7 so that a week costs seven average days.
var weekdayWeights = [7]decimal.Decimal{
	time.Sunday:    decimal.NewFromFloat(0.9),
	time.Monday:    decimal.NewFromFloat(0.8),
	time.Tuesday:   decimal.NewFromFloat(0.8),
	time.Wednesday: decimal.NewFromFloat(0.9),
	time.Thursday:  decimal.NewFromFloat(1.0),
	time.Friday:    decimal.NewFromFloat(1.2),
	time.Saturday:  decimal.NewFromFloat(1.4),
}

var thirty = decimal.NewFromInt(30)

// WeekdayWeight returns the relative spending pressure of a weekday.
func WeekdayWeight(d time.Weekday) decimal.Decimal {
	return weekdayWeights[d]
}

// Input is everything a timeline is computed from.
type Input struct {
	Profile   models.ProfileSnapshot
	History   []models.HistoryEntry
	Simulated []Simulated // Events of the purchase under evaluation, see Simulate
	Horizon   int         // Days projected after the anchor date
	Now       time.Time
}

// Build projects the balance day by day.
//
// The projection starts on the first day of the anchor month and covers
// Horizon days from the anchor date on. Balances before the anchor date are
// unknown. On the anchor date, the balance is reset to the declared balance
// and only outgoing scheduled events and simulated events are applied:
// scheduled income of that day is assumed to be already included in the
// declared balance, or not to have arrived yet. After the anchor date, every
// event and the smoothed variable spending are applied.
func Build(in Input) models.Timeline {
	horizon := in.Horizon
	if horizon < 1 {
		horizon = DefaultHorizon
	}

	anchor := types.Midday(in.Profile.AnchorDate(in.Now))
	start := types.MonthOf(anchor).FirstDay()
	total := types.DaysBetween(start, anchor) + horizon

	catalog := BuildCatalog(in.Profile)
	oneOffs := indexOneOffs(in.History, in.Simulated, in.Now)

	dailyVariable := decimal.Zero
	if in.Profile.VariableBudget.IsPositive() {
		dailyVariable = in.Profile.VariableBudget.Div(thirty)
	}

	var (
		timeline models.Timeline
		bucket   *models.MonthBucket
		running  decimal.Decimal
	)

	for i := 0; i < total; i++ {
		day := types.AddDays(start, i)

		month := types.MonthOf(day)
		if bucket == nil || !bucket.Month.Equal(month) {
			timeline = append(timeline, newBucket(month))
			bucket = &timeline[len(timeline)-1]
		}

		var events []Event
		for _, e := range catalog.On(day.Day(), types.DaysIn(day.Year(), day.Month())) {
			events = append(events, e)
		}
		events = append(events, oneOffs[types.DateKey(day)]...)

		record := models.DailyRecord{
			Date:   day,
			Status: models.StatusSafe,
			Events: make([]models.DayEvent, 0, len(events)),
		}

		switch {
		case day.Before(anchor):
			for _, e := range events {
				record.Events = append(record.Events, dayEvent(e, false))
			}

		case day.Equal(anchor):
			running = in.Profile.Balance
			for _, e := range events {
				// Scheduled income is not counted on the anchor day
				applied := e.Origin() == models.OriginSimulation || !e.Value().IsPositive()
				if applied {
					running = running.Add(e.Value())
					bucket.Record(e.Value())
				}
				record.Events = append(record.Events, dayEvent(e, applied))
			}
			record.Balance = decimal.NewNullDecimal(running)

		default:
			for _, e := range events {
				running = running.Add(e.Value())
				bucket.Record(e.Value())
				record.Events = append(record.Events, dayEvent(e, true))
			}

			record.VariableSpending = dailyVariable.Mul(weekdayWeights[day.Weekday()])
			running = running.Sub(record.VariableSpending)
			bucket.Expenses = bucket.Expenses.Sub(record.VariableSpending)
			record.Balance = decimal.NewNullDecimal(running)
		}

		if record.Balance.Valid && record.Balance.Decimal.IsNegative() {
			record.Status = models.StatusDanger
		}

		if record.Balance.Valid {
			bucket.BalanceEnd = decimal.NewNullDecimal(record.Balance.Decimal.Round(0))
		}
		bucket.Days = append(bucket.Days, record)
	}

	log.Debug().
		Str("anchor", types.DateKey(anchor)).
		Int("days", total).
		Int("recurring", catalog.Len()).
		Int("oneOffDays", len(oneOffs)).
		Msg("timeline built")

	return timeline
}

// indexOneOffs indexes past purchases and simulated events by date key.
//
// Past purchases are expanded like a simulation and enter the projection
// as history events.
func indexOneOffs(history []models.HistoryEntry, simulated []Simulated, now time.Time) map[string][]Event {
	index := make(map[string][]Event)

	for _, entry := range history {
		purchase := entry.Purchase
		if purchase.Date.IsZero() {
			purchase.Date = entry.Date
		}

		for _, e := range Simulate(purchase, now) {
			oneOff := e.Historical()
			key := types.DateKey(oneOff.Date)
			index[key] = append(index[key], oneOff)
		}
	}

	for _, e := range simulated {
		key := types.DateKey(types.Midday(e.Date))
		index[key] = append(index[key], e)
	}

	return index
}

func newBucket(month types.Month) models.MonthBucket {
	return models.MonthBucket{
		Month:    month,
		Label:    month.Label(),
		Income:   decimal.Zero,
		Expenses: decimal.Zero,
	}
}
