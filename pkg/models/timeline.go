package models

import (
	"encoding/json"
	"time"

	"github.com/runway-finance/backend/internal/types"
	"github.com/shopspring/decimal"
)

// EventType is the direction of a cash movement.
type EventType string

const (
	EventIncome  EventType = "income"
	EventExpense EventType = "expense"
)

// TypeOf returns the event type for a signed amount.
func TypeOf(amount decimal.Decimal) EventType {
	if amount.IsPositive() {
		return EventIncome
	}
	return EventExpense
}

// Origin tells where an event in a timeline comes from.
type Origin string

const (
	OriginRecurring  Origin = "recurring"
	OriginHistory    Origin = "history"
	OriginSimulation Origin = "simulation"
)

// DayEvent is an event as it appears on a day of the timeline.
type DayEvent struct {
	Name    string          `json:"name" example:"Rent"`
	Type    EventType       `json:"type" example:"expense"`
	Amount  decimal.Decimal `json:"amount" example:"-800"`
	Origin  Origin          `json:"origin" example:"recurring"`
	Applied bool            `json:"applied" example:"true"` // false for scheduled income on the anchor day and everything before it
}

// DayStatus is the health of a day's balance.
type DayStatus string

const (
	StatusSafe    DayStatus = "safe"
	StatusWarning DayStatus = "warning"
	StatusDanger  DayStatus = "danger"
)

// DailyRecord is the outcome of one calendar day.
type DailyRecord struct {
	Date             time.Time           // Midday UTC of the day
	Balance          decimal.NullDecimal // Invalid before the anchor date
	Events           []DayEvent
	VariableSpending decimal.Decimal // Smoothed variable spending debited this day
	Status           DayStatus
}

// MarshalJSON renders the date as YYYY-MM-DD and the balance as whole currency units or null.
func (d DailyRecord) MarshalJSON() ([]byte, error) {
	var balance *int64
	if d.Balance.Valid {
		b := d.Balance.Decimal.Round(0).IntPart()
		balance = &b
	}

	events := d.Events
	if events == nil {
		events = []DayEvent{}
	}

	return json.Marshal(struct {
		Date             string          `json:"date"`
		Balance          *int64          `json:"balance"`
		Events           []DayEvent      `json:"events"`
		VariableSpending decimal.Decimal `json:"variableSpending"`
		Status           DayStatus       `json:"status"`
	}{
		Date:             types.DateKey(d.Date),
		Balance:          balance,
		Events:           events,
		VariableSpending: d.VariableSpending.Round(2),
		Status:           d.Status,
	})
}

// MonthBucket groups the daily records of one calendar month.
type MonthBucket struct {
	Month      types.Month         `json:"month" example:"2026-10"`
	Label      string              `json:"label" example:"October 2026"`
	Days       []DailyRecord       `json:"days"`
	BalanceEnd decimal.NullDecimal `json:"balanceEnd" swaggertype:"number" example:"1240"` // Last known balance of the month
	Income     decimal.Decimal     `json:"income" example:"2000"`                          // Sum of applied incoming events
	Expenses   decimal.Decimal     `json:"expenses" example:"-1350.5"`                     // Sum of applied outgoing events and variable spending
}

// Record adds an applied event amount to the income or expense aggregate.
func (b *MonthBucket) Record(amount decimal.Decimal) {
	if amount.IsPositive() {
		b.Income = b.Income.Add(amount)
		return
	}
	b.Expenses = b.Expenses.Add(amount)
}

// Timeline is an ordered sequence of month buckets.
type Timeline []MonthBucket

// Days returns all daily records in order.
func (t Timeline) Days() []DailyRecord {
	var days []DailyRecord
	for _, bucket := range t {
		days = append(days, bucket.Days...)
	}
	return days
}

// Day returns the record for the calendar date of d.
func (t Timeline) Day(d time.Time) (DailyRecord, bool) {
	key := types.DateKey(d)
	for _, bucket := range t {
		if !bucket.Month.Contains(d) {
			continue
		}

		for _, day := range bucket.Days {
			if types.DateKey(day.Date) == key {
				return day, true
			}
		}
	}
	return DailyRecord{}, false
}

// WithWarningThreshold returns a copy of the timeline where days with a known,
// non-negative balance below the threshold have the warning status.
func (t Timeline) WithWarningThreshold(threshold decimal.Decimal) Timeline {
	out := make(Timeline, len(t))
	for i, bucket := range t {
		days := make([]DailyRecord, len(bucket.Days))
		copy(days, bucket.Days)

		for j := range days {
			if days[j].Status == StatusSafe && days[j].Balance.Valid && days[j].Balance.Decimal.LessThan(threshold) {
				days[j].Status = StatusWarning
			}
		}

		bucket.Days = days
		out[i] = bucket
	}
	return out
}
