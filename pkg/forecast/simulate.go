package forecast

import (
	"time"

	"github.com/runway-finance/backend/internal/types"
	"github.com/runway-finance/backend/pkg/models"
	"github.com/shopspring/decimal"
)

const (
	// ReimbursementDelay is the number of days after which a reimbursable
	// purchase is paid back.
	ReimbursementDelay = 30

	// SubscriptionHorizon is the number of monthly debits simulated for a subscription.
	SubscriptionHorizon = 24
)

// Simulate expands a purchase intent into the dated cash movements it causes.
//
// Purchases paid from savings do not touch the current account and yield no
// events, their impact is on the reserve. A purchase without date happens now.
func Simulate(intent models.PurchaseIntent, now time.Time) []Simulated {
	if !intent.Amount.IsPositive() {
		return nil
	}

	date := types.ResolveDate(intent.Date, now)

	switch intent.Mode {
	case models.ModeCashAccount:
		events := []Simulated{{Name: intent.Name, Amount: intent.Amount.Neg(), Date: date}}
		if intent.Reimbursable {
			events = append(events, Simulated{
				Name:   intent.Name + " (reimbursement)",
				Amount: intent.Amount,
				Date:   types.AddDays(date, ReimbursementDelay),
			})
		}
		return events

	case models.ModeSubscription:
		return monthly(intent.Name, intent.Amount.Neg(), date, SubscriptionHorizon, false)

	case models.ModeCredit, models.ModeSplit:
		return monthly(intent.Name, intent.Installment().Neg(), date, intent.Months(), true)
	}

	return nil
}

// monthly returns count events of the same amount, one per month starting at date.
func monthly(name string, amount decimal.Decimal, date time.Time, count int, numbered bool) []Simulated {
	events := make([]Simulated, 0, count)
	for i := 0; i < count; i++ {
		e := Simulated{
			Name:   name,
			Amount: amount,
			Date:   types.AddMonths(date, i),
		}

		if numbered {
			e.Installment = i + 1
			e.Installments = count
		}

		events = append(events, e)
	}
	return events
}
