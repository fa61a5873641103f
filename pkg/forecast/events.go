// Package forecast projects a profile's balance day by day.
//
// It expands recurring items, past purchases and simulated purchases into
// dated cash movements and walks them forward from the start of the anchor
// month. Everything in this package is a pure function of its arguments.
package forecast

import (
	"fmt"
	"time"

	"github.com/runway-finance/backend/pkg/models"
	"github.com/shopspring/decimal"
)

// Event is a cash movement known to the projector.
//
// It is implemented by Recurring, OneOff and Simulated only.
type Event interface {
	Label() string
	Value() decimal.Decimal
	Origin() models.Origin
}

// Recurring is triggered every month on a day of month.
type Recurring struct {
	Name     string
	Category models.ItemCategory
	Amount   decimal.Decimal // Signed
	Day      int             // 1 to 31
}

func (e Recurring) Label() string          { return e.Name }
func (e Recurring) Value() decimal.Decimal { return e.Amount }
func (e Recurring) Origin() models.Origin  { return models.OriginRecurring }

// OneOff is a dated movement from the history.
type OneOff struct {
	Name   string
	Amount decimal.Decimal // Signed
	Date   time.Time
}

func (e OneOff) Label() string          { return e.Name }
func (e OneOff) Value() decimal.Decimal { return e.Amount }
func (e OneOff) Origin() models.Origin  { return models.OriginHistory }

// Simulated is a dated movement of the purchase under evaluation.
type Simulated struct {
	Name         string
	Amount       decimal.Decimal // Signed
	Date         time.Time
	Installment  int // 1-based index, 0 when not part of a series
	Installments int
}

// Label returns the name, suffixed with the installment index for series.
func (e Simulated) Label() string {
	if e.Installment == 0 {
		return e.Name
	}
	return fmt.Sprintf("%s (%d/%d)", e.Name, e.Installment, e.Installments)
}

func (e Simulated) Value() decimal.Decimal { return e.Amount }
func (e Simulated) Origin() models.Origin  { return models.OriginSimulation }

// Historical turns a simulated event into a one-off event of the history.
func (e Simulated) Historical() OneOff {
	return OneOff{Name: e.Label(), Amount: e.Amount, Date: e.Date}
}

// dayEvent returns the timeline representation of an event.
func dayEvent(e Event, applied bool) models.DayEvent {
	return models.DayEvent{
		Name:    e.Label(),
		Type:    models.TypeOf(e.Value()),
		Amount:  e.Value(),
		Origin:  e.Origin(),
		Applied: applied,
	}
}
