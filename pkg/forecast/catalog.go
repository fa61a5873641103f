package forecast

import (
	"github.com/runway-finance/backend/pkg/models"
)

// categories is the order in which recurring items are read from a profile.
var categories = []models.ItemCategory{
	models.CategoryIncome,
	models.CategoryFixedCost,
	models.CategorySubscription,
	models.CategoryCredit,
	models.CategorySavingsContribution,
}

// Catalog maps a day of month to the recurring events triggered that day.
// Index 0 is unused.
type Catalog [32][]Recurring

// BuildCatalog indexes the recurring items of a profile by day of month.
//
// Items with an amount of zero or less are dropped. Items without a day of
// month use the default day of their category, days after the 31st are
// treated as the 31st.
func BuildCatalog(profile models.ProfileSnapshot) Catalog {
	var c Catalog

	for _, category := range categories {
		for _, item := range profile.Items(category) {
			if !item.Amount.IsPositive() {
				continue
			}

			day := item.DayOfMonth
			if day < 1 {
				day = category.DefaultDay()
			}
			if day > 31 {
				day = 31
			}

			amount := item.Amount
			if category != models.CategoryIncome {
				amount = amount.Neg()
			}

			c[day] = append(c[day], Recurring{
				Name:     item.Name,
				Category: category,
				Amount:   amount,
				Day:      day,
			})
		}
	}

	return c
}

// On returns the events triggered on a day of a month with daysInMonth days.
//
// On the last day of a month, events whose trigger day does not exist in
// that month are included, so that they fire exactly once.
func (c *Catalog) On(day, daysInMonth int) []Recurring {
	if day < 1 || day > 31 {
		return nil
	}

	events := c[day]
	if day != daysInMonth {
		return events
	}

	var rollover []Recurring
	for missing := daysInMonth + 1; missing <= 31; missing++ {
		rollover = append(rollover, c[missing]...)
	}

	if len(rollover) == 0 {
		return events
	}

	out := make([]Recurring, 0, len(events)+len(rollover))
	out = append(out, events...)
	return append(out, rollover...)
}

// Len returns the number of events in the catalog.
func (c *Catalog) Len() int {
	n := 0
	for _, events := range c {
		n += len(events)
	}
	return n
}
