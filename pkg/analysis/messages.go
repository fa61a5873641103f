package analysis

import (
	"github.com/runway-finance/backend/pkg/models"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func newPrinter(locale language.Tag) *message.Printer {
	if locale == language.Und {
		locale = language.English
	}
	return message.NewPrinter(locale)
}

// money formats an amount in whole currency units with the locale's digit grouping.
func money(p *message.Printer, amount decimal.Decimal) string {
	return p.Sprintf("%d", amount.Round(0).IntPart())
}

// tips returns advice for the purchase.
func tips(p *message.Printer, intent models.PurchaseIntent, metrics models.Metrics) []string {
	tips := []string{}

	if intent.Reimbursable {
		tips = append(tips, p.Sprintf("Keep your receipts and claim the %s back quickly", money(p, intent.Amount)))
		return tips
	}

	if metrics.CreditCost.IsPositive() {
		tips = append(tips, p.Sprintf("This credit costs %s in interest, paying cash would avoid it", money(p, metrics.CreditCost)))
	}

	if intent.Mode == models.ModeSubscription {
		tips = append(tips, p.Sprintf("This subscription costs %s per year", money(p, metrics.RealCost)))
	}

	if intent.Professional {
		tips = append(tips, p.Sprintf("Professional expenses may be deductible, keep the invoice"))
	}

	if metrics.OpportunityCost.IsPositive() {
		tips = append(tips, p.Sprintf("Invested for %d years instead, this money could earn %s", InvestmentYears, money(p, metrics.OpportunityCost)))
	}

	if metrics.WorkDays.IsPositive() {
		tips = append(tips, p.Sprintf("This is worth %s days of work", metrics.WorkDays.StringFixed(1)))
	}

	return tips
}
