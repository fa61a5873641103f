package v1

import (
	"strings"

	"github.com/google/uuid"
	"github.com/runway-finance/backend/internal/types"
	ez_uuid "github.com/runway-finance/backend/internal/uuid"
	"github.com/runway-finance/backend/pkg/analysis"
	"github.com/runway-finance/backend/pkg/models"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
)

// RecurringItemEditable is a monthly cash movement as sent by clients.
type RecurringItemEditable struct {
	Name       types.Text   `json:"name" swaggertype:"string" example:"Rent"`
	Amount     types.Number `json:"amount" swaggertype:"number" example:"800"`
	DayOfMonth types.Number `json:"dayOfMonth" swaggertype:"integer" example:"5"` // Empty for the default day of the category
}

func (e RecurringItemEditable) model() models.RecurringItem {
	return models.RecurringItem{
		Name:       strings.TrimSpace(string(e.Name)),
		Amount:     e.Amount.Decimal(),
		DayOfMonth: e.DayOfMonth.Int(),
	}
}

func recurringItems(editables []RecurringItemEditable) []models.RecurringItem {
	items := make([]models.RecurringItem, 0, len(editables))
	for _, e := range editables {
		items = append(items, e.model())
	}
	return items
}

// ProfileEditable is the declared financial state of a user.
//
// Amounts are decoded leniently: numbers, numeric strings with separators or
// currency symbols are accepted and everything else is read as zero.
type ProfileEditable struct {
	Balance              types.Number            `json:"balance" swaggertype:"number" example:"1520.35"`
	BalanceDate          types.Date              `json:"balanceDate" swaggertype:"string" example:"2026-10-10"`
	UpdatedAt            types.Date              `json:"updatedAt" swaggertype:"string" example:"2026-10-10"`
	Savings              types.Number            `json:"savings" swaggertype:"number" example:"4000"`
	Incomes              []RecurringItemEditable `json:"incomes"`
	FixedCosts           []RecurringItemEditable `json:"fixedCosts"`
	Subscriptions        []RecurringItemEditable `json:"subscriptions"`
	Credits              []RecurringItemEditable `json:"credits"`
	SavingsContributions []RecurringItemEditable `json:"savingsContributions"`
	VariableBudget       types.Number            `json:"variableBudget" swaggertype:"number" example:"300"`
	Persona              types.Text              `json:"persona" swaggertype:"string" example:"employee"`
	Locale               types.Text              `json:"locale" swaggertype:"string" example:"fr-FR"`
}

func (e ProfileEditable) model() models.ProfileSnapshot {
	return models.ProfileSnapshot{
		Balance:              e.Balance.Decimal(),
		BalanceDate:          e.BalanceDate.Time(),
		UpdatedAt:            e.UpdatedAt.Time(),
		Savings:              e.Savings.Decimal(),
		Incomes:              recurringItems(e.Incomes),
		FixedCosts:           recurringItems(e.FixedCosts),
		Subscriptions:        recurringItems(e.Subscriptions),
		Credits:              recurringItems(e.Credits),
		SavingsContributions: recurringItems(e.SavingsContributions),
		VariableBudget:       e.VariableBudget.Decimal(),
		Persona:              persona(e.Persona),
		Locale:               locale(e.Locale),
	}
}

// locale parses a BCP 47 tag. Invalid tags resolve to the undetermined language.
func locale(s types.Text) language.Tag {
	return language.Make(strings.TrimSpace(string(s)))
}

// persona normalizes a persona name. Unknown names get the default rules.
func persona(s types.Text) models.Persona {
	return models.Persona(strings.ToLower(strings.TrimSpace(string(s))))
}

// PurchaseEditable is a purchase intent as sent by clients.
type PurchaseEditable struct {
	Name         types.Text   `json:"name" swaggertype:"string" example:"New laptop"`
	Amount       types.Number `json:"amount" swaggertype:"number" example:"1200"`
	Mode         types.Text   `json:"mode" swaggertype:"string" example:"CREDIT"`
	Reimbursable types.Bool   `json:"reimbursable" swaggertype:"boolean" example:"false"`
	Professional types.Bool   `json:"professional" swaggertype:"boolean" example:"false"`
	Duration     types.Number `json:"duration" swaggertype:"integer" example:"12"`
	Rate         types.Number `json:"rate" swaggertype:"number" example:"4.5"`
	Date         types.Date   `json:"date" swaggertype:"string" example:"2026-10-20"` // Empty for today
}

func (e PurchaseEditable) model() models.PurchaseIntent {
	return models.PurchaseIntent{
		Name:         strings.TrimSpace(string(e.Name)),
		Amount:       e.Amount.Decimal(),
		Mode:         models.PaymentMode(strings.ToUpper(strings.TrimSpace(string(e.Mode)))),
		Reimbursable: bool(e.Reimbursable),
		Professional: bool(e.Professional),
		Duration:     e.Duration.Int(),
		Rate:         e.Rate.Decimal(),
		Date:         e.Date.Time(),
	}
}

// HistoryEntryEditable is a past purchase decision as sent by clients.
type HistoryEntryEditable struct {
	ID       uuid.UUID        `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"`
	Purchase PurchaseEditable `json:"purchase"`
	Date     types.Date       `json:"date" swaggertype:"string" example:"2026-09-14"`
}

func (e HistoryEntryEditable) model() models.HistoryEntry {
	return models.HistoryEntry{
		ID:       e.ID,
		Purchase: e.Purchase.model(),
		Date:     e.Date.Time(),
	}
}

func history(editables []HistoryEntryEditable) []models.HistoryEntry {
	entries := make([]models.HistoryEntry, 0, len(editables))
	for _, e := range editables {
		entries = append(entries, e.model())
	}
	return entries
}

// GoalEditable is a savings goal as sent by clients.
type GoalEditable struct {
	ID                  uuid.UUID    `json:"id" example:"f81566d9-af4d-4f13-9830-c62c4b5e4c7e"`
	Name                types.Text   `json:"name" swaggertype:"string" example:"New TV"`
	Target              types.Number `json:"target" swaggertype:"number" example:"4000"`
	Saved               types.Number `json:"saved" swaggertype:"number" example:"250"`
	Deadline            types.Date   `json:"deadline" swaggertype:"string" example:"2027-10-01"`
	MonthlyContribution types.Number `json:"monthlyContribution" swaggertype:"number" example:"150"`
	ProjectedYield      types.Number `json:"projectedYield" swaggertype:"number" example:"2.5"`
}

func (e GoalEditable) model() models.Goal {
	return models.Goal{
		ID:                  e.ID,
		Name:                string(e.Name),
		Target:              e.Target.Decimal(),
		Saved:               e.Saved.Decimal(),
		Deadline:            e.Deadline.Time(),
		MonthlyContribution: e.MonthlyContribution.Decimal(),
		ProjectedYield:      e.ProjectedYield.Decimal(),
	}
}

// SnapshotEditable is a precomputed budget snapshot as sent by clients.
type SnapshotEditable struct {
	MonthlyIncome     types.Number `json:"monthlyIncome" swaggertype:"number" example:"2000"`
	MandatoryExpenses types.Number `json:"mandatoryExpenses" swaggertype:"number" example:"950"`
	Remainder         types.Number `json:"remainder" swaggertype:"number" example:"450"`
	Reserve           types.Number `json:"reserve" swaggertype:"number" example:"4000"`
	CapacityToSave    types.Number `json:"capacityToSave" swaggertype:"number" example:"750"`
	Persona           types.Text   `json:"persona" swaggertype:"string" example:"employee"`
	Locale            types.Text   `json:"locale" swaggertype:"string" example:"fr-FR"`
}

// model derives the ratios from the figures so that they are always consistent.
func (e SnapshotEditable) model() models.Snapshot {
	p := persona(e.Persona)
	reserve := decimal.Max(e.Reserve.Decimal(), decimal.Zero)

	return models.Snapshot{
		MonthlyIncome:     e.MonthlyIncome.Decimal(),
		MandatoryExpenses: e.MandatoryExpenses.Decimal(),
		Remainder:         e.Remainder.Decimal(),
		Reserve:           reserve,
		CapacityToSave:    e.CapacityToSave.Decimal(),
		SafetyMonths:      analysis.SafetyMonths(reserve, e.MandatoryExpenses.Decimal()).Round(2),
		EngagementRate:    analysis.EngagementRate(e.MandatoryExpenses.Decimal(), e.MonthlyIncome.Decimal()).Round(2),
		Persona:           p,
		Rules:             p.Rules(),
		Locale:            locale(e.Locale),
	}
}

// QueryTimeline are the query parameters for timeline projections.
type QueryTimeline struct {
	Days         string `form:"days" example:"90"`          // Days projected after the balance date, 1 to 1095
	WarningBelow string `form:"warningBelow" example:"200"` // Days with a balance below this are marked as warning
}

// QueryGoalSimulation are the query parameters for goal simulations.
type QueryGoalSimulation struct {
	Goal ez_uuid.UUID `form:"goal" format:"UUID"` // Simulate the goal with this ID from the goals list
}
