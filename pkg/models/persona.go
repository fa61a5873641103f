package models

import "github.com/shopspring/decimal"

// Persona is the type of profile, used to resolve decision thresholds.
type Persona string

const (
	PersonaStudent    Persona = "student"
	PersonaEmployee   Persona = "employee"
	PersonaFreelancer Persona = "freelancer"
	PersonaFamily     Persona = "family"
	PersonaRetired    Persona = "retired"
)

// PersonaRules are the thresholds a purchase is judged against.
type PersonaRules struct {
	MinLivingRemainder decimal.Decimal `json:"minLivingRemainder" example:"200"` // Minimum discretionary money left each month
	TargetSafetyMonths decimal.Decimal `json:"targetSafetyMonths" example:"3"`   // Months of mandatory expenses the reserve should cover
	MaxDebtRatio       decimal.Decimal `json:"maxDebtRatio" example:"35"`        // Maximum engagement rate in percent
}

var personaRules = map[Persona]PersonaRules{
	PersonaStudent:    {decimal.NewFromInt(100), decimal.NewFromInt(1), decimal.NewFromInt(40)},
	PersonaEmployee:   {decimal.NewFromInt(200), decimal.NewFromInt(3), decimal.NewFromInt(35)},
	PersonaFreelancer: {decimal.NewFromInt(300), decimal.NewFromInt(6), decimal.NewFromInt(30)},
	PersonaFamily:     {decimal.NewFromInt(400), decimal.NewFromInt(4), decimal.NewFromInt(33)},
	PersonaRetired:    {decimal.NewFromInt(200), decimal.NewFromInt(6), decimal.NewFromInt(30)},
}

// Rules returns the thresholds for the persona. Unknown personas get the
// employee rules.
func (p Persona) Rules() PersonaRules {
	if rules, ok := personaRules[p]; ok {
		return rules
	}
	return personaRules[PersonaEmployee]
}
