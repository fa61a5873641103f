package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMode is the way a purchase is paid for.
type PaymentMode string

const (
	ModeCashSavings  PaymentMode = "CASH_SAVINGS" // Paid from the savings reserve
	ModeCashAccount  PaymentMode = "CASH_ACCOUNT" // Paid from the current account
	ModeSplit        PaymentMode = "SPLIT"        // Interest free installments
	ModeCredit       PaymentMode = "CREDIT"       // Installments with interest
	ModeSubscription PaymentMode = "SUBSCRIPTION" // Monthly recurring payment
)

// IsInstallment reports whether the mode is paid in monthly installments.
func (m PaymentMode) IsInstallment() bool {
	return m == ModeSplit || m == ModeCredit
}

// PurchaseIntent is a hypothetical spend under evaluation.
type PurchaseIntent struct {
	Name         string          `json:"name" example:"New laptop"`
	Amount       decimal.Decimal `json:"amount" example:"1200"`
	Mode         PaymentMode     `json:"mode" example:"CREDIT"`
	Reimbursable bool            `json:"reimbursable" example:"false"` // The amount is advanced and paid back later
	Professional bool            `json:"professional" example:"false"` // Bought for professional use
	Duration     int             `json:"duration" example:"12"`        // Number of monthly installments
	Rate         decimal.Decimal `json:"rate" example:"4.5"`           // Yearly interest rate in percent
	Date         time.Time       `json:"date" example:"2026-10-20"`    // Zero means now
}

// Months returns the number of installments, at least 1.
func (p PurchaseIntent) Months() int {
	if p.Duration < 1 {
		return 1
	}
	return p.Duration
}

// TotalRepayable returns the total paid for an installment purchase.
//
// Credits accrue simple yearly interest over the duration, split purchases
// cost their amount.
func (p PurchaseIntent) TotalRepayable() decimal.Decimal {
	if p.Mode != ModeCredit {
		return p.Amount
	}

	months := decimal.NewFromInt(int64(p.Months()))
	interest := p.Rate.Div(decimal.NewFromInt(100)).Mul(months).Div(decimal.NewFromInt(12))
	return p.Amount.Mul(decimal.NewFromInt(1).Add(interest))
}

// Installment returns the monthly installment of an installment purchase.
func (p PurchaseIntent) Installment() decimal.Decimal {
	return p.TotalRepayable().Div(decimal.NewFromInt(int64(p.Months())))
}
