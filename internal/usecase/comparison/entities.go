package comparison

import "masar-mortgage/internal/domain/mortgage"

// Amount and term bounds of the comparison page.
const (
	MinPrincipal = 100_000.0
	MaxPrincipal = 5_000_000.0
)

type Request struct {
	Principal float64  `json:"principal"`
	LoanYears int      `json:"loan_years"`
	BankIDs   []string `json:"bank_ids"`
}

type Row struct {
	mortgage.ComparisonBankData
	Color string `json:"color,omitempty"`
}

type Table struct {
	Principal float64 `json:"principal"`
	LoanYears int     `json:"loan_years"`
	Rows      []Row   `json:"rows"`
	// Cheapest is the bank with the lowest total payment.
	Cheapest string `json:"cheapest"`
}

type Schedules struct {
	Schedules []mortgage.AmortizationSchedule `json:"schedules"`
	Points    []mortgage.BalancePoint         `json:"points"`
}
