package payroll

import "context"

// PayrollService derives monthly settlements from attendance and the
// advance ledger.
type PayrollService interface {
	// GetSettlement computes one staff member's settlement for a month
	GetSettlement(ctx context.Context, staffID string, year, month0 int) (SalaryDetailResponse, error)

	// ListSettlements computes settlements for every active full-time staff
	// member for a month
	ListSettlements(ctx context.Context, year, month0 int) ([]SalaryDetailResponse, error)

	// GetPartTimeSalary aggregates one part-time worker's month, including
	// the weekly breakdown
	GetPartTimeSalary(ctx context.Context, staffName string, year, month0 int) (PartTimeSalaryResponse, error)

	// ListPartTimeSalaries aggregates every part-time worker seen in a month
	ListPartTimeSalaries(ctx context.Context, year, month0 int) ([]PartTimeSalaryResponse, error)
}
