package advance

import (
	"time"

	"github.com/shopstaff/staffpay-backend-go/internal/pkg/money"
)

// AdvanceDeduction is the per-(staff, month, year) ledger line for salary
// advances. Month is 0-indexed. Invariant: NewAdvance is always
// round10(OldAdvance + CurrentAdvance - Deduction).
type AdvanceDeduction struct {
	ID             string
	StaffID        string
	Month          int
	Year           int
	OldAdvance     int
	CurrentAdvance int
	Deduction      int
	NewAdvance     int
	Notes          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// RecomputeClosing restores the NewAdvance invariant.
func (a *AdvanceDeduction) RecomputeClosing() {
	a.NewAdvance = money.RoundInt64ToNearest10(int64(a.OldAdvance + a.CurrentAdvance - a.Deduction))
}
