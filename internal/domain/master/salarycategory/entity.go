package salarycategory

import "time"

// SalaryCategory is a reusable salary template (e.g. Entry Level,
// Experienced, Senior) applied when creating staff. TotalSalary follows the
// same sum invariant as the roster.
type SalaryCategory struct {
	ID          string
	Name        string
	BasicSalary int
	Incentive   int
	HRA         int
	TotalSalary int
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// RecomputeTotal restores the TotalSalary invariant.
func (c *SalaryCategory) RecomputeTotal() {
	c.TotalSalary = c.BasicSalary + c.Incentive + c.HRA
}
