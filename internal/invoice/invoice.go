package invoice

import (
	"errors"
	"time"

	"github.com/stbaker/biztime/internal/company"
)

var (
	// ErrNotFound is returned when no invoice matches the requested id.
	// The joined detail lookup also returns it when the owning company
	// row is gone; the two cases are deliberately indistinguishable.
	ErrNotFound = errors.New("invoice not found")

	// ErrUnknownCompany is returned when an insert references a company
	// code with no matching row.
	ErrUnknownCompany = errors.New("unknown company code")
)

// Invoice represents a billing record owned by exactly one company.
type Invoice struct {
	ID       int64
	CompCode string
	Amt      float64
	Paid     bool
	AddDate  time.Time
	PaidDate *time.Time
	Company  *company.Company // Loaded via JOIN on Get
}

// NextPaidDate derives the paid_date that an update must write, given
// the stored value and the submitted paid flag:
//
//	unpaid -> paid   sets it to now
//	any    -> unpaid clears it
//	paid   -> paid   keeps the original date
func NextPaidDate(current *time.Time, paid bool, now time.Time) *time.Time {
	switch {
	case !paid:
		return nil
	case current == nil:
		return &now
	default:
		return current
	}
}
