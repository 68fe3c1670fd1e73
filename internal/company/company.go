package company

import "errors"

var (
	// ErrNotFound is returned when no company matches the requested code.
	ErrNotFound = errors.New("company not found")

	// ErrCodeTaken is returned when a derived code collides with an
	// existing company.
	ErrCodeTaken = errors.New("company code already taken")
)

// Company represents a billable entity identified by a unique short code.
type Company struct {
	Code        string
	Name        string
	Description *string
	InvoiceIDs  []int64 // Loaded on Get; always non-nil, ordered by id
}
