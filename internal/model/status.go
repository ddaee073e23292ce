package model

import "time"

// LoanStatus is derived from the loan's date fields on every read and
// is never stored.
type LoanStatus string

const (
	StatusActive   LoanStatus = "ACTIVE"
	StatusOverdue  LoanStatus = "OVERDUE"
	StatusReturned LoanStatus = "RETURNED"
)

// StatusAt classifies the loan as of the given instant. A set
// returned_on wins regardless of dates; otherwise the comparison is
// date-only, so a loan due today is not yet overdue.
func (l Loan) StatusAt(asOf time.Time) LoanStatus {
	if l.ReturnedOn != nil {
		return StatusReturned
	}
	if l.ReturnBy.Time.Before(NewDate(asOf).Time) {
		return StatusOverdue
	}
	return StatusActive
}

// ListFilter selects which loans a list endpoint returns. It is a
// two-tier classification, deliberately broader than LoanStatus:
// "active" means not yet returned and so includes loans that are
// currently overdue.
type ListFilter string

const (
	FilterAll     ListFilter = "all"
	FilterActive  ListFilter = "active"
	FilterOverdue ListFilter = "overdue"
)

// ParseListFilter maps unknown values to FilterAll.
func ParseListFilter(s string) ListFilter {
	switch ListFilter(s) {
	case FilterActive:
		return FilterActive
	case FilterOverdue:
		return FilterOverdue
	default:
		return FilterAll
	}
}
