package core

import (
	"fmt"
	"strings"
	"time"
)

// DefaultDailyLateFee is the fee charged per calendar day a copy is returned after its due date.
const DefaultDailyLateFee = 1000

const (
	entityLoanRecord = "loanRecord"

	receiptDateLayout = "02/01/2006"
)

type loanRecordFields struct {
	ISBN     string `field:"isbn" validate:"required"`
	PersonID string `field:"personID" validate:"required"`
	Days     int    `field:"days" validate:"gt=0"`
}

// LoanRecordOption configures a LoanRecord.
type LoanRecordOption func(*LoanRecord)

// WithDailyLateFee overrides DefaultDailyLateFee. Negative amounts are ignored.
func WithDailyLateFee(amount int) LoanRecordOption {
	return func(r *LoanRecord) {
		if amount >= 0 {
			r.dailyLateFee = amount
		}
	}
}

// LoanRecord is one issued loan. It is immutable after construction.
type LoanRecord struct {
	isbn         ISBNString
	personID     PersonIDString
	loanDate     time.Time
	days         int
	dueDate      time.Time
	dailyLateFee int
	clock        Clock
}

// NewLoanRecord creates a LoanRecord dated on today's calendar day of clock.
func NewLoanRecord(isbn, personID string, days int, clock Clock, options ...LoanRecordOption) (LoanRecord, error) {
	fields := loanRecordFields{
		ISBN:     strings.TrimSpace(isbn),
		PersonID: strings.TrimSpace(personID),
		Days:     days,
	}

	if err := validateFields(entityLoanRecord, fields); err != nil {
		return LoanRecord{}, err
	}

	loanDate := dateOf(clock.Now())

	record := LoanRecord{
		isbn:         isbn,
		personID:     personID,
		loanDate:     loanDate,
		days:         days,
		dueDate:      loanDate.AddDate(0, 0, days),
		dailyLateFee: DefaultDailyLateFee,
		clock:        clock,
	}

	for _, option := range options {
		option(&record)
	}

	return record, nil
}

func (r LoanRecord) ISBN() ISBNString         { return r.isbn }
func (r LoanRecord) PersonID() PersonIDString { return r.personID }
func (r LoanRecord) LoanDate() time.Time      { return r.loanDate }
func (r LoanRecord) Days() int                { return r.days }
func (r LoanRecord) DueDate() time.Time       { return r.dueDate }
func (r LoanRecord) DailyLateFee() int        { return r.dailyLateFee }

// DaysLate counts the calendar days from the due date to returnDate, negative when returned early.
// A zero returnDate means today.
func (r LoanRecord) DaysLate(returnDate time.Time) int {
	if returnDate.IsZero() {
		returnDate = r.clock.Now()
	}

	return daysBetween(r.dueDate, returnDate.In(r.dueDate.Location()))
}

// ComputeFee returns the late fee for a return on returnDate, 0 when it is not late.
// A zero returnDate means today.
func (r LoanRecord) ComputeFee(returnDate time.Time) int {
	daysLate := r.DaysLate(returnDate)
	if daysLate <= 0 {
		return 0
	}

	return daysLate * r.dailyLateFee
}

// Receipt renders the loan card handed out with the copy.
func (r LoanRecord) Receipt() string {
	var b strings.Builder

	b.WriteString("LOAN RECEIPT\n")
	fmt.Fprintf(&b, "ISBN:      %s\n", r.isbn)
	fmt.Fprintf(&b, "Person ID: %s\n", r.personID)
	fmt.Fprintf(&b, "Loan date: %s\n", r.loanDate.Format(receiptDateLayout))
	fmt.Fprintf(&b, "Duration:  %d days\n", r.days)
	fmt.Fprintf(&b, "Due date:  %s\n", r.dueDate.Format(receiptDateLayout))

	return b.String()
}

func (r LoanRecord) String() string {
	return fmt.Sprintf(
		"LoanRecord{isbn=%q, personID=%q, loanDate=%s, days=%d, dueDate=%s}",
		r.isbn, r.personID, r.loanDate.Format(time.DateOnly), r.days, r.dueDate.Format(time.DateOnly),
	)
}
