package core_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-circulation-go/circulation/core"
)

func fixedClock(t time.Time) core.Clock {
	return func() time.Time { return t }
}

func Test_NewLoanRecord_ComputesDates(t *testing.T) {
	// arrange
	now := time.Date(2026, time.March, 10, 15, 30, 0, 0, time.UTC)

	// act
	record, err := core.NewLoanRecord("B1", validID, 7, fixedClock(now))

	// assert
	require.NoError(t, err)
	assert.Equal(t, "B1", record.ISBN())
	assert.Equal(t, validID, record.PersonID())
	assert.Equal(t, 7, record.Days())
	assert.Equal(t, time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC), record.LoanDate())
	assert.Equal(t, time.Date(2026, time.March, 17, 0, 0, 0, 0, time.UTC), record.DueDate())
	assert.Equal(t, core.DefaultDailyLateFee, record.DailyLateFee())
}

func Test_NewLoanRecord_ValidationErrors(t *testing.T) {
	clock := fixedClock(time.Now())

	_, err := core.NewLoanRecord(" ", validID, 7, clock)
	assertValidationErrorOnField(t, err, "isbn")

	_, err = core.NewLoanRecord("B1", "", 7, clock)
	assertValidationErrorOnField(t, err, "personID")

	_, err = core.NewLoanRecord("B1", validID, 0, clock)
	assertValidationErrorOnField(t, err, "days")

	_, err = core.NewLoanRecord("B1", validID, -3, clock)
	assertValidationErrorOnField(t, err, "days")
}

func Test_LoanRecord_ComputeFee(t *testing.T) {
	// arrange
	loanDay := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)
	record, err := core.NewLoanRecord("B1", validID, 7, fixedClock(loanDay))
	require.NoError(t, err)

	due := record.DueDate()

	tests := []struct {
		name       string
		returnDate time.Time
		daysLate   int
		fee        int
	}{
		{name: "on the due date", returnDate: due, daysLate: 0, fee: 0},
		{name: "late evening of the due date", returnDate: due.Add(23 * time.Hour), daysLate: 0, fee: 0},
		{name: "three days late", returnDate: due.AddDate(0, 0, 3), daysLate: 3, fee: 3000},
		{name: "one day late", returnDate: due.AddDate(0, 0, 1).Add(2 * time.Hour), daysLate: 1, fee: 1000},
		{name: "two days early", returnDate: due.AddDate(0, 0, -2), daysLate: -2, fee: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// act
			daysLate := record.DaysLate(tt.returnDate)
			fee := record.ComputeFee(tt.returnDate)

			// assert
			assert.Equal(t, tt.daysLate, daysLate)
			assert.Equal(t, tt.fee, fee)
		})
	}

	// repeated hypothetical computations never change the record
	assert.Equal(t, 3000, record.ComputeFee(due.AddDate(0, 0, 3)))
	assert.Equal(t, due, record.DueDate())
}

func Test_LoanRecord_ComputeFee_ZeroReturnDateMeansToday(t *testing.T) {
	// arrange
	now := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	record, err := core.NewLoanRecord("B1", validID, 7, clock)
	require.NoError(t, err)

	// act + assert
	assert.Equal(t, 0, record.ComputeFee(time.Time{}))

	now = now.AddDate(0, 0, 9)
	assert.Equal(t, 2, record.DaysLate(time.Time{}))
	assert.Equal(t, 2000, record.ComputeFee(time.Time{}))
}

func Test_LoanRecord_WithDailyLateFee(t *testing.T) {
	// arrange
	now := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)

	record, err := core.NewLoanRecord("B1", validID, 1, fixedClock(now), core.WithDailyLateFee(250))
	require.NoError(t, err)

	// act
	fee := record.ComputeFee(record.DueDate().AddDate(0, 0, 4))

	// assert
	assert.Equal(t, 1000, fee)
}

func Test_LoanRecord_Receipt(t *testing.T) {
	// arrange
	now := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)

	record, err := core.NewLoanRecord("B1", validID, 7, fixedClock(now))
	require.NoError(t, err)

	// act
	receipt := record.Receipt()

	// assert
	assert.Contains(t, receipt, "B1")
	assert.Contains(t, receipt, validID)
	assert.Contains(t, receipt, "10/03/2026")
	assert.Contains(t, receipt, "7 days")
	assert.Contains(t, receipt, "17/03/2026")
	assert.Contains(t, record.String(), "dueDate=2026-03-17")
}
