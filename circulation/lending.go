package circulation

import (
	"time"

	"github.com/AntonStoeckl/library-circulation-go/circulation/core"
)

// IssueLoan lends a copy of the book to the person for days.
//
// It is rejected with the first violated rule of: the book exists (ErrBookNotFound), a copy is available
// (ErrNoCopiesAvailable), the person exists (ErrPersonNotFound), the person holds no loan (ErrPersonHoldsLoan),
// days is within the person's entitlement (ErrExceedsMaximumPeriod). A non-positive days yields the
// *core.ValidationError of the loan record. On success the copy is checked out, the person holds the book
// and the record is appended to the ledger.
func (s *System) IssueLoan(isbn, personID string, days int) (core.LoanRecord, error) {
	start := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	book, bookFound := s.books[isbn]
	person, personFound := s.persons[personID]

	state := issueLoanState{bookFound: bookFound, personFound: personFound}
	if bookFound {
		state.copiesAvailable = book.HasAvailable()
	}

	if personFound {
		state.personHoldsLoan = person.HasActiveLoan()
		state.personMaxLoanDays = person.MaxLoanDays()
	}

	if reason := decideIssueLoan(state, days); reason != nil {
		s.record(core.BuildLendingBookToPersonFailed(isbn, personID, reason.Error(), s.clock.Now()))

		return core.LoanRecord{}, s.observeFailure(
			operationIssueLoan,
			reject(operationIssueLoan, reason),
			start,
			logAttrISBN, isbn,
			logAttrPersonID, personID,
		)
	}

	record, err := core.NewLoanRecord(isbn, personID, days, s.clock, core.WithDailyLateFee(s.dailyLateFee))
	if err != nil {
		return core.LoanRecord{}, s.observeFailure(operationIssueLoan, err, start, logAttrISBN, isbn, logAttrPersonID, personID)
	}

	if err := book.CheckOut(); err != nil {
		return core.LoanRecord{}, s.observeFailure(operationIssueLoan, err, start, logAttrISBN, isbn, logAttrPersonID, personID)
	}

	person.AssignLoan(isbn)
	s.loans = append(s.loans, record)

	s.observeSuccess(
		operationIssueLoan,
		start,
		logAttrISBN, isbn,
		logAttrPersonID, personID,
		logAttrLoanDays, days,
		logAttrDueDate, record.DueDate().Format(time.DateOnly),
	)
	s.record(core.BuildBookCopyLentToPerson(record, s.clock.Now()))

	return record, nil
}

// ProcessReturn takes back the copy the person holds and returns the late fee as of today.
//
// It is rejected with the first violated rule of: the book exists (ErrBookNotFound), the person exists
// (ErrPersonNotFound), the person holds this ISBN (ErrNotHoldingBook), the ledger has a record for ISBN
// and person (ErrLoanRecordMissing). The fee is computed from the latest matching record.
// If the book has no copy out, the *core.StateError of Book.CheckIn is returned and nothing changes.
// The ledger itself is never modified.
func (s *System) ProcessReturn(isbn, personID string) (int, error) {
	start := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	book, bookFound := s.books[isbn]
	person, personFound := s.persons[personID]
	recordIndex := s.latestLoanIndex(isbn, personID)

	state := processReturnState{
		bookFound:           bookFound,
		personFound:         personFound,
		personHoldsThisBook: personFound && person.LoanState().IsHolding(isbn),
		loanRecordFound:     recordIndex >= 0,
	}

	if reason := decideProcessReturn(state); reason != nil {
		s.record(core.BuildReturningBookFromPersonFailed(isbn, personID, reason.Error(), s.clock.Now()))

		return 0, s.observeFailure(
			operationProcessReturn,
			reject(operationProcessReturn, reason),
			start,
			logAttrISBN, isbn,
			logAttrPersonID, personID,
		)
	}

	record := s.loans[recordIndex]
	today := s.clock.Now()
	daysLate := record.DaysLate(today)
	fee := record.ComputeFee(today)

	if err := book.CheckIn(); err != nil {
		return 0, s.observeFailure(operationProcessReturn, err, start, logAttrISBN, isbn, logAttrPersonID, personID)
	}

	person.ClearLoan()

	s.observeSuccess(
		operationProcessReturn,
		start,
		logAttrISBN, isbn,
		logAttrPersonID, personID,
		logAttrLateFee, fee,
	)
	s.recordLateFee(fee)
	s.record(core.BuildBookCopyReturnedByPerson(isbn, personID, daysLate, fee, today))

	return fee, nil
}

// FindLoan returns the latest ledger record for ISBN and person.
func (s *System) FindLoan(isbn, personID string) (core.LoanRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.latestLoanIndex(isbn, personID)
	if i < 0 {
		return core.LoanRecord{}, false
	}

	return s.loans[i], true
}

// ListLoans returns the whole ledger in the order the loans were issued.
func (s *System) ListLoans() []core.LoanRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	loans := make([]core.LoanRecord, len(s.loans))
	copy(loans, s.loans)

	return loans
}

func (s *System) latestLoanIndex(isbn, personID string) int {
	for i := len(s.loans) - 1; i >= 0; i-- {
		if s.loans[i].ISBN() == isbn && s.loans[i].PersonID() == personID {
			return i
		}
	}

	return -1
}
