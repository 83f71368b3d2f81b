package circulation

// issueLoanState is what IssueLoan knows about the requested book and person.
type issueLoanState struct {
	bookFound         bool
	copiesAvailable   bool
	personFound       bool
	personHoldsLoan   bool
	personMaxLoanDays int
}

// decideIssueLoan checks the lending rules in their fixed order and returns the first violated one.
//
//	GIVEN: a book with ISBN and a person with ID
//	WHEN: a loan of days is requested
//	ERROR: ErrBookNotFound if no book has the ISBN
//	ERROR: ErrNoCopiesAvailable if all copies are lent
//	ERROR: ErrPersonNotFound if no person has the ID
//	ERROR: ErrPersonHoldsLoan if the person already holds any book
//	ERROR: ErrExceedsMaximumPeriod if days is above the person's entitlement
func decideIssueLoan(s issueLoanState, days int) error {
	switch {
	case !s.bookFound:
		return ErrBookNotFound
	case !s.copiesAvailable:
		return ErrNoCopiesAvailable
	case !s.personFound:
		return ErrPersonNotFound
	case s.personHoldsLoan:
		return ErrPersonHoldsLoan
	case days > s.personMaxLoanDays:
		return ErrExceedsMaximumPeriod
	default:
		return nil
	}
}

// processReturnState is what ProcessReturn knows about the returned book and person.
type processReturnState struct {
	bookFound           bool
	personFound         bool
	personHoldsThisBook bool
	loanRecordFound     bool
}

// decideProcessReturn checks the return rules in their fixed order and returns the first violated one.
//
//	ERROR: ErrBookNotFound if no book has the ISBN
//	ERROR: ErrPersonNotFound if no person has the ID
//	ERROR: ErrNotHoldingBook if the person does not hold this ISBN
//	ERROR: ErrLoanRecordMissing if the ledger has no record for ISBN and person
func decideProcessReturn(s processReturnState) error {
	switch {
	case !s.bookFound:
		return ErrBookNotFound
	case !s.personFound:
		return ErrPersonNotFound
	case !s.personHoldsThisBook:
		return ErrNotHoldingBook
	case !s.loanRecordFound:
		return ErrLoanRecordMissing
	default:
		return nil
	}
}
