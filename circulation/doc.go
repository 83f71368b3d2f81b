// Package circulation implements the library circulation engine.
//
// A System owns the registered persons, the book catalog and the loan ledger, and runs every
// operation as one atomic transaction:
//
//   - CreatePerson, EditPerson, DeletePerson, FindPerson, ListPersons
//   - CreateBook, DeleteBook, FindBook, ListBooks
//   - IssueLoan, ProcessReturn, FindLoan, ListLoans
//
// IssueLoan and ProcessReturn check their business rules in a fixed order and reject the request
// with the first violated rule, leaving all state unchanged. Rejections are returned as
// *OperationFailure, errors.Is matches the reason sentinel (ErrBookNotFound, ErrPersonHoldsLoan, ...).
// Invalid values surface as the *core.ValidationError of the entity constructors.
//
// Every state change and every rejected loan or return is recorded as a domain event into an
// optional Journal (see circulation/shell for one backed by an event store).
//
// Usage:
//
//	system, err := circulation.NewSystem(circulation.WithLogger(slog.Default()))
//	if err != nil {
//		// handle error
//	}
//
//	student, _ := core.NewStudent("Ana Rojas", "12.345.678-5", core.GenderFemale, "Engineering")
//	_ = system.CreatePerson(student)
//
//	book, _ := core.NewBook("978-0134190440", "The Go Programming Language", "Donovan", 1, 1, "")
//	_ = system.CreateBook(book)
//
//	record, err := system.IssueLoan("978-0134190440", "12.345.678-5", 10)
//	if errors.Is(err, circulation.ErrExceedsMaximumPeriod) {
//		// ask for a shorter loan
//	}
//
//	fee, err := system.ProcessReturn("978-0134190440", "12.345.678-5")
package circulation
