// Package core contains the entities and domain events of the library circulation engine.
//
// The entities are plain validated value holders:
//   - Book tracks total and available copies of one ISBN
//   - Person is implemented by Instructor (20 loan days) and Student (10 loan days)
//   - LoanRecord is one issued loan with its due date and late fee computation
//
// Constructors and setters return a *ValidationError when a value violates an invariant,
// Book.CheckOut and Book.CheckIn return a *StateError when the stock does not allow the move.
// Neither ever leaves an entity partially modified.
//
// The domain events (PersonRegistered, BookCopyLentToPerson, ...) describe what happened in the
// circulation workflow and are recorded by the orchestration layer into the circulation journal.
//
// In Domain-Driven Design or Hexagonal Architecture terminology, this would be
// called the 'domain' layer.
package core
