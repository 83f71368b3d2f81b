package circulation

import (
	"slices"
	"time"

	"github.com/AntonStoeckl/library-circulation-go/circulation/core"
)

// CreateBook adds a copy of b to the catalog. ISBNs are matched exactly as given.
func (s *System) CreateBook(b *core.Book) error {
	start := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	if b == nil {
		return s.observeFailure(operationCreateBook, reject(operationCreateBook, ErrNilBook), start)
	}

	if _, found := s.books[b.ISBN()]; found {
		return s.observeFailure(operationCreateBook, reject(operationCreateBook, ErrBookAlreadyRegistered), start, logAttrISBN, b.ISBN())
	}

	book := b.Clone()
	s.books[book.ISBN()] = book
	s.bookOrder = append(s.bookOrder, book.ISBN())

	s.observeSuccess(operationCreateBook, start, logAttrISBN, book.ISBN())
	s.record(core.BuildBookAddedToCatalog(book, s.clock.Now()))

	return nil
}

// DeleteBook removes the book from the catalog. Ledger entries of the book are kept.
func (s *System) DeleteBook(isbn string) error {
	start := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, found := s.books[isbn]; !found {
		return s.observeFailure(operationDeleteBook, reject(operationDeleteBook, ErrBookNotFound), start, logAttrISBN, isbn)
	}

	delete(s.books, isbn)
	s.bookOrder = slices.DeleteFunc(s.bookOrder, func(registered core.ISBNString) bool { return registered == isbn })

	s.observeSuccess(operationDeleteBook, start, logAttrISBN, isbn)
	s.record(core.BuildBookRemovedFromCatalog(isbn, s.clock.Now()))

	return nil
}

// FindBook returns a copy of the book.
func (s *System) FindBook(isbn string) (*core.Book, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, found := s.books[isbn]
	if !found {
		return nil, false
	}

	return b.Clone(), true
}

// ListBooks returns copies of all books in the order they were added.
func (s *System) ListBooks() []*core.Book {
	s.mu.Lock()
	defer s.mu.Unlock()

	books := make([]*core.Book, 0, len(s.bookOrder))
	for _, isbn := range s.bookOrder {
		books = append(books, s.books[isbn].Clone())
	}

	return books
}
