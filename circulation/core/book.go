package core

import (
	"fmt"
	"strings"
)

const (
	entityBook = "book"

	fieldISBN            = "isbn"
	fieldTitle           = "title"
	fieldAuthor          = "author"
	fieldTotalCopies     = "totalCopies"
	fieldAvailableCopies = "availableCopies"

	reasonExceedsTotalCopies     = "must not exceed total copies"
	reasonBelowAvailableCopies   = "must not be less than available copies"
	reasonNoCopiesAvailable      = "no copies available"
	reasonAllCopiesAlreadyInside = "available copies already equal total copies"
)

// bookFields carries the constructor invariants of a Book.
type bookFields struct {
	ISBN            string `field:"isbn" validate:"required"`
	Title           string `field:"title" validate:"required"`
	Author          string `field:"author" validate:"required"`
	TotalCopies     int    `field:"totalCopies" validate:"gt=0"`
	AvailableCopies int    `field:"availableCopies" validate:"gt=0,ltefield=TotalCopies"`
}

// Book is a catalog entry with a number of physical copies.
// Invariant: 0 <= AvailableCopies() <= TotalCopies().
type Book struct {
	isbn            ISBNString
	title           string
	author          string
	totalCopies     int
	availableCopies int
	image           string
}

// NewBook creates a validated Book. String inputs are trimmed, image is optional.
func NewBook(isbn, title, author string, totalCopies, availableCopies int, image string) (*Book, error) {
	fields := bookFields{
		ISBN:            strings.TrimSpace(isbn),
		Title:           strings.TrimSpace(title),
		Author:          strings.TrimSpace(author),
		TotalCopies:     totalCopies,
		AvailableCopies: availableCopies,
	}

	if err := validateFields(entityBook, fields); err != nil {
		return nil, err
	}

	return &Book{
		isbn:            fields.ISBN,
		title:           fields.Title,
		author:          fields.Author,
		totalCopies:     fields.TotalCopies,
		availableCopies: fields.AvailableCopies,
		image:           strings.TrimSpace(image),
	}, nil
}

func (b *Book) ISBN() ISBNString     { return b.isbn }
func (b *Book) Title() string        { return b.title }
func (b *Book) Author() string       { return b.author }
func (b *Book) TotalCopies() int     { return b.totalCopies }
func (b *Book) AvailableCopies() int { return b.availableCopies }
func (b *Book) Image() string        { return b.image }

// HasAvailable reports whether at least one copy can be lent.
func (b *Book) HasAvailable() bool {
	return b.availableCopies > 0
}

// CheckOut takes one copy out of stock.
func (b *Book) CheckOut() error {
	if !b.HasAvailable() {
		return &StateError{Entity: entityBook, Operation: "check out", Reason: reasonNoCopiesAvailable}
	}

	b.availableCopies--

	return nil
}

// CheckIn puts one copy back into stock.
func (b *Book) CheckIn() error {
	if b.availableCopies >= b.totalCopies {
		return &StateError{Entity: entityBook, Operation: "check in", Reason: reasonAllCopiesAlreadyInside}
	}

	b.availableCopies++

	return nil
}

func (b *Book) SetISBN(isbn string) error {
	isbn = strings.TrimSpace(isbn)
	if err := validateValue(entityBook, fieldISBN, isbn, "required"); err != nil {
		return err
	}

	b.isbn = isbn

	return nil
}

func (b *Book) SetTitle(title string) error {
	title = strings.TrimSpace(title)
	if err := validateValue(entityBook, fieldTitle, title, "required"); err != nil {
		return err
	}

	b.title = title

	return nil
}

func (b *Book) SetAuthor(author string) error {
	author = strings.TrimSpace(author)
	if err := validateValue(entityBook, fieldAuthor, author, "required"); err != nil {
		return err
	}

	b.author = author

	return nil
}

// SetTotalCopies accepts any positive count that still covers the available copies.
func (b *Book) SetTotalCopies(totalCopies int) error {
	if err := validateValue(entityBook, fieldTotalCopies, totalCopies, "gt=0"); err != nil {
		return err
	}

	if totalCopies < b.availableCopies {
		return &ValidationError{Entity: entityBook, Field: fieldTotalCopies, Reason: reasonBelowAvailableCopies}
	}

	b.totalCopies = totalCopies

	return nil
}

// SetAvailableCopies accepts 0 up to the total copies.
func (b *Book) SetAvailableCopies(availableCopies int) error {
	if err := validateValue(entityBook, fieldAvailableCopies, availableCopies, "gte=0"); err != nil {
		return err
	}

	if availableCopies > b.totalCopies {
		return &ValidationError{Entity: entityBook, Field: fieldAvailableCopies, Reason: reasonExceedsTotalCopies}
	}

	b.availableCopies = availableCopies

	return nil
}

func (b *Book) SetImage(image string) {
	b.image = strings.TrimSpace(image)
}

// Clone returns an independent copy of the book.
func (b *Book) Clone() *Book {
	c := *b

	return &c
}

func (b *Book) String() string {
	return fmt.Sprintf(
		"Book{isbn=%q, title=%q, author=%q, totalCopies=%d, availableCopies=%d, image=%q}",
		b.isbn, b.title, b.author, b.totalCopies, b.availableCopies, b.image,
	)
}
