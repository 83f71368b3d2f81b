package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-circulation-go/circulation/core"
)

func Test_NewBook_Success(t *testing.T) {
	// act
	book, err := core.NewBook("  978-0134190440 ", " The Go Programming Language ", " Donovan ", 3, 2, "")

	// assert
	require.NoError(t, err)
	assert.Equal(t, "978-0134190440", book.ISBN())
	assert.Equal(t, "The Go Programming Language", book.Title())
	assert.Equal(t, "Donovan", book.Author())
	assert.Equal(t, 3, book.TotalCopies())
	assert.Equal(t, 2, book.AvailableCopies())
	assert.Empty(t, book.Image())
	assert.True(t, book.HasAvailable())
}

func Test_NewBook_ValidationErrors(t *testing.T) {
	tests := []struct {
		name      string
		isbn      string
		title     string
		author    string
		total     int
		available int
		field     string
	}{
		{name: "blank isbn", isbn: "   ", title: "T", author: "A", total: 1, available: 1, field: "isbn"},
		{name: "empty title", isbn: "B1", title: "", author: "A", total: 1, available: 1, field: "title"},
		{name: "empty author", isbn: "B1", title: "T", author: " ", total: 1, available: 1, field: "author"},
		{name: "zero total", isbn: "B1", title: "T", author: "A", total: 0, available: 1, field: "totalCopies"},
		{name: "zero available", isbn: "B1", title: "T", author: "A", total: 1, available: 0, field: "availableCopies"},
		{name: "available above total", isbn: "B1", title: "T", author: "A", total: 2, available: 3, field: "availableCopies"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// act
			book, err := core.NewBook(tt.isbn, tt.title, tt.author, tt.total, tt.available, "")

			// assert
			assert.Nil(t, book)
			assertValidationErrorOnField(t, err, tt.field)
		})
	}
}

func Test_Book_CheckOutAndCheckIn_StayWithinBounds(t *testing.T) {
	// arrange
	book, err := core.NewBook("B1", "Title", "Author", 2, 2, "")
	require.NoError(t, err)

	// act + assert
	assert.ErrorIs(t, book.CheckIn(), core.ErrInvalidState)
	assert.Equal(t, 2, book.AvailableCopies())

	require.NoError(t, book.CheckOut())
	require.NoError(t, book.CheckOut())
	assert.Equal(t, 0, book.AvailableCopies())
	assert.False(t, book.HasAvailable())

	err = book.CheckOut()
	assert.ErrorIs(t, err, core.ErrInvalidState)
	assert.Equal(t, 0, book.AvailableCopies())

	require.NoError(t, book.CheckIn())
	assert.Equal(t, 1, book.AvailableCopies())
}

func Test_Book_CheckOutAndCheckIn_AnySequenceKeepsInvariant(t *testing.T) {
	// arrange
	book, err := core.NewBook("B1", "Title", "Author", 3, 1, "")
	require.NoError(t, err)

	moves := []bool{true, true, false, false, false, false, true, false, true, true, true, true}

	for _, out := range moves {
		// act
		if out {
			_ = book.CheckOut()
		} else {
			_ = book.CheckIn()
		}

		// assert
		assert.GreaterOrEqual(t, book.AvailableCopies(), 0)
		assert.LessOrEqual(t, book.AvailableCopies(), book.TotalCopies())
	}
}

func Test_Book_Setters_RevalidateAndLeaveBookUnchangedOnFailure(t *testing.T) {
	// arrange
	book, err := core.NewBook("B1", "Title", "Author", 3, 2, "")
	require.NoError(t, err)

	// act + assert
	assertValidationErrorOnField(t, book.SetTotalCopies(1), "totalCopies")
	assertValidationErrorOnField(t, book.SetTotalCopies(0), "totalCopies")
	assertValidationErrorOnField(t, book.SetAvailableCopies(4), "availableCopies")
	assertValidationErrorOnField(t, book.SetAvailableCopies(-1), "availableCopies")
	assertValidationErrorOnField(t, book.SetTitle("  "), "title")
	assertValidationErrorOnField(t, book.SetAuthor(""), "author")
	assertValidationErrorOnField(t, book.SetISBN(""), "isbn")

	assert.Equal(t, 3, book.TotalCopies())
	assert.Equal(t, 2, book.AvailableCopies())
	assert.Equal(t, "Title", book.Title())

	require.NoError(t, book.SetAvailableCopies(0))
	require.NoError(t, book.SetTotalCopies(5))
	require.NoError(t, book.SetTitle(" New Title "))
	book.SetImage(" cover.png ")

	assert.Equal(t, 0, book.AvailableCopies())
	assert.Equal(t, 5, book.TotalCopies())
	assert.Equal(t, "New Title", book.Title())
	assert.Equal(t, "cover.png", book.Image())
}

func Test_Book_Clone_IsIndependent(t *testing.T) {
	// arrange
	book, err := core.NewBook("B1", "Title", "Author", 2, 2, "")
	require.NoError(t, err)

	// act
	clone := book.Clone()
	require.NoError(t, clone.CheckOut())

	// assert
	assert.Equal(t, 2, book.AvailableCopies())
	assert.Equal(t, 1, clone.AvailableCopies())
	assert.Contains(t, book.String(), `isbn="B1"`)
}

func assertValidationErrorOnField(t *testing.T, err error, field string) {
	t.Helper()

	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrValidation)

	var validationErr *core.ValidationError
	require.True(t, errors.As(err, &validationErr), "expected a *core.ValidationError, got %T", err)
	assert.Equal(t, field, validationErr.Field)
	assert.NotEmpty(t, validationErr.Reason)
}
