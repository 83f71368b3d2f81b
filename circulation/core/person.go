package core

import (
	"strings"
)

// Gender is the gender flag of a person.
type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
)

// PersonKind names the variant of a Person.
type PersonKind string

const (
	KindInstructor PersonKind = "instructor"
	KindStudent    PersonKind = "student"
)

const (
	fieldFullName = "fullName"
	fieldID       = "id"
	fieldGender   = "gender"

	tagsFullName = "required"
	tagsID       = "required," + tagNationalIDFormat + "," + tagNationalIDCheckDigit
	tagsGender   = "required,oneof=M F"
)

// LoanState is either "no loan" or "holding the book with this ISBN".
// The zero value is NoLoan.
type LoanState struct {
	isbn    ISBNString
	holding bool
}

// NoLoan is the state of a person without an active loan.
func NoLoan() LoanState {
	return LoanState{}
}

// Holding is the state of a person who currently holds a copy of isbn.
func Holding(isbn ISBNString) LoanState {
	return LoanState{isbn: isbn, holding: true}
}

// ISBN returns the held ISBN, ok is false for NoLoan.
func (s LoanState) ISBN() (isbn ISBNString, ok bool) {
	return s.isbn, s.holding
}

// IsHolding reports whether the state holds exactly isbn.
func (s LoanState) IsHolding(isbn ISBNString) bool {
	return s.holding && s.isbn == isbn
}

func (s LoanState) String() string {
	if !s.holding {
		return "none"
	}

	return s.isbn
}

// Person is a registered library user. Exactly two variants exist: *Instructor and *Student.
type Person interface {
	ID() PersonIDString
	FullName() string
	Gender() Gender
	Kind() PersonKind

	// MaxLoanDays is the entitlement of the variant.
	MaxLoanDays() int

	LoanState() LoanState
	HasActiveLoan() bool

	SetFullName(fullName string) error
	SetID(id string) error
	SetGender(gender Gender) error

	// AssignLoan and ClearLoan are the loan transitions, driven by the circulation system.
	AssignLoan(isbn ISBNString)
	ClearLoan()

	Clone() Person
	String() string

	base() *profile
}

// personFields carries the invariants every Person shares.
type personFields struct {
	FullName string `field:"fullName" validate:"required"`
	ID       string `field:"id" validate:"required,nationalid_format,nationalid_checkdigit"`
	Gender   Gender `field:"gender" validate:"required,oneof=M F"`
}

// profile holds the shared state of both Person variants.
type profile struct {
	kind     PersonKind
	fullName string
	id       PersonIDString
	gender   Gender
	loan     LoanState
}

func newProfile(kind PersonKind, fields personFields) profile {
	return profile{
		kind:     kind,
		fullName: fields.FullName,
		id:       fields.ID,
		gender:   fields.Gender,
		loan:     NoLoan(),
	}
}

// trimmedPersonFields trims the name. The identifier is kept as supplied, lookups use the exact string.
func trimmedPersonFields(fullName, id string, gender Gender) personFields {
	return personFields{
		FullName: strings.TrimSpace(fullName),
		ID:       id,
		Gender:   gender,
	}
}

func (p *profile) ID() PersonIDString         { return p.id }
func (p *profile) FullName() string           { return p.fullName }
func (p *profile) Gender() Gender             { return p.gender }
func (p *profile) Kind() PersonKind           { return p.kind }
func (p *profile) LoanState() LoanState       { return p.loan }
func (p *profile) HasActiveLoan() bool        { return p.loan.holding }
func (p *profile) AssignLoan(isbn ISBNString) { p.loan = Holding(isbn) }
func (p *profile) ClearLoan()                 { p.loan = NoLoan() }

func (p *profile) SetFullName(fullName string) error {
	fullName = strings.TrimSpace(fullName)
	if err := validateValue(string(p.kind), fieldFullName, fullName, tagsFullName); err != nil {
		return err
	}

	p.fullName = fullName

	return nil
}

func (p *profile) SetID(id string) error {
	if err := validateValue(string(p.kind), fieldID, id, tagsID); err != nil {
		return err
	}

	p.id = id

	return nil
}

func (p *profile) SetGender(gender Gender) error {
	if err := validateValue(string(p.kind), fieldGender, gender, tagsGender); err != nil {
		return err
	}

	p.gender = gender

	return nil
}

func (p *profile) base() *profile {
	return p
}

var (
	_ Person = (*Instructor)(nil)
	_ Person = (*Student)(nil)
)
