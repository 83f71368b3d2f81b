package core

import (
	"fmt"
	"slices"
	"strings"
)

const (
	instructorMaxLoanDays = 20

	fieldProfession = "profession"
)

// Instructor is a Person entitled to loans of up to 20 days.
type Instructor struct {
	profile
	profession string
	degrees    []string
}

// NewInstructor creates a validated Instructor. Degrees are optional, see AddDegree for how they are added.
func NewInstructor(fullName, id string, gender Gender, profession string, degrees ...string) (*Instructor, error) {
	fields := trimmedPersonFields(fullName, id, gender)
	if err := validateFields(string(KindInstructor), fields); err != nil {
		return nil, err
	}

	profession = strings.TrimSpace(profession)
	if err := validateValue(string(KindInstructor), fieldProfession, profession, "required"); err != nil {
		return nil, err
	}

	instructor := &Instructor{
		profile:    newProfile(KindInstructor, fields),
		profession: profession,
	}

	for _, degree := range degrees {
		instructor.AddDegree(degree)
	}

	return instructor, nil
}

func (i *Instructor) MaxLoanDays() int {
	return instructorMaxLoanDays
}

func (i *Instructor) Profession() string {
	return i.profession
}

func (i *Instructor) SetProfession(profession string) error {
	profession = strings.TrimSpace(profession)
	if err := validateValue(string(KindInstructor), fieldProfession, profession, "required"); err != nil {
		return err
	}

	i.profession = profession

	return nil
}

// Degrees returns a copy of the academic degrees in insertion order.
func (i *Instructor) Degrees() []string {
	return slices.Clone(i.degrees)
}

// AddDegree trims degree and appends it, unless it is empty or already present.
func (i *Instructor) AddDegree(degree string) {
	degree = strings.TrimSpace(degree)
	if degree == "" || slices.Contains(i.degrees, degree) {
		return
	}

	i.degrees = append(i.degrees, degree)
}

// SetDegrees replaces all degrees, applying the same rules as AddDegree.
func (i *Instructor) SetDegrees(degrees []string) {
	i.degrees = nil

	for _, degree := range degrees {
		i.AddDegree(degree)
	}
}

func (i *Instructor) Clone() Person {
	c := *i
	c.degrees = slices.Clone(i.degrees)

	return &c
}

func (i *Instructor) String() string {
	return fmt.Sprintf(
		"Instructor{fullName=%q, id=%q, gender=%s, profession=%q, degrees=%q, loan=%s, maxLoanDays=%d}",
		i.fullName, i.id, i.gender, i.profession, i.degrees, i.loan, i.MaxLoanDays(),
	)
}
