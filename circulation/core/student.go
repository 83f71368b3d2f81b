package core

import (
	"fmt"
	"strings"
)

const (
	studentMaxLoanDays = 10

	fieldProgram = "program"
)

// Student is a Person entitled to loans of up to 10 days.
type Student struct {
	profile
	program string
}

// NewStudent creates a validated Student.
func NewStudent(fullName, id string, gender Gender, program string) (*Student, error) {
	fields := trimmedPersonFields(fullName, id, gender)
	if err := validateFields(string(KindStudent), fields); err != nil {
		return nil, err
	}

	program = strings.TrimSpace(program)
	if err := validateValue(string(KindStudent), fieldProgram, program, "required"); err != nil {
		return nil, err
	}

	return &Student{
		profile: newProfile(KindStudent, fields),
		program: program,
	}, nil
}

func (s *Student) MaxLoanDays() int {
	return studentMaxLoanDays
}

func (s *Student) Program() string {
	return s.program
}

func (s *Student) SetProgram(program string) error {
	program = strings.TrimSpace(program)
	if err := validateValue(string(KindStudent), fieldProgram, program, "required"); err != nil {
		return err
	}

	s.program = program

	return nil
}

func (s *Student) Clone() Person {
	c := *s

	return &c
}

func (s *Student) String() string {
	return fmt.Sprintf(
		"Student{fullName=%q, id=%q, gender=%s, program=%q, loan=%s, maxLoanDays=%d}",
		s.fullName, s.id, s.gender, s.program, s.loan, s.MaxLoanDays(),
	)
}
