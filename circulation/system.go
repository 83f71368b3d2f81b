package circulation

import (
	"slices"
	"sync"
	"time"

	"github.com/AntonStoeckl/library-circulation-go/circulation/core"
)

// System owns persons, books and the loan ledger. It is safe for concurrent use,
// every operation runs under one lock and either fully succeeds or changes nothing.
type System struct {
	mu sync.Mutex

	persons     map[core.PersonIDString]core.Person
	personOrder []core.PersonIDString
	books       map[core.ISBNString]*core.Book
	bookOrder   []core.ISBNString
	loans       []core.LoanRecord

	clock            core.Clock
	dailyLateFee     int
	logger           Logger
	metricsCollector MetricsCollector
	journal          Journal
}

// NewSystem creates an empty System.
func NewSystem(options ...Option) (*System, error) {
	s := &System{
		persons:      make(map[core.PersonIDString]core.Person),
		books:        make(map[core.ISBNString]*core.Book),
		clock:        time.Now,
		dailyLateFee: core.DefaultDailyLateFee,
	}

	for _, option := range options {
		if err := option(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// CreatePerson registers a copy of p. Identifiers are matched exactly as given.
// The registered person starts without a loan.
func (s *System) CreatePerson(p core.Person) error {
	start := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	if p == nil {
		return s.observeFailure(operationCreatePerson, reject(operationCreatePerson, ErrNilPerson), start)
	}

	if _, found := s.persons[p.ID()]; found {
		return s.observeFailure(
			operationCreatePerson,
			reject(operationCreatePerson, ErrPersonAlreadyRegistered),
			start,
			logAttrPersonID, p.ID(),
		)
	}

	registered := p.Clone()
	registered.ClearLoan()

	s.persons[registered.ID()] = registered
	s.personOrder = append(s.personOrder, registered.ID())

	s.observeSuccess(operationCreatePerson, start, logAttrPersonID, registered.ID())
	s.record(core.BuildPersonRegistered(registered, s.clock.Now()))

	return nil
}

// EditPerson replaces the profile of the person registered as currentID with the values of updated:
// name, identifier, gender and the variant fields. The loan state is kept.
// The identifier can only change while the person holds no loan.
func (s *System) EditPerson(currentID string, updated core.Person) error {
	start := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	if updated == nil {
		return s.observeFailure(operationEditPerson, reject(operationEditPerson, ErrNilPerson), start)
	}

	existing, found := s.persons[currentID]

	var reason error

	switch {
	case !found:
		reason = ErrPersonNotFound
	case existing.Kind() != updated.Kind():
		reason = ErrPersonKindMismatch
	case updated.ID() != currentID && s.isRegistered(updated.ID()):
		reason = ErrPersonAlreadyRegistered
	case updated.ID() != currentID && existing.HasActiveLoan():
		reason = ErrPersonHoldsLoan
	}

	if reason != nil {
		return s.observeFailure(operationEditPerson, reject(operationEditPerson, reason), start, logAttrPersonID, currentID)
	}

	replacement := updated.Clone()
	replacement.ClearLoan()

	if isbn, holding := existing.LoanState().ISBN(); holding {
		replacement.AssignLoan(isbn)
	}

	newID := replacement.ID()
	if newID != currentID {
		delete(s.persons, currentID)
		s.personOrder[slices.Index(s.personOrder, currentID)] = newID
	}

	s.persons[newID] = replacement

	s.observeSuccess(operationEditPerson, start, logAttrPersonID, newID)
	s.record(core.BuildPersonProfileUpdated(currentID, replacement, s.clock.Now()))

	return nil
}

// DeletePerson removes the person. Ledger entries of the person are kept.
func (s *System) DeletePerson(id string) error {
	start := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRegistered(id) {
		return s.observeFailure(operationDeletePerson, reject(operationDeletePerson, ErrPersonNotFound), start, logAttrPersonID, id)
	}

	delete(s.persons, id)
	s.personOrder = slices.DeleteFunc(s.personOrder, func(registered core.PersonIDString) bool { return registered == id })

	s.observeSuccess(operationDeletePerson, start, logAttrPersonID, id)
	s.record(core.BuildPersonRemoved(id, s.clock.Now()))

	return nil
}

// FindPerson returns a copy of the registered person.
func (s *System) FindPerson(id string) (core.Person, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, found := s.persons[id]
	if !found {
		return nil, false
	}

	return p.Clone(), true
}

// ListPersons returns copies of all registered persons in registration order.
func (s *System) ListPersons() []core.Person {
	s.mu.Lock()
	defer s.mu.Unlock()

	persons := make([]core.Person, 0, len(s.personOrder))
	for _, id := range s.personOrder {
		persons = append(persons, s.persons[id].Clone())
	}

	return persons
}

func (s *System) isRegistered(id core.PersonIDString) bool {
	_, found := s.persons[id]

	return found
}
