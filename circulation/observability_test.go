package circulation_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-circulation-go/circulation"
	"github.com/AntonStoeckl/library-circulation-go/circulation/core"
	"github.com/AntonStoeckl/library-circulation-go/testutil/helper"
)

func Test_IssueLoan_Success_IsLoggedAndCounted(t *testing.T) {
	// arrange
	logger, logSpy := helper.NewSpyLogger()
	metricsSpy := helper.NewMetricsCollectorSpy()
	system := givenSystem(t, helper.NewClock(startOfTest), circulation.WithLogger(logger), circulation.WithMetrics(metricsSpy))
	id := helper.GivenValidPersonID(t, 40)
	givenStudent(t, system, id)
	givenBook(t, system, "B1", 1)

	logSpy.Reset()
	metricsSpy.Reset()

	// act
	_, err := system.IssueLoan("B1", id, 4)

	// assert
	require.NoError(t, err)
	assert.True(t, logSpy.HasInfoLogWithMessage("circulation operation succeeded").
		WithAttr("operation", "issue_loan").
		WithAttr("isbn", "B1").
		WithAttr("person_id", id).
		WithAttr("loan_days", 4).
		WithAttr("due_date", "2026-03-14").
		WithDurationMS().
		Assert())
	assert.True(t, metricsSpy.HasCounterRecord("circulation_operations_total", map[string]string{
		"operation": "issue_loan",
		"status":    "success",
	}))
	assert.True(t, metricsSpy.HasDurationRecord("circulation_operation_duration_seconds"))
}

func Test_IssueLoan_Rejection_IsLoggedAndCountedWithReason(t *testing.T) {
	// arrange
	logger, logSpy := helper.NewSpyLogger()
	metricsSpy := helper.NewMetricsCollectorSpy()
	system := givenSystem(t, helper.NewClock(startOfTest), circulation.WithLogger(logger), circulation.WithMetrics(metricsSpy))
	id := helper.GivenValidPersonID(t, 41)
	givenStudent(t, system, id)

	// act
	_, err := system.IssueLoan("NOPE", id, 4)

	// assert
	require.Error(t, err)
	assert.True(t, logSpy.HasInfoLogWithMessage("circulation operation rejected").
		WithAttr("operation", "issue_loan").
		WithAttr("reason", "book not found").
		WithAttr("isbn", "NOPE").
		Assert())
	assert.True(t, metricsSpy.HasCounterRecord("circulation_operations_total", map[string]string{
		"operation": "issue_loan",
		"status":    "rejected",
		"reason":    "book not found",
	}))
}

func Test_IssueLoan_ValidationFailure_IsCountedAsInvalid(t *testing.T) {
	// arrange
	logger, logSpy := helper.NewSpyLogger()
	metricsSpy := helper.NewMetricsCollectorSpy()
	system := givenSystem(t, helper.NewClock(startOfTest), circulation.WithLogger(logger), circulation.WithMetrics(metricsSpy))
	id := helper.GivenValidPersonID(t, 42)
	givenStudent(t, system, id)
	givenBook(t, system, "B1", 1)

	// act
	_, err := system.IssueLoan("B1", id, 0)

	// assert
	require.ErrorIs(t, err, core.ErrValidation)
	assert.True(t, logSpy.HasInfoLogWithMessage("circulation operation failed validation").
		WithAttr("operation", "issue_loan").
		WithAttrKey("reason").
		Assert())
	assert.Equal(t, 1, metricsSpy.CountCounterRecords("circulation_operations_total", map[string]string{
		"operation": "issue_loan",
		"status":    "invalid",
	}))
}

func Test_ProcessReturn_RecordsLateFee(t *testing.T) {
	// arrange
	clock := helper.NewClock(startOfTest)
	metricsSpy := helper.NewMetricsCollectorSpy()
	system := givenSystem(t, clock, circulation.WithMetrics(metricsSpy))
	id := helper.GivenValidPersonID(t, 43)
	givenStudent(t, system, id)
	givenBook(t, system, "B1", 1)

	_, err := system.IssueLoan("B1", id, 2)
	require.NoError(t, err)

	clock.AdvanceDays(4)

	// act
	_, err = system.ProcessReturn("B1", id)

	// assert
	require.NoError(t, err)
	assert.Equal(t, []float64{2000}, metricsSpy.ValuesOf("circulation_late_fee_amount"))
}

func Test_Journal_RecordsStateChangesAndRejections(t *testing.T) {
	// arrange
	clock := helper.NewClock(startOfTest)
	journal := &journalSpy{}
	system := givenSystem(t, clock, circulation.WithJournal(journal))
	id := helper.GivenValidPersonID(t, 44)

	// act
	givenStudent(t, system, id)
	givenBook(t, system, "B1", 1)
	_, _ = system.IssueLoan("NOPE", id, 1)
	_, err := system.IssueLoan("B1", id, 1)
	require.NoError(t, err)
	_, _ = system.ProcessReturn("B1", "NOPE")
	clock.AdvanceDays(3)
	_, err = system.ProcessReturn("B1", id)
	require.NoError(t, err)
	require.NoError(t, system.DeleteBook("B1"))
	require.NoError(t, system.DeletePerson(id))

	// assert
	assert.Equal(t, []string{
		core.PersonRegisteredEventType,
		core.BookAddedToCatalogEventType,
		core.LendingBookToPersonFailedEventType,
		core.BookCopyLentToPersonEventType,
		core.ReturningBookFromPersonFailedEventType,
		core.BookCopyReturnedByPersonEventType,
		core.BookRemovedFromCatalogEventType,
		core.PersonRemovedEventType,
	}, journal.eventTypes())

	returned, ok := journal.events[5].(core.BookCopyReturnedByPerson)
	require.True(t, ok)
	assert.Equal(t, 2, returned.DaysLate)
	assert.Equal(t, 2000, returned.LateFee)

	failed, ok := journal.events[2].(core.LendingBookToPersonFailed)
	require.True(t, ok)
	assert.True(t, failed.IsErrorEvent())
	assert.Equal(t, "book not found", failed.FailureInfo)
}

func Test_Journal_ProfileUpdateCarriesPreviousIdentifier(t *testing.T) {
	// arrange
	journal := &journalSpy{}
	system := givenSystem(t, helper.NewClock(startOfTest), circulation.WithJournal(journal))
	oldID := helper.GivenValidPersonID(t, 45)
	newID := helper.GivenValidPersonID(t, 46)
	givenStudent(t, system, oldID)

	updated, err := core.NewStudent("Ana Rojas", newID, core.GenderFemale, "Engineering")
	require.NoError(t, err)

	// act
	require.NoError(t, system.EditPerson(oldID, updated))

	// assert
	require.Len(t, journal.events, 2)

	event, ok := journal.events[1].(core.PersonProfileUpdated)
	require.True(t, ok)
	assert.Equal(t, newID, event.PersonID)
	assert.Equal(t, oldID, event.PreviousPersonID)
}

func Test_Journal_FailureIsLoggedButDoesNotFailTheOperation(t *testing.T) {
	// arrange
	logger, logSpy := helper.NewSpyLogger()
	metricsSpy := helper.NewMetricsCollectorSpy()
	journal := &journalSpy{err: errors.New("journal is down")}
	system := givenSystem(
		t,
		helper.NewClock(startOfTest),
		circulation.WithLogger(logger),
		circulation.WithMetrics(metricsSpy),
		circulation.WithJournal(journal),
	)

	// act
	givenBook(t, system, "B1", 1)

	// assert
	_, found := system.FindBook("B1")
	assert.True(t, found)
	assert.True(t, logSpy.HasErrorLogWithMessage("recording to the circulation journal failed").
		WithAttr("error", "journal is down").
		WithAttr("event_type", core.BookAddedToCatalogEventType).
		Assert())
	assert.True(t, metricsSpy.HasCounterRecord("circulation_journal_failures_total", map[string]string{
		"event_type": core.BookAddedToCatalogEventType,
	}))
}
