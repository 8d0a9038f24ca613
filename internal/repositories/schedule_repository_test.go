package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/sq23rd/roster-backend/internal/models"
)

func newTestSchedule(flightNumber, date string) *models.Schedule {
	return &models.Schedule{
		FlightNumber: flightNumber,
		AircraftTail: "N123AB",
		MissionType:  models.MissionTypeTraining,
		Date:         date,
		StartTime:    "09:00",
		EndTime:      "12:00",
		CrewMembers:  datatypes.JSON([]byte(`["crew-1","crew-2"]`)),
	}
}

func TestScheduleRepository_CreateAndFind(t *testing.T) {
	t.Parallel()

	repo := NewScheduleRepository(newTestDB(t))

	schedule := newTestSchedule("SQ101", "2026-01-15")
	require.NoError(t, repo.Create(schedule))
	require.NotEmpty(t, schedule.ID)

	found, err := repo.FindByID(schedule.ID)
	require.NoError(t, err)
	assert.Equal(t, "SQ101", found.FlightNumber)

	_, err = repo.FindByID("missing-id")
	assert.ErrorIs(t, err, ErrScheduleNotFound)
}

func TestScheduleRepository_FindAllOrderedByDate(t *testing.T) {
	t.Parallel()

	repo := NewScheduleRepository(newTestDB(t))

	require.NoError(t, repo.Create(newTestSchedule("SQ300", "2026-03-01")))
	require.NoError(t, repo.Create(newTestSchedule("SQ100", "2026-01-01")))
	require.NoError(t, repo.Create(newTestSchedule("SQ200", "2026-02-01")))

	all, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "SQ100", all[0].FlightNumber)
	assert.Equal(t, "SQ200", all[1].FlightNumber)
	assert.Equal(t, "SQ300", all[2].FlightNumber)
}

func TestScheduleRepository_Update(t *testing.T) {
	t.Parallel()

	repo := NewScheduleRepository(newTestDB(t))

	schedule := newTestSchedule("SQ101", "2026-01-15")
	require.NoError(t, repo.Create(schedule))

	err := repo.Update(schedule.ID, map[string]interface{}{
		"flight_number": "SQ102",
		"notes":         "Divert drill",
	})
	require.NoError(t, err)

	found, err := repo.FindByID(schedule.ID)
	require.NoError(t, err)
	assert.Equal(t, "SQ102", found.FlightNumber)
	assert.Equal(t, "Divert drill", found.Notes)
	assert.Equal(t, "2026-01-15", found.Date)

	err = repo.Update("missing-id", map[string]interface{}{"notes": "x"})
	assert.ErrorIs(t, err, ErrScheduleNotFound)
}

func TestScheduleRepository_Delete(t *testing.T) {
	t.Parallel()

	repo := NewScheduleRepository(newTestDB(t))

	schedule := newTestSchedule("SQ101", "2026-01-15")
	require.NoError(t, repo.Create(schedule))

	require.NoError(t, repo.Delete(schedule.ID))
	_, err := repo.FindByID(schedule.ID)
	assert.ErrorIs(t, err, ErrScheduleNotFound)

	assert.ErrorIs(t, repo.Delete(schedule.ID), ErrScheduleNotFound)
}
