package service

import (
	"fmt"
	"testing"
	"time"

	"interview-planner/core/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekdayName(t *testing.T) {
	t.Run("Valid Date Matches Time Package", func(t *testing.T) {
		name, appErr := WeekdayName(15, 6)
		require.Nil(t, appErr)

		expected := time.Date(time.Now().Year(), time.June, 15, 0, 0, 0, 0, time.UTC).Weekday().String()
		assert.Equal(t, expected, name)
	})

	t.Run("Impossible Date Fails", func(t *testing.T) {
		_, appErr := WeekdayName(31, 2)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrInvalidDate, appErr.Code)
	})

	t.Run("Month Out Of Range Fails", func(t *testing.T) {
		_, appErr := WeekdayName(1, 13)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrInvalidDate, appErr.Code)
	})
}

func TestLocalizeWeekday(t *testing.T) {
	t.Run("Known Names", func(t *testing.T) {
		assert.Equal(t, "Ponedeljak", LocalizeWeekday("Monday"))
		assert.Equal(t, "Sreda", LocalizeWeekday("Wednesday"))
		assert.Equal(t, "Nedelja", LocalizeWeekday("Sunday"))
	})

	t.Run("Unknown Name Falls Back", func(t *testing.T) {
		assert.Equal(t, UnknownWeekday, LocalizeWeekday("Funday"))
		assert.Equal(t, UnknownWeekday, LocalizeWeekday(""))
	})
}

func TestNextWorkingDates(t *testing.T) {
	t.Run("Exactly Seven Weekdays Strictly After Input", func(t *testing.T) {
		pairs, appErr := NextWorkingDates(15, 6)
		require.Nil(t, appErr)
		require.Len(t, pairs, 7)

		input := time.Date(time.Now().Year(), time.June, 15, 0, 0, 0, 0, time.UTC)
		previous := input
		for i, pair := range pairs {
			assert.Equal(t, fmt.Sprintf("day_%d", i+1), pair.Key)

			date, err := time.Parse("2006-01-02", pair.Date)
			require.NoError(t, err)
			assert.True(t, date.After(previous), "dates must be strictly increasing")
			assert.NotEqual(t, time.Saturday, date.Weekday())
			assert.NotEqual(t, time.Sunday, date.Weekday())
			previous = date
		}
	})

	t.Run("Invalid Date Fails", func(t *testing.T) {
		_, appErr := NextWorkingDates(31, 2)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrInvalidDate, appErr.Code)
	})
}

func TestSlotGrid(t *testing.T) {
	t.Run("Reference Grid", func(t *testing.T) {
		grid, appErr := SlotGrid("09:00", "16:00", 30, 10)
		require.Nil(t, appErr)

		// floor(420 / 40) = 10 slots, 40 minutes apart.
		require.Len(t, grid, 10)

		expected := []string{
			"09:00:00", "09:40:00", "10:20:00", "11:00:00", "11:40:00",
			"12:20:00", "13:00:00", "13:40:00", "14:20:00", "15:00:00",
		}
		for _, key := range expected {
			slot, ok := grid[key]
			require.True(t, ok, "missing slot %s", key)

			node := slot.(map[string]any)
			assert.Nil(t, node["name"])
			assert.Nil(t, node["contact"])
			assert.Nil(t, node["city"])
			assert.Nil(t, node["note"])
		}
	})

	t.Run("End Before Start Yields Empty Grid", func(t *testing.T) {
		grid, appErr := SlotGrid("16:00", "09:00", 30, 10)
		require.Nil(t, appErr)
		assert.Empty(t, grid)
	})

	t.Run("Zero Total Duration Yields Empty Grid", func(t *testing.T) {
		grid, appErr := SlotGrid("09:00", "16:00", 0, 0)
		require.Nil(t, appErr)
		assert.Empty(t, grid)
	})

	t.Run("Negative Total Duration Yields Empty Grid", func(t *testing.T) {
		grid, appErr := SlotGrid("09:00", "16:00", -30, 10)
		require.Nil(t, appErr)
		assert.Empty(t, grid)
	})

	t.Run("Malformed Start Time Fails", func(t *testing.T) {
		_, appErr := SlotGrid("9 o'clock", "16:00", 30, 10)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
	})
}

func TestCopySlotGrid(t *testing.T) {
	grid, appErr := SlotGrid("09:00", "10:00", 20, 10)
	require.Nil(t, appErr)
	require.Len(t, grid, 2)

	copied := CopySlotGrid(grid)
	copied["09:00:00"].(map[string]any)["name"] = "taken"

	assert.Nil(t, grid["09:00:00"].(map[string]any)["name"], "copies must not share slot state")
}
