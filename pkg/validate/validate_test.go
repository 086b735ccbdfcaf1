package validate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fittrack/exercise-track-backend/internal/apperror"
)

func TestNumber(t *testing.T) {
	v, err := Number("limit", "42")
	require.NoError(t, err)
	require.Equal(t, 42.0, v)

	v, err = Number("duration", " 30.5 ")
	require.NoError(t, err)
	require.Equal(t, 30.5, v)

	for _, bad := range []string{"", "abc", "12abc", "NaN", "Inf", "-Inf"} {
		_, err := Number("limit", bad)
		require.ErrorIs(t, err, apperror.ErrInvalidNumber, "input %q", bad)
	}
}

func TestDate(t *testing.T) {
	d, err := Date("from", "2019-03-14")
	require.NoError(t, err)
	require.Equal(t, time.Date(2019, time.March, 14, 0, 0, 0, 0, time.UTC), d)

	d, err = Date("to", "2019-03-14T15:04:05Z")
	require.NoError(t, err)
	require.Equal(t, 15, d.Hour())

	for _, bad := range []string{"", "not-a-date", "2019-13-40", "14/03/2019"} {
		_, err := Date("from", bad)
		require.ErrorIs(t, err, apperror.ErrInvalidDate, "input %q", bad)
	}
}

func TestNewDateEmptyMeansNow(t *testing.T) {
	before := time.Now()
	d, err := NewDate("date", "")
	require.NoError(t, err)
	require.WithinDuration(t, before, d, 2*time.Second)
}

func TestNewDateParsesAndRejects(t *testing.T) {
	d, err := NewDate("date", "2020-01-02")
	require.NoError(t, err)
	require.Equal(t, 2020, d.Year())

	_, err = NewDate("date", "yesterday-ish")
	require.ErrorIs(t, err, apperror.ErrInvalidDate)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, "Invalid date, leave the date blank to use the current date", appErr.Message)
}
