package timeunit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToSeconds_AlreadySeconds(t *testing.T) {
	cases := []int64{1, 60, 1717200000, msThreshold - 1}
	for _, v := range cases {
		got, err := ToSeconds(v)
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestToSeconds_Milliseconds(t *testing.T) {
	cases := []struct {
		in   int64
		want int64
	}{
		{msThreshold, msThreshold / 1000},
		{1717200000000, 1717200000},
		{1717200000999, 1717200000}, // округление вниз
	}
	for _, c := range cases {
		got, err := ToSeconds(c.in)
		require.NoError(t, err)
		assert.Equal(t, c.want, got)
	}
}

func TestToSeconds_Invalid(t *testing.T) {
	for _, v := range []int64{0, -1, -1717200000} {
		_, err := ToSeconds(v)
		assert.ErrorIs(t, err, ErrInvalidTimestamp)
	}
}

func TestEditableString_RoundTrip(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Moscow")
	require.NoError(t, err)

	// Круговая конвертация без потерь для значений, выровненных по минуте
	for _, seconds := range []int64{1717200000, 1735689600, 60} {
		s, err := ToLocalEditableString(seconds, loc)
		require.NoError(t, err)

		back, err := FromEditableString(s, loc)
		require.NoError(t, err)
		assert.Equal(t, seconds, back)
	}
}

func TestEditableString_MinutePrecision(t *testing.T) {
	loc := time.UTC

	// Секунды внутри минуты отбрасываются — документированная граница
	s, err := ToLocalEditableString(1717200059, loc)
	require.NoError(t, err)

	back, err := FromEditableString(s, loc)
	require.NoError(t, err)
	assert.Equal(t, int64(1717200000), back)
}

func TestToLocalEditableString_KnownValue(t *testing.T) {
	// 2024-06-01T00:00:00 UTC
	s, err := ToLocalEditableString(1717200000, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, "2024-06-01T00:00", s)
}

func TestFromEditableString_Invalid(t *testing.T) {
	for _, s := range []string{"", "not-a-time", "2024-06-01", "2024-06-01T10:00:30"} {
		_, err := FromEditableString(s, time.UTC)
		assert.ErrorIs(t, err, ErrInvalidEditableString)
	}
}
