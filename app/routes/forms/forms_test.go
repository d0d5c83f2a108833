package forms

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2025-03-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC), got)

	_, err = ParseDate("")
	assert.Error(t, err)

	_, err = ParseDate("   ")
	assert.Error(t, err)

	_, err = ParseDate("15/03/2025")
	assert.Error(t, err)
}

func TestParseOptionalDate(t *testing.T) {
	got, err := ParseOptionalDate("")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = ParseOptionalDate("2025-12-31")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC), *got)

	_, err = ParseOptionalDate("not-a-date")
	assert.Error(t, err)
}

func TestParseOptionalInt(t *testing.T) {
	got, err := ParseOptionalInt("")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = ParseOptionalInt(" 42 ")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 42, *got)

	_, err = ParseOptionalInt("abc")
	assert.Error(t, err)
}

func TestParseIDList(t *testing.T) {
	ids, err := ParseIDList([]string{"3", "1", "2"})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1, 2}, ids)

	ids, err = ParseIDList([]string{"5", "", "  ", "7"})
	require.NoError(t, err)
	assert.Equal(t, []int{5, 7}, ids, "empty entries are skipped")

	ids, err = ParseIDList(nil)
	require.NoError(t, err)
	assert.Empty(t, ids)

	_, err = ParseIDList([]string{"1", "x"})
	assert.Error(t, err)
}

func TestParseFloat(t *testing.T) {
	got, err := ParseFloat("")
	require.NoError(t, err)
	assert.Zero(t, got)

	got, err = ParseFloat("12.50")
	require.NoError(t, err)
	assert.Equal(t, 12.5, got)

	_, err = ParseFloat("12,50")
	assert.Error(t, err)
}

func TestParseInt(t *testing.T) {
	got, err := ParseInt("")
	require.NoError(t, err)
	assert.Zero(t, got)

	got, err = ParseInt("100")
	require.NoError(t, err)
	assert.Equal(t, 100, got)

	_, err = ParseInt("1.5")
	assert.Error(t, err)
}
