package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSON(t *testing.T) {
	d := NewDate(2024, time.February, 29)

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-02-29"`, string(b))

	var parsed Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-02-29"`), &parsed))
	assert.True(t, parsed.Equal(d.Time))

	assert.Error(t, json.Unmarshal([]byte(`"29/02/2024"`), &parsed))
	assert.Error(t, json.Unmarshal([]byte(`"2024-13-01"`), &parsed))

	var zero Date
	b, err = json.Marshal(zero)
	require.NoError(t, err)
	assert.Equal(t, `null`, string(b))
}

func TestDateWithin(t *testing.T) {
	d := NewDate(2024, time.March, 15)

	assert.True(t, d.Within(NewDate(2024, time.March, 1), NewDate(2024, time.March, 31)))
	assert.True(t, d.Within(NewDate(2024, time.March, 15), NewDate(2024, time.March, 15)), "bounds are inclusive")
	assert.False(t, d.Within(NewDate(2024, time.March, 16), NewDate(2024, time.March, 31)))
	assert.False(t, d.Within(NewDate(2024, time.January, 1), NewDate(2024, time.March, 14)))

	// zero bound leaves that side open
	assert.True(t, d.Within(Date{}, NewDate(2024, time.March, 31)))
	assert.True(t, d.Within(NewDate(2024, time.March, 1), Date{}))
	assert.True(t, d.Within(Date{}, Date{}))
}

func TestDateScan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan("2024-03-15"))
	assert.Equal(t, "2024-03-15", d.String())

	// sqlite timestamp form
	require.NoError(t, d.Scan("2024-03-15T00:00:00Z"))
	assert.Equal(t, "2024-03-15", d.String())

	require.NoError(t, d.Scan(time.Date(2024, time.March, 15, 13, 45, 0, 0, time.UTC)))
	assert.Equal(t, "2024-03-15", d.String())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	assert.Error(t, d.Scan(42))
}
