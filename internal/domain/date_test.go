package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSONRoundTrip(t *testing.T) {
	type payload struct {
		HireDate Date `json:"hireDate"`
	}

	encoded, err := json.Marshal(payload{HireDate: NewDate(2024, time.March, 1)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"hireDate":"2024-03-01"}`, string(encoded))

	var decoded payload
	require.NoError(t, json.Unmarshal([]byte(`{"hireDate":"2024-03-01"}`), &decoded))
	assert.True(t, decoded.HireDate.Equal(NewDate(2024, time.March, 1)))

	require.NoError(t, json.Unmarshal([]byte(`{"hireDate":null}`), &decoded))
	assert.True(t, decoded.HireDate.IsZero())
}

func TestDateCalendarArithmetic(t *testing.T) {
	d := NewDate(2024, time.March, 1)

	assert.True(t, d.AddDays(-1).Equal(NewDate(2024, time.February, 29)))
	assert.True(t, d.AddDays(-1).Before(d))
	assert.True(t, d.After(NewDate(2024, time.February, 29)))

	truncated := DateOf(time.Date(2024, time.March, 1, 23, 59, 59, 0, time.UTC))
	assert.True(t, truncated.Equal(d))
}

func TestParseDateRejectsGarbage(t *testing.T) {
	_, err := ParseDate("03/01/2024")
	assert.Error(t, err)
}
