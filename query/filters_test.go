package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "conference-central/errors"
)

func TestCompileConferenceFilters(t *testing.T) {
	tests := []struct {
		description   string
		filters       []Filter
		expectedError bool
		expectedOrder []string
		expectedConds []Condition
	}{
		{
			description:   "no filters orders by name",
			filters:       nil,
			expectedOrder: []string{"name"},
		},
		{
			description: "equality only orders by name",
			filters: []Filter{
				{Field: "CITY", Operator: "EQ", Value: "Paris"},
			},
			expectedOrder: []string{"name"},
			expectedConds: []Condition{{Field: "city", Op: "=", Value: "Paris"}},
		},
		{
			description: "inequality field sorts first, numeric value coerced",
			filters: []Filter{
				{Field: "MONTH", Operator: "GT", Value: "3"},
				{Field: "CITY", Operator: "EQ", Value: "Paris"},
			},
			expectedOrder: []string{"month", "name"},
			expectedConds: []Condition{
				{Field: "month", Op: ">", Value: 3},
				{Field: "city", Op: "=", Value: "Paris"},
			},
		},
		{
			description: "repeated inequality on the same field is allowed",
			filters: []Filter{
				{Field: "MONTH", Operator: "GT", Value: "3"},
				{Field: "MONTH", Operator: "LT", Value: "7"},
			},
			expectedOrder: []string{"month", "name"},
		},
		{
			description: "two distinct inequality fields rejected",
			filters: []Filter{
				{Field: "MONTH", Operator: "GT", Value: "3"},
				{Field: "MAX_ATTENDEES", Operator: "LT", Value: "50"},
			},
			expectedError: true,
		},
		{
			description: "unknown field rejected",
			filters: []Filter{
				{Field: "COUNTRY", Operator: "EQ", Value: "France"},
			},
			expectedError: true,
		},
		{
			description: "unknown operator rejected",
			filters: []Filter{
				{Field: "CITY", Operator: "LIKE", Value: "Par"},
			},
			expectedError: true,
		},
		{
			description: "non-numeric value for numeric field rejected",
			filters: []Filter{
				{Field: "MAX_ATTENDEES", Operator: "GTEQ", Value: "many"},
			},
			expectedError: true,
		},
	}

	for _, test := range tests {
		q, err := CompileConferenceFilters(test.filters)
		if test.expectedError {
			require.Errorf(t, err, test.description)
			var filterErr *apperrors.InvalidFilterError
			assert.ErrorAsf(t, err, &filterErr, test.description)
			continue
		}
		require.NoErrorf(t, err, test.description)
		assert.Equalf(t, test.expectedOrder, q.Order, test.description)
		if test.expectedConds != nil {
			assert.Equalf(t, test.expectedConds, q.Conditions, test.description)
		}
	}
}

func TestCompileSessionFilters(t *testing.T) {
	q, err := CompileSessionFilters([]Filter{
		{Field: "TYPE", Operator: "EQ", Value: "Workshop"},
		{Field: "START_TIME", Operator: "GTEQ", Value: "09:00"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"start_time", "name"}, q.Order)
	assert.Equal(t, []Condition{
		{Field: "type_of_session", Op: "=", Value: "Workshop"},
		{Field: "start_time", Op: ">=", Value: "09:00"},
	}, q.Conditions)

	_, err = CompileSessionFilters([]Filter{
		{Field: "MONTH", Operator: "EQ", Value: "3"},
	})
	assert.Error(t, err, "conference fields are not valid for sessions")
}
