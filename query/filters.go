package query

import (
	"strconv"

	"conference-central/errors"
)

// Filter is one untrusted (field, operator, value) triple from a query
// request. Field and operator are symbolic tokens validated against the
// allow-lists below.
type Filter struct {
	Field    string `json:"field"`
	Operator string `json:"operator"`
	Value    string `json:"value"`
}

// Condition is a validated filter bound to a store property.
type Condition struct {
	Field string
	Op    string
	Value any
}

// Query is a compiled, ordered query ready for the store.
type Query struct {
	Conditions []Condition
	// Order lists sort fields; when an inequality condition exists its
	// field must come first, per the store's consistency rules.
	Order []string
}

type fieldSpec struct {
	property string
	numeric  bool
}

var operators = map[string]string{
	"EQ":   "=",
	"GT":   ">",
	"GTEQ": ">=",
	"LT":   "<",
	"LTEQ": "<=",
	"NE":   "!=",
}

var conferenceFields = map[string]fieldSpec{
	"CITY":          {property: "city"},
	"TOPIC":         {property: "topics"},
	"MONTH":         {property: "month", numeric: true},
	"MAX_ATTENDEES": {property: "max_attendees", numeric: true},
}

var sessionFields = map[string]fieldSpec{
	"TYPE":       {property: "type_of_session"},
	"START_TIME": {property: "start_time"},
}

// CompileConferenceFilters validates and compiles conference query filters.
func CompileConferenceFilters(filters []Filter) (*Query, error) {
	return compile(filters, conferenceFields)
}

// CompileSessionFilters validates and compiles session query filters.
func CompileSessionFilters(filters []Filter) (*Query, error) {
	return compile(filters, sessionFields)
}

func compile(filters []Filter, fields map[string]fieldSpec) (*Query, error) {
	q := &Query{}
	inequalityField := ""

	for _, f := range filters {
		spec, ok := fields[f.Field]
		if !ok {
			return nil, errors.InvalidFilterf("filter contains invalid field %q", f.Field)
		}
		op, ok := operators[f.Operator]
		if !ok {
			return nil, errors.InvalidFilterf("filter contains invalid operator %q", f.Operator)
		}

		// every operator except "=" is an inequality, and the store
		// allows inequalities on at most one distinct field
		if op != "=" {
			if inequalityField != "" && inequalityField != spec.property {
				return nil, errors.InvalidFilterf("inequality filter is allowed on only one field")
			}
			inequalityField = spec.property
		}

		var value any = f.Value
		if spec.numeric {
			n, err := strconv.Atoi(f.Value)
			if err != nil {
				return nil, errors.InvalidFilterf("filter value %q is not a number", f.Value)
			}
			value = n
		}

		q.Conditions = append(q.Conditions, Condition{Field: spec.property, Op: op, Value: value})
	}

	if inequalityField != "" {
		q.Order = []string{inequalityField, "name"}
	} else {
		q.Order = []string{"name"}
	}

	return q, nil
}
