package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Year is a FARS reporting year, e.g. 2013.
type Year int

func (y Year) String() string { return strconv.Itoa(int(y)) }

// StateCode is a FARS state number: GSA geographic codes, e.g. 1 = Alabama,
// 48 = Texas.
type StateCode int

func (s StateCode) String() string { return strconv.Itoa(int(s)) }

// ConversionError reports input text that does not parse as the integer a
// field requires.
type ConversionError struct {
	Field string
	Value string
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("convert %s: %q is not an integer", e.Field, e.Value)
}

// ParseYear converts input text to a Year. Surrounding whitespace is
// ignored; anything else but a decimal integer is a ConversionError.
// No range check: a year with no extract on disk fails at load time.
func ParseYear(s string) (Year, error) {
	n, err := parseInt(s, "year")
	if err != nil {
		return 0, err
	}
	return Year(n), nil
}

// ParseYears converts a slice of year strings, failing on the first value
// that does not parse.
func ParseYears(values []string) ([]Year, error) {
	years := make([]Year, 0, len(values))
	for _, s := range values {
		y, err := ParseYear(s)
		if err != nil {
			return nil, err
		}
		years = append(years, y)
	}
	return years, nil
}

// ParseStateCode converts input text to a StateCode. Whether the code
// exists in a given year's data is decided where the data is, not here.
func ParseStateCode(s string) (StateCode, error) {
	n, err := parseInt(s, "state")
	if err != nil {
		return 0, err
	}
	return StateCode(n), nil
}

func parseInt(s, field string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, &ConversionError{Field: field, Value: s}
	}
	return n, nil
}
