package entities

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ResourceMax is the max of a resource grant: either a number or a formula
// such as "level + proficiencyBonus". The zero value is the number 0.
type ResourceMax struct {
	value   int
	formula string
}

// FixedMax returns a numeric max
func FixedMax(n int) ResourceMax {
	return ResourceMax{value: n}
}

// FormulaMax returns a formula-valued max
func FormulaMax(expr string) ResourceMax {
	return ResourceMax{formula: expr}
}

// IsFormula reports whether the max is a string
func (m ResourceMax) IsFormula() bool {
	return m.formula != ""
}

// Value returns the numeric max and true, or 0 and false for a formula.
func (m ResourceMax) Value() (int, bool) {
	if m.IsFormula() {
		return 0, false
	}
	return m.value, true
}

// Formula returns the formula text, empty for numeric maxes
func (m ResourceMax) Formula() string {
	return m.formula
}

// ParseLeadingInt reads an optionally signed integer prefix of the formula,
// ignoring leading whitespace ("3 + level" gives 3). It returns 0 when the
// formula does not start with a digit.
func (m ResourceMax) ParseLeadingInt() int {
	if !m.IsFormula() {
		return m.value
	}

	s := strings.TrimLeft(m.formula, " \t\n\r")
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}

// String renders the max the way it is written in a document
func (m ResourceMax) String() string {
	if m.IsFormula() {
		return m.formula
	}
	return strconv.Itoa(m.value)
}

// MarshalJSON writes a number or a string
func (m ResourceMax) MarshalJSON() ([]byte, error) {
	if m.IsFormula() {
		return json.Marshal(m.formula)
	}
	return json.Marshal(m.value)
}

// UnmarshalJSON accepts a number or a string
func (m *ResourceMax) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*m = ResourceMax{}
		return nil
	}

	if data[0] == '"' {
		var expr string
		if err := json.Unmarshal(data, &expr); err != nil {
			return fmt.Errorf("max: %w", err)
		}
		*m = FormulaMax(expr)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("max: %w", err)
	}
	value, err := n.Int64()
	if err != nil {
		f, ferr := n.Float64()
		if ferr != nil {
			return fmt.Errorf("max: %w", err)
		}
		value = int64(f)
	}
	*m = FixedMax(int(value))
	return nil
}
